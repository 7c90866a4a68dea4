package arena

import "fmt"

// none terminates the vacant chain.
const none = -1

// slot is one cell of the backing store. A zero gen marks the slot vacant,
// in which case next links to the following vacant slot. Occupied slots
// carry the stamp written at occupancy time; stamps are never zero.
type slot[T any] struct {
	gen   uint64
	next  int
	value T
}

// Arena is a generational slot arena. The backing store grows on demand and
// is never reordered, shifted or compacted, so slot indices stay stable for
// the arena's entire lifetime. Vacant slots are threaded into an intrusive
// free list and reused in LIFO order.
//
// The zero value is not usable; call New.
type Arena[T any] struct {
	slots    []slot[T]
	gen      uint64 // stamp for the next write, starts at 1
	freeHead int    // most recently vacated slot, none if no vacancy
	count    int
}

// New creates an empty arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{gen: 1, freeHead: none}
}

// Push appends value in a fresh slot at the end of the backing store and
// returns its handle. A fresh slot has no prior occupant to distinguish
// from, so the generation counter is not advanced.
func (a *Arena[T]) Push(value T) Handle {
	idx := len(a.slots)
	a.slots = append(a.slots, slot[T]{gen: a.gen, value: value})
	a.count++
	return Handle{gen: a.gen, slot: uint32(idx)}
}

// Insert stores value in the most recently vacated slot, or appends a new
// one when no vacancy exists. Reusing a slot advances the generation
// counter, which keeps every handle issued for the previous occupant stale.
func (a *Arena[T]) Insert(value T) Handle {
	if a.freeHead == none {
		return a.Push(value)
	}

	idx := a.freeHead
	a.freeHead = a.slots[idx].next
	a.slots[idx] = slot[T]{gen: a.gen, value: value}
	h := Handle{gen: a.gen, slot: uint32(idx)}
	a.gen++
	a.count++

	return h
}

// Remove vacates the slot h refers to and pushes it onto the free list.
// Removing a stale or already removed handle is a no-op, not an error;
// calling Remove twice with the same handle leaves the arena exactly as one
// call left it.
//
// Panics if the slot index exceeds the backing store: such a handle cannot
// have been issued by this arena.
func (a *Arena[T]) Remove(h Handle) {
	idx := int(h.slot)
	if idx >= len(a.slots) {
		panic(fmt.Sprintf("arena: slot %d out of range [0, %d)", h.slot, len(a.slots)))
	}

	s := &a.slots[idx]
	if s.gen == 0 || s.gen != h.gen {
		return // vacant or stale
	}

	var zero T
	*s = slot[T]{next: a.freeHead, value: zero}
	a.freeHead = idx
	a.gen++
	a.count--
}

// Take removes the value h refers to and returns it. Like Remove, but the
// caller keeps the value. It reports false when the slot is vacant or the
// stamp no longer matches; a value can be taken exactly once.
//
// Panics if the slot index exceeds the backing store.
func (a *Arena[T]) Take(h Handle) (T, bool) {
	idx := int(h.slot)
	if idx >= len(a.slots) {
		panic(fmt.Sprintf("arena: slot %d out of range [0, %d)", h.slot, len(a.slots)))
	}

	var zero T

	s := &a.slots[idx]
	if s.gen == 0 || s.gen != h.gen {
		return zero, false
	}

	value := s.value
	*s = slot[T]{next: a.freeHead, value: zero}
	a.freeHead = idx
	a.gen++
	a.count--

	return value, true
}

// Replace stores value in the slot h refers to, regardless of h's stamp,
// and returns the handle of the new occupant. If the slot was occupied the
// previous value is returned with ok true and the new stamp comes from a
// freshly advanced counter, so the caller's old handle is stale afterwards.
// If the slot was vacant it is revived: the value is stamped with the
// current counter, the occupied count grows and ok is false.
//
// Replacing through a stale handle is a deliberate convenience, not a
// validation bypass: the caller explicitly asked to overwrite whatever the
// slot holds now.
//
// Panics if the slot index exceeds the backing store.
func (a *Arena[T]) Replace(h Handle, value T) (Handle, T, bool) {
	idx := int(h.slot)
	if idx >= len(a.slots) {
		panic(fmt.Sprintf("arena: slot %d out of range [0, %d)", h.slot, len(a.slots)))
	}

	s := &a.slots[idx]
	if s.gen != 0 {
		a.gen++
		prev := s.value
		s.gen = a.gen
		s.value = value
		return Handle{gen: a.gen, slot: h.slot}, prev, true
	}

	// Vacant: unlink the slot from the free list before reviving it.
	a.unlink(idx)
	nh := Handle{gen: a.gen, slot: h.slot}
	*s = slot[T]{gen: a.gen, value: value}
	a.gen++
	a.count++

	var zero T
	return nh, zero, false
}

// Set is the fire-and-forget form of Replace: same slot targeting and same
// stamp rules, with the previous value and the new handle discarded. If the
// slot was occupied the caller's handle is stale after this call, so Set is
// only useful when continued access is not needed.
//
// Panics if the slot index exceeds the backing store.
func (a *Arena[T]) Set(h Handle, value T) {
	a.Replace(h, value)
}

// Get returns the value h refers to. It reports false when the handle is
// stale or the slot index is out of range; unlike the mutating operations,
// reads tolerate indices the arena never issued.
func (a *Arena[T]) Get(h Handle) (T, bool) {
	idx := int(h.slot)
	if idx >= len(a.slots) {
		var zero T
		return zero, false
	}

	s := &a.slots[idx]
	if s.gen == 0 || s.gen != h.gen {
		var zero T
		return zero, false
	}

	return s.value, true
}

// GetMut returns a pointer to the value h refers to, or nil when the handle
// is stale or out of range. The pointer is invalidated by any operation
// that grows the backing store or vacates the slot.
func (a *Arena[T]) GetMut(h Handle) *T {
	idx := int(h.slot)
	if idx >= len(a.slots) {
		return nil
	}

	s := &a.slots[idx]
	if s.gen == 0 || s.gen != h.gen {
		return nil
	}

	return &s.value
}

// Get2Mut returns pointers to two values at once, each validated
// independently exactly like GetMut.
//
// Panics if both handles name the same slot, even when one of them is
// stale: two mutable views of one value is always a caller bug, and the
// check is the invariant that makes the twin access sound.
func (a *Arena[T]) Get2Mut(ha, hb Handle) (*T, *T) {
	if ha.slot == hb.slot {
		panic(fmt.Sprintf("arena: Get2Mut with aliasing handles for slot %d", ha.slot))
	}
	return a.GetMut(ha), a.GetMut(hb)
}

// Len returns the number of occupied slots.
func (a *Arena[T]) Len() int { return a.count }

// IsEmpty reports whether the arena holds no values.
func (a *Arena[T]) IsEmpty() bool { return a.count == 0 }

// Cap returns the length of the backing store, vacant slots included. The
// backing store never shrinks.
func (a *Arena[T]) Cap() int { return len(a.slots) }

// Clone returns a structural copy of the arena. Values are copied by
// assignment. Slots, stamps and the free list are preserved exactly, so
// handles issued by the original validate against the clone as well.
func (a *Arena[T]) Clone() *Arena[T] {
	clone := *a
	clone.slots = make([]slot[T], len(a.slots))
	copy(clone.slots, a.slots)
	return &clone
}

// unlink removes the vacant slot idx from the free list. The common case is
// the head of the list (a slot is usually revived right after it was
// vacated); otherwise the chain is walked.
func (a *Arena[T]) unlink(idx int) {
	if a.freeHead == idx {
		a.freeHead = a.slots[idx].next
		return
	}
	for cur := a.freeHead; cur != none; cur = a.slots[cur].next {
		if a.slots[cur].next == idx {
			a.slots[cur].next = a.slots[idx].next
			return
		}
	}
}

// Stats is a point-in-time snapshot of arena occupancy.
type Stats struct {
	Slots      int    // backing-store length, vacant slots included
	Occupied   int    // slots currently holding a value
	Vacant     int    // slots on the free list
	Generation uint64 // stamp the next write will receive
}

// Stats returns the current occupancy snapshot.
func (a *Arena[T]) Stats() Stats {
	return Stats{
		Slots:      len(a.slots),
		Occupied:   a.count,
		Vacant:     len(a.slots) - a.count,
		Generation: a.gen,
	}
}

func (a *Arena[T]) String() string {
	stats := a.Stats()
	return fmt.Sprintf(
		"Arena{slots: %d, occupied: %d, vacant: %d, generation: %d}",
		stats.Slots,
		stats.Occupied,
		stats.Vacant,
		stats.Generation,
	)
}
