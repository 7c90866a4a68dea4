package arena

import "iter"

// Values yields the stored values in increasing slot order, skipping vacant
// slots. The sequence is finite and restartable: each range starts a fresh
// traversal. Mutating the arena's occupancy mid-traversal is not supported.
func (a *Arena[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range a.slots {
			if a.slots[i].gen == 0 {
				continue
			}
			if !yield(a.slots[i].value) {
				return
			}
		}
	}
}

// All yields handle/value pairs for every occupied slot in increasing slot
// order. The handles carry the slots' current stamps, so each one validates
// against the arena until its slot is next vacated or replaced.
func (a *Arena[T]) All() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		for i := range a.slots {
			if a.slots[i].gen == 0 {
				continue
			}
			h := Handle{gen: a.slots[i].gen, slot: uint32(i)}
			if !yield(h, a.slots[i].value) {
				return
			}
		}
	}
}

// Handles yields the live handles in increasing slot order.
func (a *Arena[T]) Handles() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		for i := range a.slots {
			if a.slots[i].gen == 0 {
				continue
			}
			if !yield(Handle{gen: a.slots[i].gen, slot: uint32(i)}) {
				return
			}
		}
	}
}
