package arena

import "fmt"

// Handle is a stable reference to a value stored in an Arena. It pairs a
// slot index with the generation stamp the slot carried when the value was
// written; the arena validates the stamp on every access, so a Handle whose
// slot has since been removed, taken or replaced reads as absent instead of
// aliasing the new occupant.
//
// Handles are small comparable values: copy them freely, use them as map
// keys. A Handle is only meaningful against the arena instance that issued
// it. Generation stamps start at 1 and are never zero, so the zero Handle
// is never issued and can serve as a "no handle" sentinel without an extra
// ok flag.
type Handle struct {
	gen  uint64
	slot uint32
}

// Slot returns the slot index the handle refers to.
func (h Handle) Slot() uint32 { return h.slot }

// Generation returns the generation stamp the handle was issued with.
func (h Handle) Generation() uint64 { return h.gen }

// IsZero reports whether h is the zero Handle. No arena ever issues it.
func (h Handle) IsZero() bool { return h == Handle{} }

// Compare totally orders handles by slot index, then by generation. It
// returns -1 if h sorts before other, +1 if after, and 0 iff the handles
// are equal. The order is arbitrary but consistent, for use with sorted
// containers.
func (h Handle) Compare(other Handle) int {
	switch {
	case h.slot < other.slot:
		return -1
	case h.slot > other.slot:
		return 1
	case h.gen < other.gen:
		return -1
	case h.gen > other.gen:
		return 1
	default:
		return 0
	}
}

func (h Handle) String() string {
	return fmt.Sprintf("Handle{slot: %d, gen: %d}", h.slot, h.gen)
}
