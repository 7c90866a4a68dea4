// Package arena provides a generational slot arena: a densely packed
// container that stores values of a uniform type and hands out stable,
// validity-checked handles instead of raw pointers.
//
// Index-based object graphs (scene graphs, ECS-style game object tables,
// node editors) suffer from dangling references: a slot is freed, a new
// value moves in, and an old index silently aliases the new occupant. The
// arena prevents this without reference counting. Every write into a slot
// is stamped with a generation counter, and every Handle carries the stamp
// it was issued with; a Handle stops validating the instant its slot is
// removed, taken or replaced, even if the slot is later reoccupied.
//
// # Quick Start
//
//	objects := arena.New[GameObject]()
//
//	player := objects.Insert(GameObject{Name: "player"})
//	enemy := objects.Insert(GameObject{Name: "enemy"})
//
//	objects.Remove(enemy)
//
//	if _, ok := objects.Get(enemy); !ok {
//	    // The handle is stale. A later Insert may reuse the slot, but the
//	    // new occupant gets a fresh stamp and this handle stays stale.
//	}
//
// # Absence Is Not an Error
//
// Looking up, removing or taking a stale handle is an expected, frequent
// outcome and is reported through an ok bool (or a nil pointer), never an
// error. Only genuine caller bugs panic: presenting a slot index the arena
// never issued to a mutating operation, or asking Get2Mut for two mutable
// views of the same slot.
//
// # Concurrency Model
//
// An Arena is exclusively owned: single-owner, single-threaded mutation, no
// internal synchronization. Sharing one across goroutines requires external
// locking supplied by the caller.
package arena
