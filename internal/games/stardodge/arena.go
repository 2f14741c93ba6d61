package stardodge

import (
	"iter"
	"strconv"
)

// EntityID is a stable handle to an entity in an Arena.
// The zero value never refers to a live entity.
type EntityID struct {
	slot uint32
	gen  uint32
}

// String returns a compact "slot:gen" form for logs and test output.
func (id EntityID) String() string {
	return strconv.FormatUint(uint64(id.slot), 10) + ":" + strconv.FormatUint(uint64(id.gen), 10)
}

type arenaSlot[T any] struct {
	gen   uint32
	alive bool
	val   T
}

// Arena stores entities in slots. Removal tombstones the slot; the slot is
// reused by a later Insert under a new generation, so stale ids stay invalid.
type Arena[T any] struct {
	slots []arenaSlot[T]
	free  []uint32
	live  int
}

// Insert stores v and returns its id.
func (a *Arena[T]) Insert(v T) EntityID {
	a.live++
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.gen++
		s.alive = true
		s.val = v
		return EntityID{slot: idx, gen: s.gen}
	}
	a.slots = append(a.slots, arenaSlot[T]{gen: 1, alive: true, val: v})
	return EntityID{slot: uint32(len(a.slots) - 1), gen: 1}
}

// Remove tombstones the entity. It returns false if id is stale or already removed.
func (a *Arena[T]) Remove(id EntityID) bool {
	s, ok := a.slot(id)
	if !ok {
		return false
	}
	var zero T
	s.alive = false
	s.val = zero
	a.free = append(a.free, id.slot)
	a.live--
	return true
}

// Get returns a pointer to the live entity for id.
func (a *Arena[T]) Get(id EntityID) (*T, bool) {
	s, ok := a.slot(id)
	if !ok {
		return nil, false
	}
	return &s.val, true
}

// Len returns the number of live entities.
func (a *Arena[T]) Len() int {
	return a.live
}

// All iterates live entities in slot order.
func (a *Arena[T]) All() iter.Seq2[EntityID, *T] {
	return func(yield func(EntityID, *T) bool) {
		for i := range a.slots {
			s := &a.slots[i]
			if !s.alive {
				continue
			}
			if !yield(EntityID{slot: uint32(i), gen: s.gen}, &s.val) {
				return
			}
		}
	}
}

func (a *Arena[T]) slot(id EntityID) (*arenaSlot[T], bool) {
	if int(id.slot) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[id.slot]
	if !s.alive || s.gen != id.gen {
		return nil, false
	}
	return s, true
}
