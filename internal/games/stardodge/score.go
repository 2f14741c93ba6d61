package stardodge

import "math"

// Score counts collected stars. It saturates instead of wrapping and
// remembers whether it changed since the last ClearChanged.
type Score struct {
	value   uint32
	changed bool
}

// Increment adds one point.
func (s *Score) Increment() {
	if s.value == math.MaxUint32 {
		return
	}
	s.value++
	s.changed = true
}

// Value returns the current score.
func (s *Score) Value() uint32 {
	return s.value
}

// Changed reports whether the score moved since the last ClearChanged.
func (s *Score) Changed() bool {
	return s.changed
}

// ClearChanged resets the change flag.
func (s *Score) ClearChanged() {
	s.changed = false
}
