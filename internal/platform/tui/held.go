package tui

import (
	"time"

	"github.com/vovakirdan/ball-arcade/internal/core"
)

// Terminals report key presses and auto-repeats but never releases, so a
// key counts as held while its events keep arriving. The first event gets
// a longer window to bridge the auto-repeat delay, which desktops set
// anywhere up to 660ms.
const (
	firstHoldWindow  = 700 * time.Millisecond
	repeatHoldWindow = 120 * time.Millisecond
)

var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

type keyState struct {
	lastSeen time.Time
	repeated bool
}

// HeldKeys turns a stream of key events into per-tick input frames with
// both press edges and held state.
type HeldKeys struct {
	keys    map[core.Action]*keyState
	pressed map[core.Action]bool
}

// NewHeldKeys creates an empty tracker.
func NewHeldKeys() *HeldKeys {
	return &HeldKeys{
		keys:    make(map[core.Action]*keyState),
		pressed: make(map[core.Action]bool),
	}
}

// Press records a key event for a at time now. Only directions are
// tracked as held; every other action is a plain press.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	opp, directional := opposite[a]
	if !directional {
		h.pressed[a] = true
		return
	}
	delete(h.keys, opp)
	delete(h.pressed, opp)

	st, ok := h.keys[a]
	if ok && h.active(st, now) {
		st.lastSeen = now
		st.repeated = true
		return
	}
	h.keys[a] = &keyState{lastSeen: now}
	h.pressed[a] = true
}

// Frame builds the input for the tick at now and clears press edges.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a := range h.pressed {
		frame.Set(a)
	}
	clear(h.pressed)

	for a, st := range h.keys {
		if h.active(st, now) {
			frame.Hold(a)
		} else {
			delete(h.keys, a)
		}
	}
	return frame
}

// Reset forgets every key.
func (h *HeldKeys) Reset() {
	clear(h.keys)
	clear(h.pressed)
}

func (h *HeldKeys) active(st *keyState, now time.Time) bool {
	window := firstHoldWindow
	if st.repeated {
		window = repeatHoldWindow
	}
	return now.Sub(st.lastSeen) <= window
}
