package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/ball-arcade/internal/core"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestHeldKeysFirstPressIsEdgeAndHold(t *testing.T) {
	h := NewHeldKeys()
	h.Press(core.ActionLeft, t0)

	f := h.Frame(t0.Add(10 * time.Millisecond))
	if !f.Has(core.ActionLeft) || !f.Holding(core.ActionLeft) {
		t.Fatal("first press should be both pressed and held")
	}

	f = h.Frame(t0.Add(650 * time.Millisecond))
	if f.Has(core.ActionLeft) {
		t.Error("press edge should only be reported once")
	}
	if !f.Holding(core.ActionLeft) {
		t.Error("key should stay held across the auto-repeat delay")
	}

	f = h.Frame(t0.Add(800 * time.Millisecond))
	if f.Holding(core.ActionLeft) {
		t.Error("key should be released once events stop arriving")
	}
}

func TestHeldKeysBridgesDesktopRepeatDelays(t *testing.T) {
	for _, delay := range []time.Duration{250 * time.Millisecond, 500 * time.Millisecond, 660 * time.Millisecond} {
		t.Run(delay.String(), func(t *testing.T) {
			h := NewHeldKeys()
			h.Press(core.ActionRight, t0)

			edges := 0
			for now := t0; now.Before(t0.Add(delay + 200*time.Millisecond)); now = now.Add(16 * time.Millisecond) {
				// Auto-repeat starts after delay and then arrives every 33ms
				if since := now.Sub(t0); since >= delay && (since-delay)%(33*time.Millisecond) < 16*time.Millisecond {
					h.Press(core.ActionRight, now)
				}
				f := h.Frame(now)
				if !f.Holding(core.ActionRight) {
					t.Fatalf("key released %v after the press", now.Sub(t0))
				}
				if f.Has(core.ActionRight) {
					edges++
				}
			}
			if edges != 1 {
				t.Errorf("got %d press edges, expected exactly one", edges)
			}
		})
	}
}

func TestHeldKeysRepeatsExtendHold(t *testing.T) {
	h := NewHeldKeys()
	h.Press(core.ActionUp, t0)
	h.Frame(t0)

	now := t0
	for range 10 {
		now = now.Add(50 * time.Millisecond)
		h.Press(core.ActionUp, now)
		f := h.Frame(now)
		if f.Has(core.ActionUp) {
			t.Fatal("auto-repeat should not create new press edges")
		}
		if !f.Holding(core.ActionUp) {
			t.Fatal("auto-repeat should keep the key held")
		}
	}

	// Repeats use the shorter window
	if h.Frame(now.Add(150 * time.Millisecond)).Holding(core.ActionUp) {
		t.Error("repeated key should release after the repeat window")
	}
}

func TestHeldKeysOppositeDirectionReplaces(t *testing.T) {
	h := NewHeldKeys()
	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionRight, t0.Add(20*time.Millisecond))

	f := h.Frame(t0.Add(30 * time.Millisecond))
	if f.Holding(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !f.Holding(core.ActionRight) {
		t.Error("right should be held")
	}
}

func TestHeldKeysDiagonal(t *testing.T) {
	h := NewHeldKeys()
	h.Press(core.ActionUp, t0)
	h.Press(core.ActionRight, t0)

	f := h.Frame(t0)
	if !f.Holding(core.ActionUp) || !f.Holding(core.ActionRight) {
		t.Error("perpendicular directions should combine")
	}
}

func TestHeldKeysNonDirectionalArePresses(t *testing.T) {
	h := NewHeldKeys()

	// Rapid toggles must each produce an edge
	for i := range 3 {
		now := t0.Add(time.Duration(i) * 30 * time.Millisecond)
		h.Press(core.ActionPause, now)
		if !h.Frame(now).Has(core.ActionPause) {
			t.Fatalf("pause press %d lost", i)
		}
	}

	if h.Frame(t0.Add(100 * time.Millisecond)).Holding(core.ActionPause) {
		t.Error("pause should not be held after its frame")
	}
}

func TestHeldKeysReset(t *testing.T) {
	h := NewHeldKeys()
	h.Press(core.ActionDown, t0)
	h.Press(core.ActionRestart, t0)
	h.Reset()

	f := h.Frame(t0)
	if f.Holding(core.ActionDown) || f.Has(core.ActionRestart) {
		t.Error("Reset should forget every key")
	}
}
