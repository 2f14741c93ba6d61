package core

import "testing"

func TestInputFrameSetImpliesHold(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionExit)

	if !f.Has(ActionExit) {
		t.Error("Set action should be reported as pressed")
	}
	if !f.Holding(ActionExit) {
		t.Error("Set action should also be reported as held")
	}
}

func TestInputFrameHoldIsNotPress(t *testing.T) {
	f := NewInputFrame()
	f.Hold(ActionLeft)

	if f.Has(ActionLeft) {
		t.Error("Hold should not create a press edge")
	}
	if !f.Holding(ActionLeft) {
		t.Error("Hold action should be reported as held")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame

	if f.Has(ActionUp) || f.Holding(ActionUp) {
		t.Error("zero-value frame should report nothing")
	}

	// Methods on zero value must not panic
	f.Hold(ActionUp)
	if !f.Holding(ActionUp) {
		t.Error("Hold on zero-value frame should work")
	}
}

func TestActionString(t *testing.T) {
	if ActionExit.String() != "Exit" {
		t.Errorf("ActionExit.String() = %q", ActionExit.String())
	}
	if Action(999).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
