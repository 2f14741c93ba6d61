package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionExit           // Escape - request to leave the game
	ActionPause          // P - pause/unpause game
	ActionRestart        // R - restart game after game over
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B - go back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionExit:
		return "Exit"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation tick.
//
// Pressed holds edge-triggered actions (newly pressed since the previous
// frame). Held holds level-triggered actions (key currently down). A press
// always implies a hold for the same frame.
type InputFrame struct {
	Pressed map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as newly pressed (and held) for this frame.
func (f *InputFrame) Set(a Action) {
	f.ensure()
	f.Pressed[a] = true
	f.Held[a] = true
}

// Hold marks an action as held without a new press edge.
func (f *InputFrame) Hold(a Action) {
	f.ensure()
	f.Held[a] = true
}

// Has returns true if the given action was newly pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed[a]
}

// Holding returns true if the given action is held this frame.
func (f InputFrame) Holding(a Action) bool {
	return f.Held[a]
}

func (f *InputFrame) ensure() {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
}
