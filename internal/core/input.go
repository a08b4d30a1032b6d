package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone            Action = iota
	ActionLeft                   // Left arrow, A - shift piece left
	ActionRight                  // Right arrow, D - shift piece right
	ActionRotate                 // Up arrow, W - rotate piece
	ActionSoftDrop               // Down arrow, S - start soft drop
	ActionSoftDropRelease        // emitted by the platform when soft drop ends
	ActionRestart                // R, Esc - restart game
	ActionQuit                   // Q, Ctrl+C - exit
	ActionPause                  // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotate:
		return "Rotate"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionSoftDropRelease:
		return "SoftDropRelease"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// Actions keep the order in which they were triggered, duplicates are dropped.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || f.Has(a) {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	clone.Actions = append(clone.Actions, f.Actions...)
	return clone
}
