package core

// Action represents a semantic game action, abstracted from physical key presses.
// The engine only ever sees actions; the platform owns the key bindings.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - shift tiles up
	ActionDown           // S, J, Down arrow - shift tiles down
	ActionLeft           // A, H, Left arrow - shift tiles left
	ActionRight          // D, L, Right arrow - shift tiles right
	ActionConfirm        // Enter, Space - start a round
	ActionCancel         // Esc, B - leave the round
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
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation step.
// Each action is a simple pressed-this-step flag.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// InputOf builds a frame with the given actions pressed.
func InputOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered this frame.
func (f InputFrame) Empty() bool {
	for _, pressed := range f.Actions {
		if pressed {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
