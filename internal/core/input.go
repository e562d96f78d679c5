package core

// Action represents a semantic game action, abstracted from physical key presses.
// Components read these from an InputFrame instead of raw key codes.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move up / thrust forward
	ActionDown           // S, Down arrow - move down / thrust back
	ActionLeft           // A, Left arrow - rotate counter-clockwise / strafe left
	ActionRight          // D, Right arrow - rotate clockwise / strafe right
	ActionFire           // Space - fire
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
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
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
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

// InputFrame is the key-state snapshot for one frame.
// Continuous-input components poll it; it is never mutated during the update pass.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Axis returns -1, 0 or +1 from a pair of opposing actions.
// Holding both cancels out.
func (f InputFrame) Axis(neg, pos Action) float64 {
	v := 0.0
	if f.Has(neg) {
		v--
	}
	if f.Has(pos) {
		v++
	}
	return v
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
