package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform translates raw input events into actions so the
// game session never sees key codes.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow, k - slide tiles up
	ActionDown           // S, Down arrow, j - slide tiles down
	ActionLeft           // A, Left arrow, h - slide tiles left
	ActionRight          // D, Right arrow, l - slide tiles right
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Ctrl+C - exit the game
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
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
