package core

import "strings"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone   Action = iota
	ActionLeft          // A, Left arrow - move left
	ActionRight         // D, Right arrow - move right
	ActionStop          // S, Down arrow - stop in place
	ActionFire          // Space - fire laser
	ActionRocket        // R - fire rocket
	ActionPause         // P - pause/unpause game
	ActionQuit          // Q, Ctrl+C - exit game
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
	case ActionStop:
		return "Stop"
	case ActionFire:
		return "Fire"
	case ActionRocket:
		return "Rocket"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ActionForKey maps a key name to its action. Letters are matched
// case-insensitively. Unknown keys map to ActionNone.
func ActionForKey(key string) Action {
	switch strings.ToLower(key) {
	case "a", "left":
		return ActionLeft
	case "d", "right":
		return ActionRight
	case "s", "down":
		return ActionStop
	case " ", "space":
		return ActionFire
	case "r":
		return ActionRocket
	case "p":
		return ActionPause
	case "q", "ctrl+c":
		return ActionQuit
	}
	return ActionNone
}

// InputFrame represents the input for a single simulation tick.
// At most one key event is delivered per tick.
type InputFrame struct {
	Action Action
}

// NewInputFrame creates an input frame carrying the given action.
func NewInputFrame(a Action) InputFrame {
	return InputFrame{Action: a}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && f.Action == a
}
