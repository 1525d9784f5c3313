package core

// Action is a semantic input event, abstracted from physical keys. The key
// mapping lives in the platform layer so the game never sees key names.
type Action int

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionTogglePause
	ActionRestart
	ActionSave
	ActionLoad
	ActionQuit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionTogglePause:
		return "TogglePause"
	case ActionRestart:
		return "Restart"
	case ActionSave:
		return "Save"
	case ActionLoad:
		return "Load"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
