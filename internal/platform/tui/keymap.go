package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oskolkov/snaketui/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions. Keeping the
// bindings in one place makes them testable without a terminal.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a semantic action.
//
// Bindings: arrows move, space or p pauses, enter or r restarts after game
// over, s saves, l loads, q/esc/ctrl+c quits. Movement deliberately avoids
// wasd and hjkl because s and l are taken by save and load.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "up":
		return core.ActionMoveUp
	case "down":
		return core.ActionMoveDown
	case "left":
		return core.ActionMoveLeft
	case "right":
		return core.ActionMoveRight
	case " ", "p":
		return core.ActionTogglePause
	case "enter", "r":
		return core.ActionRestart
	case "s":
		return core.ActionSave
	case "l":
		return core.ActionLoad
	case "q", "esc", "ctrl+c":
		return core.ActionQuit
	}
	return core.ActionNone
}
