package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oskolkov/snaketui/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMapKeyBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want core.Action
	}{
		{"up", core.ActionMoveUp},
		{"down", core.ActionMoveDown},
		{"left", core.ActionMoveLeft},
		{"right", core.ActionMoveRight},
		{" ", core.ActionTogglePause},
		{"p", core.ActionTogglePause},
		{"enter", core.ActionRestart},
		{"r", core.ActionRestart},
		{"s", core.ActionSave},
		{"l", core.ActionLoad},
		{"q", core.ActionQuit},
		{"esc", core.ActionQuit},
		{"ctrl+c", core.ActionQuit},
	}

	for _, tt := range tests {
		if got := km.MapKey(keyMsg(tt.key)); got != tt.want {
			t.Errorf("MapKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestMapKeyUnboundIsNone(t *testing.T) {
	km := NewKeyMapper()

	for _, key := range []string{"x", "w", "a", "d", "h", "j", "tab"} {
		if got := km.MapKey(keyMsg(key)); got != core.ActionNone {
			t.Errorf("MapKey(%q) = %v, want ActionNone", key, got)
		}
	}
}
