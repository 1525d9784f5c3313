package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/oskolkov/snaketui/internal/core"
	"github.com/oskolkov/snaketui/internal/game"
)

const (
	headRune  = 'O'
	bodyRune  = 'o'
	foodRune  = '*'
	floorRune = '·'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorRed:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorDarkGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorWhite:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDarkGray:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
}

// Draw renders a session snapshot into the screen buffer: a HUD row, the
// bordered board centered below it, and any active overlay.
func Draw(dst *core.Screen, snap game.Snapshot, status string) {
	dst.Clear()

	drawHUD(dst, snap, status)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	// Box border adds one cell on every side.
	boxW := snap.Grid.Width + 2
	boxH := snap.Grid.Height + 2
	if boxW > dst.Width() || boxH > dst.Height()-2 {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	boxX := (dst.Width() - boxW) / 2
	boxY := 2 + (dst.Height()-2-boxH)/2
	board := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawBox(board)

	drawBoard(dst, snap, boxX+1, boxY+1)
	drawOverlay(dst, snap, board)
}

func drawHUD(dst *core.Screen, snap game.Snapshot, status string) {
	hud := fmt.Sprintf("Score: %d   Level: %d   Speed: %d/s   High: %d",
		snap.Score, snap.LevelIndex+1, snap.MovesPerSecond, snap.HighScore)
	dst.DrawTextColored(0, 0, hud, core.ColorWhite)
	if status != "" {
		dst.DrawTextColored(dst.Width()-len(status)-1, 0, status, core.ColorYellow)
	}
}

func drawBoard(dst *core.Screen, snap game.Snapshot, originX, originY int) {
	for y := 0; y < snap.Grid.Height; y++ {
		for x := 0; x < snap.Grid.Width; x++ {
			if (x+y)%2 == 0 {
				dst.SetCell(originX+x, originY+y, floorRune, core.ColorDarkGray)
			}
		}
	}

	if snap.Grid.InBounds(snap.Food) {
		dst.SetCell(originX+snap.Food.X, originY+snap.Food.Y, foodRune, core.ColorRed)
	}

	for i := len(snap.Snake) - 1; i >= 0; i-- {
		c := snap.Snake[i]
		r, col := bodyRune, core.ColorDarkGreen
		if i == 0 {
			r, col = headRune, core.ColorGreen
		}
		dst.SetCell(originX+c.X, originY+c.Y, r, col)
	}
}

func drawOverlay(dst *core.Screen, snap game.Snapshot, board core.Rect) {
	var lines []string
	switch {
	case snap.GameOver:
		lines = []string{"GAME OVER", "Press R to restart"}
	case snap.Won:
		lines = []string{"YOU WIN"}
	case snap.Paused:
		lines = []string{"PAUSED"}
	default:
		return
	}

	cx, cy := board.Center()
	top := cy - len(lines)/2
	for i, line := range lines {
		col := core.ColorYellow
		if snap.GameOver && i == 0 {
			col = core.ColorRed
		}
		dst.DrawTextColored(cx-len(line)/2, top+i, line, col)
	}
}

// RenderScreen converts a screen buffer to a styled string for display,
// grouping adjacent same-colored cells to keep escape sequences short.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[start]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
