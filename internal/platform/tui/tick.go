// Package tui is the Bubble Tea front end: the frame loop, key mapping,
// rendering, the scoreboard screen, and the SSH server. Game logic stays in
// internal/game; this package only feeds it time and input and draws its
// snapshots.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is delivered once per render frame and carries the wall-clock
// time the frame fired. The model derives real delta time from consecutive
// frames and feeds it to the session accumulator, so the game tick rate is
// independent of the frame rate.
type FrameMsg time.Time

// frameCmd schedules the next frame at the given render rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
