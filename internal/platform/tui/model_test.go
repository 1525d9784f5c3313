package tui

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/oskolkov/snaketui/internal/audio"
	"github.com/oskolkov/snaketui/internal/core"
	"github.com/oskolkov/snaketui/internal/game"
	"github.com/oskolkov/snaketui/internal/persist"
)

func newTestModel(t *testing.T) GameModel {
	t.Helper()

	session := game.NewSession(game.Grid{Width: 30, Height: 20}, game.DefaultLevels(), 10, 1)
	saves := persist.New(t.TempDir(), nil)
	cfg := core.DefaultRuntimeConfig()
	cfg.Seed = 1

	return NewGameModel(session, audio.NopSink{}, saves, nil, log.New(io.Discard), cfg)
}

func step(m GameModel, msg tea.Msg) GameModel {
	next, _ := m.Update(msg)
	return next.(GameModel)
}

func TestModelFrameAdvancesSession(t *testing.T) {
	m := newTestModel(t)

	before := m.session.Snapshot().Snake[0]

	// First frame only establishes the time base.
	t0 := time.Now()
	m = step(m, FrameMsg(t0))
	if got := m.session.Snapshot().Snake[0]; got != before {
		t.Fatalf("snake moved on the first frame: %v", got)
	}

	// 250ms later: one 200ms tick at the starting speed of 5 moves/s.
	m = step(m, FrameMsg(t0.Add(250*time.Millisecond)))
	want := game.Cell{X: before.X + 1, Y: before.Y}
	if got := m.session.Snapshot().Snake[0]; got != want {
		t.Errorf("head = %v, want %v", got, want)
	}
}

func TestModelClampsLargeFrameDelta(t *testing.T) {
	m := newTestModel(t)

	t0 := time.Now()
	m = step(m, FrameMsg(t0))
	// A ten second stall must not burst fifty ticks.
	m = step(m, FrameMsg(t0.Add(10*time.Second)))

	head := m.session.Snapshot().Snake[0]
	center := game.Grid{Width: 30, Height: 20}.Center()
	if head.X > center.X+2 {
		t.Errorf("head %v advanced more than one clamped delta from %v", head, center)
	}
}

func TestModelTurnKey(t *testing.T) {
	m := newTestModel(t)

	m = step(m, keyMsg("up"))

	t0 := time.Now()
	m = step(m, FrameMsg(t0))
	m = step(m, FrameMsg(t0.Add(250*time.Millisecond)))

	snap := m.session.Snapshot()
	if snap.Dir != game.DirUp {
		t.Errorf("dir = %v, want up", snap.Dir)
	}
}

func TestModelQuitKey(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("cmd returned %T, want tea.QuitMsg", cmd())
	}
	if next.(GameModel).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelSaveThenLoad(t *testing.T) {
	m := newTestModel(t)

	m = step(m, keyMsg("s"))
	if m.status != "Game saved" {
		t.Fatalf("status = %q after save", m.status)
	}

	// Advance a bit, then load back to the saved position.
	t0 := time.Now()
	m = step(m, FrameMsg(t0))
	m = step(m, FrameMsg(t0.Add(450*time.Millisecond)))
	moved := m.session.Snapshot().Snake[0]

	m = step(m, keyMsg("l"))
	if m.status != "Game loaded" {
		t.Fatalf("status = %q after load", m.status)
	}
	if got := m.session.Snapshot().Snake[0]; got == moved {
		t.Error("load did not restore the saved position")
	}
}

func TestModelLoadWithoutSaveFails(t *testing.T) {
	m := newTestModel(t)

	m = step(m, keyMsg("l"))
	if m.status != "Load failed" {
		t.Errorf("status = %q, want load failure", m.status)
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t)

	m = step(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d after resize", m.screen.Width(), m.screen.Height())
	}
}
