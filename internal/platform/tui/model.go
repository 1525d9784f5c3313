package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/oskolkov/snaketui/internal/audio"
	"github.com/oskolkov/snaketui/internal/core"
	"github.com/oskolkov/snaketui/internal/game"
	"github.com/oskolkov/snaketui/internal/persist"
	"github.com/oskolkov/snaketui/internal/storage"
)

// maxFrameDelta caps the delta fed into the accumulator so a suspended
// terminal does not burst dozens of ticks on resume.
const maxFrameDelta = 0.25

// statusDuration is how long HUD status messages stay visible.
const statusDuration = 2 * time.Second

// GameModel is the Bubble Tea model driving one game session. It is the
// single mutator of the session: ticks, input, and save/load all run on the
// update loop, never concurrently.
type GameModel struct {
	session *game.Session
	screen  *core.Screen
	keys    *KeyMapper
	sink    audio.Sink
	saves   *persist.Adapter
	store   *storage.Store // nil disables run recording
	logger  *log.Logger
	config  core.RuntimeConfig

	lastFrame   time.Time
	status      string
	statusUntil time.Time
	runRecorded bool
	quitting    bool
}

// NewGameModel wires a session to its collaborators. store may be nil.
func NewGameModel(
	session *game.Session,
	sink audio.Sink,
	saves *persist.Adapter,
	store *storage.Store,
	logger *log.Logger,
	cfg core.RuntimeConfig,
) GameModel {
	return GameModel{
		session: session,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:    NewKeyMapper(),
		sink:    sink,
		saves:   saves,
		store:   store,
		logger:  logger,
		config:  cfg,
	}
}

// Init starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	return frameCmd(m.config.FPS)
}

// Update handles frames, keys, and terminal resizes.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	}
	return m, nil
}

// handleFrame advances the simulation by the real time elapsed since the
// previous frame and routes the resulting events.
func (m GameModel) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	var dt float64
	if !m.lastFrame.IsZero() {
		dt = now.Sub(m.lastFrame).Seconds()
		if dt > maxFrameDelta {
			dt = maxFrameDelta
		}
	}
	m.lastFrame = now

	for _, ev := range m.session.Advance(dt) {
		m.handleEvent(ev)
	}

	if now.After(m.statusUntil) {
		m.status = ""
	}

	return m, frameCmd(m.config.FPS)
}

// handleEvent reacts to a tick side effect. Audio is fire-and-forget;
// persistence failures are logged and the game continues.
func (m *GameModel) handleEvent(ev game.Event) {
	switch ev {
	case game.EventEat:
		m.sink.PlayEat()
	case game.EventLevelUp:
		m.sink.PlayLevelUp()
	case game.EventGameOver:
		m.sink.PlayGameOver()
		m.recordGameOver()
	}
}

// recordGameOver persists the high score and appends the run to the
// history, once per run.
func (m *GameModel) recordGameOver() {
	if m.runRecorded {
		return
	}
	m.runRecorded = true

	snap := m.session.Snapshot()
	if err := m.saves.SaveHighScore(snap.HighScore); err != nil {
		m.logger.Warn("failed to save high score", "error", err)
	}

	if m.store != nil && snap.Score > 0 {
		if _, err := m.store.SaveRun(snap.Score, snap.LevelIndex, len(snap.Snake)); err != nil {
			m.logger.Warn("failed to record run", "error", err)
		}
	}
}

// handleKey maps a key press to a session command.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionMoveUp:
		m.session.Turn(game.DirUp)
	case core.ActionMoveDown:
		m.session.Turn(game.DirDown)
	case core.ActionMoveLeft:
		m.session.Turn(game.DirLeft)
	case core.ActionMoveRight:
		m.session.Turn(game.DirRight)
	case core.ActionTogglePause:
		m.session.TogglePause()
	case core.ActionRestart:
		if m.session.Snapshot().GameOver {
			m.session.Restart()
			m.runRecorded = false
		}
	case core.ActionSave:
		m.saveGame()
	case core.ActionLoad:
		m.loadGame()
	}
	return m, nil
}

// saveGame writes the current run to the save slot. Runs between ticks on
// the update loop, never during one.
func (m *GameModel) saveGame() {
	snap := m.session.Snapshot()
	if snap.GameOver || snap.Won {
		m.setStatus("Nothing to save")
		return
	}
	if err := m.saves.SaveGame(m.session.ExportState()); err != nil {
		m.setStatus("Save failed")
		return
	}
	m.setStatus("Game saved")
}

// loadGame restores the save slot. On any failure the live session is left
// untouched.
func (m *GameModel) loadGame() {
	st, err := m.saves.LoadGame()
	if err != nil {
		m.setStatus("Load failed")
		return
	}
	if err := m.session.RestoreState(st); err != nil {
		m.logger.Warn("rejected saved game", "error", err)
		m.setStatus("Load failed")
		return
	}
	m.runRecorded = false
	m.setStatus("Game loaded")
}

func (m *GameModel) setStatus(s string) {
	m.status = s
	m.statusUntil = time.Now().Add(statusDuration)
}

// View renders the current snapshot.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	Draw(m.screen, m.session.Snapshot(), m.status)
	return RenderScreen(m.screen)
}

// Run plays one session in the local terminal, blocking until quit.
func Run(
	session *game.Session,
	sink audio.Sink,
	saves *persist.Adapter,
	store *storage.Store,
	logger *log.Logger,
	cfg core.RuntimeConfig,
) error {
	model := NewGameModel(session, sink, saves, store, logger, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
