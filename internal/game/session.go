package game

import (
	"errors"
	"math/rand"
)

// Event signals a side effect of a tick that collaborators (audio, storage)
// react to. The session itself never performs I/O.
type Event int

const (
	EventEat Event = iota
	EventLevelUp
	EventGameOver
)

func (e Event) String() string {
	switch e {
	case EventEat:
		return "eat"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session is the tick state machine for one run. It owns the snake, food,
// and score exclusively; the level table is shared immutable state. A
// session must only be touched from a single goroutine.
type Session struct {
	grid       Grid
	levels     LevelTable
	foodPoints int
	rng        *rand.Rand

	snake          []Cell
	dir            Direction
	nextDir        Direction // buffered; applied at the start of the next tick
	food           Cell
	score          int
	levelIndex     int
	movesPerSecond int
	acc            float64
	gameOver       bool
	paused         bool
	won            bool // board filled completely; nothing left to spawn
	highScore      int
}

// NewSession creates a session ready to play. The level table must be
// non-empty and ascending; config validation guarantees that before this
// point.
func NewSession(grid Grid, levels LevelTable, foodPoints int, seed int64) *Session {
	s := &Session{
		grid:       grid,
		levels:     levels,
		foodPoints: foodPoints,
		rng:        rand.New(rand.NewSource(seed)),
	}
	s.Reset()
	return s
}

// Reset starts a fresh run: length-1 snake at the grid center, moving
// right, fresh food, score 0, level 0. The high score carries over.
func (s *Session) Reset() {
	s.snake = []Cell{s.grid.Center()}
	s.dir = DirRight
	s.nextDir = DirRight
	s.score = 0
	s.levelIndex = 0
	s.movesPerSecond = s.levels.Speed(0)
	s.acc = 0
	s.gameOver = false
	s.paused = false
	s.won = false
	s.food, _ = SpawnFood(s.snake, s.grid, s.rng)
}

// Turn buffers a direction change for the next tick. Reversal of the
// direction the snake last moved in is ignored. Accepted in every state.
func (s *Session) Turn(d Direction) {
	s.nextDir = ApplyTurn(s.dir, d)
}

// TogglePause flips the paused flag. Ignored once the run is over.
func (s *Session) TogglePause() {
	if s.gameOver {
		return
	}
	s.paused = !s.paused
}

// Restart begins a new run after game over. In any other state it is a
// no-op so a stray keypress cannot wipe a live game.
func (s *Session) Restart() {
	if !s.gameOver {
		return
	}
	s.Reset()
}

// Advance accumulates frame delta time and executes whole ticks while the
// accumulator holds at least one tick interval. Several ticks can fire on a
// slow frame, none on a fast one; each tick completes fully before the
// next. Paused and finished sessions do not accumulate time.
func (s *Session) Advance(dt float64) []Event {
	if s.gameOver || s.paused || s.won || dt <= 0 {
		return nil
	}

	s.acc += dt
	var events []Event
	for {
		interval := 1.0 / float64(s.movesPerSecond)
		if s.acc < interval {
			break
		}
		s.acc -= interval
		s.tick(&events)
		if s.gameOver || s.won {
			break
		}
	}
	return events
}

// tick advances the snake by one cell and applies the consequences.
func (s *Session) tick(events *[]Event) {
	if s.gameOver || s.paused {
		return
	}

	s.dir = s.nextDir
	next := NextHead(s.snake, s.dir)

	if WouldCollide(next, s.snake, s.grid) {
		s.gameOver = true
		if s.score > s.highScore {
			s.highScore = s.score
		}
		*events = append(*events, EventGameOver)
		return
	}

	ate := next == s.food && !s.won
	s.snake = Advance(s.snake, next, ate)

	if !ate {
		return
	}

	s.score += s.foodPoints
	*events = append(*events, EventEat)

	if food, ok := SpawnFood(s.snake, s.grid, s.rng); ok {
		s.food = food
	} else {
		// The snake covers the board. Park the food off-grid and stop
		// ticking; the run counts as won.
		s.won = true
		s.food = Cell{X: -1, Y: -1}
		if s.score > s.highScore {
			s.highScore = s.score
		}
	}

	if lvl := s.levels.LevelFor(s.score); lvl != s.levelIndex {
		s.levelIndex = lvl
		s.movesPerSecond = s.levels.Speed(lvl)
		*events = append(*events, EventLevelUp)
	}
}

// HighScore returns the best score seen by this session.
func (s *Session) HighScore() int {
	return s.highScore
}

// SetHighScore seeds the high score, typically from persisted state.
func (s *Session) SetHighScore(hs int) {
	if hs > s.highScore {
		s.highScore = hs
	}
}

// State is the serializable portion of a session: exactly what the save
// slot stores. Speed is deliberately absent; it is recomputed from the
// level index on restore.
type State struct {
	Snake      []Cell
	Dir        Direction
	Food       Cell
	Score      int
	LevelIndex int
}

// ExportState captures the current run for saving.
func (s *Session) ExportState() State {
	snake := make([]Cell, len(s.snake))
	copy(snake, s.snake)
	return State{
		Snake:      snake,
		Dir:        s.dir,
		Food:       s.food,
		Score:      s.score,
		LevelIndex: s.levelIndex,
	}
}

var (
	errEmptySnake   = errors.New("game: saved snake is empty")
	errOutOfBounds  = errors.New("game: saved cell out of bounds")
	errOverlap      = errors.New("game: saved snake overlaps itself")
	errBadDirection = errors.New("game: saved direction is not a unit step")
	errBadScore     = errors.New("game: saved score is negative")
	errFoodOnSnake  = errors.New("game: saved food overlaps snake")
)

// RestoreState replaces the live run with a saved one. On any validation
// failure the session is left untouched. Speed is recomputed from the level
// index, and pause/game-over flags reset, so a tampered save cannot freeze
// or speed up the game.
func (s *Session) RestoreState(st State) error {
	if len(st.Snake) == 0 {
		return errEmptySnake
	}
	seen := make(map[Cell]bool, len(st.Snake))
	for _, c := range st.Snake {
		if !s.grid.InBounds(c) {
			return errOutOfBounds
		}
		if seen[c] {
			return errOverlap
		}
		seen[c] = true
	}
	switch st.Dir {
	case DirUp, DirDown, DirLeft, DirRight:
	default:
		return errBadDirection
	}
	if st.Score < 0 {
		return errBadScore
	}
	if !s.grid.InBounds(st.Food) {
		return errOutOfBounds
	}
	if seen[st.Food] {
		return errFoodOnSnake
	}

	s.snake = make([]Cell, len(st.Snake))
	copy(s.snake, st.Snake)
	s.dir = st.Dir
	s.nextDir = st.Dir
	s.food = st.Food
	s.score = st.Score
	s.levelIndex = st.LevelIndex
	if s.levelIndex < 0 {
		s.levelIndex = 0
	}
	if s.levelIndex >= len(s.levels) {
		s.levelIndex = len(s.levels) - 1
	}
	s.movesPerSecond = s.levels.Speed(s.levelIndex)
	s.acc = 0
	s.gameOver = false
	s.paused = false
	s.won = false
	return nil
}
