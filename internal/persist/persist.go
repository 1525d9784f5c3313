// Package persist stores the save slot and the high-score record as JSON
// files in the data directory. Every failure is reported to the caller and
// logged; nothing here ever stops the game.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/oskolkov/snaketui/internal/game"
)

const (
	saveFile      = "save_slot.json"
	highScoreFile = "highscore.json"
)

// Adapter reads and writes the fixed-slot records under a data directory.
type Adapter struct {
	dir    string
	logger *log.Logger
}

// New creates an adapter rooted at dir. A nil logger discards output.
func New(dir string, logger *log.Logger) *Adapter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Adapter{dir: dir, logger: logger}
}

// savedGame is the wire shape of the save slot. Cells are [x,y] pairs and
// the direction is a [dx,dy] unit delta. Speed is intentionally not stored;
// it is recomputed from the level index on load.
type savedGame struct {
	Snake      [][2]int `json:"snake"`
	Direction  *[2]int  `json:"direction"`
	Food       *[2]int  `json:"food"`
	Score      *int     `json:"score"`
	LevelIndex *int     `json:"level_index"`
}

type savedHighScore struct {
	HighScore int `json:"highscore"`
}

// SaveGame overwrites the save slot with the given state.
func (a *Adapter) SaveGame(st game.State) error {
	rec := savedGame{
		Snake:      make([][2]int, len(st.Snake)),
		Direction:  &[2]int{st.Dir.DX, st.Dir.DY},
		Food:       &[2]int{st.Food.X, st.Food.Y},
		Score:      &st.Score,
		LevelIndex: &st.LevelIndex,
	}
	for i, c := range st.Snake {
		rec.Snake[i] = [2]int{c.X, c.Y}
	}

	if err := a.writeJSON(saveFile, rec); err != nil {
		a.logger.Error("failed to save game", "error", err)
		return err
	}
	a.logger.Info("game saved", "score", st.Score, "level", st.LevelIndex)
	return nil
}

// LoadGame reads the save slot. Any missing or malformed field fails the
// load; the caller's live session stays untouched.
func (a *Adapter) LoadGame() (game.State, error) {
	var rec savedGame
	if err := a.readJSON(saveFile, &rec); err != nil {
		a.logger.Warn("failed to load game", "error", err)
		return game.State{}, err
	}

	if len(rec.Snake) == 0 || rec.Direction == nil || rec.Food == nil ||
		rec.Score == nil || rec.LevelIndex == nil {
		err := errors.New("persist: save slot is missing required fields")
		a.logger.Warn("failed to load game", "error", err)
		return game.State{}, err
	}

	st := game.State{
		Snake:      make([]game.Cell, len(rec.Snake)),
		Dir:        game.Direction{DX: rec.Direction[0], DY: rec.Direction[1]},
		Food:       game.Cell{X: rec.Food[0], Y: rec.Food[1]},
		Score:      *rec.Score,
		LevelIndex: *rec.LevelIndex,
	}
	for i, p := range rec.Snake {
		st.Snake[i] = game.Cell{X: p[0], Y: p[1]}
	}
	return st, nil
}

// SaveHighScore overwrites the high-score record.
func (a *Adapter) SaveHighScore(score int) error {
	if err := a.writeJSON(highScoreFile, savedHighScore{HighScore: score}); err != nil {
		a.logger.Error("failed to save high score", "error", err)
		return err
	}
	return nil
}

// LoadHighScore reads the high-score record, defaulting to 0 when the file
// is absent, unreadable, or malformed.
func (a *Adapter) LoadHighScore() int {
	var rec savedHighScore
	if err := a.readJSON(highScoreFile, &rec); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			a.logger.Warn("failed to load high score", "error", err)
		}
		return 0
	}
	if rec.HighScore < 0 {
		return 0
	}
	return rec.HighScore
}

func (a *Adapter) writeJSON(name string, v any) error {
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return fmt.Errorf("persist: cannot create data directory: %w", err)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("persist: cannot encode %s: %w", name, err)
	}
	path := filepath.Join(a.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("persist: cannot write %s: %w", name, err)
	}
	return nil
}

func (a *Adapter) readJSON(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(a.dir, name))
	if err != nil {
		return fmt.Errorf("persist: cannot read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("persist: cannot decode %s: %w", name, err)
	}
	return nil
}
