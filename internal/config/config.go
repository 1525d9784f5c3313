// Package config provides YAML-based game configuration with an embedded
// default, covering the grid, scoring, and the level progression table.
package config

import (
	"fmt"

	"github.com/oskolkov/snaketui/internal/game"
)

// Config is the full game configuration.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Scoring ScoringConfig `yaml:"scoring"`
	Levels  []LevelConfig `yaml:"levels"`
}

// GridConfig sets the playfield dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ScoringConfig sets how points are awarded.
type ScoringConfig struct {
	FoodPoints int `yaml:"food_points"`
}

// LevelConfig is one row of the level table.
type LevelConfig struct {
	Score int `yaml:"score"` // score threshold at which the level activates
	Speed int `yaml:"speed"` // snake moves per second
}

// Default returns the built-in configuration: a 30x20 grid, 10 points per
// food, four levels from 5 to 15 moves per second.
func Default() Config {
	return Config{
		Grid:    GridConfig{Width: 30, Height: 20},
		Scoring: ScoringConfig{FoodPoints: 10},
		Levels: []LevelConfig{
			{Score: 0, Speed: 5},
			{Score: 50, Speed: 8},
			{Score: 100, Speed: 12},
			{Score: 150, Speed: 15},
		},
	}
}

// Validate checks the invariants the session relies on: a playable grid,
// positive scoring, and an ascending level table that starts at score 0.
func (c Config) Validate() error {
	if c.Grid.Width < 4 || c.Grid.Height < 4 {
		return fmt.Errorf("config: grid %dx%d is too small to play on", c.Grid.Width, c.Grid.Height)
	}
	if c.Scoring.FoodPoints <= 0 {
		return fmt.Errorf("config: food_points must be positive, got %d", c.Scoring.FoodPoints)
	}
	if len(c.Levels) == 0 {
		return fmt.Errorf("config: level table is empty")
	}
	if c.Levels[0].Score != 0 {
		return fmt.Errorf("config: first level must start at score 0, got %d", c.Levels[0].Score)
	}
	prev := -1
	for i, lvl := range c.Levels {
		if lvl.Score <= prev {
			return fmt.Errorf("config: level %d threshold %d is not ascending", i, lvl.Score)
		}
		if lvl.Speed <= 0 {
			return fmt.Errorf("config: level %d speed must be positive, got %d", i, lvl.Speed)
		}
		prev = lvl.Score
	}
	return nil
}

// GameGrid converts the grid settings to the simulation type.
func (c Config) GameGrid() game.Grid {
	return game.Grid{Width: c.Grid.Width, Height: c.Grid.Height}
}

// LevelTable converts the level rows to the simulation type.
func (c Config) LevelTable() game.LevelTable {
	table := make(game.LevelTable, len(c.Levels))
	for i, lvl := range c.Levels {
		table[i] = game.Level{Threshold: lvl.Score, MovesPerSecond: lvl.Speed}
	}
	return table
}
