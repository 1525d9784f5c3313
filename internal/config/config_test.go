package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	cfg, err := parse(defaultYAML, "embedded")
	if err != nil {
		t.Fatalf("embedded default failed to parse: %v", err)
	}

	want := Default()
	if cfg.Grid != want.Grid {
		t.Errorf("grid = %+v, expected %+v", cfg.Grid, want.Grid)
	}
	if cfg.Scoring != want.Scoring {
		t.Errorf("scoring = %+v, expected %+v", cfg.Scoring, want.Scoring)
	}
	if len(cfg.Levels) != len(want.Levels) {
		t.Fatalf("level count = %d, expected %d", len(cfg.Levels), len(want.Levels))
	}
	for i := range cfg.Levels {
		if cfg.Levels[i] != want.Levels[i] {
			t.Errorf("level %d = %+v, expected %+v", i, cfg.Levels[i], want.Levels[i])
		}
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tiny grid", func(c *Config) { c.Grid.Width = 2 }},
		{"zero food points", func(c *Config) { c.Scoring.FoodPoints = 0 }},
		{"no levels", func(c *Config) { c.Levels = nil }},
		{"first level not zero", func(c *Config) { c.Levels[0].Score = 10 }},
		{"non-ascending thresholds", func(c *Config) { c.Levels[2].Score = c.Levels[1].Score }},
		{"zero speed", func(c *Config) { c.Levels[1].Speed = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := []byte(`
grid: { width: 40, height: 25 }
scoring: { food_points: 5 }
levels:
  - { score: 0, speed: 3 }
  - { score: 30, speed: 6 }
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Width != 40 || cfg.Grid.Height != 25 {
		t.Errorf("grid = %+v", cfg.Grid)
	}
	if cfg.Scoring.FoodPoints != 5 {
		t.Errorf("food points = %d, expected 5", cfg.Scoring.FoodPoints)
	}
	if len(cfg.Levels) != 2 || cfg.Levels[1].Speed != 6 {
		t.Errorf("levels = %+v", cfg.Levels)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom path should be an error")
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("levels: {not a list}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("malformed custom config should be an error")
	}
}

func TestLevelTableConversion(t *testing.T) {
	table := Default().LevelTable()

	if table.LevelFor(0) != 0 {
		t.Error("LevelFor(0) should be 0")
	}
	if table.LevelFor(50) != 1 || table.Speed(1) != 8 {
		t.Error("score 50 should map to level 1 at speed 8")
	}

	grid := Default().GameGrid()
	if grid.Width != 30 || grid.Height != 20 {
		t.Errorf("grid = %+v", grid)
	}
}
