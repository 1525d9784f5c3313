package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oskolkov/snaketui/internal/audio"
	"github.com/oskolkov/snaketui/internal/config"
	"github.com/oskolkov/snaketui/internal/core"
	"github.com/oskolkov/snaketui/internal/game"
	"github.com/oskolkov/snaketui/internal/persist"
	"github.com/oskolkov/snaketui/internal/platform/tui"
	"github.com/oskolkov/snaketui/internal/storage"
)

var (
	flagConfig string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start a game in the local terminal.

Controls:
  Arrows     - Steer the snake
  Space/P    - Pause
  S          - Save the game
  L          - Load the saved game
  R/Enter    - Restart (after game over)
  Q/Esc      - Quit

Examples:
  snaketui play
  snaketui play --mute
  snaketui play --config ./my-rules.yaml
  snaketui play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game rules YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(_ *cobra.Command, _ []string) {
	dir, err := dataDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newFileLogger(dir)

	conf, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Defaults cover the case where stdout is not a terminal.
	cfg := core.DefaultRuntimeConfig()
	cfg.FPS = flagFPS
	cfg.Seed = seed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	session := game.NewSession(conf.GameGrid(), conf.LevelTable(), conf.Scoring.FoodPoints, seed)

	saves := persist.New(dir, logger)
	session.SetHighScore(saves.LoadHighScore())

	sink := audio.NewSink(flagMute)

	// Run history is optional; the game works without it.
	path, err := dbPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open run history database", "error", err)
		store = nil
	}

	runErr := tui.Run(session, sink, saves, store, logger, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// newFileLogger logs to <dir>/snaketui.log. Stderr is not an option while
// the alternate screen is active, so on failure logs are discarded.
func newFileLogger(dir string) *log.Logger {
	var w io.Writer = io.Discard
	if err := os.MkdirAll(dir, 0o755); err == nil {
		f, err := os.OpenFile(filepath.Join(dir, "snaketui.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			w = f
		}
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snaketui",
	})
}
