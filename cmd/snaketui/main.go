// snaketui is a terminal snake game.
//
// Usage:
//
//	snaketui play             - Play in the local terminal
//	snaketui scores           - Show the run history
//	snaketui serve            - Start an SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Render frame rate (default: 60)
//	--seed <value>     - RNG seed for reproducible food placement
//	--data-dir <path>  - Data directory (default: ~/.snaketui)
//	--db <path>        - Run history database (default: <data-dir>/runs.db)
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDataDir string
	flagDBPath  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snaketui",
	Short: "Snake in your terminal",
	Long: `snaketui is a terminal snake game with levels, sound, save slots,
and a persistent run history. It can also serve the game over SSH.

Examples:
  snaketui play
  snaketui play --config ./my-rules.yaml --mute
  snaketui scores --browse
  snaketui serve --ssh :2222`,
	// Bare "snaketui" starts a game.
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Render frame rate")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "~/.snaketui", "Data directory")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Run history database (default: <data-dir>/runs.db)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// dataDir resolves --data-dir, expanding a leading ~.
func dataDir() (string, error) {
	dir := flagDataDir
	if strings.HasPrefix(dir, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
	}
	return dir, nil
}

// dbPath resolves --db, defaulting to runs.db inside the data directory.
func dbPath() (string, error) {
	if flagDBPath != "" {
		return flagDBPath, nil
	}
	dir, err := dataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "runs.db"), nil
}
