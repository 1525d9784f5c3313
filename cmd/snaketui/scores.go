package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oskolkov/snaketui/internal/platform/tui"
	"github.com/oskolkov/snaketui/internal/storage"
)

var flagBrowse bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the top 10 runs, or browse the full history interactively.

Examples:
  snaketui scores
  snaketui scores --browse`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse the history in a full-screen table")
}

func runScores(_ *cobra.Command, _ []string) {
	path, err := dbPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snaketui play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-7s  %s\n", "Rank", "Score", "Level", "Length", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-7s  %s\n", "----", "-----", "-----", "------", "----")

	for i, entry := range runs {
		fmt.Printf("  %-4d  %-8d  %-6d  %-7d  %s\n",
			i+1, entry.Score, entry.Level+1, entry.SnakeLen,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetStats()
	if err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d   Best: %d   Average: %.1f\n", stats.Runs, stats.HighScore, stats.AvgScore)
	}
}
