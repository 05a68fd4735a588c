package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresLimit int
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs and the all-time high score.

Examples:
  snake scores
  snake scores --limit 25
  snake scores -i                 # scrollable table
  snake scores --db scores.json`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", storage.DefaultTopRuns, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a scrollable table")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores store: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		return err
	}
	best, err := store.LoadHighScore()
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Snake")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-6s  %-6s  %-8s  %s\n", "Rank", "Score", "Level", "Length", "Time", "Ended by", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "-----", "------", "----", "--------", "----")

	for _, row := range tui.RunRows(runs) {
		fmt.Printf("  %-4s  %-6s  %-5s  %-6s  %-6s  %-8s  %s\n", row[0], row[1], row[2], row[3], row[4], row[5], row[6])
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", best)
	return nil
}
