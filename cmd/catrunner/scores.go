package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cat-runner/internal/games/catrunner"
	"github.com/vovakirdan/cat-runner/internal/platform/tui"
	"github.com/vovakirdan/cat-runner/internal/storage"
)

var (
	flagTable bool
	flagLimit int
	flagReset bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best score and top runs",
	Long: `Display the stored best score and the top runs.

Examples:
  catrunner scores
  catrunner scores --limit 25
  catrunner scores --table
  catrunner scores --reset`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagTable, "table", false, "Browse runs in an interactive table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete the best score and the run history")
}

func runScores(cmd *cobra.Command, _ []string) error {
	loaded, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg := loaded.Config

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagReset {
		if err := store.Delete(cfg.Storage.BestKey); err != nil {
			return err
		}
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Best score and run history cleared.")
		return nil
	}

	best, err := catrunner.NewBestScore(store, cfg.Storage.BestKey).Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if flagTable {
		size := terminalSize()
		return tui.RunScoreboard(store, best, size.W, size.H)
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fmt.Println("High Scores - Cat Runner")
	fmt.Println()
	fmt.Printf("Best: %d\n", best)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'catrunner play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-10s  %-16s  %s\n", "Rank", "Score", "Seed", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %-16s  %s\n", "----", "-----", "----", "------", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-10d  %-16s  %s\n",
			i+1, r.Score, r.Seed, r.Source, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(); err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Average: %.0f  Last played: %s\n",
			stats.Runs, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
