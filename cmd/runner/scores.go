package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravity-runner/internal/registry"
	"github.com/vovakirdan/gravity-runner/internal/storage"
)

var (
	flagLimit   int
	flagAllRuns bool
	flagRunID   string
	flagClear   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the best runs and overall stats.

Examples:
  runner scores
  runner scores --limit 20
  runner scores --all
  runner scores --run 5f0c...
  runner scores --clear
  runner scores --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagAllRuns, "all", false, "Show every recorded run")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single run by id")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
	scoresCmd.MarkFlagsMutuallyExclusive("all", "run", "clear")
}

func runScores(_ *cobra.Command, _ []string) error {
	sim, err := registry.Default()
	if err != nil {
		return err
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearRuns(sim.ID); err != nil {
			return err
		}
		fmt.Printf("Cleared all %s runs.\n", sim.Title)
		return nil
	case flagRunID != "":
		return printRun(store, flagRunID)
	}

	var runs []storage.RunRecord
	if flagAllRuns {
		runs, err = store.AllRuns(sim.ID)
	} else {
		runs, err = store.TopRuns(sim.ID, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", sim.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-8s  %-7s  %-9s  %s\n", "Rank", "Player", "Runner", "Score", "Peak km/s", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %-7s  %-9s  %s\n", "----", "------", "------", "-----", "---------", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-16s  %-8s  %-7d  %-9.0f  %s\n",
			i+1, r.Player, r.Character, r.Score, r.PeakSpeed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(sim.ID)
	if err == nil && stats != nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.1f  Time played: %.0fs\n",
			stats.RunsCount, stats.HighScore, stats.AvgScore, stats.TotalTime)
	}
	return nil
}

func printRun(store *storage.Store, id string) error {
	r, err := store.RunByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no run with id %q", id)
	}

	fmt.Printf("Run       %s\n", r.RunID)
	fmt.Printf("Player    %s\n", r.Player)
	fmt.Printf("Runner    %s\n", r.Character)
	fmt.Printf("Preset    %s\n", r.Preset)
	fmt.Printf("Score     %d\n", r.Score)
	fmt.Printf("Peak      %.0f km/s\n", r.PeakSpeed)
	fmt.Printf("Duration  %.1fs\n", r.DurationSecs)
	fmt.Printf("Played    %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}
