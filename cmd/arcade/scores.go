package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/actor-arcade/internal/registry"
	"github.com/vovakirdan/actor-arcade/internal/storage"
)

var flagRuns int

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and recent runs",
	Long: `Display the top 10 high scores, aggregate stats and the most recent
runs for the specified game. Without a game, shows recent runs across
all games.

Examples:
  arcade scores asteroids
  arcade scores zombies --runs 10
  arcade scores`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of recent runs to show")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		return printRuns(store, "")
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	title := gameID
	for _, g := range registry.List() {
		if g.ID == gameID {
			title = g.Title
		}
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d   Games: %d   Average: %.1f   Played: %s\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalTime.Round(time.Second))
	}

	fmt.Println()
	return printRuns(store, gameID)
}

func printRuns(store *storage.Store, gameID string) error {
	runs, err := store.RecentRuns(gameID, flagRuns)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Println("Recent runs")
	if len(runs) == 0 {
		fmt.Println("  none")
		return nil
	}

	fmt.Printf("  %-10s  %-8s  %-8s  %-10s  %s\n", "Game", "Score", "Frames", "Ended", "Date")
	for _, r := range runs {
		fmt.Printf("  %-10s  %-8d  %-8d  %-10s  %s\n",
			r.GameID, r.Score, r.Frames, r.EndReason, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
