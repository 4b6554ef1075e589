package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bombjack/internal/core"
	"github.com/vovakirdan/bombjack/internal/platform/tui"
	"github.com/vovakirdan/bombjack/internal/registry"
	"github.com/vovakirdan/bombjack/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresStats bool
	flagScoresClear bool
	flagScoresTable bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top scores for a game (bombjack by default).

Examples:
  bombjack scores
  bombjack scores bombjack-debug --limit 20
  bombjack scores --limit 0               # Every recorded round
  bombjack scores --stats
  bombjack scores --table
  bombjack scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show (0 shows all)")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show per-game statistics")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the game")
	scoresCmd.Flags().BoolVar(&flagScoresTable, "table", false, "Browse scores in an interactive table")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := gameArg(args)

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'bombjack list' to see available games", gameID)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Scores for %s cleared.\n", gameID)
		return nil

	case flagScoresStats:
		return printStats(store)

	case flagScoresTable:
		cfg := terminalConfig()
		_, err := tui.RunScoreboard(store, playerName(), cfg.ScreenW, cfg.ScreenH)
		return err
	}

	return printScores(store, gameID)
}

func printScores(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	var scores []storage.ScoreEntry
	if flagScoresLimit <= 0 {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'bombjack play %s' to set the first high score!\n", gameID)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %8s  %5s  %s\n", "Rank", "Player", "Score", "Bombs", "Date")
	fmt.Printf("  %-4s  %-12s  %8s  %5s  %s\n", "----", "------", "-----", "-----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-12s  %8s  %5d  %s\n",
			i+1, entry.Player, core.FormatScore(entry.Score), entry.Bombs,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printStats(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No rounds played yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-16s  %6s  %8s  %8s  %6s  %s\n", "Game", "Rounds", "Best", "Average", "Bombs", "Last played")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-16s  %6d  %8s  %8.0f  %6d  %s\n",
			id, s.GamesCount, core.FormatScore(s.HighScore), s.AvgScore, s.TotalBombs,
			s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
