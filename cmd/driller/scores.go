package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-driller/internal/platform/tui"
	"github.com/vovakirdan/tui-driller/internal/registry"
	"github.com/vovakirdan/tui-driller/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresJSON  bool
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show the deepest runs",
	Long: `Display the deepest recorded runs for a variant (default: driller).

Examples:
  driller scores
  driller scores driller_wrap --limit 25
  driller scores --json
  driller scores --tui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresJSON, "json", false, "Print runs as JSON")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse runs for every variant interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded run for the variant")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "driller"
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'driller list' to see them", gameID)
	}
	info, _ := registry.Info(gameID)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagScoresTUI:
		cfg := terminalConfig()
		_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
		return err
	case flagScoresClear:
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all runs for %s.\n", info.Title)
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	if flagScoresJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(scores)
	}

	fmt.Printf("Deepest Runs - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'driller play %s' to set the first record!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-9s  %-12s  %s\n", "Rank", "Depth", "Stage", "Outcome", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-9s  %-12s  %s\n", "----", "-----", "-----", "-------", "------", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-6d  %-5d  %-9s  %s  %s\n",
			i+1, e.Depth, e.Stage, orDash(e.Outcome), runewidth.FillRight(runewidth.Truncate(orDash(e.Player), 12, "~"), 12),
			e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  |  Runs: %d  |  Average depth: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
