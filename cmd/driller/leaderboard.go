package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-driller/internal/leaderboard"
	"github.com/vovakirdan/tui-driller/internal/registry"
	"github.com/vovakirdan/tui-driller/internal/storage"
)

var (
	flagLBAddr   string
	flagLBAPIKey string
	flagLBURL    string
	flagLBLimit  int
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Run or query the HTTP leaderboard",
	Long: `Serve the deepest runs over HTTP, or query a running leaderboard.

Endpoints:
  GET  /healthz
  GET  /api/games/{variant}/scores?limit=N
  POST /api/games/{variant}/scores   {"name","depth","stage"}
  GET  /api/games/{variant}/stats

Submissions require the X-Api-Key header when --api-key (or
DRILLER_SCORE_API_KEY) is set.

Examples:
  driller leaderboard --addr :8088
  driller leaderboard top driller --url http://localhost:8088`,
	Args: cobra.NoArgs,
	RunE: runLeaderboard,
}

var leaderboardTopCmd = &cobra.Command{
	Use:   "top [variant]",
	Short: "Show the top runs from a leaderboard",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLeaderboardTop,
}

func init() {
	leaderboardCmd.Flags().StringVar(&flagLBAddr, "addr", leaderboard.DefaultServerConfig().Address, "HTTP listen address")
	leaderboardCmd.Flags().StringVar(&flagLBAPIKey, "api-key", os.Getenv(leaderboard.EnvKey), "Key required to submit runs")

	leaderboardTopCmd.Flags().StringVar(&flagLBURL, "url", os.Getenv(leaderboard.EnvURL), "Leaderboard base URL")
	leaderboardTopCmd.Flags().IntVar(&flagLBLimit, "limit", 10, "Number of runs to show")
	leaderboardCmd.AddCommand(leaderboardTopCmd)
}

func runLeaderboard(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	cfg := leaderboard.DefaultServerConfig()
	cfg.Address = flagLBAddr
	cfg.APIKey = flagLBAPIKey
	cfg.KnownGame = registry.Exists
	cfg.Logger = serverLogger("leaderboard")

	ctx, stop := signalContext()
	defer stop()
	return leaderboard.NewServer(store, cfg).ListenAndServe(ctx)
}

func runLeaderboardTop(_ *cobra.Command, args []string) error {
	gameID := "driller"
	if len(args) == 1 {
		gameID = args[0]
	}
	if flagLBURL == "" {
		return fmt.Errorf("no leaderboard URL, pass --url or set %s", leaderboard.EnvURL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := leaderboard.NewClient(flagLBURL, "")
	scores, err := client.Top(ctx, gameID, flagLBLimit)
	if err != nil {
		return err
	}
	stats, err := client.Stats(ctx, gameID)
	if err != nil {
		return err
	}

	fmt.Printf("Leaderboard - %s (%d runs, best %d)\n\n", gameID, stats.GamesCount, stats.HighScore)
	if len(scores) == 0 {
		fmt.Println("No runs submitted yet.")
		return nil
	}
	fmt.Printf("  %-4s  %-6s  %-5s  %s\n", "Rank", "Depth", "Stage", "Name")
	for _, s := range scores {
		fmt.Printf("  %-4d  %-6d  %-5d  %s\n", s.Rank, s.Depth, s.Stage, s.Name)
	}
	return nil
}
