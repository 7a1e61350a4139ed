// driller is a terminal digging game: bore down through colored blocks
// before the air runs out.
//
// Usage:
//
//	driller list                  - List game variants
//	driller play [variant]        - Play a game
//	driller menu                  - Start menu to pick a variant interactively
//	driller scores <variant>      - Show the deepest runs
//	driller serve                 - Start SSH server for remote play
//	driller leaderboard           - Run the HTTP leaderboard service
//	driller replay info|verify|watch <file>
//	driller bench                 - Play many autoplay games headlessly
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.driller/scores.db)
//	--debug         - Write a debug log to ~/.driller/driller.log
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/tui-driller/internal/games/driller"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "driller",
	Short: "Driller - dig down through colored blocks in your terminal",
	Long: `Driller is a terminal digging game. Bore down through colored blocks,
keep an eye on your air, and get out of the way when the blocks above you
start to shake.

Available commands:
  list         - Show the game variants
  play         - Play a variant directly
  menu         - Interactive variant picker
  scores       - View the deepest runs
  serve        - Start SSH server for remote play
  leaderboard  - Run the HTTP leaderboard service
  replay       - Inspect, verify or watch recorded runs
  bench        - Play many autoplay games and summarize them

Examples:
  driller play
  driller play driller_wrap --difficulty hard
  driller menu
  driller serve --ssh :2222
  driller scores driller`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: closeLogging,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.driller/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write a debug log to ~/.driller/driller.log")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(benchCmd)
}
