package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-driller/internal/bench"
	"github.com/vovakirdan/tui-driller/internal/config"
	"github.com/vovakirdan/tui-driller/internal/games/driller"
	"github.com/vovakirdan/tui-driller/internal/games/driller/sim"
)

var (
	flagBenchGames     int
	flagBenchWorkers   int
	flagBenchTicks     int
	flagBenchWrap      bool
	flagBenchQuiet     bool
	flagBenchGenerator string
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Play many autoplay games headlessly and summarize them",
	Long: `Run a batch of games driven by the autoplay bot and print depth
statistics. The batch is reproducible for a given --seed.

Examples:
  driller bench
  driller bench --games 1000 --workers 8
  driller bench --difficulty hard --generator strata`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	defaults := bench.DefaultOptions()
	benchCmd.Flags().IntVar(&flagBenchGames, "games", defaults.Games, "Number of games")
	benchCmd.Flags().IntVar(&flagBenchWorkers, "workers", defaults.Workers, "Parallel workers")
	benchCmd.Flags().IntVar(&flagBenchTicks, "max-ticks", defaults.MaxTicks, "Tick limit per game")
	benchCmd.Flags().BoolVar(&flagBenchWrap, "wrap", false, "Use the wraparound topology")
	benchCmd.Flags().BoolVar(&flagBenchQuiet, "quiet", false, "Hide the progress bar")
	benchCmd.Flags().StringVar(&flagBenchGenerator, "generator", "", "Field generator: uniform or strata")
	benchCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	benchCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runBench(cmd *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	settings, err := driller.LoadSettings(flagConfig, preset)
	if err != nil {
		return err
	}
	if flagBenchWrap {
		settings.Params.Topology = sim.TopologyWrap
	}
	if flagBenchGenerator != "" {
		gen, err := driller.ParseGenerator(flagBenchGenerator)
		if err != nil {
			return err
		}
		settings.Params.Generator = gen
	}

	opts := bench.Options{
		Games:    flagBenchGames,
		Workers:  flagBenchWorkers,
		MaxTicks: flagBenchTicks,
		Seed:     flagSeed,
		Settings: settings,
	}
	if opts.Seed == 0 {
		opts.Seed = bench.DefaultOptions().Seed
	}
	if !flagBenchQuiet {
		opts.Progress = os.Stderr
	}

	ctx, stop := signalContext()
	defer stop()

	report, err := bench.Run(ctx, opts)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("driller bench (seed %d)", opts.Seed)
	return bench.WriteReport(cmd.OutOrStdout(), title, report)
}
