// Package bench plays many autoplay driller games headlessly and summarizes
// how deep the bot gets.
package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"
	"gonum.org/v1/gonum/stat"

	"github.com/vovakirdan/tui-driller/internal/games/driller"
	"github.com/vovakirdan/tui-driller/internal/games/driller/sim"
)

// ctxCheckEvery is how many ticks a worker runs between cancellation checks.
const ctxCheckEvery = 512

// Options configures a batch.
type Options struct {
	Games    int
	Workers  int
	MaxTicks int // per game, across all stages
	Seed     int64
	Settings driller.Settings

	// Progress receives the progress bar; nil hides it.
	Progress io.Writer
}

// DefaultOptions returns a small batch on the default settings.
func DefaultOptions() Options {
	return Options{
		Games:    100,
		Workers:  4,
		MaxTicks: 20000,
		Seed:     1,
		Settings: driller.DefaultSettings(),
	}
}

func (o Options) validate() error {
	switch {
	case o.Games < 1:
		return errors.New("bench: games must be positive")
	case o.Workers < 1:
		return errors.New("bench: workers must be positive")
	case o.MaxTicks < 1:
		return errors.New("bench: max ticks must be positive")
	}
	if err := o.Settings.Params.Validate(); err != nil {
		return fmt.Errorf("bench: %w", err)
	}
	return nil
}

// GameResult is the outcome of one game.
type GameResult struct {
	Index   int
	Seed    int64
	Depth   int
	Stage   int
	Clears  int
	Frames  int
	Outcome sim.Outcome // OutcomePlaying or OutcomeCleared when MaxTicks ran out
}

// Report holds every game result and their summary.
type Report struct {
	Results []GameResult
	Summary Summary
	Elapsed time.Duration
}

// Run plays opts.Games games over opts.Workers goroutines. Each game gets
// its own seed drawn from opts.Seed, so a batch is reproducible regardless
// of worker count.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	seeds := make([]int64, opts.Games)
	rng := rand.New(rand.NewSource(opts.Seed))
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	bar := pb.New(opts.Games)
	if opts.Progress == nil {
		bar.SetWriter(io.Discard)
	} else {
		bar.SetWriter(opts.Progress)
	}
	bar.Start()

	jobs := make(chan int)
	results := make([]GameResult, opts.Games)

	wg := new(sync.WaitGroup)
	wg.Add(opts.Workers)
	for w := 0; w < opts.Workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				r, ok := play(ctx, opts, seeds[i])
				if !ok {
					continue
				}
				r.Index = i
				results[i] = r
				bar.Increment()
			}
		}()
	}

feed:
	for i := range seeds {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	elapsed := time.Since(bar.StartTime())
	bar.Finish()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Report{Results: results, Summary: Summarize(results), Elapsed: elapsed}, nil
}

// play runs one game. It reports false when ctx was cancelled mid-game.
func play(ctx context.Context, opts Options, seed int64) (GameResult, bool) {
	s := driller.NewSession(opts.Settings, seed)
	bot := driller.NewBot()
	r := GameResult{Seed: seed}

	for tick := 0; tick < opts.MaxTicks; tick++ {
		if tick%ctxCheckEvery == 0 && ctx.Err() != nil {
			return r, false
		}
		g := s.Game()
		if g.Over() {
			break
		}
		if g.Cleared() {
			s.NextStage()
			bot = driller.NewBot()
		}
		s.Tick(bot.Next(s.Game()))
		if s.Game().Cleared() {
			r.Clears++
		}
	}

	g := s.Game()
	r.Depth = g.Depth()
	r.Stage = g.Stage()
	r.Frames = g.Frame()
	r.Outcome = g.Outcome()
	return r, true
}

// Summary aggregates a batch.
type Summary struct {
	Games        int
	MeanDepth    float64
	StdDepth     float64
	MedianDepth  float64
	P90Depth     float64
	MaxDepth     int
	MeanStage    float64
	ClearRate    float64 // fraction of games that cleared at least one stage
	Crushed      int
	AirOut       int
	EndedCleared int // ran out of ticks on a cleared stage, before moving on
	TimedOut     int // ran out of ticks mid-stage
	TotalFrames  int
}

// Summarize computes the summary of results.
func Summarize(results []GameResult) Summary {
	sum := Summary{Games: len(results)}
	if len(results) == 0 {
		return sum
	}

	depths := make([]float64, len(results))
	stages := make([]float64, len(results))
	cleared := 0
	for i, r := range results {
		depths[i] = float64(r.Depth)
		stages[i] = float64(r.Stage)
		if r.Depth > sum.MaxDepth {
			sum.MaxDepth = r.Depth
		}
		if r.Clears > 0 {
			cleared++
		}
		switch r.Outcome {
		case sim.OutcomeCrushed:
			sum.Crushed++
		case sim.OutcomeAirOut:
			sum.AirOut++
		case sim.OutcomeCleared:
			sum.EndedCleared++
		default:
			sum.TimedOut++
		}
		sum.TotalFrames += r.Frames
	}

	sum.MeanDepth, sum.StdDepth = stat.MeanStdDev(depths, nil)
	sum.MeanStage = stat.Mean(stages, nil)
	sort.Float64s(depths)
	sum.MedianDepth = stat.Quantile(0.5, stat.Empirical, depths, nil)
	sum.P90Depth = stat.Quantile(0.9, stat.Empirical, depths, nil)
	sum.ClearRate = float64(cleared) / float64(len(results))
	return sum
}
