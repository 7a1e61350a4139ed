package bench

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-driller/internal/games/driller"
	"github.com/vovakirdan/tui-driller/internal/games/driller/sim"
)

func smallOptions() Options {
	opts := DefaultOptions()
	opts.Games = 6
	opts.Workers = 3
	opts.MaxTicks = 1500
	opts.Seed = 42
	return opts
}

func TestRunReproducibleAcrossWorkers(t *testing.T) {
	opts := smallOptions()
	a, err := Run(context.Background(), opts)
	require.NoError(t, err)

	opts.Workers = 1
	b, err := Run(context.Background(), opts)
	require.NoError(t, err)

	require.Len(t, a.Results, opts.Games)
	assert.Equal(t, a.Results, b.Results)
	assert.Equal(t, a.Summary, b.Summary)
}

func TestRunResults(t *testing.T) {
	opts := smallOptions()
	r, err := Run(context.Background(), opts)
	require.NoError(t, err)

	seeds := map[int64]bool{}
	for i, g := range r.Results {
		assert.Equal(t, i, g.Index)
		assert.GreaterOrEqual(t, g.Stage, 1)
		assert.LessOrEqual(t, g.Frames, opts.MaxTicks)
		seeds[g.Seed] = true
	}
	assert.Len(t, seeds, opts.Games, "every game should get its own seed")
	assert.Greater(t, r.Summary.MaxDepth, 0, "the bot should dig somewhere")
}

func TestRunValidatesOptions(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
	}{
		{"no games", func(o *Options) { o.Games = 0 }},
		{"no workers", func(o *Options) { o.Workers = 0 }},
		{"no ticks", func(o *Options) { o.MaxTicks = 0 }},
		{"bad params", func(o *Options) { o.Settings.Params.Width = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := smallOptions()
			tt.modify(&opts)
			_, err := Run(context.Background(), opts)
			assert.Error(t, err)
		})
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, smallOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	results := []GameResult{
		{Depth: 10, Stage: 1, Frames: 100, Outcome: sim.OutcomeCrushed},
		{Depth: 20, Stage: 2, Clears: 1, Frames: 200, Outcome: sim.OutcomeAirOut},
		{Depth: 30, Stage: 2, Clears: 1, Frames: 300, Outcome: sim.OutcomePlaying},
		{Depth: 40, Stage: 3, Clears: 2, Frames: 400, Outcome: sim.OutcomeCrushed},
	}
	s := Summarize(results)

	assert.Equal(t, 4, s.Games)
	assert.InDelta(t, 25.0, s.MeanDepth, 1e-9)
	assert.InDelta(t, 12.909944, s.StdDepth, 1e-6)
	assert.Equal(t, 20.0, s.MedianDepth)
	assert.Equal(t, 40.0, s.P90Depth)
	assert.Equal(t, 40, s.MaxDepth)
	assert.InDelta(t, 2.0, s.MeanStage, 1e-9)
	assert.InDelta(t, 0.75, s.ClearRate, 1e-9)
	assert.Equal(t, 2, s.Crushed)
	assert.Equal(t, 1, s.AirOut)
	assert.Equal(t, 0, s.EndedCleared)
	assert.Equal(t, 1, s.TimedOut)
	assert.Equal(t, 1000, s.TotalFrames)
}

func TestSummarizeSeparatesClearFromTimeout(t *testing.T) {
	s := Summarize([]GameResult{
		{Depth: 12, Stage: 1, Clears: 1, Frames: 50, Outcome: sim.OutcomeCleared},
		{Depth: 8, Stage: 1, Frames: 50, Outcome: sim.OutcomePlaying},
	})

	assert.Equal(t, 1, s.EndedCleared)
	assert.Equal(t, 1, s.TimedOut)
	assert.InDelta(t, 0.5, s.ClearRate, 1e-9)
}

func TestPlayCountsClearOnLastTick(t *testing.T) {
	opts := smallOptions()
	opts.MaxTicks = 20000

	// Find a game the bot clears and the tick its first clear lands on.
	seed, first := int64(0), 0
	for try := int64(1); try <= 20 && first == 0; try++ {
		s := driller.NewSession(opts.Settings, try)
		bot := driller.NewBot()
		for tick := 1; tick <= opts.MaxTicks && !s.Game().Over(); tick++ {
			s.Tick(bot.Next(s.Game()))
			if s.Game().Cleared() {
				seed, first = try, tick
				break
			}
		}
	}
	if first == 0 {
		t.Skip("the bot cleared no stage in the sampled seeds")
	}

	opts.MaxTicks = first
	r, ok := play(context.Background(), opts, seed)
	require.True(t, ok)
	assert.Equal(t, sim.OutcomeCleared, r.Outcome)
	assert.Equal(t, 1, r.Clears)
	assert.Equal(t, 1, Summarize([]GameResult{r}).EndedCleared)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestWriteReport(t *testing.T) {
	r := &Report{Summary: Summarize([]GameResult{
		{Depth: 1200, Stage: 4, Frames: 1234567, Outcome: sim.OutcomeAirOut},
	})}

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, "driller bench", r))
	out := buf.String()

	assert.Contains(t, out, "driller bench")
	assert.Contains(t, out, "1,234,567")
	assert.Contains(t, out, "Clear rate")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	for _, l := range lines[1:] {
		assert.Equal(t, len(lines[0]), len(l), "misaligned row %q", l)
	}
}
