package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	p := DefaultParams()
	g := New(p, 42)

	assert.Equal(t, Position{4, 5}, g.Player().Pos)
	assert.Equal(t, Standing, g.Player().State)
	assert.Equal(t, p.AirMax, g.Player().Air)
	assert.Equal(t, 100, g.AirPercent())
	assert.Equal(t, 1, g.Stage())
	assert.Zero(t, g.Camera())
	assert.Equal(t, 43, g.Grid().Height())
	assert.False(t, g.Over())
	assert.False(t, g.Cleared())
	checkLabels(t, g.Grid())
	checkSupport(t, g.Grid())
}

func TestNewPanicsOnInvalidParams(t *testing.T) {
	p := DefaultParams()
	p.CascadeMin = 0
	assert.Panics(t, func() { New(p, 1) })
}

func TestDigRemovesWholeComponent(t *testing.T) {
	g := newTestGame(t, DefaultParams(), 1, 1,
		"...",
		"...",
		"RRY",
		"CCC",
	)
	g.Tick(CmdDown)

	assert.Equal(t, KindEmpty, g.Grid().Cell(Position{0, 2}).Kind)
	assert.Equal(t, KindEmpty, g.Grid().Cell(Position{1, 2}).Kind)
	assert.Equal(t, KindBlock, g.Grid().Cell(Position{2, 2}).Kind)
	assert.Equal(t, Standing, g.Player().State)
	assert.Empty(t, g.DrainSounds())
}

func TestDigClearWinsWithoutMutation(t *testing.T) {
	g := newTestGame(t, DefaultParams(), 1, 1,
		"...",
		"...",
		"CCC",
	)
	before := g.Grid().Clone()
	require.True(t, g.dig(Position{1, 2}))
	assert.True(t, g.Grid().Equal(before))
	assert.True(t, g.Cleared())
	assert.Equal(t, OutcomeCleared, g.Outcome())
	assert.Equal(t, []Sound{SoundClear}, g.DrainSounds())

	// A cleared game no longer changes.
	snap := g.Snapshot()
	g.Tick(CmdLeft)
	after := g.Snapshot()
	assert.Equal(t, snap.Frame+1, after.Frame)
	snap.Frame = after.Frame
	assert.Equal(t, snap, after)
}

func TestDigBrownTakesFourHits(t *testing.T) {
	p := DefaultParams()
	g := newTestGame(t, p, 1, 1,
		"...",
		"...",
		"CNC",
		"CCC",
	)
	brown := Position{1, 2}

	for hit := 1; hit <= 3; hit++ {
		g.Tick(CmdDown)
		c := g.Grid().Cell(brown)
		require.Equal(t, KindBlock, c.Kind, "hit %d", hit)
		assert.Equal(t, p.LifeMax-hit*p.BrownDamage, c.Durability)
	}
	assert.Empty(t, g.DrainSounds())

	g.Tick(CmdDown)
	assert.Equal(t, KindEmpty, g.Grid().Cell(brown).Kind)
	assert.Equal(t, []Sound{SoundBreakBrown}, g.DrainSounds())
	assert.Equal(t, p.AirMax-4-p.AirMax*p.BrownPenaltyPercent/100, g.Player().Air)
}

func TestBrownPenaltyClampsAtZero(t *testing.T) {
	p := DefaultParams()
	p.BrownDamage = p.LifeMax
	g := newTestGame(t, p, 1, 1,
		"...",
		"...",
		"CNC",
		"CCC",
	)
	g.player.Air = 10

	g.Tick(CmdDown)
	assert.Zero(t, g.Player().Air)
	assert.True(t, g.Over())
	assert.Equal(t, OutcomeAirOut, g.Outcome())
	assert.Equal(t, []Sound{SoundBreakBrown, SoundCrash}, g.DrainSounds())
}

func TestAirPickup(t *testing.T) {
	tests := []struct {
		name  string
		start int
		want  int
	}{
		{"adds recovery", 100, 100 + 600 - 1},
		{"clamps at max", 2990, 3000 - 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, DefaultParams(), 1, 1,
				"...",
				".o.",
				"CCC",
			)
			g.player.Air = tc.start

			g.Tick(CmdNone)
			assert.Equal(t, tc.want, g.Player().Air)
			assert.Equal(t, KindEmpty, g.Grid().Cell(Position{1, 1}).Kind)
			assert.Equal(t, []Sound{SoundAir}, g.DrainSounds())
		})
	}
}

func TestAirOutEndsOnce(t *testing.T) {
	g := newTestGame(t, DefaultParams(), 1, 1,
		"...",
		"...",
		"CCC",
	)
	g.player.Air = 1

	g.Tick(CmdNone)
	assert.True(t, g.Over())
	assert.Zero(t, g.Player().Air)
	assert.Equal(t, OutcomeAirOut, g.Outcome())
	assert.Equal(t, []Sound{SoundCrash}, g.DrainSounds())

	for i := 0; i < 5; i++ {
		g.Tick(CmdDown)
	}
	assert.True(t, g.Over())
	assert.Zero(t, g.Player().Air)
	assert.Equal(t, 6, g.Frame())
	assert.Empty(t, g.DrainSounds())
}

func TestCrushedByBlock(t *testing.T) {
	g := newTestGame(t, DefaultParams(), 1, 1,
		"...",
		".R.",
		"CCC",
	)
	g.Tick(CmdNone)

	assert.True(t, g.Over())
	assert.Equal(t, OutcomeCrushed, g.Outcome())
	assert.Equal(t, []Sound{SoundCrash}, g.DrainSounds())
}

func TestWalkTakesWalkFrames(t *testing.T) {
	p := DefaultParams()
	g := newTestGame(t, p, 1, 1,
		"...",
		"...",
		"CCC",
	)

	g.Tick(CmdLeft)
	assert.Equal(t, Walking, g.Player().State)
	assert.Equal(t, DirLeft, g.Player().Facing)

	for i := 1; i < p.WalkFrames; i++ {
		g.Tick(CmdRight)
		assert.Equal(t, Position{1, 1}, g.Player().Pos, "tick %d", i)
	}
	g.Tick(CmdNone)
	assert.Equal(t, Position{0, 1}, g.Player().Pos)
	assert.Equal(t, Standing, g.Player().State)
}

func TestWalkDigsSideBlock(t *testing.T) {
	g := newTestGame(t, DefaultParams(), 1, 1,
		"...",
		"..G",
		"CCC",
	)
	g.Tick(CmdRight)

	assert.Equal(t, Standing, g.Player().State)
	assert.Equal(t, DirRight, g.Player().Facing)
	assert.Equal(t, KindEmpty, g.Grid().Cell(Position{2, 1}).Kind)
}

func TestEdgeBehaviorFollowsTopology(t *testing.T) {
	rows := []string{"...", "...", "CCC"}

	bounded := newTestGame(t, DefaultParams(), 0, 1, rows...)
	bounded.Tick(CmdLeft)
	assert.Equal(t, Standing, bounded.Player().State)
	assert.Equal(t, Position{0, 1}, bounded.Player().Pos)

	p := DefaultParams()
	p.Topology = TopologyWrap
	wrapped := newTestGame(t, p, 0, 1, rows...)
	for i := 0; i <= p.WalkFrames; i++ {
		wrapped.Tick(CmdLeft)
	}
	assert.Equal(t, Position{2, 1}, wrapped.Player().Pos)
}

func TestPlayerFallsAndCountsDepth(t *testing.T) {
	p := DefaultParams()
	g := newTestGame(t, p, 1, 0,
		"...",
		"...",
		"CCC",
	)

	for i := 1; i < p.PlayerFallFrames; i++ {
		g.Tick(CmdLeft)
		assert.Equal(t, Falling, g.Player().State)
	}
	g.Tick(CmdNone)
	assert.Equal(t, Position{1, 1}, g.Player().Pos)
	assert.Equal(t, 1, g.Depth())
	assert.Equal(t, Standing, g.Player().State)

	g.Tick(CmdNone)
	assert.Equal(t, Standing, g.Player().State)
	assert.Equal(t, 1, g.Depth())
}

func TestPlayerFallsThroughAir(t *testing.T) {
	g := newTestGame(t, DefaultParams(), 1, 0,
		"...",
		".o.",
		"CCC",
	)
	g.Tick(CmdNone)
	assert.Equal(t, Falling, g.Player().State)
}

func TestCameraFollowsPlayer(t *testing.T) {
	p := DefaultParams()
	g := New(p, 3)
	assert.Zero(t, g.Camera())

	g.player.Pos = Position{4, 20}
	g.updateCamera()
	assert.Equal(t, 20-p.CameraLead, g.Camera())
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := New(DefaultParams(), 9)
	before := g.Snapshot()

	g.SetPaused(true)
	g.Tick(CmdDown)
	g.Tick(CmdLeft)
	after := g.Snapshot()

	assert.Equal(t, before.Frame+2, after.Frame)
	assert.Equal(t, before.GridHash, after.GridHash)
	assert.Equal(t, before.Air, after.Air)

	g.SetPaused(false)
	g.Tick(CmdNone)
	assert.Equal(t, before.Air-1, g.Player().Air)
}

func TestDeterminism(t *testing.T) {
	script := []Command{CmdDown, CmdNone, CmdNone, CmdLeft, CmdDown, CmdRight, CmdUp}
	run := func(seed int64) Snapshot {
		g := New(DefaultParams(), seed)
		for i := 0; i < 600; i++ {
			g.Tick(script[i%len(script)])
		}
		return g.Snapshot()
	}

	assert.Equal(t, run(12345), run(12345))
	assert.NotEqual(t, run(12345).GridHash, run(54321).GridHash)
}

func TestTickKeepsDerivedStateConsistent(t *testing.T) {
	g := New(DefaultParams(), 77)
	script := []Command{CmdDown, CmdDown, CmdLeft, CmdNone, CmdDown, CmdRight}
	for i := 0; i < 400 && !g.Over() && !g.Cleared(); i++ {
		g.Tick(script[i%len(script)])
		grid := g.Grid()
		for y := 0; y < grid.Height(); y++ {
			for x := 0; x < grid.Width(); x++ {
				c := grid.Cell(grid.Pos(x, y))
				if c.Supported {
					require.Equal(t, IdlePhase(), c.Phase, "supported cell (%d,%d) at tick %d", x, y, i)
				}
				require.GreaterOrEqual(t, c.Durability, 0)
			}
		}
		require.GreaterOrEqual(t, g.Player().Air, 0)
		require.LessOrEqual(t, g.Player().Air, g.Params().AirMax)
	}
}

func TestNextStageCarriesDepth(t *testing.T) {
	g := New(DefaultParams(), 5)
	g.depth = 12
	g.clear = true

	g.NextStage()
	assert.Equal(t, 2, g.Stage())
	assert.Equal(t, 12, g.Depth())
	assert.False(t, g.Cleared())
	assert.Equal(t, g.Params().Start(), g.Player().Pos)
	assert.Equal(t, g.Params().AirMax, g.Player().Air)
}

func TestSetParamsAppliesOnNextStage(t *testing.T) {
	g := New(DefaultParams(), 5)
	p := DefaultParams()
	p.AirMax = 1000

	g.SetParams(p)
	assert.Equal(t, 3000, g.Player().Air)

	g.clear = true
	g.NextStage()
	assert.Equal(t, 1000, g.Player().Air)

	p.Width = 0
	assert.Panics(t, func() { g.SetParams(p) })
}

func TestRestartResets(t *testing.T) {
	g := New(DefaultParams(), 5)
	for i := 0; i < 30; i++ {
		g.Tick(CmdDown)
	}
	g.over = true

	g.Restart(6)
	assert.Equal(t, int64(6), g.Seed())
	assert.Zero(t, g.Frame())
	assert.Zero(t, g.Depth())
	assert.Equal(t, 1, g.Stage())
	assert.False(t, g.Over())
	assert.Equal(t, New(DefaultParams(), 6).Snapshot(), g.Snapshot())
}

func TestTickCascadesBlockLandedThisTick(t *testing.T) {
	p := DefaultParams()
	p.ShakeFrames = 0
	p.BlockFallFrames = 0
	g := newTestGame(t, p, 0, 2,
		"..R",
		"...",
		".RR",
		"CRC",
		"CCC",
	)
	require.False(t, g.Grid().Cell(Position{2, 0}).Supported)

	g.Tick(CmdNone)

	for _, pos := range []Position{{2, 0}, {2, 1}, {1, 2}, {2, 2}, {1, 3}} {
		assert.Equal(t, KindEmpty, g.Grid().Cell(pos).Kind, "cell %v", pos)
	}
	assert.Equal(t, 5, g.Grid().Count(KindBlock))
	assert.Equal(t, []Sound{SoundShrink}, g.DrainSounds())
	checkLabels(t, g.Grid())
	checkSupport(t, g.Grid())
}

func TestDrainSoundsEmptiesQueue(t *testing.T) {
	g := New(DefaultParams(), 1)
	g.emit(SoundShrink)
	g.emit(SoundAir)

	assert.Equal(t, []Sound{SoundShrink, SoundAir}, g.DrainSounds())
	assert.Nil(t, g.DrainSounds())
}

func TestToggleDebug(t *testing.T) {
	g := New(DefaultParams(), 1)
	assert.False(t, g.Debug())
	g.ToggleDebug()
	assert.True(t, g.Debug())
}
