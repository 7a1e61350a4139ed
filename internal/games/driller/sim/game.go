// Package sim is the driller simulation core: a 2D grid of colored blocks
// that the player digs through while unsupported material shakes, falls and
// erases itself in same-colored groups. It has no I/O and is advanced one
// tick at a time by the caller.
package sim

import (
	"fmt"
	"math/rand"
)

// Outcome records how a stage ended.
type Outcome uint8

const (
	OutcomePlaying Outcome = iota
	OutcomeCleared
	OutcomeAirOut
	OutcomeCrushed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCleared:
		return "cleared"
	case OutcomeAirOut:
		return "air_out"
	case OutcomeCrushed:
		return "crushed"
	default:
		return "playing"
	}
}

// Game owns the grid, the player and the tick sequence.
type Game struct {
	params Params
	seed   int64
	rng    *rand.Rand

	grid   *Grid
	player Player

	frame   int
	depth   int
	stage   int
	camera  int
	over    bool
	clear   bool
	paused  bool
	debug   bool
	outcome Outcome

	sounds []Sound
}

// New builds a game from params and a seed. It panics on invalid params.
func New(p Params, seed int64) *Game {
	if err := p.Validate(); err != nil {
		panic(fmt.Sprintf("sim: %v", err))
	}
	g := &Game{
		params: p,
		seed:   seed,
		rng:    rand.New(rand.NewSource(seed)),
		stage:  1,
	}
	g.buildStage()
	return g
}

// buildStage creates a fresh grid and player from the current rng.
func (g *Game) buildStage() {
	g.grid = Generate(g.params, g.rng)
	g.player = newPlayer(g.params)
	g.over = false
	g.clear = false
	g.outcome = OutcomePlaying
	g.updateCamera()
	g.grid.Relabel()
	g.grid.PropagateSupport()
}

// SetParams replaces the parameters used by the next NextStage or Restart.
// The current grid is left alone. It panics on invalid params.
func (g *Game) SetParams(p Params) {
	if err := p.Validate(); err != nil {
		panic(fmt.Sprintf("sim: %v", err))
	}
	g.params = p
}

// NextStage starts a new grid after a cleared stage. Depth carries over.
func (g *Game) NextStage() {
	g.stage++
	g.buildStage()
}

// Restart starts over from stage one with a new seed.
func (g *Game) Restart(seed int64) {
	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))
	g.frame = 0
	g.depth = 0
	g.stage = 1
	g.sounds = g.sounds[:0]
	g.buildStage()
}

// Tick advances the simulation by one frame.
func (g *Game) Tick(cmd Command) {
	g.frame++
	if g.over || g.clear || g.paused {
		return
	}

	g.animatePlayer()

	g.grid.ApplyGravity(g.params.ShakeFrames, g.params.BlockFallFrames)
	g.grid.Relabel()
	if g.grid.Cascade(g.params.CascadeMin) > 0 {
		g.emit(SoundShrink)
	}

	if g.applyCommand(cmd) {
		return
	}

	g.grid.PropagateSupport()

	g.breathe()
	if !g.over && g.grid.Cell(g.player.Pos).IsBlock() {
		g.end(OutcomeCrushed)
	}

	g.updateCamera()
}

// breathe consumes an air pocket under the player and spends one unit of air.
func (g *Game) breathe() {
	at := g.grid.At(g.player.Pos)
	if at.Kind == KindAir {
		*at = Cell{}
		g.addAir(percentOf(g.params.AirMax, g.params.AirRecoverPercent))
		g.emit(SoundAir)
	}
	g.addAir(-1)
	if g.player.Air <= 0 {
		g.end(OutcomeAirOut)
	}
}

func (g *Game) addAir(delta int) {
	g.player.Air = max(0, min(g.params.AirMax, g.player.Air+delta))
}

func (g *Game) end(o Outcome) {
	g.over = true
	g.outcome = o
	g.emit(SoundCrash)
}

func (g *Game) updateCamera() {
	g.camera = max(0, g.player.Pos.Y-g.params.CameraLead)
}

func (g *Game) emit(s Sound) {
	g.sounds = append(g.sounds, s)
}

// DrainSounds returns the queued sound events and empties the queue.
func (g *Game) DrainSounds() []Sound {
	if len(g.sounds) == 0 {
		return nil
	}
	out := make([]Sound, len(g.sounds))
	copy(out, g.sounds)
	g.sounds = g.sounds[:0]
	return out
}

// SetPaused freezes or resumes the simulation. Frames still count while paused.
func (g *Game) SetPaused(p bool) { g.paused = p }

// ToggleDebug flips the debug display flag.
func (g *Game) ToggleDebug() { g.debug = !g.debug }

// Grid exposes the grid for read-only queries.
func (g *Game) Grid() *Grid { return g.grid }

// Player returns a copy of the player.
func (g *Game) Player() Player { return g.player }

// AirPercent returns the remaining air as a percentage of AirMax.
func (g *Game) AirPercent() int {
	return g.player.Air * 100 / g.params.AirMax
}

func (g *Game) Params() Params   { return g.params }
func (g *Game) Seed() int64      { return g.seed }
func (g *Game) Frame() int       { return g.frame }
func (g *Game) Depth() int       { return g.depth }
func (g *Game) Stage() int       { return g.stage }
func (g *Game) Camera() int      { return g.camera }
func (g *Game) Over() bool       { return g.over }
func (g *Game) Cleared() bool    { return g.clear }
func (g *Game) Paused() bool     { return g.paused }
func (g *Game) Debug() bool      { return g.debug }
func (g *Game) Outcome() Outcome { return g.outcome }
