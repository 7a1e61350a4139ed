package driller

import (
	"github.com/vovakirdan/tui-driller/internal/config"
	"github.com/vovakirdan/tui-driller/internal/games/driller/sim"
)

// Journal observes every state-changing call made on a Session, in order.
// A replay recorder implements it to capture a run.
type Journal interface {
	Command(cmd sim.Command)
	NextStage()
	Pause()
	// Restart is called with the state the abandoned run ended in.
	Restart(final sim.Snapshot)
}

// Session is a headless driller run: the simulation plus the difficulty
// curve that retunes it between stages. The registry adapter, the replay
// player and the bench all drive the game through a Session so they
// produce identical runs from identical inputs.
type Session struct {
	settings   Settings
	difficulty *config.DifficultyManager
	game       *sim.Game
	journal    Journal
}

// NewSession starts a run at stage one.
func NewSession(s Settings, seed int64) *Session {
	sess := &Session{
		settings:   s,
		difficulty: config.NewDifficultyManager(s.Difficulty),
	}
	sess.game = sim.New(sess.StageParams(1, 0), seed)
	return sess
}

// SetJournal attaches j (nil detaches).
func (s *Session) SetJournal(j Journal) { s.journal = j }

// Settings returns the settings the session was created with.
func (s *Session) Settings() Settings { return s.settings }

// Game exposes the simulation for queries and rendering.
func (s *Session) Game() *sim.Game { return s.game }

// StageParams returns the parameters for a stage reached at the given depth.
func (s *Session) StageParams(stage, depth int) sim.Params {
	p := s.settings.Params
	p.AirMax = s.difficulty.AirMax(p.AirMax, stage, depth)
	p.BrownChance = s.difficulty.BrownChance(p.BrownChance, stage, depth)
	p.ShakeFrames = s.difficulty.ShakeFrames(p.ShakeFrames, stage, depth)
	return p
}

// Tick advances the simulation by one frame.
func (s *Session) Tick(cmd sim.Command) {
	if s.journal != nil {
		s.journal.Command(cmd)
	}
	s.game.Tick(cmd)
}

// NextStage moves on from a cleared stage. It reports false and does
// nothing otherwise.
func (s *Session) NextStage() bool {
	if !s.game.Cleared() {
		return false
	}
	if s.journal != nil {
		s.journal.NextStage()
	}
	g := s.game
	g.SetParams(s.StageParams(g.Stage()+1, g.Depth()))
	g.NextStage()
	return true
}

// TogglePause pauses or resumes a running stage.
func (s *Session) TogglePause() {
	if s.game.Over() || s.game.Cleared() {
		return
	}
	if s.journal != nil {
		s.journal.Pause()
	}
	s.game.SetPaused(!s.game.Paused())
}

// Restart starts a new run from stage one with seed.
func (s *Session) Restart(seed int64) {
	if s.journal != nil {
		s.journal.Restart(s.game.Snapshot())
	}
	s.game.SetPaused(false)
	s.game.SetParams(s.StageParams(1, 0))
	s.game.Restart(seed)
}
