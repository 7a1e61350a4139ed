// Package driller adapts the driller simulation to the platform: it maps
// input actions to commands, carries the restart and next-stage signals,
// hands sound events to the caller and draws the game into a Screen.
package driller

import (
	"math/rand"

	"github.com/vovakirdan/tui-driller/internal/config"
	"github.com/vovakirdan/tui-driller/internal/core"
	"github.com/vovakirdan/tui-driller/internal/games/driller/sim"
	"github.com/vovakirdan/tui-driller/internal/registry"
)

// Game IDs.
const (
	ID     = "driller"
	WrapID = "driller_wrap"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// autoplay hands control to the bot
var autoplay bool

// journalFactory, when set, attaches a journal to every new session
var journalFactory func(gameID string, s Settings, seed int64) Journal

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetAutoplay lets the bot play instead of the keyboard.
func SetAutoplay(on bool) {
	autoplay = on
}

// SetJournalFactory registers f to create a journal for each session started
// by Reset. Pass nil to stop journaling.
func SetJournalFactory(f func(gameID string, s Settings, seed int64) Journal) {
	journalFactory = f
}

// Game implements registry.Game for the driller.
type Game struct {
	wrap     bool
	runtime  core.RuntimeConfig
	settings Settings
	session  *Session
	bot      *Bot
	seeds    *rand.Rand
}

// New creates a driller game using the configured topology.
func New() *Game {
	return &Game{}
}

// NewWrap creates a driller game whose side edges wrap around.
func NewWrap() *Game {
	return &Game{wrap: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.wrap {
		return WrapID
	}
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.wrap {
		return "Driller (Wrap)"
	}
	return "Driller"
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	if g.wrap {
		return "Dig down through colored blocks; the side walls wrap around"
	}
	return "Dig down through colored blocks before your air runs out"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config, fall back to the defaults
	settings, err := LoadSettings(configPath, difficultyPreset)
	if err != nil {
		settings = DefaultSettings()
		if difficultyPreset != "" {
			cfg := config.DefaultDrillerConfig()
			config.ApplyDrillerPreset(&cfg, difficultyPreset)
			if s, err := SettingsFromConfig(cfg); err == nil {
				settings = s
			}
		}
	}
	if g.wrap {
		settings.Params.Topology = sim.TopologyWrap
	}
	g.settings = settings

	g.seeds = rand.New(rand.NewSource(runtime.Seed))
	g.session = NewSession(settings, runtime.Seed)
	if journalFactory != nil {
		g.session.SetJournal(journalFactory(g.ID(), settings, runtime.Seed))
	}
	g.bot = NewBot()
}

// Session exposes the running session.
func (g *Game) Session() *Session { return g.session }

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	s := g.session
	sg := s.Game()

	// Stage transitions take the whole tick
	if in.Has(core.ActionRestart) && (sg.Over() || sg.Cleared()) {
		g.restart()
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionConfirm) {
		switch {
		case sg.Cleared():
			s.NextStage()
			g.bot = NewBot()
			return core.StepResult{State: g.State()}
		case sg.Over():
			g.restart()
			return core.StepResult{State: g.State()}
		}
	}

	if in.Has(core.ActionPause) {
		s.TogglePause()
	}
	if in.Has(core.ActionDebug) {
		sg.ToggleDebug()
	}

	cmd := CommandFor(in)
	if autoplay && !sg.Paused() {
		cmd = g.bot.Next(sg)
	}
	s.Tick(cmd)

	return core.StepResult{State: g.State(), Sounds: soundIDs(sg.DrainSounds())}
}

func (g *Game) restart() {
	g.session.Restart(g.seeds.Int63())
	g.bot = NewBot()
}

// CommandFor maps an input frame to a command. When several directions are
// held the first of left, right, down, up wins.
func CommandFor(in core.InputFrame) sim.Command {
	switch {
	case in.Has(core.ActionLeft):
		return sim.CmdLeft
	case in.Has(core.ActionRight):
		return sim.CmdRight
	case in.Has(core.ActionDown):
		return sim.CmdDown
	case in.Has(core.ActionUp):
		return sim.CmdUp
	default:
		return sim.CmdNone
	}
}

func soundIDs(sounds []sim.Sound) []string {
	if len(sounds) == 0 {
		return nil
	}
	ids := make([]string, len(sounds))
	for i, s := range sounds {
		ids[i] = string(s)
	}
	return ids
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	sg := g.session.Game()
	return core.GameState{
		Score:    sg.Depth(),
		Level:    sg.Stage(),
		GameOver: sg.Over(),
		Cleared:  sg.Cleared(),
		Paused:   sg.Paused(),
	}
}

// RunInfo reports the outcome, frame count and seed of the current run.
func (g *Game) RunInfo() core.RunInfo {
	if g.session == nil {
		return core.RunInfo{}
	}
	sg := g.session.Game()
	info := core.RunInfo{Frames: sg.Frame(), Seed: sg.Seed()}
	if sg.Over() {
		info.Outcome = sg.Outcome().String()
	}
	return info
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
	registry.Register(WrapID, func() registry.Game {
		return NewWrap()
	})
}
