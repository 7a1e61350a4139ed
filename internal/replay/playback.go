package replay

import (
	"fmt"

	"github.com/vovakirdan/tui-driller/internal/core"
	"github.com/vovakirdan/tui-driller/internal/games/driller"
)

// Playback steps through a replay one tick at a time so the terminal
// platform can show it like a live game. It satisfies registry.Game.
type Playback struct {
	rep     *Replay
	session *driller.Session
	pos     int
	paused  bool
	err     error
}

// NewPlayback prepares rep for viewing.
func NewPlayback(rep *Replay) (*Playback, error) {
	s, err := NewSession(rep)
	if err != nil {
		return nil, err
	}
	return &Playback{rep: rep, session: s}, nil
}

func (p *Playback) ID() string    { return p.rep.GameID }
func (p *Playback) Title() string { return "Replay " + shortID(p.rep.ID) }

// Reset rewinds to the first input. The runtime config is ignored since the
// replay carries its own seed and settings.
func (p *Playback) Reset(core.RuntimeConfig) {
	s, err := NewSession(p.rep)
	if err != nil {
		p.err = err
		return
	}
	p.session = s
	p.pos = 0
	p.paused = false
	p.err = nil
}

// Done reports whether every input has been applied.
func (p *Playback) Done() bool { return p.pos >= len(p.rep.Inputs) || p.err != nil }

// Err returns the error that stopped playback, if any.
func (p *Playback) Err() error { return p.err }

// Step applies recorded inputs up to and including the next tick. Pause
// freezes the viewer and Restart rewinds; other input is ignored.
func (p *Playback) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		p.paused = !p.paused
	}
	if in.Has(core.ActionRestart) {
		p.Reset(core.RuntimeConfig{})
		return core.StepResult{State: p.State()}
	}
	if p.paused || p.Done() {
		return core.StepResult{State: p.State()}
	}

	for !p.Done() {
		b := p.rep.Inputs[p.pos]
		if err := Apply(p.session, b); err != nil {
			p.err = fmt.Errorf("input %d: %w", p.pos, err)
			break
		}
		p.pos++
		if b < InputNextStage {
			break
		}
	}

	var sounds []string
	for _, s := range p.session.Game().DrainSounds() {
		sounds = append(sounds, string(s))
	}
	return core.StepResult{State: p.State(), Sounds: sounds}
}

func (p *Playback) Render(dst *core.Screen) {
	driller.Draw(dst, p.session, p.Title())
}

// State reports the session state. A finished playback reads as game over
// so the platform shows its end screen.
func (p *Playback) State() core.GameState {
	g := p.session.Game()
	return core.GameState{
		Score:    g.Depth(),
		Level:    g.Stage(),
		GameOver: g.Over() || p.Done(),
		Cleared:  g.Cleared(),
		Paused:   p.paused || g.Paused(),
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
