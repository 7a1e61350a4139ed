package replay

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-driller/internal/games/driller"
	"github.com/vovakirdan/tui-driller/internal/games/driller/sim"
)

// ErrInvalidInput is returned for a byte no session call maps to, or for a
// stage transition recorded before the stage was cleared.
var ErrInvalidInput = errors.New("replay: invalid input")

// MismatchError reports a replay whose playback diverged from the
// recorded result.
type MismatchError struct {
	Want Result
	Got  Result
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("replay: result mismatch: recorded depth %d stage %d frame %d hash %016x, replayed depth %d stage %d frame %d hash %016x",
		e.Want.Depth, e.Want.Stage, e.Want.Frames, e.Want.GridHash,
		e.Got.Depth, e.Got.Stage, e.Got.Frames, e.Got.GridHash)
}

// NewSession builds the session a replay was recorded against.
func NewSession(rep *Replay) (*driller.Session, error) {
	if err := rep.Settings.Params.Validate(); err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	return driller.NewSession(rep.Settings, rep.Seed), nil
}

// Apply feeds a single recorded input byte to s.
func Apply(s *driller.Session, b byte) error {
	switch {
	case b <= byte(sim.CmdDown):
		s.Tick(sim.Command(b))
	case b == InputNextStage:
		if !s.NextStage() {
			return fmt.Errorf("%w: next stage at frame %d before the stage was cleared", ErrInvalidInput, s.Game().Frame())
		}
	case b == InputPause:
		s.TogglePause()
	default:
		return fmt.Errorf("%w: byte %d", ErrInvalidInput, b)
	}
	return nil
}

// Run plays rep from the start and returns the final snapshot.
func Run(rep *Replay) (sim.Snapshot, error) {
	s, err := NewSession(rep)
	if err != nil {
		return sim.Snapshot{}, err
	}
	for i, b := range rep.Inputs {
		if err := Apply(s, b); err != nil {
			return s.Game().Snapshot(), fmt.Errorf("input %d: %w", i, err)
		}
	}
	return s.Game().Snapshot(), nil
}

// Verify replays rep and checks that it reproduces the recorded result.
func Verify(rep *Replay) error {
	final, err := Run(rep)
	if err != nil {
		return err
	}
	if got := ResultOf(final); got != rep.Result {
		return &MismatchError{Want: rep.Result, Got: got}
	}
	return nil
}
