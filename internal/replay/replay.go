// Package replay records driller runs as a seed plus per-tick inputs and
// plays them back through the same simulation.
package replay

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-driller/internal/games/driller"
	"github.com/vovakirdan/tui-driller/internal/games/driller/sim"
)

// Input bytes beyond the sim.Command values.
const (
	InputNextStage byte = 5
	InputPause     byte = 6
)

// Version is the current replay body version.
const Version = 1

// Result is the recorded end state of a run.
type Result struct {
	Frames   int    `msgpack:"frames"`
	Depth    int    `msgpack:"depth"`
	Stage    int    `msgpack:"stage"`
	Over     bool   `msgpack:"over"`
	Cleared  bool   `msgpack:"cleared"`
	Outcome  string `msgpack:"outcome"`
	GridHash uint64 `msgpack:"grid_hash"`
}

// ResultOf extracts a Result from a snapshot.
func ResultOf(s sim.Snapshot) Result {
	return Result{
		Frames:   s.Frame,
		Depth:    s.Depth,
		Stage:    s.Stage,
		Over:     s.Over,
		Cleared:  s.Clear,
		Outcome:  s.Outcome.String(),
		GridHash: s.GridHash,
	}
}

// Replay is a complete recorded run.
type Replay struct {
	Version   int              `msgpack:"version"`
	ID        string           `msgpack:"id"`
	GameID    string           `msgpack:"game_id"`
	Seed      int64            `msgpack:"seed"`
	Settings  driller.Settings `msgpack:"settings"`
	Inputs    []byte           `msgpack:"inputs"`
	Result    Result           `msgpack:"result"`
	CreatedAt time.Time        `msgpack:"created_at"`
}

// Ticks counts the simulation ticks in the recording.
func (r *Replay) Ticks() int {
	n := 0
	for _, b := range r.Inputs {
		if b <= byte(sim.CmdDown) {
			n++
		}
	}
	return n
}

// Recorder captures a session as it is played. It implements
// driller.Journal and stops recording at the first restart.
type Recorder struct {
	rep  Replay
	done bool
}

// NewRecorder starts a recording for a session created with s and seed.
func NewRecorder(gameID string, s driller.Settings, seed int64) *Recorder {
	return &Recorder{rep: Replay{
		Version:   Version,
		ID:        uuid.NewString(),
		GameID:    gameID,
		Seed:      seed,
		Settings:  s,
		CreatedAt: time.Now().UTC(),
	}}
}

func (r *Recorder) add(b byte) {
	if !r.done {
		r.rep.Inputs = append(r.rep.Inputs, b)
	}
}

// Record appends one tick's command.
func (r *Recorder) Record(cmd sim.Command) { r.add(byte(cmd)) }

// Command implements driller.Journal.
func (r *Recorder) Command(cmd sim.Command) { r.Record(cmd) }

// NextStage records a stage transition.
func (r *Recorder) NextStage() { r.add(InputNextStage) }

// Pause records a pause toggle.
func (r *Recorder) Pause() { r.add(InputPause) }

// Restart ends the recording with the abandoned run's state.
func (r *Recorder) Restart(final sim.Snapshot) { r.Finish(final) }

// Finish ends the recording. Later calls are ignored.
func (r *Recorder) Finish(final sim.Snapshot) {
	if r.done {
		return
	}
	r.rep.Result = ResultOf(final)
	r.done = true
}

// Done reports whether the recording has ended.
func (r *Recorder) Done() bool { return r.done }

// Replay returns a copy of the recording.
func (r *Recorder) Replay() *Replay {
	rep := r.rep
	rep.Inputs = append([]byte(nil), r.rep.Inputs...)
	return &rep
}

var _ driller.Journal = (*Recorder)(nil)
