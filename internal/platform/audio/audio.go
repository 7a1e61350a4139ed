// Package audio plays the sound events a game emits. Tones are synthesized
// on the fly; nothing is loaded from disk.
package audio

import (
	"bytes"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Player plays sound events by id. Unknown ids are ignored.
type Player interface {
	Play(id string)
}

// Nop is a Player that plays nothing. Used when sound is disabled, no device
// is available, or the session is remote.
type Nop struct{}

// Play does nothing.
func (Nop) Play(string) {}

// Engine synthesizes tones through the system audio device.
type Engine struct {
	ctx    *oto.Context
	mu     sync.RWMutex
	volume float64
	muted  bool
}

var (
	ctxOnce sync.Once
	ctxErr  error
	shared  *oto.Context
)

// device returns the process-wide oto context. oto allows only one.
func device() (*oto.Context, error) {
	ctxOnce.Do(func() {
		var ready chan struct{}
		shared, ready, ctxErr = oto.NewContext(&oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 2,
			Format:       oto.FormatSignedInt16LE,
		})
		if ctxErr == nil {
			<-ready
		}
	})
	return shared, ctxErr
}

// NewTonePlayer returns an Engine when enabled and an audio device is
// available, otherwise Nop. The error explains why sound is off.
func NewTonePlayer(enabled bool) (Player, error) {
	if !enabled {
		return Nop{}, nil
	}
	ctx, err := device()
	if err != nil {
		return Nop{}, err
	}
	return &Engine{ctx: ctx, volume: 0.7}, nil
}

// SetVolume sets the master volume in [0, 1].
func (e *Engine) SetVolume(v float64) {
	e.mu.Lock()
	e.volume = clampVolume(v)
	e.mu.Unlock()
}

// SetMuted silences the engine without releasing the device.
func (e *Engine) SetMuted(m bool) {
	e.mu.Lock()
	e.muted = m
	e.mu.Unlock()
}

// Play renders and plays the tone sequence for id in the background.
func (e *Engine) Play(id string) {
	e.mu.RLock()
	volume, muted := e.volume, e.muted
	e.mu.RUnlock()

	sequence := tones[id]
	if muted || len(sequence) == 0 {
		return
	}
	go func() {
		p := e.ctx.NewPlayer(bytes.NewReader(renderToneSequence(sequence, volume)))
		p.Play()
		for p.IsPlaying() {
			time.Sleep(5 * time.Millisecond)
		}
		_ = p.Close()
	}()
}

// PlayAll plays each id in order.
func PlayAll(p Player, ids []string) {
	for _, id := range ids {
		p.Play(id)
	}
}
