package audio

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-driller/internal/games/driller/sim"
)

type recorder struct{ ids []string }

func (r *recorder) Play(id string) { r.ids = append(r.ids, id) }

func TestEverySoundHasTones(t *testing.T) {
	for _, s := range sim.Sounds {
		if !Known(string(s)) {
			t.Errorf("no tones for sound %q", s)
		}
	}
	if Known("bogus") {
		t.Error("Known(bogus) = true, expected false")
	}
}

func TestRenderToneSequenceLength(t *testing.T) {
	seq := []toneSpec{
		{frequency: 440, duration: 100 * time.Millisecond, volume: 0.3},
		{frequency: 660, duration: 50 * time.Millisecond, volume: 0.3},
	}
	got := len(renderToneSequence(seq, 1))
	want := (samplesFor(100*time.Millisecond) + samplesFor(toneGap) + samplesFor(50*time.Millisecond)) * bytesPerSample
	if got != want {
		t.Errorf("len = %d, expected %d", got, want)
	}
}

func TestRenderToneSilentAtZeroVolume(t *testing.T) {
	buf := renderToneSequence(tones["clear"], 0)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, expected silence", i, b)
		}
	}
}

func TestDisabledPlayerIsNop(t *testing.T) {
	p, err := NewTonePlayer(false)
	if err != nil {
		t.Fatalf("NewTonePlayer(false) error = %v", err)
	}
	if _, ok := p.(Nop); !ok {
		t.Errorf("NewTonePlayer(false) = %T, expected Nop", p)
	}
	p.Play("crash")
}

func TestPlayAll(t *testing.T) {
	r := &recorder{}
	PlayAll(r, []string{"air", "shrink"})
	if len(r.ids) != 2 || r.ids[0] != "air" || r.ids[1] != "shrink" {
		t.Errorf("played %v", r.ids)
	}
}

func TestClampVolume(t *testing.T) {
	tests := []struct{ in, want float64 }{{-1, 0}, {0.5, 0.5}, {2, 1}}
	for _, tt := range tests {
		if got := clampVolume(tt.in); got != tt.want {
			t.Errorf("clampVolume(%v) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}
