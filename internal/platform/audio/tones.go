package audio

import (
	"math"
	"time"
)

const (
	sampleRate     = 44100
	bytesPerSample = 4 // 16-bit stereo
	toneGap        = 10 * time.Millisecond
	fadeSeconds    = 0.003
)

type toneSpec struct {
	frequency float64
	duration  time.Duration
	volume    float64
}

// tones maps driller sound ids to short synthesized sequences.
var tones = map[string][]toneSpec{
	"crash": {
		{frequency: 196, duration: 90 * time.Millisecond, volume: 0.3},
		{frequency: 147, duration: 180 * time.Millisecond, volume: 0.3},
	},
	"clear": {
		{frequency: 523, duration: 70 * time.Millisecond, volume: 0.28},
		{frequency: 659, duration: 70 * time.Millisecond, volume: 0.28},
		{frequency: 784, duration: 120 * time.Millisecond, volume: 0.28},
	},
	"shrink": {{frequency: 330, duration: 45 * time.Millisecond, volume: 0.18}},
	"break_brown": {
		{frequency: 110, duration: 60 * time.Millisecond, volume: 0.3},
		{frequency: 90, duration: 80 * time.Millisecond, volume: 0.25},
	},
	"air": {
		{frequency: 880, duration: 40 * time.Millisecond, volume: 0.2},
		{frequency: 1175, duration: 60 * time.Millisecond, volume: 0.2},
	},
}

// Known reports whether id has a tone sequence.
func Known(id string) bool {
	_, ok := tones[id]
	return ok
}

func samplesFor(d time.Duration) int {
	return int(float64(sampleRate) * d.Seconds())
}

// renderToneSequence renders sequence as signed 16-bit little-endian stereo PCM.
func renderToneSequence(sequence []toneSpec, masterVolume float64) []byte {
	gapSamples := samplesFor(toneGap)
	total := 0
	for i, spec := range sequence {
		total += samplesFor(spec.duration)
		if i < len(sequence)-1 {
			total += gapSamples
		}
	}

	buffer := make([]byte, total*bytesPerSample)
	index := 0
	for _, spec := range sequence {
		renderTone(buffer, index, spec, spec.volume*clampVolume(masterVolume))
		index += (samplesFor(spec.duration) + gapSamples) * bytesPerSample
	}
	return buffer
}

func renderTone(buffer []byte, start int, spec toneSpec, volume float64) {
	const maxInt16 = 1<<15 - 1
	samples := samplesFor(spec.duration)
	fade := int(sampleRate * fadeSeconds)
	for i := 0; i < samples; i++ {
		env := 1.0
		switch {
		case i < fade:
			env = float64(i) / float64(fade)
		case i > samples-fade:
			env = max(0, float64(samples-i)/float64(fade))
		}
		sample := math.Sin(2 * math.Pi * spec.frequency * float64(i) / sampleRate)
		value := int16(sample * volume * env * maxInt16)
		o := start + i*bytesPerSample
		buffer[o] = byte(value)
		buffer[o+1] = byte(value >> 8)
		buffer[o+2] = byte(value)
		buffer[o+3] = byte(value >> 8)
	}
}

func clampVolume(v float64) float64 {
	return max(0, min(1, v))
}
