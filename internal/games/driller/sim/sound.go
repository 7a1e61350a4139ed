package sim

// Sound identifies a sound event for the audio collaborator.
type Sound string

const (
	SoundCrash      Sound = "crash"
	SoundClear      Sound = "clear"
	SoundShrink     Sound = "shrink"
	SoundBreakBrown Sound = "break_brown"
	SoundAir        Sound = "air"
)

// Sounds lists every sound id the game can emit.
var Sounds = []Sound{SoundCrash, SoundClear, SoundShrink, SoundBreakBrown, SoundAir}
