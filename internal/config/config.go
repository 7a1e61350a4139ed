// Package config provides YAML-based game configuration loading and
// difficulty management for the driller.
package config

import "fmt"

// DrillerConfig contains all tuning for the driller game.
type DrillerConfig struct {
	Field      DrillerField     `yaml:"field"`
	Blocks     DrillerBlocks    `yaml:"blocks"`
	Player     DrillerPlayer    `yaml:"player"`
	Air        DrillerAir       `yaml:"air"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DrillerField defines the grid layout and how it is generated.
type DrillerField struct {
	Width     int    `yaml:"width"`
	SkyRows   int    `yaml:"sky_rows"`
	FieldRows int    `yaml:"field_rows"`
	FloorRows int    `yaml:"floor_rows"`
	Topology  string `yaml:"topology"`  // "bounded" or "wrap"
	Generator string `yaml:"generator"` // "uniform" or "strata"
}

// DrillerBlocks defines block durability and gravity timing.
type DrillerBlocks struct {
	LifeMax     int     `yaml:"life_max"`
	BrownDamage int     `yaml:"brown_damage"`
	BrownChance float64 `yaml:"brown_chance"`
	ShakeFrames int     `yaml:"shake_frames"`
	FallFrames  int     `yaml:"fall_frames"`
	CascadeMin  int     `yaml:"cascade_min"`
}

// DrillerPlayer defines player pacing and the camera.
type DrillerPlayer struct {
	WalkFrames int `yaml:"walk_frames"`
	FallFrames int `yaml:"fall_frames"`
	CameraLead int `yaml:"camera_lead"`
}

// DrillerAir defines the air resource and pocket placement.
type DrillerAir struct {
	Max                 int `yaml:"max"`
	RecoverPercent      int `yaml:"recover_percent"`
	BrownPenaltyPercent int `yaml:"brown_penalty_percent"`
	PocketInterval      int `yaml:"pocket_interval"`
	PocketJitter        int `yaml:"pocket_jitter"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "stage", "depth", or "none"
	MaxAt int    `yaml:"max_at"` // Stage/depth at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	AirReduction   float64 `yaml:"air_reduction"`   // Fraction of air max removed at max difficulty
	BrownIncrease  float64 `yaml:"brown_increase"`  // Brown chance added at max difficulty
	ShakeReduction int     `yaml:"shake_reduction"` // Shake frames removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
