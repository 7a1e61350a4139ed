package config

import (
	_ "embed"
)

//go:embed defaults/driller.yaml
var defaultDrillerYAML []byte

// DefaultDrillerConfig returns the default driller configuration.
// It mirrors defaults/driller.yaml.
func DefaultDrillerConfig() DrillerConfig {
	return DrillerConfig{
		Field: DrillerField{
			Width:     9,
			SkyRows:   6,
			FieldRows: 30,
			FloorRows: 7,
			Topology:  "bounded",
			Generator: "uniform",
		},
		Blocks: DrillerBlocks{
			LifeMax:     100,
			BrownDamage: 25,
			BrownChance: 0.06,
			ShakeFrames: 30,
			FallFrames:  6,
			CascadeMin:  4,
		},
		Player: DrillerPlayer{
			WalkFrames: 3,
			FallFrames: 3,
			CameraLead: 5,
		},
		Air: DrillerAir{
			Max:                 3000,
			RecoverPercent:      20,
			BrownPenaltyPercent: 20,
			PocketInterval:      5,
			PocketJitter:        2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "stage",
				MaxAt: 5,
			},
			Scaling: ScalingConfig{
				AirReduction:   0.4,
				BrownIncrease:  0.1,
				ShakeReduction: 15,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "driller", "driller_wrap":
		return defaultDrillerYAML
	default:
		return nil
	}
}
