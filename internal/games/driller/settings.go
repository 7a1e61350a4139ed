package driller

import (
	"fmt"

	"github.com/vovakirdan/tui-driller/internal/config"
	"github.com/vovakirdan/tui-driller/internal/games/driller/sim"
)

// Settings is the resolved tuning of a driller run: simulation parameters
// for stage one plus the difficulty curve applied to later stages.
type Settings struct {
	Params     sim.Params
	Difficulty config.DifficultyConfig
}

// DefaultSettings returns the settings built from the embedded defaults.
func DefaultSettings() Settings {
	s, err := SettingsFromConfig(config.DefaultDrillerConfig())
	if err != nil {
		// The embedded defaults always validate.
		panic(err)
	}
	return s
}

// SettingsFromConfig converts YAML tuning into simulation parameters.
func SettingsFromConfig(cfg config.DrillerConfig) (Settings, error) {
	topology, err := ParseTopology(cfg.Field.Topology)
	if err != nil {
		return Settings{}, err
	}
	generator, err := ParseGenerator(cfg.Field.Generator)
	if err != nil {
		return Settings{}, err
	}

	p := sim.Params{
		Width:               cfg.Field.Width,
		SkyRows:             cfg.Field.SkyRows,
		FieldRows:           cfg.Field.FieldRows,
		FloorRows:           cfg.Field.FloorRows,
		LifeMax:             cfg.Blocks.LifeMax,
		BrownDamage:         cfg.Blocks.BrownDamage,
		BrownChance:         cfg.Blocks.BrownChance,
		ShakeFrames:         cfg.Blocks.ShakeFrames,
		BlockFallFrames:     cfg.Blocks.FallFrames,
		CascadeMin:          cfg.Blocks.CascadeMin,
		WalkFrames:          cfg.Player.WalkFrames,
		PlayerFallFrames:    cfg.Player.FallFrames,
		AirMax:              cfg.Air.Max,
		AirRecoverPercent:   cfg.Air.RecoverPercent,
		BrownPenaltyPercent: cfg.Air.BrownPenaltyPercent,
		AirPocketInterval:   cfg.Air.PocketInterval,
		AirPocketJitter:     cfg.Air.PocketJitter,
		CameraLead:          cfg.Player.CameraLead,
		Topology:            topology,
		Generator:           generator,
	}
	if err := p.Validate(); err != nil {
		return Settings{}, fmt.Errorf("config: %w", err)
	}
	return Settings{Params: p, Difficulty: cfg.Difficulty}, nil
}

// LoadSettings loads the YAML config at path (or the default search path
// when empty), applies a difficulty preset and converts the result.
func LoadSettings(path string, preset config.DifficultyPreset) (Settings, error) {
	cfg, err := config.LoadDriller(path)
	if err != nil {
		return Settings{}, err
	}
	config.ApplyDrillerPreset(&cfg, preset)
	return SettingsFromConfig(cfg)
}

// ParseTopology accepts "bounded" (or empty) and "wrap".
func ParseTopology(s string) (sim.Topology, error) {
	switch s {
	case "", "bounded":
		return sim.TopologyBounded, nil
	case "wrap":
		return sim.TopologyWrap, nil
	default:
		return 0, fmt.Errorf("config: unknown topology %q", s)
	}
}

// ParseGenerator accepts "uniform" (or empty) and "strata".
func ParseGenerator(s string) (sim.GeneratorMode, error) {
	switch s {
	case "", "uniform":
		return sim.GeneratorUniform, nil
	case "strata":
		return sim.GeneratorStrata, nil
	default:
		return 0, fmt.Errorf("config: unknown generator %q", s)
	}
}
