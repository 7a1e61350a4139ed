package config

import "math"

// DifficultyManager calculates stage parameters based on stage and depth.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) for a stage (1-based)
// and cumulative depth.
func (d *DifficultyManager) Level(stage, depth int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "stage":
		progress = float64(stage-1) / maxAt
	case "depth":
		progress = float64(depth) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// AirMax returns the air capacity at the current difficulty.
func (d *DifficultyManager) AirMax(base, stage, depth int) int {
	level := d.Level(stage, depth)
	result := int(math.Round(float64(base) * (1.0 - level*d.cfg.Scaling.AirReduction)))
	return max(result, base/4)
}

// BrownChance returns the brown block probability at the current difficulty.
func (d *DifficultyManager) BrownChance(base float64, stage, depth int) float64 {
	level := d.Level(stage, depth)
	return clampF(base+level*d.cfg.Scaling.BrownIncrease, 0.0, 1.0)
}

// ShakeFrames returns the shake duration at the current difficulty.
func (d *DifficultyManager) ShakeFrames(base, stage, depth int) int {
	level := d.Level(stage, depth)
	reduction := int(level * float64(d.cfg.Scaling.ShakeReduction))
	return max(base-reduction, 0)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
