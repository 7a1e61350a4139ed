package config

import (
	"math"
	"testing"
)

func TestDifficultyLevelByStage(t *testing.T) {
	d := NewDifficultyManager(DefaultDrillerConfig().Difficulty)

	tests := []struct {
		stage int
		want  float64
	}{
		{1, 0.0},
		{2, 0.2},
		{6, 1.0},
		{20, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.stage, 0); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Level(%d, 0) = %v, expected %v", tc.stage, got, tc.want)
		}
	}
}

func TestDifficultyLevelByDepth(t *testing.T) {
	cfg := DefaultDrillerConfig().Difficulty
	cfg.Progression = ProgressionConfig{Type: "depth", MaxAt: 100}
	cfg.InitialLevel = 0.5
	d := NewDifficultyManager(cfg)

	if got := d.Level(1, 50); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Level(1, 50) = %v, expected 0.75", got)
	}
}

func TestDifficultyDisabledStaysAtInitialLevel(t *testing.T) {
	cfg := DefaultDrillerConfig().Difficulty
	cfg.InitialLevel = 0.3
	cfg.Enabled = false
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if got := d.Level(10, 500); got != 0.3 {
		t.Errorf("Level() = %v, expected 0.3", got)
	}
}

func TestDifficultyScaling(t *testing.T) {
	d := NewDifficultyManager(DefaultDrillerConfig().Difficulty)

	if got := d.AirMax(3000, 1, 0); got != 3000 {
		t.Errorf("AirMax at stage 1 = %d, expected 3000", got)
	}
	if got := d.AirMax(3000, 6, 0); got != 1800 {
		t.Errorf("AirMax at max = %d, expected 1800", got)
	}
	if got := d.BrownChance(0.06, 6, 0); math.Abs(got-0.16) > 1e-9 {
		t.Errorf("BrownChance at max = %v, expected 0.16", got)
	}
	if got := d.ShakeFrames(30, 6, 0); got != 15 {
		t.Errorf("ShakeFrames at max = %d, expected 15", got)
	}
	if got := d.ShakeFrames(10, 6, 0); got != 0 {
		t.Errorf("ShakeFrames should not go negative, got %d", got)
	}
}
