package sim

import (
	"errors"
	"fmt"
)

// GeneratorMode selects how the main field is colored.
type GeneratorMode uint8

const (
	// GeneratorUniform picks every color independently.
	GeneratorUniform GeneratorMode = iota
	// GeneratorStrata follows a noise field so colors form veins.
	GeneratorStrata
)

func (m GeneratorMode) String() string {
	if m == GeneratorStrata {
		return "strata"
	}
	return "uniform"
}

// Params holds every tunable constant of a game.
type Params struct {
	Width     int
	SkyRows   int // empty rows above the field
	FieldRows int // randomly colored rows
	FloorRows int // Clear rows at the bottom

	LifeMax     int     // block durability
	BrownDamage int     // durability lost per hit on a Brown block
	BrownChance float64 // probability a field block is Brown

	ShakeFrames     int // gravity passes spent shaking
	BlockFallFrames int // gravity passes spent falling before a relocation
	CascadeMin      int // component size erased on landing

	WalkFrames       int
	PlayerFallFrames int

	AirMax              int
	AirRecoverPercent   int // of AirMax, gained from an air pocket
	BrownPenaltyPercent int // of AirMax, lost when a Brown block breaks
	AirPocketInterval   int // rows between air pockets
	AirPocketJitter     int // +/- rows applied to each interval

	CameraLead int // rows shown above the player

	Topology  Topology
	Generator GeneratorMode
}

// DefaultParams returns the standard 9-column game.
func DefaultParams() Params {
	return Params{
		Width:               9,
		SkyRows:             6,
		FieldRows:           30,
		FloorRows:           7,
		LifeMax:             100,
		BrownDamage:         25,
		BrownChance:         0.06,
		ShakeFrames:         30,
		BlockFallFrames:     6,
		CascadeMin:          4,
		WalkFrames:          3,
		PlayerFallFrames:    3,
		AirMax:              3000,
		AirRecoverPercent:   20,
		BrownPenaltyPercent: 20,
		AirPocketInterval:   5,
		AirPocketJitter:     2,
		CameraLead:          5,
		Topology:            TopologyBounded,
		Generator:           GeneratorUniform,
	}
}

// Height returns the total number of rows.
func (p Params) Height() int {
	return p.SkyRows + p.FieldRows + p.FloorRows
}

// Start returns the player's initial position.
func (p Params) Start() Position {
	return Position{X: p.Width / 2, Y: p.SkyRows - 1}
}

// Validate reports the first inconsistent parameter.
func (p Params) Validate() error {
	switch {
	case p.Width < 1:
		return fmt.Errorf("width must be positive, got %d", p.Width)
	case p.SkyRows < 1:
		return fmt.Errorf("sky rows must be positive, got %d", p.SkyRows)
	case p.FieldRows < 0 || p.FloorRows < 1:
		return fmt.Errorf("invalid field/floor rows %d/%d", p.FieldRows, p.FloorRows)
	case p.LifeMax < 1 || p.BrownDamage < 1:
		return errors.New("life and brown damage must be positive")
	case p.BrownChance < 0 || p.BrownChance > 1:
		return fmt.Errorf("brown chance %v outside [0,1]", p.BrownChance)
	case p.ShakeFrames < 0 || p.BlockFallFrames < 0:
		return errors.New("block timers must not be negative")
	case p.CascadeMin < 1:
		return fmt.Errorf("cascade threshold must be positive, got %d", p.CascadeMin)
	case p.WalkFrames < 1 || p.PlayerFallFrames < 1:
		return errors.New("player timers must be positive")
	case p.AirMax < 1:
		return fmt.Errorf("air max must be positive, got %d", p.AirMax)
	case p.AirRecoverPercent < 0 || p.BrownPenaltyPercent < 0:
		return errors.New("air percentages must not be negative")
	case p.AirPocketInterval < 1 || p.AirPocketJitter < 0 || p.AirPocketJitter >= p.AirPocketInterval:
		return fmt.Errorf("air pocket interval %d with jitter %d", p.AirPocketInterval, p.AirPocketJitter)
	case p.CameraLead < 0:
		return fmt.Errorf("camera lead must not be negative, got %d", p.CameraLead)
	}
	return nil
}

func percentOf(total, pct int) int {
	return total * pct / 100
}
