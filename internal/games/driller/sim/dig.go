package sim

// dig hits the block at p and reports whether it was a Clear block.
//
// Brown blocks lose BrownDamage per hit; every other color breaks at once.
// A block that reaches zero durability takes its whole component with it,
// and a broken Brown block costs the player air.
func (g *Game) dig(p Position) bool {
	c := g.grid.At(p)
	if c.Kind != KindBlock {
		return false
	}
	if c.Color == ColorClear {
		g.clear = true
		g.outcome = OutcomeCleared
		g.emit(SoundClear)
		return true
	}

	if c.Color == ColorBrown {
		c.Durability -= g.params.BrownDamage
	} else {
		c.Durability = 0
	}
	if c.Durability > 0 {
		return false
	}
	c.Durability = 0

	if c.Color == ColorBrown {
		g.addAir(-percentOf(g.params.AirMax, g.params.BrownPenaltyPercent))
		g.emit(SoundBreakBrown)
	}
	g.grid.EraseComponent(p)
	return false
}
