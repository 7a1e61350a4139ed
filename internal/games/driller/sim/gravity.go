package sim

// ApplyGravity runs one gravity pass and returns how many cells relocated.
//
// Every unsupported non-Empty cell advances one step through
// Idle → Shaking(1..shake) → Falling(1..fall) and relocates one row down on
// the pass after its fall phase completes. A zero shake or fall length skips
// that stage. Relocation moves the whole cell into an Empty cell below and
// flags it JustLanded; when the cell below is occupied the cell waits at the
// end of its fall phase. A relocating block pops an Air cell directly under
// its new position.
//
// Rows are processed bottom-up so a relocated cell is not advanced twice.
func (g *Grid) ApplyGravity(shake, fall int) int {
	for i := range g.cells {
		g.cells[i].JustLanded = false
	}

	moved := 0
	for y := g.h - 2; y >= 0; y-- {
		for x := 0; x < g.w; x++ {
			p := Position{X: x, Y: y}
			c := g.At(p)
			if c.Kind == KindEmpty || c.Supported {
				continue
			}
			if g.advancePhase(c, shake, fall) && g.relocate(p) {
				moved++
			}
		}
	}
	return moved
}

// advancePhase steps the animation of c and reports whether c is due to move.
func (g *Grid) advancePhase(c *Cell, shake, fall int) bool {
	switch c.Phase.Kind {
	case PhaseIdle:
		if shake > 0 {
			c.Phase = ShakingPhase(1)
			return false
		}
		if fall > 0 {
			c.Phase = FallingPhase(1)
			return false
		}
	case PhaseShaking:
		if c.Phase.N < shake {
			c.Phase.N++
			return false
		}
		if fall > 0 {
			c.Phase = FallingPhase(1)
			return false
		}
	case PhaseFalling:
		if c.Phase.N < fall {
			c.Phase.N++
			return false
		}
	}
	return true
}

func (g *Grid) relocate(p Position) bool {
	dst, ok := g.Neighbor(p, DirDown)
	if !ok || g.Cell(dst).Kind != KindEmpty {
		return false
	}
	moving := g.Cell(p)
	moving.JustLanded = true
	g.Set(dst, moving)
	g.Clear(p)

	if moving.Kind != KindBlock {
		return true
	}
	if under, ok := g.Neighbor(dst, DirDown); ok && g.Cell(under).Kind == KindAir {
		g.Clear(under)
	}
	return true
}
