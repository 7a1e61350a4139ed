package sim

// PropagateSupport recomputes the Supported flag of every cell.
//
// A cell is eligible when it sits on the bottom row or on a non-Empty cell
// that is already supported. An eligible Air cell is supported on its own; an
// eligible block supports its whole component, including members that hang
// over open space. Rows are swept bottom-up until nothing changes, since a
// component marked late can hold up cells in rows that were already swept.
// Supported cells return to the Idle phase.
//
// Labels must be current.
func (g *Grid) PropagateSupport() {
	for i := range g.cells {
		g.cells[i].Supported = false
	}

	for changed := true; changed; {
		changed = false
		for y := g.h - 1; y >= 0; y-- {
			for x := 0; x < g.w; x++ {
				p := Position{X: x, Y: y}
				c := g.At(p)
				if c.Kind == KindEmpty || c.Supported || !g.restsOnSupport(p) {
					continue
				}
				changed = true
				if c.Kind == KindAir {
					g.support(p)
					continue
				}
				members := g.Component(p)
				if len(members) == 0 {
					g.support(p)
					continue
				}
				for _, m := range members {
					g.support(m)
				}
			}
		}
	}
}

func (g *Grid) restsOnSupport(p Position) bool {
	below, ok := g.Below(p)
	if !ok {
		return true
	}
	return below.Kind != KindEmpty && below.Supported
}

func (g *Grid) support(p Position) {
	c := g.At(p)
	c.Supported = true
	c.Phase = IdlePhase()
}
