package sim

// Cascade erases every component that contains a just-landed block and has
// at least threshold members. It returns the number of components erased.
//
// Labels must be current.
func (g *Grid) Cascade(threshold int) int {
	erased := 0
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			p := Position{X: x, Y: y}
			c := g.Cell(p)
			if c.Kind != KindBlock || !c.JustLanded {
				continue
			}
			if len(g.Component(p)) < threshold {
				continue
			}
			g.EraseComponent(p)
			erased++
		}
	}
	return erased
}
