package sim

// Relabel assigns a component label to every block cell.
//
// Cells are scanned row-major and each unlabeled block starts a flood fill
// over 4-adjacent blocks of the same color. The label of a component is the
// position of the cell that started its fill, so the result does not depend
// on any earlier labeling. Empty and Air cells end up unlabeled.
func (g *Grid) Relabel() {
	for i := range g.cells {
		g.cells[i].labeled = false
		g.cells[i].label = Position{}
	}
	g.comps.Clear()

	var stack []Position
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			start := Position{X: x, Y: y}
			c := g.At(start)
			if c.Kind != KindBlock || c.labeled {
				continue
			}
			var members []Position
			members, stack = g.flood(start, stack[:0])
			g.comps.Put(g.index(start), members)
		}
	}
}

// flood labels the component containing start with start itself, using an
// explicit stack. It returns the members in visit order and the stack for reuse.
func (g *Grid) flood(start Position, stack []Position) ([]Position, []Position) {
	color := g.At(start).Color
	g.mark(start, start)
	members := []Position{start}
	stack = append(stack, start)

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range floodOrder {
			q, ok := g.Neighbor(p, d)
			if !ok {
				continue
			}
			n := g.At(q)
			if n.Kind != KindBlock || n.Color != color || n.labeled {
				continue
			}
			g.mark(q, start)
			members = append(members, q)
			stack = append(stack, q)
		}
	}
	return members, stack
}

func (g *Grid) mark(p, label Position) {
	c := g.At(p)
	c.label = label
	c.labeled = true
}

// Component returns the members of the component containing p, as of the
// last Relabel. It returns nil when p holds no labeled block.
func (g *Grid) Component(p Position) []Position {
	label, ok := g.Cell(p).Label()
	if !ok {
		return nil
	}
	members, _ := g.comps.Get(g.index(label))
	return members
}

// ComponentCount returns the number of components found by the last Relabel
// that have not been erased since.
func (g *Grid) ComponentCount() int {
	return g.comps.Len()
}

// EraseComponent clears every member of the component containing p and
// returns how many cells were removed.
func (g *Grid) EraseComponent(p Position) int {
	label, ok := g.Cell(p).Label()
	if !ok {
		return 0
	}
	k := g.index(label)
	members, _ := g.comps.Get(k)
	for _, m := range members {
		g.Clear(m)
	}
	g.comps.Del(k)
	return len(members)
}
