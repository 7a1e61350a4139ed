package sim

import (
	"fmt"

	"github.com/kamstrup/intmap"
)

// Grid is a fixed-size 2D array of cells stored row-major.
type Grid struct {
	w, h     int
	topology Topology
	cells    []Cell

	// comps maps a label's flat index to the members of its component.
	// Rebuilt by Relabel.
	comps *intmap.Map[int, []Position]
}

// NewGrid creates a grid of Empty cells.
func NewGrid(w, h int, topology Topology) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("sim: invalid grid size %dx%d", w, h))
	}
	return &Grid{
		w:        w,
		h:        h,
		topology: topology,
		cells:    make([]Cell, w*h),
		comps:    intmap.New[int, []Position](w*h/4 + 1),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Topology returns the edge behavior of the grid.
func (g *Grid) Topology() Topology { return g.topology }

// InBounds reports whether (x, y) is a cell of this grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Pos builds a position, panicking when it lies outside the grid.
func (g *Grid) Pos(x, y int) Position {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("sim: position (%d,%d) outside %dx%d grid", x, y, g.w, g.h))
	}
	return Position{X: x, Y: y}
}

func (g *Grid) index(p Position) int {
	if !g.InBounds(p.X, p.Y) {
		panic(fmt.Sprintf("sim: position %s outside %dx%d grid", p, g.w, g.h))
	}
	return p.Y*g.w + p.X
}

// Cell returns a copy of the cell at p.
func (g *Grid) Cell(p Position) Cell {
	return g.cells[g.index(p)]
}

// At returns a pointer to the cell at p for in-place mutation.
func (g *Grid) At(p Position) *Cell {
	return &g.cells[g.index(p)]
}

// Set replaces the cell at p.
func (g *Grid) Set(p Position, c Cell) {
	g.cells[g.index(p)] = c
}

// Clear turns the cell at p into Empty.
func (g *Grid) Clear(p Position) {
	g.cells[g.index(p)] = Cell{}
}

// Neighbor returns the adjacent position in direction d. ok is false past
// an edge. With TopologyWrap the left and right edges are joined.
func (g *Grid) Neighbor(p Position, d Direction) (Position, bool) {
	dx, dy := d.delta()
	x, y := p.X+dx, p.Y+dy
	if g.topology == TopologyWrap {
		x = (x + g.w) % g.w
	}
	if !g.InBounds(x, y) {
		return Position{}, false
	}
	return Position{X: x, Y: y}, true
}

// Below returns the cell directly under p. ok is false on the bottom row.
func (g *Grid) Below(p Position) (Cell, bool) {
	q, ok := g.Neighbor(p, DirDown)
	if !ok {
		return Cell{}, false
	}
	return g.Cell(q), true
}

// Count returns how many cells have the given kind.
func (g *Grid) Count(k Kind) int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Kind == k {
			n++
		}
	}
	return n
}

// Clone returns a deep copy. The component table is rebuilt from the
// copied labels.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.w, g.h, g.topology)
	copy(c.cells, g.cells)
	c.rebuildComponents()
	return c
}

// rebuildComponents fills the component table from the labels stored in
// the cells, without re-running the flood fill.
func (g *Grid) rebuildComponents() {
	g.comps.Clear()
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			p := Position{X: x, Y: y}
			label, ok := g.Cell(p).Label()
			if !ok {
				continue
			}
			k := g.index(label)
			members, _ := g.comps.Get(k)
			g.comps.Put(k, append(members, p))
		}
	}
}

// Equal reports whether two grids have identical dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.w != other.w || g.h != other.h || g.topology != other.topology {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
