package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// gridFrom builds a grid from rows of glyphs:
// '.' empty, 'o' air, R Y G B colors, C clear, N brown.
func gridFrom(topology Topology, rows ...string) *Grid {
	g := NewGrid(len(rows[0]), len(rows), topology)
	for y, row := range rows {
		for x, ch := range row {
			p := g.Pos(x, y)
			switch ch {
			case '.':
			case 'o':
				g.Set(p, NewAir())
			case 'R':
				g.Set(p, NewBlock(ColorRed, 100))
			case 'Y':
				g.Set(p, NewBlock(ColorYellow, 100))
			case 'G':
				g.Set(p, NewBlock(ColorGreen, 100))
			case 'B':
				g.Set(p, NewBlock(ColorBlue, 100))
			case 'C':
				g.Set(p, NewBlock(ColorClear, 100))
			case 'N':
				g.Set(p, NewBlock(ColorBrown, 100))
			default:
				panic("unknown glyph " + string(ch))
			}
		}
	}
	return g
}

// newTestGame returns a game whose grid is replaced by rows and whose
// player stands at (px, py).
func newTestGame(t *testing.T, p Params, px, py int, rows ...string) *Game {
	t.Helper()
	p.Width = len(rows[0])
	require.NoError(t, p.Validate())

	g := New(p, 1)
	g.grid = gridFrom(p.Topology, rows...)
	g.player.Pos = g.grid.Pos(px, py)
	g.grid.Relabel()
	g.grid.PropagateSupport()
	g.updateCamera()
	return g
}

func nonEmpty(g *Grid) int {
	return g.Count(KindAir) + g.Count(KindBlock)
}

// reachable reports whether b can be reached from a through same-colored
// blocks, independently of the labeler.
func reachable(g *Grid, a, b Position) bool {
	ca := g.Cell(a)
	if !ca.IsBlock() || !g.Cell(b).IsBlock() {
		return false
	}
	seen := map[Position]bool{a: true}
	queue := []Position{a}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p == b {
			return true
		}
		for _, d := range []Direction{DirLeft, DirRight, DirUp, DirDown} {
			q, ok := g.Neighbor(p, d)
			if !ok || seen[q] {
				continue
			}
			c := g.Cell(q)
			if c.IsBlock() && c.Color == ca.Color {
				seen[q] = true
				queue = append(queue, q)
			}
		}
	}
	return false
}
