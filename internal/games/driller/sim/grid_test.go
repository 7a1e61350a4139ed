package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosPanicsOutOfBounds(t *testing.T) {
	g := NewGrid(9, 4, TopologyBounded)

	assert.Equal(t, Position{X: 8, Y: 3}, g.Pos(8, 3))
	assert.Panics(t, func() { g.Pos(9, 0) })
	assert.Panics(t, func() { g.Pos(0, -1) })
	assert.Panics(t, func() { g.Cell(Position{X: -1, Y: 0}) })
	assert.Panics(t, func() { NewGrid(0, 3, TopologyBounded) })
}

func TestNeighborBounded(t *testing.T) {
	g := NewGrid(3, 3, TopologyBounded)

	tests := []struct {
		name string
		from Position
		dir  Direction
		want Position
		ok   bool
	}{
		{"left inside", Position{1, 1}, DirLeft, Position{0, 1}, true},
		{"left edge", Position{0, 1}, DirLeft, Position{}, false},
		{"right edge", Position{2, 1}, DirRight, Position{}, false},
		{"up edge", Position{1, 0}, DirUp, Position{}, false},
		{"down edge", Position{1, 2}, DirDown, Position{}, false},
		{"down inside", Position{1, 1}, DirDown, Position{1, 2}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := g.Neighbor(tc.from, tc.dir)
			assert.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestNeighborWrapIsHorizontalOnly(t *testing.T) {
	g := NewGrid(3, 3, TopologyWrap)

	left, ok := g.Neighbor(Position{0, 1}, DirLeft)
	require.True(t, ok)
	assert.Equal(t, Position{2, 1}, left)

	right, ok := g.Neighbor(Position{2, 1}, DirRight)
	require.True(t, ok)
	assert.Equal(t, Position{0, 1}, right)

	_, ok = g.Neighbor(Position{1, 0}, DirUp)
	assert.False(t, ok)
	_, ok = g.Neighbor(Position{1, 2}, DirDown)
	assert.False(t, ok)
}

func TestCloneIsDeep(t *testing.T) {
	g := gridFrom(TopologyBounded,
		"RR.",
		"CCC",
	)
	g.Relabel()
	c := g.Clone()
	require.True(t, g.Equal(c))
	assert.Len(t, c.Component(c.Pos(1, 0)), 2)

	g.Clear(g.Pos(0, 0))
	assert.False(t, g.Equal(c))
	assert.Equal(t, KindBlock, c.Cell(c.Pos(0, 0)).Kind)
}

func TestGridHashTracksCells(t *testing.T) {
	a := gridFrom(TopologyBounded, "R.o", "CCC")
	b := gridFrom(TopologyBounded, "R.o", "CCC")
	assert.Equal(t, a.Hash(), b.Hash())

	b.At(b.Pos(0, 0)).Durability = 50
	assert.NotEqual(t, a.Hash(), b.Hash())
}
