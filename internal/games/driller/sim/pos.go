package sim

import "fmt"

// Position is a cell coordinate. X grows to the right, Y grows downward.
// Positions handed out by a Grid are always in bounds; build them with Grid.Pos.
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the four orthogonal neighbors.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// floodOrder is the neighbor order used by the labeler.
var floodOrder = [4]Direction{DirRight, DirLeft, DirUp, DirDown}

func (d Direction) delta() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	default:
		return 0, 1
	}
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Topology controls what lies beyond the left and right edges.
type Topology uint8

const (
	// TopologyBounded has hard edges: there is no neighbor past the border.
	TopologyBounded Topology = iota
	// TopologyWrap joins the left and right columns. Rows never wrap, so the
	// floor band is never adjacent to the sky.
	TopologyWrap
)

func (t Topology) String() string {
	if t == TopologyWrap {
		return "wrap"
	}
	return "bounded"
}
