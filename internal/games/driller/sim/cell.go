package sim

// Kind is the physical occupancy of a cell.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindAir
	KindBlock
)

func (k Kind) String() string {
	switch k {
	case KindAir:
		return "air"
	case KindBlock:
		return "block"
	default:
		return "empty"
	}
}

// Color is the block color. It only matters for KindBlock cells.
type Color uint8

const (
	ColorRed Color = iota
	ColorYellow
	ColorGreen
	ColorBlue
	ColorClear // floor band, digging it wins the stage
	ColorBrown // reinforced, takes several hits and costs air
)

// plainColors are the colors the field generator picks from.
var plainColors = [4]Color{ColorRed, ColorYellow, ColorGreen, ColorBlue}

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorClear:
		return "clear"
	case ColorBrown:
		return "brown"
	default:
		return "unknown"
	}
}

// PhaseKind tags the gravity animation state of a cell.
type PhaseKind uint8

const (
	PhaseIdle PhaseKind = iota
	PhaseShaking
	PhaseFalling
)

// Phase is the gravity animation state of a cell. N counts passes spent in
// the current stage, starting at 1.
type Phase struct {
	Kind PhaseKind
	N    int
}

// IdlePhase is the phase of a resting cell.
func IdlePhase() Phase { return Phase{} }

// ShakingPhase returns the n-th shake pass.
func ShakingPhase(n int) Phase { return Phase{Kind: PhaseShaking, N: n} }

// FallingPhase returns the n-th fall pass.
func FallingPhase(n int) Phase { return Phase{Kind: PhaseFalling, N: n} }

// Cell is one grid position.
type Cell struct {
	Kind       Kind
	Color      Color
	Durability int
	Supported  bool
	Phase      Phase
	JustLanded bool

	label   Position
	labeled bool
}

// Label returns the component label of a block cell. ok is false for
// Empty and Air cells.
func (c Cell) Label() (label Position, ok bool) {
	return c.label, c.labeled
}

// IsBlock reports whether the cell holds a block.
func (c Cell) IsBlock() bool { return c.Kind == KindBlock }

// IsOpen reports whether a player can stand in the cell.
func (c Cell) IsOpen() bool { return c.Kind == KindEmpty || c.Kind == KindAir }

// ShakeTimer returns the shake pass count, or -1 when the cell is not shaking.
func (c Cell) ShakeTimer() int {
	if c.Phase.Kind != PhaseShaking {
		return -1
	}
	return c.Phase.N
}

// FallTimer returns the fall pass count, or -1 when the cell is not falling.
func (c Cell) FallTimer() int {
	if c.Phase.Kind != PhaseFalling {
		return -1
	}
	return c.Phase.N
}

// NewBlock returns an unlabeled block of the given color.
func NewBlock(color Color, durability int) Cell {
	return Cell{Kind: KindBlock, Color: color, Durability: durability}
}

// NewAir returns an air pocket cell.
func NewAir() Cell {
	return Cell{Kind: KindAir}
}
