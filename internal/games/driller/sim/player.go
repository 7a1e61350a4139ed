package sim

// Command is the directional input for one tick.
type Command uint8

const (
	CmdNone Command = iota
	CmdLeft
	CmdRight
	CmdUp
	CmdDown
)

func (c Command) String() string {
	switch c {
	case CmdLeft:
		return "left"
	case CmdRight:
		return "right"
	case CmdUp:
		return "up"
	case CmdDown:
		return "down"
	default:
		return "none"
	}
}

func (c Command) direction() (Direction, bool) {
	switch c {
	case CmdLeft:
		return DirLeft, true
	case CmdRight:
		return DirRight, true
	case CmdUp:
		return DirUp, true
	case CmdDown:
		return DirDown, true
	default:
		return 0, false
	}
}

// PlayerState is the movement state of the player.
type PlayerState uint8

const (
	Standing PlayerState = iota
	Walking
	Falling
)

func (s PlayerState) String() string {
	switch s {
	case Walking:
		return "walking"
	case Falling:
		return "falling"
	default:
		return "standing"
	}
}

// Player is the digging actor.
type Player struct {
	Pos           Position
	State         PlayerState
	Facing        Direction
	Air           int
	WalkingFrames int
	FallingFrames int
}

func newPlayer(p Params) Player {
	return Player{
		Pos:    p.Start(),
		State:  Standing,
		Facing: DirLeft,
		Air:    p.AirMax,
	}
}

// animatePlayer starts a fall when the player has no footing and advances
// the walk or fall in progress.
func (g *Game) animatePlayer() {
	pl := &g.player

	if pl.State == Standing {
		if below, ok := g.grid.Below(pl.Pos); ok && below.IsOpen() {
			pl.State = Falling
			pl.FallingFrames = 0
		}
	}

	switch pl.State {
	case Falling:
		pl.FallingFrames++
		if pl.FallingFrames < g.params.PlayerFallFrames {
			return
		}
		pl.FallingFrames = 0
		pl.State = Standing
		if next, ok := g.grid.Neighbor(pl.Pos, DirDown); ok {
			pl.Pos = next
			g.depth++
		}
	case Walking:
		pl.WalkingFrames++
		if pl.WalkingFrames < g.params.WalkFrames {
			return
		}
		pl.WalkingFrames = 0
		pl.State = Standing
		if next, ok := g.grid.Neighbor(pl.Pos, pl.Facing); ok {
			pl.Pos = next
		}
	}
}

// applyCommand resolves a command for a standing player into a walk or a
// dig. It reports whether the dig cleared the stage.
func (g *Game) applyCommand(cmd Command) bool {
	pl := &g.player
	d, ok := cmd.direction()
	if !ok || pl.State != Standing {
		return false
	}
	target, ok := g.grid.Neighbor(pl.Pos, d)
	if !ok {
		return false
	}
	cell := g.grid.Cell(target)

	if d == DirLeft || d == DirRight {
		pl.Facing = d
		if cell.IsOpen() {
			pl.State = Walking
			pl.WalkingFrames = 0
			return false
		}
	}
	if cell.IsBlock() {
		return g.dig(target)
	}
	return false
}
