package driller

import "github.com/vovakirdan/tui-driller/internal/games/driller/sim"

// maxSideSteps bounds how long the bot walks around a Brown block at one depth
// before it gives up and drills through.
const maxSideSteps = 2

// Bot is a simple autoplayer: it digs straight down and sidesteps Brown
// blocks when it can. It is used by --autoplay and the bench.
type Bot struct {
	row       int
	sideSteps int
}

// NewBot creates a bot.
func NewBot() *Bot {
	return &Bot{row: -1}
}

// Next picks the command for the coming tick.
func (b *Bot) Next(g *sim.Game) sim.Command {
	pl := g.Player()
	if pl.State != sim.Standing {
		return sim.CmdNone
	}
	if pl.Pos.Y != b.row {
		b.row = pl.Pos.Y
		b.sideSteps = 0
	}

	grid := g.Grid()
	below, ok := grid.Below(pl.Pos)
	if !ok || below.IsOpen() {
		return sim.CmdNone
	}
	if below.Color != sim.ColorBrown {
		return sim.CmdDown
	}

	if b.sideSteps < maxSideSteps {
		for _, d := range b.sides(pl.Facing) {
			q, ok := grid.Neighbor(pl.Pos, d)
			if !ok {
				continue
			}
			if c := grid.Cell(q); c.IsOpen() || c.Color != sim.ColorBrown {
				b.sideSteps++
				return sideCommand(d)
			}
		}
	}
	return sim.CmdDown
}

// sides orders the horizontal directions so the bot keeps its heading.
func (b *Bot) sides(facing sim.Direction) [2]sim.Direction {
	if facing == sim.DirRight {
		return [2]sim.Direction{sim.DirRight, sim.DirLeft}
	}
	return [2]sim.Direction{sim.DirLeft, sim.DirRight}
}

func sideCommand(d sim.Direction) sim.Command {
	if d == sim.DirRight {
		return sim.CmdRight
	}
	return sim.CmdLeft
}
