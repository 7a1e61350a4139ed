package driller

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-driller/internal/core"
	"github.com/vovakirdan/tui-driller/internal/games/driller/sim"
)

// Each grid cell is drawn two characters wide so blocks look square.
const cellWidth = 2

const (
	hudWidth   = 20
	minVisible = 8 // grid rows that must fit on screen
	lowAirPct  = 20
)

// blockColors maps block colors to screen colors.
var blockColors = map[sim.Color]core.Color{
	sim.ColorRed:    core.ColorRed,
	sim.ColorYellow: core.ColorYellow,
	sim.ColorGreen:  core.ColorGreen,
	sim.ColorBlue:   core.ColorBlue,
	sim.ColorClear:  core.ColorBrightCyan,
	sim.ColorBrown:  core.ColorBrown,
}

// Brown blocks wear down as they are hit.
var wearGlyphs = []rune{'░', '▒', '▓', '█'}

// Render draws the current game state into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	Draw(dst, g.session, g.Title())
}

// Draw renders a session with the board on the left and the HUD on the right.
func Draw(dst *core.Screen, s *Session, title string) {
	dst.Clear()
	if s == nil {
		return
	}

	sg := s.Game()
	grid := sg.Grid()
	boardW := grid.Width()*cellWidth + 2

	if dst.Width() < boardW+hudWidth+2 || dst.Height() < minVisible+2 {
		renderTooSmall(dst, boardW+hudWidth+2, minVisible+2)
		return
	}

	boardH := min(grid.Height(), dst.Height()-2) + 2
	renderBoard(dst, sg, core.NewRect(0, 0, boardW, boardH))
	renderHUD(dst, sg, title, boardW+2)
}

func renderTooSmall(dst *core.Screen, w, h int) {
	dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
	dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", w, h))
}

// renderBoard draws the visible slice of the grid inside a box.
func renderBoard(dst *core.Screen, sg *sim.Game, box core.Rect) {
	dst.DrawBox(box, core.ColorGray)

	grid := sg.Grid()
	pl := sg.Player()
	rows := box.H - 2
	for row := range rows {
		y := sg.Camera() + row
		if y >= grid.Height() {
			break
		}
		for x := range grid.Width() {
			sx := box.X + 1 + x*cellWidth
			sy := box.Y + 1 + row
			p := grid.Pos(x, y)
			if p == pl.Pos {
				drawPlayer(dst, sx, sy, pl)
				continue
			}
			drawCell(dst, sx, sy, grid.Cell(p), sg)
		}
	}
}

func drawCell(dst *core.Screen, x, y int, c sim.Cell, sg *sim.Game) {
	switch c.Kind {
	case sim.KindAir:
		dst.DrawTextWithColor(x, y, "()", core.ColorCyan)
		return
	case sim.KindEmpty:
		return
	}

	color := blockColors[c.Color]
	glyph := '█'
	switch {
	case c.Color == sim.ColorClear:
		glyph = '▒'
	case c.Color == sim.ColorBrown:
		glyph = wearGlyph(c.Durability, sg.Params().LifeMax)
	case c.ShakeTimer() >= 0 && (sg.Frame()/4)%2 == 1:
		glyph = '▓'
	}
	right := glyph
	if sg.Debug() && !c.Supported {
		right = '!'
	}
	dst.SetWithColor(x, y, glyph, color)
	dst.SetWithColor(x+1, y, right, color)
}

func wearGlyph(durability, lifeMax int) rune {
	if lifeMax <= 0 || durability >= lifeMax {
		return '█'
	}
	i := (durability - 1) * len(wearGlyphs) / lifeMax
	return wearGlyphs[core.Clamp(i, 0, len(wearGlyphs)-1)]
}

func drawPlayer(dst *core.Screen, x, y int, pl sim.Player) {
	glyph := "<@"
	switch {
	case pl.State == sim.Falling:
		glyph = "@@"
	case pl.Facing == sim.DirRight:
		glyph = "@>"
	}
	dst.DrawTextWithColor(x, y, glyph, core.ColorBrightWhite)
}

// renderHUD draws depth, stage, air and status messages to the right of the board.
func renderHUD(dst *core.Screen, sg *sim.Game, title string, x int) {
	dst.DrawTextWithColor(x, 0, strings.ToUpper(title), core.ColorBrightYellow)
	dst.DrawHLine(x, 1, hudWidth, '─', core.ColorGray)
	dst.DrawText(x, 2, fmt.Sprintf("DEPTH %6d", sg.Depth()))
	dst.DrawText(x, 3, fmt.Sprintf("STAGE %6d", sg.Stage()))

	pct := sg.AirPercent()
	airColor := core.ColorBrightCyan
	if pct < lowAirPct {
		airColor = core.ColorBrightRed
	}
	dst.DrawText(x, 5, fmt.Sprintf("AIR   %5d%%", pct))
	dst.DrawTextWithColor(x, 6, airBar(pct, hudWidth-4), airColor)

	switch {
	case sg.Over():
		dst.DrawTextWithColor(x, 8, "GAME OVER", core.ColorBrightRed)
		dst.DrawText(x, 9, outcomeText(sg.Outcome()))
		dst.DrawText(x, 10, "ENTER to retry")
	case sg.Cleared():
		dst.DrawTextWithColor(x, 8, "STAGE CLEAR", core.ColorBrightGreen)
		dst.DrawText(x, 10, "ENTER to go deeper")
	case sg.Paused():
		dst.DrawTextWithColor(x, 8, "PAUSED", core.ColorBrightYellow)
	case pct < lowAirPct:
		dst.DrawTextWithColor(x, 8, "LOW AIR!", core.ColorBrightRed)
	}

	if sg.Debug() {
		dst.DrawTextWithColor(x, 12, fmt.Sprintf("frame %d", sg.Frame()), core.ColorGray)
		dst.DrawTextWithColor(x, 13, fmt.Sprintf("comps %d", sg.Grid().ComponentCount()), core.ColorGray)
		pl := sg.Player()
		dst.DrawTextWithColor(x, 14, fmt.Sprintf("pos %s %s", pl.Pos, pl.State), core.ColorGray)
	}
}

func outcomeText(o sim.Outcome) string {
	switch o {
	case sim.OutcomeAirOut:
		return "Out of air"
	case sim.OutcomeCrushed:
		return "Crushed"
	default:
		return ""
	}
}

// airBar renders pct as a bar of the given width.
func airBar(pct, width int) string {
	filled := core.Clamp(pct*width/100, 0, width)
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}
