package lightsout

import (
	"fmt"

	"github.com/vovakirdan/tui-lightsout/internal/core"
)

const (
	runeOn     = '█'
	runeOff    = '░'
	runeCursor = '◆'
	runeHint   = '●'
)

var optionLines = []string{
	"Options:",
	"R   - Reset current board",
	"N   - New board",
	"S   - Size of the board",
	"?   - Show a hint",
	"Esc - Quit",
	"F11 - Toggle full screen",
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if !g.layout.Fits(dst.Width(), dst.Height()) {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the stats column and the key reference on the left.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.session
	theme := g.opts.Theme

	dst.DrawTextColored(1, 1, g.Title(), theme.On)

	stats := []string{
		fmt.Sprintf("Seed:     %d", s.Seed()),
		fmt.Sprintf("Clicks:   %d", s.Clicks()),
		fmt.Sprintf("Time:     %.2fs", s.Elapsed()),
		fmt.Sprintf("Attempts: %d", s.Attempts()),
		fmt.Sprintf("Board:    %dx%d", s.Size(), s.Size()),
		fmt.Sprintf("Strength: %d", s.Strength()),
		fmt.Sprintf("Tick:     %d/s", g.tickRate),
	}
	for i, line := range stats {
		dst.DrawText(1, 3+i, line)
	}

	if s.Won() {
		dst.DrawTextColored(1, 3+len(stats)+1, "YOU WON!", theme.Won)
	}

	top := core.Max(dst.Height()-len(optionLines)-1, 3+len(stats)+3)
	for i, line := range optionLines {
		dst.DrawText(1, top+i, line)
	}
}

// cellFace is the drawn part of a cell: its layout rect minus a one-cell
// gutter when there is room for it.
func (g *Game) cellFace(x, y int) core.Rect {
	r := g.layout.CellRect(x, y)
	if r.W > minCellW {
		r.W--
	}
	if r.H > minCellH {
		r.H--
	}
	return r
}

// renderBoard draws one square per light.
func (g *Game) renderBoard(dst *core.Screen) {
	theme := g.opts.Theme
	size := g.session.Size()

	for y := range size {
		for x := range size {
			r := g.cellFace(x, y)
			if g.session.Cell(x, y) {
				dst.DrawRect(r, runeOn, theme.On)
			} else {
				dst.DrawRect(r, runeOff, theme.Off)
			}

			cx, cy := r.Center()
			if g.hasHint && g.hint == (core.Point{X: x, Y: y}) {
				dst.SetColored(cx, cy, runeHint, theme.Hint)
				cx--
			}
			if g.cursor == (core.Point{X: x, Y: y}) && !g.session.Won() {
				dst.SetColored(cx, cy, runeCursor, theme.Cursor)
			}
		}
	}
}
