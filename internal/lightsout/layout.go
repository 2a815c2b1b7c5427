package lightsout

import "github.com/vovakirdan/tui-lightsout/internal/core"

const (
	hudWidth    = 28 // Columns reserved on the left for the HUD
	boardMargin = 1  // Blank rows/columns around the board
	minCellH    = 1
	minCellW    = 2 // Terminal cells are about twice as tall as wide
)

// Layout places an n x n board on the right of the screen, leaving the left
// side for the HUD. Each light is CellW x CellH screen cells.
type Layout struct {
	Origin core.Point
	CellW  int
	CellH  int
	Size   int
}

// NewLayout fits a board of the given size into a screen, choosing the
// largest roughly-square cells that fit.
func NewLayout(screenW, screenH, size int) Layout {
	availH := screenH - 2*boardMargin
	availW := screenW - hudWidth - 2*boardMargin

	cellH := core.Max(availH/size, minCellH)
	cellW := 2 * cellH
	if size*cellW > availW {
		cellW = core.Max(availW/size, minCellW)
		cellH = core.Max(cellW/2, minCellH)
	}

	return Layout{
		Origin: core.Point{
			X: screenW - boardMargin - size*cellW,
			Y: boardMargin,
		},
		CellW: cellW,
		CellH: cellH,
		Size:  size,
	}
}

// Bounds returns the screen rectangle covered by the board.
func (l Layout) Bounds() core.Rect {
	return core.NewRect(l.Origin.X, l.Origin.Y, l.Size*l.CellW, l.Size*l.CellH)
}

// Fits reports whether the board and HUD fit on a screen of the given size
// without overlapping.
func (l Layout) Fits(screenW, screenH int) bool {
	b := l.Bounds()
	return b.X >= hudWidth && b.Right() <= screenW && b.Bottom() <= screenH
}

// CellRect returns the screen rectangle of the light at board (x, y).
func (l Layout) CellRect(x, y int) core.Rect {
	return core.NewRect(l.Origin.X+x*l.CellW, l.Origin.Y+y*l.CellH, l.CellW, l.CellH)
}

// ToBoard maps a screen position to board coordinates. Positions left of or
// above the board map to negative coordinates, so the engine drops them.
func (l Layout) ToBoard(px, py int) (int, int) {
	return core.FloorDiv(px-l.Origin.X, l.CellW), core.FloorDiv(py-l.Origin.Y, l.CellH)
}
