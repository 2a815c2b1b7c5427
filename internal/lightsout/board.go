package lightsout

import "fmt"

// crossOffsets lists the cells a press affects: the center, then left, up,
// right and down.
var crossOffsets = [5][2]int{{0, 0}, {-1, 0}, {0, -1}, {1, 0}, {0, 1}}

// Board is a square grid of lights stored row-major, index = y*size + x.
type Board struct {
	size  int
	cells []bool
}

// NewBoard allocates an all-off board. Size must be at least 1.
func NewBoard(size int) *Board {
	if size < 1 {
		panic(fmt.Sprintf("lightsout: invalid board size %d", size))
	}
	return &Board{
		size:  size,
		cells: make([]bool, size*size),
	}
}

// Size returns the side length of the board.
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.size && y >= 0 && y < b.size
}

// Cell reports whether the light at (x, y) is on. Off-board cells read as off.
func (b *Board) Cell(x, y int) bool {
	if !b.InBounds(x, y) {
		return false
	}
	return b.cells[y*b.size+x]
}

// Cells returns a copy of the cell states in row-major order.
func (b *Board) Cells() []bool {
	out := make([]bool, len(b.cells))
	copy(out, b.cells)
	return out
}

// Set forces the light at (x, y). Off-board coordinates are ignored.
func (b *Board) Set(x, y int, on bool) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[y*b.size+x] = on
}

// Toggle flips a single light and reports whether (x, y) was on the board.
func (b *Board) Toggle(x, y int) bool {
	if !b.InBounds(x, y) {
		return false
	}
	i := y*b.size + x
	b.cells[i] = !b.cells[i]
	return true
}

// CrossToggle flips the light at (cx, cy) and its four orthogonal
// neighbors, skipping any that fall off the board. It reports whether the
// center itself was on the board.
func (b *Board) CrossToggle(cx, cy int) bool {
	center := false
	for i, off := range crossOffsets {
		toggled := b.Toggle(cx+off[0], cy+off[1])
		if i == 0 {
			center = toggled
		}
	}
	return center
}

// Clear turns every light off in place.
func (b *Board) Clear() {
	clear(b.cells)
}

// AllOff reports whether every light is off.
func (b *Board) AllOff() bool {
	for _, on := range b.cells {
		if on {
			return false
		}
	}
	return true
}

// LitCount returns the number of lights that are on.
func (b *Board) LitCount() int {
	n := 0
	for _, on := range b.cells {
		if on {
			n++
		}
	}
	return n
}

// String renders the board as rows of '#' (on) and '.' (off).
func (b *Board) String() string {
	buf := make([]byte, 0, b.size*(b.size+1))
	for y := range b.size {
		if y > 0 {
			buf = append(buf, '\n')
		}
		for x := range b.size {
			if b.cells[y*b.size+x] {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
	}
	return string(buf)
}
