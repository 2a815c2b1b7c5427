package core

import (
	"testing"
)

// cellAt is a short form for the expected cell in table cases.
func cellAt(r rune, c Color) Cell {
	return Cell{Rune: r, Color: c}
}

func TestScreenCells(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		x, y int
		want Cell
	}{
		{"new screen is blank", func(*Screen) {}, 3, 2, blankCell},
		{"set keeps default color", func(s *Screen) { s.Set(1, 1, 'A') }, 1, 1, cellAt('A', ColorDefault)},
		{"set colored", func(s *Screen) { s.SetColored(4, 0, 'X', ColorRed) }, 4, 0, cellAt('X', ColorRed)},
		{"out of bounds read", func(s *Screen) { s.SetColored(0, 0, 'X', ColorRed) }, -1, 0, blankCell},
		{"out of bounds write ignored", func(s *Screen) { s.Set(9, 9, 'Z') }, 7, 4, blankCell},
		{"text is colored", func(s *Screen) { s.DrawTextColored(2, 1, "Hi", ColorYellow) }, 3, 1, cellAt('i', ColorYellow)},
		{"multibyte runes take one cell", func(s *Screen) { s.DrawText(0, 3, "█░█") }, 1, 3, cellAt('░', ColorDefault)},
		{"text clipped at right edge", func(s *Screen) { s.DrawText(6, 0, "Hello") }, 7, 0, cellAt('e', ColorDefault)},
		{"centered text", func(s *Screen) { s.DrawTextCentered(2, "Hi") }, 3, 2, cellAt('H', ColorDefault)},
		{"rect fill", func(s *Screen) { s.DrawRect(NewRect(2, 1, 3, 2), '#', ColorBlue) }, 4, 2, cellAt('#', ColorBlue)},
		{"rect leaves outside", func(s *Screen) { s.DrawRect(NewRect(2, 1, 3, 2), '#', ColorBlue) }, 5, 2, blankCell},
		{"clear resets colors", func(s *Screen) {
			s.DrawRect(NewRect(0, 0, 8, 5), '#', ColorGreen)
			s.Clear()
		}, 6, 4, blankCell},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(8, 5)
			tt.draw(s)
			if got := s.GetCell(tt.x, tt.y); got != tt.want {
				t.Errorf("GetCell(%d, %d) = %+v, expected %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(1, 2, "cd", ColorRed)

	if got, want := s.String(), "ab  \n    \n cd "; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
	if got := s.Row(-1); got != "    " {
		t.Errorf("Row(-1) = %q, expected blank row", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawTextColored(0, 0, "Hello", ColorCyan)
	s.DrawText(0, 5, "World")

	s.Resize(3, 4)
	if s.Width() != 3 || s.Height() != 4 {
		t.Fatalf("After shrink, size = %dx%d, expected 3x4", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "Hel" {
		t.Errorf("Row(0) after shrink = %q, expected %q", got, "Hel")
	}
	if c := s.GetCell(2, 0); c != cellAt('l', ColorCyan) {
		t.Errorf("Shrink should keep colors, got %+v", c)
	}

	s.Resize(6, 7)
	if got := s.Row(0); got != "Hel   " {
		t.Errorf("Row(0) after grow = %q, expected %q", got, "Hel   ")
	}
	if c := s.GetCell(0, 5); c != blankCell {
		t.Errorf("Rows cut by a shrink should come back blank, got %+v", c)
	}

	s.Resize(-2, -2)
	if s.Width() != 0 || s.Height() != 0 || s.String() != "" {
		t.Errorf("Negative resize should give an empty screen, got %dx%d", s.Width(), s.Height())
	}
}
