package lightsout

import "testing"

func TestNewBoardAllOff(t *testing.T) {
	b := NewBoard(5)

	if b.Size() != 5 {
		t.Errorf("Size() = %d, expected 5", b.Size())
	}
	if len(b.Cells()) != 25 {
		t.Errorf("len(Cells()) = %d, expected 25", len(b.Cells()))
	}
	if !b.AllOff() {
		t.Error("New board should be all off")
	}
}

func TestNewBoardRejectsZeroSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewBoard(0) should panic")
		}
	}()
	NewBoard(0)
}

func TestCrossToggleCounts(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		x, y    int
		toggled int
		center  bool
	}{
		{"top-left corner", 5, 0, 0, 3, true},
		{"bottom-right corner", 5, 4, 4, 3, true},
		{"top edge", 5, 2, 0, 4, true},
		{"left edge", 5, 0, 2, 4, true},
		{"center", 5, 2, 2, 5, true},
		{"single cell board", 1, 0, 0, 1, true},
		{"left of board", 5, -1, 0, 1, false},
		{"right of board", 5, 5, 0, 1, false},
		{"far away", 5, 10, 10, 0, false},
		{"diagonal outside", 5, -1, -1, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBoard(tc.size)
			center := b.CrossToggle(tc.x, tc.y)

			if center != tc.center {
				t.Errorf("CrossToggle(%d, %d) center = %v, expected %v", tc.x, tc.y, center, tc.center)
			}
			if got := b.LitCount(); got != tc.toggled {
				t.Errorf("CrossToggle(%d, %d) lit %d cells, expected %d", tc.x, tc.y, got, tc.toggled)
			}
		})
	}
}

func TestCrossToggleCornerCells(t *testing.T) {
	b := NewBoard(5)
	b.CrossToggle(0, 0)

	for _, p := range [][2]int{{0, 0}, {1, 0}, {0, 1}} {
		if !b.Cell(p[0], p[1]) {
			t.Errorf("Cell (%d, %d) should be lit", p[0], p[1])
		}
	}
	if b.Cell(4, 0) || b.Cell(0, 4) {
		t.Error("Corner press must not wrap around to the far edges")
	}
}

func TestCrossToggleSymmetry(t *testing.T) {
	b := NewBoard(5)
	b.Set(1, 1, true)
	b.Set(3, 4, true)
	before := b.Cells()

	for y := -1; y <= 5; y++ {
		for x := -1; x <= 5; x++ {
			b.CrossToggle(x, y)
			b.CrossToggle(x, y)

			after := b.Cells()
			for i := range before {
				if before[i] != after[i] {
					t.Fatalf("Double press at (%d, %d) changed cell %d", x, y, i)
				}
			}
		}
	}
}

func TestBoardCellOffBoard(t *testing.T) {
	b := NewBoard(3)
	b.Set(0, 0, true)

	if b.Cell(-1, 0) || b.Cell(3, 0) || b.Cell(0, -1) {
		t.Error("Off-board cells should read as off")
	}
	if b.Toggle(3, 3) {
		t.Error("Toggle off the board should report false")
	}
}

func TestBoardClear(t *testing.T) {
	b := NewBoard(4)
	b.CrossToggle(1, 1)
	b.Clear()

	if !b.AllOff() {
		t.Error("Clear() should turn every light off")
	}
}

func TestBoardString(t *testing.T) {
	b := NewBoard(3)
	b.CrossToggle(0, 0)

	expected := "##.\n#..\n..."
	if got := b.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}
