package lightsout

// Solve finds a set of presses that turns every light on b off, working over
// GF(2) where pressing twice cancels out. presses[i] is true when the cell at
// index i (row-major) must be pressed once. Free variables of singular
// systems, like the 5x5 board, are left unpressed. ok is false when no
// solution exists, which never happens for generated boards.
func Solve(b *Board) (presses []bool, ok bool) {
	n := b.size * b.size

	// Row i is the equation for cell i: the presses covering it must sum to
	// its current state.
	rows := pressMatrix(b.size)
	rhs := make([]bool, n)
	copy(rhs, b.cells)

	pivots := make([]int, 0, n)
	r := 0
	for col := 0; col < n && r < n; col++ {
		p := -1
		for k := r; k < n; k++ {
			if testBit(rows[k], col) {
				p = k
				break
			}
		}
		if p < 0 {
			continue
		}
		rows[r], rows[p] = rows[p], rows[r]
		rhs[r], rhs[p] = rhs[p], rhs[r]

		for k := range n {
			if k != r && testBit(rows[k], col) {
				xorInto(rows[k], rows[r])
				rhs[k] = rhs[k] != rhs[r]
			}
		}
		pivots = append(pivots, col)
		r++
	}

	// Rows below the last pivot are all zero; a lit right-hand side there
	// means the layout is unreachable.
	for k := r; k < n; k++ {
		if rhs[k] {
			return nil, false
		}
	}

	presses = make([]bool, n)
	for i, col := range pivots {
		presses[col] = rhs[i]
	}
	return presses, true
}

// PressCount returns how many presses a solution needs.
func PressCount(presses []bool) int {
	n := 0
	for _, p := range presses {
		if p {
			n++
		}
	}
	return n
}

// Nullity returns the dimension of the null space of the press matrix for an
// n x n board: the number of independent press patterns that change nothing.
// A board layout has 2^Nullity distinct solutions when it has any.
func Nullity(size int) int {
	n := size * size
	rows := pressMatrix(size)

	rank := 0
	for col := 0; col < n && rank < n; col++ {
		p := -1
		for k := rank; k < n; k++ {
			if testBit(rows[k], col) {
				p = k
				break
			}
		}
		if p < 0 {
			continue
		}
		rows[rank], rows[p] = rows[p], rows[rank]
		for k := rank + 1; k < n; k++ {
			if testBit(rows[k], col) {
				xorInto(rows[k], rows[rank])
			}
		}
		rank++
	}
	return n - rank
}

// pressMatrix builds the symmetric incidence matrix of an n x n board as
// bitset rows: bit j of row i is set when pressing j toggles i.
func pressMatrix(size int) [][]uint64 {
	n := size * size
	words := (n + 63) / 64
	rows := make([][]uint64, n)
	for i := range n {
		x, y := i%size, i/size
		row := make([]uint64, words)
		for _, off := range crossOffsets {
			nx, ny := x+off[0], y+off[1]
			if nx >= 0 && nx < size && ny >= 0 && ny < size {
				j := ny*size + nx
				row[j>>6] |= 1 << (uint(j) & 63)
			}
		}
		rows[i] = row
	}
	return rows
}

func testBit(row []uint64, j int) bool {
	return row[j>>6]&(1<<(uint(j)&63)) != 0
}

func xorInto(dst, src []uint64) {
	for k := range dst {
		dst[k] ^= src[k]
	}
}
