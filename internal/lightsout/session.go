// Package lightsout implements the Lights Out puzzle: seeded, always-solvable
// board generation, cross-shaped toggles and win detection, plus the adapter
// that plugs the puzzle into the terminal platform.
package lightsout

import "github.com/vovakirdan/tui-lightsout/internal/core"

// DefaultStrength is the number of simulated presses used to scramble a board.
const DefaultStrength = 5

// Session is one player's game: a board plus the seed, attempt, click and
// timer bookkeeping around it. It is not safe for concurrent use; a single
// owner drives every mutating call.
type Session struct {
	board    *Board
	src      Source
	strength int

	seed     uint32
	attempts int
	clicks   int
	elapsed  float64
	won      bool

	// moves is the press sequence that produced the current layout.
	moves []core.Point
}

// NewSession creates a session of the given size and scramble strength and
// generates its first board from a fresh seed. A nil src uses NewRandom.
// Size must be at least 1.
func NewSession(size, strength int, src Source) *Session {
	if src == nil {
		src = NewRandom()
	}
	s := &Session{
		board:    NewBoard(size),
		src:      src,
		strength: max(strength, 0),
	}
	s.ResetBoard(true)
	return s
}

// ResetBoard starts a new attempt. With newSeed the generator draws a fresh
// seed and the attempt counter restarts at 1; otherwise the current seed is
// replayed, reproducing the same layout, and the counter increments.
func (s *Session) ResetBoard(newSeed bool) {
	if newSeed {
		s.src.NewSeed()
		s.attempts = 1
	} else {
		s.src.SetSeed(s.src.GetSeed())
		s.attempts++
	}
	s.generate()
}

// ResetWithSeed starts a new attempt series at a caller-chosen seed.
func (s *Session) ResetWithSeed(seed uint32) {
	s.src.SetSeed(seed)
	s.attempts = 1
	s.generate()
}

// generate clears the board and scrambles it with strength random presses.
// The layout is a sequence of legal moves away from all-off, so it is always
// solvable.
func (s *Session) generate() {
	s.seed = s.src.GetSeed()
	s.clicks = 0
	s.elapsed = 0
	s.won = false

	s.board.Clear()
	s.moves = s.moves[:0]

	hi := uint32(s.board.size - 1)
	for range s.strength {
		x := int(s.src.RndRange(0, hi))
		y := int(s.src.RndRange(0, hi))
		s.board.CrossToggle(x, y)
		s.moves = append(s.moves, core.Point{X: x, Y: y})
	}
}

// ApplyClick presses the light at board position (x, y). Off-board presses
// are ignored entirely: no neighbor is toggled and nothing is counted.
func (s *Session) ApplyClick(x, y int) {
	if !s.board.InBounds(x, y) {
		return
	}
	s.board.CrossToggle(x, y)
	s.clicks++
	s.won = s.board.AllOff()
}

// Tick adds elapsed seconds to the attempt timer. The timer stops once won.
func (s *Session) Tick(elapsedSeconds float64) {
	if s.won {
		return
	}
	s.elapsed += elapsedSeconds
}

// Resize reallocates the board at newSize and generates a fresh puzzle.
// NewSize must be at least 1.
func (s *Session) Resize(newSize int) {
	s.board = NewBoard(newSize)
	s.ResetBoard(true)
}

// SetStrength changes the scramble strength used by the next reset.
func (s *Session) SetStrength(strength int) {
	s.strength = max(strength, 0)
}

// Hint returns a press that belongs to a solution of the current layout.
// It returns false when the board is already solved.
func (s *Session) Hint() (core.Point, bool) {
	presses, ok := Solve(s.board)
	if !ok {
		return core.Point{}, false
	}
	for i, press := range presses {
		if press {
			return core.Point{X: i % s.board.size, Y: i / s.board.size}, true
		}
	}
	return core.Point{}, false
}

// Board returns the live board for read-only use by renderers.
func (s *Session) Board() *Board { return s.board }

// Size returns the board side length.
func (s *Session) Size() int { return s.board.size }

// Cell reports whether the light at (x, y) is on.
func (s *Session) Cell(x, y int) bool { return s.board.Cell(x, y) }

// Seed returns the seed of the current layout.
func (s *Session) Seed() uint32 { return s.seed }

// Attempts returns how many times the current seed has been tried.
func (s *Session) Attempts() int { return s.attempts }

// Clicks returns the number of counted presses in the current attempt.
func (s *Session) Clicks() int { return s.clicks }

// Elapsed returns the attempt time in seconds.
func (s *Session) Elapsed() float64 { return s.elapsed }

// Won reports whether every light is off.
func (s *Session) Won() bool { return s.won }

// Strength returns the scramble strength.
func (s *Session) Strength() int { return s.strength }

// Moves returns a copy of the press sequence that generated the layout.
func (s *Session) Moves() []core.Point {
	return append([]core.Point(nil), s.moves...)
}
