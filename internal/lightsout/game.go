package lightsout

import (
	"github.com/vovakirdan/tui-lightsout/internal/core"
)

// Theme holds the colors used to draw the board.
type Theme struct {
	On     core.Color
	Off    core.Color
	Cursor core.Color
	Hint   core.Color
	Won    core.Color
}

// DefaultTheme mirrors the classic look: white lights on a dark grid.
func DefaultTheme() Theme {
	return Theme{
		On:     core.ColorBrightWhite,
		Off:    core.ColorGray,
		Cursor: core.ColorBrightYellow,
		Hint:   core.ColorBrightCyan,
		Won:    core.ColorBrightGreen,
	}
}

// The board sizes of the classic game.
const (
	classicSize    = 5
	classicAltSize = 9
)

// Options configures a Game.
type Options struct {
	Size     int // Primary board size
	AltSize  int // Size the board switches to on ToggleSize
	Strength int // Presses used to scramble each board
	Theme    Theme
}

// DefaultOptions returns the classic 5x5 / 9x9 setup.
func DefaultOptions() Options {
	return Options{
		Size:     classicSize,
		AltSize:  classicAltSize,
		Strength: DefaultStrength,
		Theme:    DefaultTheme(),
	}
}

// Game adapts a Session to the platform loop: it turns input frames into
// presses and board commands, and draws the session to a screen.
type Game struct {
	opts    Options
	src     Source
	session *Session
	layout  Layout

	screenW  int
	screenH  int
	tickRate int

	cursor   core.Point
	showHint bool
	hint     core.Point
	hasHint  bool

	pending []core.Event
}

// New creates a game. The board is generated on Reset.
func New(opts Options) *Game {
	if opts.Size < 1 {
		opts.Size = DefaultOptions().Size
	}
	if opts.AltSize < 1 {
		opts.AltSize = classicAltSize
	}
	return &Game{opts: opts}
}

// NewWithSource creates a game that draws layouts from src.
func NewWithSource(opts Options, src Source) *Game {
	g := New(opts)
	g.src = src
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "lightsout"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Turn the Lights Out"
}

// Reset builds a new session for cfg. A non-zero cfg.Seed selects that
// seed's layout; zero draws a fresh one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}

	src := g.src
	if src == nil {
		src = NewRandom()
	}
	g.session = NewSession(g.opts.Size, g.opts.Strength, src)
	if cfg.Seed != 0 {
		g.session.ResetWithSeed(uint32(cfg.Seed))
	}

	g.cursor = core.Point{X: g.session.Size() / 2, Y: g.session.Size() / 2}
	g.showHint = false
	g.hasHint = false
	g.SetScreenSize(cfg.ScreenW, cfg.ScreenH)

	g.pending = append(g.pending[:0], g.event(core.EventBoardReset))
}

// SetScreenSize re-lays out the board without touching the puzzle.
func (g *Game) SetScreenSize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.session != nil {
		g.layout = NewLayout(w, h, g.session.Size())
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	events := append([]core.Event(nil), g.pending...)
	g.pending = g.pending[:0]

	g.session.Tick(1 / float64(g.tickRate))

	if in.Has(core.ActionReplay) {
		g.session.ResetBoard(false)
		events = append(events, g.event(core.EventBoardReset))
	}
	if in.Has(core.ActionNewBoard) {
		g.session.ResetBoard(true)
		events = append(events, g.event(core.EventBoardReset))
	}
	if in.Has(core.ActionToggleSize) {
		g.session.Resize(g.otherSize())
		g.layout = NewLayout(g.screenW, g.screenH, g.session.Size())
		events = append(events, g.event(core.EventBoardResized))
	}

	g.moveCursor(in)

	if !g.session.Won() {
		if in.Has(core.ActionConfirm) {
			g.session.ApplyClick(g.cursor.X, g.cursor.Y)
		}
		for _, c := range in.Clicks {
			if g.session.Won() {
				break
			}
			bx, by := g.layout.ToBoard(c.X, c.Y)
			if g.session.Board().InBounds(bx, by) {
				g.cursor = core.Point{X: bx, Y: by}
			}
			g.session.ApplyClick(bx, by)
		}
		if g.session.Won() {
			events = append(events, g.event(core.EventWon))
		}
	}

	if in.Has(core.ActionHint) {
		g.showHint = !g.showHint
	}
	if g.showHint {
		g.hint, g.hasHint = g.session.Hint()
	} else {
		g.hasHint = false
	}

	return core.StepResult{State: g.State(), Events: events}
}

// moveCursor applies cursor actions, clamped to the board.
func (g *Game) moveCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Y--
	case in.Has(core.ActionDown):
		g.cursor.Y++
	}
	switch {
	case in.Has(core.ActionLeft):
		g.cursor.X--
	case in.Has(core.ActionRight):
		g.cursor.X++
	}
	last := g.session.Size() - 1
	g.cursor.X = core.Clamp(g.cursor.X, 0, last)
	g.cursor.Y = core.Clamp(g.cursor.Y, 0, last)
}

// otherSize returns the size ToggleSize switches to. When both configured
// sizes are equal it falls back to the classic pair: 9 goes to 5, anything
// else goes to 9.
func (g *Game) otherSize() int {
	if g.opts.Size == g.opts.AltSize {
		if g.session.Size() == classicAltSize {
			return classicSize
		}
		return classicAltSize
	}
	if g.session.Size() == g.opts.Size {
		return g.opts.AltSize
	}
	return g.opts.Size
}

func (g *Game) event(kind core.EventKind) core.Event {
	return core.Event{
		Kind:     kind,
		Seed:     g.session.Seed(),
		Attempts: g.session.Attempts(),
		Size:     g.session.Size(),
		Strength: g.session.Strength(),
		Moves:    g.session.Clicks(),
		Elapsed:  g.session.Elapsed(),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Moves:   g.session.Clicks(),
		Elapsed: g.session.Elapsed(),
		Won:     g.session.Won(),
	}
}

// Session exposes the underlying puzzle for read-only inspection.
func (g *Game) Session() *Session {
	return g.session
}

// Cursor returns the keyboard cursor position in board coordinates.
func (g *Game) Cursor() core.Point {
	return g.cursor
}
