package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for reproducible boards, 0 = fresh seed
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Moves   int     // Counted player moves on the current attempt
	Elapsed float64 // Seconds spent on the current attempt
	Won     bool    // Whether the puzzle is solved
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventBoardReset EventKind = iota
	EventBoardResized
	EventWon
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventBoardReset:
		return "board_reset"
	case EventBoardResized:
		return "board_resized"
	case EventWon:
		return "won"
	default:
		return "unknown"
	}
}

// Event carries the details of a board reset, resize or win so the platform
// can report it without reaching into game internals.
type Event struct {
	Kind     EventKind
	Seed     uint32
	Attempts int
	Size     int
	Strength int
	Moves    int
	Elapsed  float64
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
