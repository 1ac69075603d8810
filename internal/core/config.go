package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Board dimensions are in pixels; the grid is BoardW/CellSize × BoardH/CellSize.
type RuntimeConfig struct {
	BoardW   int     // Board width in pixels
	BoardH   int     // Board height in pixels
	CellSize int     // Edge of one grid cell in pixels
	TickRate int     // Simulation ticks per second (default 10)
	Seed     int64   // RNG seed for deterministic gameplay
	Palette  Palette // Colours used by Render
}

// DefaultConfig returns a RuntimeConfig for the classic 640×480 board.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		BoardW:   640,
		BoardH:   480,
		CellSize: 20,
		TickRate: 10,
		Seed:     0, // 0 means use current time in platform layer
		Palette:  DefaultPalette(),
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int  // Apples eaten since the last reset
	Best   int  // Highest score reached during this process
	Length int  // Occupied cells
	Paused bool // Whether the game is paused
}

// Event is something noteworthy that happened during one tick.
type Event int

const (
	EventAte      Event = iota + 1 // The snake ate the apple and will grow
	EventCollided                  // The snake ran into itself and was reset
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventAte:
		return "ate"
	case EventCollided:
		return "collided"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the tick produced event e.
func (r StepResult) Has(e Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}
