package core

// Game is the contract between the snake simulation and a frontend.
// Games contain pure logic; the platform handles input mapping, timing
// and presenting frames.
type Game interface {
	// ID returns a stable identifier (used for log fields).
	ID() string

	// Title returns a human-readable name for window titles and HUDs.
	Title() string

	// Reset initializes or resets the whole game from the runtime config.
	// It fails when the config describes an unusable board.
	Reset(cfg RuntimeConfig) error

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current state onto dst.
	Render(dst Surface)

	// State returns the current game state.
	State() GameState
}

// Surface is a pixel-addressed drawing target. Frontends adapt it to a
// terminal cell buffer or an ebiten image; presenting the finished frame is
// the frontend's job.
type Surface interface {
	// Clear fills the whole surface with bg.
	Clear(bg Color)

	// DrawSquare draws a filled square of the given edge at pixel (x, y)
	// with a one-pixel border.
	DrawSquare(x, y, size int, fill, border Color)
}
