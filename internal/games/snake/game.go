package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game implements the Snake loop: input, direction, movement, collision and
// apple checks. Waiting for the tick and presenting frames is left to the
// platform.
type Game struct {
	cfg    core.RuntimeConfig
	rng    *rand.Rand
	board  Board
	snake  *Snake
	apple  *Apple
	tick   uint64
	best   int
	resets int
	paused bool
}

// New creates a Snake game. Call Reset before the first Step.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset builds the board from cfg and starts a fresh game.
// It fails only for board dimensions that cannot hold a cell.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	board, err := NewBoard(cfg.BoardW, cfg.BoardH, cfg.CellSize)
	if err != nil {
		return fmt.Errorf("reset %s: %w", g.ID(), err)
	}

	g.cfg = cfg
	g.board = board
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.best = 0
	g.resets = 0
	g.paused = false
	g.snake = NewSnake(board)
	g.apple = NewApple(board, g.rng, g.snake.Positions())
	return nil
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Replay key presses in arrival order
	for _, a := range input.Actions {
		if a.IsDirectional() {
			g.snake.QueueDirection(directionFor(a))
		}
	}

	g.snake.CommitDirection()
	g.snake.Advance()

	if g.snake.HasSelfCollided() {
		g.resets++
		g.snake.Reset()
		g.apple.RandomizePosition(g.rng, g.snake.Positions())
		return core.StepResult{State: g.State(), Events: []core.Event{core.EventCollided}}
	}

	var events []core.Event
	if g.snake.Head() == g.apple.Position() {
		g.snake.Grow()
		g.apple.RandomizePosition(g.rng, g.forbiddenCells())
		g.best = max(g.best, g.score())
		events = append(events, core.EventAte)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// forbiddenCells lists where a new apple must not appear: the body plus the
// cell the tail vacated this tick.
func (g *Game) forbiddenCells() []Cell {
	cells := g.snake.Positions()
	if last, ok := g.snake.LastRemoved(); ok {
		cells = append(cells, last)
	}
	return cells
}

// score counts apples eaten since the last reset.
func (g *Game) score() int {
	return g.snake.TargetLength() - 1
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.snake == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:  g.score(),
		Best:   g.best,
		Length: g.snake.Len(),
		Paused: g.paused,
	}
}

// Board returns the playing field.
func (g *Game) Board() Board {
	return g.board
}

// Snake returns the snake.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Apple returns the apple.
func (g *Game) Apple() *Apple {
	return g.apple
}
