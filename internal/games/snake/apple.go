package snake

import (
	"math/rand"
	"slices"
)

// Apple is the single piece of food on the board.
type Apple struct {
	board    Board
	position Cell
}

// NewApple creates an apple at a random cell outside forbidden.
func NewApple(board Board, rng *rand.Rand, forbidden []Cell) *Apple {
	a := &Apple{board: board}
	a.RandomizePosition(rng, forbidden)
	return a
}

// Position returns the apple's cell.
func (a *Apple) Position() Cell {
	return a.position
}

// RandomizePosition draws column and row uniformly and independently,
// redrawing until the cell is not in forbidden. It never returns if
// forbidden covers the whole board.
func (a *Apple) RandomizePosition(rng *rand.Rand, forbidden []Cell) {
	for {
		c := a.board.CellAt(rng.Intn(a.board.GridWidth()), rng.Intn(a.board.GridHeight()))
		if !slices.Contains(forbidden, c) {
			a.position = c
			return
		}
	}
}
