package snake

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Cell is one grid position, addressed by the pixel coordinates of its
// top-left corner (column*cellSize, row*cellSize).
type Cell = core.Point

var (
	// ErrInvalidCellSize is returned when the cell edge is not positive.
	ErrInvalidCellSize = errors.New("snake: cell size must be positive")

	// ErrInvalidGrid is returned when the board holds no complete cell.
	ErrInvalidGrid = errors.New("snake: grid must be at least one cell in each direction")
)

// Board is the toroidal playing field. Moving past one edge re-enters from
// the opposite edge.
type Board struct {
	cellSize int
	gridW    int
	gridH    int
}

// NewBoard creates a board from pixel dimensions. Any remainder that does
// not fill a whole cell is dropped.
func NewBoard(width, height, cellSize int) (Board, error) {
	if cellSize <= 0 {
		return Board{}, fmt.Errorf("%w: got %d", ErrInvalidCellSize, cellSize)
	}
	gridW, gridH := width/cellSize, height/cellSize
	if gridW <= 0 || gridH <= 0 {
		return Board{}, fmt.Errorf("%w: %dx%d px with %d px cells", ErrInvalidGrid, width, height, cellSize)
	}
	return Board{cellSize: cellSize, gridW: gridW, gridH: gridH}, nil
}

// CellSize returns the edge of one cell in pixels.
func (b Board) CellSize() int { return b.cellSize }

// GridWidth returns the number of columns.
func (b Board) GridWidth() int { return b.gridW }

// GridHeight returns the number of rows.
func (b Board) GridHeight() int { return b.gridH }

// PixelWidth returns the width covered by whole cells.
func (b Board) PixelWidth() int { return b.gridW * b.cellSize }

// PixelHeight returns the height covered by whole cells.
func (b Board) PixelHeight() int { return b.gridH * b.cellSize }

// CellAt converts grid coordinates to a cell.
func (b Board) CellAt(col, row int) Cell {
	return Cell{X: col * b.cellSize, Y: row * b.cellSize}
}

// Center returns the cell the snake starts from; (320, 240) on a 640×480 board.
func (b Board) Center() Cell {
	return b.CellAt(b.gridW/2, b.gridH/2)
}

// Wrap folds a cell that left the board back onto it.
func (b Board) Wrap(c Cell) Cell {
	return c.Wrap(b.PixelWidth(), b.PixelHeight())
}
