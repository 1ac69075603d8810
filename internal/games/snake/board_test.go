package snake

import (
	"errors"
	"testing"
)

func TestNewBoardDimensions(t *testing.T) {
	b, err := NewBoard(640, 480, 20)
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}

	if b.GridWidth() != 32 || b.GridHeight() != 24 {
		t.Errorf("Grid = %dx%d, expected 32x24", b.GridWidth(), b.GridHeight())
	}
	if b.Center() != (Cell{X: 320, Y: 240}) {
		t.Errorf("Center() = %+v, expected (320, 240)", b.Center())
	}
}

func TestNewBoardTruncatesRemainder(t *testing.T) {
	b, err := NewBoard(650, 495, 20)
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}

	if b.PixelWidth() != 640 || b.PixelHeight() != 480 {
		t.Errorf("Pixel size = %dx%d, expected 640x480", b.PixelWidth(), b.PixelHeight())
	}
}

func TestNewBoardValidation(t *testing.T) {
	tests := []struct {
		name          string
		w, h, cell    int
		expectedError error
	}{
		{"zero cell", 640, 480, 0, ErrInvalidCellSize},
		{"negative cell", 640, 480, -5, ErrInvalidCellSize},
		{"narrower than a cell", 10, 480, 20, ErrInvalidGrid},
		{"shorter than a cell", 640, 19, 20, ErrInvalidGrid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBoard(tc.w, tc.h, tc.cell)
			if !errors.Is(err, tc.expectedError) {
				t.Errorf("NewBoard() error = %v, expected %v", err, tc.expectedError)
			}
		})
	}
}

func TestBoardWrap(t *testing.T) {
	b, _ := NewBoard(640, 480, 20)

	tests := []struct {
		name     string
		in       Cell
		expected Cell
	}{
		{"right edge", Cell{X: 640, Y: 100}, Cell{X: 0, Y: 100}},
		{"left edge", Cell{X: -20, Y: 100}, Cell{X: 620, Y: 100}},
		{"bottom edge", Cell{X: 100, Y: 480}, Cell{X: 100, Y: 0}},
		{"top edge", Cell{X: 100, Y: -20}, Cell{X: 100, Y: 460}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Wrap(tc.in); got != tc.expected {
				t.Errorf("Wrap(%+v) = %+v, expected %+v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestBoardCellConversion(t *testing.T) {
	b, _ := NewBoard(640, 480, 20)

	c := b.CellAt(31, 23)
	if c != (Cell{X: 620, Y: 460}) {
		t.Errorf("CellAt(31, 23) = %+v", c)
	}

	// One cell past the last column and row wraps to the origin
	if got := b.Wrap(b.CellAt(32, 24)); got != (Cell{}) {
		t.Errorf("Wrap(CellAt(32, 24)) = %+v, expected (0, 0)", got)
	}
}
