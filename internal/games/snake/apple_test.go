package snake

import (
	"math/rand"
	"slices"
	"testing"
)

func TestRandomizePositionAvoidsForbidden(t *testing.T) {
	b, _ := NewBoard(640, 480, 20)
	rng := rand.New(rand.NewSource(7))

	// Forbid the left half of the board
	var forbidden []Cell
	for col := range b.GridWidth() / 2 {
		for row := range b.GridHeight() {
			forbidden = append(forbidden, b.CellAt(col, row))
		}
	}

	a := NewApple(b, rng, forbidden)
	for i := range 1000 {
		a.RandomizePosition(rng, forbidden)
		p := a.Position()

		if slices.Contains(forbidden, p) {
			t.Fatalf("draw %d: apple placed on forbidden cell %+v", i, p)
		}
		if b.Wrap(p) != p || p.X%b.CellSize() != 0 || p.Y%b.CellSize() != 0 {
			t.Fatalf("draw %d: apple placed off the board at %+v", i, p)
		}
	}
}

func TestRandomizePositionSingleFreeCell(t *testing.T) {
	b, _ := NewBoard(60, 40, 20) // 3x2 grid
	rng := rand.New(rand.NewSource(1))

	free := b.CellAt(2, 1)
	var forbidden []Cell
	for col := range b.GridWidth() {
		for row := range b.GridHeight() {
			if c := b.CellAt(col, row); c != free {
				forbidden = append(forbidden, c)
			}
		}
	}

	a := NewApple(b, rng, forbidden)
	if a.Position() != free {
		t.Errorf("Position() = %+v, expected the only free cell %+v", a.Position(), free)
	}
}

func TestRandomizePositionCoversBoard(t *testing.T) {
	b, _ := NewBoard(60, 40, 20)
	rng := rand.New(rand.NewSource(3))
	a := NewApple(b, rng, nil)

	seen := make(map[Cell]bool)
	for range 500 {
		a.RandomizePosition(rng, nil)
		seen[a.Position()] = true
	}

	if want := b.GridWidth() * b.GridHeight(); len(seen) != want {
		t.Errorf("Saw %d distinct cells, expected all %d", len(seen), want)
	}
}
