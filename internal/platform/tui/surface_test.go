package tui

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestBoardSize(t *testing.T) {
	w, h := boardSize(core.DefaultConfig())
	if w != 32 || h != 12 {
		t.Errorf("boardSize() = %dx%d, expected 32x12", w, h)
	}

	cfg := core.DefaultConfig()
	cfg.BoardH = 100 // 5 rows
	if _, h := boardSize(cfg); h != 3 {
		t.Errorf("boardSize() height = %d, expected 3 for an odd row count", h)
	}
}

func TestBoardSurfaceHalfBlocks(t *testing.T) {
	cfg := core.DefaultConfig()
	w, h := boardSize(cfg)
	screen := core.NewScreen(w, h)
	surf := newBoardSurface(screen, cfg, core.Point{})
	p := core.DefaultPalette()

	surf.Clear(p.Background)
	g := screen.At(5, 5)
	if g.Rune != halfBlock || g.Fg != p.Background || g.Bg != p.Background {
		t.Fatalf("Cleared glyph = %+v, expected background half block", g)
	}

	// Row 0 is the upper half, row 1 the lower half of the first line
	surf.DrawSquare(0, 0, 20, p.Snake, p.Border)
	surf.DrawSquare(0, 20, 20, p.Apple, p.Border)
	g = screen.At(0, 0)
	if g.Fg != p.Snake || g.Bg != p.Apple {
		t.Errorf("Glyph (0, 0) = %+v, expected snake over apple", g)
	}

	// Last cell of the 32x24 board lands on the last character
	surf.DrawSquare(620, 460, 20, p.Snake, p.Border)
	g = screen.At(31, 11)
	if g.Bg != p.Snake || g.Fg != p.Background {
		t.Errorf("Glyph (31, 11) = %+v, expected snake in the lower half", g)
	}

	// Off-board squares are ignored
	surf.DrawSquare(640, 0, 20, p.Apple, p.Border)
}
