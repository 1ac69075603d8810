package tui

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// halfBlock draws the upper half of a character cell in the foreground
// colour and the lower half in the background colour.
const halfBlock = '▀'

// boardSurface draws the pixel board into a character screen. Each board
// column takes one character and every two board rows share one character,
// which keeps cells roughly square in a typical terminal font.
//
// A character has no room for a border, so border colours are dropped.
type boardSurface struct {
	screen   *core.Screen
	cellSize int
	cols     int
	rows     int
	origin   core.Point // top-left character of the board
}

func newBoardSurface(screen *core.Screen, cfg core.RuntimeConfig, origin core.Point) *boardSurface {
	return &boardSurface{
		screen:   screen,
		cellSize: cfg.CellSize,
		cols:     cfg.BoardW / cfg.CellSize,
		rows:     cfg.BoardH / cfg.CellSize,
		origin:   origin,
	}
}

// boardSize returns how many characters the board takes.
func boardSize(cfg core.RuntimeConfig) (w, h int) {
	if cfg.CellSize <= 0 {
		return 0, 0
	}
	rows := cfg.BoardH / cfg.CellSize
	return cfg.BoardW / cfg.CellSize, (rows + 1) / 2
}

// Clear paints the board area with bg.
func (s *boardSurface) Clear(bg core.Color) {
	for y := 0; y < (s.rows+1)/2; y++ {
		for x := 0; x < s.cols; x++ {
			lower := bg
			if 2*y+1 >= s.rows {
				lower = core.ColorDefault // odd row count: nothing below the last row
			}
			s.screen.Set(s.origin.X+x, s.origin.Y+y, core.Glyph{Rune: halfBlock, Fg: bg, Bg: lower})
		}
	}
}

// DrawSquare fills every board cell the square covers.
func (s *boardSurface) DrawSquare(x, y, size int, fill, _ core.Color) {
	span := max(1, size/s.cellSize)
	col, row := x/s.cellSize, y/s.cellSize
	for r := row; r < row+span; r++ {
		for c := col; c < col+span; c++ {
			s.setCell(c, r, fill)
		}
	}
}

func (s *boardSurface) setCell(col, row int, fill core.Color) {
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return
	}
	sx, sy := s.origin.X+col, s.origin.Y+row/2
	g := s.screen.At(sx, sy)
	g.Rune = halfBlock
	if row%2 == 0 {
		g.Fg = fill
	} else {
		g.Bg = fill
	}
	s.screen.Set(sx, sy, g)
}
