package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Render clears the board, then draws the apple and every snake cell.
func (g *Game) Render(dst core.Surface) {
	p := g.cfg.Palette
	dst.Clear(p.Background)
	if g.snake == nil {
		return
	}
	g.apple.Render(dst, p)
	g.snake.Render(dst, p)
}

// Render draws the apple cell.
func (a *Apple) Render(dst core.Surface, p core.Palette) {
	drawCell(dst, a.board, a.position, p.Apple, p.Border)
}

// Render draws every occupied cell, head included.
func (s *Snake) Render(dst core.Surface, p core.Palette) {
	for _, c := range s.positions {
		drawCell(dst, s.board, c, p.Snake, p.Border)
	}
}

// drawCell paints one bordered cell.
func drawCell(dst core.Surface, b Board, c Cell, fill, border core.Color) {
	dst.DrawSquare(c.X, c.Y, b.CellSize(), fill, border)
}
