package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// imageSurface draws onto an ebiten image in board pixels.
type imageSurface struct {
	img *ebiten.Image
}

func (s imageSurface) Clear(bg core.Color) {
	s.img.Fill(bg)
}

func (s imageSurface) DrawSquare(x, y, size int, fill, border core.Color) {
	fx, fy, fs := float32(x), float32(y), float32(size)
	vector.DrawFilledRect(s.img, fx, fy, fs, fs, fill, false)
	if border.IsDefault() {
		return
	}
	// Stroke is centred on the path; inset by half a pixel to stay inside the cell
	vector.StrokeRect(s.img, fx+0.5, fy+0.5, fs-1, fs-1, 1, border, false)
}
