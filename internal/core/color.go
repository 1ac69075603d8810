package core

import (
	"fmt"
	"image/color"
)

// Color is an RGBA colour used by every frontend. Zero alpha means "use the
// frontend's default colour"; colours built with RGB are always opaque.
type Color struct {
	R, G, B, A uint8
}

// ColorDefault leaves the frontend's own foreground/background untouched.
var ColorDefault = Color{}

// RGB creates an opaque colour.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// IsDefault reports whether c is the unset default colour.
func (c Color) IsDefault() bool {
	return c.A == 0
}

// Hex formats the colour as #rrggbb, the form lipgloss accepts.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA implements image/color.Color so a Color can be handed to ebiten directly.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Palette holds the colours the game draws with.
type Palette struct {
	Background Color
	Border     Color
	Apple      Color
	Snake      Color
}

// DefaultPalette returns the classic black board with a red apple and a green snake.
func DefaultPalette() Palette {
	return Palette{
		Background: RGB(0, 0, 0),
		Border:     RGB(93, 216, 228),
		Apple:      RGB(255, 0, 0),
		Snake:      RGB(0, 255, 0),
	}
}
