package core

// Glyph is one character of a Screen together with its colours.
type Glyph struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// blankGlyph fills fresh and cleared screens.
var blankGlyph = Glyph{Rune: ' '}

// Screen is a fixed-size grid of glyphs, stored row by row. The terminal
// frontend draws the board into it and the renderer turns it into text.
type Screen struct {
	width  int
	height int
	glyphs []Glyph
}

// NewScreen creates a blank screen of the given size in characters.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		glyphs: make([]Glyph, width*height),
	}
	s.Clear()
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Clear blanks every glyph.
func (s *Screen) Clear() {
	for i := range s.glyphs {
		s.glyphs[i] = blankGlyph
	}
}

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set stores g at (x, y). Positions off the screen are ignored.
func (s *Screen) Set(x, y int, g Glyph) {
	if s.inside(x, y) {
		s.glyphs[y*s.width+x] = g
	}
}

// At returns the glyph at (x, y), or a blank glyph off the screen.
func (s *Screen) At(x, y int) Glyph {
	if !s.inside(x, y) {
		return blankGlyph
	}
	return s.glyphs[y*s.width+x]
}

// DrawTextCentered writes text on row y, centred horizontally and clipped
// to the screen.
func (s *Screen) DrawTextCentered(y int, text string, fg, bg Color) {
	runes := []rune(text)
	x := (s.width - len(runes)) / 2
	for i, r := range runes {
		s.Set(x+i, y, Glyph{Rune: r, Fg: fg, Bg: bg})
	}
}
