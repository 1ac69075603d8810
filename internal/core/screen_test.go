package core

import "testing"

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("Size = %dx%d, expected 4x3", s.Width(), s.Height())
	}
	for y := range 3 {
		for x := range 4 {
			if g := s.At(x, y); g != blankGlyph {
				t.Errorf("At(%d, %d) = %+v, expected blank", x, y, g)
			}
		}
	}
}

func TestScreenSetAndAt(t *testing.T) {
	red, blue := RGB(255, 0, 0), RGB(0, 0, 255)
	s := NewScreen(4, 3)

	g := Glyph{Rune: '▀', Fg: red, Bg: blue}
	s.Set(3, 2, g)
	if got := s.At(3, 2); got != g {
		t.Errorf("At(3, 2) = %+v, expected %+v", got, g)
	}
	// Neighbours in the flat buffer stay untouched
	if s.At(0, 2) != blankGlyph || s.At(3, 1) != blankGlyph {
		t.Error("Set should only change one glyph")
	}

	tests := []struct {
		name string
		x, y int
	}{
		{"left", -1, 0},
		{"right", 4, 0},
		{"above", 0, -1},
		{"below", 0, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s.Set(tc.x, tc.y, g) // must not panic or wrap onto another row
			if got := s.At(tc.x, tc.y); got != blankGlyph {
				t.Errorf("At(%d, %d) = %+v, expected blank off screen", tc.x, tc.y, got)
			}
		})
	}
	if s.At(0, 1) != blankGlyph {
		t.Error("Off-screen Set leaked into the buffer")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(1, 1, Glyph{Rune: 'x', Fg: RGB(1, 2, 3)})
	s.Clear()
	if s.At(1, 1) != blankGlyph {
		t.Errorf("At(1, 1) = %+v after Clear", s.At(1, 1))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	fg, bg := RGB(255, 255, 255), RGB(0, 0, 0)

	tests := []struct {
		name  string
		width int
		text  string
		want  string
	}{
		{"even fit", 10, "PAUSED", "  PAUSED  "},
		{"odd slack", 9, "PAUSED", " PAUSED  "},
		{"clipped", 4, "PAUSED", "AUSE"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(tc.width, 3)
			s.DrawTextCentered(1, tc.text, fg, bg)

			row := make([]rune, tc.width)
			for x := range tc.width {
				row[x] = s.At(x, 1).Rune
			}
			if string(row) != tc.want {
				t.Errorf("Row = %q, expected %q", string(row), tc.want)
			}
		})
	}

	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "ab", fg, bg)
	if g := s.At(4, 0); g.Fg != fg || g.Bg != bg {
		t.Errorf("Text glyph = %+v, expected the given colours", g)
	}
	if g := s.At(0, 0); g != blankGlyph {
		t.Errorf("Glyph outside the text = %+v, expected blank", g)
	}
}
