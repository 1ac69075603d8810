package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// styleKey identifies one foreground/background pair.
type styleKey struct {
	fg, bg core.Color
}

// screenRenderer turns a Screen into styled text for one output. Styles
// come from its lipgloss renderer, so colours follow that output's profile
// (an SSH client's terminal, not the server's stdout).
type screenRenderer struct {
	renderer *lipgloss.Renderer
	styles   map[styleKey]lipgloss.Style
}

func newScreenRenderer(r *lipgloss.Renderer) *screenRenderer {
	return &screenRenderer{
		renderer: r,
		styles:   make(map[styleKey]lipgloss.Style),
	}
}

func (sr *screenRenderer) style(fg, bg core.Color) lipgloss.Style {
	k := styleKey{fg: fg, bg: bg}
	if st, ok := sr.styles[k]; ok {
		return st
	}
	st := sr.renderer.NewStyle()
	if !fg.IsDefault() {
		st = st.Foreground(lipgloss.Color(fg.Hex()))
	}
	if !bg.IsDefault() {
		st = st.Background(lipgloss.Color(bg.Hex()))
	}
	sr.styles[k] = st
	return st
}

// render groups adjacent glyphs with the same colours into one styled run
// to keep escape sequences short.
func (sr *screenRenderer) render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.At(x, y)
			run.Reset()
			for x < s.Width() {
				g := s.At(x, y)
				if g.Fg != start.Fg || g.Bg != start.Bg {
					break
				}
				run.WriteRune(g.Rune)
				x++
			}
			sb.WriteString(sr.style(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
