package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/consolekit/internal/core"
)

// attrStyles caches one lipgloss style per attribute byte.
var attrStyles = func() [256]lipgloss.Style {
	var styles [256]lipgloss.Style
	for i := range styles {
		a := core.Attr(i)
		styles[i] = lipgloss.NewStyle().
			Foreground(lipgloss.Color(strconv.Itoa(a.Fg().ANSI()))).
			Background(lipgloss.Color(strconv.Itoa(a.Bg().ANSI())))
	}
	return styles
}()

// RenderSurface converts a surface to a styled string for display.
// Groups adjacent cells with the same attribute to minimize ANSI escape sequences.
func RenderSurface(s *core.Surface) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.Get(x, y).Attr

			var run strings.Builder
			for x < s.Width() {
				cell := s.Get(x, y)
				if cell.Attr != start {
					break
				}
				x++
				if cell.Flags.Has(core.FlagContinuation) {
					continue
				}
				if cell.Glyph == 0 {
					run.WriteRune(' ')
					continue
				}
				run.WriteRune(cell.Glyph)
			}

			sb.WriteString(attrStyles[start].Render(run.String()))
		}
	}
	return sb.String()
}
