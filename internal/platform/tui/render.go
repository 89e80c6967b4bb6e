package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blokus/internal/core"
)

// lipglossColor converts a palette color to a lipgloss color.
// ColorDefault maps to the terminal's own color.
func lipglossColor(c core.Color) lipgloss.TerminalColor {
	n := c.ANSI()
	if n < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(n))
}

// styleFor returns the lipgloss style of a cell style.
func styleFor(st core.Style) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipglossColor(st.Fg)).
		Background(lipglossColor(st.Bg))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[core.Style]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same style for efficiency
		x := 0
		for x < s.Width() {
			startStyle := s.GetCell(x, y).Style

			// Collect consecutive cells with same style
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style != startStyle {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[startStyle]
			if !ok {
				style = styleFor(startStyle)
				styles[startStyle] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
