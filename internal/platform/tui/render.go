package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gravity-runner/internal/core"
)

type cellStyle struct {
	fg, bg color.RGBA
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
// Blank cells without colors use the terminal defaults. A nil renderer uses
// the lipgloss default.
func RenderScreen(s *core.Screen, r *lipgloss.Renderer) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := make(map[cellStyle]lipgloss.Style)
	styleFor := func(k cellStyle) lipgloss.Style {
		if st, ok := styles[k]; ok {
			return st
		}
		st := r.NewStyle()
		if k.fg.A != 0 {
			st = st.Foreground(lipgloss.Color(hexColor(k.fg)))
		}
		if k.bg.A != 0 {
			st = st.Background(lipgloss.Color(hexColor(k.bg)))
		}
		styles[k] = st
		return st
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := cellStyle{fg: cell.FG, bg: cell.BG}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.FG, bg: cell.BG}) != key {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if key == (cellStyle{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(key).Render(run.String()))
		}
	}
	return sb.String()
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// statusLine joins status entries into one line clipped to width.
func statusLine(entries []string, width int) string {
	line := strings.Join(entries, "  |  ")
	r := []rune(line)
	if width > 0 && len(r) > width {
		return string(r[:width])
	}
	return line
}

// keyHints formats bindings as "key desc" pairs.
func keyHints(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
