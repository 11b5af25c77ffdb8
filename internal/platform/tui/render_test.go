package tui

import (
	"image/color"
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gravity-runner/internal/core"
)

// plainRenderer writes to nowhere, so it detects no color support.
func plainRenderer() *lipgloss.Renderer {
	return lipgloss.NewRenderer(io.Discard)
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", color.RGBA{R: 0xff, A: 0xff}, color.RGBA{A: 0xff})
	s.DrawText(3, 1, "cd", color.RGBA{G: 0xff, A: 0xff}, color.RGBA{})

	if got, want := RenderScreen(s, plainRenderer()), s.String(); got != want {
		t.Errorf("RenderScreen() = %q, expected %q", got, want)
	}
}

func TestHexColor(t *testing.T) {
	if got := hexColor(color.RGBA{R: 0x12, G: 0xab, B: 0x03, A: 0xff}); got != "#12ab03" {
		t.Errorf("hexColor() = %q, expected #12ab03", got)
	}
}

func TestStatusLine(t *testing.T) {
	tests := []struct {
		entries []string
		width   int
		want    string
	}{
		{[]string{"Score: 3", "Vel: 220 km/s"}, 80, "Score: 3  |  Vel: 220 km/s"},
		{[]string{"Score: 3", "Vel: 220 km/s"}, 8, "Score: 3"},
		{[]string{"only"}, 0, "only"},
		{nil, 10, ""},
	}

	for _, tt := range tests {
		if got := statusLine(tt.entries, tt.width); got != tt.want {
			t.Errorf("statusLine(%v, %d) = %q, expected %q", tt.entries, tt.width, got, tt.want)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("hi", 6); got != "  hi" {
		t.Errorf("centerText() = %q, expected %q", got, "  hi")
	}
	if got := centerText("too wide", 4); got != "too wide" {
		t.Errorf("centerText() should leave wide text alone, got %q", got)
	}
}
