package core

import (
	"image/color"
	"strings"
)

// HalfBlock is the glyph used to pack two vertical pixels into one cell:
// the foreground paints the upper half, the background the lower half.
const HalfBlock = '▀'

// Cell is a single terminal character with its colors.
type Cell struct {
	Rune rune
	FG   color.RGBA
	BG   color.RGBA
}

// Screen is a 2D cell buffer for terminal hosts.
// It decouples rendering from the terminal: the canvas is blitted into cells and
// overlays are drawn as text, while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set places a rune at the given position, keeping the cell's colors.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x].Rune = r
}

// SetCell replaces the whole cell at the given position.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ' '
	}
	return s.cells[y][x].Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y) using the given
// colors. Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, fg, bg color.RGBA) {
	i := 0
	for _, r := range text {
		s.SetCell(x+i, y, Cell{Rune: r, FG: fg, BG: bg})
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string, fg, bg color.RGBA) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text, fg, bg)
}

// DrawRect fills a rectangular area with the given cell.
func (s *Screen) DrawRect(r Rect, fill Cell) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetCell(x, y, fill)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	// Corners
	s.Set(r.X, r.Y, '┌')
	s.Set(r.Right()-1, r.Y, '┐')
	s.Set(r.X, r.Bottom()-1, '└')
	s.Set(r.Right()-1, r.Bottom()-1, '┘')

	// Horizontal edges
	for x := r.X + 1; x < r.Right()-1; x++ {
		s.Set(x, r.Y, '─')
		s.Set(x, r.Bottom()-1, '─')
	}

	// Vertical edges
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.Set(r.X, y, '│')
		s.Set(r.Right()-1, y, '│')
	}
}

// Blit downsamples the canvas into the given area using half-block cells.
// Each cell holds two vertically stacked samples, so the canvas is fitted into
// area.W x (area.H*2) virtual pixels, letterboxed to keep its aspect ratio.
func (s *Screen) Blit(c *Canvas, area Rect) {
	if area.W <= 0 || area.H <= 0 {
		return
	}

	cw, ch := float64(c.Width()), float64(c.Height())
	vw, vh := float64(area.W), float64(area.H*2)
	scale := vw / cw
	if vh/ch < scale {
		scale = vh / ch
	}
	outW, outH := cw*scale, ch*scale
	offX, offY := (vw-outW)/2, (vh-outH)/2

	sample := func(vx, vy int) (color.RGBA, bool) {
		fx := (float64(vx) + 0.5 - offX) / scale
		fy := (float64(vy) + 0.5 - offY) / scale
		if fx < 0 || fy < 0 || fx >= cw || fy >= ch {
			return color.RGBA{A: 0xff}, false
		}
		return c.At(int(fx), int(fy)), true
	}

	for y := 0; y < area.H; y++ {
		for x := 0; x < area.W; x++ {
			top, okTop := sample(x, y*2)
			bottom, okBottom := sample(x, y*2+1)
			cell := Cell{Rune: HalfBlock, FG: top, BG: bottom}
			if !okTop && !okBottom {
				cell = Cell{Rune: ' '}
			}
			s.SetCell(area.X+x, area.Y+y, cell)
		}
	}
}

// String converts the screen buffer to plain text (no colors).
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}
