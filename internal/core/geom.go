// Package core provides fundamental types and utilities for the runner.
// It contains no host dependencies (no Bubble Tea, no window toolkit) so the
// simulation stays pure and testable.
package core

import "math"

// Rect is an integer cell rectangle used by the terminal screen buffer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// RectF is an axis-aligned box in logical canvas pixels.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a new float rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// OverlapsX reports whether the horizontal extents of r and o overlap.
// Touching edges do not count.
func (r RectF) OverlapsX(o RectF) bool {
	return r.X < o.Right() && o.X < r.Right()
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r RectF) Intersects(o RectF) bool {
	if !r.OverlapsX(o) {
		return false
	}
	return r.Y < o.Bottom() && o.Y < r.Bottom()
}

// ContainsY reports whether r's vertical span lies within [top-eps, bottom+eps].
func (r RectF) ContainsY(top, bottom, eps float64) bool {
	return r.Y >= top-eps && r.Bottom() <= bottom+eps
}

// Inset grows (d > 0) or shrinks (d < 0) the rectangle on every side.
func (r RectF) Inset(d float64) RectF {
	return RectF{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// EaseInOut is a smoothstep-style cosine ease over [0, 1].
func EaseInOut(t float64) float64 {
	t = ClampF(t, 0, 1)
	return 0.5 - 0.5*math.Cos(math.Pi*t)
}

// Finite reports whether all values are neither NaN nor infinite.
func Finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
