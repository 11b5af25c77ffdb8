package core

import (
	"math"
	"testing"
)

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRectF(0, 0, 20, 20),
			b:        NewRectF(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "sub-pixel overlap",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFContainsY(t *testing.T) {
	r := NewRectF(0, 40, 32, 32)

	tests := []struct {
		name        string
		top, bottom float64
		expected    bool
	}{
		{"exact fit", 40, 72, true},
		{"roomy", 30, 80, true},
		{"pokes above", 41, 73, false},
		{"within epsilon", 40.4, 72, true},
		{"pokes below", 30, 71, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.ContainsY(tc.top, tc.bottom, 0.5); got != tc.expected {
				t.Errorf("ContainsY(%v, %v) = %v, expected %v", tc.top, tc.bottom, got, tc.expected)
			}
		})
	}
}

func TestRectFEdges(t *testing.T) {
	r := NewRectF(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}

	grown := r.Inset(2)
	if grown.X != 3 || grown.W != 24 || grown.Y != 8 || grown.H != 19 {
		t.Errorf("Inset(2) = %+v", grown)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestEaseInOut(t *testing.T) {
	if EaseInOut(0) != 0 {
		t.Errorf("EaseInOut(0) = %f, expected 0", EaseInOut(0))
	}
	if math.Abs(EaseInOut(1)-1) > 1e-12 {
		t.Errorf("EaseInOut(1) = %f, expected 1", EaseInOut(1))
	}
	if math.Abs(EaseInOut(0.5)-0.5) > 1e-12 {
		t.Errorf("EaseInOut(0.5) = %f, expected 0.5", EaseInOut(0.5))
	}

	prev := 0.0
	for i := 1; i <= 20; i++ {
		v := EaseInOut(float64(i) / 20)
		if v < prev {
			t.Fatalf("EaseInOut should be monotonic, dropped at step %d", i)
		}
		prev = v
	}
}

func TestFinite(t *testing.T) {
	if !Finite(1, 2, 3) {
		t.Error("Finite(1, 2, 3) should be true")
	}
	if Finite(1, math.NaN()) {
		t.Error("Finite with NaN should be false")
	}
	if Finite(math.Inf(1)) {
		t.Error("Finite with +Inf should be false")
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
}
