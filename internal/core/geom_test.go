package core

import "testing"

func TestBoundsContains(t *testing.T) {
	b := NewBounds(10, 10, 30, 25)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right corner (inclusive)", 30, 25, true},
		{"outside left", 9, 15, false},
		{"outside right", 31, 15, false},
		{"outside top", 15, 9, false},
		{"outside bottom", 15, 26, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := b.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestBoundsAt(t *testing.T) {
	b := BoundsAt(Point{X: -2, Y: 3}, Size{W: 4, H: 2})
	expected := NewBounds(-2, 3, 1, 4)
	if b != expected {
		t.Errorf("BoundsAt() = %+v, expected %+v", b, expected)
	}
	if b.Width() != 4 || b.Height() != 2 {
		t.Errorf("Width/Height = %d/%d, expected 4/2", b.Width(), b.Height())
	}
}

func TestBoundsIntersect(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Bounds
		expected Bounds
		empty    bool
	}{
		{
			name:     "partial overlap",
			a:        NewBounds(0, 0, 9, 9),
			b:        NewBounds(5, -3, 20, 4),
			expected: NewBounds(5, 0, 9, 4),
		},
		{
			name:     "contained",
			a:        NewBounds(0, 0, 39, 39),
			b:        NewBounds(10, 10, 30, 30),
			expected: NewBounds(10, 10, 30, 30),
		},
		{
			name:  "disjoint",
			a:     NewBounds(0, 0, 4, 4),
			b:     NewBounds(6, 6, 8, 8),
			empty: true,
		},
		{
			name:     "single square",
			a:        NewBounds(0, 0, 4, 4),
			b:        NewBounds(4, 4, 8, 8),
			expected: NewBounds(4, 4, 4, 4),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.a.Intersect(tc.b)
			if tc.empty {
				if !got.Empty() {
					t.Errorf("Intersect() = %+v, expected empty", got)
				}
				return
			}
			if got != tc.expected {
				t.Errorf("Intersect() = %+v, expected %+v", got, tc.expected)
			}
			// Also test symmetry
			if rev := tc.b.Intersect(tc.a); rev != got {
				t.Errorf("Intersect() (reversed) = %+v, expected %+v", rev, got)
			}
		})
	}
}

func TestBoundsEmpty(t *testing.T) {
	if NewBounds(0, 0, 0, 0).Empty() {
		t.Error("single square bounds should not be empty")
	}
	b := NewBounds(5, 5, 4, 9)
	if !b.Empty() {
		t.Error("X1 < X0 should be empty")
	}
	if b.Width() != 0 {
		t.Errorf("Width() of empty bounds = %d, expected 0", b.Width())
	}
	if got := NewBounds(9, 9, 30, 30).Inset(1); got != NewBounds(10, 10, 29, 29) {
		t.Errorf("Inset(1) = %+v", got)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		v, lo, hi, expected int
	}{
		{5, -4, 19, 5},   // within range
		{-5, -4, 19, 19}, // below lo jumps to hi
		{20, -4, 19, -4}, // above hi jumps to lo
		{-4, -4, 19, -4}, // at lo
		{19, -4, 19, 19}, // at hi
	}

	for _, tc := range tests {
		result := Wrap(tc.v, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Wrap(%d, %d, %d) = %d, expected %d", tc.v, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs should return the absolute value")
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 10, Y: 10}.Add(Point{X: -4, Y: 3})
	if p != (Point{X: 6, Y: 13}) {
		t.Errorf("Add() = %+v", p)
	}
}
