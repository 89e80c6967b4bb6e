// Package core provides fundamental types and utilities for the Blokus client.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Point is an integer position on a grid of squares.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Size is the width and height of a bounding box, in squares.
type Size struct {
	W, H int
}

// Bounds is an axis-aligned rectangle with inclusive corners (X0,Y0)-(X1,Y1).
// A Bounds with X1 < X0 or Y1 < Y0 is empty.
type Bounds struct {
	X0, Y0 int
	X1, Y1 int
}

// NewBounds creates bounds from two inclusive corners.
func NewBounds(x0, y0, x1, y1 int) Bounds {
	return Bounds{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// BoundsAt returns the bounds covering a box of the given size whose
// top-left square is at p.
func BoundsAt(p Point, s Size) Bounds {
	return Bounds{X0: p.X, Y0: p.Y, X1: p.X + s.W - 1, Y1: p.Y + s.H - 1}
}

// Width returns the number of columns covered (0 when empty).
func (b Bounds) Width() int {
	return Max(0, b.X1-b.X0+1)
}

// Height returns the number of rows covered (0 when empty).
func (b Bounds) Height() int {
	return Max(0, b.Y1-b.Y0+1)
}

// Empty reports whether the bounds cover no squares.
func (b Bounds) Empty() bool {
	return b.X1 < b.X0 || b.Y1 < b.Y0
}

// Contains returns true if the point (x, y) is inside the bounds.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.X0 && x <= b.X1 && y >= b.Y0 && y <= b.Y1
}

// Intersect returns the overlap of two bounds. The result may be empty.
func (b Bounds) Intersect(o Bounds) Bounds {
	return Bounds{
		X0: Max(b.X0, o.X0),
		Y0: Max(b.Y0, o.Y0),
		X1: Min(b.X1, o.X1),
		Y1: Min(b.Y1, o.Y1),
	}
}

// Inset shrinks the bounds by n squares on every side (grows when n < 0).
func (b Bounds) Inset(n int) Bounds {
	return Bounds{X0: b.X0 + n, Y0: b.Y0 + n, X1: b.X1 - n, Y1: b.Y1 - n}
}

// Wrap keeps v inside [lo, hi] by jumping to the opposite bound when it
// leaves the range. A value below lo becomes hi and a value above hi
// becomes lo, which gives toroidal scrolling one step at a time.
func Wrap(v, lo, hi int) int {
	if v < lo {
		return hi
	}
	if v > hi {
		return lo
	}
	return v
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
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
