// Package core provides fundamental types and utilities shared by the
// simulation and the platform layer. It has no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

// Rect is an integer screen-space rectangle with a top-left origin.
// It is used for drawing into a Screen.
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

// Box is a world-space hitbox anchored at its base: X is the left edge,
// Y is the bottom (feet) coordinate, and the box extends upward by H.
// World y grows downward, so the top edge is Y-H.
type Box struct {
	X, Y float64
	W, H float64
}

// NewBox creates a base-anchored box.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 {
	return b.Y - b.H
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Overlaps reports whether two base-anchored boxes intersect.
// Touching edges do not count as an overlap.
func (b Box) Overlaps(o Box) bool {
	return b.X < o.X+o.W &&
		b.X+b.W > o.X &&
		b.Y-b.H < o.Y &&
		b.Y > o.Y-o.H
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
