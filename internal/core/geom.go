// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is a block of screen cells. World-space shapes are projected to
// Rects by a Viewport; collision happens in world space, never on cells.
type Rect struct {
	X, Y int // Top-left cell
	W, H int // Width and height in cells
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the column just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the row just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
