package core

import "math"

// Vec2 is a 2D vector in world units (screen cells for the terminal demos).
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// LengthSq returns the squared length, avoiding the square root.
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the Euclidean length.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

// Normalized returns the unit vector in v's direction, or the zero vector.
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if NearZero(l) {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Cell rounds the vector down to integer screen coordinates.
func (v Vec2) Cell() (int, int) {
	return int(math.Floor(v.X)), int(math.Floor(v.Y))
}

// NearZero reports whether f is within 0.001 of zero.
func NearZero(f float64) bool {
	return math.Abs(f) <= 0.001
}

// Wrap maps v into [0, max) by wrapping around, used for toroidal playfields.
func Wrap(v, max float64) float64 {
	if max <= 0 {
		return v
	}
	v = math.Mod(v, max)
	if v < 0 {
		v += max
	}
	return v
}
