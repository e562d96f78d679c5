package component

import (
	"github.com/vovakirdan/actor-arcade/internal/actor"
	"github.com/vovakirdan/actor-arcade/internal/core"
)

// Circle is a collision shape centered on its owner.
type Circle struct {
	actor.Base

	radius float64
}

// NewCircle attaches a collision circle with the given unscaled radius.
func NewCircle(owner *actor.Actor, radius float64) *Circle {
	return actor.Attach(&Circle{Base: actor.NewBase(owner, actor.DefaultUpdateOrder), radius: radius})
}

// Radius returns the radius scaled by the owner's scale.
func (c *Circle) Radius() float64 {
	return c.radius * c.Owner().Scale()
}

// SetRadius changes the unscaled radius.
func (c *Circle) SetRadius(r float64) {
	c.radius = r
}

// Center returns the owner's position.
func (c *Circle) Center() core.Vec2 {
	return c.Owner().Position()
}

// Intersect reports whether two circles overlap. Touching counts.
func Intersect(a, b *Circle) bool {
	distSq := a.Center().Sub(b.Center()).LengthSq()
	radii := a.Radius() + b.Radius()
	return distSq <= radii*radii
}
