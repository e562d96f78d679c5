// Package component provides the reusable behaviors demos build actors from:
// movement, player input, sprites, collision circles and AI state machines.
package component

import (
	"math"

	"github.com/vovakirdan/actor-arcade/internal/actor"
	"github.com/vovakirdan/actor-arcade/internal/core"
)

// MoveUpdateOrder runs movement before sprites and game logic see the position.
const MoveUpdateOrder = 10

// Bounds is a world-space rectangle used for screen wrapping.
type Bounds struct {
	W, H float64
}

// Move integrates an actor's rotation and position every frame.
type Move struct {
	actor.Base

	// ForwardSpeed is in world units per second along the actor's forward vector.
	ForwardSpeed float64
	// AngularSpeed is in radians per second, counter-clockwise.
	AngularSpeed float64
	// Velocity is added on top of forward motion, in world units per second.
	Velocity core.Vec2
	// Wrap, when set, wraps the position around the given bounds.
	Wrap *Bounds
}

// NewMove attaches a movement component with the default movement order.
func NewMove(owner *actor.Actor) *Move {
	return actor.Attach(&Move{Base: actor.NewBase(owner, MoveUpdateOrder)})
}

// Update applies one frame of rotation and translation.
func (m *Move) Update(dt float64) {
	a := m.Owner()

	if !core.NearZero(m.AngularSpeed) {
		a.SetRotation(math.Mod(a.Rotation()+m.AngularSpeed*dt, 2*math.Pi))
	}

	pos := a.Position()
	moved := false
	if !core.NearZero(m.ForwardSpeed) {
		pos = pos.Add(a.Forward().Scale(m.ForwardSpeed * dt))
		moved = true
	}
	if !core.NearZero(m.Velocity.LengthSq()) {
		pos = pos.Add(m.Velocity.Scale(dt))
		moved = true
	}
	if m.Wrap != nil {
		wrapped := core.V(core.Wrap(pos.X, m.Wrap.W), core.Wrap(pos.Y, m.Wrap.H))
		moved = moved || wrapped != pos
		pos = wrapped
	}
	if moved {
		a.SetPosition(pos)
	}
}
