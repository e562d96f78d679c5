// Package actor implements the actor/component game-object model: a World owns
// actors, each actor owns an update-ordered list of components, and actors
// created or killed during a frame are applied at the frame boundary.
//
// Everything in this package runs on the simulation goroutine; nothing is locked.
package actor

import (
	"math"

	"github.com/vovakirdan/actor-arcade/internal/core"
)

// ID identifies an actor within its world. IDs are never recycled.
type ID uint64

// Behavior is the actor-specific per-frame hook. It runs once per Update,
// after every component has updated, so it observes post-movement state.
type Behavior interface {
	UpdateActor(dt float64)
}

// InputHandler is an optional Behavior extension that runs after the
// actor's components have processed input.
type InputHandler interface {
	ActorInput(in core.InputFrame)
}

// DestroyHook is an optional Behavior extension run once when the actor is
// destroyed, before its components.
type DestroyHook interface {
	DestroyActor()
}

// Actor is a game object with a transform, a lifecycle state and the
// components it owns.
type Actor struct {
	id       ID
	world    *World
	behavior Behavior
	state    State
	slot     slot

	position core.Vec2
	rotation float64 // radians, counter-clockwise on screen
	scale    float64

	transform Transform
	dirty     bool

	components []Component
	scratch    []Component
	destroyed  bool
}

// New creates an actor and registers it with the world. If the world is in
// the middle of a pass the actor waits in the pending list until the frame ends.
// behavior may be nil for actors that are pure component bags.
func New(w *World, behavior Behavior) *Actor {
	a := &Actor{
		world:    w,
		behavior: behavior,
		state:    Active,
		scale:    1.0,
		dirty:    true,
	}
	w.AddActor(a)
	return a
}

// ID returns the actor's world-unique identifier.
func (a *Actor) ID() ID {
	return a.id
}

// World returns the world that owns this actor.
func (a *Actor) World() *World {
	return a.world
}

// State returns the lifecycle state.
func (a *Actor) State() State {
	return a.state
}

// SetState changes the lifecycle state. Dead is one-way: once set, later
// calls are ignored.
func (a *Actor) SetState(s State) {
	if a.state == Dead {
		return
	}
	a.state = s
}

// Position returns the actor's world position.
func (a *Actor) Position() core.Vec2 {
	return a.position
}

// SetPosition moves the actor.
func (a *Actor) SetPosition(p core.Vec2) {
	a.position = p
	a.dirty = true
}

// Rotation returns the rotation in radians.
func (a *Actor) Rotation() float64 {
	return a.rotation
}

// SetRotation sets the rotation in radians.
func (a *Actor) SetRotation(r float64) {
	a.rotation = r
	a.dirty = true
}

// Scale returns the uniform scale.
func (a *Actor) Scale() float64 {
	return a.scale
}

// SetScale sets the uniform scale.
func (a *Actor) SetScale(s float64) {
	a.scale = s
	a.dirty = true
}

// Forward returns the unit vector the actor faces. Screen y grows downward,
// so a rotation of pi/2 faces up.
func (a *Actor) Forward() core.Vec2 {
	return core.V(math.Cos(a.rotation), -math.Sin(a.rotation))
}

// WorldTransform returns the local-to-world transform, recomputing it only
// if a transform setter ran since the last call.
func (a *Actor) WorldTransform() Transform {
	if a.dirty {
		a.dirty = false
		a.transform = NewTransform(a.scale, a.rotation, a.position)
	}
	return a.transform
}

// Components returns the owned components in update order.
// The returned slice is a copy.
func (a *Actor) Components() []Component {
	out := make([]Component, len(a.components))
	copy(out, a.components)
	return out
}

// AddComponent inserts c before the first sibling with a strictly greater
// update order, so equal orders keep insertion order. Components owned by a
// different actor and components already attached are ignored.
func (a *Actor) AddComponent(c Component) {
	b := c.base()
	if b.owner != a {
		a.world.logger.Warn("component attached to foreign actor ignored", "actor", a.id)
		return
	}
	if b.attached {
		return
	}

	order := c.UpdateOrder()
	i := 0
	for ; i < len(a.components); i++ {
		if order < a.components[i].UpdateOrder() {
			break
		}
	}

	a.components = append(a.components, nil)
	copy(a.components[i+1:], a.components[i:])
	a.components[i] = c
	b.attached = true
	if at, ok := c.(Attacher); ok {
		at.Attach()
	}
}

// RemoveComponent detaches c and runs its Destroy hook. Removing a
// component that is not attached is a no-op.
func (a *Actor) RemoveComponent(c Component) {
	for i, existing := range a.components {
		if existing != c {
			continue
		}
		copy(a.components[i:], a.components[i+1:])
		a.components[len(a.components)-1] = nil
		a.components = a.components[:len(a.components)-1]
		c.base().attached = false

		if d, ok := c.(Destroyer); ok {
			d.Destroy()
		}
		return
	}
}

// Update runs the actor for one frame: components in update order, then the
// behavior hook. Non-active actors are skipped.
func (a *Actor) Update(dt float64) {
	if a.state != Active {
		return
	}
	a.UpdateComponents(dt)
	if a.behavior != nil {
		a.behavior.UpdateActor(dt)
	}
}

// UpdateComponents updates every attached component once. Components
// detached during the pass are not updated afterwards.
func (a *Actor) UpdateComponents(dt float64) {
	a.scratch = append(a.scratch[:0], a.components...)
	for _, c := range a.scratch {
		if c.base().attached {
			c.Update(dt)
		}
	}
	clear(a.scratch)
}

// ProcessInput forwards the key-state snapshot to components, then to the
// behavior if it handles input. Non-active actors are skipped.
func (a *Actor) ProcessInput(in core.InputFrame) {
	if a.state != Active {
		return
	}

	a.scratch = append(a.scratch[:0], a.components...)
	for _, c := range a.scratch {
		if p, ok := c.(InputProcessor); ok && c.base().attached {
			p.ProcessInput(in)
		}
	}
	clear(a.scratch)

	if h, ok := a.behavior.(InputHandler); ok {
		h.ActorInput(in)
	}
}

// Destroy removes the actor from its world and destroys its components.
// While the world is mid-pass it only marks the actor Dead; the world
// destroys it when the pass completes.
func (a *Actor) Destroy() {
	if a.world.updating {
		a.state = Dead
		return
	}
	a.destroy()
}

func (a *Actor) destroy() {
	if a.destroyed {
		return
	}
	a.destroyed = true
	a.state = Dead

	if h, ok := a.behavior.(DestroyHook); ok {
		h.DestroyActor()
	}

	a.world.RemoveActor(a)

	// Components are destroyed last-first, mirroring construction.
	for len(a.components) > 0 {
		a.RemoveComponent(a.components[len(a.components)-1])
	}

	a.world.logger.Debug("actor destroyed", "actor", a.id)
}
