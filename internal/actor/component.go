package actor

import "github.com/vovakirdan/actor-arcade/internal/core"

// DefaultUpdateOrder is the mid-range update order used when a component
// has no reason to run before or after its siblings.
const DefaultUpdateOrder = 100

// Component is a per-frame behavior attached to exactly one Actor.
// Implementations embed Base, which ties the component to its owner and
// carries the update order; Update is called once per frame while the owner
// is Active, lower update orders first.
type Component interface {
	Update(dt float64)
	UpdateOrder() int
	Owner() *Actor
	base() *Base
}

// InputProcessor is implemented by components that consume the frame's
// key-state snapshot before the update pass.
type InputProcessor interface {
	ProcessInput(in core.InputFrame)
}

// Destroyer is implemented by components that release registrations held
// elsewhere (draw lists, game-side indexes) when they are detached.
// Destroy runs each time the component leaves its owner's list.
type Destroyer interface {
	Destroy()
}

// Attacher is the counterpart of Destroyer: Attach runs each time the
// component joins its owner's list, including after an earlier removal.
type Attacher interface {
	Attach()
}

// Base is embedded by every component.
type Base struct {
	owner    *Actor
	order    int
	attached bool
}

// NewBase binds a component to its owner with the given update order.
// The component is not registered until Attach (or Actor.AddComponent) runs.
func NewBase(owner *Actor, updateOrder int) Base {
	return Base{owner: owner, order: updateOrder}
}

// Owner returns the actor this component belongs to.
func (b *Base) Owner() *Actor {
	return b.owner
}

// UpdateOrder returns the component's update priority (lower runs first).
func (b *Base) UpdateOrder() int {
	return b.order
}

// Attached reports whether the component is currently in its owner's list.
func (b *Base) Attached() bool {
	return b.attached
}

// Update is the default no-op behavior.
func (b *Base) Update(float64) {}

func (b *Base) base() *Base {
	return b
}

// Attach registers c with its owner and returns it, so constructors can end
// with `return actor.Attach(c)`.
func Attach[C Component](c C) C {
	if owner := c.Owner(); owner != nil {
		owner.AddComponent(c)
	}
	return c
}
