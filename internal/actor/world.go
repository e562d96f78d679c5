package actor

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/actor-arcade/internal/core"
)

// World owns every actor and drives the per-frame passes. Actors added
// during a pass wait in a pending list until the pass ends; actors killed
// during a pass are marked Dead and reaped after it.
type World struct {
	actors   []*Actor
	pending  []*Actor
	updating bool

	snapshot []*Actor
	dead     []*Actor

	nextID ID
	frame  uint64
	draw   DrawList
	logger *log.Logger
}

// NewWorld creates an empty world. A nil logger discards output.
func NewWorld(logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &World{logger: logger}
}

// Logger returns the world's logger; components use it for diagnostics.
func (w *World) Logger() *log.Logger {
	return w.logger
}

// DrawList returns the world's draw registry.
func (w *World) DrawList() *DrawList {
	return &w.draw
}

// Updating reports whether an input or update pass is in progress.
func (w *World) Updating() bool {
	return w.updating
}

// Frame returns the number of completed Update calls.
func (w *World) Frame() uint64 {
	return w.frame
}

// Len returns the number of live actors (pending actors excluded).
func (w *World) Len() int {
	return len(w.actors)
}

// Actors returns a copy of the live actor list.
func (w *World) Actors() []*Actor {
	out := make([]*Actor, len(w.actors))
	copy(out, w.actors)
	return out
}

// Pending returns a copy of the actors waiting to join the live list.
func (w *World) Pending() []*Actor {
	out := make([]*Actor, len(w.pending))
	copy(out, w.pending)
	return out
}

// ActorByID finds a live or pending actor.
func (w *World) ActorByID(id ID) (*Actor, bool) {
	for _, list := range [][]*Actor{w.actors, w.pending} {
		for _, a := range list {
			if a.id == id {
				return a, true
			}
		}
	}
	return nil, false
}

// AddActor registers a. While a pass is running the actor goes to the
// pending list and is first updated on the next frame. Adding an actor
// that is already held is a no-op.
func (w *World) AddActor(a *Actor) {
	if a.slot != slotNone || a.destroyed {
		return
	}
	if a.id == 0 {
		w.nextID++
		a.id = w.nextID
	}
	a.world = w

	if w.updating {
		a.slot = slotPending
		w.pending = append(w.pending, a)
		return
	}
	a.slot = slotLive
	w.actors = append(w.actors, a)
}

// RemoveActor drops a from whichever list holds it. Order within the
// lists is not preserved. Removing an unknown actor is a no-op.
func (w *World) RemoveActor(a *Actor) {
	switch a.slot {
	case slotPending:
		w.pending = swapRemove(w.pending, a)
	case slotLive:
		w.actors = swapRemove(w.actors, a)
	}
	a.slot = slotNone
}

func swapRemove(list []*Actor, a *Actor) []*Actor {
	for i, x := range list {
		if x != a {
			continue
		}
		last := len(list) - 1
		list[i] = list[last]
		list[last] = nil
		return list[:last]
	}
	return list
}

// ProcessInput hands the frame's input snapshot to every live actor.
// Actors spawned by input handlers land in the pending list.
func (w *World) ProcessInput(in core.InputFrame) {
	w.updating = true
	defer func() { w.updating = false }()

	w.snapshot = append(w.snapshot[:0], w.actors...)
	for _, a := range w.snapshot {
		if a.slot == slotLive {
			a.ProcessInput(in)
		}
	}
	clear(w.snapshot)
}

// Update advances the world by dt seconds:
//
//  1. every live actor updates once, in live-list order
//  2. pending actors join the live list with their transforms computed
//  3. actors that ended the frame Dead are destroyed
func (w *World) Update(dt float64) {
	w.updating = true
	w.snapshot = append(w.snapshot[:0], w.actors...)
	for _, a := range w.snapshot {
		// An actor destroyed earlier in this pass is no longer live.
		if a.slot == slotLive {
			a.Update(dt)
		}
	}
	clear(w.snapshot)
	w.updating = false

	for _, a := range w.pending {
		a.WorldTransform()
		a.slot = slotLive
		w.actors = append(w.actors, a)
	}
	clear(w.pending)
	w.pending = w.pending[:0]

	w.dead = w.dead[:0]
	for _, a := range w.actors {
		if a.state == Dead {
			w.dead = append(w.dead, a)
		}
	}
	for _, a := range w.dead {
		a.destroy()
	}
	clear(w.dead)

	w.frame++
}

// Shutdown destroys every actor, pending ones included, leaving the world empty.
func (w *World) Shutdown() {
	for len(w.actors) > 0 {
		w.actors[len(w.actors)-1].destroy()
	}
	for len(w.pending) > 0 {
		w.pending[len(w.pending)-1].destroy()
	}
	w.logger.Debug("world shut down", "frames", w.frame)
}
