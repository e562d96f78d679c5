package actor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/actor-arcade/internal/core"
)

func TestAddActorOutsidePassGoesLive(t *testing.T) {
	w := NewWorld(nil)
	a := New(w, nil)
	b := New(w, nil)

	assert.Equal(t, 2, w.Len())
	assert.Empty(t, w.Pending())
	assert.Equal(t, ID(1), a.ID())
	assert.Equal(t, ID(2), b.ID())

	w.AddActor(a)
	assert.Equal(t, 2, w.Len(), "adding a held actor is a no-op")
}

func TestActorSpawnedDuringUpdateWaitsOneFrame(t *testing.T) {
	w := NewWorld(nil)
	spawner := newRecorder(w)

	var child *recorder
	spawner.onUpdate = func(r *recorder) {
		if child != nil {
			return
		}
		child = newRecorder(w)
		assert.True(t, w.Updating())
		assert.Len(t, w.Pending(), 1)
		assert.Equal(t, 1, w.Len(), "child must not be live during the pass")
	}

	w.Update(0.016)
	require.NotNil(t, child)
	assert.Zero(t, child.updates, "child is not updated in the frame it was added")
	assert.Equal(t, 2, w.Len())
	assert.Empty(t, w.Pending())
	assert.False(t, w.Updating())

	w.Update(0.016)
	assert.Equal(t, 1, child.updates)
	assert.Equal(t, 2, spawner.updates)
}

func TestDeadActorReapedSameFrame(t *testing.T) {
	w := NewWorld(nil)
	r := newRecorder(w)
	var log []string
	x := newProbe(r.Actor, 10, "x", &log)
	y := newProbe(r.Actor, 20, "y", &log)
	other := newRecorder(w)

	r.onUpdate = func(r *recorder) { r.SetState(Dead) }

	w.Update(0.016)
	assert.Equal(t, 1, r.updates)
	assert.Equal(t, 1, w.Len())
	assert.Equal(t, other.Actor, w.Actors()[0])
	assert.Equal(t, 1, x.destroyed)
	assert.Equal(t, 1, y.destroyed)
	assert.Equal(t, 1, r.destroys)

	w.Update(0.016)
	w.Update(0.016)
	assert.Equal(t, 1, r.updates, "dead actor is never updated again")
	assert.Equal(t, 1, x.destroyed, "components are destroyed once")
	assert.Equal(t, 1, r.destroys)
	assert.Equal(t, 3, other.updates)
}

func TestDestroyDuringPassIsDeferred(t *testing.T) {
	w := NewWorld(nil)
	victim := newRecorder(w)
	killer := newRecorder(w)

	killer.onUpdate = func(*recorder) { victim.Destroy() }

	w.Update(0.016)
	assert.Equal(t, Dead, victim.State())
	assert.Equal(t, 1, w.Len())
	assert.Equal(t, 1, victim.destroys)
}

func TestActorKilledEarlierInPassIsSkipped(t *testing.T) {
	w := NewWorld(nil)
	killer := newRecorder(w)
	victim := newRecorder(w)

	killer.onUpdate = func(*recorder) { victim.SetState(Dead) }

	w.Update(0.016)
	assert.Zero(t, victim.updates)
	assert.Equal(t, 1, w.Len())
}

func TestPendingActorDeadBeforePromotion(t *testing.T) {
	w := NewWorld(nil)
	spawner := newRecorder(w)
	var child *recorder
	spawner.onUpdate = func(*recorder) {
		if child == nil {
			child = newRecorder(w)
			child.SetState(Dead)
		}
	}

	w.Update(0.016)
	require.NotNil(t, child)
	assert.Equal(t, 1, w.Len())
	assert.Empty(t, w.Pending())
	assert.Equal(t, 1, child.destroys)
	assert.Zero(t, child.updates)
}

func TestRemoveActorIdempotent(t *testing.T) {
	w := NewWorld(nil)
	a := New(w, nil)
	b := New(w, nil)
	c := New(w, nil)

	w.RemoveActor(a)
	w.RemoveActor(a)

	assert.ElementsMatch(t, []*Actor{b, c}, w.Actors())
	_, ok := w.ActorByID(a.ID())
	assert.False(t, ok)
}

func TestRemoveActorSwapsWithLast(t *testing.T) {
	w := NewWorld(nil)
	a := New(w, nil)
	b := New(w, nil)
	c := New(w, nil)

	w.RemoveActor(a)
	assert.Equal(t, []*Actor{c, b}, w.Actors())
}

func TestRemovePendingActor(t *testing.T) {
	w := NewWorld(nil)
	spawner := newRecorder(w)
	spawner.onUpdate = func(*recorder) {
		child := New(w, nil)
		w.RemoveActor(child)
		w.RemoveActor(child)
		assert.Empty(t, w.Pending())
	}

	w.Update(0.016)
	assert.Equal(t, 1, w.Len())
}

func TestInputPassSpawnsIntoPending(t *testing.T) {
	w := NewWorld(nil)
	shooter := newRecorder(w)
	var spawned *Actor
	shooter.onInput = func(*recorder) {
		spawned = New(w, nil)
	}

	w.ProcessInput(core.NewInputFrame())
	require.NotNil(t, spawned)
	assert.Equal(t, 1, w.Len())
	assert.Len(t, w.Pending(), 1)
	assert.False(t, w.Updating())

	w.Update(0.016)
	assert.Equal(t, 2, w.Len())
}

func TestActorByID(t *testing.T) {
	w := NewWorld(nil)
	a := New(w, nil)

	got, ok := w.ActorByID(a.ID())
	require.True(t, ok)
	assert.Same(t, a, got)

	_, ok = w.ActorByID(99)
	assert.False(t, ok)
}

func TestShutdownDestroysEverything(t *testing.T) {
	w := NewWorld(nil)
	var recorders []*recorder
	for range 3 {
		recorders = append(recorders, newRecorder(w))
	}
	var log []string
	p := newProbe(recorders[0].Actor, 10, "p", &log)

	w.Shutdown()
	assert.Zero(t, w.Len())
	assert.Empty(t, w.Pending())
	assert.Equal(t, 1, p.destroyed)
	for _, r := range recorders {
		assert.Equal(t, 1, r.destroys)
	}
}

func TestFrameCounter(t *testing.T) {
	w := NewWorld(nil)
	for range 5 {
		w.Update(0.01)
	}
	assert.Equal(t, uint64(5), w.Frame())
}
