package actor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/actor-arcade/internal/core"
)

func TestComponentsSortedByUpdateOrder(t *testing.T) {
	w := NewWorld(nil)
	a := New(w, nil)
	var log []string

	newProbe(a, 10, "x", &log)
	newProbe(a, 5, "y", &log)

	assert.Equal(t, []string{"y", "x"}, names(a.Components()))

	a.Update(0.016)
	assert.Equal(t, []string{"y", "x"}, log)
}

func TestComponentTiesKeepInsertionOrder(t *testing.T) {
	w := NewWorld(nil)
	a := New(w, nil)
	var log []string

	orders := []struct {
		name  string
		order int
	}{
		{"a", 100}, {"b", 50}, {"c", 100}, {"d", 200}, {"e", 50}, {"f", 100},
	}
	for _, o := range orders {
		newProbe(a, o.order, o.name, &log)
	}

	assert.Equal(t, []string{"b", "e", "a", "c", "f", "d"}, names(a.Components()))

	cs := a.Components()
	for i := 1; i < len(cs); i++ {
		assert.LessOrEqual(t, cs[i-1].UpdateOrder(), cs[i].UpdateOrder())
	}
}

func TestAddComponentIgnoresForeignAndDuplicate(t *testing.T) {
	w := NewWorld(nil)
	a := New(w, nil)
	b := New(w, nil)
	var log []string

	p := newProbe(a, 10, "p", &log)
	b.AddComponent(p)
	a.AddComponent(p)

	assert.Len(t, a.Components(), 1)
	assert.Empty(t, b.Components())
}

func TestRemoveComponentIdempotent(t *testing.T) {
	w := NewWorld(nil)
	a := New(w, nil)
	var log []string

	x := newProbe(a, 10, "x", &log)
	y := newProbe(a, 20, "y", &log)

	a.RemoveComponent(x)
	a.RemoveComponent(x)

	assert.Equal(t, []string{"y"}, names(a.Components()))
	assert.Equal(t, 1, x.destroyed)
	assert.False(t, x.Attached())
	assert.True(t, y.Attached())
}

func TestComponentsUpdateBeforeActorHook(t *testing.T) {
	w := NewWorld(nil)
	r := newRecorder(w)
	var log []string

	newProbe(r.Actor, 10, "move", &log)
	r.onUpdate = func(*recorder) { log = append(log, "actor") }

	r.Update(0.016)
	assert.Equal(t, []string{"move", "actor"}, log)
}

func TestNonActiveActorSkipsUpdate(t *testing.T) {
	w := NewWorld(nil)
	r := newRecorder(w)
	var log []string
	newProbe(r.Actor, 10, "p", &log)

	r.SetState(Paused)
	r.Update(0.016)
	r.ProcessInput(core.NewInputFrame())
	assert.Zero(t, r.updates)
	assert.Zero(t, r.inputs)
	assert.Empty(t, log)

	r.SetState(Active)
	r.Update(0.016)
	assert.Equal(t, 1, r.updates)
}

func TestDeadIsTerminal(t *testing.T) {
	w := NewWorld(nil)
	a := New(w, nil)

	a.SetState(Dead)
	a.SetState(Active)
	assert.Equal(t, Dead, a.State())
}

func TestComponentRemovedMidPassNotUpdated(t *testing.T) {
	w := NewWorld(nil)
	a := New(w, nil)
	var log []string

	first := newProbe(a, 10, "first", &log)
	second := newProbe(a, 20, "second", &log)
	first.onUpdate = func() { a.RemoveComponent(second) }

	a.Update(0.016)
	assert.Equal(t, []string{"first"}, log)
	assert.Equal(t, 1, second.destroyed)
}

func TestProcessInputOrder(t *testing.T) {
	w := NewWorld(nil)
	r := newRecorder(w)
	var log []string
	newProbe(r.Actor, 20, "b", &log)
	newProbe(r.Actor, 10, "a", &log)
	r.onInput = func(*recorder) { log = append(log, "actor") }

	r.ProcessInput(core.NewInputFrame())
	assert.Equal(t, []string{"input:a", "input:b", "actor"}, log)
}

func TestForwardVector(t *testing.T) {
	w := NewWorld(nil)
	a := New(w, nil)

	f := a.Forward()
	assert.InDelta(t, 1, f.X, 1e-9)
	assert.InDelta(t, 0, f.Y, 1e-9)

	a.SetRotation(math.Pi / 2)
	f = a.Forward()
	assert.InDelta(t, 0, f.X, 1e-9)
	assert.InDelta(t, -1, f.Y, 1e-9, "pi/2 faces up on a y-down screen")
}

func TestWorldTransformRecomputedWhenDirty(t *testing.T) {
	w := NewWorld(nil)
	a := New(w, nil)
	a.SetPosition(core.V(10, 20))
	a.SetScale(2)

	p := a.WorldTransform().Apply(core.V(1, 0))
	assert.InDelta(t, 12, p.X, 1e-9)
	assert.InDelta(t, 20, p.Y, 1e-9)

	a.SetRotation(math.Pi / 2)
	p = a.WorldTransform().Apply(core.V(1, 0))
	assert.InDelta(t, 10, p.X, 1e-9)
	assert.InDelta(t, 18, p.Y, 1e-9)

	assert.Equal(t, a.WorldTransform(), a.WorldTransform())
}

func TestDestroyCascadesToComponents(t *testing.T) {
	w := NewWorld(nil)
	r := newRecorder(w)
	var log []string
	x := newProbe(r.Actor, 10, "x", &log)
	y := newProbe(r.Actor, 20, "y", &log)

	r.Destroy()
	r.Destroy()

	assert.Equal(t, Dead, r.State())
	assert.Equal(t, 0, w.Len())
	assert.Empty(t, r.Components())
	assert.Equal(t, 1, x.destroyed)
	assert.Equal(t, 1, y.destroyed)
	assert.Equal(t, 1, r.destroys)
}

func TestDestroyedActorCannotRejoin(t *testing.T) {
	w := NewWorld(nil)
	a := New(w, nil)
	a.Destroy()

	w.AddActor(a)
	require.Equal(t, 0, w.Len())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "active", Active.String())
	assert.Equal(t, "paused", Paused.String())
	assert.Equal(t, "dead", Dead.String())
	assert.Equal(t, "unknown", State(9).String())
}
