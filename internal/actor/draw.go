package actor

import "github.com/vovakirdan/actor-arcade/internal/core"

// Drawable is anything the world renders each frame: sprites, shapes, text.
type Drawable interface {
	Draw(dst *core.Screen, view core.Viewport)
	DrawOrder() int
}

// DrawList keeps drawables sorted by draw order. Lower orders draw first
// (further back); equal orders draw in registration order.
type DrawList struct {
	items []Drawable
}

// Add registers d. Registering the same drawable twice is a no-op.
func (l *DrawList) Add(d Drawable) {
	for _, x := range l.items {
		if x == d {
			return
		}
	}

	order := d.DrawOrder()
	i := 0
	for ; i < len(l.items); i++ {
		if order < l.items[i].DrawOrder() {
			break
		}
	}
	l.items = append(l.items, nil)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = d
}

// Remove unregisters d, preserving the order of the rest.
func (l *DrawList) Remove(d Drawable) {
	for i, x := range l.items {
		if x == d {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered drawables.
func (l *DrawList) Len() int {
	return len(l.items)
}

// Draw renders every drawable back to front.
func (l *DrawList) Draw(dst *core.Screen, view core.Viewport) {
	for _, d := range l.items {
		d.Draw(dst, view)
	}
}
