package tui

import (
	"time"

	"github.com/vovakirdan/actor-arcade/internal/core"
)

// DefaultHoldWindow is how long a key press counts as held. Terminals
// report presses and auto-repeats but never releases.
const DefaultHoldWindow = 150 * time.Millisecond

// HeldKeys turns a stream of terminal key presses into per-frame key-state
// snapshots. Movement and fire stay held for the hold window after the last
// press; toggles such as pause are delivered to exactly one frame.
type HeldKeys struct {
	window time.Duration
	now    func() time.Time
	last   map[core.Action]time.Time
	taps   []core.Action
	quit   bool
}

// NewHeldKeys creates a tracker. A non-positive window uses the default.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HeldKeys{
		window: window,
		now:    time.Now,
		last:   make(map[core.Action]time.Time),
	}
}

// continuous reports whether a stays held between presses.
func continuous(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionFire:
		return true
	}
	return false
}

// Press records a key press for a.
func (h *HeldKeys) Press(a core.Action) {
	switch {
	case a == core.ActionNone:
	case a == core.ActionQuit:
		h.quit = true
	case continuous(a):
		h.last[a] = h.now()
	default:
		h.taps = append(h.taps, a)
	}
}

// Poll builds the snapshot for the next frame and consumes pending taps.
// ok turns false once quit was pressed.
func (h *HeldKeys) Poll() (core.InputFrame, bool) {
	in := core.NewInputFrame()
	now := h.now()
	for a, t := range h.last {
		if now.Sub(t) < h.window {
			in.Set(a)
		} else {
			delete(h.last, a)
		}
	}
	for _, a := range h.taps {
		in.Set(a)
	}
	h.taps = h.taps[:0]
	return in, !h.quit
}

// Release forgets every held key and pending tap.
func (h *HeldKeys) Release() {
	clear(h.last)
	h.taps = h.taps[:0]
}
