package actor

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/actor-arcade/internal/core"
)

// Phase is the stage of the frame the loop is currently in.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseInput
	PhaseUpdate
	PhaseRender
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInput:
		return "input"
	case PhaseUpdate:
		return "update"
	case PhaseRender:
		return "render"
	default:
		return "unknown"
	}
}

// Simulation is what a Loop drives. *World satisfies it; games wrap a
// World to add pause handling and rules.
type Simulation interface {
	ProcessInput(in core.InputFrame)
	Update(dt float64)
}

// InputSource produces the key-state snapshot for a frame. ok is false
// once the user asked to quit.
type InputSource interface {
	Poll() (in core.InputFrame, ok bool)
}

// InputFunc adapts a function to InputSource.
type InputFunc func() (core.InputFrame, bool)

// Poll calls f.
func (f InputFunc) Poll() (core.InputFrame, bool) { return f() }

// Renderer produces the frame's output once the world has updated.
type Renderer interface {
	Render()
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func()

// Render calls f.
func (f RenderFunc) Render() { f() }

// Loop runs frames of input, update and output until the input source
// reports a quit.
type Loop struct {
	sim      Simulation
	input    InputSource
	renderer Renderer
	clock    *Clock
	logger   *log.Logger

	phase   Phase
	running bool
	frames  uint64
}

// NewLoop creates a loop. A nil renderer skips output; a nil clock uses
// the default pacing; a nil logger discards output.
func NewLoop(sim Simulation, input InputSource, renderer Renderer, clock *Clock, logger *log.Logger) *Loop {
	if clock == nil {
		clock = NewClock(DefaultClockConfig())
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{
		sim:      sim,
		input:    input,
		renderer: renderer,
		clock:    clock,
		logger:   logger,
		running:  true,
	}
}

// Phase returns the stage the loop is in; PhaseIdle between frames.
func (l *Loop) Phase() Phase {
	return l.phase
}

// Running reports whether the loop has not yet seen a quit.
func (l *Loop) Running() bool {
	return l.running
}

// Frames returns the number of completed frames.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Frame runs one full frame. A quit observed during input still lets the
// frame finish; Frame then returns false and later calls do nothing.
func (l *Loop) Frame() bool {
	if !l.running {
		return false
	}

	l.phase = PhaseInput
	in, ok := l.input.Poll()
	if !ok {
		l.running = false
		l.logger.Debug("quit requested", "frame", l.frames)
	}
	l.sim.ProcessInput(in)

	l.phase = PhaseUpdate
	l.sim.Update(l.clock.Tick())

	l.phase = PhaseRender
	if l.renderer != nil {
		l.renderer.Render()
	}

	l.phase = PhaseIdle
	l.frames++
	return l.running
}

// Run calls Frame until the input source quits or ctx is done. It returns
// ctx.Err() on cancellation and nil on a normal quit.
func (l *Loop) Run(ctx context.Context) error {
	l.clock.Reset()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if !l.Frame() {
			return nil
		}
	}
}
