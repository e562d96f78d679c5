package component

import (
	"github.com/vovakirdan/actor-arcade/internal/actor"
	"github.com/vovakirdan/actor-arcade/internal/core"
)

// InputMode selects how held actions turn into motion.
type InputMode int

const (
	// ModeTank drives forward/back along the facing and turns in place.
	ModeTank InputMode = iota
	// ModeStrafe moves along the screen axes without turning.
	ModeStrafe
)

// Input is a Move whose speeds are set from the frame's held actions.
type Input struct {
	Move

	Mode InputMode

	Forward          core.Action
	Back             core.Action
	Clockwise        core.Action
	CounterClockwise core.Action

	MaxForwardSpeed float64
	MaxAngularSpeed float64
}

// NewInput attaches a tank-style input component bound to the arrow actions.
func NewInput(owner *actor.Actor) *Input {
	return actor.Attach(&Input{
		Move:             Move{Base: actor.NewBase(owner, MoveUpdateOrder)},
		Forward:          core.ActionUp,
		Back:             core.ActionDown,
		Clockwise:        core.ActionRight,
		CounterClockwise: core.ActionLeft,
	})
}

// ProcessInput sets this frame's speeds from the held actions.
func (c *Input) ProcessInput(in core.InputFrame) {
	switch c.Mode {
	case ModeStrafe:
		dir := core.V(
			in.Axis(c.CounterClockwise, c.Clockwise),
			in.Axis(c.Forward, c.Back),
		).Normalized()
		c.Velocity = dir.Scale(c.MaxForwardSpeed)
		c.ForwardSpeed = 0
		c.AngularSpeed = 0
	default:
		c.ForwardSpeed = in.Axis(c.Back, c.Forward) * c.MaxForwardSpeed
		c.AngularSpeed = in.Axis(c.Clockwise, c.CounterClockwise) * c.MaxAngularSpeed
	}
}
