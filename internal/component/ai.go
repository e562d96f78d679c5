package component

import (
	"github.com/vovakirdan/actor-arcade/internal/actor"
)

// AIState is one state of an AI state machine.
type AIState interface {
	Name() string
	Update(dt float64)
	OnEnter()
	OnExit()
}

// StateFuncs builds an AIState from plain functions; nil funcs are skipped.
type StateFuncs struct {
	ID     string
	OnTick func(dt float64)
	Enter  func()
	Exit   func()
}

// Name returns the state's key.
func (s *StateFuncs) Name() string { return s.ID }

// Update runs OnTick.
func (s *StateFuncs) Update(dt float64) {
	if s.OnTick != nil {
		s.OnTick(dt)
	}
}

// OnEnter runs Enter.
func (s *StateFuncs) OnEnter() {
	if s.Enter != nil {
		s.Enter()
	}
}

// OnExit runs Exit.
func (s *StateFuncs) OnExit() {
	if s.Exit != nil {
		s.Exit()
	}
}

// AI runs the current state of a named-state machine every frame.
type AI struct {
	actor.Base

	states  map[string]AIState
	current AIState
}

// NewAI attaches an AI component with no states.
func NewAI(owner *actor.Actor) *AI {
	return actor.Attach(&AI{
		Base:   actor.NewBase(owner, actor.DefaultUpdateOrder),
		states: make(map[string]AIState),
	})
}

// Register adds a state, replacing any state with the same name.
func (ai *AI) Register(s AIState) {
	ai.states[s.Name()] = s
}

// Update runs the current state, if any.
func (ai *AI) Update(dt float64) {
	if ai.current != nil {
		ai.current.Update(dt)
	}
}

// Current returns the current state's name, or "" when there is none.
func (ai *AI) Current() string {
	if ai.current == nil {
		return ""
	}
	return ai.current.Name()
}

// ChangeState exits the current state and enters the named one. An unknown
// name is logged and leaves the machine with no current state.
func (ai *AI) ChangeState(name string) {
	if ai.current != nil {
		ai.current.OnExit()
	}

	next, ok := ai.states[name]
	if !ok {
		ai.Owner().World().Logger().Warn("unknown AI state", "state", name, "actor", ai.Owner().ID())
		ai.current = nil
		return
	}
	ai.current = next
	ai.current.OnEnter()
}
