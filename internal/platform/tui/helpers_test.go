package tui

import (
	"github.com/vovakirdan/actor-arcade/internal/core"
	"github.com/vovakirdan/actor-arcade/internal/registry"
)

// fakeGame records what the loop feeds it.
type fakeGame struct {
	resets  int
	inputs  []core.InputFrame
	updates int
	state   core.GameState
	closed  bool
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *fakeGame) ProcessInput(in core.InputFrame) { g.inputs = append(g.inputs, in.Clone()) }
func (g *fakeGame) Update(float64)                  { g.updates++ }

func (g *fakeGame) Step(in core.InputFrame, dt float64) core.StepResult {
	g.ProcessInput(in)
	g.Update(dt)
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "FAKE")
}

func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Close()                { g.closed = true }

func (g *fakeGame) lastInput() core.InputFrame {
	if len(g.inputs) == 0 {
		return core.NewInputFrame()
	}
	return g.inputs[len(g.inputs)-1]
}

// lastCreated is the most recent fake built by the registry.
var lastCreated *fakeGame

func init() {
	registry.Register("fake", func(registry.Env) registry.Game {
		lastCreated = &fakeGame{}
		return lastCreated
	})
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 7}
}
