package pong

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/actor-arcade/internal/audio"
	"github.com/vovakirdan/actor-arcade/internal/config"
	"github.com/vovakirdan/actor-arcade/internal/core"
	"github.com/vovakirdan/actor-arcade/internal/registry"
)

type recordingPlayer struct {
	played []audio.Effect
}

func (r *recordingPlayer) Play(e audio.Effect) { r.played = append(r.played, e) }

func newTestGame(t *testing.T) (*Game, *recordingPlayer) {
	t.Helper()
	rec := &recordingPlayer{}
	g := NewWithConfig(registry.Env{Audio: rec}, config.DefaultPongConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return g, rec
}

func held(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// placeBall puts the ball in flight at pos with velocity v.
func placeBall(g *Game, pos, v core.Vec2) {
	g.ball.serveTimer = 0
	g.ball.SetPosition(pos)
	g.ball.SetVelocity(v)
}

func TestResetLayout(t *testing.T) {
	g, _ := newTestGame(t)
	snap := g.Snapshot()

	assert.Equal(t, core.V(30, 384), snap.Player)
	assert.Equal(t, core.V(994, 384), snap.CPU)
	assert.Equal(t, core.V(512, 384), snap.Ball)
	assert.True(t, snap.Serving)
	assert.Equal(t, StateIdle, snap.CPUState)
	assert.Equal(t, 5, snap.Actors, "two walls, two paddles, one ball")
}

func TestPaddleMovesUpThenClamps(t *testing.T) {
	g, _ := newTestGame(t)

	g.Step(held(core.ActionUp), 0.1)
	assert.InDelta(t, 354, g.player.Position().Y, 1e-9)
	assert.InDelta(t, 30, g.player.Position().X, 1e-9)

	for range 20 {
		g.Step(held(core.ActionUp), 0.1)
	}
	minY, maxY := g.player.Bounds()
	assert.Equal(t, 65.0, minY)
	assert.Equal(t, 703.0, maxY)
	assert.InDelta(t, minY, g.player.Position().Y, 1e-9)

	for range 40 {
		g.Step(held(core.ActionDown), 0.1)
	}
	assert.InDelta(t, maxY, g.player.Position().Y, 1e-9)
}

func TestPaddleStaysOnItsColumn(t *testing.T) {
	g, _ := newTestGame(t)

	for i := range 600 {
		if i%100 < 50 {
			g.Step(held(core.ActionUp), 1.0/60)
		} else {
			g.Step(held(core.ActionDown), 1.0/60)
		}
	}
	assert.Equal(t, 30.0, g.player.Position().X)
	assert.Equal(t, 994.0, g.cpu.Position().X)
}

func TestCPUSwitchesStates(t *testing.T) {
	g, _ := newTestGame(t)

	placeBall(g, core.V(512, 200), core.V(200, 0))
	g.Step(held(), 0.016)
	assert.Equal(t, StateTrack, g.cpu.AIState())

	g.Step(held(), 0.016)
	assert.Less(t, g.cpu.move.Velocity.Y, 0.0, "CPU heads toward the ball above it")

	placeBall(g, core.V(512, 200), core.V(-200, 0))
	g.Step(held(), 0.016)
	assert.Equal(t, StateIdle, g.cpu.AIState())
}

func TestBallBouncesOffTopWall(t *testing.T) {
	g, rec := newTestGame(t)

	placeBall(g, core.V(512, 23), core.V(0, -100))
	g.Step(held(), 0.016)

	snap := g.Snapshot()
	assert.InDelta(t, 22.5, snap.Ball.Y, 1e-9)
	assert.Equal(t, 100.0, snap.BallVel.Y)
	assert.Contains(t, rec.played, audio.EffectWall)
}

func TestBallBouncesOffPlayerPaddle(t *testing.T) {
	g, rec := newTestGame(t)

	placeBall(g, core.V(40, 384), core.V(-200, 0))
	g.Step(held(), 0.016)

	snap := g.Snapshot()
	assert.InDelta(t, 210, snap.BallVel.X, 1e-9)
	assert.InDelta(t, 45, snap.Ball.X, 1e-9)
	assert.Contains(t, rec.played, audio.EffectPaddle)
}

func TestMissedBallScoresForCPU(t *testing.T) {
	g, rec := newTestGame(t)

	placeBall(g, core.V(1, 384), core.V(-200, 0))
	g.Step(held(), 0.016)

	snap := g.Snapshot()
	assert.Equal(t, 1, snap.Score2)
	assert.Equal(t, 0, snap.Score1)
	assert.True(t, snap.Serving)
	assert.Equal(t, core.V(512, 384), snap.Ball)
	assert.Contains(t, rec.played, audio.EffectScore)
}

func TestServeLaunchesAfterDelay(t *testing.T) {
	g, _ := newTestGame(t)

	for range 25 {
		g.Step(held(), 0.05)
	}
	snap := g.Snapshot()
	assert.False(t, snap.Serving)
	assert.Less(t, snap.BallVel.X, 0.0, "first serve goes to the player")
	assert.GreaterOrEqual(t, abs(snap.BallVel.Y), 100.0)
	assert.LessOrEqual(t, abs(snap.BallVel.Y), 235.0)
}

func TestWinningPointEndsGame(t *testing.T) {
	g, rec := newTestGame(t)
	g.score1 = 4

	placeBall(g, core.V(1023, 384), core.V(200, 0))
	res := g.Step(held(), 0.016)

	assert.True(t, res.State.GameOver)
	assert.Equal(t, 5, res.State.Score)
	assert.Equal(t, 1, g.Snapshot().Winner)
	assert.Contains(t, rec.played, audio.EffectGameOver)

	before := g.Snapshot()
	g.Step(held(core.ActionUp), 0.1)
	assert.Equal(t, before, g.Snapshot(), "nothing moves after game over")
}

func TestPauseToggle(t *testing.T) {
	g, _ := newTestGame(t)

	res := g.Step(held(core.ActionPause), 0.1)
	assert.True(t, res.State.Paused)

	g.Step(held(core.ActionUp), 0.1)
	assert.Equal(t, 384.0, g.player.Position().Y)

	res = g.Step(held(core.ActionPause), 0.1)
	assert.False(t, res.State.Paused)
}

func TestRenderDrawsField(t *testing.T) {
	g, _ := newTestGame(t)
	s := core.NewScreen(80, 24)
	g.Render(s)

	assert.Equal(t, '█', s.Get(1, 10), "player paddle")
	assert.Contains(t, s.Row(0), "P1")
	assert.Contains(t, s.Row(0), "CPU")
	assert.Equal(t, '▓', s.Get(0, 23), "bottom wall")

	g.paused = true
	g.Render(s)
	assert.Contains(t, s.String(), "PAUSED")
}

func TestCloseDestroysActors(t *testing.T) {
	g, _ := newTestGame(t)
	w := g.World()
	g.Close()

	assert.Zero(t, w.Len())
	assert.Zero(t, w.DrawList().Len())
}

func TestNewLoadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gameplay:\n  win_score: 1\n"), 0o644))

	g := New(registry.Env{ConfigPath: path, Difficulty: config.DifficultyFixed})
	assert.Equal(t, 1, g.Config().Gameplay.WinScore)
	assert.False(t, g.Config().Difficulty.Enabled)

	g.Reset(core.RuntimeConfig{Seed: 3})
	placeBall(g, core.V(1023, 384), core.V(200, 0))
	assert.True(t, g.Step(held(), 0.016).State.GameOver)
}

func TestRegistered(t *testing.T) {
	assert.True(t, registry.Exists("pong"))
	g, err := registry.Create("pong", registry.Env{})
	require.NoError(t, err)
	assert.Equal(t, "Pong", g.Title())
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
