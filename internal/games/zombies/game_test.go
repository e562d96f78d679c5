package zombies

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/actor-arcade/internal/actor"
	"github.com/vovakirdan/actor-arcade/internal/audio"
	"github.com/vovakirdan/actor-arcade/internal/component"
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
	g := NewWithConfig(registry.Env{Audio: rec}, config.DefaultZombiesConfig())
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

func zombieType(g *Game, name string) config.ZombieType {
	for _, t := range g.cfg.Types {
		if t.Name == name {
			return t
		}
	}
	panic("no zombie type " + name)
}

// quietHorde replaces the wave with one motionless zombie in a corner so no
// new wave starts.
func quietHorde(g *Game) *Zombie {
	for _, z := range slices.Clone(g.zombies) {
		z.Destroy()
	}
	return g.spawnZombie(core.V(40, 40), zombieType(g, "bloater"), 0)
}

// bullets returns the live actors that are neither the player nor a zombie.
func bullets(g *Game) []*actor.Actor {
	var out []*actor.Actor
	for _, a := range g.World().Actors() {
		if a == g.player.Actor {
			continue
		}
		if slices.ContainsFunc(g.zombies, func(z *Zombie) bool { return z.Actor == a }) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func TestResetSpawnsHordeOnEdges(t *testing.T) {
	g, _ := newTestGame(t)

	assert.Equal(t, 1, g.Wave())
	assert.Equal(t, 5, g.Alive())
	assert.Equal(t, 100, g.Health())

	f, r := g.cfg.Field, g.cfg.Horde.Radius
	for _, z := range g.zombies {
		p := z.Position()
		onEdge := p.X == r || p.X == f.Width-r || p.Y == r || p.Y == f.Height-r
		assert.True(t, onEdge, "zombie at %v", p)
		assert.Equal(t, StateChase, z.ai.Current())
	}
}

func TestPlayerStrafes(t *testing.T) {
	g, _ := newTestGame(t)
	quietHorde(g)

	g.Step(held(core.ActionUp, core.ActionRight), 0.1)

	d := 200 * 0.1 / 1.4142135623730951
	assert.InDelta(t, 512+d, g.player.Position().X, 1e-6)
	assert.InDelta(t, 384-d, g.player.Position().Y, 1e-6)
	assert.InDelta(t, 0, g.player.Rotation(), 1e-9, "strafing never turns")
	assert.InDelta(t, 1/1.4142135623730951, g.player.Facing().X, 1e-9)
}

func TestPlayerStaysInArena(t *testing.T) {
	g, _ := newTestGame(t)
	quietHorde(g)

	for range 40 {
		g.Step(held(core.ActionLeft), 0.1)
	}
	assert.InDelta(t, g.cfg.Player.Radius, g.player.Position().X, 1e-9)
}

func TestBulletJoinsNextFrame(t *testing.T) {
	g, rec := newTestGame(t)
	quietHorde(g)

	g.Step(held(core.ActionFire), 0.05)
	shots := bullets(g)
	require.Len(t, shots, 1)
	assert.Equal(t, core.V(512, 384), shots[0].Position())
	assert.Contains(t, rec.played, audio.EffectLaser)

	g.Step(core.NewInputFrame(), 0.1)
	assert.InDelta(t, 284, shots[0].Position().Y, 1e-9, "flies toward the facing direction")
}

func TestBulletRange(t *testing.T) {
	g, _ := newTestGame(t)
	quietHorde(g)
	g.cfg.Bullet.Range = 100

	g.Step(held(core.ActionFire), 0.05)
	g.Step(core.NewInputFrame(), 0.05)
	assert.Len(t, bullets(g), 1)

	g.Step(core.NewInputFrame(), 0.05)
	g.Step(core.NewInputFrame(), 0.05)
	assert.Empty(t, bullets(g))
}

func TestBulletKillsChaserAndCorpseRots(t *testing.T) {
	g, _ := newTestGame(t)
	quietHorde(g)
	z := g.spawnZombie(core.V(512, 300), zombieType(g, "chaser"), 0)

	g.Step(held(core.ActionFire), 0.05)
	g.Step(core.NewInputFrame(), 0.05)
	require.True(t, z.Alive())

	g.Step(core.NewInputFrame(), 0.05)
	assert.False(t, z.Alive())
	assert.Equal(t, StateDead, z.ai.Current())
	assert.Equal(t, 10, g.State().Score)
	assert.Empty(t, bullets(g))

	for _, c := range z.Components() {
		_, walking := c.(*component.AnimSprite)
		assert.False(t, walking, "walk animation removed on death")
	}
	assert.Len(t, g.zombies, 2, "corpse stays for a while")

	for range 45 {
		g.Step(core.NewInputFrame(), 0.05)
	}
	assert.Len(t, g.zombies, 1)
	assert.Equal(t, actor.Dead, z.State())
}

func TestBloaterTakesFiveHits(t *testing.T) {
	g, rec := newTestGame(t)
	quietHorde(g)
	z := g.spawnZombie(core.V(200, 200), zombieType(g, "bloater"), 0)

	for range 4 {
		z.Hit(1)
	}
	assert.True(t, z.Alive())
	assert.Equal(t, 1, z.Health())
	assert.Contains(t, rec.played, audio.EffectHit)

	z.Hit(1)
	assert.False(t, z.Alive())

	z.Hit(1)
	assert.Equal(t, 0, z.Health(), "corpses ignore hits")
}

func TestZombieChasesPlayer(t *testing.T) {
	g, _ := newTestGame(t)
	quietHorde(g)
	z := g.spawnZombie(core.V(100, 384), zombieType(g, "chaser"), 80)

	g.Step(core.NewInputFrame(), 0.1)
	g.Step(core.NewInputFrame(), 0.1)

	assert.InDelta(t, 108, z.Position().X, 1e-9)
	assert.InDelta(t, 384, z.Position().Y, 1e-9)
}

func TestPlayerBittenWithCooldown(t *testing.T) {
	g, rec := newTestGame(t)
	quietHorde(g)
	g.spawnZombie(g.player.Position(), zombieType(g, "crawler"), 0)

	g.Step(core.NewInputFrame(), 0.01)
	assert.Equal(t, 90, g.Health())
	assert.Contains(t, rec.played, audio.EffectHit)

	g.Step(core.NewInputFrame(), 0.1)
	assert.Equal(t, 90, g.Health(), "hit cooldown")

	g.Step(core.NewInputFrame(), 0.2)
	assert.Equal(t, 80, g.Health())

	g.player.health = 10
	g.player.hitTimer = 0
	res := g.Step(core.NewInputFrame(), 0.01)
	assert.Zero(t, g.Health())
	assert.True(t, res.State.GameOver)
	assert.Contains(t, rec.played, audio.EffectGameOver)
}

func TestClearedWaveStartsNext(t *testing.T) {
	g, _ := newTestGame(t)

	for _, z := range slices.Clone(g.zombies) {
		z.Hit(100)
	}
	assert.Zero(t, g.Alive())

	g.Update(0.01)
	assert.Equal(t, 2, g.Wave())
	assert.Equal(t, 9, g.Alive(), "eight plus one from difficulty at score 50")
}

func TestPickTypeFollowsWeights(t *testing.T) {
	g, _ := newTestGame(t)

	counts := map[string]int{}
	for range 4000 {
		counts[g.pickType().Name]++
	}
	assert.InDelta(t, 2000, counts["chaser"], 200)
	assert.InDelta(t, 1000, counts["bloater"], 200)
	assert.InDelta(t, 1000, counts["crawler"], 200)
}

func TestPauseFreezesWorld(t *testing.T) {
	g, _ := newTestGame(t)
	frame := g.World().Frame()

	res := g.Step(held(core.ActionPause), 0.05)
	assert.True(t, res.State.Paused)
	g.Step(held(core.ActionUp), 0.05)
	assert.Equal(t, frame, g.World().Frame())
}

func TestRender(t *testing.T) {
	g, _ := newTestGame(t)
	quietHorde(g)

	s := core.NewScreen(80, 24)
	g.Render(s)

	assert.Contains(t, s.Row(0), "SCORE 0")
	assert.Contains(t, s.Row(0), "HP 100  WAVE 1  LEFT 1")
	assert.Equal(t, '@', s.Get(40, 12))
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create("zombies", registry.Env{})
	require.NoError(t, err)
	assert.Equal(t, "Zombie Arena", g.Title())
}

func TestEmptyWaveConfigStillSpawns(t *testing.T) {
	cfg := config.DefaultZombiesConfig()
	cfg.Horde.Count = 0
	cfg.Horde.WaveGrowth = 0
	cfg.Difficulty.Scaling.CountIncrease = 0
	g := NewWithConfig(registry.Env{Audio: &recordingPlayer{}}, cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	assert.Equal(t, 1, g.Wave())
	require.Len(t, g.zombies, 1)

	for range 10 {
		g.Step(held(), 1.0/60)
	}
	assert.Equal(t, 1, g.Wave(), "wave only advances once the horde is cleared")
}
