// Package zombies implements Zombie Arena: the player strafes around a
// walled field shooting at waves of zombies that chase them down.
package zombies

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/actor-arcade/internal/actor"
	"github.com/vovakirdan/actor-arcade/internal/assets"
	"github.com/vovakirdan/actor-arcade/internal/audio"
	"github.com/vovakirdan/actor-arcade/internal/config"
	"github.com/vovakirdan/actor-arcade/internal/core"
	"github.com/vovakirdan/actor-arcade/internal/games/hud"
	"github.com/vovakirdan/actor-arcade/internal/registry"
)

// Draw orders.
const (
	corpseDrawOrder = 50
	zombieDrawOrder = 100
	bulletDrawOrder = 120
	playerDrawOrder = 150
)

// zombieDamage is the health a zombie takes from the player per touch.
const zombieDamage = 10

// Game implements Zombie Arena.
type Game struct {
	env        registry.Env
	cfg        config.ZombiesConfig
	runtime    core.RuntimeConfig
	world      *actor.World
	rng        *rand.Rand
	difficulty *config.DifficultyManager

	player  *Player
	zombies []*Zombie
	walk    assets.Animation

	score    int
	wave     int
	gameOver bool
	paused   bool
	elapsed  float64
}

// New creates a new Zombie Arena game, loading its config from
// env.ConfigPath or the standard search path.
func New(env registry.Env) *Game {
	env = env.Normalize()
	cfg, err := config.LoadZombies(env.ConfigPath)
	if err != nil {
		env.Logger.Error("zombies config unusable, using defaults", "err", err)
		cfg = config.DefaultZombiesConfig()
	}
	return NewWithConfig(env, cfg)
}

// NewWithConfig creates a game with an explicit config.
func NewWithConfig(env registry.Env, cfg config.ZombiesConfig) *Game {
	env = env.Normalize()
	if env.Difficulty != "" {
		config.ApplyPreset(&cfg.Difficulty, env.Difficulty)
	}
	if len(cfg.Types) == 0 {
		cfg.Types = config.DefaultZombiesConfig().Types
	}
	return &Game{env: env, cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "zombies"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Zombie Arena"
}

// Frame returns the configured frame pacing.
func (g *Game) Frame() config.FrameConfig {
	return g.cfg.Frame
}

// World returns the actor world; nil before the first Reset.
func (g *Game) World() *actor.World {
	return g.world
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.Close()

	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.world = actor.NewWorld(g.env.Logger.With("game", g.ID()))
	g.zombies = nil

	walk, err := g.env.Assets.Animation("zombie_walk")
	if err != nil {
		g.world.Logger().Warn("zombie animation missing, using placeholder", "err", err)
		walk = assets.Animation{Name: "zombie_walk"}
	}
	g.walk = walk

	g.score = 0
	g.wave = 0
	g.gameOver = false
	g.paused = false
	g.elapsed = 0

	g.player = newPlayer(g)
	g.nextWave()
}

// nextWave spawns a new horde along the field's edges.
func (g *Game) nextWave() {
	g.wave++
	base := g.cfg.Horde.Count + (g.wave-1)*g.cfg.Horde.WaveGrowth
	// A wave always has at least one spawn so clearing it can end.
	count := max(g.difficulty.Count(base, g.score, g.elapsed), 1)

	for range count {
		kind := g.pickType()
		speed := g.difficulty.Speed(kind.Speed, g.score, g.elapsed)
		g.spawnZombie(g.edgePoint(), kind, speed)
	}
	g.world.Logger().Info("wave started", "wave", g.wave, "zombies", count)
}

// pickType chooses a zombie type by weight.
func (g *Game) pickType() config.ZombieType {
	total := 0
	for _, t := range g.cfg.Types {
		total += max(t.Weight, 0)
	}
	if total == 0 {
		return g.cfg.Types[g.rng.Intn(len(g.cfg.Types))]
	}
	n := g.rng.Intn(total)
	for _, t := range g.cfg.Types {
		n -= max(t.Weight, 0)
		if n < 0 {
			return t
		}
	}
	return g.cfg.Types[len(g.cfg.Types)-1]
}

// edgePoint returns a random point just inside one of the four walls.
func (g *Game) edgePoint() core.Vec2 {
	f := g.cfg.Field
	r := g.cfg.Horde.Radius
	switch g.rng.Intn(4) {
	case 0:
		return core.V(r, r+g.rng.Float64()*(f.Height-2*r))
	case 1:
		return core.V(f.Width-r, r+g.rng.Float64()*(f.Height-2*r))
	case 2:
		return core.V(r+g.rng.Float64()*(f.Width-2*r), r)
	default:
		return core.V(r+g.rng.Float64()*(f.Width-2*r), f.Height-r)
	}
}

func (g *Game) spawnZombie(pos core.Vec2, kind config.ZombieType, speed float64) *Zombie {
	z := newZombie(g, pos, kind, speed)
	g.zombies = append(g.zombies, z)
	return z
}

// removeZombie drops z from the horde index.
func (g *Game) removeZombie(z *Zombie) {
	for i, x := range g.zombies {
		if x == z {
			g.zombies = append(g.zombies[:i], g.zombies[i+1:]...)
			return
		}
	}
}

// Alive returns the number of zombies still chasing.
func (g *Game) Alive() int {
	n := 0
	for _, z := range g.zombies {
		if z.Alive() {
			n++
		}
	}
	return n
}

// Wave returns the current wave number, starting at 1.
func (g *Game) Wave() int {
	return g.wave
}

// Health returns the player's remaining health.
func (g *Game) Health() int {
	return g.player.health
}

func (g *Game) zombieKilled() {
	g.score += g.cfg.Horde.Points
	g.env.Audio.Play(audio.EffectExplosion)
}

func (g *Game) playerDied() {
	g.gameOver = true
	g.player.SetState(actor.Paused)
	g.env.Audio.Play(audio.EffectGameOver)
	g.world.Logger().Info("game over", "score", g.score, "wave", g.wave)
}

// ProcessInput forwards the frame's input to the actors. Pause toggles here.
func (g *Game) ProcessInput(in core.InputFrame) {
	if g.world == nil || g.gameOver {
		return
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}
	g.world.ProcessInput(in)
}

// Update advances the world by dt seconds and starts the next wave once
// every zombie is down.
func (g *Game) Update(dt float64) {
	if g.world == nil || g.gameOver || g.paused {
		return
	}
	g.elapsed += dt
	g.world.Update(dt)

	if !g.gameOver && g.Alive() == 0 {
		g.nextWave()
	}
}

// Step runs the input pass then the update pass.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	g.ProcessInput(in)
	g.Update(dt)
	return core.StepResult{State: g.State()}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}
	dst.DrawBox(core.NewRect(0, 0, dst.Width(), dst.Height()))

	view := core.NewViewport(g.cfg.Field.Width, g.cfg.Field.Height, dst.Width(), dst.Height())
	g.world.DrawList().Draw(dst, view)

	hud.DrawStatus(dst, 0,
		fmt.Sprintf(" SCORE %d ", g.score),
		fmt.Sprintf(" HP %d  WAVE %d  LEFT %d ", g.player.health, g.wave, g.Alive()))

	if g.paused {
		hud.DrawMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		hud.DrawMessage(dst, "GAME OVER", fmt.Sprintf("Score %d  |  Press R to restart", g.score))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Close destroys every actor.
func (g *Game) Close() {
	if g.world != nil {
		g.world.Shutdown()
	}
	g.zombies = nil
}

// Register the game with the registry
func init() {
	registry.Register("zombies", func(env registry.Env) registry.Game {
		return New(env)
	})
}
