// Package asteroids implements an Asteroids clone on the actor/component
// model: a wrapping field, a tank-steered ship, lasers and waves of rocks.
package asteroids

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/actor-arcade/internal/actor"
	"github.com/vovakirdan/actor-arcade/internal/audio"
	"github.com/vovakirdan/actor-arcade/internal/config"
	"github.com/vovakirdan/actor-arcade/internal/core"
	"github.com/vovakirdan/actor-arcade/internal/games/hud"
	"github.com/vovakirdan/actor-arcade/internal/registry"
)

// Draw orders.
const (
	rockDrawOrder  = 100
	laserDrawOrder = 120
	shipDrawOrder  = 150
)

// Game implements the Asteroids game logic.
type Game struct {
	env        registry.Env
	cfg        config.AsteroidsConfig
	runtime    core.RuntimeConfig
	world      *actor.World
	rng        *rand.Rand
	difficulty *config.DifficultyManager

	ship      *Ship
	asteroids []*Asteroid

	score    int
	lives    int
	wave     int
	gameOver bool
	paused   bool
	elapsed  float64
}

// New creates a new Asteroids game, loading its config from env.ConfigPath
// or the standard search path.
func New(env registry.Env) *Game {
	env = env.Normalize()
	cfg, err := config.LoadAsteroids(env.ConfigPath)
	if err != nil {
		env.Logger.Error("asteroids config unusable, using defaults", "err", err)
		cfg = config.DefaultAsteroidsConfig()
	}
	return NewWithConfig(env, cfg)
}

// NewWithConfig creates a game with an explicit config.
func NewWithConfig(env registry.Env, cfg config.AsteroidsConfig) *Game {
	env = env.Normalize()
	if env.Difficulty != "" {
		config.ApplyPreset(&cfg.Difficulty, env.Difficulty)
	}
	return &Game{env: env, cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "asteroids"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroids"
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
	g.asteroids = nil

	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.wave = 0
	g.gameOver = false
	g.paused = false
	g.elapsed = 0

	g.ship = newShip(g)
	g.nextWave()
}

// nextWave spawns the next batch of asteroids away from the ship.
func (g *Game) nextWave() {
	g.wave++
	base := g.cfg.Rocks.Count + (g.wave-1)*g.cfg.Gameplay.WaveGrowth
	// A wave always has at least one spawn so clearing it can end.
	count := max(g.difficulty.Count(base, g.score, g.elapsed), 1)
	speed := g.difficulty.Speed(g.cfg.Rocks.Speed, g.score, g.elapsed)

	for range count {
		g.spawnAsteroid(g.safeSpawnPoint(), g.rng.Float64()*2*math.Pi, speed)
	}
	g.world.Logger().Info("wave started", "wave", g.wave, "asteroids", count)
}

// safeSpawnPoint picks a random point outside the ship's safe radius.
func (g *Game) safeSpawnPoint() core.Vec2 {
	f := g.cfg.Field
	var p core.Vec2
	for range 32 {
		p = core.V(g.rng.Float64()*f.Width, g.rng.Float64()*f.Height)
		if g.ship == nil || p.Sub(g.ship.Position()).Length() > g.cfg.Gameplay.SafeRadius {
			break
		}
	}
	return p
}

func (g *Game) spawnAsteroid(pos core.Vec2, rotation, speed float64) *Asteroid {
	a := newAsteroid(g, pos, rotation, speed)
	g.asteroids = append(g.asteroids, a)
	return a
}

// removeAsteroid drops a from the asteroid index.
func (g *Game) removeAsteroid(a *Asteroid) {
	for i, x := range g.asteroids {
		if x == a {
			g.asteroids = append(g.asteroids[:i], g.asteroids[i+1:]...)
			return
		}
	}
}

// Asteroids returns the number of asteroids still in play.
func (g *Game) Asteroids() int {
	return len(g.asteroids)
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// Wave returns the current wave number, starting at 1.
func (g *Game) Wave() int {
	return g.wave
}

func (g *Game) destroyAsteroid(a *Asteroid) {
	a.SetState(actor.Dead)
	g.score += g.cfg.Rocks.Points
	g.env.Audio.Play(audio.EffectExplosion)
}

func (g *Game) shipHit() {
	g.lives--
	g.env.Audio.Play(audio.EffectHit)
	if g.lives <= 0 {
		g.gameOver = true
		g.ship.SetState(actor.Paused)
		g.env.Audio.Play(audio.EffectGameOver)
		g.world.Logger().Info("game over", "score", g.score, "wave", g.wave)
		return
	}
	g.ship.Respawn()
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

// Update advances the world by dt seconds and starts a new wave once the
// field is clear.
func (g *Game) Update(dt float64) {
	if g.world == nil || g.gameOver || g.paused {
		return
	}
	g.elapsed += dt
	g.world.Update(dt)

	if !g.gameOver && len(g.asteroids) == 0 {
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
	view := core.NewViewport(g.cfg.Field.Width, g.cfg.Field.Height, dst.Width(), dst.Height())
	g.world.DrawList().Draw(dst, view)

	hud.DrawStatus(dst, 0,
		fmt.Sprintf("SCORE %d", g.score),
		fmt.Sprintf("LIVES %d  WAVE %d", g.lives, g.wave))

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
	g.asteroids = nil
}

// Register the game with the registry
func init() {
	registry.Register("asteroids", func(env registry.Env) registry.Game {
		return New(env)
	})
}
