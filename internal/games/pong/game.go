// Package pong implements Pong on the actor/component model.
// Player 1 controls the left paddle, a state-machine CPU controls the right.
package pong

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

// Visual characters for rendering
const (
	NetChar = '│'
)

// Draw orders: walls at the back, ball on top.
const (
	wallDrawOrder   = 50
	paddleDrawOrder = 100
	ballDrawOrder   = 150
)

// Game implements the Pong game logic.
type Game struct {
	env        registry.Env
	cfg        config.PongConfig
	runtime    core.RuntimeConfig
	world      *actor.World
	rng        *rand.Rand
	difficulty *config.DifficultyManager

	player *Paddle
	cpu    *Paddle
	ball   *Ball

	// Scores
	score1 int // Player 1 score
	score2 int // CPU score

	// Game state
	gameOver bool
	paused   bool
	winner   int // 1 or 2
	elapsed  float64
}

// New creates a new Pong game, loading its config from env.ConfigPath or
// the standard search path.
func New(env registry.Env) *Game {
	env = env.Normalize()
	cfg, err := config.LoadPong(env.ConfigPath)
	if err != nil {
		env.Logger.Error("pong config unusable, using defaults", "err", err)
		cfg = config.DefaultPongConfig()
	}
	return NewWithConfig(env, cfg)
}

// NewWithConfig creates a game with an explicit config.
func NewWithConfig(env registry.Env, cfg config.PongConfig) *Game {
	env = env.Normalize()
	if env.Difficulty != "" {
		config.ApplyPreset(&cfg.Difficulty, env.Difficulty)
	}
	return &Game{env: env, cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Config returns the active configuration.
func (g *Game) Config() config.PongConfig {
	return g.cfg
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

	g.score1 = 0
	g.score2 = 0
	g.gameOver = false
	g.paused = false
	g.winner = 0
	g.elapsed = 0

	g.spawnWalls()
	g.player = newPlayerPaddle(g)
	g.cpu = newCPUPaddle(g)
	g.ball = newBall(g)
	g.ball.Serve(-1)
}

func (g *Game) spawnWalls() {
	f := g.cfg.Field
	sp := g.env.Assets.Sprite("wall")
	for _, y := range []float64{f.Thickness / 2, f.Height - f.Thickness/2} {
		wall := actor.New(g.world, nil)
		wall.SetPosition(core.V(f.Width/2, y))
		newBox(wall, f.Width, f.Thickness, sp, wallDrawOrder)
	}
}

// ProcessInput forwards the frame's input to the paddles. Pause toggles here.
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

// Update advances the world by dt seconds.
func (g *Game) Update(dt float64) {
	if g.world == nil || g.gameOver || g.paused {
		return
	}
	g.elapsed += dt
	g.world.Update(dt)
}

// Step runs the input pass then the update pass.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	g.ProcessInput(in)
	g.Update(dt)
	return core.StepResult{State: g.State()}
}

// cpuSkill returns the fraction of paddle speed the CPU may use.
func (g *Game) cpuSkill() float64 {
	level := g.difficulty.Level(g.score1+g.score2, g.elapsed)
	return g.cfg.CPU.MinSkill + (g.cfg.CPU.MaxSkill-g.cfg.CPU.MinSkill)*level
}

// ballSpeed returns the serve speed for the current difficulty.
func (g *Game) ballSpeed() float64 {
	return g.difficulty.Speed(g.cfg.Ball.SpeedX, g.score1+g.score2, g.elapsed)
}

// point awards a point and serves toward the player who conceded it.
func (g *Game) point(scorer int) {
	if scorer == 1 {
		g.score1++
	} else {
		g.score2++
	}
	g.env.Audio.Play(audio.EffectScore)

	switch {
	case g.score1 >= g.cfg.Gameplay.WinScore:
		g.endGame(1)
	case g.score2 >= g.cfg.Gameplay.WinScore:
		g.endGame(2)
	case scorer == 1:
		g.ball.Serve(1)
	default:
		g.ball.Serve(-1)
	}
}

func (g *Game) endGame(winner int) {
	g.gameOver = true
	g.winner = winner
	g.ball.Serve(0)
	g.env.Audio.Play(audio.EffectGameOver)
	g.world.Logger().Info("match over", "winner", winner, "score", fmt.Sprintf("%d-%d", g.score1, g.score2))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}
	view := core.NewViewport(g.cfg.Field.Width, g.cfg.Field.Height, dst.Width(), dst.Height())

	// Draw center line (net)
	centerX := dst.Width() / 2
	for y := 1; y < dst.Height()-1; y += 2 {
		dst.SetColored(centerX, y, NetChar, core.ColorGray)
	}

	g.world.DrawList().Draw(dst, view)

	// Draw scores
	dst.DrawText(centerX-5, 0, fmt.Sprintf("%d", g.score1))
	dst.DrawText(centerX+4, 0, fmt.Sprintf("%d", g.score2))
	hud.DrawStatus(dst, 0, "P1", "CPU")

	if g.paused {
		hud.DrawMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		var msg string
		if g.winner == 1 {
			msg = "YOU WIN!"
		} else {
			msg = "CPU WINS!"
		}
		hud.DrawMessage(dst, msg, fmt.Sprintf("%d - %d  |  Press R to restart", g.score1, g.score2))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score1, // Report player's score
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Close destroys every actor.
func (g *Game) Close() {
	if g.world != nil {
		g.world.Shutdown()
	}
}

// sign returns -1, 0 or 1.
func sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// clampSpeed limits |v| to max.
func clampSpeed(v, max float64) float64 {
	if math.Abs(v) > max {
		return math.Copysign(max, v)
	}
	return v
}

// Register the game with the registry
func init() {
	registry.Register("pong", func(env registry.Env) registry.Game {
		return New(env)
	})
}
