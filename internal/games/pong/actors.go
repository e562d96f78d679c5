package pong

import (
	"math"

	"github.com/vovakirdan/actor-arcade/internal/actor"
	"github.com/vovakirdan/actor-arcade/internal/assets"
	"github.com/vovakirdan/actor-arcade/internal/audio"
	"github.com/vovakirdan/actor-arcade/internal/component"
	"github.com/vovakirdan/actor-arcade/internal/core"
	"github.com/vovakirdan/actor-arcade/internal/games/hud"
)

// CPU state names.
const (
	StateTrack = "Track"
	StateIdle  = "Idle"
)

func newBox(a *actor.Actor, w, h float64, sp assets.Sprite, order int) *component.Box {
	return component.NewBox(a, w, h, hud.Fill(sp.Lines), sp.Color, order)
}

// Paddle is either the player's input-driven paddle or the AI-driven CPU paddle.
type Paddle struct {
	*actor.Actor
	game *Game
	// x is the paddle's fixed column; only y ever changes.
	x float64

	move  *component.Move
	input *component.Input
	ai    *component.AI
}

func newPlayerPaddle(g *Game) *Paddle {
	p := &Paddle{game: g, x: g.cfg.Paddles.Offset}
	p.Actor = actor.New(g.world, p)
	p.SetPosition(core.V(p.x, g.cfg.Field.Height/2))
	// Facing up: the forward action moves the paddle toward the top wall.
	p.SetRotation(math.Pi / 2)

	p.input = component.NewInput(p.Actor)
	p.input.MaxForwardSpeed = g.cfg.Paddles.Speed
	p.move = &p.input.Move

	newBox(p.Actor, g.cfg.Paddles.Width, g.cfg.Paddles.Height, g.env.Assets.Sprite("paddle"), paddleDrawOrder)
	return p
}

func newCPUPaddle(g *Game) *Paddle {
	p := &Paddle{game: g, x: g.cfg.Field.Width - g.cfg.Paddles.Offset}
	p.Actor = actor.New(g.world, p)
	p.SetPosition(core.V(p.x, g.cfg.Field.Height/2))

	p.move = component.NewMove(p.Actor)
	p.ai = component.NewAI(p.Actor)
	p.ai.Register(&component.StateFuncs{ID: StateTrack, OnTick: p.track})
	p.ai.Register(&component.StateFuncs{
		ID:     StateIdle,
		OnTick: p.idle,
		Enter:  func() { p.move.Velocity = core.Vec2{} },
	})
	p.ai.ChangeState(StateIdle)

	newBox(p.Actor, g.cfg.Paddles.Width, g.cfg.Paddles.Height, g.env.Assets.Sprite("paddle"), paddleDrawOrder)
	return p
}

// Bounds returns the lowest and highest y the paddle center may reach.
func (p *Paddle) Bounds() (float64, float64) {
	half := p.game.cfg.Paddles.Height / 2
	wall := p.game.cfg.Field.Thickness
	return half + wall, p.game.cfg.Field.Height - half - wall
}

// UpdateActor keeps the paddle on its column and between the walls.
func (p *Paddle) UpdateActor(float64) {
	minY, maxY := p.Bounds()
	pos := p.Position()
	want := core.V(p.x, core.ClampF(pos.Y, minY, maxY))
	if want != pos {
		p.SetPosition(want)
	}
}

// AIState returns the CPU state name, or "" for the player paddle.
func (p *Paddle) AIState() string {
	if p.ai == nil {
		return ""
	}
	return p.ai.Current()
}

// track follows the ball while it approaches.
func (p *Paddle) track(float64) {
	ball := p.game.ball
	if ball == nil || ball.Velocity().X <= 0 {
		p.ai.ChangeState(StateIdle)
		return
	}

	diff := ball.Position().Y - p.Position().Y
	if math.Abs(diff) <= p.game.cfg.CPU.DeadZone {
		p.move.Velocity = core.Vec2{}
		return
	}
	p.move.Velocity = core.V(0, sign(diff)*p.game.cfg.Paddles.Speed*p.game.cpuSkill())
}

// idle drifts back to center until the ball heads this way.
func (p *Paddle) idle(float64) {
	ball := p.game.ball
	if ball != nil && ball.Velocity().X > 0 {
		p.ai.ChangeState(StateTrack)
		return
	}

	diff := p.game.cfg.Field.Height/2 - p.Position().Y
	if math.Abs(diff) <= p.game.cfg.CPU.DeadZone {
		p.move.Velocity = core.Vec2{}
		return
	}
	p.move.Velocity = core.V(0, sign(diff)*p.game.cfg.Paddles.Speed*0.5)
}

// Ball bounces between walls and paddles and awards points when it leaves
// the field.
type Ball struct {
	*actor.Actor
	game *Game
	// x is the paddle's fixed column; only y ever changes.
	x float64

	move *component.Move
	box  *component.Box

	serveTimer float64
	serveDir   float64
}

func newBall(g *Game) *Ball {
	b := &Ball{game: g}
	b.Actor = actor.New(g.world, b)
	b.move = component.NewMove(b.Actor)
	size := g.cfg.Ball.Size
	b.box = newBox(b.Actor, size, size, g.env.Assets.Sprite("ball"), ballDrawOrder)
	return b
}

// Velocity returns the ball velocity in world units per second.
func (b *Ball) Velocity() core.Vec2 {
	return b.move.Velocity
}

// SetVelocity sets the ball velocity.
func (b *Ball) SetVelocity(v core.Vec2) {
	b.move.Velocity = v
}

// Serving reports whether the ball is waiting to be launched.
func (b *Ball) Serving() bool {
	return b.serveTimer > 0
}

// Serve centers the ball and launches it toward dir (-1 left, 1 right)
// after the serve delay. dir 0 parks the ball.
func (b *Ball) Serve(dir float64) {
	f := b.game.cfg.Field
	b.SetPosition(core.V(f.Width/2, f.Height/2))
	b.move.Velocity = core.Vec2{}
	b.serveDir = dir
	b.serveTimer = b.game.cfg.Gameplay.ServeDelay
	if dir == 0 {
		b.serveTimer = 0
		return
	}
	if b.serveTimer <= 0 {
		b.launch()
	}
}

func (b *Ball) launch() {
	cfg := b.game.cfg.Ball
	vy := cfg.MinVY + b.game.rng.Float64()*(cfg.MaxVY-cfg.MinVY)
	if b.game.rng.Intn(2) == 0 {
		vy = -vy
	}
	b.move.Velocity = core.V(b.serveDir*b.game.ballSpeed(), vy)
}

// UpdateActor runs after movement: serve countdown, wall and paddle
// bounces, then scoring.
func (b *Ball) UpdateActor(dt float64) {
	if b.serveTimer > 0 {
		b.serveTimer -= dt
		// Blink while waiting to serve.
		b.box.Hidden = int(b.serveTimer*6)%2 == 1
		if b.serveTimer <= 0 {
			b.box.Hidden = false
			b.launch()
		}
		return
	}

	g := b.game
	f := g.cfg.Field
	half := g.cfg.Ball.Size / 2
	pos := b.Position()
	v := b.move.Velocity

	top := f.Thickness + half
	bottom := f.Height - f.Thickness - half
	if pos.Y <= top && v.Y < 0 {
		pos.Y = top
		v.Y = -v.Y
		g.env.Audio.Play(audio.EffectWall)
	} else if pos.Y >= bottom && v.Y > 0 {
		pos.Y = bottom
		v.Y = -v.Y
		g.env.Audio.Play(audio.EffectWall)
	}

	for _, p := range []*Paddle{g.player, g.cpu} {
		if b.hits(p, pos, v) {
			pp := p.Position()
			v.X = clampSpeed(-v.X*g.cfg.Ball.SpeedUp, g.cfg.Ball.MaxSpeed)
			// Spin depends on where the ball met the paddle.
			offset := (pos.Y - pp.Y) / (g.cfg.Paddles.Height / 2)
			v.Y = clampSpeed(v.Y+offset*g.cfg.Ball.MinVY, g.cfg.Ball.MaxSpeed)
			pos.X = pp.X + sign(v.X)*(g.cfg.Paddles.Width/2+half)
			g.env.Audio.Play(audio.EffectPaddle)
			break
		}
	}

	b.move.Velocity = v
	b.SetPosition(pos)

	switch {
	case pos.X < 0:
		g.point(2)
	case pos.X > f.Width:
		g.point(1)
	}
}

// hits reports whether the ball overlaps p while moving toward it.
func (b *Ball) hits(p *Paddle, pos, v core.Vec2) bool {
	if p == nil {
		return false
	}
	pp := p.Position()
	if sign(pp.X-pos.X) != sign(v.X) {
		return false
	}
	cfg := b.game.cfg
	half := cfg.Ball.Size / 2
	return math.Abs(pos.X-pp.X) <= cfg.Paddles.Width/2+half &&
		math.Abs(pos.Y-pp.Y) <= cfg.Paddles.Height/2+half
}
