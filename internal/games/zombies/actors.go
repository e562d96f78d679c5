package zombies

import (
	"math"

	"github.com/vovakirdan/actor-arcade/internal/actor"
	"github.com/vovakirdan/actor-arcade/internal/audio"
	"github.com/vovakirdan/actor-arcade/internal/component"
	"github.com/vovakirdan/actor-arcade/internal/config"
	"github.com/vovakirdan/actor-arcade/internal/core"
)

// Zombie AI states.
const (
	StateChase = "Chase"
	StateDead  = "Dead"
)

// Player is the survivor, moved with strafe controls.
type Player struct {
	*actor.Actor
	game *Game

	input  *component.Input
	circle *component.Circle
	sprite *component.Sprite

	facing    core.Vec2
	health    int
	fireTimer float64
	hitTimer  float64
}

func newPlayer(g *Game) *Player {
	p := &Player{game: g, facing: core.V(0, -1), health: g.cfg.Player.Health}
	p.Actor = actor.New(g.world, p)
	p.SetPosition(core.V(g.cfg.Field.Width/2, g.cfg.Field.Height/2))

	p.input = component.NewInput(p.Actor)
	p.input.Mode = component.ModeStrafe
	p.input.MaxForwardSpeed = g.cfg.Player.Speed

	p.circle = component.NewCircle(p.Actor, g.cfg.Player.Radius)
	p.sprite = component.NewSprite(p.Actor, g.env.Assets.Sprite("player"), playerDrawOrder)
	return p
}

// ActorInput remembers the facing direction and fires while Fire is held.
func (p *Player) ActorInput(in core.InputFrame) {
	if v := p.input.Velocity; !core.NearZero(v.LengthSq()) {
		p.facing = v.Normalized()
	}
	if in.Has(core.ActionFire) && p.fireTimer <= 0 {
		newBullet(p.game, p.Position(), p.facing)
		p.fireTimer = 1 / max(p.game.cfg.Player.FireRate, 0.1)
		p.game.env.Audio.Play(audio.EffectLaser)
	}
}

// UpdateActor keeps the player inside the arena and resolves zombie bites.
func (p *Player) UpdateActor(dt float64) {
	p.fireTimer -= dt
	p.hitTimer -= dt

	f := p.game.cfg.Field
	r := p.game.cfg.Player.Radius
	pos := p.Position()
	clamped := core.V(core.ClampF(pos.X, r, f.Width-r), core.ClampF(pos.Y, r, f.Height-r))
	if clamped != pos {
		p.SetPosition(clamped)
	}

	if p.hitTimer > 0 {
		return
	}
	for _, z := range p.game.zombies {
		if z.Alive() && component.Intersect(p.circle, z.circle) {
			p.health -= zombieDamage
			p.hitTimer = p.game.cfg.Player.HitCooldown
			p.game.env.Audio.Play(audio.EffectHit)
			if p.health <= 0 {
				p.health = 0
				p.game.playerDied()
			}
			return
		}
	}
}

// Facing returns the direction the next bullet will travel.
func (p *Player) Facing() core.Vec2 {
	return p.facing
}

// Bullet flies in a straight line until it hits a zombie, leaves the arena
// or exceeds its range.
type Bullet struct {
	*actor.Actor
	game *Game

	circle   *component.Circle
	traveled float64
	speed    float64
}

func newBullet(g *Game, pos, dir core.Vec2) *Bullet {
	b := &Bullet{game: g, speed: g.cfg.Bullet.Speed}
	b.Actor = actor.New(g.world, b)
	b.SetPosition(pos)

	mc := component.NewMove(b.Actor)
	mc.Velocity = dir.Normalized().Scale(b.speed)

	b.circle = component.NewCircle(b.Actor, g.cfg.Bullet.Radius)
	component.NewSprite(b.Actor, g.env.Assets.Sprite("bullet"), bulletDrawOrder)
	return b
}

// UpdateActor checks range, arena bounds and hits.
func (b *Bullet) UpdateActor(dt float64) {
	b.traveled += b.speed * dt
	pos := b.Position()
	f := b.game.cfg.Field
	if b.traveled > b.game.cfg.Bullet.Range || pos.X < 0 || pos.Y < 0 || pos.X > f.Width || pos.Y > f.Height {
		b.SetState(actor.Dead)
		return
	}

	for _, z := range b.game.zombies {
		if z.Alive() && component.Intersect(b.circle, z.circle) {
			b.SetState(actor.Dead)
			z.Hit(1)
			return
		}
	}
}

// Zombie walks toward the player until shot down, then lies as a corpse for
// a while before disappearing.
type Zombie struct {
	*actor.Actor
	game *Game

	kind   config.ZombieType
	speed  float64
	health int
	corpse float64

	move   *component.Move
	circle *component.Circle
	ai     *component.AI
	anim   *component.AnimSprite
}

func newZombie(g *Game, pos core.Vec2, kind config.ZombieType, speed float64) *Zombie {
	z := &Zombie{game: g, kind: kind, speed: speed, health: kind.Health}
	z.Actor = actor.New(g.world, z)
	z.SetPosition(pos)

	z.move = component.NewMove(z.Actor)
	z.circle = component.NewCircle(z.Actor, g.cfg.Horde.Radius)
	z.anim = component.NewAnimSprite(z.Actor, g.walk, zombieDrawOrder)

	z.ai = component.NewAI(z.Actor)
	z.ai.Register(&component.StateFuncs{ID: StateChase, OnTick: z.chase})
	z.ai.Register(&component.StateFuncs{ID: StateDead, Enter: z.die, OnTick: z.rot})
	z.ai.ChangeState(StateChase)
	return z
}

// Alive reports whether the zombie is still chasing.
func (z *Zombie) Alive() bool {
	return z.ai.Current() == StateChase
}

// Kind returns the zombie's type.
func (z *Zombie) Kind() config.ZombieType {
	return z.kind
}

// Health returns the remaining health.
func (z *Zombie) Health() int {
	return z.health
}

// Hit applies damage; the zombie dies once its health reaches zero.
func (z *Zombie) Hit(damage int) {
	if !z.Alive() {
		return
	}
	z.health -= damage
	if z.health <= 0 {
		z.ai.ChangeState(StateDead)
		z.game.zombieKilled()
		return
	}
	z.game.env.Audio.Play(audio.EffectHit)
}

// chase steers toward the player.
func (z *Zombie) chase(float64) {
	to := z.game.player.Position().Sub(z.Position())
	if to.LengthSq() < 1 {
		z.move.Velocity = core.Vec2{}
		return
	}
	dir := to.Normalized()
	z.move.Velocity = dir.Scale(z.speed)
	z.SetRotation(math.Atan2(-dir.Y, dir.X))
}

// die stops the zombie and swaps its walking animation for a corpse sprite.
func (z *Zombie) die() {
	z.move.Velocity = core.Vec2{}
	z.corpse = z.game.cfg.Horde.CorpseTime
	z.RemoveComponent(z.anim)
	component.NewSprite(z.Actor, z.game.env.Assets.Sprite("zombie_dead"), corpseDrawOrder)
}

// rot counts down the corpse timer.
func (z *Zombie) rot(dt float64) {
	z.corpse -= dt
	if z.corpse <= 0 {
		z.SetState(actor.Dead)
	}
}

// UpdateActor does nothing; the AI component drives the zombie.
func (z *Zombie) UpdateActor(float64) {}

// DestroyActor removes the zombie from the horde index.
func (z *Zombie) DestroyActor() {
	z.game.removeZombie(z)
}
