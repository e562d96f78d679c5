package asteroids

import (
	"math"

	"github.com/vovakirdan/actor-arcade/internal/actor"
	"github.com/vovakirdan/actor-arcade/internal/assets"
	"github.com/vovakirdan/actor-arcade/internal/audio"
	"github.com/vovakirdan/actor-arcade/internal/component"
	"github.com/vovakirdan/actor-arcade/internal/core"
)

// respawnGrace is how long a respawned ship ignores collisions, in seconds.
const respawnGrace = 2.0

// headingGlyphs are ship glyphs for eight headings, counter-clockwise from east.
var headingGlyphs = []string{"→", "↗", "↑", "↖", "←", "↙", "↓", "↘"}

// headingGlyph picks the glyph closest to rotation r.
func headingGlyph(r float64) string {
	octant := int(math.Round(r/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return headingGlyphs[octant]
}

// Ship is the player's craft.
type Ship struct {
	*actor.Actor
	game *Game

	input  *component.Input
	circle *component.Circle
	sprite *component.Sprite
	base   assets.Sprite

	cooldown float64
	grace    float64
}

func newShip(g *Game) *Ship {
	s := &Ship{game: g}
	s.Actor = actor.New(g.world, s)
	s.SetPosition(core.V(g.cfg.Field.Width/2, g.cfg.Field.Height/2))
	s.SetRotation(math.Pi / 2)

	s.input = component.NewInput(s.Actor)
	s.input.MaxForwardSpeed = g.cfg.Ship.MaxForwardSpeed
	s.input.MaxAngularSpeed = g.cfg.Ship.MaxAngularSpeed
	s.input.Wrap = &component.Bounds{W: g.cfg.Field.Width, H: g.cfg.Field.Height}

	s.circle = component.NewCircle(s.Actor, g.cfg.Ship.Radius)
	s.base = g.env.Assets.Sprite("ship")
	s.sprite = component.NewSprite(s.Actor, s.base, shipDrawOrder)
	s.updateGlyph()
	return s
}

// ActorInput fires a laser when Fire is held and the cannon has cooled down.
// The laser is created mid-pass, so it joins the world next frame.
func (s *Ship) ActorInput(in core.InputFrame) {
	if in.Has(core.ActionFire) && s.cooldown <= 0 {
		newLaser(s.game, s.Position(), s.Rotation())
		s.cooldown = s.game.cfg.Ship.LaserCooldown
		s.game.env.Audio.Play(audio.EffectLaser)
	}
}

// UpdateActor ticks the cannon and checks for collisions with asteroids.
func (s *Ship) UpdateActor(dt float64) {
	s.cooldown -= dt
	s.updateGlyph()

	if s.grace > 0 {
		s.grace -= dt
		s.sprite.Visible = int(s.grace*8)%2 == 0
		return
	}
	s.sprite.Visible = true

	for _, a := range s.game.asteroids {
		if a.State() == actor.Active && component.Intersect(s.circle, a.circle) {
			s.game.shipHit()
			return
		}
	}
}

// Respawn returns the ship to the center with a short collision grace period.
func (s *Ship) Respawn() {
	s.SetPosition(core.V(s.game.cfg.Field.Width/2, s.game.cfg.Field.Height/2))
	s.SetRotation(math.Pi / 2)
	s.input.ForwardSpeed = 0
	s.input.AngularSpeed = 0
	s.grace = respawnGrace
}

// Invulnerable reports whether the ship is in its respawn grace period.
func (s *Ship) Invulnerable() bool {
	return s.grace > 0
}

func (s *Ship) updateGlyph() {
	sp := s.base
	if len(sp.Lines) == 1 {
		sp.Lines = []string{headingGlyph(s.Rotation())}
	}
	s.sprite.SetSprite(sp)
}

// Laser flies straight for a limited time and destroys the first asteroid
// it touches.
type Laser struct {
	*actor.Actor
	game *Game

	circle     *component.Circle
	deathTimer float64
}

func newLaser(g *Game, pos core.Vec2, rotation float64) *Laser {
	l := &Laser{game: g, deathTimer: g.cfg.Laser.Lifetime}
	l.Actor = actor.New(g.world, l)
	l.SetPosition(pos)
	l.SetRotation(rotation)

	mc := component.NewMove(l.Actor)
	mc.ForwardSpeed = g.cfg.Laser.Speed
	mc.Wrap = &component.Bounds{W: g.cfg.Field.Width, H: g.cfg.Field.Height}

	l.circle = component.NewCircle(l.Actor, g.cfg.Laser.Radius)
	component.NewSprite(l.Actor, g.env.Assets.Sprite("laser"), laserDrawOrder)
	return l
}

// UpdateActor expires the laser or resolves a hit.
func (l *Laser) UpdateActor(dt float64) {
	l.deathTimer -= dt
	if l.deathTimer <= 0 {
		l.SetState(actor.Dead)
		return
	}

	for _, a := range l.game.asteroids {
		if a.State() == actor.Active && component.Intersect(l.circle, a.circle) {
			l.SetState(actor.Dead)
			l.game.destroyAsteroid(a)
			return
		}
	}
}

// Asteroid drifts across the wrapping field.
type Asteroid struct {
	*actor.Actor
	game *Game

	circle *component.Circle
}

func newAsteroid(g *Game, pos core.Vec2, rotation, speed float64) *Asteroid {
	a := &Asteroid{game: g}
	a.Actor = actor.New(g.world, a)
	a.SetPosition(pos)
	a.SetRotation(rotation)

	mc := component.NewMove(a.Actor)
	mc.ForwardSpeed = speed
	mc.Wrap = &component.Bounds{W: g.cfg.Field.Width, H: g.cfg.Field.Height}

	a.circle = component.NewCircle(a.Actor, g.cfg.Rocks.Radius)
	component.NewSprite(a.Actor, g.env.Assets.Sprite("asteroid"), rockDrawOrder)
	return a
}

// UpdateActor does nothing; movement is handled by the Move component.
func (a *Asteroid) UpdateActor(float64) {}

// DestroyActor removes the asteroid from the game's index.
func (a *Asteroid) DestroyActor() {
	a.game.removeAsteroid(a)
}
