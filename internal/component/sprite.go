package component

import (
	"math"

	"github.com/vovakirdan/actor-arcade/internal/actor"
	"github.com/vovakirdan/actor-arcade/internal/assets"
	"github.com/vovakirdan/actor-arcade/internal/core"
)

// DefaultDrawOrder is the draw order for sprites that don't care about layering.
const DefaultDrawOrder = 100

// Sprite draws a glyph sprite centered on its owner. It is in the
// world's draw list exactly while it is attached to its owner.
type Sprite struct {
	actor.Base

	sprite    assets.Sprite
	drawOrder int
	// Color overrides the sprite's own color when not ColorDefault.
	Color   core.Color
	Visible bool
}

// NewSprite attaches a sprite component and registers it for drawing.
func NewSprite(owner *actor.Actor, sprite assets.Sprite, drawOrder int) *Sprite {
	return actor.Attach(&Sprite{
		Base:      actor.NewBase(owner, actor.DefaultUpdateOrder),
		sprite:    sprite,
		drawOrder: drawOrder,
		Visible:   true,
	})
}

// DrawOrder returns the layering key; lower draws further back.
func (s *Sprite) DrawOrder() int {
	return s.drawOrder
}

// SetSprite swaps the displayed sprite.
func (s *Sprite) SetSprite(sp assets.Sprite) {
	s.sprite = sp
}

// Current returns the displayed sprite.
func (s *Sprite) Current() assets.Sprite {
	return s.sprite
}

// Draw paints the sprite onto dst. Spaces are transparent.
func (s *Sprite) Draw(dst *core.Screen, view core.Viewport) {
	if !s.Visible {
		return
	}
	color := s.sprite.Color
	if s.Color != core.ColorDefault {
		color = s.Color
	}

	cx, cy := view.Project(s.Owner().Position())
	x0 := cx - s.sprite.Width()/2
	y0 := cy - s.sprite.Height()/2
	for dy, line := range s.sprite.Lines {
		dx := 0
		for _, r := range line {
			if r != ' ' {
				dst.SetColored(x0+dx, y0+dy, r, color)
			}
			dx++
		}
	}
}

// Attach registers the sprite with the draw list.
func (s *Sprite) Attach() {
	s.Owner().World().DrawList().Add(s)
}

// Destroy removes the sprite from the draw list.
func (s *Sprite) Destroy() {
	s.Owner().World().DrawList().Remove(s)
}

// AnimSprite cycles through animation frames at a fixed rate.
type AnimSprite struct {
	Sprite

	frames []assets.Sprite
	fps    float64
	frame  float64
}

// NewAnimSprite attaches an animated sprite. An animation with no frames
// draws a placeholder.
func NewAnimSprite(owner *actor.Actor, anim assets.Animation, drawOrder int) *AnimSprite {
	first := assets.Placeholder(anim.Name)
	if len(anim.Frames) > 0 {
		first = anim.Frames[0]
	}
	return actor.Attach(&AnimSprite{
		Sprite: Sprite{
			Base:      actor.NewBase(owner, actor.DefaultUpdateOrder),
			sprite:    first,
			drawOrder: drawOrder,
			Visible:   true,
		},
		frames: anim.Frames,
		fps:    anim.FPS,
	})
}

// SetFPS changes the playback rate.
func (s *AnimSprite) SetFPS(fps float64) {
	s.fps = fps
}

// Frame returns the index of the displayed frame.
func (s *AnimSprite) Frame() int {
	return int(s.frame)
}

// Update advances the animation by fps*dt frames, wrapping around in either
// direction.
func (s *AnimSprite) Update(dt float64) {
	n := float64(len(s.frames))
	if n == 0 {
		return
	}
	s.frame = math.Mod(s.frame+s.fps*dt, n)
	if s.frame < 0 {
		s.frame += n
	}
	if s.frame >= n {
		s.frame = 0
	}
	s.sprite = s.frames[int(s.frame)]
}

func (s *AnimSprite) Attach() {
	s.Owner().World().DrawList().Add(s)
}

// Destroy removes the sprite from the draw list.
func (s *AnimSprite) Destroy() {
	s.Owner().World().DrawList().Remove(s)
}

// Box draws a filled world-space rectangle centered on its owner: Pong's
// paddles, ball and walls.
type Box struct {
	actor.Base

	W, H      float64
	Fill      rune
	Color     core.Color
	Hidden    bool
	drawOrder int
}

// NewBox attaches a box drawable of size w x h world units.
func NewBox(owner *actor.Actor, w, h float64, fill rune, color core.Color, drawOrder int) *Box {
	return actor.Attach(&Box{
		Base:      actor.NewBase(owner, actor.DefaultUpdateOrder),
		W:         w,
		H:         h,
		Fill:      fill,
		Color:     color,
		drawOrder: drawOrder,
	})
}

// DrawOrder returns the layering key.
func (b *Box) DrawOrder() int {
	return b.drawOrder
}

// Draw fills the projected rectangle.
func (b *Box) Draw(dst *core.Screen, view core.Viewport) {
	if b.Hidden {
		return
	}
	r := view.ProjectRect(b.Owner().Position(), b.W, b.H)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, y, b.Fill, b.Color)
		}
	}
}

func (b *Box) Attach() {
	b.Owner().World().DrawList().Add(b)
}

// Destroy removes the box from the draw list.
func (b *Box) Destroy() {
	b.Owner().World().DrawList().Remove(b)
}
