package actor

import (
	"math"

	"github.com/vovakirdan/actor-arcade/internal/core"
)

// Transform is a 2D affine transform applied as scale, then rotation,
// then translation:
//
//	| A  B  TX |
//	| C  D  TY |
type Transform struct {
	A, B, C, D float64
	TX, TY     float64
}

// Identity is the transform that leaves points unchanged.
var Identity = Transform{A: 1, D: 1}

// NewTransform builds scale * rotation * translation. Rotation is
// counter-clockwise on a y-down screen, matching Actor.Forward.
func NewTransform(scale, rotation float64, translation core.Vec2) Transform {
	sin, cos := math.Sincos(rotation)
	return Transform{
		A:  scale * cos,
		B:  scale * sin,
		C:  -scale * sin,
		D:  scale * cos,
		TX: translation.X,
		TY: translation.Y,
	}
}

// Apply maps a local-space point to world space.
func (t Transform) Apply(p core.Vec2) core.Vec2 {
	return core.V(
		t.A*p.X+t.B*p.Y+t.TX,
		t.C*p.X+t.D*p.Y+t.TY,
	)
}
