package core

// Viewport maps world coordinates onto a screen of character cells.
// Games simulate in their own units (pixels for Pong's 1024x768 field) and
// the viewport scales each axis independently to fit the screen.
type Viewport struct {
	WorldW, WorldH   float64
	ScreenW, ScreenH int
}

// NewViewport creates a viewport. Non-positive world sizes fall back to the
// screen size, i.e. one world unit per cell.
func NewViewport(worldW, worldH float64, screenW, screenH int) Viewport {
	if worldW <= 0 {
		worldW = float64(screenW)
	}
	if worldH <= 0 {
		worldH = float64(screenH)
	}
	return Viewport{WorldW: worldW, WorldH: worldH, ScreenW: screenW, ScreenH: screenH}
}

// ScaleX returns cells per world unit horizontally.
func (v Viewport) ScaleX() float64 {
	if v.WorldW <= 0 {
		return 1
	}
	return float64(v.ScreenW) / v.WorldW
}

// ScaleY returns cells per world unit vertically.
func (v Viewport) ScaleY() float64 {
	if v.WorldH <= 0 {
		return 1
	}
	return float64(v.ScreenH) / v.WorldH
}

// Project converts a world position to a screen cell.
func (v Viewport) Project(p Vec2) (int, int) {
	return V(p.X*v.ScaleX(), p.Y*v.ScaleY()).Cell()
}

// ProjectRect converts a world-space box centered at c with size w x h to
// a screen rectangle at least one cell in each dimension.
func (v Viewport) ProjectRect(c Vec2, w, h float64) Rect {
	sw := max(1, int(w*v.ScaleX()+0.5))
	sh := max(1, int(h*v.ScaleY()+0.5))
	x, y := v.Project(V(c.X-w/2, c.Y-h/2))
	return NewRect(x, y, sw, sh)
}
