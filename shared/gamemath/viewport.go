package gamemath

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// Viewport maps field units (y up) to screen pixels (y down). The field
// keeps its proportion and is centred in the area above the input panel.
type Viewport struct {
	CenterX, CenterY float64
	Scale            float64 // pixels per field unit
	Bounds           Bounds
}

// NewViewport fits b into a width x height area with margin on every side.
func NewViewport(b Bounds, width, height, margin float64) Viewport {
	sx := (width - 2*margin) / (2 * b.XEdge)
	sy := (height - 2*margin) / (2 * b.YEdge)
	scale := sx
	if sy < scale {
		scale = sy
	}
	return Viewport{
		CenterX: width / 2,
		CenterY: height / 2,
		Scale:   scale,
		Bounds:  b,
	}
}

// ToScreen converts a field point to screen coordinates.
func (v Viewport) ToScreen(p dmath.Vec2) (float32, float32) {
	return float32(v.CenterX + p.X*v.Scale), float32(v.CenterY - p.Y*v.Scale)
}

// ToField converts a screen position to field coordinates.
func (v Viewport) ToField(x, y float64) dmath.Vec2 {
	return dmath.Vec2{X: (x - v.CenterX) / v.Scale, Y: (v.CenterY - y) / v.Scale}
}

// Rect returns the screen rectangle of the whole field.
func (v Viewport) Rect() (x, y, w, h float32) {
	x0, y0 := v.ToScreen(dmath.Vec2{X: -v.Bounds.XEdge, Y: v.Bounds.YEdge})
	x1, y1 := v.ToScreen(dmath.Vec2{X: v.Bounds.XEdge, Y: -v.Bounds.YEdge})
	return x0, y0, x1 - x0, y1 - y0
}
