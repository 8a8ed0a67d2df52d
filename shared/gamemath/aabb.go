package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// AABB is an axis-aligned bounding box in field units.
type AABB struct {
	MinX, MinY, MaxX, MaxY float64
}

// BoundsOf returns the bounding box of pts. The zero AABB is returned for
// an empty slice.
func BoundsOf(pts []dmath.Vec2) AABB {
	if len(pts) == 0 {
		return AABB{}
	}
	b := AABB{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}

func (b AABB) Width() float64  { return b.MaxX - b.MinX }
func (b AABB) Height() float64 { return b.MaxY - b.MinY }

// Overlaps reports whether the boxes share any point, edges included.
func (b AABB) Overlaps(o AABB) bool {
	return b.MinX <= o.MaxX && o.MinX <= b.MaxX && b.MinY <= o.MaxY && o.MinY <= b.MaxY
}

// Expand grows the box by d on every side.
func (b AABB) Expand(d float64) AABB {
	return AABB{MinX: b.MinX - d, MinY: b.MinY - d, MaxX: b.MaxX + d, MaxY: b.MaxY + d}
}
