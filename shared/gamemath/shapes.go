package gamemath

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// Circle is a player hitbox.
type Circle struct {
	Center dmath.Vec2
	Radius float64
}

// TouchesPolyline reports whether any segment of path comes within the
// radius of the centre.
func (c Circle) TouchesPolyline(path []dmath.Vec2) bool {
	switch len(path) {
	case 0:
		return false
	case 1:
		return Distance(c.Center, path[0]) <= c.Radius
	}
	for i := 0; i+1 < len(path); i++ {
		if SegmentDistance(c.Center, path[i], path[i+1]) <= c.Radius {
			return true
		}
	}
	return false
}

func (c Circle) Bounds() AABB {
	return AABB{
		MinX: c.Center.X - c.Radius, MinY: c.Center.Y - c.Radius,
		MaxX: c.Center.X + c.Radius, MaxY: c.Center.Y + c.Radius,
	}
}

// Square is an axis-aligned square, used for the player footprint that
// obstacles must not cover.
type Square struct {
	Center dmath.Vec2
	Side   float64
}

// Polygon returns the square's corners counter-clockwise.
func (s Square) Polygon() Polygon {
	h := s.Side / 2
	return Polygon{
		{X: s.Center.X - h, Y: s.Center.Y - h},
		{X: s.Center.X + h, Y: s.Center.Y - h},
		{X: s.Center.X + h, Y: s.Center.Y + h},
		{X: s.Center.X - h, Y: s.Center.Y + h},
	}
}

func (s Square) Bounds() AABB { return BoundsOf(s.Polygon()) }

// ReferenceYEdge is the field half-height the default sizes are tuned for.
const ReferenceYEdge = 16

// Bounds describes the field: x in [-XEdge, XEdge], y in [-YEdge, YEdge].
type Bounds struct {
	XEdge, YEdge float64
}

// NewBounds derives XEdge from the field half-height and the x:y proportion.
func NewBounds(yEdge, proportion float64) Bounds {
	return Bounds{XEdge: yEdge * proportion, YEdge: yEdge}
}

// Ratio scales sizes tuned for ReferenceYEdge to this field.
func (b Bounds) Ratio() float64 { return b.YEdge / ReferenceYEdge }

func (b Bounds) Proportion() float64 { return b.XEdge / b.YEdge }
