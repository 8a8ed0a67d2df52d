package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Epsilon is the tolerance used by the geometric predicates.
const Epsilon = 1e-9

// Vec returns a point in field units.
func Vec(x, y float64) dmath.Vec2 {
	return dmath.Vec2{X: x, Y: y}
}

// Lerp returns the point a + (b-a)*t.
func Lerp(a, b dmath.Vec2, t float64) dmath.Vec2 {
	return dmath.Vec2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b dmath.Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func cross(o, a, b dmath.Vec2) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// SegmentIntersection reports whether segment ab touches segment cd and, if
// so, the parameter t along ab of the first contact (point = Lerp(a, b, t)).
// Collinear overlaps report the overlap end closest to a.
func SegmentIntersection(a, b, c, d dmath.Vec2) (float64, bool) {
	r := dmath.Vec2{X: b.X - a.X, Y: b.Y - a.Y}
	s := dmath.Vec2{X: d.X - c.X, Y: d.Y - c.Y}
	denom := r.X*s.Y - r.Y*s.X
	qp := dmath.Vec2{X: c.X - a.X, Y: c.Y - a.Y}

	if math.Abs(denom) < Epsilon {
		if math.Abs(qp.X*r.Y-qp.Y*r.X) > Epsilon {
			return 0, false
		}
		rr := r.X*r.X + r.Y*r.Y
		if rr < Epsilon {
			// ab is a point.
			if pointOnSegment(a, c, d) {
				return 0, true
			}
			return 0, false
		}
		t0 := (qp.X*r.X + qp.Y*r.Y) / rr
		t1 := t0 + (s.X*r.X+s.Y*r.Y)/rr
		lo, hi := math.Min(t0, t1), math.Max(t0, t1)
		lo = math.Max(lo, 0)
		hi = math.Min(hi, 1)
		if lo > hi+Epsilon {
			return 0, false
		}
		return lo, true
	}

	t := (qp.X*s.Y - qp.Y*s.X) / denom
	u := (qp.X*r.Y - qp.Y*r.X) / denom
	if t < -Epsilon || t > 1+Epsilon || u < -Epsilon || u > 1+Epsilon {
		return 0, false
	}
	return math.Min(math.Max(t, 0), 1), true
}

// SegmentsIntersect reports whether segments ab and cd share a point.
func SegmentsIntersect(a, b, c, d dmath.Vec2) bool {
	_, ok := SegmentIntersection(a, b, c, d)
	return ok
}

func pointOnSegment(p, a, b dmath.Vec2) bool {
	if math.Abs(cross(a, b, p)) > Epsilon {
		return false
	}
	return p.X >= math.Min(a.X, b.X)-Epsilon && p.X <= math.Max(a.X, b.X)+Epsilon &&
		p.Y >= math.Min(a.Y, b.Y)-Epsilon && p.Y <= math.Max(a.Y, b.Y)+Epsilon
}

// SegmentDistance returns the distance from p to the segment ab.
func SegmentDistance(p, a, b dmath.Vec2) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	ll := dx*dx + dy*dy
	if ll < Epsilon {
		return Distance(p, a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / ll
	t = math.Min(math.Max(t, 0), 1)
	return Distance(p, dmath.Vec2{X: a.X + dx*t, Y: a.Y + dy*t})
}
