package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Polygon is a closed ring of vertices; the last vertex connects back to
// the first.
type Polygon []dmath.Vec2

// SignedArea is positive for counter-clockwise rings.
func (p Polygon) SignedArea() float64 {
	var a float64
	for i := range p {
		j := (i + 1) % len(p)
		a += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return a / 2
}

func (p Polygon) Area() float64 { return math.Abs(p.SignedArea()) }

func (p Polygon) Bounds() AABB { return BoundsOf(p) }

// Edge returns the i-th edge.
func (p Polygon) Edge(i int) (dmath.Vec2, dmath.Vec2) {
	return p[i], p[(i+1)%len(p)]
}

// Clone returns a copy that does not share storage with p.
func (p Polygon) Clone() Polygon {
	return append(Polygon(nil), p...)
}

// Contains reports whether pt lies strictly inside p (even-odd rule).
func (p Polygon) Contains(pt dmath.Vec2) bool {
	inside := false
	for i, j := 0, len(p)-1; i < len(p); j, i = i, i+1 {
		a, b := p[i], p[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			x := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if pt.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// OnBoundary reports whether pt lies on one of the edges of p.
func (p Polygon) OnBoundary(pt dmath.Vec2) bool {
	for i := range p {
		a, b := p.Edge(i)
		if pointOnSegment(pt, a, b) {
			return true
		}
	}
	return false
}

// IsSimple reports whether p has at least three vertices, a non-zero area
// and no two non-adjacent edges touching.
func (p Polygon) IsSimple() bool {
	n := len(p)
	if n < 3 || p.Area() < Epsilon {
		return false
	}
	for i := 0; i < n; i++ {
		a, b := p.Edge(i)
		if Distance(a, b) < Epsilon {
			return false
		}
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			c, d := p.Edge(j)
			if SegmentsIntersect(a, b, c, d) {
				return false
			}
		}
	}
	return true
}

// Intersects reports whether p and q share any point.
func (p Polygon) Intersects(q Polygon) bool {
	if len(p) == 0 || len(q) == 0 || !p.Bounds().Overlaps(q.Bounds()) {
		return false
	}
	for i := range p {
		a, b := p.Edge(i)
		for j := range q {
			c, d := q.Edge(j)
			if SegmentsIntersect(a, b, c, d) {
				return true
			}
		}
	}
	return p.Contains(q[0]) || q.Contains(p[0])
}

// FirstContact walks the polyline path from its first point and returns
// the first point touching p: a vertex already inside, or the nearest edge
// crossing on the first segment that crosses.
func (p Polygon) FirstContact(path []dmath.Vec2) (dmath.Vec2, bool) {
	if len(p) < 3 || len(path) == 0 {
		return dmath.Vec2{}, false
	}
	if !p.Bounds().Overlaps(BoundsOf(path)) {
		return dmath.Vec2{}, false
	}
	if p.Contains(path[0]) {
		return path[0], true
	}
	for k := 0; k+1 < len(path); k++ {
		a, b := path[k], path[k+1]
		best, hit := math.Inf(1), false
		for i := range p {
			c, d := p.Edge(i)
			if t, ok := SegmentIntersection(a, b, c, d); ok && t < best {
				best, hit = t, true
			}
		}
		if hit {
			return Lerp(a, b, best), true
		}
		if p.Contains(b) {
			return b, true
		}
	}
	if len(path) == 1 && p.OnBoundary(path[0]) {
		return path[0], true
	}
	return dmath.Vec2{}, false
}

// Translate returns p moved by d.
func (p Polygon) Translate(d dmath.Vec2) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = dmath.Vec2{X: v.X + d.X, Y: v.Y + d.Y}
	}
	return out
}

// Reverse returns p with the opposite winding.
func (p Polygon) Reverse() Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}
