package gamemath

import (
	"math"
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

func square(cx, cy, side float64) Polygon {
	return Square{Center: Vec(cx, cy), Side: side}.Polygon()
}

func TestSegmentIntersection(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c, d dmath.Vec2
		want       float64
		ok         bool
	}{
		{"cross", Vec(0, 0), Vec(2, 0), Vec(1, -1), Vec(1, 1), 0.5, true},
		{"touch end", Vec(0, 0), Vec(2, 0), Vec(2, -1), Vec(2, 1), 1, true},
		{"parallel", Vec(0, 0), Vec(2, 0), Vec(0, 1), Vec(2, 1), 0, false},
		{"collinear overlap", Vec(0, 0), Vec(4, 0), Vec(1, 0), Vec(3, 0), 0.25, true},
		{"collinear apart", Vec(0, 0), Vec(1, 0), Vec(2, 0), Vec(3, 0), 0, false},
		{"miss", Vec(0, 0), Vec(1, 1), Vec(2, 0), Vec(3, -1), 0, false},
	}
	for _, tt := range tests {
		got, ok := SegmentIntersection(tt.a, tt.b, tt.c, tt.d)
		if ok != tt.ok || (ok && math.Abs(got-tt.want) > 1e-9) {
			t.Fatalf("%s: SegmentIntersection = %v, %v, want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPolygonArea(t *testing.T) {
	sq := square(0, 0, 2)
	if got := sq.SignedArea(); got != 4 {
		t.Fatalf("SignedArea = %v, want 4", got)
	}
	if got := sq.Reverse().SignedArea(); got != -4 {
		t.Fatalf("reversed SignedArea = %v, want -4", got)
	}
}

func TestContains(t *testing.T) {
	sq := square(0, 0, 2)
	if !sq.Contains(Vec(0.5, 0.5)) {
		t.Fatalf("Contains(0.5,0.5) = false, want true")
	}
	if sq.Contains(Vec(3, 0)) {
		t.Fatalf("Contains(3,0) = true, want false")
	}
	if !sq.OnBoundary(Vec(1, 0)) {
		t.Fatalf("OnBoundary(1,0) = false, want true")
	}
}

func TestIsSimple(t *testing.T) {
	if !square(0, 0, 1).IsSimple() {
		t.Fatalf("square IsSimple = false, want true")
	}
	bowtie := Polygon{Vec(0, 0), Vec(2, 2), Vec(2, 0), Vec(0, 2)}
	if bowtie.IsSimple() {
		t.Fatalf("bowtie IsSimple = true, want false")
	}
	flat := Polygon{Vec(0, 0), Vec(1, 0), Vec(2, 0)}
	if flat.IsSimple() {
		t.Fatalf("degenerate IsSimple = true, want false")
	}
}

func TestIntersects(t *testing.T) {
	a := square(0, 0, 2)
	tests := []struct {
		q    Polygon
		want bool
	}{
		{square(1.5, 0, 2), true},
		{square(0, 0, 0.5), true},
		{square(0, 0, 10), true},
		{square(5, 5, 1), false},
	}
	for _, tt := range tests {
		if got := a.Intersects(tt.q); got != tt.want {
			t.Fatalf("Intersects(%v) = %v, want %v", tt.q, got, tt.want)
		}
	}
}

func TestFirstContactLeftEdge(t *testing.T) {
	sq := square(5, 0, 2)
	var path []dmath.Vec2
	for x := 0.0; x <= 10; x += 0.5 {
		path = append(path, Vec(x, 0.3))
	}
	got, ok := sq.FirstContact(path)
	if !ok {
		t.Fatalf("FirstContact ok = false, want true")
	}
	if math.Abs(got.X-4) > 1e-9 || math.Abs(got.Y-0.3) > 1e-9 {
		t.Fatalf("FirstContact = %v, want (4, 0.3)", got)
	}

	// Reversed direction enters through the right edge.
	rev := make([]dmath.Vec2, len(path))
	for i, p := range path {
		rev[len(path)-1-i] = p
	}
	got, _ = sq.FirstContact(rev)
	if math.Abs(got.X-6) > 1e-9 {
		t.Fatalf("reversed FirstContact = %v, want x 6", got)
	}

	if _, ok := sq.FirstContact([]dmath.Vec2{Vec(0, 5), Vec(10, 5)}); ok {
		t.Fatalf("FirstContact above square ok = true, want false")
	}
}

func TestCircleTouchesPolyline(t *testing.T) {
	c := Circle{Center: Vec(0, 0), Radius: 1}
	if !c.TouchesPolyline([]dmath.Vec2{Vec(-5, 0.9), Vec(5, 0.9)}) {
		t.Fatalf("TouchesPolyline near = false, want true")
	}
	if c.TouchesPolyline([]dmath.Vec2{Vec(-5, 1.1), Vec(5, 1.1)}) {
		t.Fatalf("TouchesPolyline far = true, want false")
	}
	if c.TouchesPolyline(nil) {
		t.Fatalf("TouchesPolyline(nil) = true, want false")
	}
}
