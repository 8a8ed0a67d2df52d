package obstacle

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/mathgraph/shared/gamemath"
	clipper "github.com/ctessum/go.clipper"
)

func TestGenerateSimpleAndDisjoint(t *testing.T) {
	b := gamemath.NewBounds(16, 2.383)
	players := []gamemath.Square{
		{Center: gamemath.Vec(-20, 3), Side: 1.5},
		{Center: gamemath.Vec(20, -5), Side: 1.5},
	}
	for seed := int64(1); seed <= 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		polys, err := Generate(rng, b, players, DefaultGenConfig())
		if err != nil {
			t.Fatalf("seed %d: Generate error = %v", seed, err)
		}
		want := DefaultGenConfig().TargetCount(b)
		if lo, hi := int(float64(want)*0.85)-1, int(float64(want)*1.15)+1; len(polys) < lo || len(polys) > hi {
			t.Fatalf("seed %d: %d obstacles, want in [%d, %d]", seed, len(polys), lo, hi)
		}
		for i, p := range polys {
			if !p.IsSimple() {
				t.Fatalf("seed %d: obstacle %d is not simple", seed, i)
			}
			bb := p.Bounds()
			if bb.MinX < -b.XEdge || bb.MaxX > b.XEdge || bb.MinY < -b.YEdge || bb.MaxY > b.YEdge {
				t.Fatalf("seed %d: obstacle %d bounds %+v outside field", seed, i, bb)
			}
			for j := i + 1; j < len(polys); j++ {
				if p.Intersects(polys[j]) {
					t.Fatalf("seed %d: obstacles %d and %d intersect", seed, i, j)
				}
			}
			for _, sq := range players {
				if p.Intersects(sq.Polygon()) {
					t.Fatalf("seed %d: obstacle %d covers player at %v", seed, i, sq.Center)
				}
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	b := gamemath.NewBounds(16, 2.383)
	a, _ := Generate(rand.New(rand.NewSource(42)), b, nil, DefaultGenConfig())
	c, _ := Generate(rand.New(rand.NewSource(42)), b, nil, DefaultGenConfig())
	if len(a) != len(c) {
		t.Fatalf("lengths %d and %d differ", len(a), len(c))
	}
	for i := range a {
		for k := range a[i] {
			if a[i][k] != c[i][k] {
				t.Fatalf("obstacle %d vertex %d: %v != %v", i, k, a[i][k], c[i][k])
			}
		}
	}
}

func TestGenerateExhausted(t *testing.T) {
	// A tiny field covered by a player square leaves no room.
	b := gamemath.Bounds{XEdge: 2, YEdge: 2}
	players := []gamemath.Square{{Center: gamemath.Vec(0, 0), Side: 4}}
	cfg := DefaultGenConfig()
	cfg.Density = 200
	cfg.MaxAttempts = 20
	_, err := Generate(rand.New(rand.NewSource(1)), b, players, cfg)
	if !errors.Is(err, ErrGenerationExhausted) {
		t.Fatalf("Generate error = %v, want ErrGenerationExhausted", err)
	}
}

func square(cx, cy, side float64) Polygon {
	return gamemath.Square{Center: gamemath.Vec(cx, cy), Side: side}.Polygon()
}

func TestBlastShape(t *testing.T) {
	cfg := DefaultClipConfig(1)
	blast := Blast(rand.New(rand.NewSource(3)), gamemath.Vec(2, 2), cfg)
	if len(blast) != 8 {
		t.Fatalf("blast has %d vertices, want 8", len(blast))
	}
	if blast.SignedArea() <= 0 {
		t.Fatalf("blast SignedArea = %v, want counter-clockwise", blast.SignedArea())
	}
	for _, v := range blast {
		if d := gamemath.Distance(v, gamemath.Vec(2, 2)); math.Abs(d-1.5) > 1e-9 {
			t.Fatalf("blast vertex at distance %v, want 1.5", d)
		}
	}
}

func TestClipMissReturnsInput(t *testing.T) {
	sq := square(0, 0, 4)
	got := Clip(rand.New(rand.NewSource(1)), sq, gamemath.Vec(20, 20), DefaultClipConfig(1))
	if len(got) != 1 {
		t.Fatalf("Clip returned %d polygons, want 1", len(got))
	}
	if math.Abs(got[0].Area()-sq.Area()) > 1e-6 {
		t.Fatalf("Clip area = %v, want %v", got[0].Area(), sq.Area())
	}
}

func TestClipEdgeBite(t *testing.T) {
	sq := square(0, 0, 4)
	got := Clip(rand.New(rand.NewSource(1)), sq, gamemath.Vec(-2, 0), DefaultClipConfig(1))
	if len(got) != 1 {
		t.Fatalf("Clip returned %d polygons, want 1", len(got))
	}
	if !got[0].IsSimple() {
		t.Fatalf("remnant is not simple: %v", got[0])
	}
	if a := got[0].Area(); a >= sq.Area() || a < sq.Area()-math.Pi*1.5*1.5 {
		t.Fatalf("remnant area = %v, want between %v and %v", a, sq.Area()-math.Pi*1.5*1.5, sq.Area())
	}
}

func TestClipConsumesSmallObstacle(t *testing.T) {
	got := Clip(rand.New(rand.NewSource(1)), square(0, 0, 1), gamemath.Vec(0, 0), DefaultClipConfig(1))
	if len(got) != 0 {
		t.Fatalf("Clip returned %d polygons, want 0", len(got))
	}
}

func TestClipSplitsThinBar(t *testing.T) {
	bar := Polygon{
		gamemath.Vec(-5, -0.5), gamemath.Vec(5, -0.5),
		gamemath.Vec(5, 0.5), gamemath.Vec(-5, 0.5),
	}
	got := Clip(rand.New(rand.NewSource(1)), bar, gamemath.Vec(0, 0), DefaultClipConfig(1))
	if len(got) != 2 {
		t.Fatalf("Clip returned %d polygons, want 2", len(got))
	}
	for _, p := range got {
		if !p.IsSimple() {
			t.Fatalf("remnant is not simple: %v", p)
		}
	}
}

func TestSplitHoles(t *testing.T) {
	cfg := DefaultClipConfig(1)
	outer := toPath(square(0, 0, 10), cfg.Precision)
	hole := toPath(square(0, 0, 2).Reverse(), cfg.Precision)
	got := splitHoles(clipper.Paths{outer, hole})
	if len(got) < 2 {
		t.Fatalf("splitHoles returned %d paths, want the holed square split", len(got))
	}
	var area float64
	for _, path := range got {
		p := fromPath(path, cfg.Precision)
		if p.SignedArea() <= 0 {
			t.Fatalf("path %v has a hole orientation", p)
		}
		if !p.IsSimple() {
			t.Fatalf("path is not simple: %v", p)
		}
		area += p.Area()
	}
	if math.Abs(area-96) > 1e-3 {
		t.Fatalf("total area = %v, want 96", area)
	}
}

func TestClipBlastInsideConsumes(t *testing.T) {
	got := Clip(rand.New(rand.NewSource(1)), square(0, 0, 10), gamemath.Vec(0, 0), DefaultClipConfig(1))
	if len(got) != 0 {
		t.Fatalf("Clip returned %d polygons, want 0", len(got))
	}
}

func TestClipWithBitesExactArea(t *testing.T) {
	got := ClipWith(square(0, 0, 4), square(-2, 0, 2), DefaultClipConfig(1))
	if len(got) != 1 {
		t.Fatalf("ClipWith returned %d polygons, want 1", len(got))
	}
	if a := got[0].Area(); math.Abs(a-14) > 1e-6 {
		t.Fatalf("remnant area = %v, want 14", a)
	}
}
