package obstacle

import (
	"math"
	"math/rand"
	"sort"

	"github.com/automoto/mathgraph/shared/gamemath"
	clipper "github.com/ctessum/go.clipper"
	dmath "github.com/yohamta/donburi/features/math"
)

// maxSplitPasses bounds the hole splitting loop.
const maxSplitPasses = 4

// ClipConfig tunes the blast cut out of an obstacle.
type ClipConfig struct {
	Ratio       float64 // field scale, see gamemath.Bounds.Ratio
	BlastRadius float64 // before Ratio scaling
	Vertices    int
	MinWidth    int
	MaxWidth    int
	Precision   float64 // field units per integer step, before Ratio scaling
}

// DefaultClipConfig returns the stock blast settings for a field scale.
func DefaultClipConfig(ratio float64) ClipConfig {
	return ClipConfig{
		Ratio:       ratio,
		BlastRadius: 1.5,
		Vertices:    8,
		MinWidth:    85,
		MaxWidth:    100,
		Precision:   0.01,
	}
}

// Blast returns the slightly irregular polygon removed around impact,
// counter-clockwise from angle zero.
func Blast(rng *rand.Rand, impact dmath.Vec2, cfg ClipConfig) Polygon {
	widths := make([]float64, cfg.Vertices)
	var sum float64
	for i := range widths {
		widths[i] = float64(randint(rng, cfg.MinWidth, cfg.MaxWidth))
		sum += widths[i]
	}
	r := cfg.BlastRadius * cfg.Ratio
	blast := make(Polygon, len(widths))
	angle := 0.0
	for i, w := range widths {
		angle += 2 * math.Pi * w / sum
		blast[i] = gamemath.Vec(impact.X+r*math.Cos(angle), impact.Y+r*math.Sin(angle))
	}
	return blast
}

// Clip cuts a blast around impact out of obstacle and returns the remnants.
// An empty result means the obstacle is destroyed. Every remnant is a
// simple polygon without holes.
func Clip(rng *rand.Rand, obstacle Polygon, impact dmath.Vec2, cfg ClipConfig) []Polygon {
	return ClipWith(obstacle, Blast(rng, impact, cfg), cfg)
}

// ClipWith is Clip with an explicit blast polygon.
func ClipWith(obstacle, blast Polygon, cfg ClipConfig) []Polygon {
	precision := cfg.Precision / cfg.Ratio
	subject := toPath(obstacle, precision)
	cut := toPath(blast, precision)

	c := clipper.NewClipper(clipper.IoStrictlySimple)
	c.AddPath(cut, clipper.PtSubject, true)
	c.AddPath(subject, clipper.PtClip, true)
	outside, ok := c.Execute1(clipper.CtDifference, clipper.PftEvenOdd, clipper.PftEvenOdd)
	if !ok {
		return []Polygon{obstacle.Clone()}
	}
	if len(outside) == 0 {
		return nil
	}

	// a Clipper cannot be reused after Execute
	c = clipper.NewClipper(clipper.IoStrictlySimple)
	c.AddPath(subject, clipper.PtSubject, true)
	c.AddPath(cut, clipper.PtClip, true)
	rest, ok := c.Execute1(clipper.CtDifference, clipper.PftEvenOdd, clipper.PftEvenOdd)
	if !ok {
		return []Polygon{obstacle.Clone()}
	}

	rest = splitHoles(rest)
	out := make([]Polygon, 0, len(rest))
	for _, path := range rest {
		if len(path) < 3 || pathArea(path) == 0 {
			continue
		}
		out = append(out, fromPath(path, precision))
	}
	return out
}

// splitHoles cuts the region described by paths with a vertical line
// through every hole until no hole is left.
func splitHoles(paths clipper.Paths) clipper.Paths {
	for pass := 0; pass < maxSplitPasses; pass++ {
		var cuts []clipper.CInt
		for _, p := range paths {
			if pathArea(p) < 0 {
				lo, hi := pathXRange(p)
				cuts = append(cuts, (lo+hi)/2)
			}
		}
		if len(cuts) == 0 {
			return paths
		}
		paths = cutStrips(paths, cuts)
	}

	// Drop any hole that survived; its outline is still a valid obstacle.
	out := paths[:0]
	for _, p := range paths {
		if pathArea(p) > 0 {
			out = append(out, p)
		}
	}
	return out
}

func cutStrips(paths clipper.Paths, cuts []clipper.CInt) clipper.Paths {
	var minX, maxX, minY, maxY clipper.CInt
	first := true
	for _, p := range paths {
		for _, pt := range p {
			if first {
				minX, maxX, minY, maxY = pt.X, pt.X, pt.Y, pt.Y
				first = false
				continue
			}
			minX, maxX = min(minX, pt.X), max(maxX, pt.X)
			minY, maxY = min(minY, pt.Y), max(maxY, pt.Y)
		}
	}

	sort.Slice(cuts, func(i, j int) bool { return cuts[i] < cuts[j] })
	edges := append([]clipper.CInt{minX - 1}, cuts...)
	edges = append(edges, maxX+1)

	var out clipper.Paths
	for i := 0; i+1 < len(edges); i++ {
		lo, hi := edges[i], edges[i+1]
		if hi <= lo {
			continue
		}
		strip := clipper.Path{
			&clipper.IntPoint{X: lo, Y: minY - 1},
			&clipper.IntPoint{X: hi, Y: minY - 1},
			&clipper.IntPoint{X: hi, Y: maxY + 1},
			&clipper.IntPoint{X: lo, Y: maxY + 1},
		}
		c := clipper.NewClipper(clipper.IoStrictlySimple)
		c.AddPaths(paths, clipper.PtSubject, true)
		c.AddPath(strip, clipper.PtClip, true)
		part, ok := c.Execute1(clipper.CtIntersection, clipper.PftEvenOdd, clipper.PftNonZero)
		if ok {
			out = append(out, part...)
		}
	}
	return out
}

func toPath(p Polygon, precision float64) clipper.Path {
	path := make(clipper.Path, len(p))
	for i, v := range p {
		path[i] = &clipper.IntPoint{
			X: clipper.CInt(math.Round(v.X / precision)),
			Y: clipper.CInt(math.Round(v.Y / precision)),
		}
	}
	return path
}

func fromPath(path clipper.Path, precision float64) Polygon {
	p := make(Polygon, len(path))
	for i, pt := range path {
		p[i] = gamemath.Vec(float64(pt.X)*precision, float64(pt.Y)*precision)
	}
	return p
}

// pathArea is the signed shoelace area; holes come out negative.
func pathArea(p clipper.Path) float64 {
	var a float64
	for i := range p {
		j := (i + 1) % len(p)
		a += float64(p[i].X)*float64(p[j].Y) - float64(p[j].X)*float64(p[i].Y)
	}
	return a / 2
}

func pathXRange(p clipper.Path) (clipper.CInt, clipper.CInt) {
	lo, hi := p[0].X, p[0].X
	for _, pt := range p[1:] {
		lo, hi = min(lo, pt.X), max(hi, pt.X)
	}
	return lo, hi
}
