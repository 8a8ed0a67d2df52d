// Package obstacle generates the polygonal obstacles of a field and clips
// them when a shot hits.
package obstacle

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/automoto/mathgraph/shared/gamemath"
)

// ErrGenerationExhausted is returned when an obstacle could not be placed
// within GenConfig.MaxAttempts candidates.
var ErrGenerationExhausted = errors.New("obstacle: placement attempts exhausted")

// Polygon is an obstacle outline in field units.
type Polygon = gamemath.Polygon

// GenConfig tunes obstacle generation.
type GenConfig struct {
	Density       float64 // average obstacle frequency in percent
	MaxProportion float64 // x:y proportion the density is tuned for
	MinVertices   int
	MaxVertices   int
	MinWidth      int // relative angular width of one vertex step
	MaxWidth      int
	MaxAttempts   int // candidates tried per obstacle
}

// DefaultGenConfig returns the stock generation settings.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Density:       20,
		MaxProportion: 2.383,
		MinVertices:   3,
		MaxVertices:   20,
		MinWidth:      35,
		MaxWidth:      100,
		MaxAttempts:   500,
	}
}

// TargetCount returns the number of obstacles to place before jitter.
func (c GenConfig) TargetCount(b gamemath.Bounds) int {
	return int(c.Density * 0.8 * b.Proportion() / c.MaxProportion)
}

// Generate places random, pairwise disjoint obstacles that avoid the
// player footprints.
func Generate(rng *rand.Rand, b gamemath.Bounds, players []gamemath.Square, cfg GenConfig) ([]Polygon, error) {
	count := int(float64(cfg.TargetCount(b)) * (1 + uniform(rng, -0.15, 0.15)))

	footprints := make([]Polygon, len(players))
	for i, sq := range players {
		footprints[i] = sq.Polygon()
	}

	placed := make([]Polygon, 0, count)
	for i := 0; i < count; i++ {
		poly, err := place(rng, b, placed, footprints, cfg)
		if err != nil {
			return nil, fmt.Errorf("obstacle %d of %d: %w", i+1, count, err)
		}
		placed = append(placed, poly)
	}
	return placed, nil
}

func place(rng *rand.Rand, b gamemath.Bounds, placed, footprints []Polygon, cfg GenConfig) (Polygon, error) {
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		poly, ok := candidate(rng, b, cfg)
		if !ok || overlapsAny(poly, placed) || overlapsAny(poly, footprints) {
			continue
		}
		return poly, nil
	}
	return nil, ErrGenerationExhausted
}

// candidate draws one star-shaped polygon: vertices walk clockwise around
// a centre at smoothed random radii.
func candidate(rng *rand.Rand, b gamemath.Bounds, cfg GenConfig) (Polygon, bool) {
	ratio := b.Ratio()
	vertices := randint(rng, cfg.MinVertices, cfg.MaxVertices)
	maxRadius := math.Floor(uniform(rng, ratio, 8*ratio+0.25*ratio*float64(vertices)))
	maxRadius = math.Min(maxRadius, math.Min(b.XEdge, b.YEdge))
	if maxRadius <= 0 {
		return nil, false
	}

	widths := make([]float64, vertices)
	var sum float64
	for i := range widths {
		widths[i] = float64(randint(rng, cfg.MinWidth, cfg.MaxWidth))
		sum += widths[i]
	}

	cx := uniform(rng, maxRadius-b.XEdge, b.XEdge-maxRadius)
	cy := uniform(rng, maxRadius-b.YEdge, b.YEdge-maxRadius)

	poly := make(Polygon, vertices)
	angle, last := 0.0, 0.75
	for i, w := range widths {
		angle -= 2 * math.Pi * w / sum
		scale := (uniform(rng, 0.25, 1) + last/2) * 2 / 3
		last = scale
		poly[i] = gamemath.Vec(cx+scale*maxRadius*math.Cos(angle), cy+scale*maxRadius*math.Sin(angle))
	}
	return poly, true
}

func overlapsAny(p Polygon, others []Polygon) bool {
	for _, o := range others {
		if p.Intersects(o) {
			return true
		}
	}
	return false
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// randint returns an int in [lo, hi].
func randint(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
