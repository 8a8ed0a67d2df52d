// Package trajectory traces a formula across the field and resolves what
// the traced path runs into.
package trajectory

import (
	"fmt"

	"github.com/automoto/mathgraph/shared/formula"
	dmath "github.com/yohamta/donburi/features/math"
)

// Offset returns the vertical shift that makes the curve of expr pass
// through the shooter.
func Offset(expr *formula.Expression, shooter dmath.Vec2) (float64, error) {
	y, err := expr.Eval(shooter.X)
	if err != nil {
		return 0, fmt.Errorf("evaluate at shooter: %w", err)
	}
	return shooter.Y - y, nil
}

// Sampler produces the shot path in batches, one batch per tick.
type Sampler struct {
	expr    *formula.Expression
	x       float64
	step    float64
	yOffset float64
	samples int
}

// NewSampler starts a path at startX. step is negative for shots fired
// towards -x.
func NewSampler(expr *formula.Expression, startX, yOffset, step float64, samplesPerTick int) *Sampler {
	return &Sampler{
		expr:    expr,
		x:       startX,
		step:    step,
		yOffset: yOffset,
		samples: samplesPerTick,
	}
}

// X returns the x of the last sample taken.
func (s *Sampler) X() float64 { return s.x }

func (s *Sampler) Step() float64 { return s.step }

// Next returns samplesPerTick+1 points. The first point repeats the last
// point of the previous batch. On an evaluation error the batch stops at
// the last valid point and the error is returned with it.
func (s *Sampler) Next() ([]dmath.Vec2, error) {
	pts := make([]dmath.Vec2, 0, s.samples+1)
	x := s.x
	for i := 0; i <= s.samples; i++ {
		y, err := s.expr.Eval(x)
		if err != nil {
			return pts, err
		}
		pts = append(pts, dmath.Vec2{X: x, Y: y + s.yOffset})
		s.x = x
		x += s.step
	}
	return pts, nil
}
