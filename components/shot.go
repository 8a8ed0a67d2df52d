package components

import (
	"github.com/automoto/mathgraph/shared/formula"
	"github.com/automoto/mathgraph/shared/trajectory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ShotData is the singleton for the shot in flight. Firing is false
// between shots; at most one shot exists at a time.
type ShotData struct {
	Firing    bool
	ShooterID int
	Formula   *formula.Formula
	Sampler   *trajectory.Sampler
	Path      []math.Vec2
}

// Reset clears the shot after it terminated.
func (s *ShotData) Reset() {
	*s = ShotData{}
}

var Shot = donburi.NewComponentType[ShotData]()
