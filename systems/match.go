package systems

import (
	"github.com/automoto/mathgraph/core"
	cfg "github.com/automoto/mathgraph/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMatch returns the system that advances m by one frame.
func NewUpdateMatch(m *core.Match) func(*ecs.ECS) {
	dt := 1 / float64(cfg.C.TPS)
	return func(ecs *ecs.ECS) {
		m.Update(dt)
	}
}

// RoundEndElapsed reports whether the result of a finished round has been
// shown for EndDelay seconds.
func RoundEndElapsed(ecs *ecs.ECS) bool {
	view, ok := getView(ecs)
	if !ok || view.EndTicks == 0 {
		return false
	}
	return float64(view.EndTicks) >= cfg.Match.EndDelay*float64(cfg.C.TPS)
}
