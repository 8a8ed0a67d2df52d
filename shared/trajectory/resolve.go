package trajectory

import (
	"math"

	"github.com/automoto/mathgraph/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Obstacle is one entry of the obstacle table.
type Obstacle struct {
	Handle donburi.Entity
	Shape  gamemath.Polygon
}

// Target is a player hitbox that a path can cross.
type Target struct {
	ID     int
	Team   int
	Alive  bool
	Hitbox gamemath.Circle
}

// Scene is everything a batch is resolved against.
type Scene struct {
	Bounds       gamemath.Bounds
	Obstacles    []Obstacle // in table order
	Players      []Target
	ShooterID    int
	ShooterTeam  int
	FriendlyFire bool
	CurrentX     float64 // sampler x after the batch
	Broadphase   *Broadphase
}

// Termination says whether and why a batch ends the shot.
type Termination int

const (
	Continue Termination = iota
	HitObstacle
	LeftField
)

func (t Termination) String() string {
	switch t {
	case HitObstacle:
		return "hit obstacle"
	case LeftField:
		return "left field"
	default:
		return "continue"
	}
}

// Result of resolving one batch.
type Result struct {
	Termination Termination
	Obstacle    donburi.Entity // set for HitObstacle
	Point       dmath.Vec2     // entry point, or last point when leaving the field
	Killed      []int
}

// Resolve checks path against obstacles in table order, then eligible
// players, then the top/bottom and left/right field edges. An obstacle hit
// ends the batch before players are checked; kills never end the shot.
func Resolve(path []dmath.Vec2, scene Scene) Result {
	if len(path) == 0 {
		return Result{}
	}

	var cand Candidates
	if scene.Broadphase != nil {
		cand = scene.Broadphase.Query(gamemath.BoundsOf(path))
	}

	for _, o := range scene.Obstacles {
		if scene.Broadphase != nil && !cand.Obstacles[o.Handle] {
			continue
		}
		if p, ok := o.Shape.FirstContact(path); ok {
			return Result{Termination: HitObstacle, Obstacle: o.Handle, Point: p}
		}
	}

	var res Result
	for _, t := range scene.Players {
		if !eligible(t, scene) {
			continue
		}
		if scene.Broadphase != nil && !cand.Players[t.ID] {
			continue
		}
		if t.Hitbox.TouchesPolyline(path) {
			res.Killed = append(res.Killed, t.ID)
		}
	}

	last := path[len(path)-1]
	if math.Abs(last.Y) >= scene.Bounds.YEdge || math.Abs(scene.CurrentX) >= scene.Bounds.XEdge {
		res.Termination = LeftField
		res.Point = last
	}
	return res
}

func eligible(t Target, scene Scene) bool {
	if !t.Alive || t.ID == scene.ShooterID {
		return false
	}
	return scene.FriendlyFire || t.Team != scene.ShooterTeam
}
