package components

import (
	"github.com/automoto/mathgraph/shared/gamemath"
	"github.com/yohamta/donburi"
)

type ObstacleData struct {
	Shape gamemath.Polygon
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
