package components

import (
	"github.com/automoto/mathgraph/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Teams. The left team fires towards +x, the right team towards -x.
const (
	TeamLeft  = 0
	TeamRight = 1
)

type PlayerData struct {
	ID       int
	Name     string
	Team     int
	Bot      bool
	Alive    bool
	Position math.Vec2
	Size     float64 // side of the footprint square
	Hitbox   gamemath.Circle
}

// Footprint is the square obstacles must keep clear of.
func (p *PlayerData) Footprint() gamemath.Square {
	return gamemath.Square{Center: p.Position, Side: p.Size}
}

// Direction is the sign of the x step of this player's shots.
func (p *PlayerData) Direction() float64 {
	if p.Team == TeamRight {
		return -1
	}
	return 1
}

var Player = donburi.NewComponentType[PlayerData]()
