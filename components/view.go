package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ViewData is the client-side singleton fed by match events. It keeps the
// last traced path on screen after the shot has ended.
type ViewData struct {
	Trail       []math.Vec2
	TrailTeam   int
	Impacts     []math.Vec2
	Banner      string
	BannerTicks int
	Frame       int
	ShowStats   bool
	ShowDebug   bool
	EndTicks    int // ticks since the round ended, 0 while playing
}

var View = donburi.NewComponentType[ViewData]()
