package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/mathgraph/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	debugObstacle = color.RGBA{0, 255, 255, 255}
	debugPlayer   = color.RGBA{0, 0, 255, 255}
)

// DrawDebug outlines the broad-phase boxes the collision pass queries.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	view, ok := getView(ecs)
	if !ok || !view.ShowDebug {
		return
	}
	field, ok := getField(ecs)
	if !ok || field.Broadphase == nil {
		return
	}
	vp := FieldViewport(field)

	boxes := field.Broadphase.Boxes()
	for _, b := range boxes {
		c := debugObstacle
		if b.Player {
			c = debugPlayer
		}
		x0, y0 := vp.ToScreen(dmath.Vec2{X: b.AABB.MinX, Y: b.AABB.MaxY})
		x1, y1 := vp.ToScreen(dmath.Vec2{X: b.AABB.MaxX, Y: b.AABB.MinY})
		vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, c, false)
	}

	msg := fmt.Sprintf("TPS %.0f  FPS %.0f  shapes %d  obstacles %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(), len(boxes), len(field.Obstacles))
	if shot, ok := components.Shot.First(ecs.World); ok {
		msg += fmt.Sprintf("  path %d", len(components.Shot.Get(shot).Path))
	}
	ebitenutil.DebugPrintAt(screen, msg, 4, 4)
}
