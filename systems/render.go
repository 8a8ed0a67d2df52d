package systems

import (
	"image"
	"image/color"

	"github.com/automoto/mathgraph/components"
	cfg "github.com/automoto/mathgraph/config"
	"github.com/automoto/mathgraph/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	fillOp        = &ebiten.DrawTrianglesOptions{FillRule: ebiten.FillRuleEvenOdd, AntiAlias: true}
	fillVertices  []ebiten.Vertex
	fillIndices   []uint16
)

func init() {
	whiteImage.Fill(color.White)
}

// FieldViewport returns the mapping used by every field renderer: the
// field fills the screen above the formula panel.
func FieldViewport(field *components.FieldData) gamemath.Viewport {
	h := float64(cfg.C.Height) - cfg.UI.PanelHeight
	return gamemath.NewViewport(field.Bounds, float64(cfg.C.Width), h, cfg.UI.FieldMargin)
}

func getField(ecs *ecs.ECS) (*components.FieldData, bool) {
	entry, ok := components.Field.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Field.Get(entry), true
}

// DrawField renders the field background and the marked axes.
func DrawField(ecs *ecs.ECS, screen *ebiten.Image) {
	field, ok := getField(ecs)
	if !ok {
		return
	}
	vp := FieldViewport(field)
	x, y, w, h := vp.Rect()
	vector.FillRect(screen, x, y, w, h, cfg.UI.Background, false)
	vector.StrokeRect(screen, x, y, w, h, 1, cfg.UI.AxisColor, false)

	b := field.Bounds
	drawSegment(screen, vp, dmath.Vec2{X: -b.XEdge}, dmath.Vec2{X: b.XEdge}, 1, cfg.UI.AxisColor)
	drawSegment(screen, vp, dmath.Vec2{Y: -b.YEdge}, dmath.Vec2{Y: b.YEdge}, 1, cfg.UI.AxisColor)

	if !cfg.Field.AxesMarked || cfg.Field.MarksFrequency <= 0 {
		return
	}
	step := float64(cfg.Field.MarksFrequency)
	mark := float32(4)
	for v := step; v < b.XEdge; v += step {
		for _, sx := range []float64{v, -v} {
			px, py := vp.ToScreen(dmath.Vec2{X: sx})
			vector.StrokeLine(screen, px, py-mark, px, py+mark, 1, cfg.UI.AxisColor, false)
		}
	}
	for v := step; v < b.YEdge; v += step {
		for _, sy := range []float64{v, -v} {
			px, py := vp.ToScreen(dmath.Vec2{Y: sy})
			vector.StrokeLine(screen, px-mark, py, px+mark, py, 1, cfg.UI.AxisColor, false)
		}
	}
}

// DrawObstacles fills every obstacle with the colour of the round.
func DrawObstacles(ecs *ecs.ECS, screen *ebiten.Image) {
	field, ok := getField(ecs)
	if !ok {
		return
	}
	vp := FieldViewport(field)
	fill := field.Color
	fill.A = cfg.Obstacle.FillAlpha
	border := field.Color
	border.A = cfg.Obstacle.BorderAlpha

	for _, h := range field.Obstacles {
		if !ecs.World.Valid(h) {
			continue
		}
		shape := components.Obstacle.Get(ecs.World.Entry(h)).Shape
		fillPolygon(screen, vp, shape, fill)
		for i := range shape {
			a, b := shape.Edge(i)
			drawSegment(screen, vp, a, b, 1, border)
		}
	}
}

// DrawTrail renders the path of the shot in flight, or of the last shot.
func DrawTrail(ecs *ecs.ECS, screen *ebiten.Image) {
	field, ok := getField(ecs)
	if !ok {
		return
	}
	view, ok := getView(ecs)
	if !ok {
		return
	}
	vp := FieldViewport(field)
	for i := 1; i < len(view.Trail); i++ {
		drawSegment(screen, vp, view.Trail[i-1], view.Trail[i], cfg.UI.LineWidth, cfg.UI.PathColor)
	}
	r := float32(0.25 * field.Bounds.Ratio() * vp.Scale)
	for _, p := range view.Impacts {
		x, y := vp.ToScreen(p)
		vector.StrokeCircle(screen, x, y, r, 1, cfg.UI.PathColor, true)
	}
}

// DrawPlayers renders every footprint and hitbox; the active player is
// outlined.
func DrawPlayers(ecs *ecs.ECS, screen *ebiten.Image) {
	field, ok := getField(ecs)
	if !ok {
		return
	}
	vp := FieldViewport(field)
	active := -1
	if turn, ok := getTurn(ecs); ok && turn.State != cfg.MatchStateFinished {
		active = turn.ActiveID
	}

	components.Player.Each(ecs.World, func(entry *donburi.Entry) {
		p := components.Player.Get(entry)
		clr := teamColor(p.Team)
		if !p.Alive {
			clr = cfg.UI.DeadPlayer
		}

		x, y := vp.ToScreen(p.Position)
		r := float32(p.Hitbox.Radius * vp.Scale)
		vector.FillCircle(screen, x, y, r, clr, true)

		side := float32(p.Size * vp.Scale)
		outline := clr
		if p.ID == active {
			outline = cfg.UI.ActiveColor
		}
		vector.StrokeRect(screen, x-side/2, y-side/2, side, side, 1, outline, false)
	})
}

func teamColor(team int) color.RGBA {
	if team == components.TeamRight {
		return cfg.UI.RightTeam
	}
	return cfg.UI.LeftTeam
}

func drawSegment(screen *ebiten.Image, vp gamemath.Viewport, a, b dmath.Vec2, width float32, clr color.Color) {
	x0, y0 := vp.ToScreen(a)
	x1, y1 := vp.ToScreen(b)
	vector.StrokeLine(screen, x0, y0, x1, y1, width, clr, true)
}

func fillPolygon(screen *ebiten.Image, vp gamemath.Viewport, poly gamemath.Polygon, clr color.RGBA) {
	if len(poly) < 3 {
		return
	}
	var path vector.Path
	for i, p := range poly {
		x, y := vp.ToScreen(p)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	fillVertices, fillIndices = path.AppendVerticesAndIndicesForFilling(fillVertices[:0], fillIndices[:0])
	a := float32(clr.A) / 255
	r := float32(clr.R) / 255 * a
	g := float32(clr.G) / 255 * a
	b := float32(clr.B) / 255 * a
	for i := range fillVertices {
		fillVertices[i].SrcX = 1
		fillVertices[i].SrcY = 1
		fillVertices[i].ColorR = r
		fillVertices[i].ColorG = g
		fillVertices[i].ColorB = b
		fillVertices[i].ColorA = a
	}
	screen.DrawTriangles(fillVertices, fillIndices, whiteSubImage, fillOp)
}
