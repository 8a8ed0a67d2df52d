package main

import (
	"fmt"

	"github.com/automoto/mathgraph/components"
	"github.com/automoto/mathgraph/core"
	"github.com/automoto/mathgraph/shared/gamemath"
	"github.com/automoto/mathgraph/shared/messages"
	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type cellKind int

const (
	cellEmpty cellKind = iota
	cellAxis
	cellObstacle
	cellTrail
	cellLeft
	cellRight
	cellDead
	cellActive
)

// cell aspect: terminal cells are about twice as tall as wide
const cellAspect = 2

// scene is what the terminal view needs from a match.
type scene struct {
	bounds    gamemath.Bounds
	obstacles []gamemath.Polygon
	trail     []dmath.Vec2
	players   []components.PlayerData
	activeID  int
}

// rasterize draws s into a cols x rows grid. Later layers overwrite
// earlier ones: axes, obstacles, trail, players.
func rasterize(s scene, cols, rows int) [][]cellKind {
	grid := make([][]cellKind, rows)
	for r := range grid {
		grid[r] = make([]cellKind, cols)
	}
	if cols <= 0 || rows <= 0 {
		return grid
	}
	vp := gamemath.NewViewport(s.bounds, float64(cols), float64(rows*cellAspect), 0)
	toCell := func(p dmath.Vec2) (int, int, bool) {
		x, y := vp.ToScreen(p)
		c, r := int(x), int(y)/cellAspect
		return c, r, c >= 0 && c < cols && r >= 0 && r < rows
	}

	if c, _, ok := toCell(dmath.Vec2{}); ok {
		for r := 0; r < rows; r++ {
			grid[r][c] = cellAxis
		}
	}
	if _, r, ok := toCell(dmath.Vec2{}); ok {
		for c := 0; c < cols; c++ {
			grid[r][c] = cellAxis
		}
	}

	boxes := make([]gamemath.AABB, len(s.obstacles))
	for i, o := range s.obstacles {
		boxes[i] = o.Bounds()
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := vp.ToField(float64(c)+0.5, (float64(r)+0.5)*cellAspect)
			for i, o := range s.obstacles {
				b := boxes[i]
				if p.X < b.MinX || p.X > b.MaxX || p.Y < b.MinY || p.Y > b.MaxY {
					continue
				}
				if o.Contains(p) {
					grid[r][c] = cellObstacle
					break
				}
			}
		}
	}

	for _, p := range s.trail {
		if c, r, ok := toCell(p); ok {
			grid[r][c] = cellTrail
		}
	}

	for _, p := range s.players {
		c, r, ok := toCell(p.Position)
		if !ok {
			continue
		}
		switch {
		case !p.Alive:
			grid[r][c] = cellDead
		case p.ID == s.activeID:
			grid[r][c] = cellActive
		case p.Team == components.TeamLeft:
			grid[r][c] = cellLeft
		default:
			grid[r][c] = cellRight
		}
	}
	return grid
}

var cellGlyphs = [...]struct {
	ch    rune
	style tcell.Style
}{
	cellEmpty:    {' ', tcell.StyleDefault},
	cellAxis:     {'.', tcell.StyleDefault.Foreground(tcell.ColorGray)},
	cellObstacle: {'#', tcell.StyleDefault.Foreground(tcell.NewRGBColor(120, 160, 200))},
	cellTrail:    {'*', tcell.StyleDefault.Foreground(tcell.ColorYellow)},
	cellLeft:     {'L', tcell.StyleDefault.Foreground(tcell.NewRGBColor(100, 180, 255))},
	cellRight:    {'R', tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 60, 60))},
	cellDead:     {'x', tcell.StyleDefault.Foreground(tcell.ColorGray)},
	cellActive:   {'@', tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)},
}

type ttyView struct {
	screen tcell.Screen
	trail  []dmath.Vec2
}

func newTTYView() (*ttyView, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &ttyView{screen: screen}, nil
}

// Subscribe keeps the last shot path on screen until the next one starts.
func (v *ttyView) Subscribe(w donburi.World) {
	messages.SubscribeTurns(w, func(w donburi.World, e messages.TurnEvent) {
		if _, ok := e.(messages.StartFire); ok {
			v.trail = v.trail[:0]
		}
	})
	messages.PathEvents.Subscribe(w, func(w donburi.World, e messages.PathSampled) {
		v.trail = append(v.trail, e.Points...)
	})
	messages.RegenerateEvents.Subscribe(w, func(w donburi.World, e messages.FieldRegenerated) {
		v.trail = v.trail[:0]
	})
}

// PollQuit calls stop when Escape, Ctrl-C or q is pressed. It never returns
// once the screen is closed, so run it on its own goroutine.
func (v *ttyView) PollQuit(stop func()) {
	for {
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				stop()
				return
			}
		case *tcell.EventResize:
			v.screen.Sync()
		}
	}
}

func (v *ttyView) Draw(m *core.Match) {
	cols, rows := v.screen.Size()
	fieldRows := rows - 2
	if fieldRows < 1 {
		return
	}

	s := scene{
		bounds:   m.Field().Bounds,
		trail:    v.trail,
		activeID: m.ActivePlayer(),
	}
	world := m.World()
	for _, e := range m.Field().Obstacles {
		if entry := world.Entry(e); entry.Valid() {
			s.obstacles = append(s.obstacles, components.Obstacle.Get(entry).Shape)
		}
	}
	for _, p := range m.Players() {
		s.players = append(s.players, *p)
	}

	v.screen.Clear()
	for r, line := range rasterize(s, cols, fieldRows) {
		for c, k := range line {
			g := cellGlyphs[k]
			v.screen.SetContent(c, r, g.ch, nil, g.style)
		}
	}

	status := fmt.Sprintf("round %d  %s", m.Field().Round, activeLabel(m))
	v.drawText(0, fieldRows, status)
	stats := m.Stats()
	v.drawText(0, fieldRows+1, fmt.Sprintf("left %d  right %d  draws %d  (q to quit)",
		stats.TeamWins[0], stats.TeamWins[1], stats.Draws))
	v.screen.Show()
}

func activeLabel(m *core.Match) string {
	if m.Finished() {
		return "round over"
	}
	p, ok := m.Player(m.ActivePlayer())
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s to fire  %ds", p.Name, m.Turn().Seconds)
}

func (v *ttyView) drawText(x, y int, s string) {
	for i, r := range s {
		v.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

func (v *ttyView) Close() {
	v.screen.Fini()
}
