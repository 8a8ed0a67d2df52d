package trajectory

import (
	"math"

	"github.com/automoto/mathgraph/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Resolv tags for the broad phase.
const (
	TagObstacle = "obstacle"
	TagPlayer   = "player"
)

const (
	spaceScale = 4 // space units per field unit
	cellSize   = 8
	// resolv drops the last space unit of a box when mapping it to cells,
	// so boxes touching at a cell boundary would share no cell.
	pad = 2.0 / spaceScale
)

// Broadphase keeps obstacle and hitbox AABBs in a resolv space so a batch
// only runs the exact tests against nearby shapes.
type Broadphase struct {
	space     *resolv.Space
	bounds    gamemath.Bounds
	obstacles map[donburi.Entity]*resolv.Object
	players   map[int]*resolv.Object
}

func NewBroadphase(b gamemath.Bounds) *Broadphase {
	w := int(math.Ceil(2*b.XEdge*spaceScale)) + 2*cellSize
	h := int(math.Ceil(2*b.YEdge*spaceScale)) + 2*cellSize
	return &Broadphase{
		space:     resolv.NewSpace(w, h, cellSize, cellSize),
		bounds:    b,
		obstacles: make(map[donburi.Entity]*resolv.Object),
		players:   make(map[int]*resolv.Object),
	}
}

// object builds a resolv object covering box, clamped to the field.
func (bp *Broadphase) object(box gamemath.AABB, tags ...string) *resolv.Object {
	box = bp.clamp(box.Expand(pad))
	x, y := bp.toSpace(box.MinX, box.MinY)
	w := math.Max(box.Width()*spaceScale, 1)
	h := math.Max(box.Height()*spaceScale, 1)
	obj := resolv.NewObject(x, y, w, h, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	return obj
}

func (bp *Broadphase) clamp(box gamemath.AABB) gamemath.AABB {
	limit := gamemath.AABB{MinX: -bp.bounds.XEdge, MinY: -bp.bounds.YEdge, MaxX: bp.bounds.XEdge, MaxY: bp.bounds.YEdge}.Expand(1)
	box.MinX = math.Min(math.Max(box.MinX, limit.MinX), limit.MaxX)
	box.MaxX = math.Min(math.Max(box.MaxX, limit.MinX), limit.MaxX)
	box.MinY = math.Min(math.Max(box.MinY, limit.MinY), limit.MaxY)
	box.MaxY = math.Min(math.Max(box.MaxY, limit.MinY), limit.MaxY)
	return box
}

func (bp *Broadphase) toSpace(x, y float64) (float64, float64) {
	return (x+bp.bounds.XEdge)*spaceScale + cellSize, (y+bp.bounds.YEdge)*spaceScale + cellSize
}

func (bp *Broadphase) AddObstacle(h donburi.Entity, p gamemath.Polygon) {
	bp.RemoveObstacle(h)
	obj := bp.object(p.Bounds(), TagObstacle)
	obj.Data = h
	bp.space.Add(obj)
	bp.obstacles[h] = obj
}

func (bp *Broadphase) RemoveObstacle(h donburi.Entity) {
	if obj, ok := bp.obstacles[h]; ok {
		bp.space.Remove(obj)
		delete(bp.obstacles, h)
	}
}

// SetPlayer adds or moves the hitbox of player id.
func (bp *Broadphase) SetPlayer(id int, c gamemath.Circle) {
	bp.RemovePlayer(id)
	obj := bp.object(c.Bounds(), TagPlayer)
	obj.Data = id
	bp.space.Add(obj)
	bp.players[id] = obj
}

func (bp *Broadphase) RemovePlayer(id int) {
	if obj, ok := bp.players[id]; ok {
		bp.space.Remove(obj)
		delete(bp.players, id)
	}
}

// Clear removes every shape.
func (bp *Broadphase) Clear() {
	for h := range bp.obstacles {
		bp.RemoveObstacle(h)
	}
	for id := range bp.players {
		bp.RemovePlayer(id)
	}
}

// Candidates is the broad-phase answer for one batch.
type Candidates struct {
	Obstacles map[donburi.Entity]bool
	Players   map[int]bool
}

// Query returns the shapes sharing a space cell with box.
func (bp *Broadphase) Query(box gamemath.AABB) Candidates {
	c := Candidates{
		Obstacles: make(map[donburi.Entity]bool),
		Players:   make(map[int]bool),
	}
	probe := bp.object(box)
	bp.space.Add(probe)
	defer bp.space.Remove(probe)

	check := probe.Check(0, 0, TagObstacle, TagPlayer)
	if check == nil {
		return c
	}
	for _, obj := range check.Objects {
		switch data := obj.Data.(type) {
		case donburi.Entity:
			c.Obstacles[data] = true
		case int:
			c.Players[data] = true
		}
	}
	return c
}

// Box is a broad-phase entry mapped back to field units.
type Box struct {
	AABB   gamemath.AABB
	Player bool
}

// Boxes lists every tracked shape, obstacles first.
func (bp *Broadphase) Boxes() []Box {
	boxes := make([]Box, 0, len(bp.obstacles)+len(bp.players))
	for _, obj := range bp.space.Objects() {
		if obj.HasTags(TagObstacle) {
			boxes = append(boxes, Box{AABB: bp.fromSpace(obj)})
		}
	}
	for _, obj := range bp.space.Objects() {
		if obj.HasTags(TagPlayer) {
			boxes = append(boxes, Box{AABB: bp.fromSpace(obj), Player: true})
		}
	}
	return boxes
}

func (bp *Broadphase) fromSpace(obj *resolv.Object) gamemath.AABB {
	minX := (obj.X-cellSize)/spaceScale - bp.bounds.XEdge
	minY := (obj.Y-cellSize)/spaceScale - bp.bounds.YEdge
	box := gamemath.AABB{MinX: minX, MinY: minY, MaxX: minX + obj.W/spaceScale, MaxY: minY + obj.H/spaceScale}
	return box.Expand(-pad)
}
