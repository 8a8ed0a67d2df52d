package core

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/mathgraph/archetypes"
	"github.com/automoto/mathgraph/components"
	"github.com/automoto/mathgraph/shared/gamemath"
	"github.com/automoto/mathgraph/shared/messages"
	"github.com/automoto/mathgraph/shared/obstacle"
	"github.com/automoto/mathgraph/shared/trajectory"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ErrSpawnExhausted is returned when a player could not be placed in its
// team's half of the field.
var ErrSpawnExhausted = errors.New("player spawn attempts exhausted")

// ErrInvalidPreset is returned when a preset obstacle is not a simple
// polygon or covers a player's footprint.
var ErrInvalidPreset = errors.New("invalid preset field")

// NewRound discards the current field, respawns every player and starts a
// new round with a random first player.
func (m *Match) NewRound() error {
	m.stopBot()

	field := m.Field()
	for _, h := range field.Obstacles {
		if m.world.Valid(h) {
			m.world.Remove(h)
		}
	}
	field.Obstacles = nil
	field.Bounds = m.opts.Bounds
	field.Broadphase = trajectory.NewBroadphase(m.opts.Bounds)
	field.Round++
	if len(m.opts.Palette) > 0 {
		field.Color = m.opts.Palette[m.rng.Intn(len(m.opts.Palette))]
	}
	m.Shot().Reset()

	preset, err := m.presetObstacles()
	if err != nil {
		return fmt.Errorf("round %d: %w", field.Round, err)
	}
	if err := m.placePlayers(preset); err != nil {
		return fmt.Errorf("round %d: %w", field.Round, err)
	}

	shapes, err := m.roundObstacles(preset)
	if err != nil {
		return fmt.Errorf("round %d: %w", field.Round, err)
	}
	for _, shape := range shapes {
		field.Obstacles = append(field.Obstacles, m.spawnObstacle(shape))
	}
	log.Printf("Round %d: %d obstacles on %.1fx%.1f field", field.Round, len(shapes), 2*field.Bounds.XEdge, 2*field.Bounds.YEdge)

	for team := range m.order {
		m.rng.Shuffle(len(m.order[team]), func(i, j int) {
			m.order[team][i], m.order[team][j] = m.order[team][j], m.order[team][i]
		})
	}

	turn := m.Turn()
	turn.WinningTeam = -1
	turn.SkipVotes = make(map[int]bool)
	turn.Cursor = [2]int{-1, -1}

	messages.RegenerateEvents.Publish(m.world, messages.FieldRegenerated{Round: field.Round})

	team := m.rng.Intn(2)
	turn.Cursor[team] = m.rng.Intn(len(m.order[team]))
	m.setActive(m.order[team][turn.Cursor[team]])
	return nil
}

// presetObstacles converts the preset's obstacles, rejecting any that is
// not a simple polygon. It returns nil without a preset.
func (m *Match) presetObstacles() ([]gamemath.Polygon, error) {
	p := m.opts.Preset
	if p == nil {
		return nil, nil
	}
	shapes := make([]gamemath.Polygon, 0, len(p.Obstacles))
	for n, verts := range p.Obstacles {
		poly := make(gamemath.Polygon, len(verts))
		for i, v := range verts {
			poly[i] = gamemath.Vec(v.X, v.Y)
		}
		if !poly.IsSimple() {
			return nil, fmt.Errorf("%s obstacle %d is not a simple polygon: %w", p.Name, n, ErrInvalidPreset)
		}
		shapes = append(shapes, poly)
	}
	return shapes, nil
}

func (m *Match) roundObstacles(preset []gamemath.Polygon) ([]gamemath.Polygon, error) {
	if m.opts.Preset != nil {
		for n, shape := range preset {
			for _, p := range m.Players() {
				if shape.Intersects(p.Footprint().Polygon()) {
					return nil, fmt.Errorf("%s obstacle %d covers player %q: %w", m.opts.Preset.Name, n, p.Name, ErrInvalidPreset)
				}
			}
		}
		return preset, nil
	}

	footprints := make([]gamemath.Square, 0, len(m.players))
	for _, p := range m.Players() {
		footprints = append(footprints, p.Footprint())
	}
	return obstacle.Generate(m.rng, m.opts.Bounds, footprints, m.opts.Gen)
}

func (m *Match) spawnObstacle(shape gamemath.Polygon) donburi.Entity {
	entry := archetypes.Obstacle.Spawn(m.world)
	components.Obstacle.SetValue(entry, components.ObstacleData{Shape: shape})
	m.Field().Broadphase.AddObstacle(entry.Entity(), shape)
	return entry.Entity()
}

// placePlayers puts every player back on the field, alive. Preset spawns
// are used in file order; players beyond them get a random spot clear of
// the other players and of avoid.
func (m *Match) placePlayers(avoid []gamemath.Polygon) error {
	b := m.opts.Bounds
	size := m.opts.PlayerSize * b.Ratio()

	var spawns [2][]dmath.Vec2
	if p := m.opts.Preset; p != nil {
		for team := range spawns {
			for _, s := range p.SpawnsFor(team) {
				spawns[team] = append(spawns[team], gamemath.Vec(s.X, s.Y))
			}
		}
	}

	placed := append([]gamemath.Polygon(nil), avoid...)
	for _, entry := range m.players {
		p := components.Player.Get(entry)
		var pos dmath.Vec2
		if len(spawns[p.Team]) > 0 {
			pos, spawns[p.Team] = spawns[p.Team][0], spawns[p.Team][1:]
		} else {
			var ok bool
			pos, ok = m.randomSpawn(p.Team, size, placed)
			if !ok {
				return fmt.Errorf("player %q: %w", p.Name, ErrSpawnExhausted)
			}
		}

		p.Alive = true
		p.Position = pos
		p.Size = size
		p.Hitbox = gamemath.Circle{Center: pos, Radius: size * m.opts.HitboxScale / 2}
		placed = append(placed, p.Footprint().Polygon())
		m.Field().Broadphase.SetPlayer(p.ID, p.Hitbox)
	}
	return nil
}

// randomSpawn picks a point in the team's half, margin away from the
// edges and the centre line, whose footprint overlaps nothing in placed.
func (m *Match) randomSpawn(team int, size float64, placed []gamemath.Polygon) (dmath.Vec2, bool) {
	b := m.opts.Bounds
	margin := m.opts.SpawnMargin * b.Ratio()
	half := size / 2

	minX, maxX := margin+half, b.XEdge-margin-half
	minY, maxY := -b.YEdge+margin+half, b.YEdge-margin-half
	if minX > maxX || minY > maxY {
		return dmath.Vec2{}, false
	}

	for i := 0; i < m.opts.SpawnAttempts; i++ {
		x := minX + m.rng.Float64()*(maxX-minX)
		if team == components.TeamLeft {
			x = -x
		}
		pos := gamemath.Vec(x, minY+m.rng.Float64()*(maxY-minY))
		sq := gamemath.Square{Center: pos, Side: size}.Polygon()

		clear := true
		for _, other := range placed {
			if sq.Intersects(other) {
				clear = false
				break
			}
		}
		if clear {
			return pos, true
		}
	}
	return dmath.Vec2{}, false
}
