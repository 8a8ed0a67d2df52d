// Package leveldata parses preset fields from TMX files.
// It does not import ebitengine or donburi.
package leveldata

// Field is a preset battlefield converted to field units: x in
// [-XEdge, XEdge], y in [-YEdge, YEdge], y pointing up.
type Field struct {
	Name       string
	YEdge      float64
	Proportion float64 // XEdge / YEdge
	Obstacles  [][]Vertex
	Spawns     []Spawn
}

// XEdge returns the half-width of the field.
func (f *Field) XEdge() float64 { return f.YEdge * f.Proportion }

// SpawnsFor returns the spawn points of one team in file order.
func (f *Field) SpawnsFor(team int) []Spawn {
	var out []Spawn
	for _, s := range f.Spawns {
		if s.Team == team {
			out = append(out, s)
		}
	}
	return out
}

// Vertex is a polygon corner.
type Vertex struct {
	X, Y float64
}

// Spawn is a player start position. Team is 0 (left) or 1 (right).
type Spawn struct {
	X, Y float64
	Team int
}
