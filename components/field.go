package components

import (
	"image/color"

	"github.com/automoto/mathgraph/shared/gamemath"
	"github.com/automoto/mathgraph/shared/trajectory"
	"github.com/yohamta/donburi"
)

// FieldData is the singleton holding the obstacle table of the round.
// Obstacles keeps table order; clipping removes the hit entry and appends
// the remnants.
type FieldData struct {
	Bounds     gamemath.Bounds
	Obstacles  []donburi.Entity
	Broadphase *trajectory.Broadphase
	Round      int
	Color      color.RGBA
}

// IndexOf returns the table position of h, or -1.
func (f *FieldData) IndexOf(h donburi.Entity) int {
	for i, o := range f.Obstacles {
		if o == h {
			return i
		}
	}
	return -1
}

// Replace removes h from the table and appends added.
func (f *FieldData) Replace(h donburi.Entity, added ...donburi.Entity) {
	if i := f.IndexOf(h); i >= 0 {
		f.Obstacles = append(f.Obstacles[:i], f.Obstacles[i+1:]...)
	}
	f.Obstacles = append(f.Obstacles, added...)
}

var Field = donburi.NewComponentType[FieldData]()
