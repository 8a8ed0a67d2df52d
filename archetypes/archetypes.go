package archetypes

import (
	"github.com/automoto/mathgraph/components"
	"github.com/automoto/mathgraph/tags"
	"github.com/yohamta/donburi"
)

var (
	Field = newArchetype(
		tags.Field,
		components.Field,
		components.Shot,
		components.Turn,
		components.Match,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Obstacle,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
