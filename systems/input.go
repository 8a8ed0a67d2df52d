package systems

import (
	"log"

	"github.com/automoto/mathgraph/components"
	cfg "github.com/automoto/mathgraph/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// boundKeys caches the ebiten keys of every action, resolved from the key
// names in config.
var boundKeys map[cfg.ActionID][]ebiten.Key

// ResolveBindings parses the configured key names. Unknown names are
// logged and skipped.
func ResolveBindings() {
	boundKeys = make(map[cfg.ActionID][]ebiten.Key, len(cfg.Input.Bindings))
	for action, binding := range cfg.Input.Bindings {
		for _, name := range binding.Keys {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				log.Printf("Warning: unknown key %q for %s", name, action)
				continue
			}
			boundKeys[action] = append(boundKeys[action], k)
		}
	}
}

// UpdateInput polls raw input and updates the Input component.
// Must run before the systems that read actions.
func UpdateInput(ecs *ecs.ECS) {
	if boundKeys == nil {
		ResolveBindings()
	}
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for action, keys := range boundKeys {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[action] = true
			}
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the state of an action for this frame.
func GetAction(ecs *ecs.ECS, id cfg.ActionID) components.ActionState {
	return getOrCreateInput(ecs).Action(id)
}
