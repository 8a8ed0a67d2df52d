package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/mathgraph/assets"
	cfg "github.com/automoto/mathgraph/config"
	"github.com/automoto/mathgraph/persist"
	"github.com/automoto/mathgraph/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the title menu
type MenuScene struct {
	sceneChanger SceneChanger
	store        *persist.Store
	seed         int64
	menuUI       *ui.MenuUI
	once         sync.Once
	done         bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, store *persist.Store, seed int64) *MenuScene {
	return &MenuScene{sceneChanger: sc, store: store, seed: seed}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menuUI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

// Done reports whether Quit was chosen.
func (ms *MenuScene) Done() bool { return ms.done }

func (ms *MenuScene) configure() {
	presets, err := assets.PresetNames()
	if err != nil {
		log.Printf("Warning: Could not list preset fields: %v", err)
	}

	ms.menuUI = ui.NewMenuUI(presets, ms.start, func() { ms.done = true })
	if stats, err := ms.store.LoadStats(); err == nil {
		ms.menuUI.SetStats(stats.Rounds, stats.TeamWins[0], stats.TeamWins[1], stats.Draws)
	}
}

func (ms *MenuScene) start(preset string) {
	cfg.Field.Preset = preset
	ms.sceneChanger.ChangeScene(NewFieldScene(ms.sceneChanger, ms.store, ms.seed))
}
