package scenes

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/mathgraph/assets"
	cfg "github.com/automoto/mathgraph/config"
	"github.com/automoto/mathgraph/core"
	"github.com/automoto/mathgraph/persist"
	"github.com/automoto/mathgraph/shared/formula"
	"github.com/automoto/mathgraph/systems"
	"github.com/automoto/mathgraph/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const layerDefault ecs.LayerID = 0

// FieldScene is the match screen: the field, the HUD and the formula panel.
type FieldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	match        *core.Match
	panel        *ui.FormulaUI
	store        *persist.Store
	seed         int64
	once         sync.Once
}

func NewFieldScene(sc SceneChanger, store *persist.Store, seed int64) *FieldScene {
	return &FieldScene{sceneChanger: sc, store: store, seed: seed}
}

func (fs *FieldScene) Update() {
	fs.once.Do(fs.configure)

	fs.panel.Update()
	fs.ecs.Update()
	if fs.handleActions() {
		return
	}
	fs.refreshPanel()

	if fs.match.Finished() && systems.RoundEndElapsed(fs.ecs) {
		fs.newRound()
	}
}

func (fs *FieldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)
	fs.panel.UI.Draw(screen)
}

func (fs *FieldScene) configure() {
	opts := core.OptionsFromConfig()
	if name := cfg.Field.Preset; name != "" {
		preset, err := assets.LoadPreset(name)
		if err != nil {
			log.Printf("Warning: preset %q not loaded, using a random field: %v", name, err)
		} else {
			opts = opts.WithPreset(preset)
		}
	}

	world := donburi.NewWorld()
	fs.ecs = ecs.NewECS(world)
	systems.CreateView(world)

	match, err := core.NewMatch(world, core.RosterFromConfig(), opts, fs.seed)
	if err != nil {
		panic("failed to start match: " + err.Error())
	}
	fs.match = match

	fs.ecs.AddSystem(systems.UpdateInput)
	fs.ecs.AddSystem(systems.NewUpdateMatch(match))
	fs.ecs.AddSystem(systems.UpdateView)

	fs.ecs.AddRenderer(layerDefault, systems.DrawField)
	fs.ecs.AddRenderer(layerDefault, systems.DrawObstacles)
	fs.ecs.AddRenderer(layerDefault, systems.DrawTrail)
	fs.ecs.AddRenderer(layerDefault, systems.DrawPlayers)
	fs.ecs.AddRenderer(layerDefault, systems.DrawDebug)
	fs.ecs.AddRenderer(layerDefault, systems.DrawHUD)

	fs.panel = ui.NewFormulaUI(fs.fire, fs.skip)
	if saved, err := fs.store.LoadSettings(); err == nil && saved != nil && saved.LastFormula != "" {
		fs.panel.SetText(saved.LastFormula)
	}
}

// handleActions reports whether the scene was left.
func (fs *FieldScene) handleActions() bool {
	switch {
	case systems.GetAction(fs.ecs, cfg.ActionFire).JustPressed:
		fs.panel.Fire()
	case systems.GetAction(fs.ecs, cfg.ActionSkip).JustPressed:
		fs.skip()
	case systems.GetAction(fs.ecs, cfg.ActionClear).JustPressed:
		fs.panel.SetText("")
		fs.panel.SetStatus("")
	case systems.GetAction(fs.ecs, cfg.ActionNextRound).JustPressed && fs.match.Finished():
		fs.newRound()
	case systems.GetAction(fs.ecs, cfg.ActionQuit).JustPressed:
		fs.quit()
		return true
	}
	return false
}

// humanTurn returns the active player when a human may fire.
func (fs *FieldScene) humanTurn() (int, bool) {
	if fs.match.Finished() || fs.match.Shot().Firing {
		return 0, false
	}
	id := fs.match.ActivePlayer()
	p, ok := fs.match.Player(id)
	if !ok || p.Bot {
		return 0, false
	}
	return id, true
}

func (fs *FieldScene) fire(text string) {
	id, ok := fs.humanTurn()
	if !ok {
		return
	}
	err := fs.match.Fire(id, text)
	var te *formula.TranslationError
	switch {
	case errors.As(err, &te):
		fs.panel.SetStatus(fmt.Sprintf("%s (at %d)", te.Msg, te.Pos))
	case err != nil:
		fs.panel.SetStatus(err.Error())
	default:
		fs.panel.SetStatus("")
		fs.saveSettings(text)
	}
}

// skip votes for every human at this screen.
func (fs *FieldScene) skip() {
	for _, p := range fs.match.Players() {
		if p.Bot {
			continue
		}
		regenerated, err := fs.match.Skip(p.ID)
		if err != nil {
			fs.panel.SetStatus(err.Error())
			return
		}
		if regenerated {
			return
		}
	}
}

func (fs *FieldScene) newRound() {
	if err := fs.match.NewRound(); err != nil {
		log.Printf("Could not start a new round: %v", err)
		fs.panel.SetStatus(err.Error())
	}
}

func (fs *FieldScene) refreshPanel() {
	if fs.match.Finished() {
		fs.panel.SetTurn("Round over", false)
		return
	}
	p, _ := fs.match.Player(fs.match.ActivePlayer())
	_, canFire := fs.humanTurn()
	label := fmt.Sprintf("%s to fire", p.Name)
	if p.Bot {
		label = fmt.Sprintf("%s is thinking...", p.Name)
	}
	fs.panel.SetTurn(label, canFire)
}

func (fs *FieldScene) saveSettings(lastFormula string) {
	saved, _ := fs.store.LoadSettings()
	if saved == nil {
		saved = &persist.SavedSettings{ResolutionIndex: cfg.Display.DefaultResolutionIndex}
	}
	saved.LastFormula = lastFormula
	_ = fs.store.SaveSettings(saved)
}

func (fs *FieldScene) quit() {
	if _, err := fs.store.RecordMatch(fs.match.Stats()); err != nil {
		log.Printf("Warning: Could not save stats: %v", err)
	}
	fs.match.Close()
	fs.sceneChanger.ChangeScene(NewMenuScene(fs.sceneChanger, fs.store, fs.seed+1))
}
