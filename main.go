package main

import (
	"flag"
	"image"
	"log"
	"time"

	"github.com/automoto/mathgraph/config"
	"github.com/automoto/mathgraph/fonts"
	"github.com/automoto/mathgraph/persist"
	"github.com/automoto/mathgraph/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(store *persist.Store, seed int64) *Game {
	if err := fonts.LoadDefaults(config.UI.HUDFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewMenuScene(g, store, seed)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if d, ok := g.scene.(interface{ Done() bool }); ok && d.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML or TOML config override")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed for fields and bots")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	ebiten.SetWindowTitle("MathGraph")
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence and load saved settings
	store, err := persist.Open("mathgraph")
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := store.LoadSettings(); err == nil && saved != nil {
		ebiten.SetFullscreen(saved.Fullscreen)
		if !saved.Fullscreen {
			res := config.ResolutionAt(saved.ResolutionIndex)
			ebiten.SetWindowSize(res.Width, res.Height)
		}
	}

	if err := ebiten.RunGame(NewGame(store, *seed)); err != nil {
		log.Fatal(err)
	}
}
