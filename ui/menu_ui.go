package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI is the title screen: field choice, start and quit.
type MenuUI struct {
	UI *ebitenui.UI

	OnStart func(preset string)
	OnQuit  func()

	presets     []string // "" is a random field
	presetIndex int
	presetLabel *widget.Label
	statsLabel  *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewMenuUI(presets []string, onStart func(string), onQuit func()) *MenuUI {
	mui := &MenuUI{
		OnStart: onStart,
		OnQuit:  onQuit,
		presets: append([]string{""}, presets...),
	}
	mui.loadFonts()
	mui.buildUI()
	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	mui.titleFace = &text.GoTextFace{Source: fontSource, Size: 36}
	mui.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
	mui.smallFace = &text.GoTextFace{Source: fontSource, Size: 13}
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("MATHGRAPH", &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 215, 80, 255},
		}),
	))

	fieldRow := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)
	fieldRow.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Field:", &mui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	))
	mui.presetLabel = widget.NewLabel(
		widget.LabelOpts.Text(mui.presetName(), &mui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	fieldRow.AddChild(mui.presetLabel)
	fieldRow.AddChild(mui.button("Change", func() {
		mui.presetIndex = (mui.presetIndex + 1) % len(mui.presets)
		mui.presetLabel.Label = mui.presetName()
	}))
	content.AddChild(fieldRow)

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)
	buttons.AddChild(mui.button("Start", func() {
		if mui.OnStart != nil {
			mui.OnStart(mui.presets[mui.presetIndex])
		}
	}))
	buttons.AddChild(mui.button("Quit", func() {
		if mui.OnQuit != nil {
			mui.OnQuit()
		}
	}))
	content.AddChild(buttons)

	mui.statsLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	)
	content.AddChild(mui.statsLabel)

	rootContainer.AddChild(content)
	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text(label, &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (mui *MenuUI) presetName() string {
	if name := mui.presets[mui.presetIndex]; name != "" {
		return name
	}
	return "random"
}

// SetStats shows the saved totals under the buttons.
func (mui *MenuUI) SetStats(rounds, leftWins, rightWins, draws int) {
	if rounds == 0 {
		mui.statsLabel.Label = "No rounds played yet"
		return
	}
	mui.statsLabel.Label = fmt.Sprintf("%d rounds played   left %d   right %d   draws %d", rounds, leftWins, rightWins, draws)
}

func (mui *MenuUI) Update() {
	mui.UI.Update()
}
