package ui

import (
	"bytes"
	"image/color"
	"log"

	cfg "github.com/automoto/mathgraph/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// FormulaUI is the panel under the field: formula input, fire and skip
// buttons and a status line.
type FormulaUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnFire func(formula string)
	OnSkip func()

	input       *widget.TextInput
	fireButton  *widget.Button
	skipButton  *widget.Button
	turnLabel   *widget.Label
	statusLabel *widget.Label

	normalFace text.Face
	smallFace  text.Face
}

func NewFormulaUI(onFire func(string), onSkip func()) *FormulaUI {
	fui := &FormulaUI{
		OnFire: onFire,
		OnSkip: onSkip,
	}
	fui.loadFonts()
	fui.buildUI()
	return fui
}

func (fui *FormulaUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	fui.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
	fui.smallFace = &text.GoTextFace{Source: fontSource, Size: 13}
}

func (fui *FormulaUI) buildUI() {
	// Root container fills the screen; the panel is anchored to the bottom
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.C.Width, int(cfg.UI.PanelHeight)),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				StretchHorizontal:  true,
			}),
		),
	)

	fui.turnLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &fui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(fui.turnLabel)

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	prompt := widget.NewLabel(
		widget.LabelOpts.Text("y =", &fui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	row.AddChild(prompt)

	fui.input = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(cfg.C.Width-320, 28)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(&fui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder("sin(x) + x/4"),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
	)
	row.AddChild(fui.input)

	fui.fireButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
		}),
		widget.ButtonOpts.Text("Fire", &fui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{200, 255, 200, 255},
			Pressed:  color.RGBA{150, 200, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			fui.Fire()
		}),
	)
	row.AddChild(fui.fireButton)

	fui.skipButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
		}),
		widget.ButtonOpts.Text("Skip field", &fui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{255, 255, 200, 255},
			Pressed:  color.RGBA{200, 200, 200, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if fui.OnSkip != nil {
				fui.OnSkip()
			}
		}),
	)
	row.AddChild(fui.skipButton)

	panel.AddChild(row)

	fui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &fui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 100, 100, 255},
		}),
	)
	panel.AddChild(fui.statusLabel)

	rootContainer.AddChild(panel)

	fui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Fire hands the current text to OnFire.
func (fui *FormulaUI) Fire() {
	if fui.OnFire != nil && !fui.fireButton.GetWidget().Disabled {
		fui.OnFire(fui.input.GetText())
	}
}

func (fui *FormulaUI) Text() string { return fui.input.GetText() }

func (fui *FormulaUI) SetText(s string) { fui.input.SetText(s) }

func (fui *FormulaUI) SetStatus(msg string) {
	if fui.statusLabel != nil {
		fui.statusLabel.Label = msg
	}
}

// SetTurn shows whose turn it is and enables the controls when a human
// may act.
func (fui *FormulaUI) SetTurn(label string, canFire bool) {
	if fui.turnLabel != nil {
		fui.turnLabel.Label = label
	}
	fui.fireButton.GetWidget().Disabled = !canFire
	fui.input.GetWidget().Disabled = !canFire
}

func (fui *FormulaUI) Update() {
	fui.UI.Update()
}
