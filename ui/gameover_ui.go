package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// GameOverUI is the panel shown after the player falls out of the world.
type GameOverUI struct {
	UI *ebitenui.UI

	OnRetry func()
	OnQuit  func()

	titleFace  text.Face
	normalFace text.Face
}

func NewGameOverUI(survived float64, onRetry, onQuit func()) (*GameOverUI, error) {
	ui := &GameOverUI{
		OnRetry: onRetry,
		OnQuit:  onQuit,
	}
	if err := ui.loadFonts(); err != nil {
		return nil, err
	}
	ui.buildUI(survived)
	return ui, nil
}

func (ui *GameOverUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load UI font: %w", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 18}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 10}
	return nil
}

func (ui *GameOverUI) buildUI(survived float64) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("GAME OVER", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("survived %.1fs", survived), &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	))

	contentContainer.AddChild(ui.button("Retry (Enter)", func() {
		if ui.OnRetry != nil {
			ui.OnRetry()
		}
	}))
	contentContainer.AddChild(ui.button("Quit (Esc)", func() {
		if ui.OnQuit != nil {
			ui.OnQuit()
		}
	}))

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *GameOverUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(110, 20),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 100, 160, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{100, 180, 255, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 70, 120, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(4)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (ui *GameOverUI) Update() {
	ui.UI.Update()
}

func (ui *GameOverUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
