package main

import (
	"context"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/signpad"
	"github.com/gogpu/signpad/integration/fynepad"
)

// actionTimeout bounds how long a toolbar action waits for the pad.
const actionTimeout = 10 * time.Second

// colorSwatch is a tappable preset color.
type colorSwatch struct {
	widget.BaseWidget
	Color    signpad.RGB
	OnTapped func(signpad.RGB)
}

func newColorSwatch(c signpad.RGB, tapped func(signpad.RGB)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(*fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// settings returns the pad's controls as the mutable panel state.
func settings(c *fynepad.Canvas) *signpad.Settings {
	return c.Pad().Controls().(*signpad.Settings)
}

// run queues a pad action on the calling goroutine, so toolbar actions
// and pointer events reach the pad in the order the user issued them,
// and waits for the result elsewhere. Failures are already reported to
// the user as notices.
func run(start func(context.Context) <-chan error) {
	ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
	done := start(ctx)
	go func() {
		defer cancel()
		if err := <-done; err != nil {
			signpad.Logger().Debug("signpad: action failed", "error", err)
		}
	}()
}

// startSave adapts StartSave to run.
func startSave(pad *signpad.Pad) func(context.Context) <-chan error {
	return func(ctx context.Context) <-chan error {
		res := pad.StartSave(ctx)
		errc := make(chan error, 1)
		go func() { errc <- (<-res).Err }()
		return errc
	}
}

func newToolbar(w fyne.Window, c *fynepad.Canvas) fyne.CanvasObject {
	s := settings(c)
	pad := c.Pad()

	swatches := container.NewHBox()
	for _, preset := range signpad.PresetColors {
		swatches.Add(newColorSwatch(preset, s.SetColor))
	}

	width := widget.NewSlider(signpad.MinWidth, signpad.MaxWidth)
	width.Step = 1
	width.SetValue(float64(s.Brush().Width))
	width.OnChanged = func(v float64) { s.SetWidth(int(v)) }
	widthBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), width)

	title := cases.Title(language.English)
	var names []string
	for _, st := range signpad.Styles() {
		names = append(names, title.String(st.String()))
	}
	style := widget.NewSelect(names, func(name string) {
		if st, err := signpad.ParseStyle(name); err == nil {
			s.SetStyle(st)
		}
	})
	style.SetSelected(title.String(s.Brush().Style.String()))

	eraser := widget.NewCheck("Eraser", s.SetErasing)

	padColor := widget.NewButtonWithIcon("Pad color", theme.ColorPaletteIcon(), func() {
		d := dialog.NewColorPicker("Pad color", "Background used when saving", func(col color.Color) {
			n := color.NRGBAModel.Convert(col).(color.NRGBA)
			pad.SetBackground(signpad.RGB{R: n.R, G: n.G, B: n.B})
			c.Redraw()
		}, w)
		d.Advanced = true
		d.Show()
	})

	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), func() { run(pad.StartUndo) }),
		widget.NewToolbarAction(theme.ContentRedoIcon(), func() { run(pad.StartRedo) }),
		widget.NewToolbarAction(theme.DeleteIcon(), func() { run(pad.StartClear) }),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() { run(startSave(pad)) }),
		widget.NewToolbarAction(theme.HistoryIcon(), func() { run(pad.StartRecover) }),
	)

	return container.NewVBox(
		container.NewHBox(
			widget.NewLabel("Color:"), swatches,
			widget.NewSeparator(),
			widget.NewLabel("Width:"), widthBox,
			widget.NewSeparator(),
			widget.NewLabel("Style:"), style,
			eraser,
			layout.NewSpacer(),
			padColor,
		),
		actions,
	)
}
