package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"sweetspot/internal/mix"
)

// ResultView shows the maltodextrin and fructose masses of the last mix.
// It is hidden until a result is set.
type ResultView struct {
	malto    *gramsReadout
	fructose *gramsReadout
	panel    *fyne.Container
}

// NewResultView creates a hidden result panel.
func NewResultView() *ResultView {
	rv := &ResultView{
		malto:    newGramsReadout(),
		fructose: newGramsReadout(),
	}

	rows := container.NewVBox(
		resultRow("Maltodextrin", theme.GridIcon(), rv.malto),
		resultRow("Fructose", theme.ColorPaletteIcon(), rv.fructose),
	)

	bg := canvas.NewRectangle(panelColor)
	bg.CornerRadius = theme.InputRadiusSize() * 2

	rv.panel = container.NewStack(bg, container.NewPadded(rows))
	rv.panel.Hide()
	return rv
}

func resultRow(name string, icon fyne.Resource, value fyne.CanvasObject) fyne.CanvasObject {
	label := widget.NewLabel(name)
	return container.NewHBox(widget.NewIcon(icon), label, layout.NewSpacer(), container.NewGridWrap(fyne.NewSize(120, value.MinSize().Height), value))
}

// Container returns the result panel.
func (rv *ResultView) Container() *fyne.Container {
	return rv.panel
}

// SetResult fills both rows and shows the panel.
func (rv *ResultView) SetResult(r mix.Result) {
	rv.malto.SetGrams(r.MaltodextrinGrams)
	rv.fructose.SetGrams(r.FructoseGrams)
	rv.panel.Show()
}

// Clear empties both rows and hides the panel.
func (rv *ResultView) Clear() {
	rv.malto.SetText("")
	rv.fructose.SetText("")
	rv.panel.Hide()
}

// Visible reports whether a result is on screen.
func (rv *ResultView) Visible() bool {
	return rv.panel.Visible()
}
