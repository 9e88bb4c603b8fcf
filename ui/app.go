package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// BuildMainWindow creates and configures the main application window.
func BuildMainWindow(app fyne.App) fyne.Window {
	win := app.NewWindow("Sweet Spot")
	win.Resize(NewWindowSize())

	mixForm := NewMixForm()

	bg := canvas.NewRectangle(backgroundColor)
	content := container.NewStack(bg, container.NewPadded(mixForm.Container()))

	win.SetContent(content)
	win.Canvas().Focus(mixForm.gramsEntry)

	return win
}
