package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
)

// Window dimensions
const (
	WindowWidth  = 390
	WindowHeight = 640
)

// Grams entry dimensions
const (
	GramsEntryMinWidth  = 240
	GramsEntryMinHeight = 64
)

// Panel colors, light grays matching the system grouped background.
var (
	backgroundColor = color.NRGBA{R: 242, G: 242, B: 247, A: 255}
	panelColor      = color.NRGBA{R: 229, G: 229, B: 234, A: 255}
	buttonColor     = color.NRGBA{R: 209, G: 209, B: 214, A: 255}
	buttonTextColor = color.NRGBA{R: 28, G: 28, B: 30, A: 255}
	resetTextColor  = color.NRGBA{R: 142, G: 142, B: 147, A: 255}
)

// NewWindowSize returns the default window size
func NewWindowSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}

// NewGramsEntryMinSize returns the minimum size for the grams entry
func NewGramsEntryMinSize() fyne.Size {
	return fyne.NewSize(GramsEntryMinWidth, GramsEntryMinHeight)
}
