package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"sweetspot/internal/format"
)

// gramsReadout is a single-line Entry showing a computed mass. It allows
// selection and copy but rejects all edits.
type gramsReadout struct {
	widget.Entry
}

func newGramsReadout() *gramsReadout {
	e := &gramsReadout{}
	e.TextStyle = fyne.TextStyle{Monospace: true}
	e.ExtendBaseWidget(e)
	return e
}

// SetGrams shows g with two decimals.
func (e *gramsReadout) SetGrams(g float64) {
	e.SetText(format.FormatGrams(g))
}

// TypedRune blocks all character input.
func (e *gramsReadout) TypedRune(_ rune) {}

// TypedKey allows only navigation and selection keys.
func (e *gramsReadout) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyBackspace, fyne.KeyDelete, fyne.KeyReturn, fyne.KeyEnter:
		return
	}
	e.Entry.TypedKey(ev)
}

// TypedShortcut allows copy and select-all.
func (e *gramsReadout) TypedShortcut(s fyne.Shortcut) {
	switch s.(type) {
	case *fyne.ShortcutCopy, *fyne.ShortcutSelectAll:
		e.Entry.TypedShortcut(s)
	case *desktop.CustomShortcut:
		e.Entry.TypedShortcut(s)
	}
}
