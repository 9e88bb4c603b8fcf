package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// StyledButton is a full-width rounded button with an optional leading icon
// and custom colors.
type StyledButton struct {
	widget.Button
	bgColor  color.Color
	txtColor color.Color
	textSize float32
}

// NewStyledButton creates a button with custom colors. icon may be nil.
func NewStyledButton(label string, icon fyne.Resource, tapped func(), bgColor, txtColor color.Color) *StyledButton {
	btn := &StyledButton{
		bgColor:  bgColor,
		txtColor: txtColor,
		textSize: theme.TextSize(),
	}
	btn.Text = label
	btn.Icon = icon
	btn.OnTapped = tapped
	btn.ExtendBaseWidget(btn)
	return btn
}

// SetTextSize changes the label size, used for the smaller Reset button.
func (b *StyledButton) SetTextSize(size float32) {
	b.textSize = size
	b.Refresh()
}

// CreateRenderer returns a custom renderer.
func (b *StyledButton) CreateRenderer() fyne.WidgetRenderer {
	b.ExtendBaseWidget(b)

	bg := canvas.NewRectangle(b.bgColor)
	bg.CornerRadius = theme.InputRadiusSize() * 2

	label := canvas.NewText(b.Text, b.txtColor)
	label.Alignment = fyne.TextAlignCenter
	label.TextSize = b.textSize

	objects := []fyne.CanvasObject{bg, label}

	var icon *canvas.Image
	if b.Icon != nil {
		icon = canvas.NewImageFromResource(theme.NewThemedResource(b.Icon))
		icon.FillMode = canvas.ImageFillContain
		objects = append(objects, icon)
	}

	return &styledBtnRenderer{
		btn:     b,
		bg:      bg,
		label:   label,
		icon:    icon,
		objects: objects,
	}
}

type styledBtnRenderer struct {
	btn     *StyledButton
	bg      *canvas.Rectangle
	label   *canvas.Text
	icon    *canvas.Image
	objects []fyne.CanvasObject
}

func (r *styledBtnRenderer) iconSize() float32 {
	if r.icon == nil {
		return 0
	}
	return r.label.MinSize().Height
}

func (r *styledBtnRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)

	labelMin := r.label.MinSize()
	iconSize := r.iconSize()
	gap := float32(0)
	if r.icon != nil {
		gap = theme.InnerPadding() / 2
	}

	x := (size.Width - labelMin.Width - iconSize - gap) / 2
	if r.icon != nil {
		r.icon.Resize(fyne.NewSquareSize(iconSize))
		r.icon.Move(fyne.NewPos(x, (size.Height-iconSize)/2))
		x += iconSize + gap
	}

	r.label.Move(fyne.NewPos(x, (size.Height-labelMin.Height)/2))
	r.label.Resize(labelMin)
}

func (r *styledBtnRenderer) MinSize() fyne.Size {
	labelMin := r.label.MinSize()
	pad := theme.InnerPadding()
	width := labelMin.Width + r.iconSize() + pad*4
	return fyne.NewSize(width, labelMin.Height+pad*2)
}

func (r *styledBtnRenderer) Refresh() {
	r.label.Text = r.btn.Text
	r.label.TextSize = r.btn.textSize

	if r.btn.Disabled() {
		r.bg.FillColor = backgroundColor
		r.label.Color = resetTextColor
	} else {
		r.bg.FillColor = r.btn.bgColor
		r.label.Color = r.btn.txtColor
	}

	r.bg.Refresh()
	r.label.Refresh()
	if r.icon != nil {
		r.icon.Refresh()
	}
}

func (r *styledBtnRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *styledBtnRenderer) Destroy()                     {}
