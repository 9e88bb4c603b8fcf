package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"sweetspot/internal/mix"
)

// MixForm holds the grams input, ratio selector, buttons and result panel.
type MixForm struct {
	gramsEntry *widget.Entry
	ratioRadio *widget.RadioGroup
	calcBtn    *StyledButton
	resetBtn   *StyledButton
	resultView *ResultView

	result    mix.Result
	hasResult bool

	form *fyne.Container
}

// NewMixForm creates the calculator form with the default ratio selected.
func NewMixForm() *MixForm {
	f := &MixForm{
		resultView: NewResultView(),
	}

	f.gramsEntry = widget.NewEntry()
	f.gramsEntry.SetPlaceHolder("Enter total grams")
	f.gramsEntry.OnSubmitted = func(string) { f.Calculate() }

	f.ratioRadio = widget.NewRadioGroup(mix.Labels(), nil)
	f.ratioRadio.Horizontal = true
	f.ratioRadio.Required = true
	f.ratioRadio.SetSelected(mix.DefaultRatio.String())

	f.calcBtn = NewStyledButton("Calculate", theme.ConfirmIcon(), f.Calculate, buttonColor, buttonTextColor)
	f.resetBtn = NewStyledButton("Reset", theme.ViewRefreshIcon(), f.Reset, panelColor, resetTextColor)
	f.resetBtn.SetTextSize(theme.CaptionTextSize())

	f.gramsEntry.OnChanged = func(string) { f.syncCalcButton() }
	f.syncCalcButton()

	title := widget.NewLabelWithStyle("Sweet Spot", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	title.SizeName = theme.SizeNameHeadingText

	subtitle := widget.NewLabelWithStyle("How much fuel?", fyne.TextAlignCenter, fyne.TextStyle{})

	ratioCaption := canvas.NewText("Carbohydrate Ratio", resetTextColor)
	ratioCaption.TextSize = theme.CaptionTextSize()

	f.form = container.NewVBox(
		title,
		subtitle,
		container.NewGridWrap(NewGramsEntryMinSize(), f.gramsEntry),
		container.NewVBox(ratioCaption, f.ratioRadio),
		f.calcBtn,
		f.resultView.Container(),
		f.resetBtn,
	)

	return f
}

// Container returns the form's Fyne container.
func (f *MixForm) Container() *fyne.Container {
	return f.form
}

// Ratio returns the selected preset.
func (f *MixForm) Ratio() mix.RatioSpec {
	return ratioOrDefault(f.ratioRadio.Selected)
}

// Result returns the last computed mix, if one is shown.
func (f *MixForm) Result() (mix.Result, bool) {
	return f.result, f.hasResult
}

// Calculate computes the mix for the current input. Invalid or empty input
// clears the result panel instead of showing an error.
func (f *MixForm) Calculate() {
	if c := fyne.CurrentApp(); c != nil {
		if win := c.Driver().AllWindows(); len(win) > 0 {
			win[0].Canvas().Unfocus()
		}
	}

	total, ok := parseTotalInput(f.gramsEntry.Text)
	if !ok {
		f.clearResult()
		return
	}

	r, err := mix.ComputeMix(total, f.Ratio())
	if err != nil {
		f.clearResult()
		return
	}

	f.result = r
	f.hasResult = true
	f.resultView.SetResult(r)
}

// Reset clears the input and result and restores the default ratio.
func (f *MixForm) Reset() {
	f.gramsEntry.SetText("")
	f.ratioRadio.SetSelected(mix.DefaultRatio.String())
	f.clearResult()
	f.syncCalcButton()
}

// syncCalcButton disables Calculate while the grams entry is blank.
func (f *MixForm) syncCalcButton() {
	if strings.TrimSpace(f.gramsEntry.Text) == "" {
		f.calcBtn.Disable()
		return
	}
	f.calcBtn.Enable()
}

func (f *MixForm) clearResult() {
	f.result = mix.Result{}
	f.hasResult = false
	f.resultView.Clear()
}
