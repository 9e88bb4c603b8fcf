package ui

import (
	"sweetspot/internal/mix"
)

// parseTotalInput parses the grams field. ok is false for empty or invalid
// text, in which case the form shows no result.
func parseTotalInput(s string) (total float64, ok bool) {
	total, err := mix.ParseTotal(s)
	if err != nil {
		return 0, false
	}
	return total, true
}

// ratioOrDefault resolves a radio selection to a preset, falling back to
// the default ratio when nothing is selected.
func ratioOrDefault(label string) mix.RatioSpec {
	r, err := mix.LookupRatio(label)
	if err != nil {
		return mix.DefaultRatio.Spec()
	}
	return r
}
