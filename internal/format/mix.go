package format

import (
	"fmt"
	"strings"

	"sweetspot/internal/mix"
)

// FormatGrams renders a mass with two decimals, e.g. "50.00 g".
func FormatGrams(g float64) string {
	return fmt.Sprintf("%.2f g", g)
}

// FormatResult produces a human-readable summary of a computed mix.
func FormatResult(total float64, ratio mix.RatioSpec, r mix.Result) string {
	var b strings.Builder

	b.WriteString("=== Carb Mix ===\n")
	b.WriteString(fmt.Sprintf("Total:           %s\n", FormatGrams(total)))
	b.WriteString(fmt.Sprintf("Ratio:           %s\n", mix.Describe(ratio)))
	b.WriteString("\n--- Split ---\n")
	b.WriteString(fmt.Sprintf("Maltodextrin:    %s\n", FormatGrams(r.MaltodextrinGrams)))
	b.WriteString(fmt.Sprintf("Fructose:        %s\n", FormatGrams(r.FructoseGrams)))
	b.WriteString("================")
	return b.String()
}

// FormatRatioList lists the presets with their weights, one per line.
func FormatRatioList(ratios []mix.RatioSpec) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-8s %12s %10s\n", "Ratio", "Maltodextrin", "Fructose"))
	for _, r := range ratios {
		b.WriteString(fmt.Sprintf("%-8s %12.2f %10.2f\n", mix.Describe(r), r.MaltoWeight, r.FructoseWeight))
	}
	return b.String()
}
