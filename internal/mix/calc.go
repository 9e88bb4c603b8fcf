package mix

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned for totals or ratios the calculator cannot use.
var ErrInvalidInput = errors.New("invalid input")

// Result holds the computed split in grams.
type Result struct {
	MaltodextrinGrams float64
	FructoseGrams     float64
}

// Total returns the combined mass of both parts.
func (r Result) Total() float64 {
	return r.MaltodextrinGrams + r.FructoseGrams
}

// ComputeMix splits totalGrams across maltodextrin and fructose in proportion
// to the ratio weights.
func ComputeMix(totalGrams float64, ratio RatioSpec) (Result, error) {
	if math.IsNaN(totalGrams) || math.IsInf(totalGrams, 0) {
		return Result{}, fmt.Errorf("%w: total must be finite, got %v", ErrInvalidInput, totalGrams)
	}
	if totalGrams < 0 {
		return Result{}, fmt.Errorf("%w: total must not be negative, got %v", ErrInvalidInput, totalGrams)
	}

	parts := ratio.Parts()
	if !(parts > 0) || math.IsInf(parts, 0) {
		return Result{}, fmt.Errorf("%w: ratio %q has weight sum %v", ErrInvalidInput, ratio.Label, parts)
	}

	if totalGrams == 0 {
		return Result{}, nil
	}

	// Scale by each weight's share of the sum; shares are at most 1, so a
	// finite total never overflows.
	return Result{
		MaltodextrinGrams: totalGrams * (ratio.MaltoWeight / parts),
		FructoseGrams:     totalGrams * (ratio.FructoseWeight / parts),
	}, nil
}

// ParseTotal parses a total mass typed by the user. A decimal comma is
// accepted in place of a point.
func ParseTotal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: total cannot be empty", ErrInvalidInput)
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: total must be a valid number", ErrInvalidInput)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: total must be finite", ErrInvalidInput)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: total must not be negative", ErrInvalidInput)
	}
	if v == 0 {
		return 0, nil // drops the sign of "-0"
	}
	return v, nil
}
