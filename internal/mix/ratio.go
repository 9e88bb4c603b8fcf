package mix

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidRatioSpec is returned for a ratio without a label or with a
	// non-positive weight.
	ErrInvalidRatioSpec = errors.New("invalid ratio spec")
	// ErrUnknownRatio is returned when a label matches no catalog entry.
	ErrUnknownRatio = errors.New("unknown ratio")
)

// RatioSpec holds one maltodextrin-to-fructose mixing ratio.
type RatioSpec struct {
	Label          string  // display label, e.g. "1:0.8"
	MaltoWeight    float64 // maltodextrin parts
	FructoseWeight float64 // fructose parts
}

// NewRatioSpec validates the weights and returns a RatioSpec.
// Both weights and their sum must be positive and finite.
func NewRatioSpec(label string, malto, fructose float64) (RatioSpec, error) {
	if label == "" {
		return RatioSpec{}, fmt.Errorf("%w: label is required", ErrInvalidRatioSpec)
	}
	if !positiveFinite(malto) {
		return RatioSpec{}, fmt.Errorf("%w: maltodextrin weight must be positive, got %v", ErrInvalidRatioSpec, malto)
	}
	if !positiveFinite(fructose) {
		return RatioSpec{}, fmt.Errorf("%w: fructose weight must be positive, got %v", ErrInvalidRatioSpec, fructose)
	}
	if math.IsInf(malto+fructose, 0) {
		return RatioSpec{}, fmt.Errorf("%w: weight sum overflows", ErrInvalidRatioSpec)
	}
	return RatioSpec{Label: label, MaltoWeight: malto, FructoseWeight: fructose}, nil
}

// Parts returns the sum of both weights.
func (r RatioSpec) Parts() float64 {
	return r.MaltoWeight + r.FructoseWeight
}

// String returns the display label.
func (r RatioSpec) String() string {
	return r.Label
}

// Ratio identifies one of the built-in presets.
type Ratio int

const (
	RatioOneToPointEight Ratio = iota // 1:0.8
	RatioTwoToOne                     // 2:1

	ratioCount
)

// DefaultRatio is the preset a form starts with.
const DefaultRatio = RatioOneToPointEight

var catalog [ratioCount]RatioSpec

func init() {
	catalog[RatioOneToPointEight] = mustRatio("1:0.8", 1.0, 0.8)
	catalog[RatioTwoToOne] = mustRatio("2:1", 2.0, 1.0)
}

func mustRatio(label string, malto, fructose float64) RatioSpec {
	r, err := NewRatioSpec(label, malto, fructose)
	if err != nil {
		panic(err)
	}
	return r
}

// Spec returns the weights and label of the preset.
func (r Ratio) Spec() RatioSpec {
	if r < 0 || r >= ratioCount {
		return RatioSpec{}
	}
	return catalog[r]
}

func (r Ratio) String() string {
	return r.Spec().Label
}

// ListRatios returns all presets in declaration order.
// The returned slice is a copy.
func ListRatios() []RatioSpec {
	out := make([]RatioSpec, len(catalog))
	copy(out, catalog[:])
	return out
}

// Labels returns the display labels of all presets in declaration order.
func Labels() []string {
	labels := make([]string, len(catalog))
	for i, r := range catalog {
		labels[i] = r.Label
	}
	return labels
}

// Describe returns the display label of a ratio.
func Describe(r RatioSpec) string {
	return r.Label
}

// LookupRatio returns the preset with the given label.
func LookupRatio(label string) (RatioSpec, error) {
	for _, r := range catalog {
		if r.Label == label {
			return r, nil
		}
	}
	return RatioSpec{}, fmt.Errorf("%w: %q", ErrUnknownRatio, label)
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
