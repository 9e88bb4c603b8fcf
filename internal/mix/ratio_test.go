package mix

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRatios(t *testing.T) {
	for i := 0; i < 3; i++ {
		ratios := ListRatios()
		require.Len(t, ratios, 2)
		assert.Equal(t, RatioSpec{Label: "1:0.8", MaltoWeight: 1.0, FructoseWeight: 0.8}, ratios[0])
		assert.Equal(t, RatioSpec{Label: "2:1", MaltoWeight: 2.0, FructoseWeight: 1.0}, ratios[1])
	}
}

func TestListRatios_ReturnsCopy(t *testing.T) {
	ratios := ListRatios()
	ratios[0].MaltoWeight = 99

	assert.Equal(t, 1.0, ListRatios()[0].MaltoWeight)
	assert.Equal(t, 1.0, RatioOneToPointEight.Spec().MaltoWeight)
}

func TestListRatios_PositiveWeights(t *testing.T) {
	for _, r := range ListRatios() {
		assert.Greater(t, r.MaltoWeight, 0.0, r.Label)
		assert.Greater(t, r.FructoseWeight, 0.0, r.Label)
	}
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, []string{"1:0.8", "2:1"}, Labels())
	for _, r := range ListRatios() {
		assert.Equal(t, r.Label, Describe(r))
		assert.Equal(t, r.Label, r.String())
	}
}

func TestRatio_Spec(t *testing.T) {
	assert.Equal(t, "1:0.8", RatioOneToPointEight.String())
	assert.Equal(t, "2:1", RatioTwoToOne.String())
	assert.Equal(t, RatioOneToPointEight, DefaultRatio)
	assert.Equal(t, RatioSpec{}, Ratio(42).Spec())
	assert.Equal(t, 3.0, RatioTwoToOne.Spec().Parts())
}

func TestLookupRatio(t *testing.T) {
	r, err := LookupRatio("2:1")
	require.NoError(t, err)
	assert.Equal(t, RatioTwoToOne.Spec(), r)

	_, err = LookupRatio("3:1")
	assert.True(t, errors.Is(err, ErrUnknownRatio), "got %v", err)
}

func TestNewRatioSpec(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		malto    float64
		fructose float64
		wantErr  bool
	}{
		{"valid", "1:1", 1, 1, false},
		{"fractional", "1:0.5", 1, 0.5, false},
		{"empty label", "", 1, 1, true},
		{"zero malto", "0:1", 0, 1, true},
		{"zero fructose", "1:0", 1, 0, true},
		{"negative", "-1:1", -1, 1, true},
		{"NaN", "nan", math.NaN(), 1, true},
		{"infinite", "inf", 1, math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRatioSpec(tt.label, tt.malto, tt.fructose)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRatioSpec)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.label, r.Label)
		})
	}
}
