package cli

import (
	"bytes"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sweetspot/internal/mix"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.Out = io.Discard
	return logger
}

func TestRun_Calculate(t *testing.T) {
	var out bytes.Buffer
	cfg := RunnerConfig{TotalGrams: 90, Ratio: "2:1"}

	require.NoError(t, Run(cfg, &out, quietLogger()))

	content := out.String()
	assert.Contains(t, content, "Ratio:           2:1")
	assert.Contains(t, content, "Maltodextrin:    60.00 g")
	assert.Contains(t, content, "Fructose:        30.00 g")
}

func TestRun_List(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, Run(RunnerConfig{List: true}, &out, quietLogger()))

	assert.Equal(t, 3, strings.Count(out.String(), "\n"))
	assert.Contains(t, out.String(), "1:0.8")
	assert.Contains(t, out.String(), "2:1")
}

func TestCalculate_Logging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, result, err := Calculate(RunnerConfig{TotalGrams: 90, Ratio: "1:0.8"}, logger)
	require.NoError(t, err)
	assert.InDelta(t, 50, result.MaltodextrinGrams, 1e-9)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "mix computed", entry.Message)
	assert.Equal(t, "1:0.8", entry.Data["ratio"])
	assert.InDelta(t, 40, entry.Data["fructose_grams"], 1e-9)
}

func TestCalculate_Rejected(t *testing.T) {
	logger, hook := test.NewNullLogger()

	_, _, err := Calculate(RunnerConfig{TotalGrams: math.Inf(1), Ratio: "1:0.8"}, logger)
	assert.ErrorIs(t, err, mix.ErrInvalidInput)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)

	_, _, err = Calculate(RunnerConfig{TotalGrams: 90, Ratio: "9:9"}, logger)
	assert.ErrorIs(t, err, mix.ErrUnknownRatio)
}

func TestNewLogger(t *testing.T) {
	assert.Equal(t, logrus.WarnLevel, NewLogger(false).GetLevel())
	assert.Equal(t, logrus.DebugLevel, NewLogger(true).GetLevel())
}
