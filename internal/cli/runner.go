package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"sweetspot/internal/format"
	"sweetspot/internal/mix"
)

// RunnerConfig holds all CLI options for a calculation.
type RunnerConfig struct {
	TotalGrams float64
	Ratio      string // preset label, e.g. "1:0.8"
	List       bool
	Verbose    bool
}

// NewLogger returns a text logger on stderr. Verbose enables debug entries.
func NewLogger(verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.Out = os.Stderr
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.WarnLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// Calculate resolves the configured preset and computes the mix.
func Calculate(cfg RunnerConfig, log logrus.FieldLogger) (mix.RatioSpec, mix.Result, error) {
	ratio, err := mix.LookupRatio(cfg.Ratio)
	if err != nil {
		return mix.RatioSpec{}, mix.Result{}, err
	}

	entry := log.WithFields(logrus.Fields{"total_grams": cfg.TotalGrams, "ratio": ratio.Label})
	entry.Debug("computing mix")

	result, err := mix.ComputeMix(cfg.TotalGrams, ratio)
	if err != nil {
		entry.WithError(err).Warn("mix rejected")
		return ratio, mix.Result{}, fmt.Errorf("compute mix: %w", err)
	}

	entry.WithFields(logrus.Fields{
		"maltodextrin_grams": result.MaltodextrinGrams,
		"fructose_grams":     result.FructoseGrams,
	}).Debug("mix computed")

	return ratio, result, nil
}

// Run executes the CLI request and writes the report to w.
func Run(cfg RunnerConfig, w io.Writer, log logrus.FieldLogger) error {
	if cfg.List {
		log.Debug("listing ratio presets")
		_, err := fmt.Fprint(w, format.FormatRatioList(mix.ListRatios()))
		return err
	}

	ratio, result, err := Calculate(cfg, log)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, format.FormatResult(cfg.TotalGrams, ratio, result))
	return err
}
