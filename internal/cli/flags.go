package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"sweetspot/internal/mix"
)

// ParseFlags parses command-line arguments (without the program name) and
// returns a RunnerConfig. Returns nil config if no arguments or help is requested.
func ParseFlags(args []string) (*RunnerConfig, error) {
	if len(args) == 0 {
		return nil, nil // No args = use GUI
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		PrintUsage(os.Stderr)
		return nil, nil
	}

	cfg := &RunnerConfig{
		Ratio: mix.DefaultRatio.String(),
	}

	var grams string

	fs := flag.NewFlagSet("sweetspot", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&grams, "g", "", "Total carbohydrate mass in grams")
	fs.StringVar(&grams, "grams", "", "Total carbohydrate mass in grams")
	fs.StringVar(&cfg.Ratio, "r", cfg.Ratio, "Maltodextrin to fructose ratio")
	fs.StringVar(&cfg.Ratio, "ratio", cfg.Ratio, "Maltodextrin to fructose ratio")
	fs.BoolVar(&cfg.List, "l", false, "List ratio presets")
	fs.BoolVar(&cfg.List, "list", false, "List ratio presets")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		PrintUsage(os.Stderr)
		return nil, err
	}

	if cfg.List {
		return cfg, nil
	}

	if grams == "" {
		fmt.Fprintf(os.Stderr, "Error: must provide -g <grams>\n\n")
		PrintUsage(os.Stderr)
		return nil, fmt.Errorf("missing required flags")
	}

	total, err := mix.ParseTotal(grams)
	if err != nil {
		return nil, err
	}
	cfg.TotalGrams = total

	if _, err := mix.LookupRatio(cfg.Ratio); err != nil {
		return nil, err
	}

	return cfg, nil
}

// PrintUsage prints the help message.
func PrintUsage(w io.Writer) {
	fmt.Fprintf(w, `Sweet Spot - carbohydrate mix calculator

Usage: sweetspot [flags]
       sweetspot          (no flags: open the GUI)
       sweetspot help     (show this message)

FLAGS:
  -g, -grams <total>       Total carbohydrates in grams (required)
  -r, -ratio <label>       Maltodextrin:fructose ratio, one of %v (default: %s)
  -l, -list                List ratio presets and exit
  -v, -verbose             Verbose output

EXAMPLES:
  # Split 90 g at 1:0.8
  sweetspot -g 90

  # Split 120 g at 2:1
  sweetspot -g 120 -r 2:1

`, mix.Labels(), mix.DefaultRatio)
}
