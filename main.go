package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"sweetspot/internal/cli"
	"sweetspot/ui"
)

func main() {
	cfg, err := cli.ParseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// No flags provided or help requested = use GUI
	if cfg == nil {
		if len(os.Args) > 1 {
			return
		}
		a := app.NewWithID("com.sweetspot.gui")
		win := ui.BuildMainWindow(a)
		win.ShowAndRun()
		return
	}

	// CLI mode
	if err := cli.Run(*cfg, os.Stdout, cli.NewLogger(cfg.Verbose)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
