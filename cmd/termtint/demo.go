package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termtint/internal/tui"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Interactive theme preview",
	Long: `Open an interactive preview of the resolved theme: the palette, the
color transforms at an adjustable amount, and gradient ramps under each
hue path.

Examples:
  termtint demo
  termtint demo --force ansi256`,
	Run: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) {
	th, err := resolveTheme(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := tui.RunDemo(th); err != nil {
		fmt.Fprintf(os.Stderr, "Error running demo: %v\n", err)
		os.Exit(1)
	}
}
