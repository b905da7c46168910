package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termtint/internal/tui"
)

var swatchCmd = &cobra.Command{
	Use:   "swatch",
	Short: "Render a color sheet for the resolved theme",
	Long: `Resolve the theme for this terminal and print a sheet of the 16 ANSI
colors, the semantic aliases, and transform ramps when the real palette
is known.

Examples:
  termtint swatch
  termtint swatch --force ansi16
  termtint swatch --no-hints --no-cache`,
	Run: runSwatch,
}

func runSwatch(cmd *cobra.Command, args []string) {
	th, err := resolveTheme(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tui.Swatch(th))
}
