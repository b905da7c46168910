package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termtint/internal/probe"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Query the terminal palette over OSC",
	Long: `Ask the terminal for its real palette colors using OSC 4 (indexed
colors), OSC 10 (foreground) and OSC 11 (background), and print whatever
it answered.

The terminal is switched to raw mode for the exchange and always restored.
Terminals that do not answer simply time out; nothing is printed for
colors the terminal kept to itself.

Examples:
  termtint probe
  termtint probe --timeout 1000`,
	Run: runProbe,
}

func runProbe(cmd *cobra.Command, args []string) {
	snap := probe.Run(context.Background(), probe.Options{
		Timeout:    time.Duration(flagTimeout) * time.Millisecond,
		RequireTTY: true,
		Logger:     newLogger(),
	})
	if snap == nil {
		fmt.Fprintln(os.Stderr, "No response; this terminal does not answer OSC color queries.")
		os.Exit(1)
	}

	for i := 0; i < 16; i++ {
		if rgb, ok := snap.ANSI[i]; ok {
			fmt.Printf("color %-2d     %s\n", i, rgb.Hex())
		}
	}
	if snap.Foreground != nil {
		fmt.Printf("foreground   %s\n", snap.Foreground.Hex())
	}
	if snap.Background != nil {
		fmt.Printf("background   %s\n", snap.Background.Hex())
	}
	if !snap.Complete() {
		fmt.Fprintf(os.Stderr, "\nPartial palette: %d of 16 indexed colors answered.\n", len(snap.ANSI))
	}
}
