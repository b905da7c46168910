package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termtint/internal/capability"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Report detected terminal capabilities",
	Long: `Detect the terminal's color level from the environment and print it
along with the TTY status and terminal identity.

Detection honors NO_COLOR and FORCE_COLOR, checks whether stdout is a
terminal, and otherwise asks the environment what the host terminal
supports. No escape sequences are written.

Examples:
  termtint detect
  NO_COLOR=1 termtint detect
  termtint detect --force truecolor`,
	Run: runDetect,
}

func runDetect(cmd *cobra.Command, args []string) {
	override, err := parseForceLevel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	caps := capability.Detect(capability.Options{Override: override})
	identity := capability.Identity(nil)

	fmt.Printf("color level:  %s\n", caps.Level)
	fmt.Printf("tty:          %v\n", caps.IsTTY)
	if identity != "" {
		fmt.Printf("identity:     %s\n", identity)
	}
}
