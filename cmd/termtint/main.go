// termtint detects terminal color capabilities and the active color theme.
//
// Usage:
//
//	termtint detect           - Report color level, theme level and TTY status
//	termtint probe            - Query the terminal palette over OSC and print it
//	termtint swatch           - Render a color sheet for the resolved theme
//	termtint demo             - Interactive theme preview
//	termtint serve            - Start SSH server serving the demo
//	termtint cache            - Inspect or clear the palette cache
//
// Global flags:
//
//	--force <level>   - Force the color level (none, ansi16, ansi256, truecolor)
//	--hints <path>    - Palette hint file (default: ~/.termtint/palettes.yaml)
//	--no-hints        - Skip hint-file palettes
//	--cache <path>    - Palette cache database (default: ~/.termtint/palettes.db)
//	--no-cache        - Skip the palette cache
//	--timeout <ms>    - Probe timeout in milliseconds (default: 500)
//	--verbose         - Debug logging to stderr
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/termtint/internal/capability"
	"github.com/vovakirdan/termtint/internal/palcache"
	"github.com/vovakirdan/termtint/internal/theme"
)

var (
	// Global flags
	flagForce     string
	flagHints     string
	flagNoHints   bool
	flagCachePath string
	flagNoCache   bool
	flagTimeout   int
	flagVerbose   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termtint",
	Short: "Terminal color capability and theme detection",
	Long: `termtint figures out what colors your terminal can render and what
colors it actually renders them as, then adapts output to both.

Available commands:
  detect   - Report color level, theme level and TTY status
  probe    - Query the terminal palette over OSC and print it
  swatch   - Render a color sheet for the resolved theme
  demo     - Interactive theme preview
  serve    - Start SSH server serving the demo
  cache    - Inspect or clear the palette cache

Examples:
  termtint detect
  termtint probe
  termtint swatch --force ansi256
  termtint serve --ssh :2222
  termtint cache clear`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagForce, "force", "", "Force color level (none, ansi16, ansi256, truecolor)")
	rootCmd.PersistentFlags().StringVar(&flagHints, "hints", "", "Palette hint file (default: ~/.termtint/palettes.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoHints, "no-hints", false, "Skip hint-file palettes")
	rootCmd.PersistentFlags().StringVar(&flagCachePath, "cache", "", "Palette cache database (default: ~/.termtint/palettes.db)")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip the palette cache")
	rootCmd.PersistentFlags().IntVar(&flagTimeout, "timeout", 500, "Probe timeout in milliseconds")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Debug logging to stderr")

	// Add subcommands
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(swatchCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(cacheCmd)
}

// parseForceLevel maps the --force flag to a level, or nil when unset.
func parseForceLevel() (*capability.ColorLevel, error) {
	if flagForce == "" {
		return nil, nil
	}
	levels := map[string]capability.ColorLevel{
		"none":      capability.LevelNone,
		"ansi16":    capability.LevelANSI16,
		"ansi256":   capability.LevelANSI256,
		"truecolor": capability.LevelTrueColor,
	}
	l, ok := levels[flagForce]
	if !ok {
		return nil, fmt.Errorf("unknown color level %q (want none, ansi16, ansi256 or truecolor)", flagForce)
	}
	return &l, nil
}

func newLogger() *log.Logger {
	if !flagVerbose {
		return nil
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "termtint"})
	logger.SetLevel(log.DebugLevel)
	return logger
}

func cachePath() string {
	if flagCachePath != "" {
		return flagCachePath
	}
	return palcache.DefaultPath()
}

// resolveTheme runs the full fallback chain with the global flags applied.
// The cache is best-effort; a broken cache database only costs a probe.
func resolveTheme(ctx context.Context) (*theme.Theme, error) {
	override, err := parseForceLevel()
	if err != nil {
		return nil, err
	}

	opts := theme.Options{
		Capability:   capability.Options{Override: override},
		ProbeTimeout: time.Duration(flagTimeout) * time.Millisecond,
		HintPath:     flagHints,
		DisableHints: flagNoHints,
		Logger:       newLogger(),
	}

	if !flagNoCache {
		if store, cacheErr := palcache.Open(cachePath()); cacheErr == nil {
			defer store.Close()
			opts.Cache = store
		}
	}

	return theme.Resolve(ctx, opts), nil
}
