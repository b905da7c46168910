package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termtint/internal/palcache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the palette cache",
	Long: `Manage the cached palettes that let repeat runs in the same terminal
skip the OSC probe round trip.

Examples:
  termtint cache           # List cached palettes
  termtint cache clear     # Drop all cached palettes`,
	Run: runCacheList,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop all cached palettes",
	Run:   runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
}

func openCache() *palcache.Store {
	store, err := palcache.Open(cachePath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening palette cache: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runCacheList(cmd *cobra.Command, args []string) {
	store := openCache()
	defer store.Close()

	entries, err := store.Entries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading cache: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No cached palettes.")
		return
	}

	// Calculate column width
	maxIDLen := 8 // "Identity" header
	for _, e := range entries {
		if len(e.Identity) > maxIDLen {
			maxIDLen = len(e.Identity)
		}
	}

	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "Identity", "Colors", "Captured")
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "--------", "------", "--------")
	for _, e := range entries {
		fmt.Printf("  %-*s  %-7d  %s\n", maxIDLen, e.Identity, e.Colors, e.CapturedAt.Format("2006-01-02 15:04"))
	}
}

func runCacheClear(cmd *cobra.Command, args []string) {
	store := openCache()
	defer store.Close()

	if err := store.Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing cache: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Palette cache cleared.")
}
