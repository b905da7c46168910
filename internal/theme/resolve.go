package theme

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termtint/internal/capability"
	"github.com/vovakirdan/termtint/internal/colormath"
	"github.com/vovakirdan/termtint/internal/hintfile"
	"github.com/vovakirdan/termtint/internal/palcache"
	"github.com/vovakirdan/termtint/internal/probe"
)

// Legacy fallback constants for the luminance inference. Kept as-is for
// behavioral compatibility; the 0.5 threshold and the gray values are not a
// principled model.
var (
	inferredDarkBackground  = colormath.RGB{R: 0x1e, G: 0x1e, B: 0x1e}
	inferredLightBackground = colormath.RGB{R: 0xee, G: 0xee, B: 0xee}
)

// Options controls theme resolution. The zero value detects from the
// process environment, probes the process terminal, and uses the embedded
// palette hints.
type Options struct {
	// Capability configures detection; its Override field short-circuits
	// all probing.
	Capability capability.Options

	// Input and Output are the probe streams; nil means stdin/stdout.
	Input  *os.File
	Output *os.File

	// ProbeTimeout bounds the palette probe; 0 means probe.DefaultTimeout.
	ProbeTimeout time.Duration

	// HintPath points at a palette hint file; empty means the default
	// search order. DisableHints skips the hint stage entirely.
	HintPath     string
	DisableHints bool

	// Cache, when set, is consulted before the live probe and refreshed
	// after a successful one. CacheTTL of 0 means palcache.DefaultTTL.
	Cache    *palcache.Store
	CacheTTL time.Duration

	// Logger receives debug output; nil means silent.
	Logger *log.Logger

	// Test seams.
	probeFn func(ctx context.Context) *probe.Snapshot
	hintFn  func(identity string) *hintfile.Palette
}

// Resolve runs the fallback chain and builds the theme. It always returns
// a usable theme; every stage degrades rather than fails.
//
// Stages, short-circuiting in order: forced capability options skip all
// probing; a hint-file palette with all 16 colors is taken with a live
// probe corroborating only fg/bg; a fresh cache entry or a live probe with
// all 16 indexed colors gives a palette-level theme; a probe that learned
// only fg/bg gives a light-dark theme; otherwise the theme stays blind.
func Resolve(ctx context.Context, opts Options) *Theme {
	caps := capability.Detect(opts.Capability)

	if opts.Capability.Override != nil {
		debugf(opts.Logger, "theme forced", "level", caps.Level)
		return New(caps, nil)
	}
	if caps.Level == capability.LevelNone || !caps.IsTTY {
		return New(caps, nil)
	}

	identity := capability.Identity(opts.Capability.Environ)
	runProbe := opts.probeFn
	if runProbe == nil {
		runProbe = func(ctx context.Context) *probe.Snapshot {
			return probe.Run(ctx, probe.Options{
				Input:      opts.Input,
				Output:     opts.Output,
				Timeout:    opts.ProbeTimeout,
				RequireTTY: true,
				Logger:     opts.Logger,
			})
		}
	}

	// Hint-file fast path. The file wins for the 16 indexed colors, but a
	// live probe still corroborates fg/bg: the terminal knows its current
	// scheme better than a config file knows the default one.
	if hints := lookupHints(opts, identity); hints != nil && len(hints.ANSI) >= 16 {
		snap := runProbe(ctx)
		pal := &probe.Snapshot{
			ANSI:       hints.ANSI,
			Foreground: hints.Foreground,
			Background: hints.Background,
		}
		if snap != nil && snap.Foreground != nil {
			pal.Foreground = snap.Foreground
		}
		if snap != nil && snap.Background != nil {
			pal.Background = snap.Background
		}
		inferMissing(pal)
		debugf(opts.Logger, "theme from hint file", "identity", identity)
		return New(caps.WithTheme(capability.ThemePalette), pal)
	}

	// Cached palette for this terminal identity, if still fresh.
	if opts.Cache != nil && identity != "" {
		if snap, err := opts.Cache.Fresh(identity, opts.CacheTTL); err == nil && snap.Complete() {
			inferMissing(snap)
			debugf(opts.Logger, "theme from cache", "identity", identity)
			return New(caps.WithTheme(capability.ThemePalette), snap)
		}
	}

	snap := runProbe(ctx)
	if snap.Complete() {
		inferMissing(snap)
		if opts.Cache != nil && identity != "" {
			if err := opts.Cache.Put(identity, snap); err != nil {
				debugf(opts.Logger, "cache write failed", "error", err)
			}
		}
		debugf(opts.Logger, "theme from probe", "colors", len(snap.ANSI))
		return New(caps.WithTheme(capability.ThemePalette), snap)
	}

	// Partial success: fg/bg without a full palette still tells us
	// light-vs-dark, which Fade can use.
	if snap != nil && (snap.Foreground != nil || snap.Background != nil) {
		pal := &probe.Snapshot{
			Foreground: snap.Foreground,
			Background: snap.Background,
		}
		inferMissing(pal)
		debugf(opts.Logger, "theme from partial probe")
		return New(caps.WithTheme(capability.ThemeLightDark), pal)
	}

	return New(caps, nil)
}

func lookupHints(opts Options, identity string) *hintfile.Palette {
	if opts.DisableHints || identity == "" {
		return nil
	}
	if opts.hintFn != nil {
		return opts.hintFn(identity)
	}
	f, err := hintfile.Load(opts.HintPath)
	if err != nil {
		debugf(opts.Logger, "hint file unavailable", "error", err)
		return nil
	}
	return f.Lookup(identity)
}

// inferMissing fills an absent foreground or background from the other
// one's perceived luminance. With both absent there is nothing to infer.
func inferMissing(s *probe.Snapshot) {
	if s.Background == nil && s.Foreground != nil {
		bg := inferredLightBackground
		if s.Foreground.Luminance() > 0.5 {
			bg = inferredDarkBackground
		}
		s.Background = &bg
	}
	if s.Foreground == nil && s.Background != nil {
		fg := inferredDarkBackground
		if s.Background.Luminance() <= 0.5 {
			fg = inferredLightBackground
		}
		s.Foreground = &fg
	}
}

func debugf(logger *log.Logger, msg string, kv ...any) {
	if logger != nil {
		logger.Debug(msg, kv...)
	}
}
