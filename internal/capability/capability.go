// Package capability resolves what color encoding the current terminal can
// render, from explicit overrides, the NO_COLOR/FORCE_COLOR conventions, a
// TTY check and a host color-support probe. It reads the environment only;
// learning the terminal's actual palette is the probe package's job.
package capability

import (
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorLevel is the terminal's color-rendering tier.
type ColorLevel int

const (
	LevelNone ColorLevel = iota
	LevelANSI16
	LevelANSI256
	LevelTrueColor
)

// String returns a human-readable name for the level.
func (l ColorLevel) String() string {
	switch l {
	case LevelANSI16:
		return "ansi16"
	case LevelANSI256:
		return "ansi256"
	case LevelTrueColor:
		return "truecolor"
	default:
		return "none"
	}
}

// ThemeLevel is how much is known about the terminal's actual palette.
type ThemeLevel int

const (
	// ThemeBlind means nothing is known beyond canonical ANSI indices.
	ThemeBlind ThemeLevel = iota
	// ThemeLightDark means the default foreground/background are known.
	ThemeLightDark
	// ThemePalette means real RGB values for indices 0-15 are known.
	ThemePalette
)

// String returns a human-readable name for the theme level.
func (l ThemeLevel) String() string {
	switch l {
	case ThemeLightDark:
		return "lightdark"
	case ThemePalette:
		return "palette"
	default:
		return "blind"
	}
}

// Snapshot is an immutable record of detected capabilities. Upgrading the
// theme level produces a new snapshot via WithTheme, never a mutation.
type Snapshot struct {
	Level ColorLevel
	Theme ThemeLevel
	IsTTY bool
}

// WithTheme returns a copy of the snapshot at the given theme level.
func (s Snapshot) WithTheme(t ThemeLevel) Snapshot {
	s.Theme = t
	return s
}

// Options controls detection. The zero value detects from the process
// environment and stdout.
type Options struct {
	// Override forces the color level, bypassing all environment checks.
	Override *ColorLevel

	// Environ supplies "KEY=value" pairs; nil means os.Environ(). The SSH
	// server passes the session environment here.
	Environ []string

	// Output is the stream whose TTY status matters; nil means os.Stdout.
	Output *os.File

	// ForceTTY overrides the TTY check, for non-file outputs and tests.
	ForceTTY *bool
}

// Detect resolves a capability snapshot. It never fails; the theme level
// always starts blind and is upgraded only by the theme resolver.
func Detect(opts Options) Snapshot {
	isTTY := detectTTY(opts)
	return Snapshot{
		Level: DetectColorLevel(opts, isTTY),
		Theme: ThemeBlind,
		IsTTY: isTTY,
	}
}

// DetectColorLevel resolves the color level alone. Priority, highest first:
// explicit override, NO_COLOR (any value, including empty), FORCE_COLOR,
// non-TTY output, then the host color-support probe.
func DetectColorLevel(opts Options, isTTY bool) ColorLevel {
	if opts.Override != nil {
		return *opts.Override
	}

	env := environ(opts.Environ)
	if _, ok := env.lookup("NO_COLOR"); ok {
		return LevelNone
	}
	if v, ok := env.lookup("FORCE_COLOR"); ok {
		return levelFromForceColor(v)
	}
	if !isTTY {
		return LevelNone
	}
	return hostColorLevel(env)
}

// levelFromForceColor maps a FORCE_COLOR value to a level. Empty and
// non-numeric values mean level 1; numbers are clamped to [0,3].
func levelFromForceColor(v string) ColorLevel {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return LevelANSI16
	}
	if n < 0 {
		n = 0
	}
	if n > 3 {
		n = 3
	}
	return ColorLevel(n)
}

// hostColorLevel defers to termenv's environment-based profile detection.
func hostColorLevel(env environ) ColorLevel {
	out := termenv.NewOutput(os.Stdout, termenv.WithEnvironment(env))
	switch out.EnvColorProfile() {
	case termenv.TrueColor:
		return LevelTrueColor
	case termenv.ANSI256:
		return LevelANSI256
	case termenv.ANSI:
		return LevelANSI16
	default:
		return LevelNone
	}
}

func detectTTY(opts Options) bool {
	if opts.ForceTTY != nil {
		return *opts.ForceTTY
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	return isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
}

// Identity returns the terminal identity used to key palette hints and the
// palette cache: TERM_PROGRAM when set, else TERM.
func Identity(env []string) string {
	e := environ(env)
	if v, _ := e.lookup("TERM_PROGRAM"); v != "" {
		return v
	}
	v, _ := e.lookup("TERM")
	return v
}

// environ is a "KEY=value" slice implementing termenv.Environ.
type environ []string

func (e environ) Environ() []string {
	if e == nil {
		return os.Environ()
	}
	return e
}

func (e environ) Getenv(key string) string {
	v, _ := e.lookup(key)
	return v
}

func (e environ) lookup(key string) (string, bool) {
	if e == nil {
		return os.LookupEnv(key)
	}
	prefix := key + "="
	for _, kv := range e {
		if strings.HasPrefix(kv, prefix) {
			return kv[len(prefix):], true
		}
	}
	return "", false
}
