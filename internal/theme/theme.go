package theme

import (
	"github.com/vovakirdan/termtint/internal/capability"
	"github.com/vovakirdan/termtint/internal/colormath"
	"github.com/vovakirdan/termtint/internal/probe"
)

// Canonical indices for the semantic aliases.
const (
	aliasError   = 1 // red
	aliasSuccess = 2 // green
	aliasWarning = 3 // yellow
	aliasInfo    = 6 // cyan
	aliasMuted   = 8 // bright black
)

// Theme is the finished, read-only set of color values for one terminal.
// Build it once per program run; an upgrade after probing means building a
// brand-new Theme, never mutating this one.
type Theme struct {
	Black   Color
	Red     Color
	Green   Color
	Yellow  Color
	Blue    Color
	Magenta Color
	Cyan    Color
	White   Color

	BrightBlack   Color
	BrightRed     Color
	BrightGreen   Color
	BrightYellow  Color
	BrightBlue    Color
	BrightMagenta Color
	BrightCyan    Color
	BrightWhite   Color

	Error   Color
	Warning Color
	Success Color
	Info    Color
	Muted   Color

	Foreground Color
	Background Color

	Capabilities capability.Snapshot
	Palette      *probe.Snapshot

	ansi [16]Color
}

// ANSI returns the canonical color for an index 0-15.
func (t *Theme) ANSI(index int) Color {
	if index < 0 || index > 15 {
		return Color{}
	}
	return t.ansi[index]
}

// New builds a theme from a capability snapshot and an optional palette
// snapshot. Pure: no probing, no environment reads. Base RGB values are
// attached only at palette theme level; at lower levels the palette (if
// any) contributes just the ambient foreground/background.
func New(caps capability.Snapshot, palette *probe.Snapshot) *Theme {
	var termFG, termBG *colormath.RGB
	if palette != nil {
		if palette.Foreground != nil {
			rgb := *palette.Foreground
			termFG = &rgb
		}
		if palette.Background != nil {
			rgb := *palette.Background
			termBG = &rgb
		}
	}

	t := &Theme{Capabilities: caps, Palette: palette}
	for i := 0; i < 16; i++ {
		var rgb *colormath.RGB
		if caps.Theme == capability.ThemePalette && palette != nil {
			if v, ok := palette.ANSI[i]; ok {
				rgb = &v
			}
		}
		t.ansi[i] = Color{index: i, rgb: rgb, caps: caps, termBG: termBG}
	}

	t.Black = t.ansi[0]
	t.Red = t.ansi[1]
	t.Green = t.ansi[2]
	t.Yellow = t.ansi[3]
	t.Blue = t.ansi[4]
	t.Magenta = t.ansi[5]
	t.Cyan = t.ansi[6]
	t.White = t.ansi[7]
	t.BrightBlack = t.ansi[8]
	t.BrightRed = t.ansi[9]
	t.BrightGreen = t.ansi[10]
	t.BrightYellow = t.ansi[11]
	t.BrightBlue = t.ansi[12]
	t.BrightMagenta = t.ansi[13]
	t.BrightCyan = t.ansi[14]
	t.BrightWhite = t.ansi[15]

	t.Error = t.ansi[aliasError]
	t.Warning = t.ansi[aliasWarning]
	t.Success = t.ansi[aliasSuccess]
	t.Info = t.ansi[aliasInfo]
	t.Muted = t.ansi[aliasMuted]

	t.Foreground = Color{index: 7, rgb: fgBase(caps, termFG), caps: caps, termBG: termBG}
	t.Background = Color{index: 0, rgb: bgBase(caps, termBG), caps: caps, termBG: termBG}
	return t
}

// fgBase and bgBase attach real RGB to the default fg/bg colors only at
// palette level, keeping the base-RGB-iff-palette invariant.
func fgBase(caps capability.Snapshot, termFG *colormath.RGB) *colormath.RGB {
	if caps.Theme != capability.ThemePalette || termFG == nil {
		return nil
	}
	rgb := *termFG
	return &rgb
}

func bgBase(caps capability.Snapshot, termBG *colormath.RGB) *colormath.RGB {
	if caps.Theme != capability.ThemePalette || termBG == nil {
		return nil
	}
	rgb := *termBG
	return &rgb
}
