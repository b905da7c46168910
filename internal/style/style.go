// Package style is the text-styling primitive: it takes a foreground and
// optional background in whatever representation the capability tier
// selected (basic index, 256-palette index, or 24-bit RGB) plus modifier
// flags, and wraps text in the matching SGR sequence with a trailing reset.
// Nothing else in the codebase assembles escape sequences.
package style

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/termtint/internal/colormath"
)

// Modifier is a set of SGR text attributes.
type Modifier uint8

const (
	Bold Modifier = 1 << iota
	Dim
	Italic
	Underline
	Strikethrough
	Hidden
	Reverse
)

// Has reports whether all bits of m are set.
func (s Modifier) Has(m Modifier) bool { return s&m == m }

// With returns the set with m added.
func (s Modifier) With(m Modifier) Modifier { return s | m }

type paintKind int

const (
	paintBasic paintKind = iota
	paintExtended
	paintTrue
)

// Paint is one resolved color in one of the three wire representations.
type Paint struct {
	kind  paintKind
	index uint8
	rgb   colormath.RGB
}

// Basic selects an ANSI index 0-15.
func Basic(index uint8) Paint {
	return Paint{kind: paintBasic, index: index & 0x0f}
}

// Extended selects a 256-palette index.
func Extended(index uint8) Paint {
	return Paint{kind: paintExtended, index: index}
}

// True selects a 24-bit RGB color.
func True(c colormath.RGB) Paint {
	return Paint{kind: paintTrue, rgb: c}
}

func (p Paint) color() ansi.Color {
	switch p.kind {
	case paintExtended:
		return ansi.ExtendedColor(p.index)
	case paintTrue:
		return ansi.TrueColor(uint32(p.rgb.R)<<16 | uint32(p.rgb.G)<<8 | uint32(p.rgb.B))
	default:
		return ansi.BasicColor(p.index)
	}
}

// Render wraps text with the SGR sequence for the given foreground,
// optional background and modifiers. With nothing to apply the text comes
// back unchanged, without even a reset.
func Render(fg, bg *Paint, mods Modifier, text string) string {
	if fg == nil && bg == nil && mods == 0 {
		return text
	}

	s := ansi.Style{}
	if fg != nil {
		s = s.ForegroundColor(fg.color())
	}
	if bg != nil {
		s = s.BackgroundColor(bg.color())
	}
	if mods.Has(Bold) {
		s = s.Bold()
	}
	if mods.Has(Dim) {
		s = s.Faint()
	}
	if mods.Has(Italic) {
		s = s.Italic()
	}
	if mods.Has(Underline) {
		s = s.Underline()
	}
	if mods.Has(Strikethrough) {
		s = s.Strikethrough()
	}
	if mods.Has(Hidden) {
		s = s.Conceal()
	}
	if mods.Has(Reverse) {
		s = s.Reverse()
	}
	return s.Styled(text)
}
