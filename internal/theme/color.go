// Package theme turns capability and palette snapshots into an immutable
// theme of composable color values. A Color accumulates transforms and
// modifiers without applying them; everything resolves at render time, when
// the capability tier and the final background are known.
package theme

import (
	"github.com/vovakirdan/termtint/internal/capability"
	"github.com/vovakirdan/termtint/internal/colormath"
	"github.com/vovakirdan/termtint/internal/style"
)

type transformKind int

const (
	opSaturate transformKind = iota
	opDesaturate
	opLighten
	opDarken
	opRotate
	opFade
)

// transform is one deferred operation, replayed in recorded order at render
// time.
type transform struct {
	kind   transformKind
	amount float64
}

// background is the flattened snapshot taken by On: the target's base RGB
// and its own transform list, never a live reference to the target. That
// keeps background resolution O(1) no matter how deep On chains go, and
// rules out cycles.
type background struct {
	index      int
	rgb        *colormath.RGB
	transforms []transform
}

// Color is an immutable terminal color value. The zero value renders text
// unchanged. Every mutator returns a new value; the receiver is never
// altered, so colors are safe to share and copy freely.
type Color struct {
	index      int
	rgb        *colormath.RGB
	transforms []transform
	mods       style.Modifier
	bg         *background
	caps       capability.Snapshot
	termBG     *colormath.RGB
}

// Index returns the canonical ANSI index (0-15).
func (c Color) Index() int { return c.index }

// RGB returns the base RGB and whether one is known. It is known exactly
// when the theme was built at palette level.
func (c Color) RGB() (colormath.RGB, bool) {
	if c.rgb == nil {
		return colormath.RGB{}, false
	}
	return *c.rgb, true
}

func (c Color) withTransform(kind transformKind, amount float64) Color {
	ts := make([]transform, len(c.transforms), len(c.transforms)+1)
	copy(ts, c.transforms)
	c.transforms = append(ts, transform{kind: kind, amount: amount})
	return c
}

// Saturate returns a copy with HSL saturation raised by amount at render.
func (c Color) Saturate(amount float64) Color {
	return c.withTransform(opSaturate, amount)
}

// Desaturate returns a copy with HSL saturation lowered by amount at render.
func (c Color) Desaturate(amount float64) Color {
	return c.withTransform(opDesaturate, amount)
}

// Lighten returns a copy with HSL lightness raised by amount at render.
func (c Color) Lighten(amount float64) Color {
	return c.withTransform(opLighten, amount)
}

// Darken returns a copy with HSL lightness lowered by amount at render.
func (c Color) Darken(amount float64) Color {
	return c.withTransform(opDarken, amount)
}

// Rotate returns a copy with the hue rotated by degrees at render.
func (c Color) Rotate(degrees float64) Color {
	return c.withTransform(opRotate, degrees)
}

// Fade returns a copy faded toward the effective background at render: the
// background set via On if any, else the terminal's own background. With
// neither known, Fade is a no-op.
func (c Color) Fade(amount float64) Color {
	return c.withTransform(opFade, amount)
}

// On returns a copy drawn over the given background color. The target is
// flattened to a snapshot of its base and transform list at call time;
// later changes to b are invisible, and b's own background is not chained.
func (c Color) On(b Color) Color {
	bg := &background{index: b.index}
	if b.rgb != nil {
		rgb := *b.rgb
		bg.rgb = &rgb
	}
	if len(b.transforms) > 0 {
		bg.transforms = make([]transform, len(b.transforms))
		copy(bg.transforms, b.transforms)
	}
	c.bg = bg
	return c
}

// Inverse returns a copy that swaps foreground and background at render.
func (c Color) Inverse() Color { return c.withModifier(style.Reverse) }

// Bold returns a copy rendered bold.
func (c Color) Bold() Color { return c.withModifier(style.Bold) }

// Dim returns a copy rendered faint.
func (c Color) Dim() Color { return c.withModifier(style.Dim) }

// Italic returns a copy rendered italic.
func (c Color) Italic() Color { return c.withModifier(style.Italic) }

// Underline returns a copy rendered underlined.
func (c Color) Underline() Color { return c.withModifier(style.Underline) }

// Strikethrough returns a copy rendered struck through.
func (c Color) Strikethrough() Color { return c.withModifier(style.Strikethrough) }

// Hidden returns a copy rendered concealed.
func (c Color) Hidden() Color { return c.withModifier(style.Hidden) }

func (c Color) withModifier(m style.Modifier) Color {
	c.mods = c.mods.With(m)
	return c
}

// Render resolves the color against its capability snapshot and wraps text.
// At LevelNone the text comes back byte-for-byte unchanged.
func (c Color) Render(text string) string {
	if c.caps.Level == capability.LevelNone {
		return text
	}

	// Resolve the background first; the foreground's fade target depends
	// on it.
	var bgRGB *colormath.RGB
	if c.bg != nil && c.bg.rgb != nil {
		resolved := replay(*c.bg.rgb, c.bg.transforms, c.termBG)
		bgRGB = &resolved
	}

	var fgRGB *colormath.RGB
	if c.rgb != nil {
		target := bgRGB
		if target == nil {
			target = c.termBG
		}
		resolved := replay(*c.rgb, c.transforms, target)
		fgRGB = &resolved
	}

	fg := encodePaint(c.caps.Level, c.index, fgRGB)
	var bg *style.Paint
	if c.bg != nil {
		p := encodePaint(c.caps.Level, c.bg.index, bgRGB)
		bg = &p
	}
	return style.Render(&fg, bg, c.mods, text)
}

// replay applies the recorded transforms in order. Fade steps target
// fadeTarget and are dropped when no target is known.
func replay(base colormath.RGB, transforms []transform, fadeTarget *colormath.RGB) colormath.RGB {
	out := base
	for _, t := range transforms {
		switch t.kind {
		case opSaturate:
			out = colormath.Saturate(out, t.amount)
		case opDesaturate:
			out = colormath.Desaturate(out, t.amount)
		case opLighten:
			out = colormath.Lighten(out, t.amount)
		case opDarken:
			out = colormath.Darken(out, t.amount)
		case opRotate:
			out = colormath.Rotate(out, t.amount)
		case opFade:
			if fadeTarget != nil {
				out = colormath.Fade(out, *fadeTarget, t.amount, colormath.ShorterPath)
			}
		}
	}
	return out
}

// encodePaint picks the wire representation for the capability level. With
// no resolved RGB (blind theme, or the ansi16 tier where there is nothing
// to transform) the canonical index is used as-is.
func encodePaint(level capability.ColorLevel, index int, rgb *colormath.RGB) style.Paint {
	switch {
	case level == capability.LevelTrueColor && rgb != nil:
		return style.True(*rgb)
	case level == capability.LevelANSI256 && rgb != nil:
		return style.Extended(colormath.ToANSI256(*rgb))
	default:
		return style.Basic(uint8(index))
	}
}
