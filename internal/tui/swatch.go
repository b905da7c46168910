// Package tui provides the terminal UI: the static swatch sheet, the
// interactive demo model, and SSH server support via Wish.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/termtint/internal/capability"
	"github.com/vovakirdan/termtint/internal/colormath"
	"github.com/vovakirdan/termtint/internal/style"
	"github.com/vovakirdan/termtint/internal/theme"
)

// Swatch layout constants
const (
	swatchBlockWidth = 7 // Width of one color cell
	rampSteps        = 8 // Steps in a transform ramp
)

var colorNames = [16]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"brblk", "brred", "brgrn", "bryel", "brblu", "brmag", "brcyn", "brwht",
}

// Swatch renders a static sheet for the theme: the 16-color grid, the
// semantic aliases, and transform ramps when real palette data is present.
func Swatch(th *theme.Theme) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).MarginBottom(1)
	b.WriteString(titleStyle.Render(fmt.Sprintf(
		"termtint swatch  [%s / %s]",
		th.Capabilities.Level, th.Capabilities.Theme,
	)))
	b.WriteString("\n\n")

	for row := 0; row < 2; row++ {
		var blocks, labels []string
		for col := 0; col < 8; col++ {
			i := row*8 + col
			c := th.ANSI(i)
			blocks = append(blocks, cell(c))
			labels = append(labels, fmt.Sprintf("%-*s", swatchBlockWidth, colorNames[i]))
		}
		b.WriteString(strings.Join(blocks, " "))
		b.WriteString("\n")
		b.WriteString(strings.Join(labels, " "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString("aliases  ")
	for _, a := range []struct {
		name  string
		color theme.Color
	}{
		{"error", th.Error},
		{"warning", th.Warning},
		{"success", th.Success},
		{"info", th.Info},
		{"muted", th.Muted},
	} {
		b.WriteString(a.color.Render(a.name))
		b.WriteString("  ")
	}
	b.WriteString("\n")

	// Ramps need real RGB to act on.
	if th.Capabilities.Theme == capability.ThemePalette {
		b.WriteString("\n")
		b.WriteString(ramp("lighten", th.Red, theme.Color.Lighten))
		b.WriteString(ramp("darken ", th.Red, theme.Color.Darken))
		b.WriteString(ramp("fade   ", th.Red, theme.Color.Fade))
		b.WriteString(rotateRamp(th.Red))
	}

	return b.String()
}

// cell renders one block in a color's own background with its index on top.
func cell(c theme.Color) string {
	label := fmt.Sprintf(" %-*d", swatchBlockWidth-1, c.Index())
	return c.Inverse().Render(label)
}

func ramp(name string, c theme.Color, op func(theme.Color, float64) theme.Color) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString(" ")
	for i := 0; i < rampSteps; i++ {
		amount := float64(i) / float64(rampSteps-1)
		b.WriteString(op(c, amount).Inverse().Render("   "))
	}
	b.WriteString("\n")
	return b.String()
}

func rotateRamp(c theme.Color) string {
	var b strings.Builder
	b.WriteString("rotate  ")
	for i := 0; i < rampSteps; i++ {
		degrees := float64(i) * 360 / float64(rampSteps)
		b.WriteString(c.Rotate(degrees).Inverse().Render("   "))
	}
	b.WriteString("\n")
	return b.String()
}

// block renders arbitrary RGB as a background run, quantized down to the
// capability level. Used by views that compute colors outside the theme,
// like gradient bars.
func block(level capability.ColorLevel, rgb colormath.RGB, width int) string {
	text := strings.Repeat(" ", width)
	if level == capability.LevelNone {
		return text
	}
	var p style.Paint
	switch level {
	case capability.LevelTrueColor:
		p = style.True(rgb)
	case capability.LevelANSI256:
		p = style.Extended(colormath.ToANSI256(rgb))
	default:
		p = style.Basic(colormath.ToANSI16(rgb))
	}
	return style.Render(nil, &p, 0, text)
}
