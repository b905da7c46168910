package style

import (
	"strings"
	"testing"

	"github.com/vovakirdan/termtint/internal/colormath"
)

func paintPtr(p Paint) *Paint { return &p }

func TestRenderPassthrough(t *testing.T) {
	if got := Render(nil, nil, 0, "plain"); got != "plain" {
		t.Errorf("Render with nothing to apply = %q, expected unchanged text", got)
	}
}

func TestRenderForegroundRepresentations(t *testing.T) {
	tests := []struct {
		name string
		fg   Paint
		want string
	}{
		{name: "basic low", fg: Basic(1), want: "31"},
		{name: "basic bright", fg: Basic(9), want: "91"},
		{name: "extended", fg: Extended(208), want: "38;5;208"},
		{name: "truecolor", fg: True(colormath.RGB{R: 255, G: 128, B: 0}), want: "38;2;255;128;0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Render(paintPtr(tc.fg), nil, 0, "x")
			if !strings.Contains(got, tc.want) {
				t.Errorf("Render() = %q, expected to contain %q", got, tc.want)
			}
			if !strings.Contains(got, "x") || !strings.HasSuffix(got, "m") {
				t.Errorf("Render() = %q, not wrapped with text and reset", got)
			}
		})
	}
}

func TestRenderBackground(t *testing.T) {
	got := Render(nil, paintPtr(Extended(52)), 0, "x")
	if !strings.Contains(got, "48;5;52") {
		t.Errorf("Render() = %q, expected 256-palette background", got)
	}

	got = Render(nil, paintPtr(True(colormath.RGB{R: 30, G: 30, B: 30})), 0, "x")
	if !strings.Contains(got, "48;2;30;30;30") {
		t.Errorf("Render() = %q, expected truecolor background", got)
	}
}

func TestRenderModifiers(t *testing.T) {
	mods := Modifier(0).With(Bold).With(Underline).With(Hidden)
	got := Render(nil, nil, mods, "x")
	for _, code := range []string{"1", "4", "8"} {
		if !strings.Contains(got, code) {
			t.Errorf("Render() = %q, missing SGR code %q", got, code)
		}
	}
}

func TestModifierSet(t *testing.T) {
	var m Modifier
	m = m.With(Bold).With(Dim)
	if !m.Has(Bold) || !m.Has(Dim) {
		t.Error("set bits not reported")
	}
	if m.Has(Italic) {
		t.Error("unset bit reported")
	}
	// With is idempotent.
	if m.With(Bold) != m {
		t.Error("adding an existing bit changed the set")
	}
}
