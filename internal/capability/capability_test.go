package capability

import "testing"

func boolPtr(v bool) *bool              { return &v }
func levelPtr(l ColorLevel) *ColorLevel { return &l }

func TestDetectColorLevel(t *testing.T) {
	tests := []struct {
		name    string
		environ []string
		isTTY   bool
		want    ColorLevel
	}{
		{
			name:    "NO_COLOR empty still wins",
			environ: []string{"NO_COLOR=", "FORCE_COLOR=3", "TERM=xterm-256color"},
			isTTY:   true,
			want:    LevelNone,
		},
		{
			name:    "NO_COLOR any value wins",
			environ: []string{"NO_COLOR=1", "COLORTERM=truecolor", "TERM=xterm-256color"},
			isTTY:   true,
			want:    LevelNone,
		},
		{
			name:    "FORCE_COLOR empty means level 1",
			environ: []string{"FORCE_COLOR="},
			isTTY:   false,
			want:    LevelANSI16,
		},
		{
			name:    "FORCE_COLOR non-numeric means level 1",
			environ: []string{"FORCE_COLOR=yes"},
			isTTY:   false,
			want:    LevelANSI16,
		},
		{
			name:    "FORCE_COLOR=2 ignores TTY status",
			environ: []string{"FORCE_COLOR=2"},
			isTTY:   false,
			want:    LevelANSI256,
		},
		{
			name:    "FORCE_COLOR clamps high values",
			environ: []string{"FORCE_COLOR=99"},
			isTTY:   false,
			want:    LevelTrueColor,
		},
		{
			name:    "FORCE_COLOR clamps negative values",
			environ: []string{"FORCE_COLOR=-5"},
			isTTY:   true,
			want:    LevelNone,
		},
		{
			name:    "FORCE_COLOR zero disables",
			environ: []string{"FORCE_COLOR=0", "TERM=xterm-256color"},
			isTTY:   true,
			want:    LevelNone,
		},
		{
			name:    "non-TTY means none",
			environ: []string{"TERM=xterm-256color"},
			isTTY:   false,
			want:    LevelNone,
		},
		{
			name:    "truecolor from COLORTERM",
			environ: []string{"TERM=xterm-256color", "COLORTERM=truecolor"},
			isTTY:   true,
			want:    LevelTrueColor,
		},
		{
			name:    "256 colors from TERM",
			environ: []string{"TERM=xterm-256color"},
			isTTY:   true,
			want:    LevelANSI256,
		},
		{
			name:    "dumb terminal",
			environ: []string{"TERM=dumb"},
			isTTY:   true,
			want:    LevelNone,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DetectColorLevel(Options{Environ: tc.environ}, tc.isTTY)
			if got != tc.want {
				t.Errorf("DetectColorLevel() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestDetectOverrideBeatsEverything(t *testing.T) {
	opts := Options{
		Override: levelPtr(LevelTrueColor),
		Environ:  []string{"NO_COLOR=1"},
		ForceTTY: boolPtr(false),
	}
	snap := Detect(opts)
	if snap.Level != LevelTrueColor {
		t.Errorf("override ignored: level = %v", snap.Level)
	}
	if snap.IsTTY {
		t.Error("ForceTTY(false) ignored")
	}
}

func TestDetectStartsBlind(t *testing.T) {
	snap := Detect(Options{Environ: []string{"TERM=xterm-256color"}, ForceTTY: boolPtr(true)})
	if snap.Theme != ThemeBlind {
		t.Errorf("fresh snapshot theme level = %v, expected blind", snap.Theme)
	}
}

func TestWithThemeReturnsNewSnapshot(t *testing.T) {
	orig := Snapshot{Level: LevelANSI256, Theme: ThemeBlind, IsTTY: true}
	upgraded := orig.WithTheme(ThemePalette)
	if orig.Theme != ThemeBlind {
		t.Error("WithTheme mutated the receiver")
	}
	if upgraded.Theme != ThemePalette || upgraded.Level != orig.Level || upgraded.IsTTY != orig.IsTTY {
		t.Errorf("WithTheme produced %+v", upgraded)
	}
}

func TestLevelStrings(t *testing.T) {
	tests := []struct {
		level ColorLevel
		want  string
	}{
		{LevelNone, "none"},
		{LevelANSI16, "ansi16"},
		{LevelANSI256, "ansi256"},
		{LevelTrueColor, "truecolor"},
	}
	for _, tc := range tests {
		if got := tc.level.String(); got != tc.want {
			t.Errorf("%d.String() = %q, expected %q", tc.level, got, tc.want)
		}
	}
}
