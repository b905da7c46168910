// Package hintfile provides best-effort palette hints from configuration
// files: a user-maintained YAML file mapping terminal identities to ANSI
// colors, backed by embedded defaults for well-known terminals. The theme
// resolver treats it as fast and optional; a missing or broken file is
// never an error.
package hintfile

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/termtint/internal/colormath"
)

// Palette is a partial palette extracted from a hint file.
type Palette struct {
	ANSI       map[int]colormath.RGB
	Foreground *colormath.RGB
	Background *colormath.RGB
}

// File is a parsed hint file: terminal identity to palette entry.
type File struct {
	Terminals map[string]Entry `yaml:"terminals"`
}

// Entry is the on-disk shape of one terminal's hints. All fields are
// optional; ANSI lists hex colors for indices 0 upward.
type Entry struct {
	ANSI       []string `yaml:"ansi"`
	Foreground string   `yaml:"foreground"`
	Background string   `yaml:"background"`
}

// DefaultPath returns the user hint file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".termtint", "palettes.yaml")
}

// Load parses the hint file at path. Search order when path is empty:
// the default user path, then the embedded defaults.
func Load(path string) (*File, error) {
	if path != "" {
		return loadFile(path)
	}

	if userPath := DefaultPath(); userPath != "" {
		if f, err := loadFile(userPath); err == nil {
			return f, nil
		}
	}

	var f File
	if err := yaml.Unmarshal(defaultPalettesYAML, &f); err != nil {
		return nil, fmt.Errorf("hintfile: embedded defaults broken: %w", err)
	}
	return &f, nil
}

func loadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("hintfile: cannot read %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("hintfile: cannot parse %s: %w", path, err)
	}
	return &f, nil
}

// Lookup returns the palette for a terminal identity, or nil when the file
// has nothing usable for it. Unparseable individual colors are skipped.
func (f *File) Lookup(identity string) *Palette {
	if f == nil || identity == "" {
		return nil
	}
	entry, ok := f.Terminals[identity]
	if !ok {
		return nil
	}

	p := &Palette{ANSI: make(map[int]colormath.RGB, len(entry.ANSI))}
	for i, hex := range entry.ANSI {
		if i > 15 {
			break
		}
		if rgb, ok := colormath.ParseHex(hex); ok {
			p.ANSI[i] = rgb
		}
	}
	if rgb, ok := colormath.ParseHex(entry.Foreground); ok {
		p.Foreground = &rgb
	}
	if rgb, ok := colormath.ParseHex(entry.Background); ok {
		p.Background = &rgb
	}
	if len(p.ANSI) == 0 && p.Foreground == nil && p.Background == nil {
		return nil
	}
	return p
}
