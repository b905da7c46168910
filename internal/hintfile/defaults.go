package hintfile

import (
	_ "embed"
)

//go:embed defaults/palettes.yaml
var defaultPalettesYAML []byte
