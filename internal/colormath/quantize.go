package colormath

// The first 16 entries of the xterm 256-color palette. Real terminals remap
// these to the user's scheme; the table is only a reference for distance
// matching and index decoding.
var base16 = [16]RGB{
	{0x00, 0x00, 0x00}, // black
	{0x80, 0x00, 0x00}, // red
	{0x00, 0x80, 0x00}, // green
	{0x80, 0x80, 0x00}, // yellow
	{0x00, 0x00, 0x80}, // blue
	{0x80, 0x00, 0x80}, // magenta
	{0x00, 0x80, 0x80}, // cyan
	{0xc0, 0xc0, 0xc0}, // white
	{0x80, 0x80, 0x80}, // bright black
	{0xff, 0x00, 0x00}, // bright red
	{0x00, 0xff, 0x00}, // bright green
	{0xff, 0xff, 0x00}, // bright yellow
	{0x00, 0x00, 0xff}, // bright blue
	{0xff, 0x00, 0xff}, // bright magenta
	{0x00, 0xff, 0xff}, // bright cyan
	{0xff, 0xff, 0xff}, // bright white
}

var palette256 = buildPalette256()

func buildPalette256() [256]RGB {
	var p [256]RGB
	for i := 0; i < 256; i++ {
		p[i] = ANSI256ToRGB(uint8(i))
	}
	return p
}

// ANSI256ToRGB decodes a 256-palette index with the closed-form xterm
// formula: the base-16 table, a 6x6x6 cube, then a 24-step grayscale ramp.
func ANSI256ToRGB(index uint8) RGB {
	switch {
	case index < 16:
		return base16[index]
	case index < 232:
		i := int(index) - 16
		return RGB{
			R: cubeChannel(i / 36),
			G: cubeChannel(i / 6 % 6),
			B: cubeChannel(i % 6),
		}
	default:
		v := 8 + 10*(int(index)-232)
		return RGB{R: uint8(v), G: uint8(v), B: uint8(v)}
	}
}

// cubeChannel maps a cube coordinate 0..5 to its channel value.
func cubeChannel(v int) uint8 {
	if v == 0 {
		return 0
	}
	return uint8(55 + 40*v)
}

// ToANSI256 returns the 256-palette index nearest to c by squared Euclidean
// distance, short-circuiting on an exact match.
func ToANSI256(c RGB) uint8 {
	return nearest(c, palette256[:])
}

// ToANSI16 is the same search restricted to the 16 base colors.
func ToANSI16(c RGB) uint8 {
	return nearest(c, palette256[:16])
}

func nearest(c RGB, candidates []RGB) uint8 {
	best := 0
	bestDist := 1 << 30
	for i, ref := range candidates {
		d := sqDist(c, ref)
		if d == 0 {
			return uint8(i)
		}
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return uint8(best)
}

func sqDist(a, b RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
