package colormath

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGB
		ok    bool
	}{
		{name: "with hash", input: "#ff8000", want: RGB{0xff, 0x80, 0x00}, ok: true},
		{name: "without hash", input: "1e1e1e", want: RGB{0x1e, 0x1e, 0x1e}, ok: true},
		{name: "uppercase", input: "#FFAA00", want: RGB{0xff, 0xaa, 0x00}, ok: true},
		{name: "too short", input: "#fff", ok: false},
		{name: "garbage", input: "#zzzzzz", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseHex(tc.input)
			if ok != tc.ok {
				t.Fatalf("ParseHex(%q) ok = %v, expected %v", tc.input, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Errorf("ParseHex(%q) = %v, expected %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := RGB{0x12, 0xab, 0xef}
	got, ok := ParseHex(c.Hex())
	if !ok || got != c {
		t.Errorf("round trip through Hex() = %v (ok=%v), expected %v", got, ok, c)
	}
}

func TestHSLRoundTrip(t *testing.T) {
	colors := []RGB{
		{0, 0, 0},
		{255, 255, 255},
		{128, 128, 128},
		{255, 0, 0},
		{12, 200, 99},
		{200, 30, 240},
		{1, 2, 3},
		{250, 128, 114},
	}

	for _, c := range colors {
		h, s, l := c.HSL()
		back := FromHSL(h, s, l)
		if !within(c, back, 1) {
			t.Errorf("HSL round trip for %v: got %v (h=%v s=%v l=%v)", c, back, h, s, l)
		}
	}
}

func TestHSLAchromatic(t *testing.T) {
	for _, v := range []uint8{0, 77, 128, 255} {
		h, s, _ := RGB{v, v, v}.HSL()
		if h != 0 || s != 0 {
			t.Errorf("gray %d: h=%v s=%v, expected both 0", v, h, s)
		}
	}
}

func TestLuminance(t *testing.T) {
	if l := (RGB{0, 0, 0}).Luminance(); l != 0 {
		t.Errorf("black luminance = %v, expected 0", l)
	}
	if l := (RGB{255, 255, 255}).Luminance(); l < 0.999 || l > 1.001 {
		t.Errorf("white luminance = %v, expected 1", l)
	}
	dark := RGB{30, 30, 30}.Luminance()
	light := RGB{220, 220, 220}.Luminance()
	if dark > 0.5 || light < 0.5 {
		t.Errorf("luminance ordering wrong: dark=%v light=%v", dark, light)
	}
}

// within reports whether a and b differ by at most tol per channel.
func within(a, b RGB, tol int) bool {
	abs := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}
	return abs(int(a.R)-int(b.R)) <= tol &&
		abs(int(a.G)-int(b.G)) <= tol &&
		abs(int(a.B)-int(b.B)) <= tol
}
