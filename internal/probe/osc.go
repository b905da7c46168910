// Package probe learns the terminal's actual RGB palette by sending OSC
// color queries and parsing the replies. One batched write asks for ANSI
// indices 0-15 (OSC 4) plus the default foreground (OSC 10) and background
// (OSC 11); responses are accumulated under a timeout with the input in raw
// mode. Every failure path degrades to a nil snapshot, never an error.
package probe

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/termtint/internal/colormath"
)

const (
	esc = '\x1b'
	bel = '\x07'

	// expectedResponses is the size of the query batch: 16 indexed colors
	// plus foreground and background.
	expectedResponses = 18
)

// Kind classifies a parsed OSC reply.
type Kind int

const (
	KindColor Kind = iota
	KindForeground
	KindBackground
)

// Response is one parsed OSC reply unit. Index is only meaningful for
// KindColor.
type Response struct {
	Kind  Kind
	Index int
	RGB   colormath.RGB
}

// Snapshot is the palette learned from a probe. Immutable once captured.
type Snapshot struct {
	ANSI       map[int]colormath.RGB
	Foreground *colormath.RGB
	Background *colormath.RGB
}

// Complete reports whether all 16 indexed colors were captured, the bar the
// resolver requires for a palette-level theme.
func (s *Snapshot) Complete() bool {
	return s != nil && len(s.ANSI) >= 16
}

// Query returns the batched query: OSC 4 for each index 0-15, then OSC 10
// and OSC 11, concatenated into one write to minimize round trips.
func Query() []byte {
	var b bytes.Buffer
	for n := 0; n < 16; n++ {
		fmt.Fprintf(&b, "%c]4;%d;?%c", esc, n, bel)
	}
	fmt.Fprintf(&b, "%c]10;?%c", esc, bel)
	fmt.Fprintf(&b, "%c]11;?%c", esc, bel)
	return b.Bytes()
}

// Parse extracts every well-formed OSC color reply from buf. Malformed
// chunks are dropped individually; they never abort the whole parse.
func Parse(buf []byte) []Response {
	var out []Response
	for _, chunk := range splitSequences(buf) {
		if r, ok := parseChunk(chunk); ok {
			out = append(out, r)
		}
	}
	return out
}

// splitSequences returns the payloads of candidate OSC sequences: the bytes
// between each "ESC ]" and its terminator (BEL or ST), or the next sequence
// start when a terminator was lost.
func splitSequences(buf []byte) [][]byte {
	var chunks [][]byte
	for i := 0; i+1 < len(buf); i++ {
		if buf[i] != esc || buf[i+1] != ']' {
			continue
		}
		start := i + 2
		end := start
		for end < len(buf) {
			if buf[end] == bel {
				break
			}
			if buf[end] == esc {
				// ST ("ESC \") or the start of the next sequence.
				break
			}
			end++
		}
		chunks = append(chunks, buf[start:end])
		i = end - 1
	}
	return chunks
}

// parseChunk parses one "code ; [index ;] rgb:RRRR/GGGG/BBBB" payload.
func parseChunk(chunk []byte) (Response, bool) {
	fields := strings.Split(string(chunk), ";")
	if len(fields) < 2 {
		return Response{}, false
	}

	rgb, ok := parseRGBSpec(fields[len(fields)-1])
	if !ok {
		return Response{}, false
	}

	switch fields[0] {
	case "4":
		if len(fields) < 3 {
			return Response{}, false
		}
		index, err := strconv.Atoi(fields[1])
		if err != nil || index < 0 || index > 15 {
			return Response{}, false
		}
		return Response{Kind: KindColor, Index: index, RGB: rgb}, true
	case "10":
		return Response{Kind: KindForeground, RGB: rgb}, true
	case "11":
		return Response{Kind: KindBackground, RGB: rgb}, true
	}
	return Response{}, false
}

// parseRGBSpec parses "rgb:RRRR/GGGG/BBBB" where each field is 2 or 4 hex
// digits. A 4-digit field contributes its most-significant byte.
func parseRGBSpec(spec string) (colormath.RGB, bool) {
	spec = strings.TrimSpace(spec)
	rest, ok := strings.CutPrefix(spec, "rgb:")
	if !ok {
		return colormath.RGB{}, false
	}
	parts := strings.Split(rest, "/")
	if len(parts) != 3 {
		return colormath.RGB{}, false
	}
	var ch [3]uint8
	for i, p := range parts {
		v, ok := parseChannel(p)
		if !ok {
			return colormath.RGB{}, false
		}
		ch[i] = v
	}
	return colormath.RGB{R: ch[0], G: ch[1], B: ch[2]}, true
}

func parseChannel(s string) (uint8, bool) {
	if len(s) != 2 && len(s) != 4 {
		return 0, false
	}
	v, err := strconv.ParseUint(s[:2], 16, 8)
	if err != nil {
		return 0, false
	}
	return uint8(v), true
}
