package ansiterm

import (
	"unicode/utf8"

	"github.com/gdamore/encoding"
)

var cp437Decoder = encoding.CP437.NewDecoder()

// decodeCP437 maps a single CP437 byte to its BMP codepoint (§4.6).
func decodeCP437(b byte) rune {
	out, err := cp437Decoder.Bytes([]byte{b})
	if err != nil || len(out) == 0 {
		return rune(b)
	}
	r, _ := utf8.DecodeRune(out)
	return r
}

// DecodeCP437 is the exported form of decodeCP437, for callers (the xp
// compressed grid loader) that need the same byte-to-codepoint table
// without going through the escape-sequence interpreter.
func DecodeCP437(b byte) rune {
	return decodeCP437(b)
}

// cubeChannel maps a 0-5 cube coordinate to an 8-bit channel value
// (§4.6 extended palette mapping).
func cubeChannel(v int) uint8 {
	return uint8((255*v + 3) / 5)
}

// greyChannel maps a 0-23 greyscale-ramp index to an 8-bit channel value.
func greyChannel(v int) uint8 {
	return uint8((255*v + 12) / 23)
}

// xterm256ToRGB decodes an xterm 256-color index into RGB (§4.6): 0-15
// pass through unused here (callers special-case those against the
// active palette directly), 16-231 are a 6x6x6 cube, 232-255 a
// greyscale ramp.
func xterm256ToRGB(idx int) (r, g, b uint8) {
	switch {
	case idx < 16:
		return 0, 0, 0
	case idx <= 231:
		n := idx - 16
		ri := n / 36
		gi := (n / 6) % 6
		bi := n % 6
		return cubeChannel(ri), cubeChannel(gi), cubeChannel(bi)
	default:
		v := idx - 232
		g := greyChannel(v)
		return g, g, g
	}
}
