// Package ansiterm implements an ANSI/CP437 escape-sequence interpreter
// that blits decoded text and color directly into a Console's grid at a
// caller-chosen origin, without disturbing the console's own persistent
// cursor (§4.6). Grounded on terminal/output.go's byte-oriented writer
// loop, run in reverse: instead of emitting escape sequences from cell
// state, it consumes them and produces cell state.
package ansiterm

import (
	"unicode/utf8"

	"github.com/lixenwraith/textmode"
)

// Mode selects how input bytes are decoded into codepoints.
type Mode int

const (
	ModeCP437 Mode = iota
	ModeUTF8
)

const maxCSIArgs = 8

type interpreter struct {
	c            *textmode.Console
	baseX, baseY int
	col, row     int
	fg, bg       uint8
	style        textmode.Style
}

// Write decodes data (CP437 or UTF-8, per mode) and writes the resulting
// text and SGR-selected colors into c's grid starting at (baseX, baseY).
// The console's persistent cursor and save/restore stack are untouched.
func Write(c *textmode.Console, data []byte, baseX, baseY int, mode Mode) {
	it := &interpreter{c: c, baseX: baseX, baseY: baseY, col: baseX, row: baseY, fg: 8, bg: 0}
	it.run(data, mode)
}

func (it *interpreter) run(data []byte, mode Mode) {
	i := 0
	n := len(data)
	touched := false

	for i < n {
		b := data[i]
		switch {
		case b == 0x1A:
			i = n
		case b == '\n':
			it.col = it.baseX
			it.row++
			i++
		case b == '\r':
			it.col = it.baseX
			i++
		case b == 0x1B:
			next, ok := it.escape(data, i+1)
			if !ok {
				i = n
				break
			}
			i = next
		default:
			r, size, ok := decodeOne(data[i:], mode)
			if !ok {
				i = n
				break
			}
			it.putRune(r)
			touched = true
			i += size
		}
	}

	if touched {
		it.c.Touch()
	}
}

func decodeOne(b []byte, mode Mode) (r rune, size int, ok bool) {
	if mode == ModeUTF8 {
		r, size = utf8.DecodeRune(b)
		if r == utf8.RuneError && size <= 1 {
			return 0, 0, false
		}
		return r, size, true
	}
	return decodeCP437(b[0]), 1, true
}

func (it *interpreter) putRune(r rune) {
	cell := it.c.CharAt(it.col, it.row)
	if cell != nil {
		cell.Glyph = r
		cell.Color = textmode.PackColor(it.fg, it.bg)
		cell.Style = it.style
	}
	it.col++
}

// escape dispatches the byte right after ESC. Only CSI and OSC are
// recognized (§4.6); anything else is a single consumed, ignored byte.
func (it *interpreter) escape(data []byte, i int) (next int, ok bool) {
	if i >= len(data) {
		return 0, false
	}
	switch data[i] {
	case '[':
		return it.csi(data, i+1)
	case ']':
		return it.osc(data, i+1)
	default:
		return i + 1, true
	}
}

// csi reads an optional '=', up to maxCSIArgs decimal arguments, and a
// terminating letter.
func (it *interpreter) csi(data []byte, i int) (next int, ok bool) {
	n := len(data)
	if i < n && data[i] == '=' {
		i++
	}

	var args []int
	cur := 0
	haveDigit := false

	for i < n {
		ch := data[i]
		switch {
		case ch >= '0' && ch <= '9':
			cur = cur*10 + int(ch-'0')
			haveDigit = true
			i++
		case ch == ';':
			if len(args) < maxCSIArgs {
				args = append(args, cur)
			}
			cur = 0
			haveDigit = false
			i++
		default:
			if haveDigit && len(args) < maxCSIArgs {
				args = append(args, cur)
			}
			it.dispatchCSI(ch, args)
			return i + 1, true
		}
	}
	return 0, false
}

// osc consumes bytes up to and including a terminating BEL.
func (it *interpreter) osc(data []byte, i int) (next int, ok bool) {
	for i < len(data) {
		if data[i] == 0x07 {
			return i + 1, true
		}
		i++
	}
	return 0, false
}

func (it *interpreter) dispatchCSI(term byte, args []int) {
	switch term {
	case 'm':
		it.sgr(args)
	case 'C':
		if len(args) == 1 {
			it.col += args[0]
		}
	}
}

func (it *interpreter) sgr(args []int) {
	if len(args) == 0 {
		args = []int{0}
	}
	for i := 0; i < len(args); i++ {
		code := args[i]
		switch {
		case code == 0:
			it.style = textmode.StyleNone
			it.fg = 8
			it.bg = 0
		case code == 1:
			it.style |= textmode.StyleBold
		case code == 21:
			it.style &^= textmode.StyleBold
		case code == 3 || code == 5 || code == 6:
			it.style |= textmode.StyleBlink
		case code == 25:
			it.style &^= textmode.StyleBlink
		case code == 4:
			it.style |= textmode.StyleUnderline
		case code == 24:
			it.style &^= textmode.StyleUnderline
		case code >= 30 && code <= 37:
			it.fg = uint8(code - 30)
		case code >= 40 && code <= 47:
			it.bg = uint8(code - 40)
		case code >= 90 && code <= 97:
			it.fg = uint8(code-90) + 8
		case code >= 100 && code <= 107:
			it.bg = uint8(code-100) + 8
		case code == 39:
			it.fg = 8
		case code == 49:
			it.bg = 0
		case code == 38 || code == 48:
			consumed := it.extendedColor(code == 38, args[i+1:])
			i += consumed
		}
	}
}

// extendedColor handles the `38`/`48` sub-sequences (code 5;N or
// 2;r;g;b), returning how many further arguments it consumed.
func (it *interpreter) extendedColor(isFg bool, rest []int) int {
	if len(rest) == 0 {
		return 0
	}
	switch rest[0] {
	case 5:
		if len(rest) < 2 {
			return len(rest)
		}
		idx := matchExtendedIndex(it.c, rest[1])
		if isFg {
			it.fg = idx
		} else {
			it.bg = idx
		}
		return 2
	case 2:
		if len(rest) < 4 {
			return len(rest)
		}
		r, g, b := clampByte(rest[1]), clampByte(rest[2]), clampByte(rest[3])
		idx := uint8(it.c.Palette().FindColorMatch(r, g, b))
		if isFg {
			it.fg = idx
		} else {
			it.bg = idx
		}
		return 4
	default:
		return 1
	}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// matchExtendedIndex resolves an xterm 256-color index against the
// console's active 16-color palette (§4.6 extended palette mapping).
func matchExtendedIndex(c *textmode.Console, idx int) uint8 {
	if idx >= 0 && idx < 16 {
		return uint8(idx)
	}
	r, g, b := xterm256ToRGB(idx)
	return uint8(c.Palette().FindColorMatch(r, g, b))
}
