// Package font implements the built-in 8x8 bitmap font table: an ordered
// sequence of Unicode ranges mapping codepoints to glyph rows, with a
// "notdef" fallback for anything outside the covered ranges (§4.3).
//
// The table is assembled the way cmd/font-editor/main.go treats a glyph:
// an editable grid of 8 rows, each row one byte, each bit one pixel (bit 7
// is leftmost). glyphFromRows below is that editor's row-grid model
// expressed as a compile-time literal-to-byte conversion instead of an
// interactive widget.
package font

// CharW and CharH are the fixed glyph cell dimensions; no other size is
// supported (§1 Non-goals: no glyph resampling).
const (
	CharW = 8
	CharH = 8
)

// Glyph is one 8x8 bitmap: Glyph[row] has bit 7 as the leftmost pixel.
type Glyph [CharH]byte

// Range is a half-open Unicode codepoint range [Start, Stop) covered by
// the font, either as one Shared glyph reused by every codepoint in the
// range, or as Data holding (Stop-Start) individually authored glyphs.
type Range struct {
	Start, Stop rune
	Shared      *Glyph // non-nil iff every codepoint in the range uses this one glyph
	Data        []Glyph
}

// Font is an ordered sequence of ranges plus the fallback glyph rendered
// for any codepoint no range covers.
type Font struct {
	CharW, CharH int
	Ranges       []Range
	Notdef       Glyph
}

// notdefGlyph is the small "?"-shaped box rendered for unmapped
// codepoints (§1, GLOSSARY).
var notdefGlyph = glyphFromRows([8]string{
	"########",
	"#......#",
	"..####..",
	"..#..#..",
	"....#...",
	"...#....",
	"........",
	"...#....",
})

// Builtin is the single embedded font covering Basic Latin, Latin-1
// Supplement, a Greek subset, Box Drawing, Block Elements, Geometric
// Shapes, and a few symbol ranges (§1, §6).
var Builtin = buildFont()

// GetGlyphData linear-scans the ordered ranges (§4.3) and returns the
// glyph for cp, or the notdef glyph if cp falls outside every range.
func (f *Font) GetGlyphData(cp rune) Glyph {
	for _, r := range f.Ranges {
		if cp < r.Start || cp >= r.Stop {
			continue
		}
		if r.Shared != nil {
			return *r.Shared
		}
		return r.Data[cp-r.Start]
	}
	return f.Notdef
}

// glyphFromRows converts 8 rows of exactly 8 '#'/'.' characters into a
// Glyph, bit 7 leftmost. Panics on malformed literals: this only ever runs
// at package init over compile-time constants, so a malformed row is a
// programmer error in this package, not a runtime condition.
func glyphFromRows(rows [8]string) Glyph {
	var g Glyph
	for y, row := range rows {
		if len(row) != CharW {
			panic("font: glyph row must be exactly 8 characters")
		}
		var b byte
		for x := 0; x < CharW; x++ {
			switch row[x] {
			case '#':
				b |= 1 << uint(7-x)
			case '.':
				// pixel off
			default:
				panic("font: glyph row must contain only '#' and '.'")
			}
		}
		g[y] = b
	}
	return g
}

func buildFont() *Font {
	f := &Font{CharW: CharW, CharH: CharH, Notdef: notdefGlyph}
	f.Ranges = append(f.Ranges, asciiRanges()...)
	f.Ranges = append(f.Ranges, latin1Ranges()...)
	f.Ranges = append(f.Ranges, greekRanges()...)
	f.Ranges = append(f.Ranges, boxDrawingRanges()...)
	f.Ranges = append(f.Ranges, blockElementRanges()...)
	f.Ranges = append(f.Ranges, geometricShapeRanges()...)
	f.Ranges = append(f.Ranges, symbolRanges()...)
	return f
}
