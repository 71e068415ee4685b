package font

// Latin-1 Supplement (0x00A0..0x00FF) is built by overlaying a diacritic
// mark onto row 0 (left blank by every asciiRows entry) of the matching
// base Latin letter's glyph, plus a handful of standalone glyphs that
// don't decompose into base+diacritic (©, §, ¶, °, ±, ß, ð, þ, ÷, ×).
// Codepoints in the range with no glyph set here render blank.

const latin1Start = 0x00A0
const latin1Count = 0x0100 - 0x00A0

// diacritic row patterns, 8 chars wide, applied to row 0 only.
var (
	rowGrave    = "..#....."
	rowAcute    = ".....#.."
	rowCircum   = "..#.#..."
	rowTilde    = ".##.#..."
	rowDiaeresis = ".#.#...."
	rowRing     = "..#.#..."
)

// asciiLookup is a standalone copy of the ASCII range used while building
// Latin-1, so this file doesn't depend on Builtin (which is still under
// construction at this point in buildFont).
var asciiLookup = asciiRanges()[0]

// base letter lookup within the ASCII table, by rune.
func asciiGlyph(r rune) Glyph {
	if r < asciiLookup.Start || r >= asciiLookup.Stop {
		return notdefGlyph
	}
	return asciiLookup.Data[r-asciiLookup.Start]
}

// overlayRow0 returns a copy of g with row 0 replaced.
func overlayRow0(g Glyph, rowPattern string) Glyph {
	top := glyphFromRows([8]string{rowPattern, "........", "........", "........", "........", "........", "........", "........"})
	out := g
	out[0] = top[0]
	return out
}

// overlayRow7 returns a copy of g with row 7 ORed with a cedilla tail.
func overlayRow7(g Glyph, rowPattern string) Glyph {
	bottom := glyphFromRows([8]string{"........", "........", "........", "........", "........", "........", "........", rowPattern})
	out := g
	out[7] |= bottom[7]
	return out
}

func latin1Ranges() []Range {
	data := make([]Glyph, latin1Count)

	blank := glyphFromRows([8]string{
		"........", "........", "........", "........",
		"........", "........", "........", "........",
	})
	for i := range data {
		data[i] = blank
	}

	set := func(cp rune, g Glyph) { data[cp-latin1Start] = g }

	// 0xA0 NBSP: invisible, same as space.
	set(0x00A0, asciiGlyph(' '))
	// 0xA9 copyright
	set(0x00A9, glyphFromRows([8]string{
		".#####..", "#.....#.", "#.##..#.", "#.#.#.#.", "#.##..#.", "#.....#.", ".#####..", "........",
	}))
	// 0xB0 degree
	set(0x00B0, glyphFromRows([8]string{
		".##.....", "#..#....", ".##.....", "........", "........", "........", "........", "........",
	}))
	// 0xB1 plus-minus
	set(0x00B1, glyphFromRows([8]string{
		"........", "..#.....", ".###....", "..#.....", "........", "###.....", "........", "........",
	}))
	// 0xD7 multiplication sign
	set(0x00D7, glyphFromRows([8]string{
		"........", "........", "#...#...", ".#.#....", "..#.....", ".#.#....", "#...#...", "........",
	}))
	// 0xF7 division sign
	set(0x00F7, glyphFromRows([8]string{
		"........", "..#.....", "........", "#####...", "........", "..#.....", "........", "........",
	}))
	// 0xDF sharp s (ß)
	set(0x00DF, glyphFromRows([8]string{
		".##.....", "#..#....", "#..#....", "#.##....", "#..#....", "#..#....", "#.##....", "........",
	}))
	// 0xD0 / 0xF0 eth
	set(0x00D0, glyphFromRows([8]string{
		"####....", "#...#...", "##..#...", "#...#...", "#...#...", "#...#...", "####....", "........",
	}))
	set(0x00F0, glyphFromRows([8]string{
		"..#.#...", "..##....", ".###....", "#...#...", "#...#...", "#...#...", ".###....", "........",
	}))
	// 0xA7 section sign
	set(0x00A7, glyphFromRows([8]string{
		"..##....", ".#..#...", "..##....", ".####...", "#....#..", "#....#..", ".####...", "........",
	}))
	// 0xB6 pilcrow
	set(0x00B6, glyphFromRows([8]string{
		".####...", ".#.##...", ".#.##...", ".#.##...", ".#.##...", "..##....", "..##....", "........",
	}))
	// 0xDE / 0xFE thorn
	set(0x00DE, glyphFromRows([8]string{
		"#.......", "####....", "#...#...", "#...#...", "####....", "#.......", "#.......", "........",
	}))
	set(0x00FE, glyphFromRows([8]string{
		"#.......", "#.......", "#.##....", "##..#...", "#...#...", "##..#...", "#.##....", "#.......",
	}))

	accentedUpper := map[rune]rune{
		0x00C0: 'A', 0x00C1: 'A', 0x00C2: 'A', 0x00C3: 'A', 0x00C4: 'A', 0x00C5: 'A',
		0x00C8: 'E', 0x00C9: 'E', 0x00CA: 'E', 0x00CB: 'E',
		0x00CC: 'I', 0x00CD: 'I', 0x00CE: 'I', 0x00CF: 'I',
		0x00D2: 'O', 0x00D3: 'O', 0x00D4: 'O', 0x00D5: 'O', 0x00D6: 'O',
		0x00D9: 'U', 0x00DA: 'U', 0x00DB: 'U', 0x00DC: 'U',
		0x00DD: 'Y', 0x00D1: 'N',
	}
	accentedLower := map[rune]rune{
		0x00E0: 'a', 0x00E1: 'a', 0x00E2: 'a', 0x00E3: 'a', 0x00E4: 'a', 0x00E5: 'a',
		0x00E8: 'e', 0x00E9: 'e', 0x00EA: 'e', 0x00EB: 'e',
		0x00EC: 'i', 0x00ED: 'i', 0x00EE: 'i', 0x00EF: 'i',
		0x00F2: 'o', 0x00F3: 'o', 0x00F4: 'o', 0x00F5: 'o', 0x00F6: 'o',
		0x00F9: 'u', 0x00FA: 'u', 0x00FB: 'u', 0x00FC: 'u',
		0x00FD: 'y', 0x00FF: 'y', 0x00F1: 'n',
	}
	markFor := func(cp rune) string {
		switch cp {
		case 0x00C0, 0x00C8, 0x00CC, 0x00D2, 0x00D9, 0x00E0, 0x00E8, 0x00EC, 0x00F2, 0x00F9:
			return rowGrave
		case 0x00C1, 0x00C9, 0x00CD, 0x00D3, 0x00DA, 0x00DD, 0x00E1, 0x00E9, 0x00ED, 0x00F3, 0x00FA, 0x00FD:
			return rowAcute
		case 0x00C2, 0x00CA, 0x00CE, 0x00D4, 0x00DB, 0x00E2, 0x00EA, 0x00EE, 0x00F4, 0x00FB:
			return rowCircum
		case 0x00C3, 0x00D1, 0x00D5, 0x00E3, 0x00F1, 0x00F5:
			return rowTilde
		case 0x00C4, 0x00CB, 0x00CF, 0x00D6, 0x00DC, 0x00E4, 0x00EB, 0x00EF, 0x00F6, 0x00FC, 0x00FF:
			return rowDiaeresis
		case 0x00C5, 0x00E5:
			return rowRing
		}
		return rowAcute
	}
	for cp, base := range accentedUpper {
		set(cp, overlayRow0(asciiGlyph(base), markFor(cp)))
	}
	for cp, base := range accentedLower {
		set(cp, overlayRow0(asciiGlyph(base), markFor(cp)))
	}
	// cedilla: hangs off row 7 instead of row 0.
	set(0x00C7, overlayRow7(asciiGlyph('C'), "..#....."))
	set(0x00E7, overlayRow7(asciiGlyph('c'), "..#....."))

	return []Range{
		{Start: latin1Start, Stop: latin1Start + latin1Count, Data: data},
	}
}
