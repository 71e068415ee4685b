package font

// Greek and Coptic subset: uppercase 0x0391..0x03A9, lowercase
// 0x03B1..0x03C9. Letters that are visually identical to a Latin letter
// (Α Β Ε Ζ Η Ι Κ Μ Ν Ο Ρ Τ Χ Υ) reuse the matching ASCII glyph rather
// than re-authoring an indistinguishable shape; the rest are hand-drawn.

const greekUpperStart = 0x0391
const greekUpperCount = 0x03AA - 0x0391 // up to and incl. Omega, skipping 0x03A2 (unassigned)

const greekLowerStart = 0x03B1
const greekLowerCount = 0x03CA - 0x03B1

func greekRanges() []Range {
	upper := make([]Glyph, greekUpperCount)
	lookalikesUpper := map[rune]rune{
		0x0391: 'A', 0x0392: 'B', 0x0395: 'E', 0x0396: 'Z', 0x0397: 'H',
		0x0399: 'I', 0x039A: 'K', 0x039C: 'M', 0x039D: 'N', 0x039F: 'O',
		0x03A1: 'P', 0x03A4: 'T', 0x03A7: 'X', 0x03A5: 'Y',
	}
	for cp, base := range lookalikesUpper {
		upper[cp-greekUpperStart] = asciiGlyph(base)
	}
	set := func(cp rune, rows [8]string) { upper[cp-greekUpperStart] = glyphFromRows(rows) }
	set(0x0393, [8]string{"#####...", "#.......", "#.......", "#.......", "#.......", "#.......", "#.......", "........"}) // Gamma
	set(0x0394, [8]string{"..#.....", ".#.#....", ".#.#....", "#...#...", "#...#...", "#####...", "........", "........"}) // Delta
	set(0x0398, [8]string{".###....", "#...#...", "#.###...", "#...#...", "#...#...", ".###....", "........", "........"}) // Theta
	set(0x039B, [8]string{"..#.....", ".#.#....", ".#.#....", "#...#...", "#...#...", "#...#...", "........", "........"}) // Lambda
	set(0x039E, [8]string{"#####...", "........", ".####...", "........", "........", "#####...", "........", "........"}) // Xi
	set(0x03A0, [8]string{"#####...", "#.#.#...", "#.#.#...", "#.#.#...", "#.#.#...", "#.#.#...", "........", "........"}) // Pi
	set(0x03A3, [8]string{"#####...", "#.......", ".###....", "#.......", "#.......", "#####...", "........", "........"}) // Sigma
	set(0x03A6, [8]string{"..#.....", ".###....", "#.#.#...", "#.#.#...", ".###....", "..#.....", "........", "........"}) // Phi
	set(0x03A8, [8]string{"#.#.#...", "#.#.#...", "#.#.#...", ".###....", "..#.....", "..#.....", "........", "........"}) // Psi
	set(0x03A9, [8]string{".###....", "#...#...", "#...#...", "#...#...", ".#.#....", "#...#...", "........", "........"}) // Omega

	lower := make([]Glyph, greekLowerCount)
	lookalikesLower := map[rune]rune{
		0x03BF: 'o',
	}
	for cp, base := range lookalikesLower {
		lower[cp-greekLowerStart] = asciiGlyph(base)
	}
	setL := func(cp rune, rows [8]string) { lower[cp-greekLowerStart] = glyphFromRows(rows) }
	setL(0x03B1, [8]string{"........", "........", ".##.#...", "#..#.#..", "#..#.#..", ".##..#..", "........", "........"}) // alpha
	setL(0x03B2, [8]string{"........", "#.......", "#.##....", "##..#...", "#.##....", "#.......", "#.......", "........"}) // beta
	setL(0x03B3, [8]string{"........", "........", "#...#...", ".#.#....", "..#.....", "..#.....", ".#......", "........"}) // gamma
	setL(0x03B4, [8]string{"..#.....", ".#......", ".###....", "#...#...", "#...#...", ".###....", "........", "........"}) // delta
	setL(0x03B5, [8]string{"........", "........", ".###....", "#.......", "#.##....", ".###....", "........", "........"}) // epsilon
	setL(0x03B6, [8]string{"........", "#####...", "....#...", "..##....", "....#...", "####....", "........", "........"}) // zeta
	setL(0x03B7, [8]string{"........", "........", "#.#.#...", "##.#.#..", "#..#.#..", "#..#.#..", "....#...", "........"}) // eta
	setL(0x03B8, [8]string{"..###...", ".#...#..", ".#.#.#..", ".#...#..", "..###...", "........", "........", "........"}) // theta
	setL(0x03B9, [8]string{"........", "........", ".##.....", "..#.....", "..#.....", ".###....", "........", "........"}) // iota
	setL(0x03BA, [8]string{"........", "........", "#..#....", "#.#.....", "##......", "#.#.....", "#..#....", "........"}) // kappa
	setL(0x03BB, [8]string{".#......", ".#......", "..#.....", "..#.#...", "...#....", "..#.#...", ".#...#..", "........"}) // lambda
	setL(0x03BC, [8]string{"........", "........", "#...#...", "#...#...", "#...#...", "#..##...", "#.#.#...", "#...#..."}) // mu
	setL(0x03BD, [8]string{"........", "........", "#...#...", ".#.#....", ".#.#....", "..#.....", "........", "........"}) // nu
	setL(0x03BE, [8]string{".####...", "#.......", ".###....", "....#...", "#...#...", ".###....", "........", "........"}) // xi
	setL(0x03C0, [8]string{"........", "........", "#####...", "#.#.#...", "#.#.#...", ".#.#.#..", "........", "........"}) // pi
	setL(0x03C1, [8]string{"........", "........", "#.##....", "##..#...", "#.##....", "#.......", "#.......", "........"}) // rho
	setL(0x03C2, [8]string{"........", "........", ".###....", "#.......", "#.##....", ".##.....", "........", "........"}) // final sigma
	setL(0x03C3, [8]string{"........", "........", ".###....", "#...#...", "#...#...", ".###....", "........", "........"}) // sigma
	setL(0x03C4, [8]string{"........", "........", "#####...", "..#.....", "..#.....", "..#.#...", "...#....", "........"}) // tau
	setL(0x03C5, [8]string{"........", "........", "#...#...", "#...#...", "#...#...", ".###....", "........", "........"}) // upsilon
	setL(0x03C6, [8]string{"........", "..#.....", ".#####..", "#..#..#.", "#..#..#.", ".#####..", "..#.....", "........"}) // phi
	setL(0x03C7, [8]string{"........", "........", "#...#...", ".#.#....", "..#.....", ".#.#....", "#...#...", "........"}) // chi
	setL(0x03C8, [8]string{"........", "#.#.#...", "#.#.#...", "#.#.#...", ".#.#.#..", "..#.....", "..#.....", "........"}) // psi
	setL(0x03C9, [8]string{"........", "........", "#.#.#...", "#.#.#...", "#.#.#...", ".#.#.#..", "........", "........"}) // omega

	return []Range{
		{Start: greekUpperStart, Stop: greekUpperStart + greekUpperCount, Data: upper},
		{Start: greekLowerStart, Stop: greekLowerStart + greekLowerCount, Data: lower},
	}
}
