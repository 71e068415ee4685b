package font

// symbolRanges covers a small curated handful of commonly used symbols
// outside the ranges above: arrows and a few Miscellaneous Symbols
// entries, hand-authored since there's no parametric shortcut for them.

func symbolRanges() []Range {
	entries := map[rune]Glyph{
		0x2190: glyphFromRows([8]string{ // leftwards arrow
			"........", "...#....", "..#.....", "#######.", "..#.....", "...#....", "........", "........",
		}),
		0x2191: glyphFromRows([8]string{ // upwards arrow
			"...#....", "..###...", ".#.#.#..", "...#....", "...#....", "...#....", "...#....", "........",
		}),
		0x2192: glyphFromRows([8]string{ // rightwards arrow
			"........", "....#...", ".....#..", "#######.", ".....#..", "....#...", "........", "........",
		}),
		0x2193: glyphFromRows([8]string{ // downwards arrow
			"...#....", "...#....", "...#....", "...#....", ".#.#.#..", "..###...", "...#....", "........",
		}),
		0x2194: glyphFromRows([8]string{ // left-right arrow
			"........", "..#.#...", ".#.#.#..", "#######.", ".#.#.#..", "..#.#...", "........", "........",
		}),
		0x2195: glyphFromRows([8]string{ // up-down arrow
			"...#....", "..###...", ".#.#.#..", "...#....", ".#.#.#..", "..###...", "...#....", "........",
		}),
		0x2022: glyphFromRows([8]string{ // bullet
			"........", "........", "..###...", ".#####..", "..###...", "........", "........", "........",
		}),
		0x203C: glyphFromRows([8]string{ // double exclamation mark
			"#.#.....", "#.#.....", "#.#.....", "#.#.....", "#.#.....", "........", "#.#.....", "........",
		}),
		0x2713: glyphFromRows([8]string{ // check mark
			"........", "........", "......#.", ".....#..", "#....#..", ".#..#...", "..##....", "........",
		}),
		0x2717: glyphFromRows([8]string{ // ballot X
			"........", "#.....#.", ".#...#..", "..#.#...", "...#....", "..#.#...", ".#...#..", "#.....#.",
		}),
	}

	var out []Range
	for cp, g := range entries {
		gg := g
		out = append(out, Range{Start: cp, Stop: cp + 1, Data: []Glyph{gg}})
	}
	return out
}
