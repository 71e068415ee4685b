package font

// Geometric Shapes (a small curated subset of U+25A0..U+25FF): squares,
// triangles, diamond and circle, each approximated by a simple per-row
// width formula rather than hand-plotted bitmaps.

func geometricShapeRanges() []Range {
	entries := map[rune]Glyph{}

	square := func(filled bool) Glyph {
		var g Glyph
		for r := 1; r < 7; r++ {
			if filled {
				g[r] = 0x7E
			} else {
				if r == 1 || r == 6 {
					g[r] = 0x7E
				} else {
					g[r] = 0x42
				}
			}
		}
		return g
	}
	entries[0x25A0] = square(true)  // black square
	entries[0x25A1] = square(false) // white square

	triUp := func(filled bool) Glyph {
		var g Glyph
		width := [6]int{0, 1, 2, 3, 4, 6}
		for i, w := range width {
			r := i + 1
			var row byte
			if filled {
				for c := 4 - w/2; c <= 4+w/2 && c >= 0 && c < 8; c++ {
					row |= 1 << uint(7-c)
				}
			} else if i == len(width)-1 {
				for c := 0; c < 8; c++ {
					row |= 1 << uint(7-c)
				}
			} else {
				left, right := 4-w/2, 4+w/2
				if left >= 0 && left < 8 {
					row |= 1 << uint(7-left)
				}
				if right >= 0 && right < 8 {
					row |= 1 << uint(7-right)
				}
			}
			g[r] = row
		}
		return g
	}
	entries[0x25B2] = triUp(true)  // black up-pointing triangle
	entries[0x25B3] = triUp(false) // white up-pointing triangle

	diamond := func() Glyph {
		var g Glyph
		widths := [8]int{0, 2, 4, 6, 6, 4, 2, 0}
		for r, w := range widths {
			if w == 0 {
				continue
			}
			for c := 4 - w/2; c < 4+w/2; c++ {
				g[r] |= 1 << uint(7-c)
			}
		}
		return g
	}
	entries[0x25C6] = diamond() // black diamond

	circle := func(filled bool) Glyph {
		var g Glyph
		widths := [8]int{4, 6, 8, 8, 8, 8, 6, 4}
		for r, w := range widths {
			left, right := 4-w/2, 4+w/2
			if filled {
				for c := left; c < right && c < 8; c++ {
					if c >= 0 {
						g[r] |= 1 << uint(7-c)
					}
				}
			} else {
				if left >= 0 && left < 8 {
					g[r] |= 1 << uint(7-left)
				}
				if right-1 >= 0 && right-1 < 8 {
					g[r] |= 1 << uint(7-(right-1))
				}
			}
		}
		return g
	}
	entries[0x25CF] = circle(true)  // black circle
	entries[0x25CB] = circle(false) // white circle

	data := make([]Glyph, 0x25D0-0x25A0)
	for cp, g := range entries {
		data[cp-0x25A0] = g
	}
	return []Range{
		{Start: 0x25A0, Stop: 0x25D0, Data: data},
	}
}
