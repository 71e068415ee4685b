package font

// Block Elements (U+2580..U+259F): eighths, quadrants, and shade stipples,
// each generated from a simple per-row/per-column fill rule rather than
// typed out pixel by pixel.

const blockStart = 0x2580
const blockCount = 0x25A0 - 0x2580

func fullBlockRows(fromRow, toRow int) Glyph {
	var g Glyph
	for r := fromRow; r <= toRow; r++ {
		g[r] = 0xFF
	}
	return g
}

func fullBlockCols(fromCol, toCol int) Glyph {
	var g Glyph
	var rowMask byte
	for c := fromCol; c <= toCol; c++ {
		rowMask |= 1 << uint(7-c)
	}
	for r := 0; r < 8; r++ {
		g[r] = rowMask
	}
	return g
}

// shadeStipple sets every everyN-th pixel in row-major order, approximating
// light/medium shade density; with the even everyN used here the set pixels
// line up as vertical stripes.
func shadeStipple(everyN int) Glyph {
	var g Glyph
	for r := 0; r < 8; r++ {
		var row byte
		for c := 0; c < 8; c++ {
			if (r*8+c)%everyN == 0 {
				row |= 1 << uint(7-c)
			}
		}
		g[r] = row
	}
	return g
}

func blockElementRanges() []Range {
	data := make([]Glyph, blockCount)
	set := func(cp rune, g Glyph) { data[cp-blockStart] = g }

	set(0x2580, fullBlockRows(0, 3)) // upper half
	set(0x2581, fullBlockRows(7, 7)) // lower one eighth
	set(0x2582, fullBlockRows(6, 7)) // lower one quarter
	set(0x2583, fullBlockRows(5, 7))
	set(0x2584, fullBlockRows(4, 7)) // lower half
	set(0x2585, fullBlockRows(3, 7))
	set(0x2586, fullBlockRows(2, 7))
	set(0x2587, fullBlockRows(1, 7))
	set(0x2588, fullBlockRows(0, 7)) // full block
	set(0x2589, fullBlockCols(0, 6)) // left seven eighths
	set(0x258A, fullBlockCols(0, 5))
	set(0x258B, fullBlockCols(0, 4))
	set(0x258C, fullBlockCols(0, 3)) // left half
	set(0x258D, fullBlockCols(0, 2))
	set(0x258E, fullBlockCols(0, 1))
	set(0x258F, fullBlockCols(0, 0)) // left one eighth
	set(0x2590, fullBlockCols(4, 7)) // right half

	set(0x2591, shadeStipple(4)) // light shade
	set(0x2592, shadeStipple(2)) // medium shade
	// dark shade: invert light (keep roughly 3/4 filled)
	{
		dark := shadeStipple(4)
		for r := range dark {
			dark[r] = ^dark[r]
		}
		data[0x2593-blockStart] = dark
	}

	set(0x2594, fullBlockRows(0, 0)) // upper one eighth
	set(0x2595, fullBlockCols(7, 7)) // right one eighth

	// quadrant blocks
	quad := func(tl, tr, bl, br bool) Glyph {
		var g Glyph
		if tl {
			for r := 0; r < 4; r++ {
				g[r] |= 0xF0
			}
		}
		if tr {
			for r := 0; r < 4; r++ {
				g[r] |= 0x0F
			}
		}
		if bl {
			for r := 4; r < 8; r++ {
				g[r] |= 0xF0
			}
		}
		if br {
			for r := 4; r < 8; r++ {
				g[r] |= 0x0F
			}
		}
		return g
	}
	set(0x2596, quad(false, false, true, false))
	set(0x2597, quad(false, false, false, true))
	set(0x2598, quad(true, false, false, false))
	set(0x2599, quad(true, false, true, true))
	set(0x259A, quad(true, false, false, true))
	set(0x259B, quad(true, true, true, false))
	set(0x259C, quad(true, true, false, true))
	set(0x259D, quad(false, true, false, false))
	set(0x259E, quad(false, true, true, false))
	set(0x259F, quad(false, true, true, true))

	return []Range{
		{Start: blockStart, Stop: blockStart + blockCount, Data: data},
	}
}
