package font

// BoxStyle names the 8 codepoints console.box() draws a frame with, in
// the fixed order: top-left, top, top-right, left, right, bottom-left,
// bottom, bottom-right.
type BoxStyle struct {
	TopLeft, Top, TopRight       rune
	Left, Right                  rune
	BottomLeft, Bottom, BottomRight rune
}

var (
	BoxThin = BoxStyle{
		TopLeft: 0x250C, Top: 0x2500, TopRight: 0x2510,
		Left: 0x2502, Right: 0x2502,
		BottomLeft: 0x2514, Bottom: 0x2500, BottomRight: 0x2518,
	}
	BoxHeavy = BoxStyle{
		TopLeft: 0x250F, Top: 0x2501, TopRight: 0x2513,
		Left: 0x2503, Right: 0x2503,
		BottomLeft: 0x2517, Bottom: 0x2501, BottomRight: 0x251B,
	}
	BoxDouble = BoxStyle{
		TopLeft: 0x2554, Top: 0x2550, TopRight: 0x2557,
		Left: 0x2551, Right: 0x2551,
		BottomLeft: 0x255A, Bottom: 0x2550, BottomRight: 0x255D,
	}
	BoxDoubleH = BoxStyle{
		TopLeft: 0x2552, Top: 0x2550, TopRight: 0x2555,
		Left: 0x2502, Right: 0x2502,
		BottomLeft: 0x2558, Bottom: 0x2550, BottomRight: 0x255B,
	}
	BoxLargeH = BoxStyle{
		TopLeft: 0x250D, Top: 0x2500, TopRight: 0x2511,
		Left: 0x2502, Right: 0x2502,
		BottomLeft: 0x2515, Bottom: 0x2500, BottomRight: 0x2519,
	}
	BoxLargeV = BoxStyle{
		TopLeft: 0x250E, Top: 0x2500, TopRight: 0x2512,
		Left: 0x2503, Right: 0x2503,
		BottomLeft: 0x2516, Bottom: 0x2500, BottomRight: 0x251A,
	}
	// BoxLarge keeps the straight runs light and the corners fully heavy,
	// splitting the difference between BoxThin and BoxHeavy.
	BoxLarge = BoxStyle{
		TopLeft: 0x250F, Top: 0x2500, TopRight: 0x2513,
		Left: 0x2502, Right: 0x2502,
		BottomLeft: 0x2517, Bottom: 0x2500, BottomRight: 0x251B,
	}
	// BoxHeavyPlus reinforces BoxHeavy's straight runs with the heavy
	// triple-dash variants, keeping the same solid heavy corners.
	BoxHeavyPlus = BoxStyle{
		TopLeft: 0x250F, Top: 0x2505, TopRight: 0x2513,
		Left: 0x2507, Right: 0x2507,
		BottomLeft: 0x2517, Bottom: 0x2505, BottomRight: 0x251B,
	}
)

// BoxStyleByName resolves one of the named styles accepted by box()'s
// style argument; unknown names fall back to BoxThin.
func BoxStyleByName(name string) BoxStyle {
	switch name {
	case "heavy":
		return BoxHeavy
	case "double":
		return BoxDouble
	case "doubleH":
		return BoxDoubleH
	case "large":
		return BoxLarge
	case "largeH":
		return BoxLargeH
	case "largeV":
		return BoxLargeV
	case "heavyPlus":
		return BoxHeavyPlus
	default:
		return BoxThin
	}
}
