package font

import "testing"

func TestGetGlyphDataNotdefFallback(t *testing.T) {
	g := Builtin.GetGlyphData(0xFFFD - 1000) // well outside any authored range
	if g != Builtin.Notdef {
		t.Errorf("expected notdef glyph for uncovered codepoint")
	}
}

func TestGetGlyphDataASCIICoverage(t *testing.T) {
	for cp := rune(0x20); cp <= 0x7E; cp++ {
		g := Builtin.GetGlyphData(cp)
		if g == Builtin.Notdef && cp != ' ' {
			t.Errorf("codepoint %q (%#x) resolved to notdef", cp, cp)
		}
	}
}

func TestGetGlyphDataRangeOrderFirstMatchWins(t *testing.T) {
	f := &Font{
		Ranges: []Range{
			{Start: 'A', Stop: 'B' + 1, Shared: &Glyph{0xFF}},
			{Start: 'A', Stop: 'Z' + 1, Shared: &Glyph{0x01}},
		},
	}
	g := f.GetGlyphData('A')
	if g != (Glyph{0xFF}) {
		t.Errorf("expected first matching range to win, got %+v", g)
	}
}

func TestGlyphFromRowsBitOrder(t *testing.T) {
	g := glyphFromRows([8]string{
		"#.......", ".#......", "..#.....", "...#....",
		"....#...", ".....#..", "......#.", ".......#",
	})
	for i := 0; i < 8; i++ {
		want := byte(1 << uint(7-i))
		if g[i] != want {
			t.Errorf("row %d = %08b, want %08b", i, g[i], want)
		}
	}
}

func TestGlyphFromRowsPanicsOnBadWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on malformed row width")
		}
	}()
	glyphFromRows([8]string{"###", "", "", "", "", "", "", ""})
}

func TestBoxStyleByNameFallsBackToThin(t *testing.T) {
	if s := BoxStyleByName("nonexistent"); s != BoxThin {
		t.Errorf("BoxStyleByName(unknown) = %+v, want BoxThin", s)
	}
	if s := BoxStyleByName("heavy"); s != BoxHeavy {
		t.Errorf("BoxStyleByName(heavy) = %+v, want BoxHeavy", s)
	}
}

func TestBoxStyleByNameCoversAllNamedStyles(t *testing.T) {
	cases := map[string]BoxStyle{
		"thin":      BoxThin,
		"large":     BoxLarge,
		"largeH":    BoxLargeH,
		"largeV":    BoxLargeV,
		"heavy":     BoxHeavy,
		"heavyPlus": BoxHeavyPlus,
		"double":    BoxDouble,
		"doubleH":   BoxDoubleH,
	}
	for name, want := range cases {
		if got := BoxStyleByName(name); got != want {
			t.Errorf("BoxStyleByName(%q) = %+v, want %+v", name, got, want)
		}
	}
}

func TestBoxHeavyPlusDiffersFromBoxHeavy(t *testing.T) {
	if BoxHeavyPlus == BoxHeavy {
		t.Error("BoxHeavyPlus must use distinct codepoints from BoxHeavy")
	}
}

func TestGreekLatinLookalikesMatchASCII(t *testing.T) {
	if g := Builtin.GetGlyphData(0x0391); g != Builtin.GetGlyphData('A') {
		t.Error("Greek capital alpha should reuse the ASCII 'A' glyph")
	}
}

func TestLatin1AccentedLetterDiffersFromBase(t *testing.T) {
	base := Builtin.GetGlyphData('A')
	accented := Builtin.GetGlyphData(0x00C0) // À
	if base == accented {
		t.Error("accented letter should differ from its base letter (row 0 overlay)")
	}
	// rows 1-7 (the letter body) should be untouched by the overlay.
	for i := 1; i < 8; i++ {
		if base[i] != accented[i] {
			t.Errorf("row %d altered by diacritic overlay: base=%08b accented=%08b", i, base[i], accented[i])
		}
	}
}
