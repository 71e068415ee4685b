package palette

import "testing"

func TestFindColorMatchInRange(t *testing.T) {
	p := NewPreset(VGA)
	for r := 0; r < 256; r += 37 {
		for g := 0; g < 256; g += 53 {
			idx := p.FindColorMatch(uint8(r), uint8(g), 128)
			if idx < 0 || idx >= Size {
				t.Fatalf("FindColorMatch(%d,%d,128) = %d out of range", r, g, idx)
			}
		}
	}
}

func TestFindColorMatchAllTransparentReturnsZero(t *testing.T) {
	var table [Size]RGBA8
	for i := range table {
		table[i] = RGBA8{R: uint8(i * 10), G: 0, B: 0, A: 0}
	}
	p := New(table)
	if idx := p.FindColorMatch(200, 10, 10); idx != 0 {
		t.Errorf("FindColorMatch with all-transparent palette = %d, want 0", idx)
	}
}

func TestFindColorMatchIdempotentOnUniqueClosest(t *testing.T) {
	p := NewPreset(Tango)
	for i := 0; i < Size; i++ {
		e := p.Entry(i)
		got := p.FindColorMatch(e.R, e.G, e.B)
		if got != i {
			// Only assert when i is the unique closest (no ties); detect
			// ties by checking another entry isn't equidistant.
			other := p.Entry(got)
			if other != e {
				t.Errorf("FindColorMatch(entry %d) = %d, expected to round-trip (entries differ: %+v vs %+v)", i, got, e, other)
			}
		}
	}
}

func TestSetEntryDirtyOnlyOnChange(t *testing.T) {
	p := NewPreset(VGA)
	p.ClearDirty()

	e := p.Entry(2)
	p.SetEntry(2, e.R, e.G, e.B, e.A)
	if p.Dirty(2) {
		t.Error("SetEntry with identical value should not mark dirty")
	}

	p.SetEntry(2, e.R, e.G, e.B^1, e.A)
	if !p.Dirty(2) {
		t.Error("SetEntry with a changed value should mark dirty")
	}
	if !p.AnyDirty() {
		t.Error("AnyDirty should report true after a dirty entry")
	}

	p.ClearDirty()
	if p.AnyDirty() {
		t.Error("AnyDirty should be false after ClearDirty")
	}
}

func TestBackgroundForcesOpaque(t *testing.T) {
	var table [Size]RGBA8
	table[0] = RGBA8{R: 10, G: 20, B: 30, A: 0}
	p := New(table)
	bg := p.Background(0)
	if bg.A != 255 {
		t.Errorf("Background alpha = %d, want 255", bg.A)
	}
	if bg.R != 10 || bg.G != 20 || bg.B != 30 {
		t.Errorf("Background RGB altered: %+v", bg)
	}
}

func TestBlendColorEndpoints(t *testing.T) {
	fg := RGBA8{R: 255, G: 0, B: 0, A: 255}
	bg := RGBA8{R: 0, G: 255, B: 0, A: 255}

	if got := BlendColor(fg, bg, 255); got != fg {
		t.Errorf("BlendColor alpha=255 = %+v, want %+v", got, fg)
	}
	if got := BlendColor(fg, bg, 0); got != bg {
		t.Errorf("BlendColor alpha=0 = %+v, want %+v", got, bg)
	}
}

func TestLinearU16PremulZeroAlpha(t *testing.T) {
	c := RGBA8{R: 200, G: 100, B: 50, A: 0}
	got := LinearU16Premul(c)
	if got != (RGBAU16{}) {
		t.Errorf("LinearU16Premul with alpha 0 = %+v, want zero", got)
	}
}

func TestLinearU16PremulFullAlpha(t *testing.T) {
	c := RGBA8{R: 16, G: 0, B: 255, A: 255}
	got := LinearU16Premul(c)
	wantR := uint16(16 * 16 * 255 / 256)
	if got.R != wantR {
		t.Errorf("LinearU16Premul R = %d, want %d", got.R, wantR)
	}
	if got.G != 0 {
		t.Errorf("LinearU16Premul G = %d, want 0", got.G)
	}
}

func TestAllPresetsLoadWithoutPanic(t *testing.T) {
	for _, p := range []Preset{Vintage, Campbell, OneHalfLight, Tango, VGA} {
		pal := NewPreset(p)
		for i := 0; i < Size; i++ {
			if pal.Entry(i).A != 255 {
				t.Errorf("preset %v entry %d alpha = %d, want 255", p, i, pal.Entry(i).A)
			}
		}
	}
}
