// Package palette implements the 16-entry color palette, preset tables,
// nearest-color matching, and the blend/premultiplication helpers the
// render pipeline uses for the emissive (shiny) layer.
package palette

// Size is the fixed number of entries in a Palette.
const Size = 16

// RGBA8 is a packed 8-bit-per-channel color.
type RGBA8 struct {
	R, G, B, A uint8
}

// RGBAU16 is a 16-bit-per-channel premultiplied color, used for the
// emissive accumulation buffers (§4.2 linearU16Premul, §4.11 blur).
type RGBAU16 struct {
	R, G, B, A uint16
}

// Palette holds 16 RGBA8 entries plus a per-entry dirty flag raised by
// SetEntry whenever a write actually changes the stored value.
type Palette struct {
	entries [Size]RGBA8
	dirty   [Size]bool
}

// New returns a Palette initialized from the given 16 entries (e.g. one of
// the Preset tables). The array parameter fixes the length at Size.
func New(initial [Size]RGBA8) *Palette {
	p := &Palette{entries: initial}
	return p
}

// Entry returns the raw stored entry at index i.
func (p *Palette) Entry(i int) RGBA8 {
	return p.entries[i]
}

// Background returns the entry at index i as a background color: alpha is
// always reported as 255 regardless of the stored alpha (§3 Palette).
func (p *Palette) Background(i int) RGBA8 {
	c := p.entries[i]
	c.A = 255
	return c
}

// SetEntry writes a new RGBA value at index i and marks it dirty iff the
// value actually changed.
func (p *Palette) SetEntry(i int, r, g, b, a uint8) {
	nv := RGBA8{r, g, b, a}
	if p.entries[i] != nv {
		p.entries[i] = nv
		p.dirty[i] = true
	}
}

// Dirty reports whether entry i changed since the last ClearDirty.
func (p *Palette) Dirty(i int) bool {
	return p.dirty[i]
}

// AnyDirty reports whether any entry is currently dirty.
func (p *Palette) AnyDirty() bool {
	for _, d := range p.dirty {
		if d {
			return true
		}
	}
	return false
}

// ClearDirty resets every entry's dirty flag. Called by the validator
// (§4.8) once it has folded palette-dirtiness into this frame's redraw
// decision.
func (p *Palette) ClearDirty() {
	for i := range p.dirty {
		p.dirty[i] = false
	}
}

// FindColorMatch scans all 16 entries, skipping fully transparent ones,
// and returns the index minimizing the luminance-weighted squared
// difference 3*dR^2 + 4*dG^2 + 2*dB^2 (§4.2). Ties resolve to the first
// hit encountered. Never returns -1: if every entry has alpha 0, it
// returns 0.
func (p *Palette) FindColorMatch(r, g, b uint8) int {
	best := -1
	bestDist := int64(-1)
	for i, e := range p.entries {
		if e.A == 0 {
			continue
		}
		dr := int64(int(r) - int(e.R))
		dg := int64(int(g) - int(e.G))
		db := int64(int(b) - int(e.B))
		dist := 3*dr*dr + 4*dg*dg + 2*db*db
		if best == -1 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	if best == -1 {
		return 0
	}
	return best
}

// BlendColor performs channel-wise alpha blending: (fg*alpha +
// bg*(255-alpha)) / 255 (§4.2).
func BlendColor(fg, bg RGBA8, alpha uint8) RGBA8 {
	a := uint32(alpha)
	inv := 255 - a
	return RGBA8{
		R: uint8((uint32(fg.R)*a + uint32(bg.R)*inv) / 255),
		G: uint8((uint32(fg.G)*a + uint32(bg.G)*inv) / 255),
		B: uint8((uint32(fg.B)*a + uint32(bg.B)*inv) / 255),
		A: uint8((uint32(fg.A)*a + uint32(bg.A)*inv) / 255),
	}
}

// LinearU16Premul computes the pseudo-linear squared-color premultiplied
// representation used for additive blur accumulation (§4.2):
// (r*r*a/256, g*g*a/256, b*b*a/256, a*a*a/256).
func LinearU16Premul(c RGBA8) RGBAU16 {
	a := uint32(c.A)
	return RGBAU16{
		R: uint16(uint32(c.R) * uint32(c.R) * a / 256),
		G: uint16(uint32(c.G) * uint32(c.G) * a / 256),
		B: uint16(uint32(c.B) * uint32(c.B) * a / 256),
		A: uint16(a * a * a / 256),
	}
}
