package palette

import "github.com/lucasb-eyer/go-colorful"

// Entry order for every preset follows the classic CGA/EGA 16-color
// convention also used by the CP437/ANSI color-name table (ansiterm,
// ccl): black, red, green, orange, blue, magenta, cyan, lgrey, grey,
// lred, lgreen, yellow, lblue, lmagenta, lcyan, white.

// presetHex holds the 16 hex triples for one preset, authored as text and
// parsed once at init() via go-colorful rather than hand-typed RGBA8
// literals (parameter/visual/palette.go's const-table idiom, retargeted to
// a color-science parser instead of raw ints).
type presetHex [Size]string

var (
	vintageHex = presetHex{
		"#000000", "#B35900", "#33CC33", "#CC8400",
		"#2060A0", "#A050C0", "#00A0A0", "#C0A060",
		"#503000", "#FF8700", "#5FFF5F", "#FFD700",
		"#5FAFFF", "#D7AFFF", "#5FFFFF", "#FFF0D0",
	}
	campbellHex = presetHex{
		"#0C0C0C", "#C50F1F", "#13A10E", "#C19C00",
		"#0037DA", "#881798", "#3A96DD", "#CCCCCC",
		"#767676", "#E74856", "#16C60C", "#F9F1A5",
		"#3B78FF", "#B4009E", "#61D6D6", "#F2F2F2",
	}
	oneHalfLightHex = presetHex{
		"#383A42", "#E45649", "#50A14F", "#C18401",
		"#0184BC", "#A626A4", "#0997B3", "#FAFAFA",
		"#A0A1A7", "#E45649", "#50A14F", "#C18401",
		"#0184BC", "#A626A4", "#0997B3", "#FFFFFF",
	}
	tangoHex = presetHex{
		"#2E3436", "#CC0000", "#4E9A06", "#C4A000",
		"#3465A4", "#75507B", "#06989A", "#D3D7CF",
		"#555753", "#EF2929", "#8AE234", "#FCE94F",
		"#729FCF", "#AD7FA8", "#34E2E2", "#EEEEEC",
	}
	vgaHex = presetHex{
		"#000000", "#AA0000", "#00AA00", "#AA5500",
		"#0000AA", "#AA00AA", "#00AAAA", "#AAAAAA",
		"#555555", "#FF5555", "#55FF55", "#FFFF55",
		"#5555FF", "#FF55FF", "#55FFFF", "#FFFFFF",
	}
)

// Preset identifies one of the built-in palettes.
type Preset int

const (
	Vintage Preset = iota
	Campbell
	OneHalfLight
	Tango
	VGA
)

var presetTables map[Preset][Size]RGBA8

func init() {
	presetTables = map[Preset][Size]RGBA8{
		Vintage:      decodeHex(vintageHex),
		Campbell:     decodeHex(campbellHex),
		OneHalfLight: decodeHex(oneHalfLightHex),
		Tango:        decodeHex(tangoHex),
		VGA:          decodeHex(vgaHex),
	}
}

func decodeHex(hex presetHex) [Size]RGBA8 {
	var out [Size]RGBA8
	for i, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			panic("palette: invalid built-in preset color " + h + ": " + err.Error())
		}
		r, g, b := c.RGB255()
		out[i] = RGBA8{R: r, G: g, B: b, A: 255}
	}
	return out
}

// NewPreset returns a freshly constructed Palette loaded from one of the
// built-in presets.
func NewPreset(p Preset) *Palette {
	table, ok := presetTables[p]
	if !ok {
		table = presetTables[VGA]
	}
	return New(table)
}

// BlendLab blends two colors in CIE Lab space at the given ratio
// (0 = pure a, 1 = pure b). This is an ergonomic extra for callers
// building custom palettes outside the core render path; the render
// pipeline itself always uses the spec-mandated sRGB BlendColor.
func BlendLab(a, b RGBA8, t float64) RGBA8 {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	blended := ca.BlendLab(cb, t)
	r, g, bl := blended.Clamped().RGB255()
	return RGBA8{R: r, G: g, B: bl, A: 255}
}
