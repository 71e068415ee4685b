package textmode

// Style is a bitmask of per-cell style flags (§3 CharData).
type Style uint8

const (
	StyleNone      Style = 0
	StyleShiny     Style = 1 << 0
	StyleBold      Style = 1 << 1
	StyleUnderline Style = 1 << 2
	StyleBlink     Style = 1 << 3
)

// CharData is one grid cell: a codepoint, a packed fg/bg color byte (low
// nibble foreground, high nibble background), and style flags. Default
// value (Glyph 0) is treated as space by the rasterizer.
type CharData struct {
	Glyph rune
	Color byte
	Style Style
}

// defaultColor packs the spec's default foreground (8, grey) over
// background (0, black).
const defaultColor byte = 0x08

func defaultCell() CharData {
	return CharData{Glyph: ' ', Color: defaultColor, Style: StyleNone}
}

func PackColor(fg, bg uint8) byte {
	return (bg << 4) | (fg & 0x0F)
}

func UnpackColor(c byte) (fg, bg uint8) {
	return c & 0x0F, (c >> 4) & 0x0F
}

// Foreground returns the cell's foreground palette index.
func (c CharData) Foreground() uint8 {
	fg, _ := UnpackColor(c.Color)
	return fg
}

// Background returns the cell's background palette index.
func (c CharData) Background() uint8 {
	_, bg := UnpackColor(c.Color)
	return bg
}
