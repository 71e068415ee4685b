package textmode

import "github.com/lixenwraith/textmode/font"

// Box draws an 8-glyph frame of the given w x h using the current
// fg/bg/style. A no-op if w < 2 or h < 2 (§4.4).
func (c *Console) Box(x, y, w, h int, style font.BoxStyle) {
	if w < 2 || h < 2 {
		return
	}
	c.writeCell(x, y, style.TopLeft)
	c.writeCell(x+w-1, y, style.TopRight)
	c.writeCell(x, y+h-1, style.BottomLeft)
	c.writeCell(x+w-1, y+h-1, style.BottomRight)
	for col := x + 1; col < x+w-1; col++ {
		c.writeCell(col, y, style.Top)
		c.writeCell(col, y+h-1, style.Bottom)
	}
	for row := y + 1; row < y+h-1; row++ {
		c.writeCell(x, row, style.Left)
		c.writeCell(x+w-1, row, style.Right)
	}
}
