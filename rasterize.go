package textmode

import (
	"github.com/lixenwraith/textmode/font"
	"github.com/lixenwraith/textmode/palette"
)

// flagForeground is the backFlags bit set for pixels sourced from the
// foreground color (§3 Buffers by space).
const flagForeground byte = 1 << 0

func (c *Console) ensureBackBuffer() {
	if c.back != nil {
		return
	}
	backW := c.cols * font.CharW
	backH := c.rows * font.CharH
	size := backW * backH
	c.back = make([]palette.RGBA8, size)
	c.backFlags = make([]byte, size)
}

// rasterizeDirtyCells renders each dirty cell's 8x8 glyph into the back
// buffer, tagging each pixel foreground-or-background (§4.1 step 2).
func (c *Console) rasterizeDirtyCells() {
	if c.changeRectCells.Empty() {
		return
	}
	c.ensureBackBuffer()
	backW := c.cols * font.CharW

	r := c.changeRectCells
	for row := r.Top; row < r.Bottom; row++ {
		for col := r.Left; col < r.Right; col++ {
			i := row*c.cols + col
			if !c.charDirty[i] {
				continue
			}
			c.rasterizeCell(col, row, backW)
		}
	}
}

func (c *Console) rasterizeCell(col, row, backW int) {
	cell := c.grid[row*c.cols+col]
	fgIdx, bgIdx := UnpackColor(cell.Color)
	fg := c.pal.Entry(int(fgIdx))
	bg := c.pal.Background(int(bgIdx))

	cp := cell.Glyph
	if cp == 0 {
		cp = ' '
	}
	glyph := c.font.GetGlyphData(cp)
	visible := cell.Style&StyleBlink == 0 || c.blinkOn

	originX := col * font.CharW
	originY := row * font.CharH

	for py := 0; py < font.CharH; py++ {
		rowBits := glyph[py]
		isUnderline := cell.Style&StyleUnderline != 0 && py == font.CharH-1
		for px := 0; px < font.CharW; px++ {
			bit := rowBits&(1<<uint(7-px)) != 0
			on := (bit || isUnderline) && visible

			idx := (originY+py)*backW + (originX + px)
			if on {
				c.back[idx] = fg
				c.backFlags[idx] = flagForeground
			} else {
				c.back[idx] = bg
				c.backFlags[idx] = 0
			}
		}
	}
}
