package textmode

import (
	"github.com/lixenwraith/textmode/font"
	"github.com/lixenwraith/textmode/palette"
)

// backToPost upscales each dirty cell's back-buffer pixels into the post
// buffer by nearest-neighbor duplication, simultaneously writing the
// premultiplied emissive buffer for shiny pixels, and fills the border
// region when geometry changed (§4.10).
func (c *Console) backToPost() {
	if c.borderDirty {
		c.fillBorder()
		c.borderDirty = false
	}
	if c.changeRectCells.Empty() {
		return
	}

	backW := c.cols * font.CharW
	r := c.changeRectCells
	for row := r.Top; row < r.Bottom; row++ {
		for col := r.Left; col < r.Right; col++ {
			i := row*c.cols + col
			if !c.charDirty[i] {
				continue
			}
			c.upscaleCell(col, row, backW)
		}
	}
}

func (c *Console) upscaleCell(col, row, backW int) {
	cell := c.grid[row*c.cols+col]
	shiny := cell.Style&StyleShiny != 0

	originX := col * font.CharW
	originY := row * font.CharH
	outX0 := c.marginX + col*font.CharW*c.scale
	outY0 := c.marginY + row*font.CharH*c.scale
	scale := c.scale

	for py := 0; py < font.CharH; py++ {
		for px := 0; px < font.CharW; px++ {
			backIdx := (originY+py)*backW + (originX + px)
			color := c.back[backIdx]
			isFg := c.backFlags[backIdx]&flagForeground != 0

			var emit palette.RGBAU16
			contributes := shiny && ((isFg && c.opts.BlurForeground) || (!isFg && c.opts.BlurBackground))
			if contributes {
				emit = palette.LinearU16Premul(color)
			}

			dstY0 := outY0 + py*scale
			dstX0 := outX0 + px*scale
			for dy := 0; dy < scale; dy++ {
				rowBase := (dstY0 + dy) * c.outW
				for dx := 0; dx < scale; dx++ {
					idx := rowBase + dstX0 + dx
					c.post[idx] = color
					c.emit[idx] = emit
				}
			}
		}
	}
}

// fillBorder letterboxes every output pixel outside the grid's scaled
// footprint with the border color, optionally contributing to the
// emissive layer (§4.10).
func (c *Console) fillBorder() {
	border := c.pal.Background(c.opts.BorderColor)
	var borderEmit palette.RGBAU16
	if c.opts.BorderShiny {
		borderEmit = palette.LinearU16Premul(border)
	}

	gridLeft := c.marginX
	gridTop := c.marginY
	gridRight := c.marginX + c.cols*font.CharW*c.scale
	gridBottom := c.marginY + c.rows*font.CharH*c.scale

	for y := 0; y < c.outH; y++ {
		inRow := y >= gridTop && y < gridBottom
		rowBase := y * c.outW
		for x := 0; x < c.outW; x++ {
			if inRow && x >= gridLeft && x < gridRight {
				continue
			}
			idx := rowBase + x
			c.post[idx] = border
			c.emit[idx] = borderEmit
		}
	}
}
