package textmode

import "github.com/lixenwraith/textmode/geom"

// invalidateChars is the dirty-rectangle validator (§4.8). It produces two
// text-space rectangles: changeRectCells (visible output changed) and
// blurRectCells (emissive layer changed), memoized between frames — a
// second call with no intervening mutation returns empty rects in O(1).
func (c *Console) invalidateChars() {
	if c.validated {
		c.changeRectCells = geom.Rect{}
		c.blurRectCells = geom.Rect{}
		return
	}

	var changeRect, blurRect geom.Rect

	if c.dirtyAllChars {
		full := geom.Rect{Left: 0, Top: 0, Right: c.cols, Bottom: c.rows}
		changeRect = full
		blurRect = full
		for i := range c.charDirty {
			c.charDirty[i] = true
		}
	} else {
		for row := 0; row < c.rows; row++ {
			for col := 0; col < c.cols; col++ {
				i := row*c.cols + col
				cell := c.grid[i]
				prev := c.cache[i]
				fg, bg := UnpackColor(cell.Color)

				blinkable := cell.Style&StyleBlink != 0
				redraw := cell != prev ||
					c.pal.Dirty(int(fg)) || c.pal.Dirty(int(bg)) ||
					(blinkable && c.blinkPhaseChanged)

				shiny := cell.Style&StyleShiny != 0
				wasShiny := prev.Style&StyleShiny != 0
				blurChanged := (redraw && (shiny || wasShiny)) || (c.globalBlurDirty && shiny)

				c.charDirty[i] = redraw
				if redraw {
					changeRect = changeRect.MergePoint(col, row)
				}
				if blurChanged {
					blurRect = blurRect.MergePoint(col, row)
				}
			}
		}
	}

	copy(c.cache, c.grid)
	c.pal.ClearDirty()
	c.dirtyAllChars = false
	c.globalBlurDirty = false
	c.blinkPhaseChanged = false
	c.validated = true

	c.changeRectCells = changeRect
	c.blurRectCells = blurRect
}
