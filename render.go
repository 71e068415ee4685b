package textmode

import (
	"github.com/lixenwraith/textmode/font"
	"github.com/lixenwraith/textmode/geom"
)

// Render executes one full pass of the pipeline, in order:
// recomputeLayout, invalidateChars, rasterizeDirtyCells, backToPost,
// applyBlur, compose, blit (§4.14). A render with no intervening mutation
// is idempotent: the output buffer is left unchanged and GetUpdateRect
// reports an empty rect.
func (c *Console) Render() {
	c.recomputeLayout()
	c.invalidateChars()
	c.rasterizeDirtyCells()
	c.backToPost()
	c.applyBlur()

	rect := c.pendingOutputRect()
	c.hasUpdate = !rect.Empty()
	c.lastUpdateRect = rect
	if rect.Empty() {
		return
	}

	c.compose(rect)
	c.blit(rect)
}

// pendingOutputRect computes the pixel-space rect this frame must
// recompose/reblit: the union of the changed and blur-changed cell
// rects, transformed to output space and extended by the blur radius,
// intersected with the output rect (§3 Invariants: finalRect).
func (c *Console) pendingOutputRect() geom.Rect {
	if c.outW == 0 || c.outH == 0 {
		return geom.Rect{}
	}

	union := c.changeRectCells.Merge(c.blurRectCells)
	if union.Empty() {
		return geom.Rect{}
	}

	px := geom.Rect{
		Left:   c.textToOutX(union.Left),
		Top:    c.textToOutY(union.Top),
		Right:  c.textToOutX(union.Right),
		Bottom: c.textToOutY(union.Bottom),
	}
	k := (c.filterWidth - 1) / 2
	outRect := geom.Rect{Left: 0, Top: 0, Right: c.outW, Bottom: c.outH}
	return px.GrowXY(k, k).Intersect(outRect)
}

// HasPendingUpdate reports whether the most recent Render call touched
// the output buffer.
func (c *Console) HasPendingUpdate() bool { return c.hasUpdate }

// GetUpdateRect returns the output-space rect touched by the most recent
// Render call; empty if nothing changed.
func (c *Console) GetUpdateRect() (left, top, right, bottom int) {
	r := c.lastUpdateRect
	return r.Left, r.Top, r.Right, r.Bottom
}

// Hit maps an output-space pixel to a grid cell. Returns false if the
// pixel falls outside the grid's scaled footprint.
func (c *Console) Hit(x, y int) (col, row int, ok bool) {
	if c.scale == 0 {
		return 0, 0, false
	}
	rx := x - c.marginX
	ry := y - c.marginY
	if rx < 0 || ry < 0 {
		return 0, 0, false
	}
	col = rx / (c.scale * font.CharW)
	row = ry / (c.scale * font.CharH)
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return 0, 0, false
	}
	return col, row, true
}

// Update advances the blink clock by dtSeconds, flipping the blink-on
// phase each time the accumulator crosses half of BlinkTimeMs.
// Pauses longer than one blink period are clamped (§5).
func (c *Console) Update(dtSeconds float64) {
	period := float64(c.opts.BlinkTimeMs)
	if period <= 0 {
		return
	}
	dtMs := dtSeconds * 1000
	if dtMs > period {
		dtMs = period
	}

	half := period / 2
	prevPhase := c.blinkAccumMs >= half
	c.blinkAccumMs += dtMs
	for c.blinkAccumMs >= period {
		c.blinkAccumMs -= period
	}
	newPhase := c.blinkAccumMs >= half
	if newPhase != prevPhase {
		c.blinkOn = !c.blinkOn
		c.blinkPhaseChanged = true
		c.validated = false
	}
}
