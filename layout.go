package textmode

import "github.com/lixenwraith/textmode/font"

// recomputeLayout derives scale, margins, and blur filter width from the
// grid and output dimensions (§4.9). Always run at the start of Render;
// it only perturbs dirty state when something actually changed.
func (c *Console) recomputeLayout() {
	if c.cols == 0 || c.rows == 0 || c.outW == 0 || c.outH == 0 {
		return
	}

	cellW := c.cols * font.CharW
	cellH := c.rows * font.CharH

	scaleX := c.outW / cellW
	scaleY := c.outH / cellH
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}
	if scale < 1 {
		scale = 1
	}

	remX := c.outW - cellW*scale
	remY := c.outH - cellH*scale
	if remX < 0 {
		remX = 0
	}
	if remY < 0 {
		remY = 0
	}

	var marginX, marginY int
	switch c.opts.HAlign {
	case AlignStart:
		marginX = 0
	case AlignEnd:
		marginX = remX
	default:
		marginX = remX / 2
	}
	switch c.opts.VAlign {
	case AlignStart:
		marginY = 0
	case AlignEnd:
		marginY = remY
	default:
		marginY = remY / 2
	}

	filterWidth := computeFilterWidth(scale, c.opts.BlurScale)

	changed := scale != c.scale || marginX != c.marginX || marginY != c.marginY
	if changed {
		c.scale = scale
		c.marginX = marginX
		c.marginY = marginY
		c.dirtyAllChars = true
		c.borderDirty = true
		c.globalBlurDirty = true
		c.validated = false
	}

	if filterWidth != c.filterWidth {
		c.filterWidth = filterWidth
		c.kernel = buildGaussianKernel(filterWidth)
		c.globalBlurDirty = true
	}

}

// computeFilterWidth derives an odd filter width from the scaled cell
// width, capped at MaxFilterWidth (§4.9).
func computeFilterWidth(scale int, blurScale float64) int {
	w := int(float64(font.CharW*scale)*blurScale*2.5 + 0.5)
	if w%2 == 0 {
		w++
	}
	if w < 1 {
		w = 1
	}
	if w > MaxFilterWidth {
		w = MaxFilterWidth
	}
	return w
}
