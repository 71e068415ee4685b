package textmode

import (
	"github.com/lixenwraith/textmode/geom"
	"github.com/lixenwraith/textmode/palette"
)

// blit copies or source-over blends the final buffer into the caller's
// framebuffer, restricted to rect and respecting the caller's row pitch
// (§4.13).
func (c *Console) blit(rect geom.Rect) {
	if c.outBuf == nil {
		return
	}
	copyMode := c.opts.BlendMode == BlendCopy

	for y := rect.Top; y < rect.Bottom; y++ {
		srcRow := y * c.outW
		dstRowStart := y * c.outPitch
		for x := rect.Left; x < rect.Right; x++ {
			src := c.final[srcRow+x]
			dstOff := dstRowStart + x*4

			if copyMode {
				c.outBuf[dstOff+0] = src.R
				c.outBuf[dstOff+1] = src.G
				c.outBuf[dstOff+2] = src.B
				c.outBuf[dstOff+3] = src.A
				continue
			}

			dst := palette.RGBA8{
				R: c.outBuf[dstOff+0],
				G: c.outBuf[dstOff+1],
				B: c.outBuf[dstOff+2],
				A: c.outBuf[dstOff+3],
			}
			blended := palette.BlendColor(src, dst, src.A)
			c.outBuf[dstOff+0] = blended.R
			c.outBuf[dstOff+1] = blended.G
			c.outBuf[dstOff+2] = blended.B
			c.outBuf[dstOff+3] = blended.A
		}
	}
}
