package textmode

import "github.com/lixenwraith/textmode/geom"

func sat8(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v)
}

// compose combines post and blurred emissive (+ optional tonemapping)
// into the final buffer (§4.12).
func (c *Console) compose(rect geom.Rect) {
	amount := c.opts.BlurAmount
	tonemap := c.opts.Tonemapping
	ratio := c.opts.TonemappingRatio

	for y := rect.Top; y < rect.Bottom; y++ {
		rowBase := y * c.outW
		for x := rect.Left; x < rect.Right; x++ {
			idx := rowBase + x
			p := c.post[idx]
			bl := c.blur[idx]

			r := float64(p.R) + bl.R*amount
			g := float64(p.G) + bl.G*amount
			b := float64(p.B) + bl.B*amount

			if tonemap {
				excessR := maxf(0, r-255)
				excessG := maxf(0, g-255)
				excessB := maxf(0, b-255)
				exceedLuma := (excessR + excessG + excessB) / 3
				bleed := exceedLuma * ratio
				r += bleed
				g += bleed
				b += bleed
			}

			c.final[idx].R = sat8(r)
			c.final[idx].G = sat8(g)
			c.final[idx].B = sat8(b)
			c.final[idx].A = p.A
		}
	}
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
