package textmode

import (
	"math"

	"github.com/lixenwraith/textmode/font"
	"github.com/lixenwraith/textmode/geom"
	"github.com/lixenwraith/textmode/palette"
)

// buildGaussianKernel derives an odd-length, DC-normalized 1-D kernel from
// the error-function integral (§4.11): K[i] = Φ(i-k+1) - Φ(i-k), σ = 2k/8.
func buildGaussianKernel(width int) []float64 {
	if width < 1 {
		width = 1
	}
	if width%2 == 0 {
		width++
	}
	k := (width - 1) / 2
	sigma := float64(2*k) / 8
	if sigma <= 0 {
		kernel := make([]float64, width)
		kernel[k] = 1
		return kernel
	}

	phi := func(x float64) float64 {
		return 0.5 * math.Erf(x/(math.Sqrt2*sigma))
	}

	kernel := make([]float64, width)
	var sum float64
	for i := 0; i < width; i++ {
		kernel[i] = phi(float64(i-k+1)) - phi(float64(i-k))
		sum += kernel[i]
	}
	if sum != 0 {
		for i := range kernel {
			kernel[i] /= sum
		}
	}
	return kernel
}

func sat16(v float64) uint16 {
	if v <= 0 {
		return 0
	}
	if v >= 65535 {
		return 65535
	}
	return uint16(v)
}

// applyBlur runs the separable Gaussian over the emissive plane (§4.11):
// a horizontal pass that writes its result transposed, then a vertical
// pass that reads that transposed layout so both passes access memory
// contiguously.
func (c *Console) applyBlur() {
	if c.blurRectCells.Empty() {
		return
	}

	k := (c.filterWidth - 1) / 2
	outRect := geom.Rect{Left: 0, Top: 0, Right: c.outW, Bottom: c.outH}
	cellRect := c.blurRectCells.Grow(1) // pad one cell so blur spills into neighbors

	px := geom.Rect{
		Left:   c.textToOutX(cellRect.Left),
		Top:    c.textToOutY(cellRect.Top),
		Right:  c.textToOutX(cellRect.Right),
		Bottom: c.textToOutY(cellRect.Bottom),
	}
	expanded := px.GrowXY(k, k).Intersect(outRect)
	if expanded.Empty() {
		return
	}

	c.blurHorizontal(expanded, k)
	c.blurVertical(expanded, k)
}

func (c *Console) textToOutX(col int) int { return c.marginX + col*font.CharW*c.scale }
func (c *Console) textToOutY(row int) int { return c.marginY + row*font.CharH*c.scale }

func (c *Console) blurHorizontal(rect geom.Rect, k int) {
	kernel := c.kernel
	for y := rect.Top; y < rect.Bottom; y++ {
		rowBase := y * c.outW
		for x := rect.Left; x < rect.Right; x++ {
			var r, g, b, a float64
			for n := -k; n <= k; n++ {
				sx := x + n
				if sx < 0 || sx >= c.outW {
					continue
				}
				src := c.emit[rowBase+sx]
				weight := kernel[n+k]
				r += float64(src.R) * weight
				g += float64(src.G) * weight
				b += float64(src.B) * weight
				a += float64(src.A) * weight
			}
			c.emitH[x*c.outH+y] = palette.RGBAU16{
				R: sat16(r), G: sat16(g), B: sat16(b), A: sat16(a),
			}
		}
	}
}

func (c *Console) blurVertical(rect geom.Rect, k int) {
	kernel := c.kernel
	noise := c.opts.NoiseTexture
	amount := c.opts.NoiseAmount

	for y := rect.Top; y < rect.Bottom; y++ {
		for x := rect.Left; x < rect.Right; x++ {
			var r, g, b, a float64
			colBase := x * c.outH
			for n := -k; n <= k; n++ {
				sy := y + n
				if sy < 0 || sy >= c.outH {
					continue
				}
				src := c.emitH[colBase+sy]
				weight := kernel[n+k]
				r += float64(src.R) * weight
				g += float64(src.G) * weight
				b += float64(src.B) * weight
				a += float64(src.A) * weight
			}
			r = math.Sqrt(r)
			g = math.Sqrt(g)
			b = math.Sqrt(b)
			a = math.Sqrt(a)

			if noise {
				n := float64(noiseTile[(x&15)*16+(y&15)])
				mult := 1 + (n-127.5)*amount*0.0006
				r *= mult
				g *= mult
				b *= mult
				a *= mult
			}

			c.blur[y*c.outW+x] = colorF32{R: r, G: g, B: b, A: a}
		}
	}
}
