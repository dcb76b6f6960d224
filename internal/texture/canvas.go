package texture

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// Float-valued paint surface. Channels are kept in [0,1] until the final
// RGBA conversion so repeated low-alpha blending does not accumulate
// quantization error. All brush operations wrap around the edges, which is
// what keeps the finished textures tileable.

type canvas struct {
	size int
	r    []float64
	g    []float64
	b    []float64
}

func newCanvas(size int, base color.RGBA) *canvas {
	n := size * size
	c := &canvas{
		size: size,
		r:    make([]float64, n),
		g:    make([]float64, n),
		b:    make([]float64, n),
	}
	br := float64(base.R) / 255
	bg := float64(base.G) / 255
	bb := float64(base.B) / 255
	for i := 0; i < n; i++ {
		c.r[i] = br
		c.g[i] = bg
		c.b[i] = bb
	}
	return c
}

func (c *canvas) idx(x, y int) int {
	return wrapIndex(y, c.size)*c.size + wrapIndex(x, c.size)
}

// blend mixes col into the pixel at (x, y) with the given opacity.
func (c *canvas) blend(x, y int, col color.RGBA, alpha float64) {
	if alpha <= 0 {
		return
	}
	if alpha > 1 {
		alpha = 1
	}
	i := c.idx(x, y)
	c.r[i] = c.r[i]*(1-alpha) + float64(col.R)/255*alpha
	c.g[i] = c.g[i]*(1-alpha) + float64(col.G)/255*alpha
	c.b[i] = c.b[i]*(1-alpha) + float64(col.B)/255*alpha
}

// stroke paints a directional brush segment starting at (x, y), advancing
// along angle for length pixels with the given width.
func (c *canvas) stroke(x, y, angle, length float64, width int, col color.RGBA, alpha float64) {
	dx := math.Cos(angle)
	dy := math.Sin(angle)
	steps := int(math.Ceil(length))
	if steps < 1 {
		steps = 1
	}
	half := width / 2
	for s := 0; s <= steps; s++ {
		px := x + dx*float64(s)
		py := y + dy*float64(s)
		// Taper opacity toward the stroke tip
		a := alpha * (1 - 0.5*float64(s)/float64(steps))
		for ox := -half; ox <= half; ox++ {
			for oy := -half; oy <= half; oy++ {
				c.blend(int(px)+ox, int(py)+oy, col, a)
			}
		}
	}
}

// radialPatch paints a soft circular patch with gaussian falloff, the same
// construction as a wet watercolor wash.
func (c *canvas) radialPatch(cx, cy, radius float64, col color.RGBA, alpha float64) {
	sigma := radius * 0.55
	if sigma < 1 {
		sigma = 1
	}
	inv2sig2 := 1.0 / (2 * sigma * sigma)
	r := int(math.Ceil(radius)) + 1
	for oy := -r; oy <= r; oy++ {
		for ox := -r; ox <= r; ox++ {
			d2 := float64(ox*ox + oy*oy)
			c.blend(int(cx)+ox, int(cy)+oy, col, alpha*math.Exp(-d2*inv2sig2))
		}
	}
}

// jitter adds per-pixel luminance noise of the given amplitude.
func (c *canvas) jitter(rng *rand.Rand, amount float64) {
	for i := range c.r {
		d := (rng.Float64() - 0.5) * 2 * amount
		c.r[i] = clamp01(c.r[i] + d)
		c.g[i] = clamp01(c.g[i] + d)
		c.b[i] = clamp01(c.b[i] + d)
	}
}

func (c *canvas) toRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.size, c.size))
	for y := 0; y < c.size; y++ {
		for x := 0; x < c.size; x++ {
			i := y*c.size + x
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(clamp01(c.r[i]) * 255),
				G: uint8(clamp01(c.g[i]) * 255),
				B: uint8(clamp01(c.b[i]) * 255),
				A: 255,
			})
		}
	}
	return img
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func wrapIndex(x, max int) int {
	x %= max
	if x < 0 {
		x += max
	}
	return x
}
