package texture

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/anthonynsimon/bild/blur"
)

var (
	dirtBase  = color.RGBA{R: 125, G: 96, B: 66, A: 255}
	dirtTones = []color.RGBA{{R: 140, G: 110, B: 78, A: 255}, {R: 108, G: 82, B: 56, A: 255}, {R: 96, G: 70, B: 48, A: 255}}
)

// CreateDirtTexture paints a tileable earth texture: base fill, many soft
// radial patches in three tonal variants, a gentle soften pass, and
// per-pixel jitter. Uncontrolled randomness, like the grass painter.
func CreateDirtTexture(size int) *image.RGBA {
	return paintDirt(rand.New(rand.NewSource(rand.Int63())), size)
}

func paintDirt(rng *rand.Rand, size int) *image.RGBA {
	c := newCanvas(size, dirtBase)
	s := float64(size)

	patches := size * size / 220
	for i := 0; i < patches; i++ {
		tone := dirtTones[rng.Intn(len(dirtTones))]
		radius := 2 + rng.Float64()*float64(size)/40
		c.radialPatch(rng.Float64()*s, rng.Float64()*s, radius, tone, 0.25+rng.Float64()*0.25)
	}

	// Soften patch boundaries before the grain goes on
	img := blur.Gaussian(c.toRGBA(), 1.5)

	jitterRGBA(rng, img, 0.04)
	return img
}

// jitterRGBA applies per-pixel luminance jitter directly to an RGBA image
// and restores full opacity, which the blur convolution can nudge off 255.
func jitterRGBA(rng *rand.Rand, img *image.RGBA, amount float64) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			d := (rng.Float64() - 0.5) * 2 * amount * 255
			img.Pix[i+0] = clampByte(float64(img.Pix[i+0]) + d)
			img.Pix[i+1] = clampByte(float64(img.Pix[i+1]) + d)
			img.Pix[i+2] = clampByte(float64(img.Pix[i+2]) + d)
			img.Pix[i+3] = 255
		}
	}
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
