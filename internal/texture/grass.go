package texture

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// Grass tone palette: base fill plus stroke tints painted over it.
var (
	grassBase   = color.RGBA{R: 88, G: 128, B: 68, A: 255}
	grassTones  = []color.RGBA{{R: 104, G: 146, B: 78, A: 255}, {R: 76, G: 112, B: 58, A: 255}, {R: 118, G: 158, B: 92, A: 255}}
	grassBlade  = color.RGBA{R: 96, G: 140, B: 72, A: 255}
	grassBlade2 = color.RGBA{R: 70, G: 104, B: 54, A: 255}
)

// CreateGrassTexture paints a tileable grass base texture: flat base color,
// scattered directional brush strokes in a few tonal variants, a dense tuft
// overlay, and fine per-pixel luminance jitter. Output is visual-only and
// uses an uncontrolled random source; see paintGrass for the seeded entry.
func CreateGrassTexture(size int) *image.RGBA {
	return paintGrass(rand.New(rand.NewSource(rand.Int63())), size)
}

func paintGrass(rng *rand.Rand, size int) *image.RGBA {
	c := newCanvas(size, grassBase)
	s := float64(size)

	// Broad tonal strokes, loosely aligned so the field reads as brushed
	strokes := size * size / 180
	for i := 0; i < strokes; i++ {
		tone := grassTones[rng.Intn(len(grassTones))]
		angle := math.Pi/2 + (rng.Float64()-0.5)*0.9
		length := 6 + rng.Float64()*float64(size)/24
		c.stroke(rng.Float64()*s, rng.Float64()*s, angle, length, 1+rng.Intn(2), tone, 0.25+rng.Float64()*0.2)
	}

	paintTufts(rng, c)
	c.jitter(rng, 0.03)
	return c.toRGBA()
}

// paintTufts scatters small clusters of short diverging lines that read as
// individual grass blades.
func paintTufts(rng *rand.Rand, c *canvas) {
	s := float64(c.size)
	clusters := c.size * c.size / 600
	for i := 0; i < clusters; i++ {
		cx := rng.Float64() * s
		cy := rng.Float64() * s
		blades := 3 + rng.Intn(4)
		for b := 0; b < blades; b++ {
			// Blades fan out around straight up
			angle := -math.Pi/2 + (rng.Float64()-0.5)*1.1
			length := 3 + rng.Float64()*5
			col := grassBlade
			if rng.Intn(2) == 0 {
				col = grassBlade2
			}
			c.stroke(cx+(rng.Float64()-0.5)*3, cy+(rng.Float64()-0.5)*3, angle, length, 1, col, 0.5)
		}
	}
}
