package texture

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

var (
	strokeBase  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	strokeLight = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	strokeDark  = color.RGBA{R: 104, G: 104, B: 104, A: 255}
)

// CreateGrassStrokeTexture paints a fine diagonal stroke overlay around a
// neutral gray, with a dominant stroke direction and a sparser crossing
// population for an anisotropic brushed look.
//
// The generator leaves the image untiled on purpose: the terrain shader
// samples it with world-XZ-derived coordinates instead of mesh UVs, so the
// stroke pattern keeps a constant apparent size on the ground no matter how
// the heightmap displaces the mesh. Re-tiling here would double-apply the
// repeat.
func CreateGrassStrokeTexture(size int) *image.RGBA {
	return paintGrassStrokes(rand.New(rand.NewSource(rand.Int63())), size)
}

func paintGrassStrokes(rng *rand.Rand, size int) *image.RGBA {
	c := newCanvas(size, strokeBase)
	s := float64(size)

	dominant := math.Pi / 4 // down-right diagonal
	cross := dominant + math.Pi/2

	primary := size * size / 110
	for i := 0; i < primary; i++ {
		col := strokeLight
		if rng.Intn(2) == 0 {
			col = strokeDark
		}
		angle := dominant + (rng.Float64()-0.5)*0.25
		length := 4 + rng.Float64()*float64(size)/32
		c.stroke(rng.Float64()*s, rng.Float64()*s, angle, length, 1, col, 0.2+rng.Float64()*0.15)
	}

	secondary := primary / 3
	for i := 0; i < secondary; i++ {
		col := strokeLight
		if rng.Intn(2) == 0 {
			col = strokeDark
		}
		angle := cross + (rng.Float64()-0.5)*0.3
		length := 3 + rng.Float64()*float64(size)/48
		c.stroke(rng.Float64()*s, rng.Float64()*s, angle, length, 1, col, 0.12+rng.Float64()*0.1)
	}

	c.jitter(rng, 0.02)
	return c.toRGBA()
}
