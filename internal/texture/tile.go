package texture

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Tile expands a square texture into a repeats x repeats sheet. The renderer
// normally tiles via REPEAT wrap addressing on the GPU; this is for CPU-side
// consumers (previews, PNG export) that want the repeated pattern baked in.
func Tile(src *image.RGBA, repeats int) *image.RGBA {
	if repeats <= 1 {
		return src
	}
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()
	out := image.NewRGBA(image.Rect(0, 0, w*repeats, h*repeats))
	for ty := 0; ty < repeats; ty++ {
		for tx := 0; tx < repeats; tx++ {
			xdraw.Copy(out, image.Pt(tx*w, ty*h), src, src.Bounds(), xdraw.Src, nil)
		}
	}
	return out
}

// Shrink resamples a texture down to the given square size with bilinear
// filtering, used by the export tool for contact sheets.
func Shrink(src *image.RGBA, size int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.ApproxBiLinear.Scale(out, out.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return out
}
