package terrain

import (
	"math"
)

// CalculateSlopes computes a per-cell gradient magnitude in [0, 1] from
// forward differences, used for slope-dependent coloring. The last row and
// column reuse the current cell's height, which degrades to zero difference
// there instead of reading out of bounds.
func CalculateSlopes(heightmap []float64, width, height int, terrainSize float64) []float64 {
	out := make([]float64, len(heightmap))
	cellSize := terrainSize / float64(width)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			h := heightmap[y*width+x]
			hx := h
			if x < width-1 {
				hx = heightmap[y*width+x+1]
			}
			hy := h
			if y < height-1 {
				hy = heightmap[(y+1)*width+x]
			}

			dx := (hx - h) / cellSize
			dy := (hy - h) / cellSize
			slope := math.Sqrt(dx*dx+dy*dy) * 0.5
			if slope > 1 {
				slope = 1
			}
			out[y*width+x] = slope
		}
	}
	return out
}
