package terrain

import (
	"math"
)

// SampleHeight bilinearly interpolates the heightmap at a continuous
// world-space position. World coordinates are centered on the terrain: x and
// z range over [-terrainSize/2, terrainSize/2]. Positions outside the grid
// are clamped, so edge heights are held constant past the boundary and the
// call never fails.
func SampleHeight(heightmap []float64, width, height int, x, z, terrainSize float64) float64 {
	gx := (x + terrainSize/2) / terrainSize * float64(width-1)
	gz := (z + terrainSize/2) / terrainSize * float64(height-1)

	gx = clamp(gx, 0, float64(width-1))
	gz = clamp(gz, 0, float64(height-1))

	x0 := int(math.Floor(gx))
	z0 := int(math.Floor(gz))
	x1 := x0 + 1
	z1 := z0 + 1
	if x1 > width-1 {
		x1 = width - 1
	}
	if z1 > height-1 {
		z1 = height - 1
	}

	tx := gx - float64(x0)
	tz := gz - float64(z0)

	h00 := heightmap[z0*width+x0]
	h10 := heightmap[z0*width+x1]
	h01 := heightmap[z1*width+x0]
	h11 := heightmap[z1*width+x1]

	top := lerp(h00, h10, tx)
	bottom := lerp(h01, h11, tx)
	return lerp(top, bottom, tz)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
