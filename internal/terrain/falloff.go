package terrain

// ApplyEdgeFalloff tapers heights toward zero near the terrain border so the
// mesh reads as a bounded island rather than a clipped plane. Returns a new
// buffer; the input heightmap is not mutated.
//
// Distance from the edge is measured per axis (square falloff, not radial):
// cells with distFromEdge >= falloffDistance are unchanged, the rest are
// scaled by smoothstep(distFromEdge/falloffDistance).
func ApplyEdgeFalloff(heightmap []float64, width, height int, falloffDistance float64) []float64 {
	out := make([]float64, len(heightmap))

	for y := 0; y < height; y++ {
		// Normalized [-1, 1] position per axis
		ny := float64(y)/float64(height-1)*2 - 1
		for x := 0; x < width; x++ {
			nx := float64(x)/float64(width-1)*2 - 1

			ax, ay := nx, ny
			if ax < 0 {
				ax = -ax
			}
			if ay < 0 {
				ay = -ay
			}
			edge := ax
			if ay > edge {
				edge = ay
			}

			distFromEdge := 1 - edge // 1 at center, 0 on the border
			mult := 1.0
			if distFromEdge < falloffDistance {
				t := distFromEdge / falloffDistance
				mult = t * t * (3 - 2*t)
			}
			out[y*width+x] = heightmap[y*width+x] * mult
		}
	}
	return out
}
