package garden

import (
	"memory-garden/internal/terrain"
)

// Blend weight convention: 0 is pure grass, 1 is pure dirt. The shader mixes
// the two ground textures with this per-vertex scalar.

// BlendWeights derives per-vertex grass/dirt weights from a second noise
// field layered with slope: steep ground and noisy patches read as exposed
// earth. Every derivation step clamps into [0,1].
func BlendWeights(heightmap []float64, width, height int, seed int64, terrainSize float64) []float64 {
	slopes := terrain.CalculateSlopes(heightmap, width, height, terrainSize)

	// Offset seed keeps the patch field decorrelated from the heightmap
	patchNoise := terrain.NewNoise(seed + 1)

	out := make([]float64, len(heightmap))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x

			n := patchNoise.Sample2D(float64(x)*0.15, float64(y)*0.15)
			patch := clamp01((n + 1) / 2)

			// Patches only break through where the noise is strong,
			// otherwise grass dominates.
			w := clamp01((patch - 0.55) * 2.2)
			w = clamp01(w + slopes[i]*0.8)
			out[i] = w
		}
	}
	return out
}

// VertexColors bakes theme-tinted RGB triples per vertex: grass and dirt
// tints mixed by blend weight, darkened on slopes so relief reads without
// lighting. Components are clamped to [0,1].
func VertexColors(theme Theme, heightmap []float64, weights []float64, width, height int, terrainSize float64) []float32 {
	slopes := terrain.CalculateSlopes(heightmap, width, height, terrainSize)

	out := make([]float32, len(heightmap)*3)
	for i := range heightmap {
		w := weights[i]
		shade := 1.0 - slopes[i]*0.35

		for c := 0; c < 3; c++ {
			grass := float64(theme.GrassTint[c])
			dirt := float64(theme.DirtTint[c])
			v := (grass + (dirt-grass)*w) * shade
			out[i*3+c] = float32(clamp01(v))
		}
	}
	return out
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
