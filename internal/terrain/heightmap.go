package terrain

import (
	"math"
)

// Options controls heightmap synthesis. Zero values are not meaningful for
// any field, so callers start from DefaultOptions and override what they
// need; an explicit Seed of 0 is still a valid seed.
type Options struct {
	Seed           int64   // permutation table seed
	Scale          float64 // base sample frequency, default 0.1
	Octaves        int     // noise layers summed, default 4
	Persistence    float64 // per-octave amplitude falloff, default 0.5
	Lacunarity     float64 // per-octave frequency growth, default 2.0
	Amplitude      float64 // final height scale, default 0.5
	Redistribution float64 // power curve; >1 flattens lows, sharpens peaks. default 1.2
}

// DefaultOptions returns the standard garden terrain parameters.
func DefaultOptions() Options {
	return Options{
		Seed:           42,
		Scale:          0.1,
		Octaves:        4,
		Persistence:    0.5,
		Lacunarity:     2.0,
		Amplitude:      0.5,
		Redistribution: 1.2,
	}
}

// GenerateHeightmap synthesizes a width*height scalar field, row-major
// (y*width+x). Output is fully deterministic for a given Options value and
// every cell lies in [0, opts.Amplitude] with no NaN/Inf entries.
func GenerateHeightmap(width, height int, opts Options) []float64 {
	noise := NewNoise(opts.Seed)
	out := make([]float64, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			total := 0.0
			amp := 1.0
			freq := opts.Scale
			norm := 0.0
			for o := 0; o < opts.Octaves; o++ {
				total += noise.Sample2D(float64(x)*freq, float64(y)*freq) * amp
				norm += amp
				amp *= opts.Persistence
				freq *= opts.Lacunarity
			}
			// Normalizing by the amplitude sum keeps the field bounded
			// regardless of octave count.
			out[y*width+x] = total / norm
		}
	}

	min, max := out[0], out[0]
	for _, v := range out[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if max == min {
		// Degenerate flat field; remapping would divide by zero.
		for i := range out {
			out[i] = 0
		}
		return out
	}

	for i, v := range out {
		t := (v - min) / (max - min)
		out[i] = math.Pow(t, opts.Redistribution) * opts.Amplitude
	}
	return out
}
