package terrain

import (
	"math"
	"math/rand"
	"testing"
)

// TestCalculateSlopesFlat verifies a flat field has zero slope everywhere
func TestCalculateSlopesFlat(t *testing.T) {
	const w, h = 8, 8
	hm := make([]float64, w*h)
	for i := range hm {
		hm[i] = 0.3
	}

	slopes := CalculateSlopes(hm, w, h, 16.0)
	for i, s := range slopes {
		if s != 0 {
			t.Errorf("cell %d slope = %f, want 0", i, s)
		}
	}
}

// TestCalculateSlopesBounds verifies output stays in [0,1] for arbitrary
// fields, including ones steep enough to saturate the clamp.
func TestCalculateSlopesBounds(t *testing.T) {
	const w, h = 16, 16
	rng := rand.New(rand.NewSource(3))
	hm := make([]float64, w*h)
	for i := range hm {
		hm[i] = rng.Float64() * 100 // deliberately extreme heights
	}

	slopes := CalculateSlopes(hm, w, h, 8.0)
	for i, s := range slopes {
		if s < 0 || s > 1 || math.IsNaN(s) {
			t.Errorf("cell %d slope = %f outside [0,1]", i, s)
		}
	}
}

// TestCalculateSlopesRamp verifies the forward-difference math on a linear
// ramp with unit cell size.
func TestCalculateSlopesRamp(t *testing.T) {
	const w, h = 4, 4
	hm := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			hm[y*w+x] = float64(x)
		}
	}

	// terrainSize 4 over width 4 gives cellSize 1, so dx is 1 per cell
	slopes := CalculateSlopes(hm, w, h, 4.0)
	for y := 0; y < h; y++ {
		for x := 0; x < w-1; x++ {
			if math.Abs(slopes[y*w+x]-0.5) > 1e-12 {
				t.Errorf("ramp cell (%d,%d) slope = %f, want 0.5", x, y, slopes[y*w+x])
			}
		}
		// Last column reuses its own height: zero difference
		if slopes[y*w+w-1] != 0 {
			t.Errorf("last column slope = %f, want 0", slopes[y*w+w-1])
		}
	}
}
