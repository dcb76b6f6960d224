package terrain

import (
	"math"
	"math/rand"
	"testing"
)

// TestSampleHeightAtLatticePoints verifies the sampler reproduces stored
// values exactly when evaluated on grid cells, including all four corners.
func TestSampleHeightAtLatticePoints(t *testing.T) {
	const w, h = 5, 5
	const terrainSize = 10.0
	hm := make([]float64, w*h)
	rng := rand.New(rand.NewSource(7))
	for i := range hm {
		hm[i] = rng.Float64()
	}

	for gy := 0; gy < h; gy++ {
		for gx := 0; gx < w; gx++ {
			// Invert the grid mapping to land exactly on cell (gx, gy)
			x := float64(gx)/float64(w-1)*terrainSize - terrainSize/2
			z := float64(gy)/float64(h-1)*terrainSize - terrainSize/2
			got := SampleHeight(hm, w, h, x, z, terrainSize)
			want := hm[gy*w+gx]
			if math.Abs(got-want) > 1e-9 {
				t.Errorf("lattice (%d,%d): got %f, want %f", gx, gy, got, want)
			}
		}
	}
}

// TestSampleHeightMidpoint verifies the midpoint of four equal corners
// returns that value.
func TestSampleHeightMidpoint(t *testing.T) {
	hm := []float64{0.75, 0.75, 0.75, 0.75}
	got := SampleHeight(hm, 2, 2, 0, 0, 2.0)
	if math.Abs(got-0.75) > 1e-12 {
		t.Errorf("midpoint of equal corners = %f, want 0.75", got)
	}

	// And a known bilinear blend of unequal corners
	hm = []float64{0, 1, 2, 3}
	got = SampleHeight(hm, 2, 2, 0, 0, 2.0)
	if math.Abs(got-1.5) > 1e-12 {
		t.Errorf("center of [0 1 2 3] = %f, want 1.5", got)
	}
}

// TestSampleHeightClampsOutOfRange verifies positions beyond the border hold
// the edge value instead of extrapolating or panicking.
func TestSampleHeightClampsOutOfRange(t *testing.T) {
	const w, h = 4, 4
	const terrainSize = 8.0
	hm := make([]float64, w*h)
	for i := range hm {
		hm[i] = float64(i)
	}

	corner := hm[0]
	got := SampleHeight(hm, w, h, -1000, -1000, terrainSize)
	if got != corner {
		t.Errorf("far out-of-range sample = %f, want corner %f", got, corner)
	}

	corner = hm[w*h-1]
	got = SampleHeight(hm, w, h, 1000, 1000, terrainSize)
	if got != corner {
		t.Errorf("far out-of-range sample = %f, want corner %f", got, corner)
	}
}
