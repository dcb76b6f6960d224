package terrain

import (
	"math"
)

// Seeded 2D gradient noise with a shuffled permutation table.
// The table is built once per generator; a generator is immutable after
// construction, so each terrain instance owns its own Noise value.

const lcgModulus = 233280

// Noise is a deterministic 2D gradient noise generator. Sample2D output is
// continuous, stays in [-1, 1] and repeats with period 256 on each axis.
type Noise struct {
	perm [512]int
}

// NewNoise builds a generator from an integer seed. Any seed is valid,
// including zero and negative values; the LCG state is normalized into
// [0, 233280) so the internal random stream is always in range.
func NewNoise(seed int64) *Noise {
	n := &Noise{}

	state := ((seed % lcgModulus) + lcgModulus) % lcgModulus
	next := func() float64 {
		state = (state*9301 + 49297) % lcgModulus
		return float64(state) / lcgModulus
	}

	var p [256]int
	for i := range p {
		p[i] = i
	}
	// Fisher-Yates using the LCG stream
	for i := 255; i > 0; i-- {
		j := int(next() * float64(i+1))
		p[i], p[j] = p[j], p[i]
	}

	// Doubled table avoids modulo wraparound during corner lookups
	for i := 0; i < 512; i++ {
		n.perm[i] = p[i&255]
	}
	return n
}

// fade is the quintic smoothing curve 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// grad selects one of 16 pseudo-gradients from the hash and returns its dot
// product with (x, y).
func grad(hash int, x, y float64) float64 {
	h := hash & 15
	u := x
	if h >= 8 {
		u = y
	}
	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// Sample2D returns gradient noise at (x, y) in [-1, 1].
func (n *Noise) Sample2D(x, y float64) float64 {
	fx := math.Floor(x)
	fy := math.Floor(y)
	xi := int(fx) & 255
	yi := int(fy) & 255
	xf := x - fx
	yf := y - fy

	u := fade(xf)
	v := fade(yf)

	aa := n.perm[n.perm[xi]+yi]
	ab := n.perm[n.perm[xi]+yi+1]
	ba := n.perm[n.perm[xi+1]+yi]
	bb := n.perm[n.perm[xi+1]+yi+1]

	x1 := lerp(grad(aa, xf, yf), grad(ba, xf-1, yf), u)
	x2 := lerp(grad(ab, xf, yf-1), grad(bb, xf-1, yf-1), u)
	return lerp(x1, x2, v)
}
