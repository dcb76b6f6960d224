package garden

import (
	"math"

	"github.com/chewxy/math32"

	"memory-garden/internal/terrain"
)

// VertexStride is the float count per vertex in TerrainMesh.Vertices:
// position (3), normal (3), color (3), uv (2), blend weight (1).
const VertexStride = 12

// TerrainMesh is the baked, render-ready garden plot: interleaved vertex
// data plus a triangle index list. It is a plain value; uploading it to the
// GPU is the graphics layer's job.
type TerrainMesh struct {
	Vertices   []float32
	Indices    []uint32
	Resolution int
	Size       float64

	// Heightmap retained after baking so gameplay code can place flowers on
	// the surface via terrain.SampleHeight.
	Heightmap []float64
}

// HeightAt samples the baked surface at world (x, z).
func (m *TerrainMesh) HeightAt(x, z float64) float64 {
	return terrain.SampleHeight(m.Heightmap, m.Resolution, m.Resolution, x, z, m.Size)
}

// BuildTerrainMesh runs the full terrain-building pipeline for a theme:
// heightmap synthesis, edge falloff, blend weight and color derivation, then
// vertex/index baking. The call is pure and synchronous; callers cache the
// result per theme and regenerate only when parameters change.
func BuildTerrainMesh(theme Theme) *TerrainMesh {
	p := theme.Terrain
	res := p.Resolution
	size := p.Size

	hm := terrain.GenerateHeightmap(res, res, p.Options())
	hm = terrain.ApplyEdgeFalloff(hm, res, res, p.FalloffDistance)

	weights := BlendWeights(hm, res, res, p.Seed, size)
	colors := VertexColors(theme, hm, weights, res, res, size)

	m := &TerrainMesh{
		Vertices:   make([]float32, 0, res*res*VertexStride),
		Indices:    make([]uint32, 0, (res-1)*(res-1)*6),
		Resolution: res,
		Size:       size,
		Heightmap:  hm,
	}

	for gy := 0; gy < res; gy++ {
		for gx := 0; gx < res; gx++ {
			i := gy*res + gx

			wx := float64(gx)/float64(res-1)*size - size/2
			wz := float64(gy)/float64(res-1)*size - size/2

			h := hm[i]
			// Accumulated float error must never reach the vertex buffer
			if math.IsNaN(h) {
				h = 0
			}

			nx, ny, nz := vertexNormal(hm, res, gx, gy, size)

			m.Vertices = append(m.Vertices,
				float32(wx), float32(h), float32(wz),
				nx, ny, nz,
				colors[i*3], colors[i*3+1], colors[i*3+2],
				float32(gx)/float32(res-1), float32(gy)/float32(res-1),
				float32(weights[i]),
			)
		}
	}

	for gy := 0; gy < res-1; gy++ {
		for gx := 0; gx < res-1; gx++ {
			tl := uint32(gy*res + gx)
			tr := tl + 1
			bl := uint32((gy+1)*res + gx)
			br := bl + 1
			m.Indices = append(m.Indices, tl, bl, tr, tr, bl, br)
		}
	}

	return m
}

// vertexNormal estimates the surface normal from central height differences,
// reusing the edge cell at the border the way the slope analyzer does.
func vertexNormal(hm []float64, res, gx, gy int, size float64) (float32, float32, float32) {
	cell := size / float64(res)

	at := func(x, y int) float64 {
		if x < 0 {
			x = 0
		}
		if x > res-1 {
			x = res - 1
		}
		if y < 0 {
			y = 0
		}
		if y > res-1 {
			y = res - 1
		}
		return hm[y*res+x]
	}

	dx := float32((at(gx+1, gy) - at(gx-1, gy)) / (2 * cell))
	dz := float32((at(gx, gy+1) - at(gx, gy-1)) / (2 * cell))

	nx, ny, nz := -dx, float32(1), -dz
	mag := math32.Sqrt(nx*nx + ny*ny + nz*nz)
	if mag == 0 || math32.IsNaN(mag) {
		return 0, 1, 0
	}
	return nx / mag, ny / mag, nz / mag
}
