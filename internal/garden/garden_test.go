package garden

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinThemesValid(t *testing.T) {
	themes := BuiltinThemes()
	require.NotEmpty(t, themes)

	seen := map[string]bool{}
	for _, th := range themes {
		assert.NotEmpty(t, th.Name)
		assert.False(t, seen[th.Name], "duplicate theme name %s", th.Name)
		seen[th.Name] = true

		assert.Greater(t, th.Terrain.Resolution, 1)
		assert.Greater(t, th.Terrain.Size, 0.0)
		assert.Greater(t, th.Terrain.Octaves, 0)
		assert.NotZero(t, th.LightDirection().Len())
	}
}

func TestFindTheme(t *testing.T) {
	themes := BuiltinThemes()

	th, err := FindTheme(themes, "")
	require.NoError(t, err)
	assert.Equal(t, themes[0].Name, th.Name)

	th, err = FindTheme(themes, "twilight")
	require.NoError(t, err)
	assert.Equal(t, "twilight", th.Name)

	_, err = FindTheme(themes, "volcano")
	assert.Error(t, err)
}

func TestLoadThemesAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "themes.yaml")
	data := `themes:
  - name: sparse
    grass_tint: [0.4, 0.6, 0.3]
    dirt_tint: [0.5, 0.4, 0.3]
    light_dir: [0, -1, 0]
    terrain:
      seed: 5
      octaves: 2
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	themes, err := LoadThemes(path)
	require.NoError(t, err)
	require.Len(t, themes, 1)

	p := themes[0].Terrain
	assert.Equal(t, int64(5), p.Seed)
	assert.Equal(t, 2, p.Octaves, "explicit value must survive defaulting")
	assert.Equal(t, 0.1, p.Scale, "missing fields fall back to defaults")
	assert.Equal(t, 0.15, p.FalloffDistance)
	assert.Greater(t, p.Resolution, 1)
}

func TestLoadThemesErrors(t *testing.T) {
	_, err := LoadThemes(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("themes: []\n"), 0o644))
	_, err = LoadThemes(path)
	assert.Error(t, err)
}

func TestBlendWeightsRange(t *testing.T) {
	th := BuiltinThemes()[0]
	p := th.Terrain
	hm := make([]float64, p.Resolution*p.Resolution)
	for i := range hm {
		hm[i] = float64(i%7) * 0.1
	}

	weights := BlendWeights(hm, p.Resolution, p.Resolution, p.Seed, p.Size)
	require.Len(t, weights, len(hm))
	for i, w := range weights {
		require.GreaterOrEqual(t, w, 0.0, "weight %d", i)
		require.LessOrEqual(t, w, 1.0, "weight %d", i)
	}
}

func TestVertexColorsClamped(t *testing.T) {
	th := BuiltinThemes()[0]
	hm := []float64{0, 0.5, 0.25, 1}
	weights := []float64{0, 1, 0.5, 0.25}

	colors := VertexColors(th, hm, weights, 2, 2, 4.0)
	require.Len(t, colors, 12)
	for i, c := range colors {
		assert.GreaterOrEqual(t, c, float32(0), "component %d", i)
		assert.LessOrEqual(t, c, float32(1), "component %d", i)
	}
}

func TestBuildTerrainMesh(t *testing.T) {
	th := BuiltinThemes()[0]
	th.Terrain.Resolution = 16
	m := BuildTerrainMesh(th)

	res := th.Terrain.Resolution
	require.Len(t, m.Vertices, res*res*VertexStride)
	require.Len(t, m.Indices, (res-1)*(res-1)*6)

	vertexCount := uint32(res * res)
	for _, idx := range m.Indices {
		require.Less(t, idx, vertexCount)
	}

	half := float32(th.Terrain.Size / 2)
	for v := 0; v < res*res; v++ {
		base := v * VertexStride

		x, y, z := m.Vertices[base], m.Vertices[base+1], m.Vertices[base+2]
		assert.GreaterOrEqual(t, x, -half)
		assert.LessOrEqual(t, x, half)
		assert.GreaterOrEqual(t, z, -half)
		assert.LessOrEqual(t, z, half)
		assert.GreaterOrEqual(t, y, float32(0))
		assert.LessOrEqual(t, y, float32(th.Terrain.Amplitude))

		for off := 0; off < VertexStride; off++ {
			require.False(t, math.IsNaN(float64(m.Vertices[base+off])),
				"vertex %d component %d is NaN", v, off)
		}

		// Normals point up out of the surface
		assert.Greater(t, m.Vertices[base+4], float32(0), "vertex %d normal y", v)

		// Blend weight attribute in [0,1]
		blend := m.Vertices[base+11]
		assert.GreaterOrEqual(t, blend, float32(0))
		assert.LessOrEqual(t, blend, float32(1))
	}
}

func TestBuildTerrainMeshDeterministic(t *testing.T) {
	th := BuiltinThemes()[1]
	th.Terrain.Resolution = 12
	a := BuildTerrainMesh(th)
	b := BuildTerrainMesh(th)
	assert.Equal(t, a.Vertices, b.Vertices)
	assert.Equal(t, a.Indices, b.Indices)
}

func TestBuildTerrainMeshEdgesTaper(t *testing.T) {
	th := BuiltinThemes()[0]
	th.Terrain.Resolution = 32
	m := BuildTerrainMesh(th)
	res := th.Terrain.Resolution

	// Falloff zeroes the outermost ring of the heightmap
	for x := 0; x < res; x++ {
		assert.Zero(t, m.Heightmap[x], "top border cell %d", x)
		assert.Zero(t, m.Heightmap[(res-1)*res+x], "bottom border cell %d", x)
	}
}

func TestMeshHeightAt(t *testing.T) {
	th := BuiltinThemes()[0]
	th.Terrain.Resolution = 16
	m := BuildTerrainMesh(th)

	h := m.HeightAt(0, 0)
	assert.False(t, math.IsNaN(h))
	assert.GreaterOrEqual(t, h, 0.0)
	assert.LessOrEqual(t, h, th.Terrain.Amplitude)

	// Border samples land on falloff-zeroed cells
	half := th.Terrain.Size / 2
	assert.InDelta(t, 0, m.HeightAt(-half, -half), 1e-9)
}
