package ground

import (
	"path/filepath"
)

const (
	ShadersDir = "assets/shaders"
)

var (
	TerrainVertShader = filepath.Join(ShadersDir, "terrain.vert")
	TerrainFragShader = filepath.Join(ShadersDir, "terrain.frag")
)
