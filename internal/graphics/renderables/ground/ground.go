package ground

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"memory-garden/internal/config"
	"memory-garden/internal/garden"
	"memory-garden/internal/graphics"
	"memory-garden/internal/texture"
)

// Ground renders the baked garden terrain mesh with the grass/dirt blend
// shader and the three procedural ground textures.
type Ground struct {
	shader     *graphics.Shader
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	grassTex  uint32
	dirtTex   uint32
	strokeTex uint32

	size float64
}

// NewGround uploads the mesh and paints + uploads the ground textures.
// Must be called with a current GL context.
func NewGround(mesh *garden.TerrainMesh) (*Ground, error) {
	shader, err := graphics.NewShader(TerrainVertShader, TerrainFragShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}

	g := &Ground{
		shader:     shader,
		indexCount: int32(len(mesh.Indices)),
		size:       mesh.Size,
	}

	texSize := config.GetTextureSize()
	g.grassTex = graphics.UploadTexture(texture.CreateGrassTexture(texSize))
	g.dirtTex = graphics.UploadTexture(texture.CreateDirtTexture(texSize))
	// The stroke overlay stays untiled; the shader re-tiles it from world XZ
	g.strokeTex = graphics.UploadTexture(texture.CreateGrassStrokeTexture(config.GetStrokeTextureSize()))

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	stride := int32(garden.VertexStride * 4)
	offsets := []struct {
		index int
		count int32
	}{
		{0, 3}, // position
		{1, 3}, // normal
		{2, 3}, // color
		{3, 2}, // uv
		{4, 1}, // blend weight
	}
	var offset uintptr
	for _, a := range offsets {
		gl.EnableVertexAttribArray(uint32(a.index))
		gl.VertexAttribPointerWithOffset(uint32(a.index), a.count, gl.FLOAT, false, stride, offset)
		offset += uintptr(a.count) * unsafe.Sizeof(float32(0))
	}

	gl.BindVertexArray(0)
	return g, nil
}

// Render draws the terrain for the current frame.
func (g *Ground) Render(cam *graphics.OrbitCamera, theme garden.Theme) {
	g.shader.Use()

	g.shader.SetMatrix4("projection", cam.GetProjectionMatrix())
	g.shader.SetMatrix4("view", cam.GetViewMatrix())
	g.shader.SetMatrix4("model", mgl32.Ident4())

	g.shader.SetVector3("lightDir", theme.LightDirection())
	g.shader.SetVector3("lightColor", mgl32.Vec3{theme.LightColor[0], theme.LightColor[1], theme.LightColor[2]})
	g.shader.SetVector3("ambientColor", mgl32.Vec3{theme.Ambient[0], theme.Ambient[1], theme.Ambient[2]})
	g.shader.SetVector3("fogColor", mgl32.Vec3{theme.FogColor[0], theme.FogColor[1], theme.FogColor[2]})
	g.shader.SetFloat("fogDensity", theme.FogDensity)
	g.shader.SetVector3("cameraPos", cam.Position())

	g.shader.SetFloat("textureRepeat", config.GetGroundTextureRepeat())
	// World-space stroke tiling: one repeat per world unit keeps the stroke
	// pattern a constant apparent size regardless of UV distortion.
	g.shader.SetFloat("strokeScale", 1.0/float32(g.size)*8.0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, g.grassTex)
	g.shader.SetInt("grassTex", 0)

	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, g.dirtTex)
	g.shader.SetInt("dirtTex", 1)

	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, g.strokeTex)
	g.shader.SetInt("strokeTex", 2)

	gl.BindVertexArray(g.vao)
	gl.DrawElements(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Cleanup releases GPU resources
func (g *Ground) Cleanup() {
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
	}
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
	}
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
	}
	graphics.DeleteTexture(g.grassTex)
	graphics.DeleteTexture(g.dirtTex)
	graphics.DeleteTexture(g.strokeTex)
}
