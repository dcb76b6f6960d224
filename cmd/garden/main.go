package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"memory-garden/internal/garden"
	"memory-garden/internal/graphics"
	"memory-garden/internal/graphics/renderables/ground"
)

const (
	winW = 1024
	winH = 640
)

func init() {
	runtime.LockOSThread()
}

func main() {
	themeName := flag.String("theme", "", "theme to open (default: first available)")
	themeFile := flag.String("themes", "", "optional YAML theme file overriding the built-in set")
	flag.Parse()

	themes := garden.BuiltinThemes()
	if *themeFile != "" {
		loaded, err := garden.LoadThemes(*themeFile)
		if err != nil {
			log.Fatalf("load themes: %v", err)
		}
		themes = loaded
	}

	theme, err := garden.FindTheme(themes, *themeName)
	if err != nil {
		log.Fatalf("select theme: %v", err)
	}

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		panic(err)
	}

	if err := gl.Init(); err != nil {
		panic(err)
	}
	gl.Enable(gl.DEPTH_TEST)

	viewer, err := newViewer(window, themes, theme)
	if err != nil {
		log.Fatalf("viewer setup: %v", err)
	}
	defer viewer.cleanup()

	viewer.setupInputHandlers(window)
	viewer.run(window)
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(winW, winH, "memory garden", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	return window, nil
}

// viewer owns the scene state for the interactive garden window.
type viewer struct {
	themes   []garden.Theme
	themeIdx int
	theme    garden.Theme

	camera *graphics.OrbitCamera
	ground *ground.Ground

	dragging   bool
	lastCursor [2]float64
}

func newViewer(window *glfw.Window, themes []garden.Theme, theme garden.Theme) (*viewer, error) {
	v := &viewer{
		themes: themes,
		theme:  theme,
		camera: graphics.NewOrbitCamera(winW, winH, float32(theme.Terrain.Size)*0.9),
	}
	for i := range themes {
		if themes[i].Name == theme.Name {
			v.themeIdx = i
		}
	}
	if err := v.rebuildGround(); err != nil {
		return nil, err
	}
	return v, nil
}

// rebuildGround regenerates terrain and textures for the current theme.
// Generation is synchronous; it runs only on startup and theme switches.
func (v *viewer) rebuildGround() error {
	start := time.Now()
	mesh := garden.BuildTerrainMesh(v.theme)

	if v.ground != nil {
		v.ground.Cleanup()
		v.ground = nil
	}
	g, err := ground.NewGround(mesh)
	if err != nil {
		return err
	}
	v.ground = g

	fmt.Printf("built %q terrain in %s\n", v.theme.Name, time.Since(start).Round(time.Millisecond))
	return nil
}

func (v *viewer) cycleTheme() {
	v.themeIdx = (v.themeIdx + 1) % len(v.themes)
	v.theme = v.themes[v.themeIdx]
	if err := v.rebuildGround(); err != nil {
		log.Printf("rebuild for theme %s: %v", v.theme.Name, err)
	}
}

func (v *viewer) setupInputHandlers(window *glfw.Window) {
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button == glfw.MouseButtonLeft {
			v.dragging = action == glfw.Press
			v.lastCursor[0], v.lastCursor[1] = w.GetCursorPos()
		}
	})

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if v.dragging {
			v.camera.Rotate(float32(xpos-v.lastCursor[0]), float32(ypos-v.lastCursor[1]))
		}
		v.lastCursor[0], v.lastCursor[1] = xpos, ypos
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		v.camera.Zoom(float32(yoff) * 1.5)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case glfw.KeyTab:
			v.cycleTheme()
		}
	})
}

func (v *viewer) run(window *glfw.Window) {
	frames := 0
	lastFPSCheckTime := time.Now()

	for !window.ShouldClose() {
		sky := v.theme.SkyHorizon
		gl.ClearColor(sky[0], sky[1], sky[2], 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		v.ground.Render(v.camera, v.theme)

		window.SwapBuffers()
		glfw.PollEvents()

		frames++
		if time.Since(lastFPSCheckTime) >= time.Second {
			fmt.Println("FPS: ", frames)
			frames = 0
			lastFPSCheckTime = time.Now()
		}
	}
}

func (v *viewer) cleanup() {
	if v.ground != nil {
		v.ground.Cleanup()
	}
}
