// gardentex renders the procedural garden assets to PNG files so texture and
// terrain parameters can be inspected without opening the GL viewer.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"memory-garden/internal/garden"
	"memory-garden/internal/terrain"
	"memory-garden/internal/texture"
)

func main() {
	outDir := flag.String("out", "out", "output directory")
	size := flag.Int("size", 512, "texture resolution")
	tile := flag.Int("tile", 3, "tile repeats in the preview sheets")
	themeName := flag.String("theme", "", "theme for the heightmap preview")
	flag.Parse()

	if err := run(*outDir, *size, *tile, *themeName); err != nil {
		log.Fatal(err)
	}
}

func run(outDir string, size, tile int, themeName string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	theme, err := garden.FindTheme(garden.BuiltinThemes(), themeName)
	if err != nil {
		return err
	}

	textures := map[string]*image.RGBA{
		"grass.png":  texture.CreateGrassTexture(size),
		"dirt.png":   texture.CreateDirtTexture(size),
		"stroke.png": texture.CreateGrassStrokeTexture(size / 2),
	}
	for name, img := range textures {
		if err := writePNG(filepath.Join(outDir, name), img); err != nil {
			return err
		}
		// Tiled contact sheet, shrunk back to the base resolution so seams
		// are easy to spot at a glance
		preview := texture.Shrink(texture.Tile(img, tile), size)
		if err := writePNG(filepath.Join(outDir, "tiled_"+name), preview); err != nil {
			return err
		}
	}

	if err := writePNG(filepath.Join(outDir, "heightmap.png"), heightmapImage(theme)); err != nil {
		return err
	}
	if err := writePNG(filepath.Join(outDir, "slopes.png"), slopeImage(theme)); err != nil {
		return err
	}

	fmt.Printf("wrote %d images to %s (theme %q)\n", len(textures)*2+2, outDir, theme.Name)
	return nil
}

// heightmapImage bakes the theme's falloff-shaped heightmap to grayscale.
func heightmapImage(theme garden.Theme) *image.RGBA {
	p := theme.Terrain
	hm := terrain.GenerateHeightmap(p.Resolution, p.Resolution, p.Options())
	hm = terrain.ApplyEdgeFalloff(hm, p.Resolution, p.Resolution, p.FalloffDistance)
	return grayImage(hm, p.Resolution, p.Amplitude)
}

func slopeImage(theme garden.Theme) *image.RGBA {
	p := theme.Terrain
	hm := terrain.GenerateHeightmap(p.Resolution, p.Resolution, p.Options())
	slopes := terrain.CalculateSlopes(hm, p.Resolution, p.Resolution, p.Size)
	return grayImage(slopes, p.Resolution, 1.0)
}

func grayImage(field []float64, res int, max float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, res, res))
	for y := 0; y < res; y++ {
		for x := 0; x < res; x++ {
			v := field[y*res+x]
			if max > 0 {
				v /= max
			}
			g := uint8(v * 255)
			img.SetRGBA(x, y, color.RGBA{R: g, G: g, B: g, A: 255})
		}
	}
	return img
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
