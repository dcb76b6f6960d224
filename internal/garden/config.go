package garden

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"memory-garden/internal/terrain"
)

// ParticleStyle names the ambient particle effect a theme asks for. The
// viewer maps unknown styles to ParticlesNone.
type ParticleStyle string

const (
	ParticlesNone      ParticleStyle = "none"
	ParticlesPetals    ParticleStyle = "petals"
	ParticlesSnow      ParticleStyle = "snow"
	ParticlesFireflies ParticleStyle = "fireflies"
)

// TerrainParams is the per-theme slice of the generation options plus the
// physical extent of the garden plot.
type TerrainParams struct {
	Seed            int64   `yaml:"seed"`
	Scale           float64 `yaml:"scale"`
	Octaves         int     `yaml:"octaves"`
	Persistence     float64 `yaml:"persistence"`
	Lacunarity      float64 `yaml:"lacunarity"`
	Amplitude       float64 `yaml:"amplitude"`
	Redistribution  float64 `yaml:"redistribution"`
	Size            float64 `yaml:"size"`       // world-space extent of the plot
	Resolution      int     `yaml:"resolution"` // vertices per side
	FalloffDistance float64 `yaml:"falloff_distance"`
}

// Options converts the params into terrain generation options.
func (p TerrainParams) Options() terrain.Options {
	return terrain.Options{
		Seed:           p.Seed,
		Scale:          p.Scale,
		Octaves:        p.Octaves,
		Persistence:    p.Persistence,
		Lacunarity:     p.Lacunarity,
		Amplitude:      p.Amplitude,
		Redistribution: p.Redistribution,
	}
}

// Theme is a static declarative garden description: palette, lighting,
// particles and terrain parameters. Themes are plain data; all behavior
// lives in the generators that consume them.
type Theme struct {
	Name        string        `yaml:"name"`
	SkyTop      [3]float32    `yaml:"sky_top"`
	SkyHorizon  [3]float32    `yaml:"sky_horizon"`
	FogColor    [3]float32    `yaml:"fog_color"`
	FogDensity  float32       `yaml:"fog_density"`
	LightDir    [3]float32    `yaml:"light_dir"`
	LightColor  [3]float32    `yaml:"light_color"`
	Ambient     [3]float32    `yaml:"ambient"`
	GrassTint   [3]float32    `yaml:"grass_tint"`
	DirtTint    [3]float32    `yaml:"dirt_tint"`
	Particles   ParticleStyle `yaml:"particles"`
	Terrain     TerrainParams `yaml:"terrain"`
	Description string        `yaml:"description,omitempty"`
}

func vec3(v [3]float32) mgl32.Vec3 {
	return mgl32.Vec3{v[0], v[1], v[2]}
}

// LightDirection returns the normalized light direction for shading.
// Themes that leave it unset get a straight-down light.
func (t Theme) LightDirection() mgl32.Vec3 {
	v := vec3(t.LightDir)
	if v.Len() == 0 {
		return mgl32.Vec3{0, -1, 0}
	}
	return v.Normalize()
}

func defaultTerrain(seed int64) TerrainParams {
	opts := terrain.DefaultOptions()
	return TerrainParams{
		Seed:            seed,
		Scale:           opts.Scale,
		Octaves:         opts.Octaves,
		Persistence:     opts.Persistence,
		Lacunarity:      opts.Lacunarity,
		Amplitude:       opts.Amplitude,
		Redistribution:  opts.Redistribution,
		Size:            24,
		Resolution:      96,
		FalloffDistance: 0.15,
	}
}

// BuiltinThemes returns the themes shipped with the viewer.
func BuiltinThemes() []Theme {
	return []Theme{
		{
			Name:       "meadow",
			SkyTop:     [3]float32{0.45, 0.68, 0.92},
			SkyHorizon: [3]float32{0.82, 0.90, 0.96},
			FogColor:   [3]float32{0.82, 0.90, 0.96},
			FogDensity: 0.012,
			LightDir:   [3]float32{-0.4, -1, -0.3},
			LightColor: [3]float32{1.0, 0.98, 0.9},
			Ambient:    [3]float32{0.45, 0.5, 0.45},
			GrassTint:  [3]float32{0.42, 0.58, 0.32},
			DirtTint:   [3]float32{0.5, 0.38, 0.26},
			Particles:  ParticlesPetals,
			Terrain:    defaultTerrain(42),
		},
		{
			Name:       "autumn",
			SkyTop:     [3]float32{0.62, 0.55, 0.48},
			SkyHorizon: [3]float32{0.92, 0.78, 0.58},
			FogColor:   [3]float32{0.9, 0.8, 0.62},
			FogDensity: 0.02,
			LightDir:   [3]float32{-0.6, -0.8, -0.2},
			LightColor: [3]float32{1.0, 0.88, 0.7},
			Ambient:    [3]float32{0.5, 0.44, 0.36},
			GrassTint:  [3]float32{0.55, 0.48, 0.24},
			DirtTint:   [3]float32{0.46, 0.32, 0.2},
			Particles:  ParticlesNone,
			Terrain:    defaultTerrain(7),
		},
		{
			Name:       "twilight",
			SkyTop:     [3]float32{0.12, 0.12, 0.3},
			SkyHorizon: [3]float32{0.4, 0.28, 0.44},
			FogColor:   [3]float32{0.25, 0.2, 0.35},
			FogDensity: 0.03,
			LightDir:   [3]float32{-0.2, -1, -0.5},
			LightColor: [3]float32{0.6, 0.6, 0.85},
			Ambient:    [3]float32{0.25, 0.25, 0.4},
			GrassTint:  [3]float32{0.25, 0.38, 0.3},
			DirtTint:   [3]float32{0.32, 0.28, 0.26},
			Particles:  ParticlesFireflies,
			Terrain:    defaultTerrain(1337),
		},
		{
			Name:       "winter",
			SkyTop:     [3]float32{0.65, 0.72, 0.82},
			SkyHorizon: [3]float32{0.88, 0.9, 0.94},
			FogColor:   [3]float32{0.88, 0.9, 0.94},
			FogDensity: 0.025,
			LightDir:   [3]float32{-0.3, -0.9, -0.4},
			LightColor: [3]float32{0.95, 0.96, 1.0},
			Ambient:    [3]float32{0.55, 0.58, 0.64},
			GrassTint:  [3]float32{0.78, 0.82, 0.85},
			DirtTint:   [3]float32{0.55, 0.52, 0.5},
			Particles:  ParticlesSnow,
			Terrain:    defaultTerrain(2024),
		},
	}
}

type themeFile struct {
	Themes []Theme `yaml:"themes"`
}

// LoadThemes reads a YAML theme file. Missing terrain fields fall back to
// the standard parameters so hand-written files only need to override what
// they care about.
func LoadThemes(path string) ([]Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme file: %w", err)
	}
	var tf themeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse theme file %s: %w", path, err)
	}
	if len(tf.Themes) == 0 {
		return nil, fmt.Errorf("theme file %s defines no themes", path)
	}
	for i := range tf.Themes {
		applyTerrainDefaults(&tf.Themes[i].Terrain)
	}
	return tf.Themes, nil
}

func applyTerrainDefaults(p *TerrainParams) {
	d := defaultTerrain(p.Seed)
	if p.Scale == 0 {
		p.Scale = d.Scale
	}
	if p.Octaves == 0 {
		p.Octaves = d.Octaves
	}
	if p.Persistence == 0 {
		p.Persistence = d.Persistence
	}
	if p.Lacunarity == 0 {
		p.Lacunarity = d.Lacunarity
	}
	if p.Amplitude == 0 {
		p.Amplitude = d.Amplitude
	}
	if p.Redistribution == 0 {
		p.Redistribution = d.Redistribution
	}
	if p.Size == 0 {
		p.Size = d.Size
	}
	if p.Resolution == 0 {
		p.Resolution = d.Resolution
	}
	if p.FalloffDistance == 0 {
		p.FalloffDistance = d.FalloffDistance
	}
}

// FindTheme returns the named theme from the list, or the first theme when
// name is empty.
func FindTheme(themes []Theme, name string) (Theme, error) {
	if len(themes) == 0 {
		return Theme{}, fmt.Errorf("no themes available")
	}
	if name == "" {
		return themes[0], nil
	}
	for _, t := range themes {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("unknown theme %q", name)
}
