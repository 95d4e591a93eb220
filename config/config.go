// Package config loads demo settings from a TOML file and watches it for edits.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"hexisland/core"
	"hexisland/terrain"
)

// ErrNoPath is returned when a file operation is asked for an empty path.
var ErrNoPath = errors.New("config: no path given")

// Config is the full demo configuration. Every section has usable defaults;
// a file only needs the keys it changes.
type Config struct {
	Window    core.WindowConfig `toml:"window"`
	Terrain   terrain.Config    `toml:"terrain"`
	Heightmap HeightmapConfig   `toml:"heightmap"`
	Globe     GlobeConfig       `toml:"globe"`
	Fire      FireConfig        `toml:"fire"`
}

type HeightmapConfig struct {
	Image    string  `toml:"image"` // png, jpeg, bmp, tiff or webp
	Size     float64 `toml:"size"`
	Segments int     `toml:"segments"`
	Scale    float64 `toml:"scale"`
	Radial   bool    `toml:"radial"` // without an image: radial falloff, else generated noise
	Falloff  float64 `toml:"falloff"`
}

type GlobeConfig struct {
	Model      string  `toml:"model"` // .glb/.gltf; empty uses a paper-plane cone
	Planes     int     `toml:"planes"`
	ModelScale float64 `toml:"model_scale"`
	Seed       int64   `toml:"seed"`
}

type FireConfig struct {
	MaxParticles int   `toml:"max_particles"`
	BurstSize    int   `toml:"burst_size"`
	Smoke        bool  `toml:"smoke"`
	Seed         int64 `toml:"seed"`
}

// Default returns the stock settings.
func Default() Config {
	return Config{
		Window:  core.DefaultWindowConfig(),
		Terrain: terrain.DefaultConfig(),
		Heightmap: HeightmapConfig{
			Size:     10,
			Segments: 100,
			Scale:    3,
			Radial:   true,
			Falloff:  5,
		},
		Globe: GlobeConfig{
			Planes:     1,
			ModelScale: 0.001,
			Seed:       1,
		},
		Fire: FireConfig{
			MaxParticles: 2000,
			BurstSize:    10,
			Smoke:        true,
			Seed:         42,
		},
	}
}

// Load reads path over the defaults. Unknown keys are an error so typos do
// not silently fall back to defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, ErrNoPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the demos cannot run with. Terrain values the
// generator treats as degenerate, such as a negative radius, are allowed.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Terrain.WorldRadius < 0 {
		return fmt.Errorf("terrain.world_radius %v must not be negative", c.Terrain.WorldRadius)
	}
	if c.Heightmap.Segments < 1 {
		return fmt.Errorf("heightmap.segments %d must be at least 1", c.Heightmap.Segments)
	}
	if c.Heightmap.Size <= 0 {
		return fmt.Errorf("heightmap.size %v must be positive", c.Heightmap.Size)
	}
	if c.Globe.Planes < 0 {
		return fmt.Errorf("globe.planes %d must not be negative", c.Globe.Planes)
	}
	if c.Fire.MaxParticles < 0 || c.Fire.BurstSize < 0 {
		return fmt.Errorf("fire particle counts must not be negative")
	}
	return nil
}

// Write encodes cfg as TOML.
func Write(w io.Writer, cfg Config) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(cfg)
}
