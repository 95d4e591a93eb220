package terrain

// Config holds island generation parameters.
type Config struct {
	Radius    int     `toml:"radius"`     // grid half-extent; cells span [-Radius, Radius]²
	MaxHeight float64 `toml:"max_height"` // height of a tile whose shaped noise is 1

	WorldRadius   float64 `toml:"world_radius"`   // tiles farther than this from the origin are culled
	NoiseScale    float64 `toml:"noise_scale"`    // grid-to-noise coordinate factor
	NoiseExponent float64 `toml:"noise_exponent"` // shaping power applied after remapping to [0,1]
	Octaves       int     `toml:"octaves"`        // 1 samples the source once
	Persistence   float64 `toml:"persistence"`    // amplitude falloff between octaves

	Seed int64 `toml:"seed"` // noise seed (0 = draw one, from the clock if no source is given)

	// PerTileNoise builds a fresh noise source for every grid cell instead of
	// sharing one across the grid. Each tile then samples an unrelated field,
	// which produces the speckled look of the old island demo.
	PerTileNoise bool `toml:"per_tile_noise"`

	Clouds bool `toml:"clouds"`
}

// DefaultConfig returns the island's stock parameters.
func DefaultConfig() Config {
	return Config{
		Radius:        15,
		MaxHeight:     10,
		WorldRadius:   16,
		NoiseScale:    0.1,
		NoiseExponent: 1.2,
		Octaves:       1,
		Persistence:   0.5,
		Clouds:        true,
	}
}

// SmallConfig returns a tiny island for tests and quick iteration.
func SmallConfig() Config {
	cfg := DefaultConfig()
	cfg.Radius = 4
	cfg.WorldRadius = 6
	cfg.Seed = 42
	cfg.Clouds = false
	return cfg
}
