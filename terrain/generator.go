package terrain

import (
	"fmt"
	"math"
	"time"

	"hexisland/scene"
)

// Terrain is the result of one generation pass.
type Terrain struct {
	// Batches holds one merged mesh per non-empty material class.
	Batches map[MaterialClass]*scene.Mesh
	Tiles   []Tile

	TileCount int

	// Seed is the seed the island was built from. When Generate made its own
	// random source, setting Config.Seed to this value rebuilds the same island.
	Seed int64

	// Clouds is nil unless clouds were requested.
	Clouds     *scene.Mesh
	CloudCount int
}

// Counts returns the number of tiles per material class.
func (t *Terrain) Counts() map[MaterialClass]int {
	counts := make(map[MaterialClass]int)
	for _, tile := range t.Tiles {
		counts[tile.Class]++
	}
	return counts
}

// Decorations returns the number of rocks and trees placed.
func (t *Terrain) Decorations() (rocks, trees int) {
	for _, tile := range t.Tiles {
		switch tile.Decoration {
		case DecorationRock:
			rocks++
		case DecorationTree:
			trees++
		}
	}
	return rocks, trees
}

// batchSet is the per-class accumulator for one generation call.
type batchSet map[MaterialClass]*scene.MeshBuilder

func newBatchSet() batchSet {
	b := make(batchSet, len(Classes))
	for _, c := range Classes {
		b[c] = scene.NewMeshBuilder(c.String())
	}
	return b
}

func (b batchSet) add(c MaterialClass, m *scene.Mesh) error {
	return b[c].Append(m)
}

// finish finalizes every builder and keeps the non-empty batches.
func (b batchSet) finish() map[MaterialClass]*scene.Mesh {
	out := make(map[MaterialClass]*scene.Mesh)
	for c, builder := range b {
		m := builder.Build()
		if !m.Empty() {
			out[c] = m
		}
	}
	return out
}

// Generate builds a hex island. Cells of the square [-Radius, Radius]² are
// projected to the world plane, culled to WorldRadius, raised by the shaped
// noise and merged per material class, together with any rocks and trees.
//
// rng drives decorations, clouds and, when needed, noise seeds. A nil rng
// uses NewRandom(cfg.Seed), or a clock-seeded source when cfg.Seed is 0 so
// every call yields a new island. A nil noise factory uses OpenSimplex. A
// negative radius or a negative or non-finite MaxHeight produces an empty
// Terrain.
func Generate(cfg Config, rng Random, noise NoiseFactory) (*Terrain, error) {
	t := &Terrain{Batches: map[MaterialClass]*scene.Mesh{}}
	if cfg.Radius < 0 || cfg.MaxHeight < 0 || math.IsNaN(cfg.MaxHeight) || math.IsInf(cfg.MaxHeight, 0) {
		return t, nil
	}
	if rng == nil {
		if cfg.Seed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		rng = NewRandom(cfg.Seed)
	}
	if noise == nil {
		noise = OpenSimplex
	}

	field := func(seed int64) Noise2D {
		return Fractal(noise(seed), cfg.Octaves, cfg.Persistence)
	}

	var shared Noise2D
	if !cfg.PerTileNoise {
		seed := cfg.Seed
		if seed == 0 {
			seed = rng.Int63()
		}
		shared = field(seed)
		t.Seed = seed
	} else {
		t.Seed = cfg.Seed
	}

	extent := scanExtent(cfg.Radius, cfg.WorldRadius)
	batches := newBatchSet()
	for i := -extent; i <= extent; i++ {
		for j := -extent; j <= extent; j++ {
			sample := shared
			if cfg.PerTileNoise {
				// Drawn before culling so the sequence matches one source per
				// scanned cell.
				sample = field(rng.Int63())
			}

			if !InWorld(i, j, cfg.WorldRadius) {
				continue
			}

			n := sample.Eval2(float64(i)*cfg.NoiseScale, float64(j)*cfg.NoiseScale)
			tile := Tile{
				I:        i,
				J:        j,
				Position: TileToPosition(i, j),
				Height:   Shape(n, cfg.NoiseExponent) * cfg.MaxHeight,
			}
			tile.Class = Classify(tile.Height, cfg.MaxHeight)

			if err := placeTile(batches, rng, &tile); err != nil {
				return nil, fmt.Errorf("terrain: tile (%d, %d): %w", i, j, err)
			}
			t.Tiles = append(t.Tiles, tile)
		}
	}

	t.Batches = batches.finish()
	t.TileCount = len(t.Tiles)

	if cfg.Clouds {
		clouds, count, err := GenerateClouds(rng)
		if err != nil {
			return nil, fmt.Errorf("terrain: clouds: %w", err)
		}
		t.Clouds = clouds
		t.CloudCount = count
	}
	return t, nil
}

// maxExtent bounds the scanned square so the loop counters cannot overflow.
const maxExtent = math.MaxInt32

// scanExtent returns the half-extent of the grid square worth scanning. A cell
// more than ceil(worldRadius/RowSpacing)+1 steps out on either axis lies
// farther than worldRadius from the origin, so InWorld would cull it.
func scanExtent(radius int, worldRadius float64) int {
	if math.IsNaN(worldRadius) || worldRadius < 0 {
		return -1
	}
	extent := min(radius, maxExtent)
	if limit := math.Ceil(worldRadius/RowSpacing) + 1; limit < float64(extent) {
		extent = int(limit)
	}
	return extent
}

// placeTile merges the tile's column into its class batch and rolls for a
// decoration. Rocks always go to the stone batch and trees to the grass batch.
func placeTile(batches batchSet, rng Random, tile *Tile) error {
	h := float32(tile.Height)
	column := scene.CreateHexColumn(h).Translate(tile.Position.X, 0, tile.Position.Y)
	if err := batches.add(tile.Class, column); err != nil {
		return err
	}

	switch tile.Class {
	case Stone, Grass:
		if rng.Float64() > RockChance {
			tile.Decoration = DecorationRock
			return batches.add(Stone, Rock(rng, tile.Height, tile.Position))
		}
	case Dirt:
		if rng.Float64() > TreeChance {
			tree, err := Tree(rng, tile.Height, tile.Position)
			if err != nil {
				return err
			}
			tile.Decoration = DecorationTree
			return batches.add(Grass, tree)
		}
	}
	return nil
}
