package main

import (
	"fmt"
	"time"

	"github.com/chewxy/math32"

	"hexisland/config"
	"hexisland/core"
	"hexisland/math"
	"hexisland/scene"
	"hexisland/terrain"
)

var classColors = map[terrain.MaterialClass]core.Color{
	terrain.Stone: core.ColorHex("#8a8580"),
	terrain.Dirt:  core.ColorHex("#7a5a3a"),
	terrain.Grass: core.ColorHex("#6b9a3e"),
	terrain.Sand:  core.ColorHex("#e0c68c"),
	terrain.Water: core.ColorHex("#5c4a36"), // sea bed, seen through the sea
}

type islandDemo struct {
	app    *app
	cfg    terrain.Config
	island *scene.Node
}

func (d *islandDemo) Setup(cfg config.Config) error {
	s := d.app.scene
	s.SkyColor = core.ColorHex("#FFEECC")
	s.Ambient = core.Color{R: 0.25, G: 0.25, B: 0.3, A: 1}
	s.Light = scene.Light{
		Position:  math.Vec3{X: 20, Y: 40, Z: 20},
		Color:     core.ColorHex("#FFC88E"),
		Intensity: 3,
	}
	s.Camera = scene.NewOrbitCamera(math.Vec3Zero, 50, math32.Pi/4, 16.0/9.0)

	d.cfg = cfg.Terrain
	return d.rebuild()
}

func (d *islandDemo) Reconfigure(cfg config.Config) error {
	d.cfg = cfg.Terrain
	return d.rebuild()
}

func (d *islandDemo) Update(dt float32) {}

func (d *islandDemo) Emitters() []*scene.ParticleEmitter { return nil }

// rebuild generates a fresh island and swaps it into the scene, releasing the
// previous island's GPU buffers.
func (d *islandDemo) rebuild() error {
	start := time.Now()
	t, err := terrain.Generate(d.cfg, nil, nil)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	island := scene.NewNode("Island")
	for _, class := range terrain.Classes {
		mesh, ok := t.Batches[class]
		if !ok {
			continue
		}
		mesh.Material = scene.NewMaterial(class.String(), classColors[class])
		island.AddChild(scene.NewMeshNode(mesh))
	}

	if t.Clouds != nil {
		t.Clouds.Material = scene.NewMaterial("Clouds", core.ColorWhite)
		island.AddChild(scene.NewMeshNode(t.Clouds))
	}

	dress := terrain.Surroundings(d.cfg.MaxHeight)
	dress.Sea.Material = &scene.Material{
		Name:    "Sea",
		Albedo:  core.ColorHex("#55aaff").Scale(3),
		Opacity: 0.45,
	}
	dress.Container.Material = scene.NewMaterial("Container", classColors[terrain.Dirt])
	dress.Floor.Material = scene.NewMaterial("Floor", classColors[terrain.Dirt])
	for _, m := range []*scene.Mesh{dress.Floor, dress.Container, dress.Sea} {
		island.AddChild(scene.NewMeshNode(m))
	}

	if d.island != nil {
		d.app.engine.Release(d.island)
		d.app.scene.RemoveNode(d.island)
	}
	d.island = island
	d.app.scene.AddNode(island)

	rocks, trees := t.Decorations()
	fmt.Printf("[Island] seed %d: %d tiles, %d rocks, %d trees, %d clouds in %v\n",
		t.Seed, t.TileCount, rocks, trees, t.CloudCount, time.Since(start).Round(time.Millisecond))
	counts := t.Counts()
	for _, class := range terrain.Classes {
		fmt.Printf("  %-6s %d\n", class, counts[class])
	}
	return nil
}
