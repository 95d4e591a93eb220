package main

import (
	"fmt"

	"github.com/chewxy/math32"

	"hexisland/config"
	"hexisland/core"
	"hexisland/heightmap"
	"hexisland/math"
	"hexisland/scene"
	"hexisland/terrain"
)

type heightmapDemo struct {
	app  *app
	node *scene.Node
}

func (d *heightmapDemo) Setup(cfg config.Config) error {
	s := d.app.scene
	s.SkyColor = core.ColorBlack
	s.Light.Position = math.Vec3{X: 10, Y: 20, Z: 10}
	s.Camera = scene.NewOrbitCamera(math.Vec3Zero, 15, math32.Pi/4, 16.0/9.0)
	s.Camera.Pitch = 0.6
	return d.rebuild(cfg.Heightmap)
}

func (d *heightmapDemo) Reconfigure(cfg config.Config) error {
	return d.rebuild(cfg.Heightmap)
}

func (d *heightmapDemo) Update(dt float32) {}

func (d *heightmapDemo) Emitters() []*scene.ParticleEmitter { return nil }

func (d *heightmapDemo) rebuild(cfg config.HeightmapConfig) error {
	sampler, err := heightSource(cfg)
	if err != nil {
		return err
	}

	size := float32(cfg.Size)
	mesh := scene.CreatePlane(size, size, cfg.Segments, cfg.Segments)
	heightmap.Displace(mesh, cfg.Size, cfg.Size, cfg.Scale, sampler)
	mesh.Material = &scene.Material{
		Name:      "Terrain",
		Albedo:    core.ColorRed,
		Wireframe: true,
		Unlit:     true,
		Opacity:   1,
	}

	node := scene.NewMeshNode(mesh)
	if d.node != nil {
		d.app.engine.Release(d.node)
		d.app.scene.RemoveNode(d.node)
	}
	d.node = node
	d.app.scene.AddNode(node)
	return nil
}

// heightSource prefers the configured image, then the radial falloff, then a
// generated noise image.
func heightSource(cfg config.HeightmapConfig) (heightmap.Sampler, error) {
	switch {
	case cfg.Image != "":
		hm, err := heightmap.Load(cfg.Image)
		if err != nil {
			return nil, fmt.Errorf("heightmap: %w", err)
		}
		fmt.Printf("[Heightmap] %s (%dx%d)\n", cfg.Image, hm.Width(), hm.Height())
		return hm, nil
	case cfg.Radial:
		fmt.Println("[Heightmap] no image given, using radial falloff")
		return heightmap.Radial{Width: cfg.Size, Depth: cfg.Size, Falloff: cfg.Falloff}, nil
	}
	fmt.Println("[Heightmap] no image given, using generated noise")
	return heightmap.FromNoise(256, 256, 0.02, terrain.Fractal(terrain.OpenSimplex(1), 4, 0.5)), nil
}
