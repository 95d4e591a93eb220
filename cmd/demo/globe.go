package main

import (
	"fmt"
	"math/rand"

	"github.com/chewxy/math32"

	"hexisland/config"
	"hexisland/core"
	"hexisland/flight"
	"hexisland/math"
	"hexisland/scene"
)

type globeDemo struct {
	app    *app
	globe  *scene.Node
	planes []*scene.Node
	fleet  []*flight.Orbiter
	scale  float32
}

func (d *globeDemo) Setup(cfg config.Config) error {
	s := d.app.scene
	s.SkyColor = core.ColorHex("#FFEECC")
	s.Light = scene.Light{
		Position:  math.Vec3{X: 20, Y: 40, Z: 20},
		Color:     core.ColorHex("#FFC88E"),
		Intensity: 2,
	}
	s.Camera = scene.NewOrbitCamera(math.Vec3Zero, 35, math32.Pi/4, 16.0/9.0)

	sphere := scene.CreateSphere(10, 48, 24)
	sphere.Material = &scene.Material{
		Name:    "Globe",
		Albedo:  core.ColorHex("#6fa3c8"),
		Opacity: 1,
	}
	d.globe = scene.NewMeshNode(sphere)
	s.AddNode(d.globe)

	return d.rebuild(cfg.Globe)
}

func (d *globeDemo) Reconfigure(cfg config.Config) error {
	return d.rebuild(cfg.Globe)
}

func (d *globeDemo) Emitters() []*scene.ParticleEmitter { return nil }

func (d *globeDemo) Update(dt float32) {
	for i, o := range d.fleet {
		o.Update(dt)
		m := o.Transform(d.scale)
		d.planes[i].SetMatrix(&m)
	}
}

func (d *globeDemo) rebuild(cfg config.GlobeConfig) error {
	model, scale := planeModel(cfg)

	for _, n := range d.planes {
		d.app.engine.Release(n)
		d.app.scene.RemoveNode(n)
	}

	d.scale = scale
	d.fleet = flight.NewFleet(cfg.Planes, rand.New(rand.NewSource(cfg.Seed)))
	d.planes = make([]*scene.Node, len(d.fleet))
	for i, o := range d.fleet {
		n := scene.NewMeshNode(model)
		n.Name = fmt.Sprintf("Plane%d", i)
		m := o.Transform(scale)
		n.SetMatrix(&m)
		d.planes[i] = n
		d.app.scene.AddNode(n)
	}
	return nil
}

// planeModel loads the configured glTF model, falling back to a cone with
// its apex along the direction of flight.
func planeModel(cfg config.GlobeConfig) (*scene.Mesh, float32) {
	if cfg.Model != "" {
		mesh, err := scene.LoadGLTF(cfg.Model)
		if err == nil {
			mesh.Material = scene.NewMaterial("Plane", core.ColorWhite)
			fmt.Printf("[Globe] loaded %s: %d vertices\n", cfg.Model, len(mesh.Vertices))
			return mesh, float32(cfg.ModelScale)
		}
		fmt.Printf("[Globe] %v, using fallback cone\n", err)
	}
	cone := scene.CreateCone(0.3, 1, 8)
	cone.Material = scene.NewMaterial("Plane", core.ColorHex("#e84a3c"))
	return cone, 1
}
