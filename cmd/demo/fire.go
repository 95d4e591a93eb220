package main

import (
	"github.com/chewxy/math32"

	"hexisland/config"
	"hexisland/core"
	"hexisland/math"
	"hexisland/scene"
)

// burstInterval is the time between fire bursts, in seconds.
const burstInterval = 0.1

type fireDemo struct {
	app   *app
	cfg   config.FireConfig
	fire  *scene.ParticleEmitter
	smoke *scene.ParticleEmitter
	clock float32
}

func (d *fireDemo) Setup(cfg config.Config) error {
	s := d.app.scene
	s.SkyColor = core.Color{R: 0.05, G: 0.05, B: 0.08, A: 1}
	s.Camera = scene.NewOrbitCamera(math.Vec3{Y: 2}, 12, math32.Pi/4, 16.0/9.0)
	s.Camera.Pitch = 0.2

	ground := scene.CreatePlane(10, 10, 1, 1)
	ground.Material = scene.NewMaterial("Ground", core.ColorHex("#3a3530"))
	s.AddNode(scene.NewMeshNode(ground))

	d.reset(cfg.Fire)
	return nil
}

func (d *fireDemo) Reconfigure(cfg config.Config) error {
	d.reset(cfg.Fire)
	return nil
}

func (d *fireDemo) reset(cfg config.FireConfig) {
	for _, e := range d.Emitters() {
		d.app.engine.ReleaseEmitter(e)
	}
	d.cfg = cfg
	d.clock = 0

	// Bursts land in [0,2)³ from Position, so offset by -1 to centre them.
	d.fire = scene.NewParticleEmitter(cfg.MaxParticles, cfg.Seed)
	d.fire.Position = math.Vec3{X: -1, Z: -1}
	d.fire.Active = false

	d.smoke = nil
	if cfg.Smoke {
		d.smoke = scene.NewSmokeEmitter(cfg.MaxParticles/4, cfg.Seed+1)
		d.smoke.Position = math.Vec3{X: -1, Y: 1.5, Z: -1}
	}
}

// Update feeds the fire with a burst every burstInterval and steps both
// emitters.
func (d *fireDemo) Update(dt float32) {
	d.clock += dt
	for d.clock >= burstInterval {
		d.clock -= burstInterval
		d.fire.Burst(d.cfg.BurstSize)
	}

	d.fire.Update(dt)
	if d.smoke != nil {
		d.smoke.Update(dt)
	}
}

// Emitters returns smoke before fire so the additive flames land on top.
func (d *fireDemo) Emitters() []*scene.ParticleEmitter {
	if d.fire == nil {
		return nil
	}
	if d.smoke == nil {
		return []*scene.ParticleEmitter{d.fire}
	}
	return []*scene.ParticleEmitter{d.smoke, d.fire}
}
