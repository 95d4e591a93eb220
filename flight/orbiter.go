// Package flight animates models circling a globe.
package flight

import (
	"github.com/chewxy/math32"

	reMath "hexisland/math"
)

// AngularSpeed is the orbit speed in radians per second.
const AngularSpeed = 0.25

// Random supplies uniform draws in [0, 1).
type Random interface {
	Float64() float64
}

// Orbiter flies a model around the origin. The orbit plane is tilted by
// Tilt about Z on both sides of the spin, so every orbiter takes a
// different great circle.
type Orbiter struct {
	YOffset float32 // orbit radius
	Tilt    float32 // radians
	Angle   float32 // current spin about Y, radians
}

// NewOrbiter picks an orbit radius in [10.5, 11.5) and a tilt in
// [0.2, 0.2+0.45π), just above a globe of radius 10.
func NewOrbiter(rng Random) *Orbiter {
	return &Orbiter{
		YOffset: 10.5 + float32(rng.Float64()),
		Tilt:    float32(rng.Float64())*math32.Pi*0.45 + 0.2,
	}
}

// NewFleet returns n independent orbiters.
func NewFleet(n int, rng Random) []*Orbiter {
	fleet := make([]*Orbiter, n)
	for i := range fleet {
		fleet[i] = NewOrbiter(rng)
	}
	return fleet
}

// Update advances the orbit by dt seconds.
func (o *Orbiter) Update(dt float32) {
	o.Angle += dt * AngularSpeed
	o.Angle = math32.Mod(o.Angle, 2*math32.Pi)
}

// Transform returns the model matrix: scale, lay the model flat, lift it to
// the orbit radius, then tilt, spin and tilt again.
func (o *Orbiter) Transform(scale float32) reMath.Mat4 {
	return reMath.Mat4Scale(reMath.Vec3{X: scale, Y: scale, Z: scale}).
		Mul(reMath.Mat4RotationX(math32.Pi * 0.5)).
		Mul(reMath.Mat4Translation(reMath.Vec3{Y: o.YOffset})).
		Mul(reMath.Mat4RotationZ(o.Tilt)).
		Mul(reMath.Mat4RotationY(o.Angle)).
		Mul(reMath.Mat4RotationZ(o.Tilt))
}

// Position returns the model origin in world space.
func (o *Orbiter) Position() reMath.Vec3 {
	return o.Transform(1).MulPoint(reMath.Vec3Zero)
}
