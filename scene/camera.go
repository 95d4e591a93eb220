package scene

import (
	"github.com/chewxy/math32"

	reMath "hexisland/math"
)

// OrbitCamera circles a target point at a fixed distance.
type OrbitCamera struct {
	Target   reMath.Vec3
	Distance float32
	Yaw      float32
	Pitch    float32

	FOV         float32 // vertical, radians
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32

	MinDistance float32
	MaxDistance float32
}

// NewOrbitCamera looks at target from distance along +Z.
func NewOrbitCamera(target reMath.Vec3, distance, fov, aspectRatio float32) *OrbitCamera {
	return &OrbitCamera{
		Target:      target,
		Distance:    distance,
		FOV:         fov,
		AspectRatio: aspectRatio,
		NearPlane:   0.1,
		FarPlane:    1000,
		MinDistance: 1,
		MaxDistance: 500,
	}
}

func (c *OrbitCamera) UpdateAspectRatio(width, height float32) {
	if height > 0 {
		c.AspectRatio = width / height
	}
}

// Position returns the eye position from the spherical coordinates.
func (c *OrbitCamera) Position() reMath.Vec3 {
	sinPitch, cosPitch := math32.Sincos(c.Pitch)
	sinYaw, cosYaw := math32.Sincos(c.Yaw)

	offset := reMath.Vec3{
		X: c.Distance * cosPitch * sinYaw,
		Y: c.Distance * sinPitch,
		Z: c.Distance * cosPitch * cosYaw,
	}
	return c.Target.Add(offset)
}

func (c *OrbitCamera) ViewMatrix() reMath.Mat4 {
	return reMath.Mat4LookAt(c.Position(), c.Target, reMath.Vec3Up)
}

func (c *OrbitCamera) ProjectionMatrix() reMath.Mat4 {
	return reMath.Mat4Perspective(c.FOV, c.AspectRatio, c.NearPlane, c.FarPlane)
}

// ViewProjectionMatrix applies view first, then projection.
func (c *OrbitCamera) ViewProjectionMatrix() reMath.Mat4 {
	return c.ViewMatrix().Mul(c.ProjectionMatrix())
}

func (c *OrbitCamera) Orbit(deltaYaw, deltaPitch float32) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch

	// Clamp pitch
	if c.Pitch > 1.5 {
		c.Pitch = 1.5
	}
	if c.Pitch < -1.5 {
		c.Pitch = -1.5
	}
}

func (c *OrbitCamera) Zoom(delta float32) {
	c.Distance += delta
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.MaxDistance > 0 && c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}
