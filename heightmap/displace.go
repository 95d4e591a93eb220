package heightmap

import (
	"math"

	"hexisland/scene"
)

// Sampler returns a height in [0, 1] for normalised plane coordinates.
type Sampler interface {
	Sample(xf, yf float64) float64
}

// SamplerFunc adapts a function to Sampler.
type SamplerFunc func(xf, yf float64) float64

func (f SamplerFunc) Sample(xf, yf float64) float64 { return f(xf, yf) }

// Radial rises linearly with distance from the centre of a Width x Depth
// plane, reaching 1 at Falloff world units.
type Radial struct {
	Width, Depth float64
	Falloff      float64
}

func (r Radial) Sample(xf, yf float64) float64 {
	if r.Falloff <= 0 {
		return 0
	}
	x := xf*r.Width - r.Width/2
	z := yf*r.Depth - r.Depth/2
	return clamp(math.Sqrt(x*x+z*z)/r.Falloff, 0, 1)
}

// Displace lifts every vertex of a width x depth XZ plane centred on the
// origin to sampler(x, z) * scale, then recomputes the normals. The -X,-Z
// corner maps to (0, 0), the image's top-left pixel.
func Displace(mesh *scene.Mesh, width, depth, scale float64, sampler Sampler) {
	if width <= 0 || depth <= 0 {
		return
	}
	for i := range mesh.Vertices {
		p := &mesh.Vertices[i].Position
		xf := (float64(p.X) + width/2) / width
		yf := (float64(p.Z) + depth/2) / depth
		p.Y = float32(sampler.Sample(xf, yf) * scale)
	}
	scene.ComputeNormals(mesh)
}
