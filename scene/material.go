package scene

import "hexisland/core"

// Material describes how a mesh is shaded by the OpenGL backend.
type Material struct {
	Name   string
	Albedo core.Color // multiplied with the vertex colour

	// FlatShading derives the normal per fragment from screen-space
	// derivatives, giving the faceted low-poly look.
	FlatShading bool
	Unlit       bool    // skip lighting and output the raw colour
	Wireframe   bool    // draw triangle edges only
	Opacity     float32 // 1 = opaque; lower values enable alpha blending
	Additive    bool    // blend by adding colour, as fire does
	PointSize   float32 // scales per-vertex point sizes; 0 means 1
}

// DefaultMaterial returns a plain white, smooth-shaded opaque material.
func DefaultMaterial() *Material {
	return &Material{
		Name:    "Default",
		Albedo:  core.ColorWhite,
		Opacity: 1,
	}
}

// NewMaterial creates an opaque flat-shaded material with the given albedo.
func NewMaterial(name string, albedo core.Color) *Material {
	return &Material{
		Name:        name,
		Albedo:      albedo,
		FlatShading: true,
		Opacity:     1,
	}
}
