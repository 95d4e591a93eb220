package scene

import (
	"hexisland/core"
	"hexisland/math"
)

// DrawMode controls the primitive type used when rendering a mesh.
type DrawMode int

const (
	DrawTriangles DrawMode = iota // default
	DrawLines                     // pairs of indices form line segments
	DrawPoints
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max math.Vec3
}

// Center returns the midpoint of the box.
func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Mesh holds CPU-side vertex/index data.
// A mesh with nil Indices is drawn as a plain triangle list.
// GPU upload is managed by the renderer backend.
type Mesh struct {
	Name     string
	Vertices []core.Vertex
	Indices  []uint32
	DrawMode DrawMode

	// Material holds surface shading properties. If nil, DefaultMaterial() is used.
	Material *Material

	// GPUData is set by the renderer backend.
	GPUData interface{}
}

func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// CreateMeshFromData wraps existing vertex and index slices without copying.
func CreateMeshFromData(name string, vertices []core.Vertex, indices []uint32) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
	}
}

// Indexed reports whether the mesh is drawn through an index buffer.
func (m *Mesh) Indexed() bool {
	return m.Indices != nil
}

// Empty reports whether the mesh has no vertices.
func (m *Mesh) Empty() bool {
	return len(m.Vertices) == 0
}

// TriangleCount returns the number of triangles the mesh draws.
func (m *Mesh) TriangleCount() int {
	if m.DrawMode != DrawTriangles {
		return 0
	}
	if m.Indexed() {
		return len(m.Indices) / 3
	}
	return len(m.Vertices) / 3
}

// Bounds returns the tight AABB of the vertex positions. An empty mesh
// yields a zero box.
func (m *Mesh) Bounds() AABB {
	if len(m.Vertices) == 0 {
		return AABB{}
	}
	box := AABB{Min: m.Vertices[0].Position, Max: m.Vertices[0].Position}
	for i := 1; i < len(m.Vertices); i++ {
		p := m.Vertices[i].Position
		box.Min = box.Min.Min(p)
		box.Max = box.Max.Max(p)
	}
	return box
}

// Clone returns a deep copy of the geometry. Material is shared and GPU data
// is not carried over.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		Name:     m.Name,
		Vertices: append([]core.Vertex(nil), m.Vertices...),
		DrawMode: m.DrawMode,
		Material: m.Material,
	}
	if m.Indices != nil {
		c.Indices = append([]uint32{}, m.Indices...)
	}
	return c
}

// Translate offsets every vertex position in place and returns m.
func (m *Mesh) Translate(x, y, z float32) *Mesh {
	offset := math.Vec3{X: x, Y: y, Z: z}
	for i := range m.Vertices {
		m.Vertices[i].Position = m.Vertices[i].Position.Add(offset)
	}
	return m
}

// RotateY rotates positions and normals about the world Y axis in place.
func (m *Mesh) RotateY(angle float32) *Mesh {
	return m.ApplyMatrix(math.Mat4RotationY(angle))
}

// ApplyMatrix transforms positions by mat and normals by its rotation part.
// Non-uniform scale is not corrected for in the normals.
func (m *Mesh) ApplyMatrix(mat math.Mat4) *Mesh {
	for i := range m.Vertices {
		v := &m.Vertices[i]
		v.Position = mat.MulPoint(v.Position)
		v.Normal = mat.MulDir(v.Normal).Normalize()
	}
	return m
}

// SetColor paints every vertex with c.
func (m *Mesh) SetColor(c core.Color) *Mesh {
	for i := range m.Vertices {
		m.Vertices[i].Color = c
	}
	return m
}
