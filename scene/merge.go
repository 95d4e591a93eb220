package scene

import (
	"errors"
	"fmt"
	"slices"

	"hexisland/core"
)

var (
	// ErrIncompatibleMesh is returned when meshes with different layouts
	// (indexed and non-indexed, or different draw modes) are merged.
	ErrIncompatibleMesh = errors.New("incompatible mesh layout")

	// ErrBuilderFinalized is returned by Append after Build has been called.
	ErrBuilderFinalized = errors.New("mesh builder already finalized")
)

// MeshBuilder accumulates meshes into one vertex/index buffer. The layout is
// fixed by the first non-empty mesh appended; later meshes must match it.
type MeshBuilder struct {
	name      string
	vertices  []core.Vertex
	indices   []uint32
	indexed   bool
	drawMode  DrawMode
	parts     int
	finalized bool
}

func NewMeshBuilder(name string) *MeshBuilder {
	return &MeshBuilder{name: name}
}

// Append copies m into the builder, offsetting its indices. Empty meshes are
// accepted and ignored.
func (b *MeshBuilder) Append(m *Mesh) error {
	if b.finalized {
		return ErrBuilderFinalized
	}
	if m == nil || m.Empty() {
		return nil
	}
	if b.parts == 0 {
		b.indexed = m.Indexed()
		b.drawMode = m.DrawMode
	} else {
		if m.Indexed() != b.indexed {
			return fmt.Errorf("%s: part %d (%q) indexed=%t, builder indexed=%t: %w",
				b.name, b.parts, m.Name, m.Indexed(), b.indexed, ErrIncompatibleMesh)
		}
		if m.DrawMode != b.drawMode {
			return fmt.Errorf("%s: part %d (%q) draw mode %d, builder %d: %w",
				b.name, b.parts, m.Name, m.DrawMode, b.drawMode, ErrIncompatibleMesh)
		}
	}

	base := uint32(len(b.vertices))
	b.vertices = append(b.vertices, m.Vertices...)
	for _, idx := range m.Indices {
		b.indices = append(b.indices, base+idx)
	}
	b.parts++
	return nil
}

// Parts returns how many non-empty meshes have been appended.
func (b *MeshBuilder) Parts() int {
	return b.parts
}

// VertexCount returns the number of vertices accumulated so far.
func (b *MeshBuilder) VertexCount() int {
	return len(b.vertices)
}

// Build finalizes the builder and returns the merged mesh. Further Append
// calls fail; Build may be called again and returns an equivalent mesh that
// owns its own vertex and index slices.
func (b *MeshBuilder) Build() *Mesh {
	b.finalized = true
	m := CreateMeshFromData(b.name, slices.Clone(b.vertices), nil)
	m.DrawMode = b.drawMode
	if b.indexed {
		m.Indices = slices.Clone(b.indices)
		if m.Indices == nil {
			m.Indices = []uint32{}
		}
	}
	return m
}

// Merge unions meshes into a single new mesh. The inputs are not modified.
func Merge(name string, meshes ...*Mesh) (*Mesh, error) {
	b := NewMeshBuilder(name)
	for _, m := range meshes {
		if err := b.Append(m); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}
