package scene

import "hexisland/math"

// ComputeNormals replaces the vertex normals of m with smooth, area-weighted
// face normals. Vertices that belong to no triangle keep +Y.
//
// Call after displacing vertices, before uploading the mesh to the GPU.
func ComputeNormals(m *Mesh) {
	for i := range m.Vertices {
		m.Vertices[i].Normal = math.Vec3{}
	}

	// The unnormalised cross product is proportional to the triangle area.
	accum := func(i0, i1, i2 uint32) {
		p0 := m.Vertices[i0].Position
		e1 := m.Vertices[i1].Position.Sub(p0)
		e2 := m.Vertices[i2].Position.Sub(p0)
		n := e1.Cross(e2)

		m.Vertices[i0].Normal = m.Vertices[i0].Normal.Add(n)
		m.Vertices[i1].Normal = m.Vertices[i1].Normal.Add(n)
		m.Vertices[i2].Normal = m.Vertices[i2].Normal.Add(n)
	}

	if m.Indexed() {
		for i := 0; i+2 < len(m.Indices); i += 3 {
			accum(m.Indices[i], m.Indices[i+1], m.Indices[i+2])
		}
	} else {
		for i := 0; i+2 < len(m.Vertices); i += 3 {
			accum(uint32(i), uint32(i+1), uint32(i+2))
		}
	}

	for i := range m.Vertices {
		n := m.Vertices[i].Normal
		if n.LengthSqr() < 1e-12 {
			m.Vertices[i].Normal = math.Vec3Up
			continue
		}
		m.Vertices[i].Normal = n.Normalize()
	}
}
