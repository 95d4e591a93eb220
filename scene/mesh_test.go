package scene

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexisland/core"
	"hexisland/math"
)

const eps = 1e-4

func assertVec(t *testing.T, want, got math.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "x")
	assert.InDelta(t, want.Y, got.Y, eps, "y")
	assert.InDelta(t, want.Z, got.Z, eps, "z")
}

func assertIndicesInRange(t *testing.T, m *Mesh) {
	t.Helper()
	for i, idx := range m.Indices {
		require.Less(t, int(idx), len(m.Vertices), "index %d", i)
	}
}

func TestPrimitiveCounts(t *testing.T) {
	tests := []struct {
		name     string
		mesh     *Mesh
		vertices int
		indices  int
	}{
		{"hex column", CreateHexColumn(2), 40, 72},
		{"tree cone", CreateCylinder(0, 1.5, 2, 3, 1, false), 15, 18},
		{"rock sphere", CreateSphere(0.3, 7, 7), 64, 252},
		{"open cylinder", CreateCylinder(17.1, 17.1, 2.5, 50, 1, true), 102, 300},
		{"plane", CreatePlane(10, 10, 4, 2), 15, 48},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.mesh.Vertices, tt.vertices)
			assert.Len(t, tt.mesh.Indices, tt.indices)
			assert.Equal(t, tt.indices/3, tt.mesh.TriangleCount())
			assertIndicesInRange(t, tt.mesh)
		})
	}
}

func TestHexColumnSitsOnGround(t *testing.T) {
	m := CreateHexColumn(3)
	b := m.Bounds()

	assert.InDelta(t, 0, b.Min.Y, eps)
	assert.InDelta(t, 3, b.Max.Y, eps)
	assert.InDelta(t, 1, b.Max.Z, eps, "pointy along +Z")
	assert.InDelta(t, math32.Sqrt(3)/2, b.Max.X, eps)
}

func TestCylinderRimLayout(t *testing.T) {
	m := CreateCylinder(2, 2, 4, 4, 1, true)

	// first rim vertex sits at angle 0, which is +Z
	assertVec(t, math.Vec3{X: 0, Y: 2, Z: 2}, m.Vertices[0].Position)
	// a quarter turn later it is on +X
	assertVec(t, math.Vec3{X: 2, Y: 2, Z: 0}, m.Vertices[1].Position)
	// bottom row
	assertVec(t, math.Vec3{X: 0, Y: -2, Z: 2}, m.Vertices[5].Position)
}

func TestConeApexUp(t *testing.T) {
	m := CreateCone(1.5, 2, 3)
	b := m.Bounds()
	assert.InDelta(t, 1, b.Max.Y, eps)
	assert.InDelta(t, -1, b.Min.Y, eps)

	for _, v := range m.Vertices {
		if v.Position.Y > 0.99 {
			assert.InDelta(t, 0, v.Position.X, eps)
			assert.InDelta(t, 0, v.Position.Z, eps)
		}
	}
}

func TestSphereRadius(t *testing.T) {
	m := CreateSphere(0.25, 7, 7)
	for _, v := range m.Vertices {
		assert.InDelta(t, 0.25, v.Position.Length(), eps)
		assert.InDelta(t, 1, v.Normal.Length(), eps)
	}
}

func TestMeshTranslateAndRotate(t *testing.T) {
	m := CreateMeshFromData("tri", []core.Vertex{
		{Position: math.Vec3{X: 1}, Normal: math.Vec3Right},
	}, nil)

	m.Translate(0, 2, 0)
	assertVec(t, math.Vec3{X: 1, Y: 2}, m.Vertices[0].Position)

	m.RotateY(math32.Pi / 2)
	assertVec(t, math.Vec3{Y: 2, Z: -1}, m.Vertices[0].Position)
	assertVec(t, math.Vec3{Z: -1}, m.Vertices[0].Normal)
}

func TestMeshClone(t *testing.T) {
	src := CreateSphere(1, 4, 3)
	src.Material = NewMaterial("m", core.ColorRed)
	c := src.Clone()

	c.Translate(5, 0, 0)
	c.Indices[0] = 99

	assert.NotEqual(t, src.Vertices[0].Position, c.Vertices[0].Position)
	assert.NotEqual(t, uint32(99), src.Indices[0])
	assert.Same(t, src.Material, c.Material)
	assert.Nil(t, c.GPUData)
}

func TestCloneKeepsNonIndexed(t *testing.T) {
	m := CreateMeshFromData("soup", make([]core.Vertex, 3), nil)
	assert.False(t, m.Clone().Indexed())
}

func TestBoundsEmpty(t *testing.T) {
	assert.Equal(t, AABB{}, NewMesh("empty").Bounds())
}

func TestSetColor(t *testing.T) {
	m := CreateHexColumn(1).SetColor(core.ColorRed)
	for _, v := range m.Vertices {
		assert.Equal(t, core.ColorRed, v.Color)
	}
}

func TestComputeNormalsPlane(t *testing.T) {
	m := CreatePlane(2, 2, 2, 2)
	for i := range m.Vertices {
		m.Vertices[i].Normal = math.Vec3{}
	}
	ComputeNormals(m)
	for _, v := range m.Vertices {
		assertVec(t, math.Vec3Up, v.Normal)
	}
}

func TestComputeNormalsTilted(t *testing.T) {
	// plane rising along +X: normal leans towards -X
	m := CreatePlane(2, 2, 1, 1)
	for i := range m.Vertices {
		m.Vertices[i].Position.Y = m.Vertices[i].Position.X
	}
	ComputeNormals(m)

	s := 1 / math32.Sqrt(2)
	for _, v := range m.Vertices {
		assertVec(t, math.Vec3{X: -s, Y: s}, v.Normal)
	}
}

func TestComputeNormalsIsolatedVertex(t *testing.T) {
	m := CreateMeshFromData("lonely", make([]core.Vertex, 4), []uint32{0, 1, 2})
	m.Vertices[1].Position = math.Vec3{Z: 1}
	m.Vertices[2].Position = math.Vec3{X: 1}
	ComputeNormals(m)

	assertVec(t, math.Vec3Up, m.Vertices[0].Normal)
	assertVec(t, math.Vec3Up, m.Vertices[3].Normal)
}
