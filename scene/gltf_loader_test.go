package scene

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexisland/math"
)

func triangleDocument() *gltf.Document {
	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, [][3]float32{{1, 0, 0}, {0, 0, 1}, {0, 1, 0}})
	idx := modeler.WriteIndices(doc, []uint16{0, 1, 2})
	doc.Materials = []*gltf.Material{{
		Name: "paper",
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{1, 0, 0, 1},
		},
	}}
	doc.Meshes = []*gltf.Mesh{{
		Name: "tri",
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(idx),
			Attributes: map[string]int{"POSITION": pos},
			Material:   gltf.Index(0),
		}},
	}}
	return doc
}

func TestMeshFromGLTFBakesTransforms(t *testing.T) {
	doc := triangleDocument()
	s := math32.Sin(math32.Pi / 4)
	doc.Nodes = []*gltf.Node{
		{Name: "root", Translation: [3]float64{0, 5, 0}, Children: []int{1}},
		{Name: "leaf", Mesh: gltf.Index(0), Rotation: [4]float64{0, float64(s), 0, float64(s)}},
	}
	doc.Scenes[0].Nodes = []int{0}

	m, err := MeshFromGLTF(doc)
	require.NoError(t, err)
	require.Len(t, m.Vertices, 3)
	assert.Equal(t, []uint32{0, 1, 2}, m.Indices)

	// +X rotates to -Z about Y, then the parent lifts it by 5
	assertVec(t, math.Vec3{Y: 5, Z: -1}, m.Vertices[0].Position)
	assertVec(t, math.Vec3{Y: 6}, m.Vertices[2].Position)

	assert.InDelta(t, 1, m.Vertices[0].Color.R, eps)
	assert.InDelta(t, 0, m.Vertices[0].Color.G, eps)

	// missing NORMAL attribute falls back to computed normals
	assert.InDelta(t, 1, m.Vertices[0].Normal.Length(), eps)
}

func TestMeshFromGLTFNoGeometry(t *testing.T) {
	doc := gltf.NewDocument()
	doc.Nodes = []*gltf.Node{{Name: "empty"}}
	doc.Scenes[0].Nodes = []int{0}

	_, err := MeshFromGLTF(doc)
	assert.ErrorIs(t, err, ErrNoGeometry)
}

func TestLoadGLTFMissingFile(t *testing.T) {
	_, err := LoadGLTF("does-not-exist.glb")
	assert.Error(t, err)
}
