package scene

import (
	"errors"
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"hexisland/core"
	"hexisland/math"
)

// ErrNoGeometry is returned when a glTF document has no drawable triangles.
var ErrNoGeometry = errors.New("gltf: no triangle geometry")

// LoadGLTF opens a .glb or .gltf file and flattens every triangle primitive
// reachable from the default scene into a single indexed mesh. Node
// transforms are baked into the vertices and each primitive's base colour
// factor is written to its vertex colours.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}
	m, err := MeshFromGLTF(doc)
	if err != nil {
		return nil, fmt.Errorf("gltf %q: %w", path, err)
	}
	return m, nil
}

// MeshFromGLTF flattens an in-memory glTF document. Primitives that fail to
// decode are reported and skipped.
func MeshFromGLTF(doc *gltf.Document) (*Mesh, error) {
	b := NewMeshBuilder("GLTF")

	var visit func(idx int, parent math.Mat4, depth int) error
	visit = func(idx int, parent math.Mat4, depth int) error {
		if idx < 0 || idx >= len(doc.Nodes) || depth > len(doc.Nodes) {
			return nil
		}
		gn := doc.Nodes[idx]
		world := gltfLocalMatrix(gn).Mul(parent)

		if gn.Mesh != nil && *gn.Mesh < len(doc.Meshes) {
			gm := doc.Meshes[*gn.Mesh]
			for pi, prim := range gm.Primitives {
				if prim.Mode != gltf.PrimitiveTriangles {
					fmt.Printf("gltf: mesh %q prim %d: skipping non-triangle mode %v\n", gm.Name, pi, prim.Mode)
					continue
				}
				m, err := loadGLTFPrimitive(doc, gm.Name, pi, prim)
				if err != nil {
					fmt.Printf("gltf: mesh %q prim %d: %v\n", gm.Name, pi, err)
					continue
				}
				m.ApplyMatrix(world)
				if err := b.Append(m); err != nil {
					return err
				}
			}
		}
		for _, c := range gn.Children {
			if err := visit(c, world, depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	for _, root := range gltfRoots(doc) {
		if err := visit(root, math.Mat4Identity(), 0); err != nil {
			return nil, err
		}
	}

	if b.Parts() == 0 {
		return nil, ErrNoGeometry
	}
	return b.Build(), nil
}

// gltfRoots returns the node indices of the default scene, or every
// parentless node when the document names no scene.
func gltfRoots(doc *gltf.Document) []int {
	if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
		return doc.Scenes[*doc.Scene].Nodes
	}
	if len(doc.Scenes) == 1 {
		return doc.Scenes[0].Nodes
	}
	hasParent := make([]bool, len(doc.Nodes))
	for _, gn := range doc.Nodes {
		for _, c := range gn.Children {
			if c >= 0 && c < len(hasParent) {
				hasParent[c] = true
			}
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !hasParent[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

// gltfLocalMatrix converts a node's TRS (or explicit matrix) to row-vector form.
// glTF stores matrices column-major for column vectors, which is exactly the
// row-major layout of the transposed row-vector matrix.
func gltfLocalMatrix(gn *gltf.Node) math.Mat4 {
	if gn.Matrix != [16]float64{} && gn.Matrix != gltf.DefaultMatrix {
		var m math.Mat4
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				m[i][j] = float32(gn.Matrix[i*4+j])
			}
		}
		return m
	}

	t := gn.TranslationOrDefault()
	r := gn.RotationOrDefault() // [x, y, z, w]
	s := gn.ScaleOrDefault()
	return math.Mat4TRS(
		math.Vec3{X: float32(t[0]), Y: float32(t[1]), Z: float32(t[2])},
		math.Mat4FromQuaternion(float32(r[0]), float32(r[1]), float32(r[2]), float32(r[3])),
		math.Vec3{X: float32(s[0]), Y: float32(s[1]), Z: float32(s[2])},
	)
}

// loadGLTFPrimitive converts one glTF mesh primitive into an indexed Mesh.
func loadGLTFPrimitive(doc *gltf.Document, meshName string, primIdx int, prim *gltf.Primitive) (*Mesh, error) {
	name := fmt.Sprintf("%s_p%d", meshName, primIdx)
	if meshName == "" {
		name = fmt.Sprintf("prim_%d", primIdx)
	}

	// Positions are required
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok || posIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok && idx < len(doc.Accessors) {
		normals, _ = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
	}
	var uvs [][2]float32
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok && idx < len(doc.Accessors) {
		uvs, _ = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
	}

	color := core.ColorWhite
	if prim.Material != nil && *prim.Material < len(doc.Materials) {
		if pbr := doc.Materials[*prim.Material].PBRMetallicRoughness; pbr != nil {
			cf := pbr.BaseColorFactorOrDefault()
			color = core.Color{
				R: float32(cf[0]), G: float32(cf[1]),
				B: float32(cf[2]), A: float32(cf[3]),
			}
		}
	}

	verts := make([]core.Vertex, len(positions))
	for i, p := range positions {
		v := core.Vertex{
			Position: math.Vec3{X: p[0], Y: p[1], Z: p[2]},
			Normal:   math.Vec3Up,
			Color:    color,
		}
		if i < len(normals) {
			n := normals[i]
			v.Normal = math.Vec3{X: n[0], Y: n[1], Z: n[2]}
		}
		if i < len(uvs) {
			v.UV = math.Vec2{X: uvs[i][0], Y: uvs[i][1]}
		}
		verts[i] = v
	}

	var indices []uint32
	if prim.Indices != nil && *prim.Indices < len(doc.Accessors) {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	} else {
		// Non-indexed primitives get a sequential index buffer so they can
		// share a builder with indexed ones.
		indices = make([]uint32, len(verts))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}
	for _, idx := range indices {
		if int(idx) >= len(verts) {
			return nil, fmt.Errorf("index %d out of range (%d vertices)", idx, len(verts))
		}
	}

	m := CreateMeshFromData(name, verts, indices)
	if len(normals) < len(verts) {
		ComputeNormals(m)
	}
	return m, nil
}
