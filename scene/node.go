package scene

import (
	"hexisland/math"
)

// Transform is a node's local placement: scale, then rotation, then translation.
type Transform struct {
	Position math.Vec3
	Rotation math.Mat4
	Scale    math.Vec3
}

func NewTransform() Transform {
	return Transform{
		Rotation: math.Mat4Identity(),
		Scale:    math.Vec3One,
	}
}

// Matrix returns the local model matrix.
func (t Transform) Matrix() math.Mat4 {
	return math.Mat4TRS(t.Position, t.Rotation, t.Scale)
}

// Node represents an object in the scene graph
type Node struct {
	Name      string
	Transform Transform
	Parent    *Node
	Children  []*Node
	Mesh      *Mesh
	Visible   bool

	// Override replaces Transform.Matrix() when non-nil. Animated models
	// such as the orbiting plane compose their own matrix every frame.
	Override *math.Mat4

	// Cached world transform
	worldMatrixDirty bool
	worldMatrix      math.Mat4
}

func NewNode(name string) *Node {
	return &Node{
		Name:             name,
		Transform:        NewTransform(),
		Visible:          true,
		worldMatrixDirty: true,
	}
}

// NewMeshNode wraps a mesh in a visible node at the origin.
func NewMeshNode(mesh *Mesh) *Node {
	n := NewNode(mesh.Name)
	n.Mesh = mesh
	return n
}

func (n *Node) AddChild(child *Node) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.Children = append(n.Children, child)
	child.MarkWorldMatrixDirty()
}

func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			child.MarkWorldMatrixDirty()
			return
		}
	}
}

// LocalMatrix returns the override matrix if one is set, otherwise the
// matrix built from Transform.
func (n *Node) LocalMatrix() math.Mat4 {
	if n.Override != nil {
		return *n.Override
	}
	return n.Transform.Matrix()
}

// WorldMatrix applies the local matrix first and the parent's world matrix after.
func (n *Node) WorldMatrix() math.Mat4 {
	if n.worldMatrixDirty {
		local := n.LocalMatrix()
		if n.Parent != nil {
			n.worldMatrix = local.Mul(n.Parent.WorldMatrix())
		} else {
			n.worldMatrix = local
		}
		n.worldMatrixDirty = false
	}
	return n.worldMatrix
}

func (n *Node) MarkWorldMatrixDirty() {
	n.worldMatrixDirty = true
	for _, child := range n.Children {
		child.MarkWorldMatrixDirty()
	}
}

func (n *Node) SetPosition(pos math.Vec3) {
	n.Transform.Position = pos
	n.MarkWorldMatrixDirty()
}

func (n *Node) SetScale(scale math.Vec3) {
	n.Transform.Scale = scale
	n.MarkWorldMatrixDirty()
}

// SetMatrix installs an override matrix, or clears it when m is nil.
func (n *Node) SetMatrix(m *math.Mat4) {
	n.Override = m
	n.MarkWorldMatrixDirty()
}

// Traverse visits all nodes in the graph
func (n *Node) Traverse(callback func(*Node)) {
	callback(n)
	for _, child := range n.Children {
		child.Traverse(callback)
	}
}

// Find finds a node by name
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}
