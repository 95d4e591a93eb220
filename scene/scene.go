package scene

import (
	"hexisland/core"
	"hexisland/math"
)

// Scene manages a collection of nodes, the camera and a single point light.
type Scene struct {
	Root     *Node
	Camera   *OrbitCamera
	Light    Light
	Ambient  core.Color
	SkyColor core.Color
}

// Light is a point light. The renderer attenuates nothing; intensity scales
// the colour directly.
type Light struct {
	Position  math.Vec3
	Color     core.Color
	Intensity float32
}

func NewScene() *Scene {
	return &Scene{
		Root:     NewNode("Root"),
		Ambient:  core.Color{R: 0.2, G: 0.2, B: 0.2, A: 1.0},
		SkyColor: core.Color{R: 0.5, G: 0.7, B: 1.0, A: 1.0},
		Light: Light{
			Position:  math.Vec3{X: 20, Y: 40, Z: 20},
			Color:     core.ColorWhite,
			Intensity: 1,
		},
	}
}

func (s *Scene) AddNode(node *Node) {
	s.Root.AddChild(node)
}

func (s *Scene) RemoveNode(node *Node) {
	s.Root.RemoveChild(node)
}

// Clear detaches every node from the root.
func (s *Scene) Clear() {
	for len(s.Root.Children) > 0 {
		s.Root.RemoveChild(s.Root.Children[0])
	}
}

// VisibleNodes returns all nodes with non-empty meshes that are visible.
// Invisible nodes hide their whole subtree.
func (s *Scene) VisibleNodes() []*Node {
	var visible []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		if !n.Visible {
			return
		}
		if n.Mesh != nil && !n.Mesh.Empty() {
			visible = append(visible, n)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(s.Root)
	return visible
}
