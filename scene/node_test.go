package scene

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"hexisland/core"
	"hexisland/math"
)

func TestNodeWorldMatrix(t *testing.T) {
	parent := NewNode("parent")
	parent.SetPosition(math.Vec3{X: 10})

	child := NewNode("child")
	child.SetPosition(math.Vec3{Y: 1})
	parent.AddChild(child)

	assertVec(t, math.Vec3{X: 10, Y: 1}, child.WorldMatrix().MulPoint(math.Vec3Zero))

	parent.SetPosition(math.Vec3{X: -2})
	assertVec(t, math.Vec3{X: -2, Y: 1}, child.WorldMatrix().MulPoint(math.Vec3Zero))
}

func TestNodeOverride(t *testing.T) {
	n := NewNode("plane")
	m := math.Mat4Translation(math.Vec3{Z: 4})
	n.SetMatrix(&m)
	assertVec(t, math.Vec3{Z: 4}, n.WorldMatrix().MulPoint(math.Vec3Zero))

	n.SetMatrix(nil)
	assertVec(t, math.Vec3Zero, n.WorldMatrix().MulPoint(math.Vec3Zero))
}

func TestSceneVisibleNodes(t *testing.T) {
	s := NewScene()
	shown := NewMeshNode(CreateHexColumn(1))
	hidden := NewMeshNode(CreateHexColumn(1))
	hidden.Visible = false
	hidden.AddChild(NewMeshNode(CreateSphere(1, 4, 3)))
	empty := NewMeshNode(NewMesh("empty"))

	s.AddNode(shown)
	s.AddNode(hidden)
	s.AddNode(empty)

	assert.Equal(t, []*Node{shown}, s.VisibleNodes())
	assert.Same(t, shown, s.Root.Find("HexColumn"))

	s.Clear()
	assert.Empty(t, s.VisibleNodes())
	assert.Nil(t, shown.Parent)
}

func TestOrbitCamera(t *testing.T) {
	c := NewOrbitCamera(math.Vec3Zero, 50, math32.Pi/4, 16.0/9.0)
	assertVec(t, math.Vec3{Z: 50}, c.Position())

	// the target lands in the centre of the screen
	p := c.ViewProjectionMatrix().MulPoint(math.Vec3Zero)
	assert.InDelta(t, 0, p.X, eps)
	assert.InDelta(t, 0, p.Y, eps)

	c.Orbit(0, 10)
	assert.InDelta(t, 1.5, c.Pitch, eps)

	c.Zoom(-100)
	assert.Equal(t, c.MinDistance, c.Distance)
	c.Zoom(1000)
	assert.Equal(t, c.MaxDistance, c.Distance)
}

func TestDrawOrder(t *testing.T) {
	solid := NewMeshNode(CreateHexColumn(1))

	glass := &Material{Albedo: core.ColorWhite, Opacity: 0.5}
	near := NewMeshNode(CreateSphere(1, 7, 7))
	near.Mesh.Material = glass
	near.SetPosition(math.Vec3{Z: 5})
	far := NewMeshNode(CreateSphere(1, 7, 7))
	far.Mesh.Material = glass
	far.SetPosition(math.Vec3{Z: -20})

	sparks := NewMeshNode(NewParticleEmitter(10, 1).PointMesh())

	opaque, translucent := DrawOrder([]*Node{near, solid, far, sparks}, math.Vec3{Z: 10})
	assert.Equal(t, []*Node{solid}, opaque)
	assert.Equal(t, []*Node{far, sparks, near}, translucent)
}
