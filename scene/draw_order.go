package scene

import (
	"sort"

	"hexisland/math"
)

// Translucent reports whether the mesh must be drawn after opaque geometry
// with depth writes disabled.
func (m *Mesh) Translucent() bool {
	if m.DrawMode == DrawPoints {
		return true
	}
	mat := m.Material
	if mat == nil {
		return false
	}
	return mat.Additive || (mat.Opacity > 0 && mat.Opacity < 1)
}

// DrawOrder splits nodes into opaque and translucent lists. Opaque nodes keep
// their scene order; translucent nodes are sorted back to front by the
// distance from eye to the centre of their world-space bounds.
func DrawOrder(nodes []*Node, eye math.Vec3) (opaque, translucent []*Node) {
	for _, n := range nodes {
		if n.Mesh == nil {
			continue
		}
		if n.Mesh.Translucent() {
			translucent = append(translucent, n)
		} else {
			opaque = append(opaque, n)
		}
	}

	dist := make(map[*Node]float32, len(translucent))
	for _, n := range translucent {
		c := n.WorldMatrix().MulPoint(n.Mesh.Bounds().Center())
		dist[n] = c.Sub(eye).LengthSqr()
	}
	sort.SliceStable(translucent, func(i, j int) bool {
		return dist[translucent[i]] > dist[translucent[j]]
	})
	return opaque, translucent
}
