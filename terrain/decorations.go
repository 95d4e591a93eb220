package terrain

import (
	"hexisland/scene"

	reMath "hexisland/math"
)

// Decoration chances: a decoration is added when a draw exceeds the value.
const (
	RockChance = 0.8
	TreeChance = 0.85
)

// Rock builds a small 7x7 sphere near the tile centre, resting at height.
// It draws three values from rng: the X and Z jitter in [0, 0.4) and the
// radius in [0.1, 0.4).
func Rock(rng Random, height float64, pos reMath.Vec2) *scene.Mesh {
	px := rng.Float64() * 0.4
	pz := rng.Float64() * 0.4
	radius := rng.Float64()*0.3 + 0.1

	m := scene.CreateSphere(float32(radius), 7, 7)
	m.Name = "Rock"
	return m.Translate(pos.X+float32(px), float32(height), pos.Y+float32(pz))
}

// Tree builds three stacked three-sided cones of one random height in
// [1.24, 2.24), merged into a single mesh. It draws one value from rng.
func Tree(rng Random, height float64, pos reMath.Vec2) (*scene.Mesh, error) {
	treeHeight := rng.Float64() + 1.24

	b := scene.NewMeshBuilder("Tree")
	for _, k := range []float64{0.1, 0.6, 1.25} {
		tier := scene.CreateCone(1.5, float32(treeHeight), 3)
		tier.Translate(pos.X, float32(height+treeHeight*k+1), pos.Y)
		if err := b.Append(tier); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}
