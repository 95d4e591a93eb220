package terrain

import (
	"fmt"
	"math"

	"hexisland/scene"
)

// CloudCount maps a uniform draw r in [0, 1] to a cloud count. The power
// skews towards larger counts; r = 1 gives 4.
func CloudCount(r float64) int {
	if math.IsNaN(r) || r <= 0 {
		return 0
	}
	return int(math.Floor(math.Pow(r, 0.45) * 4))
}

var cloudPuffs = [3]struct {
	radius, x float32
}{
	{1.2, -1.85},
	{1.4, 0},
	{0.9, 1.85},
}

// Cloud builds one three-puff cloud at the origin. Each puff gets a small
// vertical jitter from rng.
func Cloud(rng Random) (*scene.Mesh, error) {
	b := scene.NewMeshBuilder("Cloud")
	for _, p := range cloudPuffs {
		puff := scene.CreateSphere(p.radius, 7, 7)
		puff.Translate(p.x, float32(rng.Float64()*0.3), 0)
		if err := b.Append(puff); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// GenerateClouds draws a cloud count, then builds and scatters that many
// clouds above the island, each spun about Y by a random angle. The merged
// mesh is returned with the count.
func GenerateClouds(rng Random) (*scene.Mesh, int, error) {
	count := CloudCount(rng.Float64())

	b := scene.NewMeshBuilder("Clouds")
	for i := 0; i < count; i++ {
		cloud, err := Cloud(rng)
		if err != nil {
			return nil, 0, fmt.Errorf("cloud %d: %w", i, err)
		}
		cloud.Translate(
			float32(rng.Float64()*20-17),
			float32(rng.Float64()*7+11),
			float32(rng.Float64()*20-10),
		)
		cloud.RotateY(float32(rng.Float64() * math.Pi * 2))

		if err := b.Append(cloud); err != nil {
			return nil, 0, fmt.Errorf("cloud %d: %w", i, err)
		}
	}
	return b.Build(), count, nil
}
