package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reMath "hexisland/math"
)

func TestRock(t *testing.T) {
	rng := &fixedRandom{v: 0.5}
	m := Rock(rng, 3, reMath.Vec2{X: 1, Y: 2})

	assert.Equal(t, 3, rng.floats)
	require.Len(t, m.Vertices, 64)

	b := m.Bounds()
	c := b.Center()
	// seven segments around Y leave the sphere slightly lopsided in X
	assert.InDelta(t, 1.2, c.X, 0.05)
	assert.InDelta(t, 3, c.Y, 1e-4)
	assert.InDelta(t, 2.2, c.Z, 0.05)
	assert.InDelta(t, 0.25, b.Max.Y-c.Y, 1e-4, "radius")
}

func TestTree(t *testing.T) {
	rng := &fixedRandom{v: 0}
	m, err := Tree(rng, 2, reMath.Vec2{X: -1, Y: 4})
	require.NoError(t, err)

	assert.Equal(t, 1, rng.floats)
	assert.Len(t, m.Vertices, 45)
	assert.Len(t, m.Indices, 54)

	const th = 1.24
	b := m.Bounds()
	assert.InDelta(t, 2+th*0.1+1-th/2, b.Min.Y, 1e-4)
	assert.InDelta(t, 2+th*1.25+1+th/2, b.Max.Y, 1e-4)
	assert.InDelta(t, -1, b.Center().X, 0.5)
}

func TestCloudCount(t *testing.T) {
	tests := []struct {
		r    float64
		want int
	}{
		{0, 0},
		{1, 4},
		{0.5, 2},
		{0.99, 3},
		{0.01, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CloudCount(tt.r), "r = %v", tt.r)
	}
}

func TestGenerateClouds(t *testing.T) {
	m, count, err := GenerateClouds(&fixedRandom{v: 0})
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.True(t, m.Empty())

	rng := &fixedRandom{v: 0.5}
	m, count, err = GenerateClouds(rng)
	require.NoError(t, err)
	require.Equal(t, 2, count)
	assert.Len(t, m.Vertices, count*3*64)
	// one count draw, then per cloud: three puff jitters, three offsets, one angle
	assert.Equal(t, 1+count*7, rng.floats)

	// y = 0.5*7 + 11, puffs lifted by 0.15, largest puff radius 1.4
	b := m.Bounds()
	assert.InDelta(t, 14.65-1.4, b.Min.Y, 1e-3)
	assert.InDelta(t, 14.65+1.4, b.Max.Y, 1e-3)
}

func TestSurroundings(t *testing.T) {
	d := Surroundings(10)

	sea := d.Sea.Bounds()
	assert.InDelta(t, 0, sea.Min.Y, 1e-4)
	assert.InDelta(t, 2, sea.Max.Y, 1e-4)
	assert.InDelta(t, 17, sea.Max.Z, 1e-4)

	assert.Len(t, d.Container.Vertices, 102)
	assert.InDelta(t, 2.5, d.Container.Bounds().Max.Y, 1e-4)

	floor := d.Floor.Bounds()
	assert.InDelta(t, -0.6, floor.Min.Y, 1e-4)
	assert.InDelta(t, 0.4, floor.Max.Y, 1e-4)

	bad := Surroundings(-1)
	assert.True(t, bad.Sea.Empty())
	assert.True(t, bad.Floor.Empty())
}
