package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexisland/math"
)

func TestBurstPlacesParticlesInJitterBox(t *testing.T) {
	e := NewParticleEmitter(64, 1)
	e.Position = math.Vec3{X: 5, Y: -1, Z: 2}

	require.Equal(t, 10, e.Burst(10))
	require.Equal(t, 10, e.Count())

	for _, p := range e.Particles {
		d := p.Position.Sub(e.Position)
		for _, c := range []float32{d.X, d.Y, d.Z} {
			assert.GreaterOrEqual(t, c, float32(0))
			assert.Less(t, c, float32(2))
		}
	}
}

func TestBurstRespectsPool(t *testing.T) {
	e := NewParticleEmitter(4, 1)
	assert.Equal(t, 4, e.Burst(10))
	assert.Equal(t, 0, e.Burst(1))
}

func TestUpdateCullsDeadParticles(t *testing.T) {
	e := NewSmokeEmitter(16, 2)
	e.Active = false
	e.Burst(8)

	e.Update(e.MaxLife / 2)
	for _, p := range e.Particles {
		assert.Greater(t, p.Life, float32(0))
	}

	e.Update(e.MaxLife)
	assert.Equal(t, 0, e.Count())
}

func TestUpdateSpawnsWhileActive(t *testing.T) {
	e := NewParticleEmitter(1000, 3)
	e.Update(0.5)
	assert.Equal(t, e.Rate/2, e.Count())
}

func TestPointMesh(t *testing.T) {
	e := NewParticleEmitter(32, 4)
	e.Burst(5)

	m := e.PointMesh()
	assert.Equal(t, DrawPoints, m.DrawMode)
	assert.False(t, m.Indexed())
	require.Len(t, m.Vertices, 5)
	assert.Equal(t, e.Particles[0].Position, m.Vertices[0].Position)
	assert.Equal(t, e.Particles[0].Size, m.Vertices[0].UV.X)
}
