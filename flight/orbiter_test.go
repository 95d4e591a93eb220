package flight

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reMath "hexisland/math"
)

type fixed float64

func (f fixed) Float64() float64 { return float64(f) }

func TestNewOrbiterRanges(t *testing.T) {
	lo := NewOrbiter(fixed(0))
	assert.InDelta(t, 10.5, lo.YOffset, 1e-6)
	assert.InDelta(t, 0.2, lo.Tilt, 1e-6)
	assert.Zero(t, lo.Angle)

	hi := NewOrbiter(fixed(0.999999))
	assert.Less(t, hi.YOffset, float32(11.5))
	assert.Less(t, hi.Tilt, 0.2+0.45*math32.Pi)
}

func TestUpdate(t *testing.T) {
	o := &Orbiter{YOffset: 11}
	o.Update(2)
	assert.InDelta(t, 0.5, o.Angle, 1e-6)

	o.Update(100) // wraps
	assert.LessOrEqual(t, o.Angle, 2*math32.Pi)
}

func TestPositionStaysOnOrbit(t *testing.T) {
	o := NewOrbiter(fixed(0.3))
	for i := 0; i < 50; i++ {
		o.Update(0.37)
		assert.InDelta(t, o.YOffset, o.Position().Length(), 1e-3)
	}
}

func TestUntiltedOrbitSitsAtPole(t *testing.T) {
	o := &Orbiter{YOffset: 11, Angle: 1.3}
	p := o.Position()
	assert.InDelta(t, 0, p.X, 1e-4)
	assert.InDelta(t, 11, p.Y, 1e-4)
	assert.InDelta(t, 0, p.Z, 1e-4)
}

func TestTiltAtZeroAngle(t *testing.T) {
	// two tilts about Z compose into one of twice the angle
	o := &Orbiter{YOffset: 10, Tilt: math32.Pi / 8}
	p := o.Position()
	assert.InDelta(t, -10*math32.Sin(math32.Pi/4), p.X, 1e-4)
	assert.InDelta(t, 10*math32.Cos(math32.Pi/4), p.Y, 1e-4)
}

func TestTransformScalesModel(t *testing.T) {
	o := &Orbiter{YOffset: 10}
	m := o.Transform(0.001)

	// model +Z (its up after laying flat) is shrunk and rotated onto -Y
	d := m.MulDir(reMath.Vec3{Z: 1000})
	assert.InDelta(t, 0, d.X, 1e-4)
	assert.InDelta(t, -1, d.Y, 1e-4)
	assert.InDelta(t, 0, d.Z, 1e-4)
}

func TestNewFleet(t *testing.T) {
	fleet := NewFleet(3, fixed(0.5))
	require.Len(t, fleet, 3)
	assert.NotSame(t, fleet[0], fleet[1])
}
