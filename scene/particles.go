package scene

import (
	"math/rand"

	"github.com/chewxy/math32"

	"hexisland/core"
	"hexisland/math"
)

// BlendMode controls how particle colours composite with the scene.
type BlendMode int

const (
	BlendAlpha    BlendMode = iota // smoke
	BlendAdditive                  // fire
)

// Particle is a single live particle instance.
type Particle struct {
	Position math.Vec3
	Velocity math.Vec3
	Life     float32 // remaining lifetime in seconds
	MaxLife  float32
	Size     float32
	Color    core.Color
}

// ParticleEmitter spawns and simulates CPU particles. Particles are drawn
// as GL points built by PointMesh.
type ParticleEmitter struct {
	Position  math.Vec3
	Direction math.Vec3 // normalised
	Spread    float32   // half-angle in radians

	Rate int // particles per second while Active

	MinLife, MaxLife   float32
	MinSpeed, MaxSpeed float32
	MinSize, MaxSize   float32

	StartColor core.Color
	EndColor   core.Color

	Gravity math.Vec3

	BlendMode BlendMode

	// Active gates continuous spawning only; Burst always spawns.
	Active bool

	Particles []Particle

	pool       int
	spawnAccum float32
	rng        *rand.Rand
}

// NewParticleEmitter returns a fire emitter.
func NewParticleEmitter(maxParticles int, seed int64) *ParticleEmitter {
	return &ParticleEmitter{
		Direction:  math.Vec3Up,
		Spread:     0.4,
		Rate:       80,
		MinLife:    0.6,
		MaxLife:    1.8,
		MinSpeed:   2.0,
		MaxSpeed:   5.0,
		MinSize:    4,
		MaxSize:    14,
		StartColor: core.Color{R: 1.0, G: 0.7, B: 0.15, A: 1.0},
		EndColor:   core.Color{R: 0.8, G: 0.05, B: 0.0, A: 0.0},
		Gravity:    math.Vec3{Y: 0.3},
		BlendMode:  BlendAdditive,
		Active:     true,
		Particles:  make([]Particle, 0, maxParticles),
		pool:       maxParticles,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// NewSmokeEmitter returns a slow rising smoke emitter.
func NewSmokeEmitter(maxParticles int, seed int64) *ParticleEmitter {
	return &ParticleEmitter{
		Direction:  math.Vec3Up,
		Spread:     0.5,
		Rate:       20,
		MinLife:    2.0,
		MaxLife:    4.0,
		MinSpeed:   0.5,
		MaxSpeed:   1.5,
		MinSize:    8,
		MaxSize:    24,
		StartColor: core.Color{R: 0.3, G: 0.3, B: 0.3, A: 0.4},
		EndColor:   core.Color{R: 0.6, G: 0.6, B: 0.6, A: 0.0},
		Gravity:    math.Vec3{Y: 0.1},
		BlendMode:  BlendAlpha,
		Active:     true,
		Particles:  make([]Particle, 0, maxParticles),
		pool:       maxParticles,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// Burst spawns up to n particles at once, each placed at Position plus a
// random offset in [0,2) on every axis. It returns how many were spawned;
// fewer than n when the pool is full.
func (e *ParticleEmitter) Burst(n int) int {
	spawned := 0
	for ; spawned < n && len(e.Particles) < e.pool; spawned++ {
		jitter := math.Vec3{
			X: e.rng.Float32() * 2,
			Y: e.rng.Float32() * 2,
			Z: e.rng.Float32() * 2,
		}
		e.spawnAt(e.Position.Add(jitter))
	}
	return spawned
}

// Update advances the simulation by dt seconds.
func (e *ParticleEmitter) Update(dt float32) {
	if e.Active {
		e.spawnAccum += float32(e.Rate) * dt
		for e.spawnAccum >= 1.0 && len(e.Particles) < e.pool {
			e.spawnAt(e.Position)
			e.spawnAccum -= 1.0
		}
		if len(e.Particles) >= e.pool {
			e.spawnAccum = 0
		}
	}

	// Integrate and cull dead particles (compact in-place)
	write := 0
	for i := range e.Particles {
		p := e.Particles[i]
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.Velocity = p.Velocity.Add(e.Gravity.Mul(dt))
		p.Position = p.Position.Add(p.Velocity.Mul(dt))

		t := 1.0 - p.Life/p.MaxLife // 0 = just born, 1 = about to die
		p.Color = lerpColor(e.StartColor, e.EndColor, t)
		p.Size = e.MinSize + (e.MaxSize-e.MinSize)*(1.0-t)

		e.Particles[write] = p
		write++
	}
	e.Particles = e.Particles[:write]
}

// Count returns the number of live particles.
func (e *ParticleEmitter) Count() int { return len(e.Particles) }

// PointMesh returns a non-indexed DrawPoints mesh with one vertex per live
// particle. The particle size is stored in UV.X.
func (e *ParticleEmitter) PointMesh() *Mesh {
	vertices := make([]core.Vertex, len(e.Particles))
	for i, p := range e.Particles {
		vertices[i] = core.Vertex{
			Position: p.Position,
			Normal:   math.Vec3Up,
			UV:       math.Vec2{X: p.Size},
			Color:    p.Color,
		}
	}
	m := CreateMeshFromData("Particles", vertices, nil)
	m.DrawMode = DrawPoints
	return m
}

func (e *ParticleEmitter) spawnAt(pos math.Vec3) {
	life := e.MinLife + e.rng.Float32()*(e.MaxLife-e.MinLife)
	speed := e.MinSpeed + e.rng.Float32()*(e.MaxSpeed-e.MinSpeed)
	dir := randomInCone(e.Direction, e.Spread, e.rng)
	e.Particles = append(e.Particles, Particle{
		Position: pos,
		Velocity: dir.Mul(speed),
		Life:     life,
		MaxLife:  life,
		Size:     e.MaxSize,
		Color:    e.StartColor,
	})
}

// randomInCone returns a unit vector uniformly distributed over the
// spherical cap of half-angle spread around axis.
func randomInCone(axis math.Vec3, spread float32, rng *rand.Rand) math.Vec3 {
	phi := rng.Float32() * 2 * math32.Pi
	cosMin := math32.Cos(spread)
	cosTheta := cosMin + rng.Float32()*(1-cosMin)
	sinTheta := math32.Sqrt(1 - cosTheta*cosTheta)

	up := math.Vec3Up
	if math32.Abs(axis.Dot(up)) > 0.99 {
		up = math.Vec3Right
	}
	right := axis.Cross(up).Normalize()
	up = right.Cross(axis).Normalize()

	sinPhi, cosPhi := math32.Sincos(phi)
	return axis.Mul(cosTheta).
		Add(right.Mul(sinTheta * cosPhi)).
		Add(up.Mul(sinTheta * sinPhi)).
		Normalize()
}

func lerpColor(a, b core.Color, t float32) core.Color {
	return core.Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}
