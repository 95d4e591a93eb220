package terrain

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Noise2D is a 2D noise field returning values in [-1, 1].
type Noise2D interface {
	Eval2(x, y float64) float64
}

// NoiseFunc adapts a plain function to Noise2D.
type NoiseFunc func(x, y float64) float64

func (f NoiseFunc) Eval2(x, y float64) float64 { return f(x, y) }

// NoiseFactory builds a noise field from a seed.
type NoiseFactory func(seed int64) Noise2D

// OpenSimplex is the default NoiseFactory.
func OpenSimplex(seed int64) Noise2D {
	return opensimplex.New(seed)
}

// ConstantNoise returns a factory whose fields evaluate to v everywhere.
func ConstantNoise(v float64) NoiseFactory {
	return func(int64) Noise2D {
		return NoiseFunc(func(float64, float64) float64 { return v })
	}
}

type fractal struct {
	src         Noise2D
	octaves     int
	persistence float64
}

// Fractal layers octaves of src at doubling frequency. The sum is divided by
// the total amplitude so the result stays in [-1, 1]. One octave (or fewer)
// returns src unchanged.
func Fractal(src Noise2D, octaves int, persistence float64) Noise2D {
	if octaves <= 1 {
		return src
	}
	return fractal{src: src, octaves: octaves, persistence: persistence}
}

func (f fractal) Eval2(x, y float64) float64 {
	total := 0.0
	amplitude := 1.0
	frequency := 1.0
	maxVal := 0.0

	for i := 0; i < f.octaves; i++ {
		total += f.src.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= f.persistence
		frequency *= 2
	}
	if maxVal == 0 {
		return 0
	}
	return total / maxVal
}

// Shape remaps raw noise from [-1,1] to [0,1] and raises it to exponent.
// Out-of-range and NaN input is clamped so heights never leave [0, MaxHeight].
func Shape(n, exponent float64) float64 {
	v := (n + 1) * 0.5
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 1:
		return 1
	}
	return math.Pow(v, exponent)
}
