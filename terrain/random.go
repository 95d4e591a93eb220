package terrain

import "math/rand"

// Random is the source of decoration and cloud randomness. *rand.Rand
// satisfies it.
type Random interface {
	Float64() float64 // [0, 1)
	Int63() int64
}

// NewRandom returns a deterministic random source for seed.
func NewRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
