package pong

import (
	"math/rand"
	"time"
)

// Random is a source of uniform values in [0, 1).
// *rand.Rand satisfies it. The engine is single-threaded, so sources are
// never shared across goroutines.
type Random interface {
	Float64() float64
}

// NewRandom returns a seeded source. A zero seed uses the current time.
func NewRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)) //nolint:gosec // gameplay randomness
}

// Uniform draws values from the half-open range [Min, Max).
type Uniform struct {
	Min, Max float64
}

// Sample draws one value from r.
func (u Uniform) Sample(r Random) float64 {
	return u.Min + r.Float64()*(u.Max-u.Min)
}

// Midpoint returns the center of the range. Comparing a fresh sample against
// it gives a fair coin.
func (u Uniform) Midpoint() float64 {
	return (u.Min + u.Max) / 2
}
