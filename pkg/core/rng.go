package core

import (
	"math"
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2. A zero seed draws
// from the wall clock so every run scatters differently.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates an RNG using the provided seed, or a time-derived seed when
// seed is zero.
func NewRNG(seed int64) *RNG {
	s := uint64(seed)
	if seed == 0 {
		s = uint64(time.Now().UnixNano())
	}
	return &RNG{r: rand.New(rand.NewPCG(s, 0))}
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Range returns a value in [lo, hi).
func (r *RNG) Range(lo, hi float64) float64 {
	return lo + r.r.Float64()*(hi-lo)
}

// Centered returns a value in [-span/2, span/2).
func (r *RNG) Centered(span float64) float64 {
	return (r.r.Float64() - 0.5) * span
}

// Angle returns a value in [0, 2π).
func (r *RNG) Angle() float64 {
	return r.r.Float64() * 2 * math.Pi
}
