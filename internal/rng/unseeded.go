package rng

import "math/rand/v2"

// Unseeded draws from the process-wide random source. It backs the spin
// wheels, whose odds are intentionally not reproducible.
type Unseeded struct{}

// Float64 returns a uniform float in [0,1)
func (Unseeded) Float64() float64 {
	return rand.Float64() //nolint:gosec // game randomness, not security
}

// Randint returns an integer in [min, max]
func (u Unseeded) Randint(min, max int) int {
	return randint(u, min, max)
}

// Fixed replays a list of floats, cycling when exhausted. Used by tests and
// by callers that need a forced outcome.
type Fixed struct {
	Values []float64
	i      int
}

// Float64 returns the next configured value
func (f *Fixed) Float64() float64 {
	if len(f.Values) == 0 {
		return 0
	}
	v := f.Values[f.i%len(f.Values)]
	f.i++
	return v
}

// Randint returns an integer in [min, max] derived from the next value
func (f *Fixed) Randint(min, max int) int {
	return randint(f, min, max)
}
