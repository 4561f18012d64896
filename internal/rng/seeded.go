// Package rng provides the deterministic generator used for loot and step
// generation, plus an unseeded source for the spin wheels.
package rng

import (
	"crypto/sha256"
	"encoding/binary"
	"math/bits"
)

// warmupRounds discards the first outputs, which carry little entropy
const warmupRounds = 8

// Source yields uniform floats in [0,1) and inclusive integer ranges
type Source interface {
	Float64() float64
	Randint(min, max int) int
}

// Seeded is a xoshiro128** style generator whose 128-bit state is derived
// from the SHA-256 digest of a seed string. Identical seeds always produce
// identical sequences.
type Seeded struct {
	s [4]uint32
}

// New derives a generator from seed
func New(seed string) *Seeded {
	sum := sha256.Sum256([]byte(seed))
	g := &Seeded{}
	for i := range g.s {
		g.s[i] = binary.BigEndian.Uint32(sum[i*4 : i*4+4])
	}
	for i := 0; i < warmupRounds; i++ {
		g.Next()
	}
	return g
}

// ForDay builds the conventional date+context seed
func ForDay(date, context string) *Seeded {
	return New(date + context)
}

// Next advances the state and returns the next 32-bit output
func (g *Seeded) Next() uint32 {
	s := &g.s
	t := s[1] << 9
	result := bits.RotateLeft32(s[0]*5, 7) * 9
	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]
	s[2] ^= t
	s[3] = bits.RotateLeft32(s[3], 11)
	return result
}

// Float64 returns the next output normalized to [0,1)
func (g *Seeded) Float64() float64 {
	return float64(g.Next()) / 4294967296.0
}

// Randint returns an integer in [min, max]
func (g *Seeded) Randint(min, max int) int {
	return randint(g, min, max)
}

func randint(src interface{ Float64() float64 }, min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + int(src.Float64()*float64(max-min+1))
}
