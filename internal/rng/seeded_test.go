package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeeded_Deterministic(t *testing.T) {
	a := New("2024-01-02Q-2024-01-02-001")
	b := New("2024-01-02Q-2024-01-02-001")

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64(), "draw %d diverged", i)
	}
}

func TestSeeded_DifferentSeedsDiffer(t *testing.T) {
	assert.NotEqual(t, New("2024-01-02a").Float64(), New("2024-01-02b").Float64())
	assert.NotEqual(t, ForDay("2024-01-02", "x").Float64(), ForDay("2024-01-03", "x").Float64())
}

func TestSeeded_ForDayMatchesConcatenation(t *testing.T) {
	assert.Equal(t, New("2024-01-02E-2024-01-02-blog").Next(), ForDay("2024-01-02", "E-2024-01-02-blog").Next())
}

func TestSeeded_Range(t *testing.T) {
	g := New("range")
	for i := 0; i < 1000; i++ {
		f := g.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)

		n := g.Randint(3, 5)
		assert.GreaterOrEqual(t, n, 3)
		assert.LessOrEqual(t, n, 5)
	}
}

func TestRandint_SwappedBounds(t *testing.T) {
	f := &Fixed{Values: []float64{0.99}}
	assert.Equal(t, 5, f.Randint(5, 1))
}

func TestFixed_Cycles(t *testing.T) {
	f := &Fixed{Values: []float64{0.1, 0.2}}
	assert.Equal(t, 0.1, f.Float64())
	assert.Equal(t, 0.2, f.Float64())
	assert.Equal(t, 0.1, f.Float64())
	assert.Equal(t, 0.0, (&Fixed{}).Float64())
}

func TestUnseeded_Range(t *testing.T) {
	var u Unseeded
	for i := 0; i < 100; i++ {
		f := u.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}
