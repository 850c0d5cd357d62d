package services

import (
	"math"
	"math/rand/v2"
)

// Rand is the randomness source used by the game engines. Tests inject
// a deterministic implementation; production uses the shared math/rand/v2
// generator.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

type systemRand struct{}

func (systemRand) IntN(n int) int   { return rand.IntN(n) }
func (systemRand) Float64() float64 { return rand.Float64() }

// NewRand returns the production randomness source.
func NewRand() Rand {
	return systemRand{}
}

// round2 rounds a monetary amount to two decimals. Amounts are stored
// as NUMERIC(20,2), so derived values like bet/3 are rounded in Go
// before they reach the database.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
