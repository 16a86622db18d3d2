package casino

import "math/rand/v2"

// DiceFaces is the face count of every die in the casino, standalone games
// and duels alike.
const DiceFaces = 6

// RNG is the source of game randomness. House-edge fairness is the
// requirement here, not cryptographic unpredictability; tests substitute a
// deterministic sequence.
type RNG interface {
	// IntN returns a uniform value in [0, n).
	IntN(n int) int

	// Float64 returns a uniform value in [0, 1).
	Float64() float64
}

// StdRNG backs the RNG interface with math/rand/v2.
type StdRNG struct{}

func (StdRNG) IntN(n int) int     { return rand.IntN(n) }
func (StdRNG) Float64() float64   { return rand.Float64() }

func rollDie(rng RNG) int64 {
	return int64(rng.IntN(DiceFaces)) + 1
}
