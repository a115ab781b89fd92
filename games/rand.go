package games

import (
	"math/rand"
	"time"
)

// Rand is the randomness seam for all game engines. *math/rand.Rand
// satisfies it; tests inject scripted implementations to force outcomes.
type Rand interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a time-seeded source suitable for production use.
func NewRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
