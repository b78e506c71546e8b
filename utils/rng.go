package utils

import (
	"math/rand/v2"
	"time"
)

// NewRand returns a deterministic PCG generator for seed along with the seed
// actually used. A zero seed is replaced by one derived from the clock.
func NewRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0)), seed
}
