package game

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Source is the randomness used to draw the secret number.
// *rand.Rand satisfies it.
type Source interface {
	Uint64N(n uint64) uint64
}

// NewSource returns a PCG-backed source. A zero seed is replaced by one
// taken from the runtime's OS-seeded generator.
func NewSource(seed uint64) Source {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Draw picks a number uniformly from the closed interval [lo, hi].
func Draw(src Source, lo, hi uint64) (uint64, error) {
	if lo > hi {
		return 0, fmt.Errorf("%w: min %d > max %d", ErrInvalidRange, lo, hi)
	}
	span := hi - lo
	if span == math.MaxUint64 {
		// [0, MaxUint64]: every value is valid, Uint64N cannot express the width.
		upper := src.Uint64N(1 << 32)
		lower := src.Uint64N(1 << 32)
		return upper<<32 | lower, nil
	}
	return lo + src.Uint64N(span+1), nil
}
