package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"

	"golang.org/x/exp/constraints"
)

// The process-wide generator. Creation is guarded by genOnce so first use is
// cheap to reason about, but draws themselves are unsynchronized on purpose;
// see the package documentation.
var (
	gen     *rand.Rand
	genOnce sync.Once
)

func generator() *rand.Rand {
	genOnce.Do(func() {
		var seed [16]byte
		// crypto/rand never fails on supported platforms; a short read would
		// only weaken the seed, not the generator.
		_, _ = crand.Read(seed[:])
		gen = rand.New(rand.NewPCG(
			binary.LittleEndian.Uint64(seed[:8]),
			binary.LittleEndian.Uint64(seed[8:]),
		))
	})
	return gen
}

// Int returns a pseudo-random integer uniformly distributed over [min, max],
// inclusive of both bounds. The conventional quick-draw range is Int(0, 10).
// min <= max is a caller precondition and is not checked.
func Int[T constraints.Integer](min, max T) T {
	// Two's-complement subtraction keeps the span correct for signed types.
	span := uint64(max) - uint64(min) + 1
	if span == 0 {
		// The range covers every value of a 64-bit type, so the +1 wrapped
		// to zero; any draw is in range.
		return min + T(generator().Uint64())
	}
	return min + T(generator().Uint64N(span))
}

// Generate fills c with independent draws from Int(10, 99). An empty slice is
// first grown to size elements; a non-empty slice keeps its length and has
// every element overwritten. The conventional size is 10.
func Generate[S ~[]E, E constraints.Integer](c *S, size int) {
	if len(*c) == 0 {
		*c = make(S, size)
	}
	for i := range *c {
		(*c)[i] = Int(E(10), E(99))
	}
}
