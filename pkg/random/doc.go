// Package random provides small pseudo-random integer helpers backed by a
// single process-wide generator.
//
// The generator is created lazily on first use, seeded from crypto/rand, and
// lives for the lifetime of the process; it is never reseeded or torn down.
// Draws from it are NOT synchronized: concurrent calls from multiple
// goroutines are a data race by contract, not a defect. Callers needing
// concurrent generation must bring their own generator or serialize access
// externally.
//
// # Usage
//
// Bounded draw, both bounds inclusive:
//
//	n := random.Int(0, 10) // 0 <= n <= 10
//
// Quickly filling a slice with two-digit values:
//
//	var v []int
//	random.Generate(&v, 10) // len(v) == 10, every element in [10, 99]
package random
