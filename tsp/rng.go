// Package tsp - RNG utilities for randomized neighbourhood scans.
//
// Determinism: same seed ⇒ identical scan order. math/rand.Rand is not
// goroutine-safe; every refinement run creates its own stream.
package tsp

import "math/rand"

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed == 0 selects defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// cyclic maps step t of a scan over [lo, lo+span) to an index shifted by off.
func cyclic(lo, span, off, t int) int {
	return lo + (t+off)%span
}

// offset draws a cyclic offset in [0, span) or returns 0 without an RNG.
func offset(rng *rand.Rand, span int) int {
	if rng == nil || span <= 1 {
		return 0
	}
	return rng.Intn(span)
}
