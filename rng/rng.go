// Package rng - deterministic random sources shared by fitting and sampling.
//
// Every random decision in this module (optimizer tie-breaks, element draws,
// uniqueness retries) goes through an explicit *rand.Rand built here. There is
// no package-level random state and no time-based seeding.
//
// Goals:
//   - Determinism: same seed ⇒ identical fits and draws across platforms.
//   - Encapsulation: a single RNG factory; seed==0 maps to a fixed default.
//   - Independence: DeriveSeed produces decorrelated seeds so that
//     concurrent trials never share a generator.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use DeriveSeed to hand each worker its own seed before launching it.
package rng

import "math/rand"

// DefaultSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed int64 = 1

// FromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func FromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Constants are the canonical SplitMix64 multipliers/finalizer: small changes
// in either input produce large, well-distributed changes in the output.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
