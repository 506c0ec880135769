// Package table - RNG utilities shared by every randomly initialized stage.
//
// Goals:
//   - Determinism: same seed ⇒ identical tables across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use DeriveRand to create independent streams (e.g., a sampling stream next
//     to the initialization stream).
package table

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed==0 or a nil RNG.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the provided seed verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// OrDefault resolves a nil RNG to a fresh default deterministic stream.
// Resolve once per constructor, never per draw.
func OrDefault(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return NewRand(0)
	}

	return rng
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// using a SplitMix64-style finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRand creates an independent deterministic RNG stream from base and a
// stream identifier. If base==nil, DefaultSeed is the parent; otherwise
// base.Int63() is consumed once so repeated derivations differ.
//
// Complexity: O(1).
func DeriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = DefaultSeed
	} else {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// Uniform draws an integer uniformly from the closed range [0, max].
// rng must be non-nil (see OrDefault); max<=0 yields 0 without consuming rng.
//
// Complexity: O(1).
func Uniform(rng *rand.Rand, max int) int {
	if max <= 0 {
		return 0
	}

	return rng.Intn(max + 1)
}
