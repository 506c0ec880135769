// Package table provides the ordered integer lookup table that every stage of
// the random function machine keeps its learnable state in.
//
// A Table is an explicit []int indexed by an integer key 0..Len()-1. Its
// enumeration order is ascending key, and that order is the order in which a
// stage's slice of the chromosome is read and written. Every stored value
// lies in the closed range [0, Max].
//
// 🚀 Why a dedicated type?
//
//	The chromosome contract depends on a stable key order. Maps give no such
//	guarantee, so each stage stores an array plus a documented mapping from
//	its own keys (objects, object pairs, alphabet ids, types) to array slots.
//
// ✨ Key features:
//   - New fills the table uniformly at random from an injected *rand.Rand
//   - Set replaces every value at once, or nothing at all (validated first)
//   - Values returns a copy in enumeration order (lossless round-trip)
//   - NewRand / DeriveRand implement the seed policy shared by all stages
//
// Complexity:
//
//   - Get:    O(1)
//   - Set:    O(n)
//   - Values: O(n)
package table
