// Package mapper holds the three table-driven symbol mappings of the random
// function machine:
//
//   - InputMapper  — first layer: raw input symbols (runes of an Alphabet) to
//     integers in [0, alphabet size]. Symbols outside the learned Alphabet are
//     silently dropped; this filtering is part of the contract, not an error.
//   - TypeMapper   — general layer: objects [0, nObjects] to types [0, nTypes],
//     applied identically to every level of a fold hierarchy.
//   - OutputMapper — types [0, nTypes] to output symbols [0, nOutputs], 1:1.
//
// Every mapper stores its state in a table.Table and exposes Set/Values in a
// fixed key order, which is the order of its chromosome slice:
//
//	InputMapper:  alphabet ids in first-use order
//	TypeMapper:   object ids 0..nObjects
//	OutputMapper: type ids 0..nTypes
package mapper
