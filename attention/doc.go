// Package attention selects a bounded, fixed-shape subset of a typed fold
// hierarchy for the function bank.
//
// A Selector has depth·width slots. Slot (d, w) owns two learned parameters,
// stored in slot order (depth, object, component):
//
//	params[2·(d·width + w) + 0] = anchor  ∈ [0, nTypes]
//	params[2·(d·width + w) + 1] = probe   ∈ [0, nTypes]
//
// Filter visits the slots in that order and asks a Policy to pick at most one
// type from hierarchy level d. Missing or empty levels leave their slots
// unpopulated, so the output length never exceeds depth·width regardless of
// how deep the hierarchy is.
//
// The default Policy is AnchorSuccessor:
//
//	start at position probe mod len(level), scan cyclically for the first
//	position j with level[j] == anchor; when found, select the type that
//	follows it, level[(j+1) mod len(level)].
//
// Policy is an extension point: WithPolicy swaps the rule without changing
// the parameter layout, the value ranges or the output bound.
package attention
