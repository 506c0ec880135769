// Package funcbank implements the recursive function-bank computer.
//
// A Computer owns nFunctions random functions, each a table from types
// [0, nTypes] to types [0, nTypes], and a Path grid of depth×maxInput function
// indices in [0, nFunctions). Type 0 is the terminal signal.
//
// Algorithm Outline:
//  1. Copy the selected types into a working buffer; clear every frozen flag.
//  2. For pass = 0..depth-1, for i in [0, min(maxInput, len−2)):
//     skip frozen positions;
//     r = F[Path[pass][i]][work[i]];
//     r == 0 ⇒ emit work[i] (the value before the transition) and freeze i;
//     otherwise work[i] = r.
//  3. Return the emitted values in emission order.
//
// The last two positions of the buffer are never routed. A position that
// never reaches 0 within depth passes contributes nothing, so the output may
// be empty and never exceeds min(maxInput, len−2) values.
//
// Only the Path grid is part of the chromosome; function tables are drawn once
// at construction and stay fixed for the life of the Computer.
//
// Complexity: O(depth · maxInput) per Compute.
package funcbank
