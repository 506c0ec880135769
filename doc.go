// Package rfm is a random function machine: an evolvable symbolic pipeline
// that maps symbol sequences to classes, plus the codec that flattens all of
// its learnable tables into one integer chromosome.
//
// 🚀 Data flow
//
//	symbols ─▶ InputMapper ─▶ FoldingStructure ─▶ TypeMapper (per level)
//	        ─▶ AttentionSelector ─▶ FunctionBankComputer ─▶ OutputMapper ─▶ class
//
// Every stage is a lookup table drawn at random once and then searched by an
// external optimizer through the chromosome; nothing is trained by gradients.
//
// ✨ Packages
//
//	table/      — bounded integer lookup tables and the deterministic RNG policy
//	fold/       — FoldingStructure: pairwise reduction into a level hierarchy
//	mapper/     — Alphabet, InputMapper, TypeMapper, OutputMapper
//	attention/  — AttentionSelector and its pluggable selection Policy
//	funcbank/   — FunctionBankComputer: routed random functions with freeze-on-emit
//	chromosome/ — Sizes, segment Layout, validation, JSON persistence
//	pipeline/   — composition, Decode/Encode, Predict and the decision rule
//	dataset/    — CSV records, down-sampling, train/held-out split, batches
//	fitness/    — accuracy-based objective with best-chromosome persistence
//	evolve/     — genetic optimizer over per-gene integer ranges
//	config/     — YAML experiment settings
//	cmd/rfm/    — evolve, classify and layout commands
//
// ⚙️ Determinism: every random draw flows from an injected *rand.Rand; a nil
// source means the fixed default seed, so identical settings rebuild
// identical pipelines.
//
//	go install github.com/dblibaum/random-function-machine/cmd/rfm@latest
package rfm
