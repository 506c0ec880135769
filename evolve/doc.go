// Package evolve is a steady, generational genetic algorithm over flat
// integer genomes whose genes each live in their own inclusive range.
//
// It is the optimizer the pipeline's chromosome codec was shaped for: the
// layout's Ranges become the allele sets, and a fitness.Evaluator becomes the
// objective. Nothing here knows about pipelines, so any FitnessFunc works.
//
// ✨ Operators:
//   - Initialization: every gene uniform in its range.
//   - Selection: k-way tournament (k = TournamentSize, capped at Population).
//   - Crossover: single cut point, applied with probability CrossoverRate.
//   - Mutation: each gene independently redrawn from its range with
//     probability MutationRate.
//   - Elitism: the Elitism fittest individuals survive unchanged.
//
// ⚙️ Determinism: one *rand.Rand seeded from Config.Seed (0 ⇒ table.DefaultSeed)
// drives every draw and evaluations run in population order, so a fixed seed
// and a deterministic FitnessFunc reproduce the same run.
//
// Complexity per generation: O(P·(L + k) + P·T_eval) for population P, genome
// length L, tournament size k and fitness cost T_eval.
package evolve
