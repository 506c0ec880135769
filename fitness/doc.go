// Package fitness scores chromosomes by the classification accuracy of the
// pipeline they decode into.
//
// Evaluate is the optimizer's objective:
//
//  1. Decode the chromosome into the pipeline (invalid genomes fail fast).
//  2. Training accuracy over the training partition, or over BatchSize draws
//     with replacement in stochastic mode.
//  3. When ReportHeldOut is set, held-out accuracy over the test partition
//     (stochastic: max(1, BatchSize/2) draws). A held-out score above every
//     earlier one hands the chromosome to the Store.
//  4. Return the training accuracy.
//
// Predictions use the pipeline's decision rule; an empty output counts as
// pipeline.FallbackClass.
//
// Concurrency: an Evaluator owns its pipeline and sampling stream; Evaluate
// serializes callers with a mutex, so one Evaluator may back a concurrent
// optimizer, though evaluations do not overlap.
package fitness
