// Package pipeline composes the stages of the random function machine and
// binds them to the chromosome layout.
//
// Data flow:
//
//	[]rune ─InputMapper→ objects ─Structure.Make→ hierarchy
//	       ─TypeMapper (every level)→ typed hierarchy ─Selector.Filter→ types
//	       ─Computer.Compute→ emitted types ─OutputMapper→ output symbols
//
// Decision rule: the predicted class is the last output symbol; an empty
// output predicts FallbackClass, for inference and evaluation alike.
//
// Lifecycle: every table is drawn at New from the injected RNG, wholly
// replaced by Decode, and otherwise never changes. Compute is a pure function
// of the current tables. A Pipeline is not safe for concurrent use: Decode
// and Compute share the stage tables, so callers that evaluate from several
// goroutines serialize access (see package fitness).
//
// ⚙️ Usage:
//
//	alpha := mapper.NewAlphabet()
//	alpha.AddString("ACGT")
//	p, err := pipeline.New(alpha, sizes, pipeline.WithSeed(7))
//	if err != nil { ... }
//	if err := p.Decode(genes); err != nil { ... } // errors.Is(err, chromosome.ErrInvalidChromosome)
//	class, err := p.Predict([]rune("GATTACA"))
package pipeline
