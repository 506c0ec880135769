package evolve

// Option customizes a GA beyond its Config.
type Option func(*GA)

// OnGeneration registers fn to receive Stats after the initial population is
// evaluated and after every generation. Panics on nil.
func OnGeneration(fn func(Stats)) Option {
	if fn == nil {
		panic("evolve: OnGeneration(nil)")
	}

	return func(g *GA) { g.observers = append(g.observers, fn) }
}
