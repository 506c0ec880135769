package attention

// Option customizes a Selector at construction.
type Option func(*Selector)

// WithPolicy sets the selection rule. Panics on nil.
func WithPolicy(p Policy) Option {
	if p == nil {
		panic("attention: WithPolicy(nil)")
	}

	return func(s *Selector) { s.policy = p }
}
