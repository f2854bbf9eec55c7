package sampler

// Observer is called once per draw with the candidate and whether it was
// accepted.
type Observer func(p Params, accepted bool)

// Option configures Sample.
type Option func(*config)

type config struct {
	observers []Observer
}

func newConfig(opts ...Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

func (c config) observe(p Params, accepted bool) {
	for _, fn := range c.observers {
		fn(p, accepted)
	}
}

// WithObserver registers fn to see every draw, accepted or rejected.
// Panics if fn is nil.
func WithObserver(fn Observer) Option {
	if fn == nil {
		panic("sampler: WithObserver(nil)")
	}

	return func(c *config) {
		c.observers = append(c.observers, fn)
	}
}
