package dom

import "github.com/katalvlaran/domfuzz/tagmap"

// Option configures Generate.
type Option func(*config)

type config struct {
	idFn      IDFn
	root      string
	postOrder bool
}

func newConfig(opts ...Option) config {
	c := config{idFn: DefaultIDFn, root: tagmap.Root}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithIDScheme replaces the id scheme. Panics if fn is nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("dom: WithIDScheme(nil)")
	}

	return func(c *config) {
		c.idFn = fn
	}
}

// WithRoot sets the parent context of the top-level nodes (default "body").
// Panics on an empty tag.
func WithRoot(tag string) Option {
	if tag == "" {
		panic("dom: WithRoot(\"\")")
	}

	return func(c *config) {
		c.root = tag
	}
}

// WithPostOrderIDs numbers an element after all of its descendants, matching
// corpora produced before ids followed document order.
func WithPostOrderIDs() Option {
	return func(c *config) {
		c.postOrder = true
	}
}
