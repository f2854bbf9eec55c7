package fixture

import (
	"log/slog"
	"runtime"

	"github.com/katalvlaran/domfuzz/dom"
	"github.com/katalvlaran/domfuzz/internal/logging"
	"github.com/katalvlaran/domfuzz/random"
	"github.com/katalvlaran/domfuzz/tagmap"
)

// Option configures Generate and Batch.
type Option func(*options)

type options struct {
	registry *tagmap.Registry
	logger   *slog.Logger
	metrics  *Metrics
	source   string
	randOpts []random.Option
	domOpts  []dom.Option
	jobs     int
}

func newConfig(opts ...Option) options {
	c := options{
		logger: logging.NewNop(),
		source: random.SourceAlea,
		jobs:   runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.registry == nil {
		c.registry = tagmap.NewRegistry()
	}

	return c
}

// WithRegistry resolves tag map names through reg instead of the built-ins.
// Panics if reg is nil.
func WithRegistry(reg *tagmap.Registry) Option {
	if reg == nil {
		panic("fixture: WithRegistry(nil)")
	}

	return func(c *options) {
		c.registry = reg
	}
}

// WithLogger sets the logger. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("fixture: WithLogger(nil)")
	}

	return func(c *options) {
		c.logger = l
	}
}

// WithMetrics records pipeline metrics into m. Panics if m is nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("fixture: WithMetrics(nil)")
	}

	return func(c *options) {
		c.metrics = m
	}
}

// WithSource selects the random stream by name (random.SourceAlea or
// random.SourcePCG). The name is recorded in each fixture's metadata; ""
// selects and records random.SourceAlea. Panics on an unknown name.
func WithSource(name string) Option {
	opt, ok := random.SourceByName(name)
	if !ok {
		panic("fixture: unknown random source " + name)
	}
	if name == "" {
		name = random.SourceAlea
	}

	return func(c *options) {
		c.source = name
		c.randOpts = append(c.randOpts, opt)
	}
}

// WithRandomOptions passes extra options to every random.New call.
func WithRandomOptions(opts ...random.Option) Option {
	return func(c *options) {
		c.randOpts = append(c.randOpts, opts...)
	}
}

// WithDOMOptions passes options to every dom.Generate call.
func WithDOMOptions(opts ...dom.Option) Option {
	return func(c *options) {
		c.domOpts = append(c.domOpts, opts...)
	}
}

// WithJobs bounds Batch concurrency. Values < 1 mean GOMAXPROCS.
func WithJobs(n int) Option {
	return func(c *options) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		c.jobs = n
	}
}
