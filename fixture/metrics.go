// SPDX-License-Identifier: MIT
// Package: domfuzz/fixture
//
// metrics.go — Prometheus collectors for the pipeline.

package fixture

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/domfuzz/sampler"
)

// Metrics groups the pipeline collectors on a private registry. A nil
// *Metrics records nothing. Safe for concurrent use.
type Metrics struct {
	reg *prometheus.Registry

	fixtures *prometheus.CounterVec
	failures *prometheus.CounterVec
	draws    *prometheus.CounterVec
	nodes    prometheus.Histogram
	rules    prometheus.Histogram
	duration prometheus.Histogram
}

// NewMetrics creates and registers the collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		fixtures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "domfuzz_fixtures_generated_total",
				Help: "Fixtures generated, by tag map",
			},
			[]string{"tag_map"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "domfuzz_fixture_failures_total",
				Help: "Fixture generations that returned an error, by tag map",
			},
			[]string{"tag_map"},
		),
		draws: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "domfuzz_sampler_draws_total",
				Help: "Parameter draws by outcome (accepted or rejected)",
			},
			[]string{"outcome"},
		),
		nodes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "domfuzz_fixture_nodes",
			Help:    "Element and text nodes per fixture",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		rules: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "domfuzz_fixture_rules",
			Help:    "CSS rules per fixture",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "domfuzz_fixture_generate_seconds",
			Help:    "Wall time of one Generate call",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
	}
	m.reg.MustRegister(m.fixtures, m.failures, m.draws, m.nodes, m.rules, m.duration)

	return m
}

// Registry exposes the collectors, e.g. for promhttp.HandlerFor.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}

// WriteToTextfile writes the current values in the node-exporter textfile
// format, atomically.
func (m *Metrics) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}

// SamplerObserver counts accepted and rejected draws.
func (m *Metrics) SamplerObserver() sampler.Observer {
	return func(_ sampler.Params, accepted bool) {
		if m == nil {
			return
		}
		if accepted {
			m.draws.WithLabelValues("accepted").Inc()
		} else {
			m.draws.WithLabelValues("rejected").Inc()
		}
	}
}

func (m *Metrics) observe(f *Fixture, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.fixtures.WithLabelValues(f.Metadata.TagMap).Inc()
	m.nodes.Observe(float64(f.Metadata.NodeCount))
	m.rules.Observe(float64(f.Metadata.RuleCount))
	m.duration.Observe(elapsed.Seconds())
}

func (m *Metrics) fail(tagMap string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(tagMap).Inc()
}
