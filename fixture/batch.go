// SPDX-License-Identifier: MIT
// Package: domfuzz/fixture
//
// batch.go — parallel generation with in-order delivery.

package fixture

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/domfuzz/config"
	"github.com/katalvlaran/domfuzz/random"
	"github.com/katalvlaran/domfuzz/sampler"
)

// Sink receives fixture i of a batch. Calls are sequential and ordered by i.
// Returning an error stops the batch.
type Sink func(i int, f *Fixture) error

// Batch samples exp.DOM.Samples tuples from exp.DOM.Seed, generates them with
// up to WithJobs workers and hands them to sink in sample order. It returns
// the number of fixtures delivered.
//
// ctx is checked between fixtures; a fixture in progress always completes.
func Batch(ctx context.Context, exp *config.Experiment, sink Sink, opts ...Option) (int, error) {
	if exp == nil {
		return 0, fmt.Errorf("Batch: %w", config.ErrInvalidExperiment)
	}
	if err := exp.Validate(); err != nil {
		return 0, fmt.Errorf("Batch: %w", err)
	}
	cfg := newConfig(opts...)

	r := random.New(exp.DOM.Seed, cfg.randOpts...)
	params, err := sampler.Sample(r, exp.DOM.Bounds, exp.DOM.Samples, exp.DOM.TagMap,
		sampler.WithObserver(cfg.metrics.SamplerObserver()))
	if err != nil {
		return 0, fmt.Errorf("Batch: %w", err)
	}
	cfg.logger.Info("batch sampled", "seed", r.Seed(), "samples", len(params), "jobs", cfg.jobs)

	cssOpts := CSSOptionsFrom(exp.CSS)
	requests := make([]Request, len(params))
	for i, p := range params {
		requests[i] = Request{Params: p, CSS: cssOpts, Indent: exp.Indent}
	}

	return run(ctx, requests, sink, cfg)
}

// GenerateAll is Batch over explicit requests.
func GenerateAll(ctx context.Context, requests []Request, sink Sink, opts ...Option) (int, error) {
	return run(ctx, requests, sink, newConfig(opts...))
}

func run(parent context.Context, requests []Request, sink Sink, cfg options) (int, error) {
	if len(requests) == 0 {
		return 0, nil
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var (
		results = make([]*Fixture, len(requests))
		done    = make([]chan struct{}, len(requests))
		// bounds fixtures generated but not yet delivered
		window = make(chan struct{}, 2*cfg.jobs)
		fed    = make(chan struct{})
	)
	for i := range done {
		done[i] = make(chan struct{})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.jobs)

	go func() {
		defer close(fed)
		for i := range requests {
			select {
			case window <- struct{}{}:
			case <-gctx.Done():
				return
			}
			g.Go(func() error {
				defer close(done[i])
				if err := gctx.Err(); err != nil {
					return err
				}
				f, err := generate(requests[i], cfg)
				if err != nil {
					return fmt.Errorf("fixture %d: %w", i, err)
				}
				results[i] = f
				return nil
			})
		}
	}()

	var (
		delivered int
		sinkErr   error
	)
deliver:
	for i := range requests {
		select {
		case <-done[i]:
		case <-gctx.Done():
			break deliver
		}
		if results[i] == nil {
			break
		}
		if err := sink(i, results[i]); err != nil {
			sinkErr = fmt.Errorf("sink %d: %w", i, err)
			break
		}
		results[i] = nil
		delivered++
		<-window
	}

	cancel()
	<-fed
	werr := g.Wait()

	switch {
	case sinkErr != nil:
		return delivered, sinkErr
	case delivered == len(requests):
		return delivered, nil
	case werr != nil && !errors.Is(werr, context.Canceled):
		return delivered, werr
	case parent.Err() != nil:
		return delivered, parent.Err()
	default:
		return delivered, werr
	}
}
