// SPDX-License-Identifier: MIT
// Package: domfuzz/fixture
//
// fixture.go — one replay tuple to one document.

package fixture

import (
	"fmt"
	"time"

	"github.com/katalvlaran/domfuzz/config"
	"github.com/katalvlaran/domfuzz/css"
	"github.com/katalvlaran/domfuzz/dom"
	"github.com/katalvlaran/domfuzz/metadata"
	"github.com/katalvlaran/domfuzz/random"
	"github.com/katalvlaran/domfuzz/sampler"
)

// CSSOptions requests a style block. The rule count is drawn from
// [MinRuleCount, MaxRuleCount] after the tree.
type CSSOptions struct {
	MinRuleCount    int64
	MaxRuleCount    int64
	Subjects        *random.Weights
	SimpleSelectors *random.Weights
	Combinators     *random.Weights
	PropertyBody    string
	Classes         []string
}

// CSSOptionsFrom converts experiment CSS arguments; nil yields nil.
func CSSOptionsFrom(args *config.CSSArgs) *CSSOptions {
	if args == nil {
		return nil
	}

	return &CSSOptions{
		MinRuleCount:    args.MinRuleCount,
		MaxRuleCount:    args.MaxRuleCount,
		Subjects:        args.TagMap,
		SimpleSelectors: args.SimpleSelectorMap,
		Combinators:     args.CombinatorMap,
		PropertyBody:    args.PropertyString,
		Classes:         args.Classes,
	}
}

// DefaultCSSOptions returns the selector tables used when a caller asks for
// CSS without supplying its own.
func DefaultCSSOptions() *CSSOptions {
	return &CSSOptions{
		MinRuleCount: 1,
		MaxRuleCount: 20,
		Subjects:     random.NewWeights(random.P("div", 4), random.P("span", 2), random.P("a", 1), random.P(css.Universal, 1)),
		SimpleSelectors: random.NewWeights(
			random.P(css.KindEnd, 3), random.P(css.KindID, 1), random.P(css.KindClass, 1)),
		Combinators: random.NewWeights(
			random.P(css.KindEnd, 2), random.P(css.Descendant, 1), random.P(css.Child, 1),
			random.P(css.AdjacentSibling, 1), random.P(css.GeneralSibling, 1)),
		PropertyBody: "color: red",
	}
}

// Request is the input of Generate.
type Request struct {
	Params sampler.Params
	CSS    *CSSOptions
	Indent string
}

// Fixture is one generated document.
type Fixture struct {
	// Document is HTML, prefixed by "<style>CSS</style>\n" when CSS was
	// requested.
	Document string
	HTML     string
	CSS      string
	Tree     *dom.Tree
	Metadata metadata.Record
}

// Generate runs the pipeline for req. Params.Seed 0 derives a seed from the
// clock; the seed actually used is in Metadata.Seed.
func Generate(req Request, opts ...Option) (*Fixture, error) {
	cfg := newConfig(opts...)

	return generate(req, cfg)
}

func generate(req Request, cfg options) (*Fixture, error) {
	start := time.Now()
	p := req.Params

	f, err := build(req, cfg)
	if err != nil {
		cfg.metrics.fail(p.TagMap)
		cfg.logger.Warn("fixture failed", "params", p.String(), "error", err)
		return nil, err
	}

	cfg.metrics.observe(f, time.Since(start))
	cfg.logger.Debug("fixture generated",
		"seed", f.Metadata.Seed, "branchiness", p.Branchiness, "depthicity", p.Depthicity,
		"tagMap", p.TagMap, "nodes", f.Metadata.NodeCount, "rules", f.Metadata.RuleCount)

	return f, nil
}

func build(req Request, cfg options) (*Fixture, error) {
	p := req.Params
	tm, err := cfg.registry.Lookup(p.TagMap)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	r := random.New(p.Seed, cfg.randOpts...)
	tree, err := dom.Generate(r, tm, p.Branchiness, p.Depthicity, cfg.domOpts...)
	if err != nil {
		return nil, fmt.Errorf("Generate(%s): %w", p, err)
	}

	f := &Fixture{
		HTML: tree.Render(req.Indent),
		Tree: tree,
		Metadata: metadata.Record{
			Branchiness:  p.Branchiness,
			Depthicity:   p.Depthicity,
			TagMap:       p.TagMap,
			Seed:         r.Seed(),
			Source:       cfg.source,
			NodeCount:    tree.CountNodes(),
			ElementCount: tree.ElementCount(),
			IDs:          tree.IDs,
		},
	}
	f.Document = f.HTML

	if req.CSS == nil {
		return f, nil
	}

	ruleCount := r.RandInt(req.CSS.MinRuleCount, req.CSS.MaxRuleCount)
	res, err := css.GenerateRules(r, css.Spec{
		Subjects:        req.CSS.Subjects,
		SimpleSelectors: req.CSS.SimpleSelectors,
		Combinators:     req.CSS.Combinators,
		Classes:         req.CSS.Classes,
		IDs:             tree.IDs,
		PropertyBody:    req.CSS.PropertyBody,
		RuleCount:       int(ruleCount),
	})
	if err != nil {
		return nil, fmt.Errorf("Generate(%s): %w", p, err)
	}

	f.CSS = res.Render()
	f.Document = "<style>" + f.CSS + "</style>\n" + f.HTML
	f.Metadata.RuleCount = len(res.Rules)
	for kind, n := range res.SelectorsUsed.All() {
		f.Metadata.SelectorsUsed = append(f.Metadata.SelectorsUsed, metadata.Count{Kind: kind, N: n})
	}

	return f, nil
}
