// SPDX-License-Identifier: MIT
// Package: domfuzz/dom
//
// generate.go — recursive tree generation driven by a weighted tag map.

package dom

import (
	"fmt"

	"github.com/katalvlaran/domfuzz/random"
	"github.com/katalvlaran/domfuzz/tagmap"
)

// generator carries the per-run state: one id counter shared by every level.
type generator struct {
	r           random.Sampler
	tm          *tagmap.TagMap
	branchiness int64
	depthicity  int64
	cfg         config

	counter int
	ids     []string
}

// Generate builds a forest under the configured root (default "body").
//
// Draws are consumed strictly in document order: one WeightedChoice per child
// slot, depth-first. Given the same Random state, tag map and options the
// resulting Tree is identical.
//
// Returns ErrBadBranchiness, ErrBadDepthicity, ErrNilTagMap, or
// random.ErrEmptyInput when the root has no children in tm.
// Complexity: O(N) in the number of generated nodes.
func Generate(r random.Sampler, tm *tagmap.TagMap, branchiness, depthicity int64, opts ...Option) (*Tree, error) {
	switch {
	case branchiness < 1:
		return nil, fmt.Errorf("Generate: branchiness=%d: %w", branchiness, ErrBadBranchiness)
	case depthicity < 0:
		return nil, fmt.Errorf("Generate: depthicity=%d: %w", depthicity, ErrBadDepthicity)
	case tm == nil:
		return nil, fmt.Errorf("Generate: %w", ErrNilTagMap)
	}

	g := &generator{r: r, tm: tm, branchiness: branchiness, depthicity: depthicity, cfg: newConfig(opts...)}
	if !tm.HasChildren(g.cfg.root) {
		return nil, fmt.Errorf("Generate: tag map %q has no children for %q: %w",
			tm.Name(), g.cfg.root, random.ErrEmptyInput)
	}

	nodes, err := g.level(g.cfg.root, 0)
	if err != nil {
		return nil, err
	}

	return &Tree{Nodes: nodes, IDs: g.ids}, nil
}

// level generates the branchiness siblings under parent at depth.
func (g *generator) level(parent string, depth int64) ([]Node, error) {
	var (
		out   []Node
		width int64
	)
	for width = 0; width < g.branchiness; width++ {
		tag, err := g.r.WeightedChoice(g.tm.Children(parent))
		if err != nil {
			return nil, fmt.Errorf("Generate: children of %q: %w", parent, err)
		}

		if depth >= g.depthicity || tag == tagmap.Text {
			if n := len(out); n > 0 {
				if prev, ok := out[n-1].(*Text); ok {
					prev.Content += parent
					continue
				}
			}
			out = append(out, &Text{Content: parent})
			continue
		}

		el := &Element{Tag: tag}
		if !g.cfg.postOrder {
			el.ID = g.issue()
		}
		if g.tm.HasChildren(tag) {
			if el.Children, err = g.level(tag, depth+1); err != nil {
				return nil, err
			}
		}
		if g.cfg.postOrder {
			el.ID = g.issue()
		}
		out = append(out, el)
	}

	return out, nil
}

func (g *generator) issue() string {
	var id string
	id, g.counter = nextID(g.cfg.idFn, g.counter)
	g.ids = append(g.ids, id)

	return id
}
