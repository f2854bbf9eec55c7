// Package stats measures the shape of markup by parsing it back.
//
// The parser is used for measurement only: whatever tree an HTML5 parser
// builds from the fragment is what gets counted, which for tag maps with
// content-model conflicts (tables, nested anchors) may differ from the
// generated tree. <style> elements are not counted as part of the shape;
// their rule lines are reported separately.
package stats

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TagCount is the number of elements with one tag name.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Stats summarizes one fragment. Depth is 1 for top-level elements; the
// branch factor of an element is its number of element and non-blank text
// children.
type Stats struct {
	Elements         int        `json:"elements"`
	Texts            int        `json:"texts"`
	IDs              int        `json:"ids"`
	MeanBranchFactor float64    `json:"meanBranchFactor"`
	MaxBranchFactor  int        `json:"maxBranchFactor"`
	MeanDepth        float64    `json:"meanDepth"`
	MaxDepth         int        `json:"maxDepth"`
	StyleRules       int        `json:"styleRules"`
	Tags             []TagCount `json:"tags"`
}

// Nodes returns Elements + Texts.
func (s Stats) Nodes() int {
	return s.Elements + s.Texts
}

// Gather parses r as a fragment in a <body> context and measures it.
func Gather(r io.Reader) (Stats, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(r, ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("Gather: %w", err)
	}

	return GatherNodes(nodes), nil
}

// GatherNodes measures already parsed top-level nodes.
func GatherNodes(nodes []*html.Node) Stats {
	var (
		s        Stats
		branches int
		depths   int
		tags     = make(map[string]int)
	)

	var visit func(n *html.Node, depth int)
	visit = func(n *html.Node, depth int) {
		switch n.Type {
		case html.TextNode:
			if strings.TrimSpace(n.Data) != "" {
				s.Texts++
			}
		case html.ElementNode:
			if n.DataAtom == atom.Style {
				s.StyleRules += countRules(n)
				return
			}
			s.Elements++
			tags[n.Data]++
			depths += depth
			if depth > s.MaxDepth {
				s.MaxDepth = depth
			}
			for _, a := range n.Attr {
				if a.Key == "id" {
					s.IDs++
					break
				}
			}

			bf := 0
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if counts(c) {
					bf++
				}
				visit(c, depth+1)
			}
			branches += bf
			if bf > s.MaxBranchFactor {
				s.MaxBranchFactor = bf
			}
		}
	}
	for _, n := range nodes {
		visit(n, 1)
	}

	if s.Elements > 0 {
		s.MeanBranchFactor = float64(branches) / float64(s.Elements)
		s.MeanDepth = float64(depths) / float64(s.Elements)
	}
	s.Tags = make([]TagCount, 0, len(tags))
	for tag, n := range tags {
		s.Tags = append(s.Tags, TagCount{Tag: tag, Count: n})
	}
	sort.Slice(s.Tags, func(i, j int) bool {
		if s.Tags[i].Count != s.Tags[j].Count {
			return s.Tags[i].Count > s.Tags[j].Count
		}
		return s.Tags[i].Tag < s.Tags[j].Tag
	})

	return s
}

func counts(n *html.Node) bool {
	switch n.Type {
	case html.ElementNode:
		return n.DataAtom != atom.Style
	case html.TextNode:
		return strings.TrimSpace(n.Data) != ""
	}

	return false
}

// countRules counts non-blank lines of a style element's text.
func countRules(style *html.Node) int {
	var n int
	for c := style.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.TextNode {
			continue
		}
		for _, line := range strings.Split(c.Data, "\n") {
			if strings.TrimSpace(line) != "" {
				n++
			}
		}
	}

	return n
}
