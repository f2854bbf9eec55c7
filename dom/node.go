// SPDX-License-Identifier: MIT
// Package: domfuzz/dom
//
// node.go — the two node variants of a generated tree.

package dom

// Node is either an *Element or a *Text. The set is closed: the unexported
// method keeps other packages from adding variants, so type switches over
// Node are exhaustive.
type Node interface {
	node()
}

// Element is a tag with a unique id and zero or more children.
type Element struct {
	Tag      string
	ID       string
	Children []Node
}

// Text is a run of character data.
type Text struct {
	Content string
}

func (*Element) node() {}
func (*Text) node()    {}

// Walk visits nodes pre-order. depth is 1 for the nodes passed in and grows
// by one per element level. Returning false from fn skips that node's
// children.
func Walk(nodes []Node, fn func(n Node, depth int) bool) {
	walk(nodes, 1, fn)
}

func walk(nodes []Node, depth int, fn func(Node, int) bool) {
	for _, n := range nodes {
		if !fn(n, depth) {
			continue
		}
		if el, ok := n.(*Element); ok {
			walk(el.Children, depth+1, fn)
		}
	}
}
