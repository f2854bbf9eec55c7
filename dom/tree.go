package dom

// Tree is the result of one Generate call.
type Tree struct {
	// Nodes are the top-level siblings, children of the conceptual root.
	Nodes []Node
	// IDs lists every element id in issuance order.
	IDs []string
}

// CountNodes returns the number of element and text nodes.
func (t *Tree) CountNodes() int {
	var n int
	Walk(t.Nodes, func(Node, int) bool {
		n++
		return true
	})

	return n
}

// ElementCount returns the number of elements.
func (t *Tree) ElementCount() int {
	var n int
	Walk(t.Nodes, func(node Node, _ int) bool {
		if _, ok := node.(*Element); ok {
			n++
		}
		return true
	})

	return n
}

// TextCount returns the number of text nodes.
func (t *Tree) TextCount() int {
	return t.CountNodes() - t.ElementCount()
}

// MaxElementDepth returns the deepest element level, 1 for top-level
// elements and 0 for a tree without elements.
func (t *Tree) MaxElementDepth() int {
	var max int
	Walk(t.Nodes, func(node Node, depth int) bool {
		if _, ok := node.(*Element); ok && depth > max {
			max = depth
		}
		return true
	})

	return max
}

// Render serializes the tree with the default Renderer.
func (t *Tree) Render(indentUnit string) string {
	return Render(t.Nodes, indentUnit)
}
