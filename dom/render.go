// SPDX-License-Identifier: MIT
// Package: domfuzz/dom
//
// render.go — pre-order serialization of a node forest.
//
// Layout of one element at indent I with unit U:
//
//	I<tag id="ID" a="v">\n
//	<child₀ at I+U>\n<child₁ at I+U>…\n
//	I</tag>
//
// Void elements stop after the opening tag. A non-void element without
// children renders as I<tag id="ID"></tag>. Text renders as I+content.
// Top-level nodes are joined by "\n" with no trailing newline.

package dom

import (
	"io"
	"strings"

	"github.com/katalvlaran/domfuzz/tagmap"
)

// Renderer serializes nodes. The zero value renders no attributes and
// treats no element as void; use NewRenderer for the standard tables.
type Renderer struct {
	// Indent is prepended once per nesting level.
	Indent string
	// Attributes returns the fixed attributes emitted after id.
	Attributes func(tag string) []tagmap.Attribute
	// IsVoid reports tags rendered without body or end tag.
	IsVoid func(tag string) bool
}

// NewRenderer returns a Renderer using the tagmap attribute table and void
// element set.
func NewRenderer(indentUnit string) *Renderer {
	return &Renderer{Indent: indentUnit, Attributes: tagmap.Attributes, IsVoid: tagmap.IsVoid}
}

// Render serializes nodes with the standard tables.
func Render(nodes []Node, indentUnit string) string {
	return NewRenderer(indentUnit).Render(nodes)
}

// Render returns the markup for nodes.
func (r *Renderer) Render(nodes []Node) string {
	var sb strings.Builder
	r.forest(&sb, nodes, "")

	return sb.String()
}

// WriteTo streams the markup for nodes to w.
func (r *Renderer) WriteTo(w io.Writer, nodes []Node) (int64, error) {
	n, err := io.WriteString(w, r.Render(nodes))

	return int64(n), err
}

func (r *Renderer) forest(sb *strings.Builder, nodes []Node, indent string) {
	for i, n := range nodes {
		if i > 0 {
			sb.WriteByte('\n')
		}
		switch n := n.(type) {
		case *Element:
			r.element(sb, n, indent)
		case *Text:
			sb.WriteString(indent)
			sb.WriteString(n.Content)
		}
	}
}

func (r *Renderer) element(sb *strings.Builder, el *Element, indent string) {
	sb.WriteString(indent)
	sb.WriteByte('<')
	sb.WriteString(el.Tag)
	sb.WriteString(` id="`)
	sb.WriteString(el.ID)
	sb.WriteByte('"')
	if r.Attributes != nil {
		for _, a := range r.Attributes(el.Tag) {
			sb.WriteByte(' ')
			sb.WriteString(a.Name)
			sb.WriteString(`="`)
			sb.WriteString(a.Value)
			sb.WriteByte('"')
		}
	}
	sb.WriteByte('>')

	if r.IsVoid != nil && r.IsVoid(el.Tag) {
		return
	}
	if len(el.Children) > 0 {
		sb.WriteByte('\n')
		r.forest(sb, el.Children, indent+r.Indent)
		sb.WriteByte('\n')
		sb.WriteString(indent)
	}
	sb.WriteString("</")
	sb.WriteString(el.Tag)
	sb.WriteByte('>')
}
