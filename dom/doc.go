// Package dom builds random element/text trees from a tag map and serializes
// them to markup.
//
// Generation walks the tag map from a conceptual <body> root. At every level
// it draws exactly branchiness children from the parent's weighted table:
//
//   - the text key, or any draw at depth ≥ depthicity, emits a text node whose
//     content is the parent tag name; a text node directly following another
//     is merged into it;
//   - any other key emits an element with a fresh id and, when that tag has
//     children of its own in the map, recurses one level deeper.
//
// Ids come from a single counter per run ("i0", "i1", … "ia", … base 36), so
// they are unique across the whole tree and valid CSS identifiers. By default
// an element takes its id before its children (document order);
// WithPostOrderIDs restores the children-first numbering used by older
// corpora.
//
// Render serializes the forest pre-order, one node per line, indenting each
// level by a caller-chosen unit, emitting the mandatory attributes of a few
// tags and omitting body and end tag for void elements. Output is a pure
// function of (tree, indent unit).
package dom
