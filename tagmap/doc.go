// Package tagmap is the tag/content model driving DOM generation.
//
// A TagMap answers one question: given a parent tag, which child tag should
// come next, and how often? Each parent maps to an ordered random.Weights
// table whose keys are child tag names; the empty key ("") means "emit text
// here instead of an element".
//
// Presets:
//
//	alexa:  tag usage frequencies measured over popular real-world pages,
//	        shipped as the embedded, versioned asset presets/alexa.json.
//	simple: <div> only. Divs nest indefinitely, which makes this the map of
//	        choice for deep, degenerate trees.
//
// The package also owns the markup facts the renderer needs: the mandatory
// attributes of a few tags (an <a> without href or an <img> without src is
// uninteresting to a layout engine) and the set of void elements that never
// take children or a closing tag.
//
// TagMaps are immutable after construction and safe for concurrent reads.
package tagmap
