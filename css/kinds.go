package css

// Selector and combinator kinds as they appear in weight tables and Usage.
const (
	KindTag       = "tag"
	KindUniversal = "universal"
	KindID        = "id"
	KindClass     = "class"
	KindEnd       = "end"

	Descendant      = "descendant"
	Child           = "child"
	AdjacentSibling = "adjacentSibling"
	GeneralSibling  = "generalSibling"
)

// Universal is the subject key rendered as the universal selector.
const Universal = "*"

var combinatorTokens = map[string]string{
	Descendant:      " ",
	Child:           ">",
	AdjacentSibling: "+",
	GeneralSibling:  "~",
}
