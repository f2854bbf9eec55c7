// Package css generates random CSS rules whose selectors target the tags and
// ids of a generated DOM fragment.
//
// A selector is a chain of compound selectors. Each compound starts with a
// subject drawn from a weighted tag table ("*" for the universal selector),
// followed by qualifiers drawn from the simple-selector table until "end"
// comes up:
//
//	id     → #<random id from the pool>
//	class  → .<random class from the pool>
//	end    → stop qualifying
//
// An id or class draw against an empty pool is discarded and redrawn.
// Compounds are joined by combinators drawn from the combinator table until
// "end":
//
//	descendant → " "    child → ">"    adjacentSibling → "+"    generalSibling → "~"
//
// Every rule is "<selector> { <property body> }". Usage counts how often each
// kind was emitted; "end" is never counted.
//
// All draws come from the caller's random.Sampler, so a fixture's CSS replays
// from the same seed as its markup when both share one stream.
package css
