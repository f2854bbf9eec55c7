// Package domfuzz generates deterministic HTML fragments and CSS selectors
// for differential testing of browser engines.
//
// 🚀 What is domfuzz?
//
//	A seeded fixture generator where every document is reproducible from
//	one replay tuple (tagMap, branchiness, depthicity, seed):
//		• Random: Alea stream bit-compatible with seedrandom, optional PCG
//		• Tag maps: weighted parent → child tables (alexa, simple, custom)
//		• Sampler: rejection sampling of shape parameters under a node budget
//		• DOM: random trees with unique ids, rendered to indented markup
//		• CSS: random compound selectors over the generated ids
//		• Fixtures: DOM + CSS on one stream, batches in parallel, in order
//
// Packages:
//
//	random/   — Alea/PCG sources, Uniform, RandInt, WeightedChoice
//	tagmap/   — TagMap, built-in presets, Registry, void/attribute tables
//	sampler/  — Params, Bounds, PredictedNodeCount, Sample
//	dom/      — Generate, Tree, Renderer, id schemes
//	css/      — GenerateRules, selector usage counters
//	fixture/  — Generate, Batch, Prometheus metrics
//	metadata/ — replay records, JSON lines, CSV, msgpack corpus
//	config/   — experiment files (YAML/JSON) and domfuzz.toml
//	stats/    — shape of markup parsed back with an HTML5 parser
//	server/   — fixtures over HTTP
//	cmd/domfuzz — the CLI
//
// Quick example:
//
//	domfuzz generate -t simple -b 2 -d 2 --seed 42
//
//	<div id="i0">
//	  <div id="i1">
//	    divdiv
//	  </div>
//	  …
//
//	go install github.com/katalvlaran/domfuzz/cmd/domfuzz@latest
package domfuzz
