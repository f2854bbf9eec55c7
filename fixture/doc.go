// Package fixture runs the full generation pipeline:
//
//	params → DOM tree → markup → (ids) → CSS rules → document + metadata
//
// Generate produces one Fixture from a replay tuple. All draws of a fixture
// (tree, rule count, rules) come from one random stream seeded by
// Params.Seed, so the tuple alone reproduces the document byte for byte.
//
// Batch samples tuples from an experiment and generates them on a bounded
// worker pool. Each fixture owns its stream; the sink still sees fixtures in
// sample order, so a parallel batch is indistinguishable from a sequential
// one.
package fixture
