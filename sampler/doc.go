// Package sampler draws random (branchiness, depthicity, seed) triples for the
// DOM generator while keeping the predicted size of every accepted tree
// under a ceiling.
//
// The predicted size is the node count of a complete b-ary tree of depth d:
//
//	b == 1:  d
//	b >= 2:  ⌊(b^(d+1) − 1) / (b − 1)⌋
//
// For b ≥ 2 the count includes the conceptual <body> root the fragment hangs
// from, so a fully branched tree holds predicted−1 elements.
//
// Sample is rejection sampling: b and d are drawn uniformly from their
// inclusive ranges, a seed is drawn from [0, 2^32−1], and the triple is kept
// iff its predicted size fits. Feasibility of the minimum corner is checked
// before the first draw, so an impossible request fails instead of looping.
//
// Determinism: the sequence of returned Params depends only on the Random's
// seed and the Bounds.
package sampler
