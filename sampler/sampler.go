// SPDX-License-Identifier: MIT
// Package: domfuzz/sampler
//
// sampler.go — predicted node count and rejection sampling of DOM params.

package sampler

import (
	"fmt"
	"math"

	"github.com/katalvlaran/domfuzz/random"
)

// maxSeed is the largest seed a sampled Params can carry.
const maxSeed = math.MaxUint32

// Params is one accepted draw: everything needed to replay a fragment.
type Params struct {
	Branchiness int64  `json:"branchiness" yaml:"branchiness" msgpack:"branchiness"`
	Depthicity  int64  `json:"depthicity" yaml:"depthicity" msgpack:"depthicity"`
	Seed        uint32 `json:"seed" yaml:"seed" msgpack:"seed"`
	TagMap      string `json:"tagMap" yaml:"tagMap" msgpack:"tagMap"`
}

// String renders p as a compact replay tuple.
func (p Params) String() string {
	return fmt.Sprintf("b=%d d=%d seed=%d tagMap=%s", p.Branchiness, p.Depthicity, p.Seed, p.TagMap)
}

// Bounds are the inclusive sampling ranges plus the size ceiling.
type Bounds struct {
	MinBranchiness int64 `json:"minBranchiness" yaml:"minBranchiness" toml:"min_branchiness"`
	MaxBranchiness int64 `json:"maxBranchiness" yaml:"maxBranchiness" toml:"max_branchiness"`
	MinDepthicity  int64 `json:"minDepthicity" yaml:"minDepthicity" toml:"min_depthicity"`
	MaxDepthicity  int64 `json:"maxDepthicity" yaml:"maxDepthicity" toml:"max_depthicity"`
	MaxNodeCount   int64 `json:"maxNodeCount" yaml:"maxNodeCount" toml:"max_node_count"`
}

// Validate checks domains and ordering; it does not check feasibility.
func (b Bounds) Validate() error {
	if err := b.validateDomains(); err != nil {
		return err
	}

	return b.validateOrder()
}

func (b Bounds) validateDomains() error {
	switch {
	case b.MinBranchiness < 1:
		return fmt.Errorf("Bounds: minBranchiness=%d < 1: %w", b.MinBranchiness, ErrInvalidBounds)
	case b.MinDepthicity < 0:
		return fmt.Errorf("Bounds: minDepthicity=%d < 0: %w", b.MinDepthicity, ErrInvalidBounds)
	case b.MaxNodeCount < 0:
		return fmt.Errorf("Bounds: maxNodeCount=%d < 0: %w", b.MaxNodeCount, ErrInvalidBounds)
	}

	return nil
}

func (b Bounds) validateOrder() error {
	switch {
	case b.MaxBranchiness < b.MinBranchiness:
		return fmt.Errorf("Bounds: branchiness [%d, %d]: %w", b.MinBranchiness, b.MaxBranchiness, ErrInvalidBounds)
	case b.MaxDepthicity < b.MinDepthicity:
		return fmt.Errorf("Bounds: depthicity [%d, %d]: %w", b.MinDepthicity, b.MaxDepthicity, ErrInvalidBounds)
	}

	return nil
}

// Feasible reports whether at least the minimum corner fits MaxNodeCount.
func (b Bounds) Feasible() bool {
	return PredictedNodeCount(b.MinBranchiness, b.MinDepthicity) <= b.MaxNodeCount
}

// PredictedNodeCount returns the node count of a complete b-ary tree of depth
// d, saturating at math.MaxInt64. b == 1 yields d. Inputs with b < 1 or d < 0
// yield 0.
// Complexity: O(d) multiplications, early exit on saturation.
func PredictedNodeCount(b, d int64) int64 {
	if b < 1 || d < 0 {
		return 0
	}
	if b == 1 {
		return d
	}

	// (b^(d+1) - 1) / (b - 1) == 1 + b + b^2 + ... + b^d
	var (
		sum  int64 = 1
		term int64 = 1
		i    int64
	)
	for i = 0; i < d; i++ {
		if term > math.MaxInt64/b {
			return math.MaxInt64
		}
		term *= b
		if sum > math.MaxInt64-term {
			return math.MaxInt64
		}
		sum += term
	}

	return sum
}

// Sample returns count accepted Params drawn from r within bounds.
//
// Per attempt it draws branchiness, depthicity, then seed, each with
// r.RandInt; the attempt is accepted iff PredictedNodeCount(b, d) ≤
// bounds.MaxNodeCount. Infeasible bounds fail before any draw, and before
// the max bounds are checked against the min bounds.
// count ≤ 0 returns an empty, non-nil slice.
func Sample(r random.Sampler, bounds Bounds, count int, tagMap string, opts ...Option) ([]Params, error) {
	if err := bounds.validateDomains(); err != nil {
		return nil, fmt.Errorf("Sample: %w", err)
	}
	if !bounds.Feasible() {
		return nil, fmt.Errorf("Sample: predicted %d > max %d at (b=%d, d=%d): %w",
			PredictedNodeCount(bounds.MinBranchiness, bounds.MinDepthicity), bounds.MaxNodeCount,
			bounds.MinBranchiness, bounds.MinDepthicity, ErrBoundsInfeasible)
	}
	if err := bounds.validateOrder(); err != nil {
		return nil, fmt.Errorf("Sample: %w", err)
	}

	cfg := newConfig(opts...)
	if count < 0 {
		count = 0
	}
	out := make([]Params, 0, count)
	for len(out) < count {
		p := Params{
			Branchiness: r.RandInt(bounds.MinBranchiness, bounds.MaxBranchiness),
			Depthicity:  r.RandInt(bounds.MinDepthicity, bounds.MaxDepthicity),
			Seed:        uint32(r.RandInt(0, maxSeed)),
			TagMap:      tagMap,
		}
		ok := PredictedNodeCount(p.Branchiness, p.Depthicity) <= bounds.MaxNodeCount
		cfg.observe(p, ok)
		if ok {
			out = append(out, p)
		}
	}

	return out, nil
}
