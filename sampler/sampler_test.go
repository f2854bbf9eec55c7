package sampler_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/domfuzz/random"
	"github.com/katalvlaran/domfuzz/sampler"
)

// countingSampler counts RandInt draws.
type countingSampler struct {
	random.Sampler
	draws int
}

func (c *countingSampler) RandInt(min, max int64) int64 {
	c.draws++
	return c.Sampler.RandInt(min, max)
}

func TestPredictedNodeCount(t *testing.T) {
	cases := []struct {
		b, d, want int64
	}{
		{1, 0, 0},
		{1, 5, 5},
		{2, 0, 1},
		{2, 2, 7},
		{3, 2, 13},
		{4, 3, 85},
		{10, 4, 11111},
		{0, 3, 0},
		{2, -1, 0},
		{2, 62, math.MaxInt64},
		{1 << 40, 3, math.MaxInt64},
	}
	for _, tc := range cases {
		require.Equalf(t, tc.want, sampler.PredictedNodeCount(tc.b, tc.d), "b=%d d=%d", tc.b, tc.d)
	}
}

func TestSample_ReferenceSequence(t *testing.T) {
	bounds := sampler.Bounds{MinBranchiness: 1, MaxBranchiness: 4, MinDepthicity: 0, MaxDepthicity: 5, MaxNodeCount: 50}

	type draw struct {
		p  sampler.Params
		ok bool
	}
	var seen []draw
	got, err := sampler.Sample(random.New(3), bounds, 3, "alexa",
		sampler.WithObserver(func(p sampler.Params, ok bool) { seen = append(seen, draw{p, ok}) }))
	require.NoError(t, err)

	require.Equal(t, []sampler.Params{
		{Branchiness: 1, Depthicity: 5, Seed: 292326272, TagMap: "alexa"},
		{Branchiness: 2, Depthicity: 2, Seed: 1804747344, TagMap: "alexa"},
		{Branchiness: 4, Depthicity: 2, Seed: 273499941, TagMap: "alexa"},
	}, got)

	require.Len(t, seen, 5)
	require.False(t, seen[1].ok)
	require.Equal(t, int64(4), seen[1].p.Branchiness)
	require.Equal(t, int64(3), seen[1].p.Depthicity)
	require.Equal(t, uint32(897876151), seen[1].p.Seed)
	require.False(t, seen[3].ok)
}

func TestSample_AllWithinBounds(t *testing.T) {
	bounds := sampler.Bounds{MinBranchiness: 2, MaxBranchiness: 9, MinDepthicity: 1, MaxDepthicity: 7, MaxNodeCount: 400}

	got, err := sampler.Sample(random.New(99), bounds, 200, "simple")
	require.NoError(t, err)
	require.Len(t, got, 200)
	for _, p := range got {
		require.GreaterOrEqual(t, p.Branchiness, bounds.MinBranchiness)
		require.LessOrEqual(t, p.Branchiness, bounds.MaxBranchiness)
		require.GreaterOrEqual(t, p.Depthicity, bounds.MinDepthicity)
		require.LessOrEqual(t, p.Depthicity, bounds.MaxDepthicity)
		require.LessOrEqual(t, sampler.PredictedNodeCount(p.Branchiness, p.Depthicity), bounds.MaxNodeCount)
	}
}

func TestSample_Deterministic(t *testing.T) {
	bounds := sampler.Bounds{MinBranchiness: 1, MaxBranchiness: 6, MinDepthicity: 0, MaxDepthicity: 6, MaxNodeCount: 1000}

	a, err := sampler.Sample(random.New(17), bounds, 25, "alexa")
	require.NoError(t, err)
	b, err := sampler.Sample(random.New(17), bounds, 25, "alexa")
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestSample_InfeasibleBeforeAnyDraw(t *testing.T) {
	// b=3, d=4 predicts 121 nodes
	bounds := sampler.Bounds{MinBranchiness: 3, MaxBranchiness: 5, MinDepthicity: 4, MaxDepthicity: 6, MaxNodeCount: 120}
	r := &countingSampler{Sampler: random.New(1)}

	got, err := sampler.Sample(r, bounds, 10, "alexa")
	require.ErrorIs(t, err, sampler.ErrBoundsInfeasible)
	require.Nil(t, got)
	require.Zero(t, r.draws)

	bounds.MaxNodeCount = 121
	require.True(t, bounds.Feasible())
}

func TestSample_InfeasibleWithUnsetMaxBounds(t *testing.T) {
	bounds := sampler.Bounds{MinBranchiness: 1, MinDepthicity: 1, MaxNodeCount: 0}
	r := &countingSampler{Sampler: random.New(1)}

	got, err := sampler.Sample(r, bounds, 1, "simple")
	require.ErrorIs(t, err, sampler.ErrBoundsInfeasible)
	require.NotErrorIs(t, err, sampler.ErrInvalidBounds)
	require.Nil(t, got)
	require.Zero(t, r.draws)
}

func TestSample_InvalidBounds(t *testing.T) {
	cases := map[string]sampler.Bounds{
		"zero branchiness":     {MinBranchiness: 0, MaxBranchiness: 2, MaxDepthicity: 2, MaxNodeCount: 10},
		"negative depthicity":  {MinBranchiness: 1, MaxBranchiness: 2, MinDepthicity: -1, MaxDepthicity: 2, MaxNodeCount: 10},
		"inverted branchiness": {MinBranchiness: 3, MaxBranchiness: 2, MaxDepthicity: 2, MaxNodeCount: 10},
		"inverted depthicity":  {MinBranchiness: 1, MaxBranchiness: 2, MinDepthicity: 3, MaxDepthicity: 2, MaxNodeCount: 10},
		"negative ceiling":     {MinBranchiness: 1, MaxBranchiness: 2, MaxDepthicity: 2, MaxNodeCount: -1},
	}
	for name, bounds := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := sampler.Sample(random.New(1), bounds, 1, "simple")
			require.ErrorIs(t, err, sampler.ErrInvalidBounds)
		})
	}
}

func TestSample_ZeroCount(t *testing.T) {
	bounds := sampler.Bounds{MinBranchiness: 1, MaxBranchiness: 1, MaxDepthicity: 1, MaxNodeCount: 1}
	got, err := sampler.Sample(random.New(1), bounds, 0, "simple")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestWithObserver_NilPanics(t *testing.T) {
	require.Panics(t, func() { sampler.WithObserver(nil) })
}

func TestParams_String(t *testing.T) {
	p := sampler.Params{Branchiness: 2, Depthicity: 3, Seed: 42, TagMap: "simple"}
	require.Equal(t, "b=2 d=3 seed=42 tagMap=simple", p.String())
}
