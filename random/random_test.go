package random_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/domfuzz/random"
)

func TestRandom_ReferenceOperations(t *testing.T) {
	t.Parallel()

	r := random.New(42)
	require.Equal(t, uint32(42), r.Seed())
	require.Equal(t, int64(2), r.RandInt(1, 6))
	require.Equal(t, int64(1948521574), r.RandInt(0, 1<<32-1))
	require.Equal(t, int64(5), r.RandInt(5, 5))
	require.Equal(t, 2.398171046545607, r.Uniform(2, 4))

	key, err := r.WeightedChoice(random.NewWeights(random.P("a", 1), random.P("b", 2), random.P("c", 3)))
	require.NoError(t, err)
	require.Equal(t, "c", key)

	item, err := random.Choice(r, []string{"x", "y", "z"})
	require.NoError(t, err)
	require.Equal(t, "z", item)
}

func TestRandom_Determinism(t *testing.T) {
	t.Parallel()

	for _, opt := range []random.Option{random.WithSource(func(s uint32) random.Source { return random.NewAlea(s) }), random.WithPCG()} {
		a := random.New(1234, opt)
		b := random.New(1234, opt)
		for i := 0; i < 500; i++ {
			require.Equal(t, a.RandInt(-10, 10), b.RandInt(-10, 10))
			require.Equal(t, a.Uniform(0, 3), b.Uniform(0, 3))
		}
	}
}

func TestRandom_RandIntBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		min, max int64
	}{
		{"dice", 1, 6},
		{"single", 3, 3},
		{"negative", -5, -1},
		{"swapped", 9, 2},
		{"seedRange", 0, 1<<32 - 1},
	}

	r := random.New(99)
	for _, tc := range tests {
		lo, hi := tc.min, tc.max
		if hi < lo {
			lo, hi = hi, lo
		}
		for i := 0; i < 2000; i++ {
			v := r.RandInt(tc.min, tc.max)
			require.GreaterOrEqual(t, v, lo, tc.name)
			require.LessOrEqual(t, v, hi, tc.name)
		}
	}
}

func TestRandom_RandIntCoversInclusiveRange(t *testing.T) {
	t.Parallel()

	r := random.New(5)
	seen := map[int64]bool{}
	for i := 0; i < 1000; i++ {
		seen[r.RandInt(0, 3)] = true
	}
	require.Len(t, seen, 4)
}

func TestRandom_WeightedChoiceFrequencies(t *testing.T) {
	t.Parallel()

	w := random.NewWeights(random.P("rare", 1), random.P("common", 9))
	r := random.New(777)
	counts := map[string]int{}
	const draws = 20000
	for i := 0; i < draws; i++ {
		k, err := r.WeightedChoice(w)
		require.NoError(t, err)
		counts[k]++
	}
	require.InDelta(t, 0.9, float64(counts["common"])/draws, 0.02)
	require.InDelta(t, 0.1, float64(counts["rare"])/draws, 0.02)
}

func TestRandom_EmptyInput(t *testing.T) {
	t.Parallel()

	r := random.New(1)
	_, err := r.WeightedChoice(random.NewWeights())
	require.ErrorIs(t, err, random.ErrEmptyInput)

	_, err = r.WeightedChoice(nil)
	require.ErrorIs(t, err, random.ErrEmptyInput)

	_, err = random.Choice(r, []int(nil))
	require.ErrorIs(t, err, random.ErrEmptyInput)

	// empty inputs consume no draws
	fresh := random.New(1)
	require.Equal(t, fresh.RandInt(0, 100), r.RandInt(0, 100))
}

func TestRandom_ZeroSeedUsesClock(t *testing.T) {
	t.Parallel()

	clock := func() time.Time { return time.Unix(1700000000, 123456789) }
	a := random.New(0, random.WithClock(clock))
	b := random.New(0, random.WithClock(clock))
	require.NotZero(t, a.Seed())
	require.Equal(t, a.Seed(), b.Seed())

	replay := random.New(a.Seed())
	require.Equal(t, replay.RandInt(0, 1000), a.RandInt(0, 1000))
}

func TestOptions_PanicOnNil(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { random.WithSource(nil) })
	require.Panics(t, func() { random.WithClock(nil) })
}

func TestSourceByName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", random.SourceAlea, random.SourcePCG} {
		opt, ok := random.SourceByName(name)
		require.True(t, ok, name)
		require.NotNil(t, opt)
	}
	_, ok := random.SourceByName("mt19937")
	require.False(t, ok)
}
