// SPDX-License-Identifier: MIT
// Package: domfuzz/random
//
// random.go — Random and the derived sampling operations.
//
// Draw accounting (part of the determinism contract):
//   • Uniform        consumes one Float64.
//   • RandInt        consumes one Int32.
//   • Choice         consumes one RandInt (nothing on empty input).
//   • WeightedChoice consumes one Uniform (nothing on empty input).

package random

// Source is the underlying seeded stream.
type Source interface {
	// Float64 returns a float in [0,1).
	Float64() float64
	// Int32 returns a signed 32-bit draw.
	Int32() int32
}

// Sampler is the set of sampling operations generators depend on.
// *Random implements it; Choice is a generic helper over any Sampler.
type Sampler interface {
	Uniform(min, max float64) float64
	RandInt(min, max int64) int64
	WeightedChoice(w *Weights) (string, error)
	Seed() uint32
}

var _ Sampler = (*Random)(nil)

// Random is a seeded random source owned by a single generation run.
type Random struct {
	src  Source
	seed uint32
}

// New builds a Random for seed. Seed 0 derives a non-zero seed from the
// configured clock; Seed() reports the value actually used.
// Complexity: O(1) plus the Source's seeding cost.
func New(seed uint32, opts ...Option) *Random {
	cfg := newConfig(opts...)
	if seed == 0 {
		seed = seedFromTime(cfg.clock().UnixNano())
	}

	return &Random{src: cfg.factory(seed), seed: seed}
}

// seedFromTime mixes a timestamp into a non-zero 32-bit seed.
func seedFromTime(nanos int64) uint32 {
	s := uint32(splitMix64(uint64(nanos), 0))
	if s == 0 {
		s = 1
	}

	return s
}

// Seed returns the seed this Random was built from.
func (r *Random) Seed() uint32 {
	return r.seed
}

// Uniform returns a float in [min, max).
func (r *Random) Uniform(min, max float64) float64 {
	return min + float64((max-min)*r.src.Float64())
}

// RandInt returns an integer in [min, max], both ends inclusive, computed as
// min + |Int32()| mod (max-min+1). Swapped bounds are normalized.
// Complexity: O(1).
func (r *Random) RandInt(min, max int64) int64 {
	if max < min {
		min, max = max, min
	}
	span := uint64(max-min) + 1

	v := int64(r.src.Int32())
	if v < 0 {
		v = -v
	}
	if span == 0 {
		// full 64-bit span: every |int32| is already in range
		return min + v
	}

	return min + int64(uint64(v)%span)
}

// WeightedChoice returns a key of w drawn with probability proportional to
// its weight. The map is walked in insertion order; the first key whose
// cumulative weight reaches the threshold wins.
// Returns ErrEmptyInput (without drawing) when w has no entries.
// Complexity: O(len(w)).
func (r *Random) WeightedChoice(w *Weights) (string, error) {
	if w.Len() == 0 {
		return "", errorf("WeightedChoice", "0 candidates: %w", ErrEmptyInput)
	}

	threshold := r.Uniform(0, w.Total())

	var (
		partial float64
		last    string
	)
	for key, weight := range w.All() {
		partial += weight
		if partial >= threshold {
			return key, nil
		}
		last = key
	}

	// Unreachable for positive weights; kept so rounding can never yield "".
	return last, nil
}

// Choice returns a uniformly drawn element of items.
// Returns ErrEmptyInput (without drawing) when items is empty.
// Complexity: O(1).
func Choice[T any](r Sampler, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, errorf("Choice", "0 items: %w", ErrEmptyInput)
	}

	return items[r.RandInt(0, int64(len(items)-1))], nil
}
