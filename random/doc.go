// Package random provides the deterministic random source shared by every
// domfuzz generator.
//
// A Random wraps a seeded Source and derives four sampling operations from
// it:
//
//   - Uniform(min, max):   float in [min, max).
//   - RandInt(min, max):   integer in [min, max], inclusive on both ends.
//   - Choice(r, items):    uniform pick from a non-empty slice.
//   - WeightedChoice(w):   key drawn proportionally to its weight, walking
//     the Weights map in insertion order.
//
// Sources:
//
//   - Alea (default): Johannes Baagøe's Alea generator, bit-compatible with
//     the seedrandom.alea stream used to produce historical fuzz corpora, so
//     a (seed, branchiness, depthicity, tagMap) tuple found by the old tooling
//     replays to the same fragment.
//   - PCG: math/rand/v2 PCG seeded through a SplitMix64 mix. Faster, not
//     compatible with historical corpora.
//
// Determinism:
//
//   - Same seed + same ordered sequence of calls ⇒ identical results.
//   - Seed 0 asks for a clock-derived seed; the derived value is recorded and
//     returned by Seed(), so the run is still replayable.
//   - No other entropy is consulted once the seed is fixed.
//
// Concurrency:
//
//   - A Random is NOT goroutine-safe. Each generation run owns its own
//     instance; parallel runs build independent instances.
package random
