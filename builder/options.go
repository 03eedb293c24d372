// SPDX-License-Identifier: MIT
// Package: roadbuilder/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless input.
//     Constructors and Build itself only return errors.
//   • Determinism is explicit: output is only shuffled when WithSeed or
//     WithRand is given.
//   • No hidden globals; everything flows through builderConfig.
//
// Hints:
//   • WithSpacing and WithOrigin place a fixture in world units. Chain
//     takes explicit points and only honors the origin.
//   • Use WithIDScheme to keep segment IDs stable across golden files.
//   • WithSeed is the way to test order independence: the same network,
//     shuffled, must compile to the same roads.

package builder

import (
	"math"      // finiteness checks on spacing
	"math/rand" // RNG source for shuffled output

	"github.com/anayp/roadbuilder/geom"
)

// BuilderOption customizes Build by mutating a builderConfig before any
// constructor runs. Option constructors panic on meaningless input;
// constructors themselves only return errors.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the segment ID generator: idx -> string.
// Panics on nil to surface programmer error early.
// Complexity: O(1) time, O(1) space.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		// Fail fast: a nil scheme would only blow up inside a constructor.
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		// Every constructor names its segments through this function.
		c.idFn = fn
	}
}

// WithOrigin translates every constructor by p. Panics on a non-finite p.
// Complexity: O(1) time, O(1) space.
func WithOrigin(p geom.Point) BuilderOption {
	if !p.IsFinite() {
		// NaN or Inf would poison every emitted point.
		panic("builder: WithOrigin(non-finite)")
	}
	return func(c *builderConfig) {
		// Applied after scaling, so the origin is in world units.
		c.origin = p
	}
}

// WithSpacing sets the unit length. Panics unless d is finite and positive.
// Complexity: O(1) time, O(1) space.
func WithSpacing(d float64) BuilderOption {
	// !(d > 0) also rejects NaN.
	if !(d > 0) || math.IsInf(d, 0) {
		panic("builder: WithSpacing(d <= 0)")
	}
	return func(c *builderConfig) {
		// Lattice coordinates are scaled by d before the origin shift.
		c.spacing = d
	}
}

// WithSeed shuffles the output deterministically for the given seed.
// Complexity: O(1) time, O(1) space (RNG allocation).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		// A private source keeps runs independent of the global RNG.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand shuffles the output with r. Panics on nil; prefer WithSeed for
// reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		// Fail fast rather than silently skip the shuffle.
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		// The caller owns the seed policy of r.
		c.rng = r
	}
}
