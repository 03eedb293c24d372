// SPDX-License-Identifier: MIT
// Package builder generates deterministic segment fixtures: the road networks
// used by tests, examples, benchmarks and the "demo" command.
//
// One orchestrator, Build(bopts, cons...), resolves options into an immutable
// builderConfig, runs every Constructor in order against a shared Sketch, and
// returns the accumulated segments. Constructors place geometry relative to
// the configured origin and spacing:
//
//	Chain(n)       n points along +X: a straight road with n-1 segments
//	Polyline(pts)  explicit points, one segment per consecutive pair
//	Cycle(n)       regular n-gon of circumradius spacing: a ring road
//	Star(n)        hub at the origin with n-1 arms of length spacing
//	Wheel(n)       ring of n-1 points plus spokes to a hub
//	Grid(r, c)     r×c lattice with 4-neighborhood streets
//
// Options:
//
//	WithIDScheme(fn)   segment IDs from their emission index (default "s0", "s1", …)
//	WithOrigin(p)      translate every constructor
//	WithSpacing(d)     unit length (default 10)
//	WithSeed(seed)     shuffle the emission order and flip endpoints randomly
//	WithRand(r)        same, with a caller-owned RNG
//
// Shuffling never changes the segment set, only its order and the A/B order of
// each segment, which is exactly what the decomposer must be insensitive to.
//
// Errors:
//
//	ErrTooFewPoints    – a size parameter below the constructor minimum.
//	ErrConstructFailed – a nil constructor was passed to Build.
package builder
