// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
	"strconv"

	"github.com/anayp/roadbuilder/geom"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Segment ID strategy: emission index -> ID (deterministic).
	idFn func(int) string
	// Translation applied to every constructor.
	origin geom.Point
	// Unit length between neighboring points.
	spacing float64
	// RNG for shuffling; nil keeps emission order.
	rng *rand.Rand
}

const defaultSpacing = 10.0

// DefaultIDFn returns "s" + decimal index: 0→"s0", 42→"s42".
func DefaultIDFn(idx int) string { return "s" + strconv.Itoa(idx) }

// newBuilderConfig starts from deterministic defaults and applies options in
// order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:    DefaultIDFn,
		spacing: defaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// at returns the origin moved by (x, y) spacing units.
func (c builderConfig) at(x, y float64) geom.Point {
	return c.origin.Translate(geom.Vec(x*c.spacing, y*c.spacing, 0))
}
