// SPDX-License-Identifier: MIT

package route

import (
	"errors"
	"math"

	"github.com/anayp/roadbuilder/geom"
)

// Sentinel errors returned by Shortest.
var (
	// ErrIndexNil indicates that a nil *core.Index was passed.
	ErrIndexNil = errors.New("route: index is nil")

	// ErrPointNotFound indicates that an endpoint is not part of the index.
	ErrPointNotFound = errors.New("route: point not found in index")

	// ErrUnreachable indicates that the destination cannot be reached.
	ErrUnreachable = errors.New("route: destination unreachable")
)

// Route is a drivable sequence of points from the origin to the destination.
type Route struct {
	// Points from origin to destination; a single point when they coincide.
	Points []geom.Point

	// Segments are the IDs driven, in order.
	Segments []string

	// Length is the summed segment length.
	Length float64
}

// Option customizes Shortest.
type Option func(*Options)

// Options holds the search parameters.
type Options struct {
	// MaxDistance caps the explored distance; default +Inf.
	MaxDistance float64

	// Closed holds segment IDs that are skipped.
	Closed map[string]bool
}

// DefaultOptions returns an unbounded search with every segment open.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}

// WithMaxDistance caps the explored distance. Panics when d < 0 or NaN.
func WithMaxDistance(d float64) Option {
	if !(d >= 0) {
		panic("route: WithMaxDistance(d < 0)")
	}
	return func(o *Options) { o.MaxDistance = d }
}

// WithClosed marks segments as impassable.
func WithClosed(ids ...string) Option {
	return func(o *Options) {
		if o.Closed == nil {
			o.Closed = make(map[string]bool, len(ids))
		}
		for _, id := range ids {
			o.Closed[id] = true
		}
	}
}
