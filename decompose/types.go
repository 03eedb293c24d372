// SPDX-License-Identifier: MIT

package decompose

import (
	"context"
	"errors"

	"github.com/anayp/roadbuilder/geom"
)

var (
	// ErrIndexNil is returned when a nil *core.Index is passed to Decompose.
	ErrIndexNil = errors.New("decompose: index is nil")
)

// Default step bound factors, multiplied by the number of distinct points.
const (
	DefaultChainStepFactor = 4
	DefaultLoopStepFactor  = 8
)

// minPathPoints is the smallest point count a Path may have.
const minPathPoints = 2

// Path is an ordered walk through the index.
//
// For a closed Path the walk normally ends on its first point again; use
// Ordered to get the sequence without that trailing repeat.
type Path struct {
	// Points in walk order (len ≥ 2).
	Points []geom.Point

	// Segments lists the IDs of the crossed segments in walk order.
	Segments []string

	// Closed marks a loop-phase path. It is set even when the walk stopped
	// before returning to its starting point.
	Closed bool

	// Exhausted reports that the step bound cut the walk short.
	Exhausted bool
}

// SegmentCount returns the number of segments the path consumed.
func (p Path) SegmentCount() int { return len(p.Segments) }

// First returns the first point of the walk.
func (p Path) First() geom.Point { return p.Points[0] }

// Last returns the last point of the walk.
func (p Path) Last() geom.Point { return p.Points[len(p.Points)-1] }

// Ordered returns the path points ready for geometry: for closed paths a
// trailing repeat of the first point is removed. The returned slice is a copy.
func (p Path) Ordered() []geom.Point {
	out := make([]geom.Point, len(p.Points))
	copy(out, p.Points)
	if p.Closed && len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

// Distinct returns the number of distinct points on the path.
func (p Path) Distinct() int {
	seen := make(map[geom.Point]struct{}, len(p.Points))
	for _, q := range p.Points {
		seen[q] = struct{}{}
	}
	return len(seen)
}

// Result collects the outcome of a decomposition run.
type Result struct {
	// Paths in emission order: chains first, then loops.
	Paths []Path

	// Chains and Loops count the emitted open and loop-phase paths.
	Chains, Loops int

	// Dropped counts traces shorter than 2 points.
	Dropped int

	// Exhausted counts traces cut short by the step bound.
	Exhausted int
}

// Option configures optional behavior of Decompose.
type Option func(*Options)

// Options holds the configurable parameters of a decomposition run.
type Options struct {
	// Ctx allows cancellation between traces; defaults to context.Background().
	Ctx context.Context

	// OnPath, if non-nil, is invoked for every emitted Path.
	// Returning an error aborts the run with that error.
	OnPath func(p Path) error

	// ChainStepFactor and LoopStepFactor scale the walk step bounds.
	ChainStepFactor int
	LoopStepFactor  int
}

// DefaultOptions returns Options with a background context, no hook and the
// default step bound factors.
func DefaultOptions() Options {
	return Options{
		Ctx:             context.Background(),
		ChainStepFactor: DefaultChainStepFactor,
		LoopStepFactor:  DefaultLoopStepFactor,
	}
}

// WithContext sets the context checked between traces.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnPath installs fn as the per-path hook.
func WithOnPath(fn func(p Path) error) Option {
	return func(o *Options) { o.OnPath = fn }
}

// WithChainStepFactor overrides the chain step bound factor.
// Panics when n < 1.
func WithChainStepFactor(n int) Option {
	if n < 1 {
		panic("decompose: WithChainStepFactor(n < 1)")
	}
	return func(o *Options) { o.ChainStepFactor = n }
}

// WithLoopStepFactor overrides the loop step bound factor.
// Panics when n < 1.
func WithLoopStepFactor(n int) Option {
	if n < 1 {
		panic("decompose: WithLoopStepFactor(n < 1)")
	}
	return func(o *Options) { o.LoopStepFactor = n }
}
