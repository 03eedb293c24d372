// SPDX-License-Identifier: MIT

package core

import (
	"errors"

	"github.com/anayp/roadbuilder/geom"
)

// Sentinel errors for index queries.
var (
	// ErrNotEndpoint indicates a point that is not an endpoint of the segment.
	ErrNotEndpoint = errors.New("core: point is not an endpoint of segment")
)

// defaultIDPrefix labels segments that arrive without an identity.
const defaultIDPrefix = "s"

// Segment is an unordered pair of endpoints plus an opaque identity.
//
// ID is only used to de-duplicate input and to report which segments were
// consumed or skipped; it carries no geometric meaning.
type Segment struct {
	// ID uniquely identifies the segment within one Index.
	ID string

	// A and B are the endpoints. Their order is irrelevant.
	A, B geom.Point
}

// Seg builds a Segment from two endpoints.
func Seg(id string, a, b geom.Point) Segment {
	return Segment{ID: id, A: a, B: b}
}

// IsDegenerate reports whether both endpoints coincide.
func (s Segment) IsDegenerate() bool { return s.A == s.B }

// Length returns the distance between the endpoints.
func (s Segment) Length() float64 { return s.A.Distance(s.B) }

// Other returns the endpoint opposite to p. For a degenerate segment the
// opposite of its single point is the point itself.
func (s Segment) Other(p geom.Point) (geom.Point, error) {
	switch p {
	case s.A:
		return s.B, nil
	case s.B:
		return s.A, nil
	}
	return geom.Point{}, ErrNotEndpoint
}

// IndexOption configures NewIndex.
type IndexOption func(*indexConfig)

type indexConfig struct {
	idPrefix      string
	skipNonFinite bool
}

// WithIDPrefix sets the prefix for IDs assigned to segments with an empty ID.
// Panics on an empty prefix, which would make generated IDs collide with
// caller-supplied numeric IDs.
func WithIDPrefix(prefix string) IndexOption {
	if prefix == "" {
		panic("core: WithIDPrefix(\"\")")
	}
	return func(c *indexConfig) { c.idPrefix = prefix }
}

// WithSkipNonFinite drops segments whose endpoints contain NaN or ±Inf.
func WithSkipNonFinite() IndexOption {
	return func(c *indexConfig) { c.skipNonFinite = true }
}

// Index maps each endpoint to the segments touching it.
type Index struct {
	points   []geom.Point         // distinct points, insertion order
	incident map[geom.Point][]int // point → positions in segments, insertion order
	segments []Segment            // unique segments, insertion order
	byID     map[string]int       // ID → position in segments

	duplicates int // input segments dropped as repeated IDs
	rejected   int // input segments dropped as non-finite
}

// Stats is a snapshot of index counters.
type Stats struct {
	Points     int // distinct endpoints
	Segments   int // unique segments indexed
	Degenerate int // segments with coinciding endpoints
	Terminals  int // points with degree ≠ 2
	Duplicates int // input segments dropped by ID
	Rejected   int // input segments dropped as non-finite
}
