// SPDX-License-Identifier: MIT

package core

import "github.com/anayp/roadbuilder/geom"

// Len returns the number of distinct endpoints.
func (idx *Index) Len() int { return len(idx.points) }

// SegmentCount returns the number of unique segments indexed.
func (idx *Index) SegmentCount() int { return len(idx.segments) }

// Points returns the distinct endpoints in insertion order.
// The returned slice is a copy.
func (idx *Index) Points() []geom.Point {
	out := make([]geom.Point, len(idx.points))
	copy(out, idx.points)
	return out
}

// Segments returns the indexed segments in insertion order.
// The returned slice is a copy.
func (idx *Index) Segments() []Segment {
	out := make([]Segment, len(idx.segments))
	copy(out, idx.segments)
	return out
}

// Segment looks up a segment by ID.
func (idx *Index) Segment(id string) (Segment, bool) {
	pos, ok := idx.byID[id]
	if !ok {
		return Segment{}, false
	}
	return idx.segments[pos], true
}

// Has reports whether p is an endpoint of some indexed segment.
func (idx *Index) Has(p geom.Point) bool {
	_, ok := idx.incident[p]
	return ok
}

// Degree returns the number of incidence entries at p. A degenerate segment
// counts twice. Unknown points have degree 0.
func (idx *Index) Degree(p geom.Point) int { return len(idx.incident[p]) }

// Incident returns the segments touching p in insertion order. A degenerate
// segment appears twice.
func (idx *Index) Incident(p geom.Point) []Segment {
	list := idx.incident[p]
	if len(list) == 0 {
		return nil
	}
	out := make([]Segment, len(list))
	for i, pos := range list {
		out[i] = idx.segments[pos]
	}
	return out
}

// Terminals returns every point whose degree is not 2, in insertion order.
// These are the candidate starts of open chains.
func (idx *Index) Terminals() []geom.Point {
	var out []geom.Point
	for _, p := range idx.points {
		if len(idx.incident[p]) != 2 {
			out = append(out, p)
		}
	}
	return out
}

// Stats returns a snapshot of the index counters.
//
// Complexity: O(V+E).
func (idx *Index) Stats() Stats {
	st := Stats{
		Points:     len(idx.points),
		Segments:   len(idx.segments),
		Duplicates: idx.duplicates,
		Rejected:   idx.rejected,
	}
	for _, s := range idx.segments {
		if s.IsDegenerate() {
			st.Degenerate++
		}
	}
	for _, p := range idx.points {
		if len(idx.incident[p]) != 2 {
			st.Terminals++
		}
	}
	return st
}
