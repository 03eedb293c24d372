// SPDX-License-Identifier: MIT

package core

import (
	"strconv"

	"github.com/anayp/roadbuilder/geom"
)

// NewIndex builds an adjacency index over segs.
//
// Steps:
//  1. Resolve options.
//  2. For each segment in input order: assign an ID if empty (never one the
//     input uses explicitly), drop repeated IDs, optionally drop non-finite
//     segments.
//  3. Register both endpoints (A first) and append the segment position to
//     each endpoint's incidence list.
//
// A nil or empty segs yields an empty index.
//
// Complexity: O(E) time, O(V+E) space.
func NewIndex(segs []Segment, opts ...IndexOption) *Index {
	cfg := indexConfig{idPrefix: defaultIDPrefix}
	for _, opt := range opts {
		opt(&cfg)
	}

	idx := &Index{
		incident: make(map[geom.Point][]int, len(segs)+1),
		segments: make([]Segment, 0, len(segs)),
		byID:     make(map[string]int, len(segs)),
	}

	explicit := make(map[string]bool, len(segs))
	for _, s := range segs {
		if s.ID != "" {
			explicit[s.ID] = true
		}
	}

	var next int // generated ID counter
	for _, s := range segs {
		if s.ID == "" {
			s.ID = freshID(cfg.idPrefix, &next, explicit)
		}
		if _, dup := idx.byID[s.ID]; dup {
			idx.duplicates++
			continue
		}
		if cfg.skipNonFinite && (!s.A.IsFinite() || !s.B.IsFinite()) {
			idx.rejected++
			continue
		}

		pos := len(idx.segments)
		idx.segments = append(idx.segments, s)
		idx.byID[s.ID] = pos

		idx.attach(s.A, pos)
		idx.attach(s.B, pos) // degenerate: second entry under the same point
	}

	return idx
}

// attach records that segment pos touches p.
func (idx *Index) attach(p geom.Point, pos int) {
	list, seen := idx.incident[p]
	if !seen {
		idx.points = append(idx.points, p)
	}
	idx.incident[p] = append(list, pos)
}

// freshID returns the next generated ID not used explicitly anywhere in the
// input.
func freshID(prefix string, next *int, explicit map[string]bool) string {
	for {
		*next++
		id := prefix + strconv.Itoa(*next)
		if !explicit[id] {
			return id
		}
	}
}
