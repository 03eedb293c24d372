// SPDX-License-Identifier: MIT
// Package: roadbuilder/route
//
// route.go — Dijkstra over a core.Index with segment lengths as weights.
//
// Contract:
//   • The index is read-only; all search state lives in one runner.
//   • Lazy decrease-key: an improved distance pushes a new heap entry and
//     stale entries are skipped on pop once their point is settled.
//   • Ties between equal distances are broken by push order, which follows
//     index insertion order, so a given index always yields the same route.
//   • Closed segments and anything beyond MaxDistance are never relaxed.

package route

import (
	"container/heap"
	"fmt"
	"slices"

	"github.com/anayp/roadbuilder/core"
	"github.com/anayp/roadbuilder/geom"
)

// Shortest returns the shortest route from one indexed point to another.
//
// Preconditions, checked in order:
//  1. idx must be non-nil (ErrIndexNil).
//  2. from and to must be indexed (ErrPointNotFound).
//
// Ties between equally long routes are broken by index insertion order, so
// the result is deterministic for a given index.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Shortest(idx *core.Index, from, to geom.Point, opts ...Option) (*Route, error) {
	// 1. Validate input
	if idx == nil {
		return nil, ErrIndexNil
	}

	// 2. Apply options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3. Both endpoints must exist in the index
	for _, p := range []geom.Point{from, to} {
		if !idx.Has(p) {
			return nil, fmt.Errorf("%w: %v", ErrPointNotFound, p)
		}
	}

	// 4. Seed the search at from with distance 0
	r := &runner{
		idx:     idx,
		opts:    cfg,
		dist:    map[geom.Point]float64{from: 0},
		prev:    make(map[geom.Point]core.Segment),
		visited: make(map[geom.Point]bool),
	}
	heap.Push(&r.pq, &item{p: from, order: 0})

	// 5. Settle points until to is reached or the frontier is exhausted
	r.process(to)

	// 6. An unsettled target means no route within the limits
	if !r.visited[to] {
		return nil, fmt.Errorf("%w: %v → %v", ErrUnreachable, from, to)
	}
	return r.route(from, to), nil
}

// runner holds the mutable state of one search.
type runner struct {
	idx     *core.Index                 // network, never mutated
	opts    Options                     // resolved options
	dist    map[geom.Point]float64      // best known distance from the source
	prev    map[geom.Point]core.Segment // segment used to reach each point
	visited map[geom.Point]bool         // settled points
	pq      pointPQ                     // frontier, lazily updated
	pushes  int                         // push counter for tie-breaking
}

// process pops points in distance order until to is settled or nothing
// within MaxDistance remains.
// Complexity: O((V + E) log V).
func (r *runner) process(to geom.Point) {
	for r.pq.Len() > 0 {
		it := heap.Pop(&r.pq).(*item)
		// Stale entry for an already settled point.
		if r.visited[it.p] {
			continue
		}
		// The heap is ordered, so everything after this is farther too.
		if it.dist > r.opts.MaxDistance {
			return
		}
		r.visited[it.p] = true
		if it.p == to {
			return
		}
		r.relax(it.p)
	}
}

// relax improves the distance of every neighbor of u.
// Complexity: O(deg(u) log V).
func (r *runner) relax(u geom.Point) {
	for _, s := range r.idx.Incident(u) {
		// 1. Impassable segment
		if r.opts.Closed[s.ID] {
			continue
		}
		// 2. Skip settled neighbors; a self-loop leads back to u, which is settled
		v, err := s.Other(u)
		if err != nil || r.visited[v] {
			continue
		}
		// 3. Candidate distance, bounded by MaxDistance
		nd := r.dist[u] + s.Length()
		if nd > r.opts.MaxDistance {
			continue
		}
		// 4. Keep the earlier entry on ties so insertion order decides
		if old, ok := r.dist[v]; ok && nd >= old {
			continue
		}
		// 5. Record and push a fresh heap entry
		r.dist[v] = nd
		r.prev[v] = s
		r.pushes++
		heap.Push(&r.pq, &item{p: v, dist: nd, order: r.pushes})
	}
}

// route walks the predecessor chain back from to and returns it in travel
// order.
// Complexity: O(k) for a route of k segments.
func (r *runner) route(from, to geom.Point) *Route {
	out := &Route{Points: []geom.Point{to}, Length: r.dist[to]}
	for at := to; at != from; {
		s := r.prev[at]
		at, _ = s.Other(at)
		out.Points = append(out.Points, at)
		out.Segments = append(out.Segments, s.ID)
	}
	slices.Reverse(out.Points)
	slices.Reverse(out.Segments)
	return out
}

// item is a heap entry; order breaks distance ties by push sequence.
type item struct {
	p     geom.Point
	dist  float64
	order int
}

// pointPQ is a min-heap of *item ordered by dist, then order.
type pointPQ []*item

func (pq pointPQ) Len() int { return len(pq) }
func (pq pointPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].order < pq[j].order
}
func (pq pointPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *pointPQ) Push(x any)   { *pq = append(*pq, x.(*item)) }
func (pq *pointPQ) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
