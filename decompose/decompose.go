// SPDX-License-Identifier: MIT
// Package: roadbuilder/decompose
//
// decompose.go — the two-phase walk that turns a core.Index into Paths.
//
// Contract:
//   • One walker per Decompose call; it owns the visited set shared by
//     both phases and is discarded afterwards.
//   • A segment is marked visited before it is crossed and a visited
//     segment is never crossed again, so every segment lands in exactly
//     one trace.
//   • Phase 1 emits open chains, phase 2 emits closed loops. Emission order
//     follows index insertion order, so equal input gives equal output.
//   • Walks are bounded by the step factors; hitting a bound sets
//     Path.Exhausted and keeps the partial trace.

package decompose

import (
	"fmt"

	"github.com/anayp/roadbuilder/core"
	"github.com/anayp/roadbuilder/geom"
)

// walker owns the state of one decomposition run: the read-only index and
// the visited set shared by the chain and loop phases.
type walker struct {
	idx     *core.Index     // adjacency index, never mutated
	opts    Options         // resolved options
	visited map[string]bool // segment ID -> already crossed
	res     *Result         // emitted paths and counters
}

// Decompose splits the segments of idx into open chains and closed loops.
// An empty index yields an empty Result.
//
// On cancellation or a hook error the partial Result is returned with the
// error.
//
// Complexity: O(V + E) time, O(E) space.
func Decompose(idx *core.Index, opts ...Option) (*Result, error) {
	// 1. Validate input
	if idx == nil {
		return nil, ErrIndexNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Initialize the run state; the visited set is sized for every segment
	w := &walker{
		idx:     idx,
		opts:    dopts,
		visited: make(map[string]bool, idx.SegmentCount()),
		res:     &Result{},
	}

	// 4. Chains from every terminal, one per unvisited branch
	for _, t := range idx.Terminals() {
		for _, s := range idx.Incident(t) {
			// A branch already consumed from its other end is skipped here.
			if w.visited[s.ID] {
				continue
			}
			if err := w.checkCtx(); err != nil {
				return w.res, err
			}
			if err := w.emit(w.traceChain(t, s)); err != nil {
				return w.res, err
			}
		}
	}

	// 5. Loops from whatever is left; only pure cycles remain at this point
	for _, s := range idx.Segments() {
		if w.visited[s.ID] {
			continue
		}
		if err := w.checkCtx(); err != nil {
			return w.res, err
		}
		if err := w.emit(w.traceLoop(s)); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// checkCtx reports the context error, if any, without blocking.
func (w *walker) checkCtx() error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
		return nil
	}
}

// emit records p, or drops it when it is too short.
// Complexity: O(1) plus the cost of the OnPath hook.
func (w *walker) emit(p Path) error {
	// Exhausted traces are counted whether or not they survive the length check.
	if p.Exhausted {
		w.res.Exhausted++
	}
	if len(p.Points) < minPathPoints {
		w.res.Dropped++
		return nil
	}
	if p.Closed {
		w.res.Loops++
	} else {
		w.res.Chains++
	}
	w.res.Paths = append(w.res.Paths, p)

	// The hook sees the path after it is recorded; its error stops the run.
	if w.opts.OnPath != nil {
		if err := w.opts.OnPath(p); err != nil {
			return fmt.Errorf("decompose: OnPath hook for path %d: %w", len(w.res.Paths), err)
		}
	}
	return nil
}

// traceChain walks from a terminal across start until it reaches a point of
// degree ≠ 2 or runs out of unvisited segments.
//
// Complexity: O(k·d) for a chain of k segments, d the largest degree seen.
func (w *walker) traceChain(from geom.Point, start core.Segment) Path {
	maxSteps := w.opts.ChainStepFactor * w.idx.Len()
	p := Path{Points: []geom.Point{from}}

	cur, seg := from, start
	for {
		// 1. Cross the current segment; a corrupted one ends the trace
		next, ok := w.cross(&p, cur, seg)
		if !ok {
			break
		}
		// 2. A terminal or junction ends the chain; the next chain starts there
		if w.idx.Degree(next) != 2 {
			break
		}
		// 3. Continue along the other incident segment, if still free
		nseg, found := w.firstUnvisited(next)
		if !found {
			break
		}
		cur, seg = next, nseg
		// 4. Step bound
		if len(p.Points) > maxSteps {
			p.Exhausted = true
			break
		}
	}
	return p
}

// traceLoop walks from start.A until it comes back to start.A or runs out of
// unvisited segments. Loop-phase paths are always Closed: only pure cycles
// are left for this phase, so a walk that stops early was cut short by the
// step bound or by corrupted input and still describes a loop.
//
// Complexity: O(k·d) for a loop of k segments, d the largest degree seen.
func (w *walker) traceLoop(start core.Segment) Path {
	maxSteps := w.opts.LoopStepFactor * w.idx.Len()
	origin := start.A
	p := Path{Points: []geom.Point{origin}, Closed: true}

	cur, seg := origin, start
	for {
		// 1. Cross the current segment; a corrupted one ends the trace
		next, ok := w.cross(&p, cur, seg)
		if !ok {
			break
		}
		// 2. Back at the start: the loop is complete
		if next == origin {
			break
		}
		// 3. Continue along any free incident segment
		nseg, found := w.firstUnvisited(next)
		if !found {
			break
		}
		cur, seg = next, nseg
		// 4. Step bound
		if len(p.Points) > maxSteps {
			p.Exhausted = true
			break
		}
	}
	return p
}

// cross marks seg visited, steps from cur to its other endpoint and appends
// that endpoint to p. It reports false when cur is not an endpoint of seg,
// which only happens on corrupted input.
// Complexity: O(1) amortized.
func (w *walker) cross(p *Path, cur geom.Point, seg core.Segment) (geom.Point, bool) {
	// Mark first so a corrupted segment is still consumed exactly once.
	w.visited[seg.ID] = true
	next, err := seg.Other(cur)
	if err != nil {
		return geom.Point{}, false
	}
	p.Segments = append(p.Segments, seg.ID)
	p.Points = append(p.Points, next)
	return next, true
}

// firstUnvisited returns the first incident segment at q not yet consumed,
// in insertion order.
// Complexity: O(deg(q)).
func (w *walker) firstUnvisited(q geom.Point) (core.Segment, bool) {
	for _, s := range w.idx.Incident(q) {
		if !w.visited[s.ID] {
			return s, true
		}
	}
	return core.Segment{}, false
}
