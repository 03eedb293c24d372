// SPDX-License-Identifier: MIT

package dash

import (
	"errors"
	"fmt"
	"math"

	"github.com/anayp/roadbuilder/geom"
	"github.com/anayp/roadbuilder/mesh"
	"github.com/anayp/roadbuilder/section"
)

// Tolerance is the arc length at or below which a segment or a remaining phase
// length counts as zero.
const Tolerance = 1e-6

var (
	// ErrBadPattern indicates a dash or gap length that is not finite or not
	// longer than Tolerance.
	ErrBadPattern = errors.New("dash: dash and gap lengths must be finite and longer than the tolerance")

	// ErrMeshNil is returned when Strips is given no face sink.
	ErrMeshNil = errors.New("dash: mesh is nil")

	// ErrBadLineWidth indicates a strip width that is not strictly positive.
	ErrBadLineWidth = errors.New("dash: line width must be positive")
)

// Pattern is a fixed dash/gap cycle.
type Pattern struct {
	Dash, Gap float64
}

// Validate checks that both lengths are finite and longer than Tolerance.
// A phase at or below Tolerance would flip on every step of the walker
// without moving it.
func (p Pattern) Validate() error {
	if !validLength(p.Dash) || !validLength(p.Gap) {
		return fmt.Errorf("%w: dash=%g gap=%g", ErrBadPattern, p.Dash, p.Gap)
	}
	return nil
}

func validLength(v float64) bool {
	return v > Tolerance && !math.IsInf(v, 0)
}

// Span is one renderable dash.
type Span struct {
	Start, End geom.Point
}

// Length returns the span length.
func (s Span) Length() float64 { return s.Start.Distance(s.End) }

type phase uint8

const (
	phaseDash phase = iota
	phaseGap
)

// walker is the per-path dash state.
type walker struct {
	pat       Pattern
	phase     phase
	remaining float64
	spans     []Span
}

// Spans returns the dash spans along points. For closed paths points must not
// repeat the first point at the end; the closing segment is walked last.
// An invalid pattern yields no spans.
//
// Complexity: O(n + L/min(dash,gap)) where L is the total arc length.
func Spans(points []geom.Point, closed bool, pat Pattern) []Span {
	if pat.Validate() != nil || len(points) < 2 {
		return nil
	}
	w := &walker{pat: pat, phase: phaseDash, remaining: pat.Dash}

	n := len(points)
	count := n - 1
	if closed {
		count = n
	}
	for i := 0; i < count; i++ {
		w.segment(points[i], points[(i+1)%n])
	}
	return w.spans
}

// segment consumes one path segment. It stops early once a step no longer
// shortens what is left, which happens when the segment is too long for
// float64 to resolve a single phase.
func (w *walker) segment(a, b geom.Point) {
	v := a.VectorTo(b)
	length := v.Length()
	if length <= Tolerance {
		return
	}
	dir := v.Scale(1 / length)

	left := length
	cursor := a
	for left > Tolerance {
		travel := min(w.remaining, left)
		if left-travel == left {
			return
		}
		next := cursor.Translate(dir.Scale(travel))
		if w.phase == phaseDash {
			w.spans = append(w.spans, Span{Start: cursor, End: next})
		}
		w.remaining -= travel
		left -= travel
		cursor = next

		if w.remaining <= Tolerance {
			w.flip()
		}
	}
}

func (w *walker) flip() {
	if w.phase == phaseDash {
		w.phase, w.remaining = phaseGap, w.pat.Gap
	} else {
		w.phase, w.remaining = phaseDash, w.pat.Dash
	}
}

// Strips emits one flat quad of the given width per span into m, oriented up
// and tagged mesh.Centerline. It returns the number of triangles built.
func Strips(m *mesh.Mesh, spans []Span, width float64) (int, error) {
	if m == nil {
		return 0, ErrMeshNil
	}
	if !(width > 0) {
		return 0, fmt.Errorf("%w: %g", ErrBadLineWidth, width)
	}
	half := width / 2

	built := 0
	for _, s := range spans {
		d := s.Start.VectorTo(s.End)
		if d.IsZero() {
			continue
		}
		c := section.Cross(section.Horizontal(d), geom.UnitX)
		q := [4]geom.Point{
			s.Start.Offset(c, half),
			s.End.Offset(c, half),
			s.End.Offset(c, -half),
			s.Start.Offset(c, -half),
		}
		built += m.AddQuad(mesh.Centerline, q, mesh.Up, false)
	}
	return built, nil
}
