// SPDX-License-Identifier: MIT

package road

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anayp/roadbuilder/core"
	"github.com/anayp/roadbuilder/dash"
	"github.com/anayp/roadbuilder/decompose"
	"github.com/anayp/roadbuilder/geom"
	"github.com/anayp/roadbuilder/mesh"
	"github.com/anayp/roadbuilder/ribbon"
)

// Skip reasons reported in PathResult.Skip.
const (
	SkipFewDistinct = "not enough distinct points"
	SkipNoSegments  = "no segments built"
	SkipNone        = ""
)

// minDistinctPoints is the fewest distinct points a ribbon can span.
const minDistinctPoints = 2

// PathResult is the outcome for one decomposed path.
type PathResult struct {
	Path decompose.Path

	// Skip is the reason the path produced no geometry, or SkipNone.
	Skip string

	// TopFaces is the number of top quads built.
	TopFaces int

	// Center is the ribbon centerline, one point per ordered path point.
	Center []geom.Point

	// Spans are the dashes along Center; nil when the centerline is off.
	Spans []dash.Span

	// CenterFaces counts the triangles of this path's dash strips.
	CenterFaces int
}

// Skipped reports whether the path produced no geometry.
func (p PathResult) Skipped() bool { return p.Skip != SkipNone }

// Result is the outcome of Compile.
type Result struct {
	// Paths in decomposition order, skipped ones included.
	Paths []PathResult

	// TotalSegments sums TopFaces over all paths.
	TotalSegments int

	// CenterFaces sums the dash strip triangles over all paths.
	CenterFaces int

	// Skipped counts paths that produced no geometry.
	Skipped int

	// Exhausted counts walks cut short by the decomposition step bound.
	Exhausted int

	// Mesh receives every face.
	Mesh *mesh.Mesh
}

// Empty reports whether no top face was built.
func (r *Result) Empty() bool { return r == nil || r.TotalSegments == 0 }

// Err returns ErrNoGeometry when the result is empty, nil otherwise.
func (r *Result) Err() error {
	if r.Empty() {
		return ErrNoGeometry
	}
	return nil
}

// Compile turns segs into road geometry.
//
// Steps:
//  1. Validate cfg.
//  2. Index and decompose segs.
//  3. Build a ribbon, and optionally a dashed centerline, per path.
//
// The context is checked between paths; on cancellation the partial Result
// is returned together with ctx.Err().
func Compile(ctx context.Context, segs []core.Segment, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	log := Logger()

	idx := core.NewIndex(segs)
	dec, err := decompose.Decompose(idx, decompose.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("road: decompose: %w", err)
	}

	res := &Result{
		Paths:     make([]PathResult, 0, len(dec.Paths)),
		Exhausted: dec.Exhausted,
		Mesh:      mesh.New(),
	}
	if dec.Exhausted > 0 {
		log.Warn("path walk hit step bound", slog.Int("walks", dec.Exhausted))
	}

	for i, p := range dec.Paths {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		pr := compilePath(idx, p, cfg, res.Mesh)
		if pr.Skipped() {
			res.Skipped++
			log.Debug("path skipped",
				slog.Int("path", i),
				slog.Int("points", len(p.Points)),
				slog.String("reason", pr.Skip))
		}
		res.TotalSegments += pr.TopFaces
		res.CenterFaces += pr.CenterFaces
		res.Paths = append(res.Paths, pr)
	}

	log.Info("road complete",
		slog.Int("segments", res.TotalSegments),
		slog.Int("paths", len(res.Paths)),
		slog.Int("skipped", res.Skipped))
	return res, nil
}

// compilePath builds one path into m.
func compilePath(idx *core.Index, p decompose.Path, cfg Config, m *mesh.Mesh) PathResult {
	pr := PathResult{Path: p}

	if p.Distinct() < minDistinctPoints {
		pr.Skip = SkipFewDistinct
		return pr
	}
	// Ordered drops at most the closing repeat of the first point, so it
	// keeps every distinct point and needs no check of its own.
	pts := p.Ordered()

	// Dead ends get caps; junction ends stay open against the adjoining road.
	capStart := !p.Closed && idx.Degree(p.First()) == 1
	capEnd := !p.Closed && idx.Degree(p.Last()) == 1

	g, err := ribbon.Build(m, pts, p.Closed, cfg.params(capStart, capEnd))
	if err != nil {
		// cfg was validated by Compile.
		pr.Skip = SkipNoSegments
		return pr
	}
	pr.Center = g.Center
	pr.TopFaces = g.TopFaces
	if g.TopFaces == 0 {
		pr.Skip = SkipNoSegments
		return pr
	}

	if cfg.AddCenterLine {
		pr.Spans = dash.Spans(g.Center, p.Closed, cfg.pattern())
		pr.CenterFaces, _ = dash.Strips(m, pr.Spans, cfg.CenterLineWidth)
		if pr.CenterFaces == 0 {
			Logger().Debug("no dashes created", slog.Int("points", len(pts)))
		}
	}
	return pr
}
