// SPDX-License-Identifier: MIT

package builder

import "github.com/anayp/roadbuilder/geom"

// Chain returns a Constructor that emits n collinear points along +X joined
// by n-1 segments: a straight road with two terminals.
//
// Complexity: O(n).
func Chain(n int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if n < minChainPoints {
			return builderErrorf(methodChain, ErrTooFewPoints, "n=%d < %d", n, minChainPoints)
		}
		for i := 0; i < n-1; i++ {
			s.Line(cfg, cfg.at(float64(i), 0), cfg.at(float64(i+1), 0))
		}
		return nil
	}
}

// Polyline returns a Constructor that emits one segment per consecutive pair
// of pts, translated by the configured origin. Spacing is not applied.
//
// Complexity: O(len(pts)).
func Polyline(pts ...geom.Point) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if len(pts) < minPolylinePoints {
			return builderErrorf(methodPolyline, ErrTooFewPoints, "len=%d < %d", len(pts), minPolylinePoints)
		}
		shift := geom.Pt(0, 0, 0).VectorTo(cfg.origin)
		for i := 0; i+1 < len(pts); i++ {
			s.Line(cfg, pts[i].Translate(shift), pts[i+1].Translate(shift))
		}
		return nil
	}
}
