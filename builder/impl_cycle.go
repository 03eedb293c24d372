// SPDX-License-Identifier: MIT

package builder

import (
	"math"

	"github.com/anayp/roadbuilder/geom"
)

// ringPoints places n points on a circle of radius spacing around the origin,
// starting on +X and turning counter-clockwise.
func ringPoints(cfg builderConfig, n int) []geom.Point {
	pts := make([]geom.Point, n)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = cfg.at(math.Cos(theta), math.Sin(theta))
	}
	return pts
}

// Cycle returns a Constructor that emits a regular n-gon: a ring road where
// every point has degree 2.
//
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if n < minCyclePoints {
			return builderErrorf(methodCycle, ErrTooFewPoints, "n=%d < %d", n, minCyclePoints)
		}
		pts := ringPoints(cfg, n)
		for i := range pts {
			s.Line(cfg, pts[i], pts[(i+1)%n])
		}
		return nil
	}
}
