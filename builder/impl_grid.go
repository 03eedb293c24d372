// SPDX-License-Identifier: MIT

package builder

// Grid returns a Constructor that emits a rows×cols lattice of points spaced
// by spacing, with a street between every 4-neighborhood pair. Horizontal
// streets are emitted row by row, then vertical streets column by column.
//
// A 1×1 grid is a single point and emits nothing.
//
// Complexity: O(rows*cols).
func Grid(rows, cols int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return builderErrorf(methodGrid, ErrTooFewPoints, "rows=%d cols=%d < %d", rows, cols, minGridSide)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c+1 < cols; c++ {
				s.Line(cfg, cfg.at(float64(c), float64(r)), cfg.at(float64(c+1), float64(r)))
			}
		}
		for c := 0; c < cols; c++ {
			for r := 0; r+1 < rows; r++ {
				s.Line(cfg, cfg.at(float64(c), float64(r)), cfg.at(float64(c), float64(r+1)))
			}
		}
		return nil
	}
}
