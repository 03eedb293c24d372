// SPDX-License-Identifier: MIT

package road

import (
	"errors"
	"fmt"
	"math"

	"github.com/anayp/roadbuilder/dash"
	"github.com/anayp/roadbuilder/ribbon"
)

var (
	// ErrInvalidWidth indicates a non-positive or non-finite half-width.
	ErrInvalidWidth = errors.New("road: width must be greater than 0")

	// ErrInvalidThickness indicates a negative or non-finite thickness.
	ErrInvalidThickness = errors.New("road: thickness must be 0 or greater")

	// ErrInvalidDash indicates a centerline dimension that is non-positive or
	// non-finite, or a dash or gap no longer than dash.Tolerance, while the
	// centerline is enabled.
	ErrInvalidDash = errors.New("road: centerline dash, gap and width must be greater than 0")

	// ErrNoGeometry is reported by Result.Err when no top face was built.
	ErrNoGeometry = errors.New("road: no road segments were created")
)

// Default dimensions, units agnostic.
const (
	DefaultWidth           = 20.0
	DefaultThickness       = 1.0
	DefaultDashLength      = 10.0
	DefaultGapLength       = 10.0
	DefaultCenterLineWidth = 0.5
)

// Config holds the road dimensions.
type Config struct {
	// HalfWidth is the distance from the centerline to each road edge.
	HalfWidth float64

	// Thickness extrudes a solid below the road surface; 0 keeps it flat.
	Thickness float64

	// AddCenterLine enables the dashed centerline.
	AddCenterLine bool

	// CenterDashLength and CenterGapLength define the dash cycle.
	CenterDashLength float64
	CenterGapLength  float64

	// CenterLineWidth is the width of each dash strip.
	CenterLineWidth float64
}

// DefaultConfig returns a 20 wide, 1 thick road without centerline, with the
// centerline dimensions preset to 10/10/0.5.
func DefaultConfig() Config {
	return Config{
		HalfWidth:        DefaultWidth / 2,
		Thickness:        DefaultThickness,
		CenterDashLength: DefaultDashLength,
		CenterGapLength:  DefaultGapLength,
		CenterLineWidth:  DefaultCenterLineWidth,
	}
}

// Width returns the full road width.
func (c Config) Width() float64 { return 2 * c.HalfWidth }

// Validate checks the numeric fields. Centerline dimensions are only checked
// when AddCenterLine is set.
func (c Config) Validate() error {
	if !(c.HalfWidth > 0) || math.IsInf(c.HalfWidth, 0) {
		return fmt.Errorf("%w: half-width %g", ErrInvalidWidth, c.HalfWidth)
	}
	if !(c.Thickness >= 0) || math.IsInf(c.Thickness, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidThickness, c.Thickness)
	}
	if c.AddCenterLine {
		if err := c.pattern().Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDash, err)
		}
		if !(c.CenterLineWidth > 0) {
			return fmt.Errorf("%w: line width %g", ErrInvalidDash, c.CenterLineWidth)
		}
	}
	return nil
}

func (c Config) pattern() dash.Pattern {
	return dash.Pattern{Dash: c.CenterDashLength, Gap: c.CenterGapLength}
}

func (c Config) params(capStart, capEnd bool) ribbon.Params {
	return ribbon.Params{
		HalfWidth: c.HalfWidth,
		Thickness: c.Thickness,
		CapStart:  capStart,
		CapEnd:    capEnd,
	}
}
