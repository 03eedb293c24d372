// SPDX-License-Identifier: MIT

package builder

// Constructor method names used as error prefixes.
const (
	methodChain    = "Chain"
	methodPolyline = "Polyline"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodGrid     = "Grid"
)

// Minimum sizes per constructor.
const (
	minChainPoints    = 2
	minPolylinePoints = 2
	minCyclePoints    = 3
	minStarPoints     = 2
	minWheelPoints    = 4
	minGridSide       = 1
)
