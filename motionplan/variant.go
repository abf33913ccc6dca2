package motionplan

import (
	"math"

	"github.com/scanbot-robotics/scanplan/obstacle"
	"github.com/scanbot-robotics/scanplan/spatialmath"
)

// variant selects between the two planner behaviours spec.md §4.5 describes:
// Weighted A* (the primary attempt) and Modified A* (the fallback, with a
// larger flat turn penalty and a Euclidean rather than Chebyshev distance
// heuristic).
type variant struct {
	name       string
	turnWeight int
	distance   func(a, b spatialmath.RobotPose) float64
}

var weightedVariant = variant{
	name:       "weighted",
	turnWeight: WeightMediumTurn,
	distance:   chebyshevDistance,
}

var modifiedVariant = variant{
	name:       "modified",
	turnWeight: modifiedTurnPenalty,
	distance:   euclideanDistance,
}

// variantsInAttemptOrder is the fixed Weighted-then-Modified-then-Modified
// sequence the plan assembler retries a leg through, bounded by
// MaxPathAttempts (spec.md §4.5: "trying a Weighted A* first then a
// Modified A* variant").
var variantsInAttemptOrder = []variant{weightedVariant, modifiedVariant, modifiedVariant}

// heuristic implements h(s) = distance(s, goal) + direction_penalty(s, goal)
// from spec.md §4.4.
func (v variant) heuristic(s, goal spatialmath.RobotPose) float64 {
	h := v.distance(s, goal)
	if s.Heading != goal.Heading {
		h += directionPenalty
	}
	return h
}

// chebyshevDistance is the grid_dist term of tour.Cost, scaled to cells:
// (min(dx,dy) + |dx-dy|) / CELL, which is algebraically the Chebyshev
// (diagonal) distance between two grid-aligned points.
func chebyshevDistance(a, b spatialmath.RobotPose) float64 {
	dx := absInt(a.X() - b.X())
	dy := absInt(a.Y() - b.Y())
	diag := dx
	if dy < diag {
		diag = dy
	}
	return float64(diag+absInt(dx-dy)) / float64(obstacle.Cell)
}

// euclideanDistance is the Modified A* variant's distance_heuristic
// (original_source/app/path_finding/modified_a_star.py), kept unscaled to
// match the original's straight-line metric rather than the Weighted
// variant's cell-scaled Chebyshev one.
func euclideanDistance(a, b spatialmath.RobotPose) float64 {
	dx := float64(a.X() - b.X())
	dy := float64(a.Y() - b.Y())
	return math.Sqrt(dx*dx + dy*dy)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
