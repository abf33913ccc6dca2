// Package tour orders a set of obstacle target poses into a low-cost visiting
// sequence: exact permutation search for small instances, a genetic
// algorithm with a 2-opt polish for larger ones (spec.md §4.3).
package tour

import (
	"github.com/edaniels/golog"

	"github.com/scanbot-robotics/scanplan/spatialmath"
)

// ExactThreshold is the obstacle count at and below which the tour is solved
// by exhaustive permutation enumeration rather than the genetic search.
const ExactThreshold = 8

// Stop is one waypoint the tour visits: an obstacle index paired with the
// pose the robot must reach to scan it.
type Stop struct {
	ObstacleIndex int
	Pose          spatialmath.RobotPose
}

// Solve orders stops into a low-cost visiting sequence starting from start,
// minimising the heading-aware Chebyshev cost estimate (spec.md §4.3). It
// returns stops permuted into visiting order. An empty or single-element
// input is returned unchanged.
func Solve(logger golog.Logger, start spatialmath.RobotPose, stops []Stop, seed int64) []Stop {
	if len(stops) <= 1 {
		return stops
	}

	if !allReachable(start, stops) {
		logger.Warnw("unreachable pairwise distance in tour, falling back to identity order", "numStops", len(stops))
		return stops
	}

	if len(stops) <= ExactThreshold {
		order := exactSolve(start, stops)
		return reorder(stops, order)
	}

	order := geneticSolve(logger, start, stops, seed)
	order = twoOpt(start, stops, order)
	return reorder(stops, order)
}

func reorder(stops []Stop, order []int) []Stop {
	out := make([]Stop, len(order))
	for i, idx := range order {
		out[i] = stops[idx]
	}
	return out
}

// allReachable reports whether every pairwise heading-aware distance
// (including from start) is finite. The cost estimate here is never
// infinite by construction (see Cost), but the hook exists per spec.md
// §4.3's "if any pairwise d̂ is unreachable/∞" edge case, matching the
// planner's defensive style elsewhere.
func allReachable(start spatialmath.RobotPose, stops []Stop) bool {
	for _, s := range stops {
		if isInf(Cost(start, s.Pose)) {
			return false
		}
	}
	for i := range stops {
		for j := range stops {
			if i == j {
				continue
			}
			if isInf(Cost(stops[i].Pose, stops[j].Pose)) {
				return false
			}
		}
	}
	return true
}

func isInf(f float64) bool {
	return f > 1e18
}

// Cost implements the heading-aware Chebyshev estimate d̂(A,B) from
// spec.md §4.3.
func Cost(a, b spatialmath.RobotPose) float64 {
	dx := abs(a.X() - b.X())
	dy := abs(a.Y() - b.Y())
	gridDist := float64(min(dx, dy)+absInt(dx-dy)) / 10.0

	deltaTheta := spatialmath.AngleDelta(a.Heading, b.Heading)
	dirPenalty := float64(deltaTheta) / 90.0 * 5.0

	return gridDist + dirPenalty
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func absInt(x int) int { return abs(x) }

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// TotalCost computes C(order) = d̂(start, stops[order[0]]) + sum of
// consecutive leg costs, matching spec.md §4.3.
func TotalCost(start spatialmath.RobotPose, stops []Stop, order []int) float64 {
	if len(order) == 0 {
		return 0
	}
	total := Cost(start, stops[order[0]].Pose)
	for i := 0; i+1 < len(order); i++ {
		total += Cost(stops[order[i]].Pose, stops[order[i+1]].Pose)
	}
	return total
}
