package tour

import (
	"gonum.org/v1/gonum/floats"

	"github.com/scanbot-robotics/scanplan/spatialmath"
)

// maxTwoOptPasses bounds the polish step so a pathological instance can't
// spin forever chasing vanishingly small improvements (spec.md §4.3).
const maxTwoOptPasses = 100

// twoOpt repeatedly scans for a pair of edges whose reversal lowers the
// tour's total cost, accepting each improving move as soon as it is found
// and carrying on the scan from there, until a full pass finds nothing or
// the pass budget is exhausted.
func twoOpt(start spatialmath.RobotPose, stops []Stop, order []int) []int {
	order = append([]int(nil), order...)
	n := len(order)
	if n < 4 {
		return order
	}

	for pass := 0; pass < maxTwoOptPasses; pass++ {
		improved := false

		for i := 0; i < n-1; i++ {
			for k := i + 1; k < n; k++ {
				before := segmentCost(start, stops, order, i, k)
				reverse(order, i, k)
				after := segmentCost(start, stops, order, i, k)

				if after < before-1e-9 {
					improved = true
				} else {
					reverse(order, i, k)
				}
			}
		}

		if !improved {
			break
		}
	}

	return order
}

// segmentCost sums the legs touching the reversal boundary: the edge
// entering position i (from start, or from order[i-1]) through the edge
// leaving position k.
func segmentCost(start spatialmath.RobotPose, stops []Stop, order []int, i, k int) float64 {
	legs := make([]float64, 0, k-i+1)
	if i == 0 {
		legs = append(legs, Cost(start, stops[order[0]].Pose))
	} else {
		legs = append(legs, Cost(stops[order[i-1]].Pose, stops[order[i]].Pose))
	}
	for j := i; j < k; j++ {
		legs = append(legs, Cost(stops[order[j]].Pose, stops[order[j+1]].Pose))
	}
	if k+1 < len(order) {
		legs = append(legs, Cost(stops[order[k]].Pose, stops[order[k+1]].Pose))
	}
	return floats.Sum(legs)
}

func reverse(order []int, i, k int) {
	for i < k {
		order[i], order[k] = order[k], order[i]
		i++
		k--
	}
}
