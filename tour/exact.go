package tour

import "github.com/scanbot-robotics/scanplan/spatialmath"

// exactSolve enumerates every permutation of stops and returns the
// visiting order with the lowest TotalCost. Used only for len(stops) <=
// ExactThreshold, where 8! = 40320 permutations is cheap to enumerate in
// full (spec.md §4.3).
func exactSolve(start spatialmath.RobotPose, stops []Stop) []int {
	base := make([]int, len(stops))
	for i := range base {
		base[i] = i
	}

	best := append([]int(nil), base...)
	bestCost := TotalCost(start, stops, best)

	permute(base, 0, func(order []int) {
		cost := TotalCost(start, stops, order)
		if cost < bestCost {
			bestCost = cost
			best = append(best[:0], order...)
		}
	})

	return best
}

// permute calls visit with every permutation of perm[k:], holding perm[:k]
// fixed, by swapping each candidate into position k and recursing.
func permute(perm []int, k int, visit func([]int)) {
	if k == len(perm) {
		visit(perm)
		return
	}
	for i := k; i < len(perm); i++ {
		perm[k], perm[i] = perm[i], perm[k]
		permute(perm, k+1, visit)
		perm[k], perm[i] = perm[i], perm[k]
	}
}
