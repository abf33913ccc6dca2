package tour

import (
	"math/rand"

	"github.com/edaniels/golog"
	"go.viam.com/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/scanbot-robotics/scanplan/spatialmath"
)

// Genetic-search parameters, fixed per spec.md §4.3.
const (
	populationSize = 100
	generations    = 500
	mutationRate   = 0.02
)

// geneticSolve runs a generational GA seeded with a nearest-neighbour tour,
// using order crossover and elitist top-half survival, and returns the best
// visiting order found. The generational loop runs on its own goroutine,
// wrapped in utils.PanicCapturingGo so a panic deep in the evaluation loop
// surfaces as a logged crash instead of taking the whole process down, and
// its result is joined back over a channel before Solve returns.
func geneticSolve(logger golog.Logger, start spatialmath.RobotPose, stops []Stop, seed int64) []int {
	result := make(chan []int, 1)
	utils.PanicCapturingGo(func() {
		result <- runGenerations(logger, start, stops, seed)
	})
	return <-result
}

func runGenerations(logger golog.Logger, start spatialmath.RobotPose, stops []Stop, seed int64) []int {
	rng := rngFromSeed(seed)
	n := len(stops)

	pop := make([][]int, populationSize)
	pop[0] = nearestNeighborTour(start, stops)
	for i := 1; i < populationSize; i++ {
		pop[i] = shuffledOrder(n, rng)
	}

	costs := make([]float64, populationSize)
	evalPopulation(start, stops, pop, costs)

	bestIdx := floats.MinIdx(costs)
	bestOrder := append([]int(nil), pop[bestIdx]...)
	bestCost := costs[bestIdx]

	for gen := 0; gen < generations; gen++ {
		sortByCost(pop, costs)

		if logger != nil && gen%50 == 0 {
			mean, stddev := stat.MeanStdDev(costs, nil)
			logger.Debugw("tour ga generation", "gen", gen, "meanCost", mean, "stddevCost", stddev, "bestCost", costs[0])
		}

		if costs[0] < bestCost {
			bestCost = costs[0]
			bestOrder = append(bestOrder[:0], pop[0]...)
		}

		survivors := populationSize / 2
		next := make([][]int, populationSize)
		copy(next[:survivors], pop[:survivors])

		for i := survivors; i < populationSize; i++ {
			p1 := next[rng.Intn(survivors)]
			p2 := next[rng.Intn(survivors)]
			child := orderCrossover(p1, p2, rng)
			if rng.Float64() < mutationRate {
				mutate(child, rng)
			}
			next[i] = child
		}

		pop = next
		evalPopulation(start, stops, pop, costs)
	}

	if best := floats.MinIdx(costs); costs[best] < bestCost {
		bestOrder = append(bestOrder[:0], pop[best]...)
	}
	return bestOrder
}

func evalPopulation(start spatialmath.RobotPose, stops []Stop, pop [][]int, costs []float64) {
	for i, order := range pop {
		costs[i] = TotalCost(start, stops, order)
	}
}

// sortByCost sorts pop and costs together, ascending by cost, via a plain
// insertion sort; population sizes here are small (100) so this stays
// cheap and keeps the pairing between the two slices obviously correct.
func sortByCost(pop [][]int, costs []float64) {
	for i := 1; i < len(pop); i++ {
		for j := i; j > 0 && costs[j] < costs[j-1]; j-- {
			pop[j], pop[j-1] = pop[j-1], pop[j]
			costs[j], costs[j-1] = costs[j-1], costs[j]
		}
	}
}

func shuffledOrder(n int, rng *rand.Rand) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
	return order
}

// nearestNeighborTour greedily visits the closest unvisited stop at each
// step, used to seed the GA's initial population with a reasonable tour.
func nearestNeighborTour(start spatialmath.RobotPose, stops []Stop) []int {
	n := len(stops)
	visited := make([]bool, n)
	order := make([]int, 0, n)

	cur := start
	for len(order) < n {
		best := -1
		bestCost := 0.0
		for i, s := range stops {
			if visited[i] {
				continue
			}
			c := Cost(cur, s.Pose)
			if best == -1 || c < bestCost {
				best = i
				bestCost = c
			}
		}
		visited[best] = true
		order = append(order, best)
		cur = stops[best].Pose
	}
	return order
}

// orderCrossover implements OX1: a contiguous slice of p1 is copied
// verbatim, and the remaining cities are filled in p2's relative order
// (grounded on the crossover idiom used throughout the tsp GA literature
// the 2-opt package itself builds on).
func orderCrossover(p1, p2 []int, rng *rand.Rand) []int {
	n := len(p1)
	a := rng.Intn(n)
	b := rng.Intn(n)
	if a > b {
		a, b = b, a
	}

	child := make([]int, n)
	taken := make([]bool, n)
	for i := a; i <= b; i++ {
		child[i] = p1[i]
		taken[p1[i]] = true
	}

	pos := 0
	for _, city := range p2 {
		if taken[city] {
			continue
		}
		for pos >= a && pos <= b {
			pos++
		}
		child[pos] = city
		pos++
	}
	return child
}

func mutate(order []int, rng *rand.Rand) {
	n := len(order)
	if n < 2 {
		return
	}
	i := rng.Intn(n)
	j := rng.Intn(n)
	order[i], order[j] = order[j], order[i]
}
