// Package motionplan implements the kinematic A* search: a weighted A* over
// the (x, y, heading) lattice whose successors are the robot's six motion
// primitives (unit straight step, 90-degree medium arc turn), rather than
// plain grid neighbours (spec.md §4.4).
package motionplan

// Movement weights, reproduced from original_source/app/path_finding's
// WeightedAStar.WEIGHT_* constants (spec.md §4.4, §6). Only straight and
// medium-turn weights are ever emitted by the current primitive set; small
// and large turn weights are reserved so that a future primitive extension
// orders correctly against them without renumbering.
const (
	WeightStraight   = 0
	WeightSmallTurn  = 10
	WeightMediumTurn = 20
	WeightLargeTurn  = 30
)

// modifiedTurnPenalty is the Modified A* variant's flat additive turn
// penalty, applied at successor generation in place of WeightMediumTurn
// (spec.md §4.5).
const modifiedTurnPenalty = 50

// directionPenalty is added to the heuristic when the candidate pose's
// heading does not match the goal's (spec.md §4.4).
const directionPenalty = 10

// revisitPenalty is added to a successor's tentative cost when that state
// already has an entry in the came-from map, discouraging oscillation while
// still allowing strictly cheaper revisits (spec.md §4.4).
const revisitPenalty = 10

// infCost stands in for the "+infinity" default g-cost of spec.md §4.4's
// relaxation test; the search space is bounded so this is never approached.
const infCost = 1e18

// MaxPathAttempts bounds how many times the plan assembler retries a single
// leg across the Weighted/Modified variants before giving up (spec.md §4.5).
const MaxPathAttempts = 3
