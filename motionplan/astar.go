package motionplan

import (
	"container/heap"

	"github.com/edaniels/golog"

	"github.com/scanbot-robotics/scanplan/command"
	"github.com/scanbot-robotics/scanplan/obstacle"
	"github.com/scanbot-robotics/scanplan/spatialmath"
)

// cameFromEntry records how a state was first (or most recently, on a
// cheaper revisit) reached: the parent state key and the command whose
// Apply produced this state from the parent. The start state's entry has a
// nil parent, the sentinel the backward walk stops at (spec.md §4.4 "Came-
// from map").
type cameFromEntry struct {
	hasParent bool
	parent    spatialmath.Key
	command   command.Command
}

// search runs one weighted-A* pass from start to goal over grid using the
// given variant's turn weight and heuristic, returning the command sequence
// and the goal pose on success. ok is false when the open set empties
// without reaching goal (spec.md §4.4 "Termination").
func search(logger golog.Logger, grid *obstacle.Grid, start, goal spatialmath.RobotPose, v variant) ([]command.Command, spatialmath.RobotPose, bool) {
	open := &openHeap{}
	heap.Init(open)

	g := map[spatialmath.Key]float64{start.Key(): 0}
	cameFrom := map[spatialmath.Key]cameFromEntry{start.Key(): {}}

	var counter int64
	heap.Push(open, &openItem{
		key:      start.Key(),
		pose:     start,
		priority: v.heuristic(start, goal),
		counter:  counter,
	})

	expanded := 0
	for open.Len() > 0 {
		current := heap.Pop(open).(*openItem)
		expanded++

		if current.key == goal.Key() {
			logger.Debugw("kinematic a* reached goal", "variant", v.name, "nodesExpanded", expanded)
			return reconstruct(cameFrom, current.key), current.pose, true
		}

		currentG := g[current.key]

		for _, succ := range successors(grid, current.pose, v) {
			key := succ.pose.Key()

			tentativeG := currentG + float64(succ.weight)
			if _, revisited := cameFrom[key]; revisited {
				tentativeG += revisitPenalty
			}

			existingG, ok := g[key]
			if !ok {
				existingG = infCost
			}
			if tentativeG >= existingG {
				continue
			}

			g[key] = tentativeG
			cameFrom[key] = cameFromEntry{hasParent: true, parent: current.key, command: succ.command}

			counter++
			priority := tentativeG + v.heuristic(succ.pose, goal) + float64(succ.weight)
			heap.Push(open, &openItem{key: key, pose: succ.pose, priority: priority, counter: counter})
		}
	}

	logger.Debugw("kinematic a* exhausted open set", "variant", v.name, "nodesExpanded", expanded)
	return nil, spatialmath.RobotPose{}, false
}

// reconstruct walks cameFrom backwards from goalKey to the start's sentinel
// entry, collecting the command taken into each state, then reverses the
// result into start-to-goal order (spec.md §4.4 "On success, walk the
// came-from map backwards").
func reconstruct(cameFrom map[spatialmath.Key]cameFromEntry, goalKey spatialmath.Key) []command.Command {
	var reversed []command.Command
	key := goalKey
	for {
		entry := cameFrom[key]
		if !entry.hasParent {
			break
		}
		reversed = append(reversed, entry.command)
		key = entry.parent
	}

	out := make([]command.Command, len(reversed))
	for i, c := range reversed {
		out[len(reversed)-1-i] = c
	}
	return out
}
