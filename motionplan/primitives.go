package motionplan

import (
	"github.com/scanbot-robotics/scanplan/command"
	"github.com/scanbot-robotics/scanplan/obstacle"
	"github.com/scanbot-robotics/scanplan/spatialmath"
)

// successor is one motion primitive applied from a search state: the
// resulting pose and the command weight to charge for taking it
// (spec.md §4.4's six primitives: unit straight step forward/back, and the
// four medium-turn arcs).
type successor struct {
	command command.Command
	pose    spatialmath.RobotPose
	weight  int
}

// candidateCommands is the fixed primitive set the search expands from every
// state, mirroring ModifiedAStar.get_neighbours in
// original_source/app/path_finding/modified_a_star.py.
func candidateCommands() []command.Command {
	cmds := make([]command.Command, 0, 6)
	cmds = append(cmds, command.Straight{Dist: obstacle.Cell}, command.Straight{Dist: -obstacle.Cell})
	for _, t := range command.AllMediumTurns() {
		cmds = append(cmds, t)
	}
	return cmds
}

// successors returns every valid motion-primitive expansion from pose,
// given the grid and the turn weight of the active variant. A primitive is
// dropped when its terminal pose is invalid, or — for turns — when the
// swept arc it sweeps through clips an obstacle or the grid border
// (spec.md §4.4 "Collision (swept volume for turns)").
func successors(grid *obstacle.Grid, pose spatialmath.RobotPose, v variant) []successor {
	var out []successor
	for _, c := range candidateCommands() {
		next := c.Apply(pose)

		if _, isTurn := c.(command.Turn); isTurn {
			if !sweptArcValid(grid, pose, next) {
				continue
			}
			out = append(out, successor{command: c, pose: next, weight: v.turnWeight})
			continue
		}

		if !grid.IsValid(next.Position, false) {
			continue
		}
		out = append(out, successor{command: c, pose: next, weight: WeightStraight})
	}
	return out
}
