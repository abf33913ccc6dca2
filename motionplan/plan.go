package motionplan

import (
	"github.com/edaniels/golog"

	"github.com/scanbot-robotics/scanplan/command"
	"github.com/scanbot-robotics/scanplan/obstacle"
	"github.com/scanbot-robotics/scanplan/spatialmath"
)

// FindPath searches for a command sequence from start to goal over grid,
// retrying up to MaxPathAttempts times across the Weighted/Modified variant
// sequence before giving up (spec.md §4.5). ok is false only when every
// attempt exhausts its open set without reaching goal.
func FindPath(logger golog.Logger, grid *obstacle.Grid, start, goal spatialmath.RobotPose) (cmds []command.Command, final spatialmath.RobotPose, ok bool) {
	for attempt := 0; attempt < MaxPathAttempts && attempt < len(variantsInAttemptOrder); attempt++ {
		v := variantsInAttemptOrder[attempt]
		cmds, final, ok = search(logger, grid, start, goal, v)
		if ok {
			return cmds, final, true
		}
		logger.Debugw("kinematic a* attempt failed, retrying with next variant", "attempt", attempt, "variant", v.name)
	}
	return nil, spatialmath.RobotPose{}, false
}
