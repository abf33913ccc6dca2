package planrequest

import (
	"github.com/edaniels/golog"
	"github.com/google/uuid"

	"github.com/scanbot-robotics/scanplan/command"
	"github.com/scanbot-robotics/scanplan/motionplan"
	"github.com/scanbot-robotics/scanplan/obstacle"
	"github.com/scanbot-robotics/scanplan/spatialmath"
	"github.com/scanbot-robotics/scanplan/tour"
)

// DefaultStart is the robot's canonical starting pose used across spec.md
// §8's end-to-end scenarios when no other start is specified.
var DefaultStart = spatialmath.NewRobotPose(2*obstacle.Cell, 2*obstacle.Cell, spatialmath.North)

// Plan is the result of assembling a full visit plan: the compressed
// command list, the obstacle indices actually visited (in tour order, a
// subset of the input when some targets proved unreachable), and the final
// pose the robot ends at.
type Plan struct {
	Commands []command.Command
	Visited  []int
	Final    spatialmath.RobotPose
}

// BuildPlan runs the tour solver over obstacles' target poses, plans a leg
// of kinematic A* between each consecutive stop (inserting a Scan marker on
// success), and compresses the resulting command stream (spec.md §4.5).
// Unreachable targets are logged and skipped; the plan is otherwise
// returned as the best-effort partial result (spec.md §7).
func BuildPlan(logger golog.Logger, start spatialmath.RobotPose, obstacles []*obstacle.Obstacle, seed int64) Plan {
	requestID := uuid.New()
	logger = logger.With("requestId", requestID.String())

	if len(obstacles) == 0 {
		logger.Infow("empty obstacle batch, returning empty plan")
		return Plan{Final: start}
	}

	grid := obstacle.NewGrid(obstacles)

	stops := make([]tour.Stop, len(obstacles))
	for i, o := range obstacles {
		stops[i] = tour.Stop{ObstacleIndex: o.Index, Pose: o.TargetPose()}
	}
	ordered := tour.Solve(logger, start, stops, seed)

	var cmds []command.Command
	var visited []int
	current := start

	for _, stop := range ordered {
		legCmds, final, ok := motionplan.FindPath(logger, grid, current, stop.Pose)
		if !ok {
			logger.Warnw("no path found to obstacle target, skipping", "obstacleIndex", stop.ObstacleIndex)
			continue
		}
		cmds = append(cmds, legCmds...)
		cmds = append(cmds, command.Scan{ObstacleIndex: stop.ObstacleIndex})
		visited = append(visited, stop.ObstacleIndex)
		current = final
	}

	return Plan{
		Commands: command.Compress(cmds),
		Visited:  visited,
		Final:    current,
	}
}

// FallbackPlan builds the canonical three-command fallback for a
// "NONE,<id>" payload: back off ten units, scan, then return to the
// original standoff (spec.md §6, §13).
func FallbackPlan(obstacleID int) Plan {
	cmds := []command.Command{
		command.Straight{Dist: -obstacle.Cell},
		command.Scan{ObstacleIndex: obstacleID},
		command.Straight{Dist: obstacle.Cell},
	}
	return Plan{Commands: cmds, Visited: []int{obstacleID}}
}
