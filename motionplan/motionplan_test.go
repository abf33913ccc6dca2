package motionplan

import (
	"testing"

	"github.com/edaniels/golog"
	"go.viam.com/test"

	"github.com/scanbot-robotics/scanplan/command"
	"github.com/scanbot-robotics/scanplan/obstacle"
	"github.com/scanbot-robotics/scanplan/spatialmath"
)

func emptyGrid() *obstacle.Grid {
	return obstacle.NewGrid(nil)
}

func TestFindPathStraightLineIsPureStraights(t *testing.T) {
	logger := golog.NewTestLogger(t)
	grid := emptyGrid()

	start := spatialmath.NewRobotPose(20, 20, spatialmath.East)
	goal := spatialmath.NewRobotPose(80, 20, spatialmath.East)

	cmds, final, ok := FindPath(logger, grid, start, goal)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, final.Equal(goal), test.ShouldBeTrue)

	totalDist := 0
	for _, c := range cmds {
		s, isStraight := c.(command.Straight)
		test.That(t, isStraight, test.ShouldBeTrue)
		totalDist += s.Dist
	}
	test.That(t, totalDist, test.ShouldEqual, 60)
	test.That(t, len(cmds), test.ShouldEqual, 6)
}

func TestFindPathRequiresTurnWhenHeadingDiffers(t *testing.T) {
	logger := golog.NewTestLogger(t)
	grid := emptyGrid()

	start := spatialmath.NewRobotPose(100, 100, spatialmath.East)
	goal := spatialmath.NewRobotPose(100, 100, spatialmath.North)

	cmds, final, ok := FindPath(logger, grid, start, goal)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, final.Equal(goal), test.ShouldBeTrue)
	test.That(t, len(cmds), test.ShouldBeGreaterThan, 0)

	sawTurn := false
	for _, c := range cmds {
		if _, isTurn := c.(command.Turn); isTurn {
			sawTurn = true
		}
	}
	test.That(t, sawTurn, test.ShouldBeTrue)
}

func TestFindPathFailsWhenGoalFullySurrounded(t *testing.T) {
	logger := golog.NewTestLogger(t)

	blockers := []*obstacle.Obstacle{}
	for i, d := range [][2]int{{110, 100}, {90, 100}, {100, 110}, {100, 90}} {
		o, err := obstacle.New(i, d[0], d[1], spatialmath.North)
		test.That(t, err, test.ShouldBeNil)
		blockers = append(blockers, o)
	}
	grid := obstacle.NewGrid(blockers)

	start := spatialmath.NewRobotPose(20, 20, spatialmath.East)
	goal := spatialmath.NewRobotPose(100, 100, spatialmath.North)

	_, _, ok := FindPath(logger, grid, start, goal)
	test.That(t, ok, test.ShouldBeFalse)
}

func TestSearchIsDeterministic(t *testing.T) {
	logger := golog.NewTestLogger(t)
	grid := emptyGrid()
	start := spatialmath.NewRobotPose(20, 20, spatialmath.East)
	goal := spatialmath.NewRobotPose(150, 150, spatialmath.South)

	first, _, ok1 := FindPath(logger, grid, start, goal)
	second, _, ok2 := FindPath(logger, grid, start, goal)
	test.That(t, ok1, test.ShouldBeTrue)
	test.That(t, ok2, test.ShouldBeTrue)
	test.That(t, len(first), test.ShouldEqual, len(second))
	for i := range first {
		test.That(t, first[i].Encode(), test.ShouldEqual, second[i].Encode())
	}
}

func TestSweptArcValidRejectsObstacleInArcSwing(t *testing.T) {
	// Obstacle placed squarely in the swept region of a left-forward medium
	// turn starting heading North should block that turn even though the
	// terminal cell itself is clear.
	o, err := obstacle.New(0, 100, 130, spatialmath.North)
	test.That(t, err, test.ShouldBeNil)
	grid := obstacle.NewGrid([]*obstacle.Obstacle{o})

	p := spatialmath.NewRobotPose(100, 100, spatialmath.North)
	p2 := command.NewTurnLeft().Apply(p)

	test.That(t, sweptArcValid(grid, p, p2), test.ShouldBeFalse)
}

func TestSweptArcValidAcceptsClearArc(t *testing.T) {
	grid := emptyGrid()
	p := spatialmath.NewRobotPose(100, 100, spatialmath.North)
	p2 := command.NewTurnLeft().Apply(p)
	test.That(t, sweptArcValid(grid, p, p2), test.ShouldBeTrue)
}
