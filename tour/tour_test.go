package tour

import (
	"testing"

	"github.com/edaniels/golog"
	"go.viam.com/test"

	"github.com/scanbot-robotics/scanplan/internal/testlog"
	"github.com/scanbot-robotics/scanplan/spatialmath"
)

func TestCostAxisAligned(t *testing.T) {
	a := spatialmath.NewRobotPose(10, 10, spatialmath.East)
	b := spatialmath.NewRobotPose(50, 10, spatialmath.East)
	test.That(t, Cost(a, b), test.ShouldEqual, 4.0)
}

func TestCostDirectionPenalty(t *testing.T) {
	a := spatialmath.NewRobotPose(10, 10, spatialmath.East)
	b := spatialmath.NewRobotPose(10, 10, spatialmath.North)
	test.That(t, Cost(a, b), test.ShouldEqual, 5.0)

	c := spatialmath.NewRobotPose(10, 10, spatialmath.West)
	test.That(t, Cost(a, c), test.ShouldEqual, 10.0)
}

func TestSolveEmptyAndSingle(t *testing.T) {
	start := spatialmath.NewRobotPose(10, 10, spatialmath.East)

	test.That(t, Solve(golog.NewTestLogger(t), start, nil, 1), test.ShouldBeNil)

	one := []Stop{{ObstacleIndex: 0, Pose: spatialmath.NewRobotPose(50, 50, spatialmath.North)}}
	out := Solve(golog.NewTestLogger(t), start, one, 1)
	test.That(t, len(out), test.ShouldEqual, 1)
	test.That(t, out[0].ObstacleIndex, test.ShouldEqual, 0)
}

func TestExactSolveFindsOptimalOrder(t *testing.T) {
	start := spatialmath.NewRobotPose(10, 10, spatialmath.East)
	stops := []Stop{
		{ObstacleIndex: 0, Pose: spatialmath.NewRobotPose(190, 10, spatialmath.East)},
		{ObstacleIndex: 1, Pose: spatialmath.NewRobotPose(20, 10, spatialmath.East)},
		{ObstacleIndex: 2, Pose: spatialmath.NewRobotPose(100, 10, spatialmath.East)},
	}

	out := Solve(golog.NewTestLogger(t), start, stops, 1)
	test.That(t, len(out), test.ShouldEqual, 3)
	test.That(t, out[0].ObstacleIndex, test.ShouldEqual, 1)
	test.That(t, out[1].ObstacleIndex, test.ShouldEqual, 2)
	test.That(t, out[2].ObstacleIndex, test.ShouldEqual, 0)
}

func TestExactSolveIsDeterministic(t *testing.T) {
	start := spatialmath.NewRobotPose(10, 10, spatialmath.East)
	stops := []Stop{
		{ObstacleIndex: 0, Pose: spatialmath.NewRobotPose(190, 10, spatialmath.East)},
		{ObstacleIndex: 1, Pose: spatialmath.NewRobotPose(20, 190, spatialmath.North)},
		{ObstacleIndex: 2, Pose: spatialmath.NewRobotPose(100, 100, spatialmath.South)},
		{ObstacleIndex: 3, Pose: spatialmath.NewRobotPose(20, 10, spatialmath.West)},
	}

	first := exactSolve(start, stops)
	second := exactSolve(start, stops)
	test.That(t, first, test.ShouldResemble, second)
}

func TestGeneticSolveIsDeterministicForFixedSeed(t *testing.T) {
	start := spatialmath.NewRobotPose(10, 10, spatialmath.East)
	stops := make([]Stop, 0, 10)
	for i := 0; i < 10; i++ {
		x := 10 + (i%5)*40
		y := 10 + (i/5)*90
		stops = append(stops, Stop{ObstacleIndex: i, Pose: spatialmath.NewRobotPose(x, y, spatialmath.East)})
	}

	logger := testlog.Quiet()
	first := geneticSolve(logger, start, stops, 42)
	second := geneticSolve(logger, start, stops, 42)
	test.That(t, first, test.ShouldResemble, second)
}

func TestTwoOptNeverWorsensTour(t *testing.T) {
	start := spatialmath.NewRobotPose(10, 10, spatialmath.East)
	stops := []Stop{
		{ObstacleIndex: 0, Pose: spatialmath.NewRobotPose(190, 10, spatialmath.East)},
		{ObstacleIndex: 1, Pose: spatialmath.NewRobotPose(20, 190, spatialmath.North)},
		{ObstacleIndex: 2, Pose: spatialmath.NewRobotPose(100, 100, spatialmath.South)},
		{ObstacleIndex: 3, Pose: spatialmath.NewRobotPose(20, 10, spatialmath.West)},
		{ObstacleIndex: 4, Pose: spatialmath.NewRobotPose(190, 190, spatialmath.North)},
	}
	order := []int{4, 3, 2, 1, 0}
	before := TotalCost(start, stops, order)

	polished := twoOpt(start, stops, order)
	after := TotalCost(start, stops, polished)

	test.That(t, after, test.ShouldBeLessThanOrEqualTo, before)
}
