package planrequest

import (
	"testing"

	"github.com/edaniels/golog"
	"go.viam.com/test"

	"github.com/scanbot-robotics/scanplan/command"
	"github.com/scanbot-robotics/scanplan/obstacle"
	"github.com/scanbot-robotics/scanplan/spatialmath"
)

func TestParseBatchSkipsMalformedRecords(t *testing.T) {
	logger := golog.NewTestLogger(t)
	obstacles, err := ParseBatch(logger, "ALG:10,10,E,1;bogus;10,20,Q,2;15,15,N,3;")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(obstacles), test.ShouldEqual, 2)
	test.That(t, obstacles[0].Index, test.ShouldEqual, 1)
	test.That(t, obstacles[1].Index, test.ShouldEqual, 3)
}

func TestParseBatchAllMalformedReturnsEmpty(t *testing.T) {
	logger := golog.NewTestLogger(t)
	obstacles, err := ParseBatch(logger, "ALG:nope;also,nope;")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(obstacles), test.ShouldEqual, 0)
}

func TestParseNone(t *testing.T) {
	id, ok := ParseNone("NONE,7")
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, id, test.ShouldEqual, 7)

	_, ok = ParseNone("ALG:1,1,N,1;")
	test.That(t, ok, test.ShouldBeFalse)
}

func TestRecordRoundTrip(t *testing.T) {
	logger := golog.NewTestLogger(t)
	obstacles, err := ParseBatch(logger, "ALG:5,7,W,2;")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(obstacles), test.ShouldEqual, 1)

	cellX, cellY, dir, id := EncodeRecord(obstacles[0])
	test.That(t, cellX, test.ShouldEqual, 5)
	test.That(t, cellY, test.ShouldEqual, 7)
	test.That(t, dir, test.ShouldEqual, "W")
	test.That(t, id, test.ShouldEqual, 2)
}

func TestFallbackPlanEncodesExactThreeCommands(t *testing.T) {
	p := FallbackPlan(7)
	resp := Encode(spatialmath.NewRobotPose(100, 100, spatialmath.East), p)
	test.That(t, resp.Commands, test.ShouldResemble, []string{"SB010", "SCAN_7", "SF010"})
}

func TestEncodePrependsLeadingEstimate(t *testing.T) {
	p := Plan{Commands: []command.Command{command.Straight{Dist: 30}}}
	resp := Encode(spatialmath.NewRobotPose(10, 10, spatialmath.East), p)
	test.That(t, resp.Path[0], test.ShouldResemble, PoseEstimate{X: 1, Y: 1, D: Top})
	test.That(t, len(resp.Path), test.ShouldEqual, 2)
	test.That(t, resp.Path[1], test.ShouldResemble, PoseEstimate{X: 4, Y: 1, D: Right})
}

func TestBuildPlanSingleObstacle(t *testing.T) {
	logger := golog.NewTestLogger(t)
	o, err := obstacle.New(1, 100, 100, spatialmath.East)
	test.That(t, err, test.ShouldBeNil)

	start := spatialmath.NewRobotPose(20, 20, spatialmath.North)
	plan := BuildPlan(logger, start, []*obstacle.Obstacle{o}, 1)

	test.That(t, plan.Visited, test.ShouldResemble, []int{1})

	current := start
	sawScan := false
	for _, c := range plan.Commands {
		if s, ok := c.(command.Scan); ok {
			test.That(t, s.ObstacleIndex, test.ShouldEqual, 1)
			test.That(t, current.Equal(o.TargetPose()), test.ShouldBeTrue)
			sawScan = true
		}
		current = c.Apply(current)
	}
	test.That(t, sawScan, test.ShouldBeTrue)
}

func TestBuildPlanEmptyBatchReturnsEmptyPlan(t *testing.T) {
	logger := golog.NewTestLogger(t)
	start := spatialmath.NewRobotPose(20, 20, spatialmath.North)
	plan := BuildPlan(logger, start, nil, 1)
	test.That(t, len(plan.Commands), test.ShouldEqual, 0)
	test.That(t, plan.Final.Equal(start), test.ShouldBeTrue)
}

func TestHandlePayloadDispatchesNoneFallback(t *testing.T) {
	logger := golog.NewTestLogger(t)
	plan, start, err := HandlePayload(logger, "NONE,7", 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, start.Equal(DefaultStart), test.ShouldBeTrue)
	test.That(t, plan.Visited, test.ShouldResemble, []int{7})
}

func TestHandlePayloadDispatchesAlgBatch(t *testing.T) {
	logger := golog.NewTestLogger(t)
	plan, start, err := HandlePayload(logger, "ALG:10,10,E,1;", 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, start.Equal(DefaultStart), test.ShouldBeTrue)
	test.That(t, plan.Visited, test.ShouldResemble, []int{1})
}

func TestHandlePayloadRejectsMalformedPayload(t *testing.T) {
	logger := golog.NewTestLogger(t)
	_, _, err := HandlePayload(logger, "garbage", 1)
	test.That(t, err, test.ShouldEqual, ErrMalformedPayload)
}

func TestBuildPlanSkipsUnreachableObstacle(t *testing.T) {
	logger := golog.NewTestLogger(t)

	// Obstacle 1's target pose sits at (100, 140, South); obstacle 2 is
	// centred directly on that cell, making the target unreachable while
	// leaving obstacle 1 itself a perfectly valid, cell-aligned obstacle.
	target, err := obstacle.New(1, 100, 100, spatialmath.North)
	test.That(t, err, test.ShouldBeNil)
	blocker, err := obstacle.New(2, 100, 140, spatialmath.East)
	test.That(t, err, test.ShouldBeNil)

	start := spatialmath.NewRobotPose(20, 20, spatialmath.North)
	plan := BuildPlan(logger, start, []*obstacle.Obstacle{target, blocker}, 1)
	for _, idx := range plan.Visited {
		test.That(t, idx, test.ShouldNotEqual, 1)
	}
}
