package command

import (
	"fmt"

	"github.com/scanbot-robotics/scanplan/spatialmath"
)

// Scan marks the point in the plan where the robot scans the obstacle at
// ObstacleIndex. It never moves the robot.
type Scan struct {
	ObstacleIndex int
}

// Apply is a no-op: scanning doesn't change pose.
func (s Scan) Apply(pose spatialmath.RobotPose) spatialmath.RobotPose {
	return pose
}

// Encode renders "SCAN_<index>".
func (s Scan) Encode() string {
	return fmt.Sprintf("SCAN_%d", s.ObstacleIndex)
}
