package command

import (
	"fmt"

	"github.com/scanbot-robotics/scanplan/spatialmath"
)

// Straight moves the robot along its current heading. Dist is signed in
// world units (centimetres): positive is forward, negative is reverse.
// Dist is never zero in a well-formed plan (spec.md §6).
type Straight struct {
	Dist int
}

// Apply advances pos along its current heading by Dist.
func (s Straight) Apply(pose spatialmath.RobotPose) spatialmath.RobotPose {
	switch pose.Heading {
	case spatialmath.East:
		return pose.Translate(s.Dist, 0)
	case spatialmath.North:
		return pose.Translate(0, s.Dist)
	case spatialmath.South:
		return pose.Translate(0, -s.Dist)
	default: // West
		return pose.Translate(-s.Dist, 0)
	}
}

// Encode renders "SF" or "SB" followed by the zero-padded-to-3-digit
// absolute distance in centimetres, e.g. "SF030", "SB150".
func (s Straight) Encode() string {
	dist := s.Dist
	prefix := "SF"
	if dist < 0 {
		prefix = "SB"
		dist = -dist
	}
	return fmt.Sprintf("%s%03d", prefix, dist)
}
