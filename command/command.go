// Package command defines the robot's wire-level vocabulary: the tagged
// union of Straight, Turn and Scan commands, their pose-transition
// semantics, and their bit-exact encoding for transmission to the robot
// (spec.md §5, §6).
package command

import "github.com/scanbot-robotics/scanplan/spatialmath"

// Command is one instruction in a plan. Apply advances a pose the way the
// robot's own motion would; Encode renders the wire-exact message string.
type Command interface {
	Apply(pose spatialmath.RobotPose) spatialmath.RobotPose
	Encode() string
}

// UnknownCommandMessage is emitted by a Turn whose (left, right, reverse)
// combination has no entry in the encoding table.
const UnknownCommandMessage = "UNKNOWN_COMMAND"
