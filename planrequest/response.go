package planrequest

import (
	"github.com/scanbot-robotics/scanplan/obstacle"
	"github.com/scanbot-robotics/scanplan/spatialmath"
)

// DirectionCode is the wire encoding of a heading in the (x,y,d) pose
// estimate stream: TOP=0, RIGHT=1, BOTTOM=2, LEFT=3 (spec.md §6), distinct
// from Direction's own degree-valued encoding.
type DirectionCode int

const (
	Top DirectionCode = iota
	Right
	Bottom
	Left
)

func directionCode(d spatialmath.Direction) DirectionCode {
	switch d {
	case spatialmath.North:
		return Top
	case spatialmath.East:
		return Right
	case spatialmath.South:
		return Bottom
	default: // West
		return Left
	}
}

// PoseEstimate is the robot's estimated pose after executing one command,
// rendered in cell-index units (world units divided by CELL) to match the
// wire format's coordinate scale.
type PoseEstimate struct {
	X, Y int
	D    DirectionCode
}

// leadingEstimate is always prepended to a response's pose stream,
// regardless of the plan's actual start pose — a fixed marker inherited
// from the original's hardcoded first estimate (spec.md §6).
var leadingEstimate = PoseEstimate{X: 1, Y: 1, D: Top}

// Response is the wire-ready rendering of a Plan: one encoded command
// string per command, and the estimated pose after each, with
// leadingEstimate prepended.
type Response struct {
	Commands []string
	Path     []PoseEstimate
}

// Encode renders p into its wire Response, walking command.Apply over the
// (already-compressed) command list from start to produce the per-command
// pose estimates (SPEC_FULL.md §13's get_path_with_coordinates).
func Encode(start spatialmath.RobotPose, p Plan) Response {
	resp := Response{
		Commands: make([]string, 0, len(p.Commands)),
		Path:     make([]PoseEstimate, 0, len(p.Commands)+1),
	}
	resp.Path = append(resp.Path, leadingEstimate)

	current := start
	for _, c := range p.Commands {
		resp.Commands = append(resp.Commands, c.Encode())
		current = c.Apply(current)
		resp.Path = append(resp.Path, PoseEstimate{
			X: current.X() / obstacle.Cell,
			Y: current.Y() / obstacle.Cell,
			D: directionCode(current.Heading),
		})
	}
	return resp
}

// EncodeRecord renders an obstacle back into its ALG: record fields
// (x,y,dir,id), the inverse of parseRecord, used by the round-trip test
// property in spec.md §8.
func EncodeRecord(o *obstacle.Obstacle) (cellX, cellY int, dir string, id int) {
	return o.Position.X() / obstacle.Cell, o.Position.Y() / obstacle.Cell, o.Heading.String(), o.Index
}
