package command

import "github.com/scanbot-robotics/scanplan/spatialmath"

// TurnType is the magnitude of a turn. Only TurnMedium is modelled; the
// 90-degree medium arc is the sole turn primitive the planner searches
// with (spec.md §4.4).
type TurnType int

const (
	TurnMedium TurnType = iota
)

// Turn is a 90-degree arc turn. Exactly one of Left/Right is set; Reverse
// selects the forward or reverse-gear variant of the same arc.
type Turn struct {
	Type    TurnType
	Left    bool
	Right   bool
	Reverse bool
}

type turnKey struct {
	left, right, reverse bool
}

type turnDelta struct {
	dx, dy     int
	newHeading spatialmath.Direction
}

// mediumTurnDeltas is reproduced exactly from
// original_source/app/commands/turn_command.py's MEDIUM_TURN_DELTAS table,
// with Direction.TOP/BOTTOM/LEFT/RIGHT renamed to North/South/West/East.
var mediumTurnDeltas = map[turnKey]map[spatialmath.Direction]turnDelta{
	{true, false, false}: { // left forward
		spatialmath.North: {-20, 30, spatialmath.West},
		spatialmath.West:  {-30, -20, spatialmath.South},
		spatialmath.East:  {30, 20, spatialmath.North},
		spatialmath.South: {20, -30, spatialmath.East},
	},
	{false, true, false}: { // right forward
		spatialmath.North: {20, 30, spatialmath.East},
		spatialmath.West:  {-30, 20, spatialmath.North},
		spatialmath.East:  {30, -20, spatialmath.South},
		spatialmath.South: {-20, -30, spatialmath.West},
	},
	{true, false, true}: { // left reverse
		spatialmath.North: {-30, -20, spatialmath.East},
		spatialmath.West:  {20, -30, spatialmath.North},
		spatialmath.East:  {-20, 30, spatialmath.South},
		spatialmath.South: {30, 20, spatialmath.West},
	},
	{false, true, true}: { // right reverse
		spatialmath.North: {30, -20, spatialmath.West},
		spatialmath.West:  {20, 30, spatialmath.South},
		spatialmath.East:  {-20, -30, spatialmath.North},
		spatialmath.South: {-30, 20, spatialmath.East},
	},
}

var turnMessages = map[turnKey]string{
	{true, false, false}:  "FL090",
	{true, false, true}:   "LB090",
	{false, true, false}:  "FR090",
	{false, true, true}:   "RB090",
}

func (t Turn) key() turnKey {
	return turnKey{left: t.Left, right: t.Right, reverse: t.Reverse}
}

// Apply moves and reorients the robot by this turn's fixed delta for the
// pose's current heading.
func (t Turn) Apply(pose spatialmath.RobotPose) spatialmath.RobotPose {
	delta, ok := mediumTurnDeltas[t.key()][pose.Heading]
	if !ok {
		return pose
	}
	return pose.Translate(delta.dx, delta.dy).WithHeading(delta.newHeading)
}

// Encode renders this turn's fixed five-character code, or
// UnknownCommandMessage when the (left, right, reverse) combination has no
// entry.
func (t Turn) Encode() string {
	if msg, ok := turnMessages[t.key()]; ok {
		return msg
	}
	return UnknownCommandMessage
}

// NewTurnLeft builds the forward-gear left medium turn.
func NewTurnLeft() Turn { return Turn{Type: TurnMedium, Left: true} }

// NewTurnRight builds the forward-gear right medium turn.
func NewTurnRight() Turn { return Turn{Type: TurnMedium, Right: true} }

// NewTurnLeftReverse builds the reverse-gear left medium turn.
func NewTurnLeftReverse() Turn { return Turn{Type: TurnMedium, Left: true, Reverse: true} }

// NewTurnRightReverse builds the reverse-gear right medium turn.
func NewTurnRightReverse() Turn { return Turn{Type: TurnMedium, Right: true, Reverse: true} }

// AllMediumTurns enumerates the four medium-turn motion primitives the
// planner expands as successors at every search state.
func AllMediumTurns() []Turn {
	return []Turn{NewTurnLeft(), NewTurnRight(), NewTurnLeftReverse(), NewTurnRightReverse()}
}
