package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Position is a point on the integer grid, in world units. The zero value is
// the grid origin.
type Position struct {
	pt r2.Point
}

// NewPosition builds a Position from integer-valued world coordinates.
func NewPosition(x, y int) Position {
	return Position{pt: r2.Point{X: float64(x), Y: float64(y)}}
}

// X returns the x coordinate in world units.
func (p Position) X() int { return int(p.pt.X) }

// Y returns the y coordinate in world units.
func (p Position) Y() int { return int(p.pt.Y) }

// Translate returns a new Position offset by (dx, dy).
func (p Position) Translate(dx, dy int) Position {
	return Position{pt: p.pt.Add(r2.Point{X: float64(dx), Y: float64(dy)})}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X(), p.Y())
}

// RobotPose is the robot's pose on the grid: a Position plus a mandatory
// heading, and an optional angle used when a pose's facing differs from one
// of the four cardinal headings (always equal to Heading's degree value in
// this spec, but kept distinct the way the original positioning model does).
type RobotPose struct {
	Position
	Heading Direction
	Angle   float64
}

// NewRobotPose builds a RobotPose whose Angle defaults to the heading's own
// degree value, matching the source model's default.
func NewRobotPose(x, y int, heading Direction) RobotPose {
	return RobotPose{
		Position: NewPosition(x, y),
		Heading:  heading,
		Angle:    float64(heading),
	}
}

// WithAngle returns a copy of p with an explicit Angle override.
func (p RobotPose) WithAngle(angle float64) RobotPose {
	p.Angle = angle
	return p
}

// Translate returns a new RobotPose offset by (dx, dy), heading unchanged.
func (p RobotPose) Translate(dx, dy int) RobotPose {
	p.Position = p.Position.Translate(dx, dy)
	return p
}

// WithHeading returns a copy of p facing the given heading.
func (p RobotPose) WithHeading(h Direction) RobotPose {
	p.Heading = h
	p.Angle = float64(h)
	return p
}

// Equal reports whether two poses match exactly in x, y, and heading.
func (p RobotPose) Equal(o RobotPose) bool {
	return p.X() == o.X() && p.Y() == o.Y() && p.Heading == o.Heading
}

func (p RobotPose) String() string {
	return fmt.Sprintf("RobotPose(%d, %d, %s)", p.X(), p.Y(), p.Heading)
}

// Key returns a comparable value suitable for use as a map key in search
// state bookkeeping (came-from maps, cost maps).
type Key struct {
	X, Y    int
	Heading Direction
}

// Key returns the comparable (x,y,heading) triple for this pose.
func (p RobotPose) Key() Key {
	return Key{X: p.X(), Y: p.Y(), Heading: p.Heading}
}
