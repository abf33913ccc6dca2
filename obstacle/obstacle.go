package obstacle

import (
	"github.com/pkg/errors"

	"github.com/scanbot-robotics/scanplan/spatialmath"
)

// ErrInvalidObstacle is the sentinel precondition error returned when an
// obstacle's centre is not aligned to the cell grid. planrequest's batch
// parser does not abort the request on it: a record whose obstacle fails
// this check is logged and skipped like any other malformed record.
var ErrInvalidObstacle = errors.New("obstacle: centre coordinates must be multiples of the cell size")

// Obstacle is a cell-aligned, oriented point the robot must visit and scan.
type Obstacle struct {
	Index    int
	Position spatialmath.Position
	Heading  spatialmath.Direction

	// target is computed once at construction and never mutated afterwards.
	target spatialmath.RobotPose
}

// New validates and builds an Obstacle, pre-computing its target pose.
func New(index, x, y int, heading spatialmath.Direction) (*Obstacle, error) {
	if x%Cell != 0 || y%Cell != 0 {
		return nil, errors.Wrapf(ErrInvalidObstacle, "obstacle %d at (%d, %d)", index, x, y)
	}
	o := &Obstacle{
		Index:    index,
		Position: spatialmath.NewPosition(x, y),
		Heading:  heading,
	}
	o.target = computeTargetPose(o.Position, o.Heading)
	return o, nil
}

// TargetPose returns the RobotPose the robot must attain to scan this
// obstacle: standoff in front of it, facing it, with the corner/edge nudge
// applied where one exists (spec.md §4.2).
func (o *Obstacle) TargetPose() spatialmath.RobotPose {
	return o.target
}

// corner and edge adjustment tables, reproduced exactly from
// original_source/app/grid/obstacle.py (_get_corner_target_position,
// _get_edge_target_position). Keys are indexed by the obstacle's own
// facing heading; the adjustment is applied in (dx, dy) world units to the
// base standoff pose.
type adjustment struct{ dx, dy int }

var cornerAdjustments = map[spatialmath.Position]map[spatialmath.Direction]adjustment{
	spatialmath.NewPosition(0, 0): {
		spatialmath.North: {10, 0},
		spatialmath.East:  {0, 10},
	},
	spatialmath.NewPosition(0, GridLength-Cell): {
		spatialmath.South: {10, 0},
		spatialmath.East:  {0, -10},
	},
	spatialmath.NewPosition(GridLength-Cell, GridLength-Cell): {
		spatialmath.South: {-10, 0},
		spatialmath.West:  {0, -10},
	},
	spatialmath.NewPosition(GridLength-Cell, 0): {
		spatialmath.North: {-10, 0},
		spatialmath.West:  {0, 10},
	},
}

type edgeAdjustment struct {
	isXEdge bool // true: edge runs along x==0 or x==max (left/right); false: y==0 or y==max (bottom/top)
	atMax   bool
	table   map[spatialmath.Direction]adjustment
}

var edgeAdjustments = []edgeAdjustment{
	{isXEdge: false, atMax: false, table: map[spatialmath.Direction]adjustment{ // bottom (y==0)
		spatialmath.West: {0, 10},
		spatialmath.East: {0, 10},
	}},
	{isXEdge: false, atMax: true, table: map[spatialmath.Direction]adjustment{ // top (y==max)
		spatialmath.West: {0, -10},
		spatialmath.East: {0, -10},
	}},
	{isXEdge: true, atMax: false, table: map[spatialmath.Direction]adjustment{ // left (x==0)
		spatialmath.North: {10, 0},
		spatialmath.South: {10, 0},
	}},
	{isXEdge: true, atMax: true, table: map[spatialmath.Direction]adjustment{ // right (x==max)
		spatialmath.North: {-10, 0},
		spatialmath.South: {-10, 0},
	}},
}

func isCorner(p spatialmath.Position) bool {
	onEdgeX := p.X() == 0 || p.X() == GridLength-Cell
	onEdgeY := p.Y() == 0 || p.Y() == GridLength-Cell
	return onEdgeX && onEdgeY
}

func computeTargetPose(pos spatialmath.Position, heading spatialmath.Direction) spatialmath.RobotPose {
	base := standardTargetPose(pos, heading)

	if isCorner(pos) {
		if table, ok := cornerAdjustments[pos]; ok {
			if adj, ok := table[heading]; ok {
				return base.Translate(adj.dx, adj.dy)
			}
		}
		return base
	}

	for _, e := range edgeAdjustments {
		var onEdge bool
		if e.isXEdge {
			onEdge = (pos.X() == 0 && !e.atMax) || (pos.X() == GridLength-Cell && e.atMax)
		} else {
			onEdge = (pos.Y() == 0 && !e.atMax) || (pos.Y() == GridLength-Cell && e.atMax)
		}
		if !onEdge {
			continue
		}
		if adj, ok := e.table[heading]; ok {
			return base.Translate(adj.dx, adj.dy)
		}
	}
	return base
}

// standardTargetPose places the robot at Standoff distance opposite the
// obstacle's facing heading, itself facing the obstacle.
func standardTargetPose(pos spatialmath.Position, heading spatialmath.Direction) spatialmath.RobotPose {
	x, y := pos.X(), pos.Y()
	switch heading {
	case spatialmath.North:
		return spatialmath.NewRobotPose(x, y+Standoff, spatialmath.South)
	case spatialmath.South:
		return spatialmath.NewRobotPose(x, y-Standoff, spatialmath.North)
	case spatialmath.West:
		return spatialmath.NewRobotPose(x-Standoff, y, spatialmath.East)
	default: // East
		return spatialmath.NewRobotPose(x+Standoff, y, spatialmath.West)
	}
}
