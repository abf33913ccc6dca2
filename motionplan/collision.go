package motionplan

import (
	"github.com/scanbot-robotics/scanplan/obstacle"
	"github.com/scanbot-robotics/scanplan/spatialmath"
)

// chainOrigin picks which of the turn's two endpoints a sampled chain steps
// out from.
type chainOrigin int

const (
	fromStart chainOrigin = iota // p, the pre-turn pose
	fromEnd                      // p', the post-turn pose
)

// sweepRule describes how to sample the two point chains ("L-shaped
// bounding region") that approximate the swept volume of a medium arc turn
// starting in one of two heading classes, within one (sign Δx, sign Δy)
// quadrant. Reproduced from the four branches of
// ModifiedAStar.check_valid_command in
// original_source/app/path_finding/modified_a_star.py.
type sweepRule struct {
	yOrigin, xOrigin   chainOrigin
	ySign, xSign       int
}

// isVerticalHeading / isHorizontalHeading classify the *pre-turn* heading
// into the two axis classes the original branches on (Direction.TOP/BOTTOM
// vs the rest, and — for the bottom quadrants — Direction.LEFT/RIGHT vs
// the rest). North/South headings move along y; East/West move along x.
func isVerticalHeading(h spatialmath.Direction) bool {
	return h == spatialmath.North || h == spatialmath.South
}

func isHorizontalHeading(h spatialmath.Direction) bool {
	return h == spatialmath.East || h == spatialmath.West
}

// quadrantRules holds the two sweepRules (axis-class match / no match) for
// one (sign Δx, sign Δy) quadrant.
type quadrantRules struct {
	axisClass func(spatialmath.Direction) bool
	onAxis    sweepRule
	offAxis   sweepRule
}

var (
	topRight = quadrantRules{ // Δx>0, Δy>0
		axisClass: isVerticalHeading,
		onAxis:    sweepRule{yOrigin: fromStart, ySign: +1, xOrigin: fromEnd, xSign: -1},
		offAxis:   sweepRule{yOrigin: fromEnd, ySign: -1, xOrigin: fromStart, xSign: +1},
	}
	topLeft = quadrantRules{ // Δx<0, Δy>0
		axisClass: isVerticalHeading,
		onAxis:    sweepRule{yOrigin: fromStart, ySign: +1, xOrigin: fromEnd, xSign: +1},
		offAxis:   sweepRule{yOrigin: fromEnd, ySign: -1, xOrigin: fromStart, xSign: -1},
	}
	bottomLeft = quadrantRules{ // Δx<0, Δy<0
		axisClass: isHorizontalHeading,
		onAxis:    sweepRule{yOrigin: fromEnd, ySign: +1, xOrigin: fromStart, xSign: -1},
		offAxis:   sweepRule{yOrigin: fromStart, ySign: -1, xOrigin: fromEnd, xSign: +1},
	}
	bottomRight = quadrantRules{ // Δx>0, Δy<0 (and the fallback default)
		axisClass: isHorizontalHeading,
		onAxis:    sweepRule{yOrigin: fromEnd, ySign: +1, xOrigin: fromStart, xSign: +1},
		offAxis:   sweepRule{yOrigin: fromStart, ySign: -1, xOrigin: fromEnd, xSign: -1},
	}
)

// sweptArcValid reports whether every cell the robot's body sweeps through
// while turning from p to p2 is clear, and the terminal pose itself is
// valid (spec.md §4.4's swept-volume collision check).
func sweptArcValid(grid *obstacle.Grid, p, p2 spatialmath.RobotPose) bool {
	if !grid.IsValid(p2.Position, false) {
		return false
	}

	dx := p2.X() - p.X()
	dy := p2.Y() - p.Y()
	if dx == 0 || dy == 0 {
		return false
	}

	var q quadrantRules
	switch {
	case dx > 0 && dy > 0:
		q = topRight
	case dx < 0 && dy > 0:
		q = topLeft
	case dx < 0 && dy < 0:
		q = bottomLeft
	default: // dx > 0, dy < 0
		q = bottomRight
	}

	rule := q.offAxis
	if q.axisClass(p.Heading) {
		rule = q.onAxis
	}

	ySteps := absInt(dy) / obstacle.Cell
	xSteps := absInt(dx) / obstacle.Cell

	yBase := originPosition(rule.yOrigin, p, p2)
	for i := 1; i <= ySteps; i++ {
		probe := yBase.Translate(0, rule.ySign*i*obstacle.Cell)
		if !grid.IsValid(probe, false) {
			return false
		}
	}

	xBase := originPosition(rule.xOrigin, p, p2)
	for i := 1; i <= xSteps; i++ {
		probe := xBase.Translate(rule.xSign*i*obstacle.Cell, 0)
		if !grid.IsValid(probe, false) {
			return false
		}
	}

	return true
}

func originPosition(origin chainOrigin, p, p2 spatialmath.RobotPose) spatialmath.Position {
	if origin == fromStart {
		return p.Position
	}
	return p2.Position
}
