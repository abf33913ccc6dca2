package obstacle

// Fixed grid and robot-geometry constants (spec.md §3, §6).
const (
	// GridLength is the total extent of the playable field, in world units.
	GridLength = 200
	// Cell is the side length of one grid cell, in world units.
	Cell = 10
	// NumCellsPerSide is the number of cells along one side of the grid.
	NumCellsPerSide = GridLength / Cell

	// ObstacleLength is the side length of an obstacle, in world units.
	ObstacleLength = 10
	// SafetyOffset is added to ObstacleLength to derive the robot's standoff
	// distance from an obstacle's facing edge.
	SafetyOffset = 30
	// Standoff is the fixed distance between an obstacle's centre and the
	// robot's target pose, measured along the obstacle's facing axis.
	Standoff = ObstacleLength + SafetyOffset

	// SafetyWidth is the half-width of an obstacle's inflated safety square.
	SafetyWidth = 10
)
