package constants

// Rotation Gesture Constants
const (
	// TargetRotation is one full clockwise turn of the drum, in degrees
	TargetRotation = 360.0

	// RotationEpsilon absorbs float drift when summing bearing deltas back to a full turn
	RotationEpsilon = 1e-9

	// ArrowAngleOffset rotates the arrow glyph so it points along the drag direction
	ArrowAngleOffset = 90.0

	// HandleRotationRatio is how much faster the crank handle turns than the drum
	HandleRotationRatio = 2.0
)

// Spin Screen Geometry (terminal cells)
const (
	// CellAspect is the height/width ratio of a terminal cell, used to keep circles round
	CellAspect = 2.0

	// DrumRadiusX is the drum's horizontal radius in cells
	DrumRadiusX = 14

	// RingRadiusX is the progress ring's horizontal radius in cells
	RingRadiusX = 20

	// RingSegments is the number of cells sampled around the progress ring
	RingSegments = 96

	// DrumSpokes is the number of spokes drawn inside the drum
	DrumSpokes = 6

	// TouchAreaPadding is the margin in cells around the ring that still counts as the touch area
	TouchAreaPadding = 2
)
