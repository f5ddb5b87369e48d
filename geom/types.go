package geom

// Point is a grid coordinate. It is comparable and safe to use as a map key.
type Point struct {
	X, Y int
}

// Origin is the top-left corner of every grid.
var Origin = Point{}

// Direction is a compass heading. The zero value is N.
type Direction uint8

const (
	N Direction = iota
	NE
	E
	SE
	S
	SW
	W
	NW

	directionCount = 8
)

// Rotation selects the sense of a one-step turn around the compass rose.
// Only CW and CCW are valid; the zero value is not.
type Rotation int8

const (
	// CW turns clockwise: N → NE → E → … → NW → N.
	CW Rotation = 1
	// CCW turns counter-clockwise: N → NW → W → … → NE → N.
	CCW Rotation = -1
)

// offsets is indexed by Direction, clockwise from north,
// matching the neighbour table order used for 8-connectivity.
var offsets = [directionCount][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

var names = [directionCount]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
