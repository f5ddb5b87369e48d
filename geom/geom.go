package geom

import "fmt"

// Offset translates p by (dx, dy).
func (p Point) Offset(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Add returns the component-wise sum p + q.
func (p Point) Add(q Point) Point {
	return p.Offset(q.X, q.Y)
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Move returns the neighbour of p one unit step towards d.
func (p Point) Move(d Direction) Point {
	dx, dy := d.Offset()
	return p.Offset(dx, dy)
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// normalize folds any Direction value onto the 8-point rose so that
// every method below is total.
func (d Direction) normalize() Direction {
	return d % directionCount
}

// Offset returns the unit vector (dx, dy) for d.
func (d Direction) Offset() (dx, dy int) {
	o := offsets[d.normalize()]
	return o[0], o[1]
}

// Rotate turns d one step in the sense of r. An invalid Rotation,
// including the zero value, leaves d unchanged.
func (d Direction) Rotate(r Rotation) Direction {
	switch r {
	case CW:
		return (d.normalize() + 1) % directionCount
	case CCW:
		return (d.normalize() + directionCount - 1) % directionCount
	}
	return d
}

// Valid reports whether r is CW or CCW.
func (r Rotation) Valid() bool {
	return r == CW || r == CCW
}

// Opposite returns the heading four steps away.
func (d Direction) Opposite() Direction {
	return (d.normalize() + directionCount/2) % directionCount
}

// Valid reports whether d is one of the eight named headings.
func (d Direction) Valid() bool {
	return d < directionCount
}

// Cardinal reports whether d is N, E, S or W.
func (d Direction) Cardinal() bool {
	return d.normalize()%2 == 0
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return names[d]
}

// Directions returns all eight headings in clockwise order starting at N.
func Directions() []Direction {
	return []Direction{N, NE, E, SE, S, SW, W, NW}
}

// Cardinals returns N, E, S and W.
func Cardinals() []Direction {
	return []Direction{N, E, S, W}
}
