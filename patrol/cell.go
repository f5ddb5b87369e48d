package patrol

import (
	"fmt"

	"github.com/katalvlaran/patrol/geom"
)

// EmptyCell returns an open, unvisited cell.
func EmptyCell() Cell { return Cell{Status: Empty} }

// ObstructionCell returns a permanent blocker.
func ObstructionCell() Cell { return Cell{Status: Obstruction} }

// VisitedCell returns a cell occupied while facing d.
func VisitedCell(d geom.Direction) Cell { return Cell{Status: Visited, Facing: d} }

// startGlyphs maps the guard glyphs to their facing.
var startGlyphs = map[rune]geom.Direction{
	'^': geom.N,
	'>': geom.E,
	'v': geom.S,
	'<': geom.W,
}

// ParseCell converts one map character into a Cell.
func ParseCell(r rune) (Cell, error) {
	switch r {
	case '.':
		return EmptyCell(), nil
	case '#':
		return ObstructionCell(), nil
	}
	if d, ok := startGlyphs[r]; ok {
		return VisitedCell(d), nil
	}
	return Cell{}, fmt.Errorf("%w %q", ErrUnknownGlyph, r)
}

// Glyph is the inverse of ParseCell. Visited cells with a diagonal
// facing, which the patrol never produces, render as '*'.
func (c Cell) Glyph() rune {
	switch c.Status {
	case Empty:
		return '.'
	case Obstruction:
		return '#'
	}
	switch c.Facing {
	case geom.N:
		return '^'
	case geom.E:
		return '>'
	case geom.S:
		return 'v'
	case geom.W:
		return '<'
	}
	return '*'
}

func (c Cell) String() string {
	if c.Status == Visited {
		return fmt.Sprintf("Visited(%s)", c.Facing)
	}
	return c.Status.String()
}
