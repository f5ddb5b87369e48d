package patrol

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/patrol/geom"
)

// Grid maps every in-bounds coordinate to a Cell. Anything outside
// Width×Height is off the map.
type Grid struct {
	width, height int
	cells         []Cell
	start         geom.Point
	facing        geom.Direction
	visited       int
}

// NewGrid builds a Grid from equal-length lines, one rune per column,
// with the origin at the first rune of the first line.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownGlyph, ErrNoStart
// or ErrMultipleStarts.
// Complexity: O(W×H) time and memory.
func NewGrid(lines []string) (*Grid, error) {
	if len(lines) == 0 || lines[0] == "" {
		return nil, ErrEmptyGrid
	}
	w := utf8.RuneCountInString(lines[0])
	for y, line := range lines {
		if utf8.RuneCountInString(line) != w {
			return nil, fmt.Errorf("patrol: NewGrid: row %d: %w", y, ErrNonRectangular)
		}
	}

	g := &Grid{
		width:  w,
		height: len(lines),
		cells:  make([]Cell, 0, w*len(lines)),
	}
	starts := 0
	for y, line := range lines {
		x := 0
		for _, r := range line {
			c, err := ParseCell(r)
			if err != nil {
				return nil, fmt.Errorf("patrol: NewGrid: at (%d,%d): %w", x, y, err)
			}
			if c.Status == Visited {
				starts++
				g.start, g.facing = geom.Point{X: x, Y: y}, c.Facing
				g.visited++
			}
			g.cells = append(g.cells, c)
			x++
		}
	}
	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, fmt.Errorf("patrol: NewGrid: %d guards: %w", starts, ErrMultipleStarts)
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the guard's initial position and facing.
func (g *Grid) Start() (geom.Point, geom.Direction) { return g.start, g.facing }

// InBounds reports whether p lies on the map.
func (g *Grid) InBounds(p geom.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// index maps p to its row-major slot: y*Width + x.
func (g *Grid) index(p geom.Point) int {
	return p.Y*g.width + p.X
}

// coordinate converts a row-major index back to a point.
func (g *Grid) coordinate(idx int) geom.Point {
	return geom.Point{X: idx % g.width, Y: idx / g.width}
}

// Get returns the cell at p. ok is false when p is off the map, which
// is how a patrol detects that it has left.
// Complexity: O(1).
func (g *Grid) Get(p geom.Point) (c Cell, ok bool) {
	if !g.InBounds(p) {
		return Cell{}, false
	}
	return g.cells[g.index(p)], true
}

// SetVisited marks p as occupied while facing d, overwriting an Empty or
// Visited status. Obstructions are never entered.
func (g *Grid) SetVisited(p geom.Point, d geom.Direction) error {
	if !g.InBounds(p) {
		return fmt.Errorf("patrol: SetVisited %v: %w", p, ErrOffGrid)
	}
	i := g.index(p)
	if g.cells[i].Status == Obstruction {
		return fmt.Errorf("patrol: SetVisited %v: %w", p, ErrObstructed)
	}
	g.mark(i, d)
	return nil
}

// mark records a visit at slot i; the caller guarantees i is open.
func (g *Grid) mark(i int, d geom.Direction) {
	if g.cells[i].Status != Visited {
		g.visited++
	}
	g.cells[i] = VisitedCell(d)
}

// PlaceObstruction turns p into an obstruction. Obstructing an existing
// obstruction is a no-op; the start position cannot be obstructed.
func (g *Grid) PlaceObstruction(p geom.Point) error {
	if !g.InBounds(p) {
		return fmt.Errorf("patrol: PlaceObstruction %v: %w", p, ErrOffGrid)
	}
	if p == g.start {
		return ErrStartCell
	}
	i := g.index(p)
	if g.cells[i].Status == Visited {
		g.visited--
	}
	g.cells[i] = ObstructionCell()
	return nil
}

// VisitedPoints returns every point whose status is Visited, once each,
// in row-major order.
func (g *Grid) VisitedPoints() []geom.Point {
	pts := make([]geom.Point, 0, g.visited)
	for i, c := range g.cells {
		if c.Status == Visited {
			pts = append(pts, g.coordinate(i))
		}
	}
	return pts
}

// VisitedCount returns len(VisitedPoints()) in O(1).
func (g *Grid) VisitedCount() int { return g.visited }

// Clone returns a deep copy that can be mutated independently.
func (g *Grid) Clone() *Grid {
	cp := *g
	cp.cells = make([]Cell, len(g.cells))
	copy(cp.cells, g.cells)
	return &cp
}

// String renders the grid with one glyph per cell and rows separated by '\n'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for i, c := range g.cells {
		if i > 0 && i%g.width == 0 {
			sb.WriteByte('\n')
		}
		sb.WriteRune(c.Glyph())
	}
	return sb.String()
}
