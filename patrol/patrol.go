package patrol

import "github.com/katalvlaran/patrol/geom"

// Patrol is the guard state machine. It owns its Grid exclusively and
// mutates it on every step.
type Patrol struct {
	grid   *Grid
	pos    geom.Point
	facing geom.Direction
	steps  int
}

// New places a guard at the grid's start position and facing.
func New(g *Grid) *Patrol {
	pos, facing := g.Start()
	return &Patrol{grid: g, pos: pos, facing: facing}
}

// Step applies the transition rule once and reports whether the patrol
// has left the map:
//
//  1. Look at the cell one step ahead.
//  2. Off the map: return true without touching any state.
//  3. Obstruction: stay put, turn two steps clockwise, re-mark the
//     current cell with the new facing.
//  4. Otherwise: move there and mark it Visited with the current facing.
//
// Complexity: O(1).
func (p *Patrol) Step() bool {
	next := p.pos.Move(p.facing)
	c, ok := p.grid.Get(next)
	if !ok {
		return true
	}
	switch c.Status {
	case Obstruction:
		p.facing = p.facing.Rotate(geom.CW).Rotate(geom.CW)
	case Empty, Visited:
		p.pos = next
	}
	p.grid.mark(p.grid.index(p.pos), p.facing)
	p.steps++
	return false
}

// VisitedCount returns the number of distinct cells visited so far,
// including the start.
func (p *Patrol) VisitedCount() int { return p.grid.VisitedCount() }

// Position returns the guard's current cell.
func (p *Patrol) Position() geom.Point { return p.pos }

// Facing returns the guard's current heading.
func (p *Patrol) Facing() geom.Direction { return p.facing }

// Steps returns the number of non-terminal steps taken.
func (p *Patrol) Steps() int { return p.steps }

// Grid exposes the patrolled grid for rendering. Callers must not mutate it.
func (p *Patrol) Grid() *Grid { return p.grid }

func (p *Patrol) snapshot() Snapshot {
	return Snapshot{
		Step:     p.steps,
		Position: p.pos,
		Facing:   p.facing,
		Visited:  p.grid.VisitedCount(),
	}
}
