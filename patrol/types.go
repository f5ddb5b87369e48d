package patrol

import (
	"context"
	"errors"

	"github.com/katalvlaran/patrol/geom"
)

// Sentinel errors for grid construction and patrol runs.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("patrol: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("patrol: all rows must have the same length")
	// ErrUnknownGlyph indicates a character that is not part of the map alphabet.
	ErrUnknownGlyph = errors.New("patrol: unknown glyph")
	// ErrNoStart indicates no start glyph was found.
	ErrNoStart = errors.New("patrol: no start position")
	// ErrMultipleStarts indicates more than one start glyph was found.
	ErrMultipleStarts = errors.New("patrol: more than one start position")
	// ErrOffGrid indicates a point outside the mapped area.
	ErrOffGrid = errors.New("patrol: point is off the grid")
	// ErrObstructed indicates an attempt to visit an obstruction.
	ErrObstructed = errors.New("patrol: cell is an obstruction")
	// ErrStartCell indicates an attempt to obstruct the start position.
	ErrStartCell = errors.New("patrol: cannot obstruct the start position")
	// ErrNilPatrol indicates Run was called without a patrol.
	ErrNilPatrol = errors.New("patrol: patrol is nil")
	// ErrLoopDetected indicates the guard returned to a previous (position, facing).
	ErrLoopDetected = errors.New("patrol: loop detected")
	// ErrStepLimit indicates the run exceeded its step budget.
	ErrStepLimit = errors.New("patrol: step limit exceeded")
)

// Status is the kind of a Cell.
type Status uint8

const (
	// Empty is an open, unvisited cell.
	Empty Status = iota
	// Obstruction is a permanent blocker; it is never entered.
	Obstruction
	// Visited is an open cell the guard has occupied.
	Visited
)

func (s Status) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Obstruction:
		return "Obstruction"
	case Visited:
		return "Visited"
	}
	return "Status(?)"
}

// Cell is the state of one grid coordinate. Facing is meaningful only
// when Status is Visited, where it records the guard's heading the last
// time it stood there.
type Cell struct {
	Status Status
	Facing geom.Direction
}

// Option configures Run and LoopObstructions.
type Option func(*Options)

// Options holds the parameters of a patrol run.
type Options struct {
	// Ctx is checked between steps; defaults to context.Background().
	Ctx context.Context

	// MaxSteps, if positive, bounds the number of steps. Default 0 (no limit).
	MaxSteps int

	// DetectLoops records every (position, facing) state and stops with
	// ErrLoopDetected on the first repeat. Default false.
	DetectLoops bool

	// OnStep, if non-nil, is called after every non-terminal step.
	// Returning an error aborts the run with that error.
	OnStep func(Snapshot) error
}

// Snapshot is the observable patrol state after a step.
type Snapshot struct {
	Step     int
	Position geom.Point
	Facing   geom.Direction
	Visited  int
}

// Result summarises a finished (or aborted) run.
type Result struct {
	// Visited is the number of distinct cells occupied.
	Visited int
	// Steps counts moves and in-place turns taken by this run.
	Steps int
	// Position and Facing are the guard's last in-grid state.
	Position geom.Point
	Facing   geom.Direction
}

// state is the key used for loop detection.
type state struct {
	pos    geom.Point
	facing geom.Direction
}
