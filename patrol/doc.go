// Package patrol simulates a guard walking a 2-D text grid until it leaves
// the mapped area, and counts the distinct cells it visited.
//
// What:
//
//   - Grid holds one Cell per character of the input: Empty ('.'),
//     Obstruction ('#'), or Visited with the facing the guard had there.
//     The start glyph ('^', '>', 'v', '<') is a Visited cell and fixes
//     the guard's initial facing (N, E, S, W).
//   - Patrol is the state machine. Each Step looks one cell ahead:
//     off the map ends the patrol, an obstruction turns the guard two
//     clockwise steps of the 8-point rose in place (a quarter turn for a
//     cardinal facing), anything else is entered and marked Visited.
//   - Run drives a Patrol to the edge of the map. With WithLoopDetection
//     it also tracks (position, facing) states and stops on a repeat.
//   - LoopObstructions finds every cell where one extra obstruction traps
//     the guard in a loop.
//
// Storage:
//
//	Cells live in a dense row-major slice indexed by y*Width + x, so
//	Get is O(1) and an off-map lookup reports ok=false.
//
// Complexity:
//
//   - NewGrid:          O(W×H) time and memory.
//   - Step:             O(1).
//   - Run:              O(S) for S steps; O(S) extra memory with loop detection.
//   - LoopObstructions: O(V×S) for V visited cells.
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownGlyph:   a character outside ".#^>v<".
//   - ErrNoStart:        no start glyph; a patrol cannot begin.
//   - ErrMultipleStarts: more than one start glyph.
//   - ErrOffGrid, ErrObstructed, ErrStartCell: invalid cell mutations.
//   - ErrLoopDetected:   a (position, facing) state repeated.
//   - ErrStepLimit:      WithMaxSteps was exceeded.
package patrol
