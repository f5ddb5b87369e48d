package patrol

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/patrol/geom"
)

// LoopObstructions returns every point where placing a single new
// obstruction traps the guard in a loop, in row-major order.
//
// Only cells on the unobstructed route can change the guard's path, so
// those (minus the start) are the candidates. Each candidate runs on its
// own clone of g with loop detection forced on. g is not modified.
// If the unobstructed patrol already loops, ErrLoopDetected is returned.
//
// Complexity: O(V×S) time, O(W×H + S) memory per trial.
func LoopObstructions(g *Grid, opts ...Option) ([]geom.Point, error) {
	opts = append(opts[:len(opts):len(opts)], WithLoopDetection())

	route := g.Clone()
	if _, err := Run(New(route), opts...); err != nil {
		return nil, fmt.Errorf("patrol: LoopObstructions: unobstructed route: %w", err)
	}

	start, _ := g.Start()
	var found []geom.Point
	for _, c := range route.VisitedPoints() {
		if c == start {
			continue
		}
		trial := g.Clone()
		if err := trial.PlaceObstruction(c); err != nil {
			return nil, fmt.Errorf("patrol: LoopObstructions: %w", err)
		}
		_, err := Run(New(trial), opts...)
		switch {
		case errors.Is(err, ErrLoopDetected):
			found = append(found, c)
		case err != nil:
			return nil, fmt.Errorf("patrol: LoopObstructions at %v: %w", c, err)
		}
	}
	return found, nil
}
