package patrol

import (
	"context"
	"fmt"
)

// DefaultOptions returns Options with:
//   - Background context
//   - no step limit
//   - no loop detection
//   - no OnStep hook
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxSteps:    0,
		DetectLoops: false,
		OnStep:      nil,
	}
}

// WithContext sets the context checked between steps.
// A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps bounds the run to n steps; n <= 0 means no limit.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// WithLoopDetection makes Run stop with ErrLoopDetected when the guard
// repeats a (position, facing) state.
func WithLoopDetection() Option {
	return func(o *Options) {
		o.DetectLoops = true
	}
}

// WithOnStep installs fn as a per-step hook.
func WithOnStep(fn func(Snapshot) error) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// Run steps p until it leaves the map and returns the final tally.
// Without WithLoopDetection or WithMaxSteps a looping layout never
// returns unless the context is cancelled.
//
// On ErrLoopDetected, ErrStepLimit, cancellation, or a hook error the
// Result reflects the state at the point the run stopped.
func Run(p *Patrol, opts ...Option) (Result, error) {
	if p == nil {
		return Result{}, ErrNilPatrol
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var seen map[state]struct{}
	if o.DetectLoops {
		seen = make(map[state]struct{}, p.grid.width*p.grid.height)
		seen[state{p.pos, p.facing}] = struct{}{}
	}

	res := Result{Position: p.pos, Facing: p.facing}
	for {
		res.Visited, res.Position, res.Facing = p.VisitedCount(), p.pos, p.facing
		if err := o.Ctx.Err(); err != nil {
			return res, fmt.Errorf("patrol: Run: %w", err)
		}
		if o.MaxSteps > 0 && res.Steps >= o.MaxSteps {
			// Leaving the map is not a step, so a spent budget still allows it.
			if _, ok := p.grid.Get(p.pos.Move(p.facing)); !ok {
				return res, nil
			}
			return res, fmt.Errorf("patrol: Run after %d steps: %w", res.Steps, ErrStepLimit)
		}
		if p.Step() {
			return res, nil
		}
		res.Steps++
		res.Visited, res.Position, res.Facing = p.VisitedCount(), p.pos, p.facing

		if o.OnStep != nil {
			if err := o.OnStep(p.snapshot()); err != nil {
				return res, fmt.Errorf("patrol: Run: OnStep: %w", err)
			}
		}
		if seen != nil {
			s := state{p.pos, p.facing}
			if _, ok := seen[s]; ok {
				return res, ErrLoopDetected
			}
			seen[s] = struct{}{}
		}
	}
}
