// Package patrol is a guard patrol simulator: a guard walks a 2-D text
// map, turning at obstructions, until it steps off the edge.
//
// What is in the module?
//
//	geom/       — Point, 8-point compass Direction, CW/CCW Rotation
//	input/      — load puzzle text as ordered lines
//	patrol/     — Grid of cells, the Patrol state machine, Run and LoopObstructions
//	render/     — tcell view that animates a patrol step by step
//	cmd/patrol/ — command line driver
//
// Quick ASCII example:
//
//	.#...      .#...
//	.....  →   .>>>>   visited 5 cells, left the map heading E
//	.^...      .^...
//
//	go run ./cmd/patrol -input input.txt
package patrol
