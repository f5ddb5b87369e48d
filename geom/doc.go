// Package geom provides the coordinate model shared by the patrol packages:
// integer points on a 2-D grid and an 8-point compass with quarter-step
// rotations.
//
// What:
//
//   - Point is an immutable (X, Y) value; X grows rightward, Y grows downward.
//   - Direction is one of N, NE, E, SE, S, SW, W, NW in clockwise order.
//   - Rotation (CW or CCW) advances a Direction one step around the rose.
//
// Laws:
//
//   - d.Rotate(CW).Rotate(CCW) == d for every Direction.
//   - Eight CW rotations are the identity; four turn a cardinal around.
//   - p.Move(d) != p for every Point and Direction.
//   - p.Add(q) == q.Add(p) and p.Add(p.Neg()) == Origin.
//
// Complexity:
//
//   - Every operation is O(1) and allocation-free.
package geom
