// Package render draws a patrol on a terminal screen.
//
// A View paints one screen cell per grid cell, highlights the guard, and
// keeps a status line under the map. Play runs the patrol with a redraw
// after every step; Escape, Ctrl-C or 'q' stops it with ErrAborted.
//
// Any tcell.Screen works, including tcell.NewSimulationScreen for tests.
// The caller owns the screen: View never calls Init or Fini.
package render
