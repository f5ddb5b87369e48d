package patrol_test

import (
	"fmt"

	"github.com/katalvlaran/patrol/patrol"
)

// ExampleRun walks the guard off a small map and prints the final map.
// Scenario:
//
//   - The guard starts at (1,2) facing N.
//   - It is turned east by the wall at (1,0) and walks off the right edge.
func ExampleRun() {
	g, err := patrol.NewGrid([]string{
		".#...",
		".....",
		".^...",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := patrol.Run(patrol.New(g))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("visited %d cells in %d steps, left from %v\n", res.Visited, res.Steps, res.Position)
	fmt.Println(g)
	// Output:
	// visited 5 cells in 5 steps, left from (4,1)
	// .#...
	// .>>>>
	// .^...
}

// ExampleLoopObstructions counts the cells where one more obstruction traps the guard.
func ExampleLoopObstructions() {
	g, _ := patrol.NewGrid([]string{
		"....#.....",
		".........#",
		"..........",
		"..#.......",
		".......#..",
		"..........",
		".#..^.....",
		"........#.",
		"#.........",
		"......#...",
	})

	pts, _ := patrol.LoopObstructions(g)
	fmt.Println(len(pts), pts)
	// Output:
	// 6 [(3,6) (6,7) (7,7) (1,8) (3,8) (7,9)]
}
