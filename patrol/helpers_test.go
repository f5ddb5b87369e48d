package patrol_test

// example is the canonical 10×10 layout with the guard at (4,6) facing N.
var example = []string{
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
}

// box traps the guard in a rectangle: it never reaches the edge.
var box = []string{
	".#...",
	"....#",
	".^...",
	"#....",
	"...#.",
}
