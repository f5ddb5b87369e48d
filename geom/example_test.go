package geom_test

import (
	"fmt"

	"github.com/katalvlaran/patrol/geom"
)

// ExampleDirection_Rotate walks the cardinal headings by quarter turns,
// which on the 8-point rose are two CW steps each.
func ExampleDirection_Rotate() {
	d := geom.N
	for i := 0; i < 4; i++ {
		fmt.Print(d, " ")
		d = d.Rotate(geom.CW).Rotate(geom.CW)
	}
	fmt.Println(d)
	// Output:
	// N E S W N
}

// ExamplePoint_Move shows that rows grow downward.
func ExamplePoint_Move() {
	p := geom.Point{X: 4, Y: 6}
	fmt.Println(p.Move(geom.N), p.Move(geom.SE))
	// Output:
	// (4,5) (5,7)
}
