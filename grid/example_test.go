// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Neighbors
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Neighbors shows the fixed East, South, West, North order and
// how obstacles and borders are filtered out.
//
// Grid:
//
//	S . .
//	. . #
//	. . E
func ExampleGrid_Neighbors() {
	g := grid.MustParse(
		"S..",
		"..#",
		"..E",
	)
	fmt.Println(g.Neighbors(grid.At(1, 1)))
	fmt.Println(g.Neighbors(g.Start()))
	// Output:
	// [(2,1) (1,0) (0,1)]
	// [(0,1) (1,0)]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Generate
////////////////////////////////////////////////////////////////////////////////

// ExampleGenerate builds a fully blocked grid: only the endpoints survive.
func ExampleGenerate() {
	g, err := grid.Generate(3, 4, 1.0, 7)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g)
	// Output:
	// S###
	// ####
	// ###E
}
