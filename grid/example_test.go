package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridastar/grid"
)

// ExampleFromRows builds a small map from ASCII rows and queries it.
func ExampleFromRows() {
	g, err := grid.FromRows([]string{
		"....",
		".OO.",
		"....",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(g.Width(), g.Height(), g.Connectivity())
	fmt.Println(g.IsBlocked(grid.Pos(1, 1)), g.Passable(grid.Pos(3, 1)))
	fmt.Println(g.StepCost(0), g.StepCost(1))
	// Output:
	// 4 3 conn8
	// true true
	// 10 14
}
