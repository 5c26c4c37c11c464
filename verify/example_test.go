package verify_test

import (
	"fmt"

	"github.com/katalvlaran/ringmaze/circular"
	"github.com/katalvlaran/ringmaze/maze"
	"github.com/katalvlaran/ringmaze/verify"
)

// ExampleCheck verifies a hand-drawn maze on a grid with two centre slices.
func ExampleCheck() {
	g, _ := circular.NewGrid(1, 2, 0)
	borders := []maze.Border{
		{Start: circular.At(1, 1, 4), End: circular.At(1, 0, 1)}, // boundary, open at 0→1/4
		{Start: circular.At(0, 0, 1), End: circular.At(1, 0, 1)},
		{Start: circular.At(0, 1, 2), End: circular.At(1, 1, 2)},
	}

	rep, err := verify.Check(g, borders)
	fmt.Println(rep)
	fmt.Println("error:", err)
	// Output:
	// 6 coordinates, 3 borders (1 arcs, 2 lines, 0 closed), 5 wall segments
	// error: <nil>
}
