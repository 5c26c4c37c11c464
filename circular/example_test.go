package circular_test

import (
	"fmt"

	"github.com/katalvlaran/ringmaze/circular"
)

// ExampleNewGrid lists the positions of a small two-ring grid and shows the
// spoke that connects ring 0 to ring 1.
func ExampleNewGrid() {
	g, err := circular.NewGrid(1, 4, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("ring 0:", g.Ring(0))
	fmt.Println("ring 1:", g.Ring(1))

	out, ok := g.Neighbour(circular.At(0, 1, 4), circular.Outward)
	fmt.Println("outward of 0@1/4:", out, ok)
	_, ok = g.Neighbour(circular.At(1, 1, 8), circular.Inward)
	fmt.Println("inward of 1@1/8:", ok)
	// Output:
	// ring 0: [0@0/1 0@1/4 0@1/2 0@3/4]
	// ring 1: [1@0/1 1@1/8 1@1/4 1@3/8 1@1/2 1@5/8 1@3/4 1@7/8]
	// outward of 0@1/4: 1@1/4 true
	// inward of 1@1/8: false
}

// ExampleDistributor_TakeFree claims cells until the grid is exhausted.
func ExampleDistributor_TakeFree() {
	g, _ := circular.NewGrid(1, 2, 0)
	d := circular.NewDistributor(g, circular.WithSeed(3))
	d.ConsumeOuterCircle()

	n := 0
	for {
		if _, ok := d.TakeFree(); !ok {
			break
		}
		n++
	}
	fmt.Println("interior cells:", n, "claimed:", d.ClaimedCount(), "of", d.Len())
	// Output:
	// interior cells: 2 claimed: 6 of 6
}
