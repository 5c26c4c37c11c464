package core_test

import (
	"fmt"

	"github.com/katalvlaran/ringmaze/core"
)

// ExampleGraph builds a small wall graph: a spoke 0@0/1 to 1@0/1 and an arc
// step along ring 1.
func ExampleGraph() {
	g := core.NewGraph()
	_, _ = g.AddEdge("0@0/1", "1@0/1")
	_, _ = g.AddEdge("1@0/1", "1@1/4")

	ids, _ := g.NeighborIDs("1@0/1")
	fmt.Println(g.Vertices())
	fmt.Println(ids)
	_, err := g.AddEdge("1@1/4", "1@0/1")
	fmt.Println(err)
	// Output:
	// [0@0/1 1@0/1 1@1/4]
	// [0@0/1 1@1/4]
	// core: multi-edges not allowed
}
