package astar_test

import (
	"fmt"

	"github.com/katalvlaran/surfnav/astar"
	"github.com/katalvlaran/surfnav/core"
	"github.com/katalvlaran/surfnav/spatial"
)

// ExampleFindPath routes around a missing link on a small square.
func ExampleFindPath() {
	// 3───2
	// │   │
	// 0   1   (no 0-1 edge)
	g := core.NewGraph([]spatial.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}})
	_ = g.AddEdge(0, 3)
	_ = g.AddEdge(3, 2)
	_ = g.AddEdge(2, 1)

	path, err := astar.FindPath(g, 0, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path, astar.PathCost(g, path))
	// Output: [0 3 2 1] 3
}
