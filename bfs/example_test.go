package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/surfnav/bfs"
	"github.com/katalvlaran/surfnav/core"
	"github.com/katalvlaran/surfnav/spatial"
)

// ExampleBFS counts hops along a corridor of four waypoints.
func ExampleBFS() {
	g := core.NewGraph([]spatial.Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}})
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)

	res, _ := bfs.BFS(g, 0)
	fmt.Println(res.Order, res.PathTo(3))
	// Output: [0 1 2 3] [0 1 2 3]
}
