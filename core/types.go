// SPDX-License-Identifier: MIT

package core

import (
	"errors"

	"github.com/katalvlaran/surfnav/spatial"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates a vertex id outside [0, NumVertices()).
	ErrVertexOutOfRange = errors.New("core: vertex id out of range")

	// ErrLoopNotAllowed indicates an attempt to connect a vertex to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Navigable is the minimal contract a pathfinder needs from a graph.
//
// Neighbours(id) lists the vertices reachable from id in one step.
// Heuristic(from, to) estimates the cost from one vertex to another; +Inf
// means "no useful estimate". Distance(from, to) is the true cost of the edge
// from→to and NaN when the two are not adjacent.
//
// Implementations may assume ids are in [0, NumVertices()).
type Navigable interface {
	NumVertices() int
	Neighbours(id int) []int
	Heuristic(from, to int) float64
	Distance(from, to int) float64
}

// Graph is the base navigation graph: positioned vertices, an undirected
// adjacency relation and a set of obstacles.
type Graph struct {
	vertices  []spatial.Vec3
	adj       [][]int // adj[v] sorted ascending, no duplicates
	numEdges  int
	obstacles []*spatial.Obstacle
}

// NewGraph returns a graph with a copy of vertices and no edges.
// Complexity: O(len(vertices)).
func NewGraph(vertices []spatial.Vec3) *Graph {
	g := &Graph{
		vertices: make([]spatial.Vec3, len(vertices)),
		adj:      make([][]int, len(vertices)),
	}
	copy(g.vertices, vertices)

	return g
}

var _ Navigable = (*Graph)(nil)
