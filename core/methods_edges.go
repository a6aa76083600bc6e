// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"slices"
)

// AddEdge connects i and j in both directions. Adding an existing edge is a
// no-op. Self-loops are rejected.
//
// Complexity: O(deg(i) + deg(j)) for the sorted insert.
func (g *Graph) AddEdge(i, j int) error {
	if err := g.CheckVertex(i); err != nil {
		return fmt.Errorf("AddEdge(%d,%d): %w", i, j, err)
	}
	if err := g.CheckVertex(j); err != nil {
		return fmt.Errorf("AddEdge(%d,%d): %w", i, j, err)
	}
	if i == j {
		return fmt.Errorf("AddEdge(%d,%d): %w", i, j, ErrLoopNotAllowed)
	}
	if g.insertArc(i, j) {
		g.insertArc(j, i)
		g.numEdges++
	}

	return nil
}

// insertArc adds to into adj[from] keeping it sorted; false if already there.
func (g *Graph) insertArc(from, to int) bool {
	pos, found := slices.BinarySearch(g.adj[from], to)
	if found {
		return false
	}
	g.adj[from] = slices.Insert(g.adj[from], pos, to)

	return true
}

// HasEdge reports whether i and j are adjacent. Invalid ids are never adjacent.
func (g *Graph) HasEdge(i, j int) bool {
	if i < 0 || i >= len(g.adj) {
		return false
	}
	_, found := slices.BinarySearch(g.adj[i], j)

	return found
}

// NumEdges returns the number of undirected edges.
func (g *Graph) NumEdges() int { return g.numEdges }

// Neighbours returns the ids adjacent to id in ascending order. The slice is
// a fresh copy.
func (g *Graph) Neighbours(id int) []int {
	return slices.Clone(g.adj[id])
}

// Degree returns the number of neighbours of id.
func (g *Graph) Degree(id int) int { return len(g.adj[id]) }
