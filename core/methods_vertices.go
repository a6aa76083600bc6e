// SPDX-License-Identifier: MIT

package core

import (
	"fmt"

	"github.com/katalvlaran/surfnav/spatial"
)

// AddVertex appends a vertex at p and returns its id.
func (g *Graph) AddVertex(p spatial.Vec3) int {
	g.vertices = append(g.vertices, p)
	g.adj = append(g.adj, nil)

	return len(g.vertices) - 1
}

// NumVertices returns the number of vertices.
func (g *Graph) NumVertices() int { return len(g.vertices) }

// Vertex returns the position of id. It panics on an invalid id, like a
// slice index would; use CheckVertex first when the id is untrusted.
func (g *Graph) Vertex(id int) spatial.Vec3 { return g.vertices[id] }

// Vertices returns a copy of all vertex positions, indexed by id.
func (g *Graph) Vertices() []spatial.Vec3 {
	out := make([]spatial.Vec3, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// CheckVertex returns an error wrapping ErrVertexOutOfRange if id is not a
// vertex of g.
func (g *Graph) CheckVertex(id int) error {
	if id < 0 || id >= len(g.vertices) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, id, len(g.vertices))
	}

	return nil
}
