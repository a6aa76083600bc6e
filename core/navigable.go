// SPDX-License-Identifier: MIT

package core

import (
	"math"

	"github.com/katalvlaran/surfnav/spatial"
)

// Heuristic returns the straight-line distance between from and to, or +Inf
// if that distance is not a finite number.
func (g *Graph) Heuristic(from, to int) float64 {
	d := spatial.Dist(g.vertices[from], g.vertices[to])
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return math.Inf(1)
	}

	return d
}

// Distance returns the straight-line length of edge from→to, or NaN when the
// two vertices are not adjacent.
func (g *Graph) Distance(from, to int) float64 {
	if !g.HasEdge(from, to) {
		return math.NaN()
	}

	return g.Heuristic(from, to)
}
