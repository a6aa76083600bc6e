// SPDX-License-Identifier: MIT

package surface

import (
	"math"

	"github.com/katalvlaran/surfnav/core"
)

var _ core.Navigable = (*Graph)(nil)

// Neighbours returns the seen neighbours of id in ascending order, or all
// structural neighbours under perfect memory.
func (g *Graph) Neighbours(id int) []int {
	all := g.base.Neighbours(id)
	if g.perfectMemory {
		return all
	}
	out := all[:0]
	for _, v := range all {
		if g.seen[v] {
			out = append(out, v)
		}
	}

	return out
}

// StructuralNeighbours returns every neighbour of id, seen or not.
func (g *Graph) StructuralNeighbours(id int) []int {
	return g.base.Neighbours(id)
}

// Heuristic is the straight-line estimate of the base graph, discounted by
// PreferenceDiscount according to the travel preference:
//
//   - PreferCenter: when from is a Center.
//   - PreferBorder: when to is a Border.
//
// +Inf passes through unchanged. The discount only ever lowers the estimate.
func (g *Graph) Heuristic(from, to int) float64 {
	d := g.base.Heuristic(from, to)
	if math.IsInf(d, 1) {
		return d
	}
	switch g.preference {
	case PreferCenter:
		if g.types[from] == Center {
			d *= PreferenceDiscount
		}
	case PreferBorder:
		if g.types[to] == Border {
			d *= PreferenceDiscount
		}
	}

	return d
}

// Distance is the cost of edge from→to: Heuristic(from, to) for adjacent
// vertices, NaN otherwise. The preference discount is therefore part of the
// edge cost as well as the goal estimate.
func (g *Graph) Distance(from, to int) float64 {
	if !g.base.HasEdge(from, to) {
		return math.NaN()
	}

	return g.Heuristic(from, to)
}
