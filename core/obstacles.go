// SPDX-License-Identifier: MIT

package core

import (
	"slices"

	"github.com/katalvlaran/surfnav/spatial"
)

// AddObstacle registers o. The caller keeps ownership and may flip
// o.Blocking at any time between queries.
func (g *Graph) AddObstacle(o *spatial.Obstacle) {
	if o == nil {
		return
	}
	g.obstacles = append(g.obstacles, o)
}

// RemoveObstacle unregisters o and reports whether it was present.
func (g *Graph) RemoveObstacle(o *spatial.Obstacle) bool {
	i := slices.Index(g.obstacles, o)
	if i < 0 {
		return false
	}
	g.obstacles = slices.Delete(g.obstacles, i, i+1)

	return true
}

// Obstacles returns the registered obstacles. The slice is a copy; the
// obstacles themselves are shared.
func (g *Graph) Obstacles() []*spatial.Obstacle {
	return slices.Clone(g.obstacles)
}

// IsBlocked reports whether the segment a→b is blocked by a currently
// blocking obstacle.
func (g *Graph) IsBlocked(a, b spatial.Vec3) bool {
	return spatial.Blocked(g.obstacles, spatial.Seg(a, b))
}

// IsEdgeBlocked is IsBlocked applied to the positions of vertices i and j.
func (g *Graph) IsEdgeBlocked(i, j int) bool {
	return g.IsBlocked(g.vertices[i], g.vertices[j])
}
