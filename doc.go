// SPDX-License-Identifier: MIT

// Package surfnav is memory-based navigation over polygon surfaces.
//
// A surface is a polygon mesh (walls, floors, terrain patches). surfnav turns
// it into a navigation graph, adds a synthetic vertex in the middle of every
// large enough face, and remembers which vertices a robot has seen. Paths
// only ever run over seen vertices, and exploration walks to the edge of the
// seen area.
//
// Packages:
//
//	spatial/   Vec3, segments and obstacle shapes (Box, Prism)
//	mesh/      Face geometry, Mesh validation and HJSON mesh files
//	core/      the base navigation graph and the Navigable interface
//	astar/     A* over any Navigable
//	bfs/       breadth-first reachability over any Navigable
//	surface/   the surface graph: memory, travel preference, anchoring,
//	           path queries and frontier exploration
//	meshgen/   synthetic grids and fans for tests and demos
//	cmd/       the surfnav command-line tool
//
// Quick ASCII example:
//
//	3───2
//	│ ╱ │      two triangles, each with a center vertex (4 and 5)
//	0───1
//
//	g, _ := surface.New(m, 0.1)
//	_ = g.MarkAsSeen(1)        // also reveals center 4
//	path, _ := g.Explore(1)    // walks to the nearest unseen neighbour
//
// Scenario files for the CLI live in examples/.
package surfnav
