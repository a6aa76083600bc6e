// SPDX-License-Identifier: MIT

// Package surface builds a navigation graph over a 3D polygon mesh and
// answers path and exploration queries on it under a "memory" model: an
// agent can only route through vertices it has already seen.
//
// Graph construction (New):
//
//  1. Every mesh vertex becomes a graph vertex with the same index, and every
//     mesh edge becomes a graph edge.
//  2. A vertex on a side used by exactly one face is a Border vertex.
//  3. Each face whose area reaches the threshold gets a synthetic Center
//     vertex at its centre, linked to all of its corners.
//  4. Centers of faces that share a side are linked to each other.
//
// Memory:
//
//   - All vertices start unseen. MarkAsSeen records perceived vertices; a
//     seen non-center vertex also reveals its neighbouring centers.
//   - Neighbours hides unseen vertices, so a pathfinder running on the graph
//     can only use what was seen. WithPerfectMemory turns the filter off.
//
// Travel preference:
//
//   - PreferCenter (default) discounts costs leaving a center vertex,
//     PreferBorder discounts costs entering a border vertex, NoPreference
//     leaves them alone. The discount factor is PreferenceDiscount and it
//     applies to both the A* goal estimate and the edge cost.
//
// Queries:
//
//   - FindPath / FindPathBetween: vertex-to-vertex or point-to-point routes.
//   - Explore / ExploreFrom: a route to the nearest reachable unseen vertex.
//   - NearestUnblockedVertex: anchor an arbitrary 3D point on the graph.
//
// Unreachable targets are reported with ErrNoPath (errors.Is); invalid ids
// and locations fail fast with ErrVertexOutOfRange / ErrInvalidLocation.
//
// A Graph has one owner. Calls to MarkAsSeen, obstacle changes and the
// setters must not overlap with queries.
package surface
