// SPDX-License-Identifier: MIT

// Package core defines the base navigation graph and the Navigable contract
// every pathfinder in this module consumes.
//
// What:
//
//   - Navigable: NumVertices, Neighbours, Heuristic, Distance.
//   - Graph: dense vertex indices 0..N-1 with 3D coordinates, an undirected
//     duplicate-free adjacency relation, and a list of obstacles that may
//     block straight segments between points.
//
// Distances:
//
//   - Heuristic(from, to) is the straight-line distance, +Inf when that is
//     not a finite number. It never overestimates the cost of an edge path.
//   - Distance(from, to) is the straight-line distance for adjacent pairs
//     and NaN otherwise.
//
// Determinism:
//
//   - Neighbours returns ids in ascending order.
//
// Errors:
//
//   - ErrVertexOutOfRange: an id outside [0, NumVertices()).
//   - ErrLoopNotAllowed:   AddEdge(i, i).
//
// Thread safety:
//
//   - A Graph has a single writer. Concurrent readers are fine as long as no
//     one mutates vertices, edges or obstacles at the same time.
package core
