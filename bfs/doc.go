// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Navigable, returning
// hop counts, parent links and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: hop count per vertex, -1 if not reached
//   - Parent: predecessor in the BFS tree, -1 for the start and unreached
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Allows filtering of individual neighbour edges via WithFilterNeighbor.
//   - OnVisit may abort the walk with an error.
//
// Why
//
//	Reachability over what a Navigable currently exposes. For a surface
//	graph that is the seen part of the surface, so one BFS answers "can the
//	robot get there at all" for many targets before any weighted search runs.
//
// Determinism
//
//	Navigable.Neighbours returns ids in ascending order and BFS enqueues them
//	in that order, so the visit sequence is reproducible.
//
// Complexity (V = NumVertices, E = edges exposed by Neighbours)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, start, bfs.WithMaxDepth(3))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//	    // a context error or an OnVisit error
//	}
//	if res.Reached(goal) {
//	    hops := res.PathTo(goal)
//	}
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if start is outside [0, NumVertices()).
//   - ErrOptionViolation      if an Option is invalid (negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
