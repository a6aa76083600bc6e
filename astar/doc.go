// SPDX-License-Identifier: MIT

// Package astar implements A* shortest-path search over any core.Navigable.
//
// Overview:
//
//   - FindPath(g, start, goal) expands vertices in order of f = g + h, where
//     g is the accumulated Distance from start and h = Heuristic(v, goal).
//   - Ties on f prefer the smaller h (the vertex that looks closer to the
//     goal), then the earlier insertion.
//   - The search is stateless: every call allocates its own frontier, cost
//     table and predecessor table. The graph is only read.
//
// The graph decides what is visible. A memory-filtered graph simply leaves
// unseen vertices out of Neighbours, and the search never learns about them.
//
// Robustness:
//
//   - A NaN or +Inf Distance between vertices that Neighbours claims are
//     adjacent is treated as an impassable edge and skipped.
//   - A vertex whose cost improves after it was expanded is expanded again,
//     so the result stays correct when the heuristic is only approximately
//     admissible. With a heuristic h ≤ w·h* the returned path costs at most
//     w times the optimum.
//
// Complexity:
//
//   - Time:  O(E log V) with a consistent heuristic.
//   - Space: O(V + E) (lazy decrease-key keeps stale heap entries).
//
// Errors (sentinel):
//
//   - ErrNilGraph:         graph is nil.
//   - ErrVertexOutOfRange: start or goal outside [0, NumVertices()).
//   - ErrNoPath:           goal unreachable from start. Expected outcome.
//   - ErrSearchLimit:      WithMaxExpansions cap reached.
//
// Options:
//
//   - WithContext(ctx):      abort when ctx is done; ctx.Err() is wrapped.
//   - WithMaxExpansions(n):  stop after n vertex expansions.
package astar
