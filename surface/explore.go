// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/surfnav/astar"
	"github.com/katalvlaran/surfnav/bfs"
	"github.com/katalvlaran/surfnav/spatial"
)

// Frontiers lists, for each seen vertex in ascending id order, the first
// unseen structural neighbour that is visible from it (no blocking obstacle
// on the straight segment). Seen vertices without such a neighbour are
// omitted. Under perfect memory nothing is unseen and the list is empty.
func (g *Graph) Frontiers() []Frontier {
	if g.perfectMemory {
		return nil
	}
	var out []Frontier
	for v, seen := range g.seen {
		if !seen {
			continue
		}
		for _, z := range g.base.Neighbours(v) {
			if !g.seen[z] && !g.base.IsEdgeBlocked(v, z) {
				out = append(out, Frontier{Seen: v, Unseen: z})
				break
			}
		}
	}

	return out
}

// Explore returns a path from start to the nearest reachable frontier, with
// the frontier's unseen vertex as the last element. Frontiers are tried in
// order of straight-line distance from start to their seen vertex; the
// first one reachable over seen vertices wins. A breadth-first sweep from
// start rules out unreachable frontiers before any weighted search runs.
//
// Errors:
//   - ErrVertexOutOfRange if start is invalid.
//   - ErrNoPath if there is no frontier or none is reachable.
//   - context errors from a canceled search, unwrapped from the pathfinder.
//
// Complexity: O(V + E) for the sweep, then up to one search per reachable
// frontier.
func (g *Graph) Explore(start int) ([]int, error) {
	if err := g.base.CheckVertex(start); err != nil {
		return nil, fmt.Errorf("Explore: %w", err)
	}
	frontiers := g.Frontiers()
	if len(frontiers) == 0 {
		return nil, fmt.Errorf("%w: no frontier", ErrNoPath)
	}

	origin := g.base.Vertex(start)
	sort.SliceStable(frontiers, func(a, b int) bool {
		return spatial.Dist(origin, g.base.Vertex(frontiers[a].Seen)) <
			spatial.Dist(origin, g.base.Vertex(frontiers[b].Seen))
	})

	reach, err := bfs.BFS(g, start)
	if err != nil {
		return nil, fmt.Errorf("Explore: %w", err)
	}

	find := g.search()
	for _, fr := range frontiers {
		if !reach.Reached(fr.Seen) {
			continue
		}
		path, err := find(g, start, fr.Seen)
		switch {
		case err == nil:
			return append(path, fr.Unseen), nil
		case errors.Is(err, ErrNoPath), errors.Is(err, astar.ErrSearchLimit):
			continue
		default:
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: no reachable frontier among %d", ErrNoPath, len(frontiers))
}

// ExploreFrom anchors location with NearestUnblockedVertex and explores from
// the anchor. A location that cannot be anchored yields ErrNoPath.
func (g *Graph) ExploreFrom(location spatial.Vec3, faceDistThreshold float64) ([]int, error) {
	start, ok, err := g.NearestUnblockedVertex(location, faceDistThreshold)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %v is not near the surface", ErrNoPath, location)
	}

	return g.Explore(start)
}
