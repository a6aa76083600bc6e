// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"math"

	"github.com/katalvlaran/surfnav/spatial"
)

// NearestUnblockedVertex anchors location on the surface. It takes the first
// face (in mesh order) lying within faceDistThreshold of location, then
// returns the closest of that face's center and corners that can be reached
// from location in a straight line without crossing a blocking obstacle.
// The center is considered first, so it wins ties. Seen status is ignored.
//
// ok is false when no face is close enough or every candidate is blocked.
//
// Errors:
//   - ErrInvalidLocation if location has a NaN or infinite coordinate.
//   - ErrBadFaceDistThreshold if faceDistThreshold is negative or NaN.
func (g *Graph) NearestUnblockedVertex(location spatial.Vec3, faceDistThreshold float64) (int, bool, error) {
	if !spatial.IsFinite(location) {
		return 0, false, fmt.Errorf("%w: %v", ErrInvalidLocation, location)
	}
	if !(faceDistThreshold >= 0) {
		return 0, false, fmt.Errorf("%w: got %v", ErrBadFaceDistThreshold, faceDistThreshold)
	}

	vertices := g.base.Vertices()
	face := -1
	for _, fi := range g.index.candidates(location, faceDistThreshold) {
		if g.faces[fi].DistFromPoint(location, vertices) <= faceDistThreshold {
			face = fi
			break
		}
	}
	if face < 0 {
		return 0, false, nil
	}

	best, bestSq := -1, math.Inf(1)
	try := func(id int) {
		p := vertices[id]
		if d := spatial.DistSq(location, p); d < bestSq && !g.IsBlocked(location, p) {
			best, bestSq = id, d
		}
	}
	if c := g.faceCenter[face]; c != noCenter {
		try(c)
	}
	for _, corner := range g.faces[face].Corners {
		try(corner)
	}
	if best < 0 {
		return 0, false, nil
	}

	return best, true, nil
}

// FindPath returns a path from start to goal over seen vertices (all
// vertices under perfect memory), both ends included.
//
// Errors:
//   - ErrVertexOutOfRange if either id is invalid.
//   - ErrNoPath (possibly wrapped) if goal cannot be reached.
//   - whatever a custom Pathfinder or a canceled context returns.
func (g *Graph) FindPath(start, goal int) ([]int, error) {
	if err := g.base.CheckVertex(start); err != nil {
		return nil, fmt.Errorf("FindPath: %w", err)
	}
	if err := g.base.CheckVertex(goal); err != nil {
		return nil, fmt.Errorf("FindPath: %w", err)
	}

	return g.search()(g, start, goal)
}

// FindPathBetween anchors both locations with NearestUnblockedVertex and
// runs FindPath between the anchors. A location that cannot be anchored
// yields ErrNoPath.
func (g *Graph) FindPathBetween(from, to spatial.Vec3, faceDistThreshold float64) ([]int, error) {
	start, ok, err := g.NearestUnblockedVertex(from, faceDistThreshold)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: start %v is not near the surface", ErrNoPath, from)
	}
	goal, ok, err := g.NearestUnblockedVertex(to, faceDistThreshold)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: goal %v is not near the surface", ErrNoPath, to)
	}

	return g.FindPath(start, goal)
}

// search returns the configured Pathfinder, A* when none is set.
func (g *Graph) search() Pathfinder {
	if g.pathfinder != nil {
		return g.pathfinder
	}

	return aStar(g.pathOptions)
}
