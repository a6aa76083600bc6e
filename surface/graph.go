// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"math"

	"github.com/katalvlaran/surfnav/astar"
	"github.com/katalvlaran/surfnav/core"
	"github.com/katalvlaran/surfnav/mesh"
	"github.com/katalvlaran/surfnav/spatial"
)

// noCenter marks a face without a center vertex in faceCenter.
const noCenter = -1

// Graph is a navigation graph over a polygon surface with a seen-set memory.
// It decorates a core.Graph and implements core.Navigable itself.
type Graph struct {
	base            *core.Graph
	faces           []mesh.Face
	faceCenter      []int // face index → center vertex id, or noCenter
	types           []VertexType
	seen            []bool
	numBaseVertices int
	areaThreshold   float64
	index           *faceIndex

	preference    TravelPreference
	perfectMemory bool
	pathfinder    Pathfinder
	pathOptions   []astar.Option
}

// New builds the navigation graph of m. Faces with area ≥ areaThreshold get
// a center vertex. The mesh is read, not retained; later changes to m do not
// affect the graph.
//
// Errors:
//   - ErrNilMesh if m is nil.
//   - ErrBadAreaThreshold if areaThreshold is not positive and finite.
//   - mesh.ErrInvalidMesh (wrapped) if m fails validation.
//
// Complexity: O(V + E + F·k + F²·k²) for F faces of at most k corners; the
// last term is the pairwise face adjacency scan.
func New(m *mesh.Mesh, areaThreshold float64, opts ...Option) (*Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if m == nil {
		return nil, ErrNilMesh
	}
	if !(areaThreshold > 0) || math.IsInf(areaThreshold, 1) {
		return nil, fmt.Errorf("%w: got %v", ErrBadAreaThreshold, areaThreshold)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}

	g := &Graph{
		base:            core.NewGraph(m.Vertices),
		faces:           make([]mesh.Face, len(m.Faces)),
		faceCenter:      make([]int, len(m.Faces)),
		types:           make([]VertexType, len(m.Vertices)),
		numBaseVertices: len(m.Vertices),
		areaThreshold:   areaThreshold,
		preference:      cfg.Preference,
		perfectMemory:   cfg.PerfectMemory,
		pathfinder:      cfg.Pathfinder,
		pathOptions:     cfg.PathOptions,
	}
	for i, f := range m.Faces {
		g.faces[i] = mesh.NewFace(append([]int(nil), f.Corners...)...)
	}

	// 1) mesh edges, unchanged
	for _, e := range m.Edges {
		if err := g.base.AddEdge(e.I, e.J); err != nil {
			return nil, fmt.Errorf("surface: %w", err)
		}
	}

	// 2) border vertices
	g.classifyBorders(m.Edges)

	// 3) face centers
	vertices := m.Vertices
	for fi, f := range g.faces {
		g.faceCenter[fi] = noCenter
		if f.Area(vertices) < areaThreshold {
			continue
		}
		c := g.base.AddVertex(f.Center(vertices))
		g.types = append(g.types, Center)
		g.faceCenter[fi] = c
		for _, corner := range f.Corners {
			if err := g.base.AddEdge(corner, c); err != nil {
				return nil, fmt.Errorf("surface: face %d: %w", fi, err)
			}
		}
	}

	// 4) centers of adjacent faces
	for i := range g.faces {
		ci := g.faceCenter[i]
		if ci == noCenter {
			continue
		}
		for j := 0; j < i; j++ {
			cj := g.faceCenter[j]
			if cj == noCenter || !mesh.Connected(g.faces[i], g.faces[j]) {
				continue
			}
			if err := g.base.AddEdge(ci, cj); err != nil {
				return nil, fmt.Errorf("surface: faces %d,%d: %w", i, j, err)
			}
		}
	}

	// 5) memory
	g.seen = make([]bool, g.base.NumVertices())
	g.index = newFaceIndex(g.faces, g.base.Vertices())

	return g, nil
}

// classifyBorders marks both ends of every edge that is a side of exactly
// one face as Border.
func (g *Graph) classifyBorders(edges []mesh.Edge) {
	count := make(map[mesh.Edge]int, len(edges))
	for _, f := range g.faces {
		sides := make(map[mesh.Edge]struct{}, len(f.Corners))
		for _, s := range f.Sides() {
			sides[s.Canonical()] = struct{}{}
		}
		for s := range sides {
			count[s]++
		}
	}
	for _, e := range edges {
		if count[e.Canonical()] == 1 {
			g.types[e.I] = Border
			g.types[e.J] = Border
		}
	}
}

// NumVertices returns the total number of vertices, centers included.
func (g *Graph) NumVertices() int { return g.base.NumVertices() }

// NumBaseVertices returns the number of vertices copied from the mesh. Ids
// from NumBaseVertices() upward are face centers.
func (g *Graph) NumBaseVertices() int { return g.numBaseVertices }

// AreaThreshold returns the face area threshold the graph was built with.
func (g *Graph) AreaThreshold() float64 { return g.areaThreshold }

// Vertex returns the position of id. id must be valid.
func (g *Graph) Vertex(id int) spatial.Vec3 { return g.base.Vertex(id) }

// VertexType returns the classification of id. id must be valid.
func (g *Graph) VertexType(id int) VertexType { return g.types[id] }

// Faces returns the faces of the surface in mesh order.
func (g *Graph) Faces() []mesh.Face {
	out := make([]mesh.Face, len(g.faces))
	copy(out, g.faces)

	return out
}

// FaceCenter returns the center vertex of face fi, if it has one.
func (g *Graph) FaceCenter(fi int) (int, bool) {
	if fi < 0 || fi >= len(g.faceCenter) || g.faceCenter[fi] == noCenter {
		return 0, false
	}

	return g.faceCenter[fi], true
}

// HasEdge reports whether i and j are structurally adjacent.
func (g *Graph) HasEdge(i, j int) bool { return g.base.HasEdge(i, j) }

// NumEdges returns the number of structural edges.
func (g *Graph) NumEdges() int { return g.base.NumEdges() }

// AddObstacle registers an obstacle; see core.Graph.AddObstacle.
func (g *Graph) AddObstacle(o *spatial.Obstacle) { g.base.AddObstacle(o) }

// RemoveObstacle unregisters an obstacle.
func (g *Graph) RemoveObstacle(o *spatial.Obstacle) bool { return g.base.RemoveObstacle(o) }

// Obstacles returns the registered obstacles.
func (g *Graph) Obstacles() []*spatial.Obstacle { return g.base.Obstacles() }

// IsBlocked reports whether a blocking obstacle crosses the segment a→b.
func (g *Graph) IsBlocked(a, b spatial.Vec3) bool { return g.base.IsBlocked(a, b) }

// TravelPreference returns the current travel preference.
func (g *Graph) TravelPreference() TravelPreference { return g.preference }

// SetTravelPreference changes the travel preference for later queries.
func (g *Graph) SetTravelPreference(p TravelPreference) error {
	if !p.valid() {
		return fmt.Errorf("%w: %d", ErrBadPreference, int(p))
	}
	g.preference = p

	return nil
}

// PerfectMemory reports whether the seen-set filter is off.
func (g *Graph) PerfectMemory() bool { return g.perfectMemory }

// SetPerfectMemory switches the seen-set filter off (true) or on (false).
// The seen-set itself is kept either way.
func (g *Graph) SetPerfectMemory(on bool) { g.perfectMemory = on }

// SetPathfinder replaces the search used by FindPath and Explore. nil
// restores A*.
func (g *Graph) SetPathfinder(pf Pathfinder) { g.pathfinder = pf }
