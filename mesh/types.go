// SPDX-License-Identifier: MIT

package mesh

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/surfnav/spatial"
)

// ErrInvalidMesh indicates a structurally broken mesh.
var ErrInvalidMesh = errors.New("mesh: invalid mesh")

// Edge connects vertices I and J. Orientation carries no meaning.
type Edge struct {
	I, J int
}

// Canonical returns the edge with I <= J.
func (e Edge) Canonical() Edge {
	if e.I > e.J {
		return Edge{I: e.J, J: e.I}
	}

	return e
}

// Mesh is a polygon surface. Faces and Edges index into Vertices.
type Mesh struct {
	Vertices []spatial.Vec3
	Faces    []Face
	Edges    []Edge
}

// Validate checks index ranges, face sizes and coordinates.
// The returned error wraps ErrInvalidMesh.
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	for i, v := range m.Vertices {
		if !spatial.IsFinite(v) {
			return fmt.Errorf("%w: vertex %d has non-finite coordinate %v", ErrInvalidMesh, i, v)
		}
	}
	for fi, f := range m.Faces {
		if len(f.Corners) < 3 {
			return fmt.Errorf("%w: face %d has %d corners (need ≥ 3)", ErrInvalidMesh, fi, len(f.Corners))
		}
		for _, c := range f.Corners {
			if c < 0 || c >= n {
				return fmt.Errorf("%w: face %d corner %d out of range [0,%d)", ErrInvalidMesh, fi, c, n)
			}
		}
	}
	for ei, e := range m.Edges {
		if e.I < 0 || e.I >= n || e.J < 0 || e.J >= n {
			return fmt.Errorf("%w: edge %d (%d,%d) out of range [0,%d)", ErrInvalidMesh, ei, e.I, e.J, n)
		}
		if e.I == e.J {
			return fmt.Errorf("%w: edge %d is a self-loop on %d", ErrInvalidMesh, ei, e.I)
		}
	}

	return nil
}

// EdgesFromFaces returns every polygon side of faces once, in first-seen
// order, in canonical orientation.
func EdgesFromFaces(faces []Face) []Edge {
	seen := make(map[Edge]struct{})
	var out []Edge
	for _, f := range faces {
		for _, e := range f.Sides() {
			k := e.Canonical()
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}

	return out
}
