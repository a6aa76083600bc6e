// SPDX-License-Identifier: MIT

package meshgen

import (
	"fmt"

	"github.com/katalvlaran/surfnav/mesh"
	"github.com/katalvlaran/surfnav/spatial"
)

// Constructor appends one patch of vertices and faces to b.
type Constructor func(b *builder, cfg config) error

// builder accumulates a mesh across constructors.
type builder struct {
	vertices []spatial.Vec3
	faces    []mesh.Face
}

// addVertex appends p and returns its id.
func (b *builder) addVertex(p spatial.Vec3) int {
	b.vertices = append(b.vertices, p)

	return len(b.vertices) - 1
}

func (b *builder) addFace(corners ...int) {
	b.faces = append(b.faces, mesh.NewFace(corners...))
}

// Build resolves opts and runs every constructor in order on one mesh.
// Edges are derived from the faces and the result is validated.
//
// Errors: constructor errors wrapped with "Build: %w"; ErrNilConstructor for
// a nil entry.
func Build(opts []Option, cons ...Constructor) (*mesh.Mesh, error) {
	cfg := newConfig(opts...)
	b := &builder{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: constructor %d: %w", i, ErrNilConstructor)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	m := &mesh.Mesh{
		Vertices: b.vertices,
		Faces:    b.faces,
		Edges:    mesh.EdgesFromFaces(b.faces),
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return m, nil
}
