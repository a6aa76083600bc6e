// SPDX-License-Identifier: MIT

package mesh

import (
	"fmt"
	"os"

	"github.com/hjson/hjson-go/v4"

	"github.com/katalvlaran/surfnav/spatial"
)

// File is the on-disk shape of a mesh. Edges are optional.
type File struct {
	Vertices [][]float64 `json:"vertices"`
	Faces    [][]int     `json:"faces"`
	Edges    [][]int     `json:"edges,omitempty"`
}

// Mesh converts f into a validated Mesh. Missing edges are derived from the
// face sides.
func (f *File) Mesh() (*Mesh, error) {
	m := &Mesh{
		Vertices: make([]spatial.Vec3, 0, len(f.Vertices)),
		Faces:    make([]Face, 0, len(f.Faces)),
	}
	for i, v := range f.Vertices {
		if len(v) != 3 {
			return nil, fmt.Errorf("%w: vertex %d has %d coordinates (need 3)", ErrInvalidMesh, i, len(v))
		}
		m.Vertices = append(m.Vertices, spatial.Vec3{v[0], v[1], v[2]})
	}
	for _, corners := range f.Faces {
		m.Faces = append(m.Faces, NewFace(append([]int(nil), corners...)...))
	}
	if len(f.Edges) == 0 {
		m.Edges = EdgesFromFaces(m.Faces)
	} else {
		m.Edges = make([]Edge, 0, len(f.Edges))
		for i, e := range f.Edges {
			if len(e) != 2 {
				return nil, fmt.Errorf("%w: edge %d has %d endpoints (need 2)", ErrInvalidMesh, i, len(e))
			}
			m.Edges = append(m.Edges, Edge{I: e[0], J: e[1]})
		}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// Decode parses an HJSON (or plain JSON) mesh document.
func Decode(data []byte) (*Mesh, error) {
	var f File
	if err := hjson.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("mesh: decode: %w", err)
	}

	return f.Mesh()
}

// Load reads and decodes the mesh file at path.
func Load(path string) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mesh: load %s: %w", path, err)
	}
	m, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("mesh: load %s: %w", path, err)
	}

	return m, nil
}
