// SPDX-License-Identifier: MIT

// Package meshgen builds synthetic polygon surfaces for tests, benchmarks and
// the surfnav CLI.
//
// A mesh is assembled by Build from one or more Constructors. Each
// constructor appends its own vertices and faces, so several constructors
// produce disconnected patches of one surface:
//
//	m, err := meshgen.Build(
//	    []meshgen.Option{meshgen.WithCellSize(2)},
//	    meshgen.Grid(4, 4),
//	)
//
// Constructors:
//
//   - Grid(rows, cols): rows×cols cells, each split into two triangles along
//     the diagonal from its lower-left to its upper-right corner.
//   - QuadGrid(rows, cols): rows×cols quadrilateral cells.
//   - Fan(sides, radius): a regular polygon split into triangles around a hub
//     vertex.
//
// Geometry lies in the X/Z plane with Y up. Options move the patch
// (WithOrigin), scale it (WithCellSize), shape it (WithElevation) and add
// reproducible vertical noise (WithJitter together with WithSeed).
//
// Determinism: vertex and face order is fixed (row-major for grids,
// counter-clockwise for fans) and noise only comes from a seeded RNG.
// Edges are derived from faces with mesh.EdgesFromFaces.
package meshgen
