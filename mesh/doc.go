// SPDX-License-Identifier: MIT

// Package mesh describes a walkable 3D surface as a polygon mesh: a shared
// vertex array, convex faces given by corner indices, and the edges between
// corners.
//
// Geometry helpers on Face:
//
//   - Area:          fan-triangulated area of the (convex) polygon.
//   - Center:        mean of the corners.
//   - DistFromPoint: shortest distance from a point to the filled polygon.
//   - ContainsEdge:  whether an edge is one of the polygon's sides.
//
// Connected(f1, f2) is the face adjacency predicate: two faces are connected
// when they share a side.
//
// Meshes can be decoded from HJSON (a JSON superset with comments and
// unquoted keys):
//
//	{
//	  vertices: [[0,0,0], [1,0,0], [1,0,1], [0,0,1]]
//	  faces:    [[0,1,2], [0,2,3]]
//	  # edges may be omitted; they are derived from the faces
//	}
//
// Errors:
//
//   - ErrInvalidMesh: structural problem (bad index, face with < 3 corners,
//     self-loop edge, non-finite coordinate). Always wrapped with detail.
package mesh
