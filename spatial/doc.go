// SPDX-License-Identifier: MIT

// Package spatial holds the small amount of 3D geometry the navigation
// packages share: vectors (mgl64.Vec3), line segments, and obstacles that may
// block a straight segment.
//
// What:
//
//   - Vec3 is an alias of mgl64.Vec3, so callers can use the full mathgl API.
//   - Segment is a directed straight line between two points.
//   - Shape is the blocking oracle: IntersectsSegment(Segment) bool.
//   - Obstacle pairs a Shape with a Blocking flag that callers toggle
//     between queries (a door that opens, a bridge that lowers).
//   - Box (axis-aligned) and Prism (footprint polygon extruded along Y)
//     are the two shipped Shapes.
//
// Blocked(obstacles, seg) is the predicate every navigation query uses. It
// reads the Blocking flags at call time and never caches the answer.
//
// Thread safety:
//
//   - Shapes are immutable values and safe for concurrent use.
//   - Obstacle.Blocking is a plain field; serialize writes with readers.
package spatial
