// SPDX-License-Identifier: MIT

package mesh

import (
	"math"

	"github.com/katalvlaran/surfnav/spatial"
)

// degenerateEps bounds the normal length under which a face is treated as
// having no usable plane.
const degenerateEps = 1e-12

// Face is a convex polygon. Corners are vertex indices in boundary order.
type Face struct {
	Corners []int
}

// NewFace returns a Face with the given corners.
func NewFace(corners ...int) Face {
	return Face{Corners: corners}
}

// Sides returns the polygon sides in boundary order, closing back to the
// first corner.
func (f Face) Sides() []Edge {
	n := len(f.Corners)
	out := make([]Edge, 0, n)
	for k := 0; k < n; k++ {
		out = append(out, Edge{I: f.Corners[k], J: f.Corners[(k+1)%n]})
	}

	return out
}

// HasCorner reports whether v is a corner of f.
func (f Face) HasCorner(v int) bool {
	for _, c := range f.Corners {
		if c == v {
			return true
		}
	}

	return false
}

// ContainsEdge reports whether e (in either orientation) is a side of f.
func (f Face) ContainsEdge(e Edge) bool {
	n := len(f.Corners)
	for k := 0; k < n; k++ {
		a, b := f.Corners[k], f.Corners[(k+1)%n]
		if (a == e.I && b == e.J) || (a == e.J && b == e.I) {
			return true
		}
	}

	return false
}

// Connected reports whether f1 and f2 share a side. The caller is expected
// to pass two distinct faces; a face is trivially "connected" to itself.
func Connected(f1, f2 Face) bool {
	for _, e := range f1.Sides() {
		if f2.ContainsEdge(e) {
			return true
		}
	}

	return false
}

// Area returns the surface area of f, computed by fanning triangles out of
// the first corner.
func (f Face) Area(vertices []spatial.Vec3) float64 {
	return f.normal(vertices).Len() / 2
}

// Center returns the mean of the corners of f.
func (f Face) Center(vertices []spatial.Vec3) spatial.Vec3 {
	var sum spatial.Vec3
	for _, c := range f.Corners {
		sum = sum.Add(vertices[c])
	}
	if len(f.Corners) == 0 {
		return sum
	}

	return sum.Mul(1 / float64(len(f.Corners)))
}

// DistFromPoint returns the distance from p to the filled polygon f.
// If p projects inside f the distance is the height above the face plane,
// otherwise it is the distance to the nearest side. Degenerate faces
// (zero area) fall back to the nearest side.
func (f Face) DistFromPoint(p spatial.Vec3, vertices []spatial.Vec3) float64 {
	if len(f.Corners) == 0 {
		return math.Inf(1)
	}
	n := f.normal(vertices)
	if nl := n.Len(); nl > degenerateEps {
		n = n.Mul(1 / nl)
		v0 := vertices[f.Corners[0]]
		h := p.Sub(v0).Dot(n)
		q := p.Sub(n.Mul(h))
		if f.projectsInside(q, n, vertices) {
			return math.Abs(h)
		}
	}

	best := math.Inf(1)
	for _, e := range f.Sides() {
		best = math.Min(best, pointSegmentDist(p, vertices[e.I], vertices[e.J]))
	}

	return best
}

// normal returns the un-normalised polygon normal; its length is twice the area.
func (f Face) normal(vertices []spatial.Vec3) spatial.Vec3 {
	var n spatial.Vec3
	if len(f.Corners) < 3 {
		return n
	}
	v0 := vertices[f.Corners[0]]
	for k := 1; k+1 < len(f.Corners); k++ {
		a := vertices[f.Corners[k]].Sub(v0)
		b := vertices[f.Corners[k+1]].Sub(v0)
		n = n.Add(a.Cross(b))
	}

	return n
}

// projectsInside assumes q lies on the plane of f with unit normal n.
func (f Face) projectsInside(q, n spatial.Vec3, vertices []spatial.Vec3) bool {
	const eps = 1e-9
	for _, e := range f.Sides() {
		a, b := vertices[e.I], vertices[e.J]
		if b.Sub(a).Cross(q.Sub(a)).Dot(n) < -eps {
			return false
		}
	}

	return true
}

// pointSegmentDist is the distance from p to the closed segment ab.
func pointSegmentDist(p, a, b spatial.Vec3) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return spatial.Dist(p, a)
	}
	t := p.Sub(a).Dot(ab) / l2
	t = math.Max(0, math.Min(1, t))

	return spatial.Dist(p, a.Add(ab.Mul(t)))
}
