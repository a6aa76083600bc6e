// SPDX-License-Identifier: MIT

package spatial

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Prism is a vertical extrusion of a 2D footprint. The footprint lives in the
// horizontal X/Z plane (orb.Point{x, z}) and the prism spans [MinY, MaxY].
// It models walls, pillars and closed doors standing on a walkable surface.
type Prism struct {
	Footprint orb.Ring
	MinY      float64
	MaxY      float64
}

// NewPrism builds a Prism from X/Z footprint corners. The ring does not need
// to be closed.
func NewPrism(minY, maxY float64, corners ...orb.Point) Prism {
	if minY > maxY {
		minY, maxY = maxY, minY
	}

	return Prism{Footprint: orb.Ring(corners), MinY: minY, MaxY: maxY}
}

// IntersectsSegment implements Shape.
//
// Steps:
//  1. Clip the segment to the Y slab [MinY, MaxY]; nothing left ⇒ false.
//  2. Project the clipped part onto X/Z and reject by bounding box.
//  3. An endpoint inside the footprint, or a crossing with any footprint
//     edge, means the segment passes through the prism.
func (p Prism) IntersectsSegment(s Segment) bool {
	n := len(p.Footprint)
	if n < 3 {
		return false
	}

	t0, t1 := 0.0, 1.0
	dy := s.To[1] - s.From[1]
	if math.Abs(dy) < parallelEps {
		if s.From[1] < p.MinY || s.From[1] > p.MaxY {
			return false
		}
	} else {
		ta := (p.MinY - s.From[1]) / dy
		tb := (p.MaxY - s.From[1]) / dy
		if ta > tb {
			ta, tb = tb, ta
		}
		t0 = max(t0, ta)
		t1 = min(t1, tb)
		if t0 > t1 {
			return false
		}
	}

	a, b := s.At(t0), s.At(t1)
	pa := orb.Point{a[0], a[2]}
	pb := orb.Point{b[0], b[2]}

	if !(orb.MultiPoint{pa, pb}).Bound().Intersects(p.Footprint.Bound()) {
		return false
	}
	if planar.RingContains(p.Footprint, pa) || planar.RingContains(p.Footprint, pb) {
		return true
	}
	for i := 0; i < n; i++ {
		if segmentsCross(pa, pb, p.Footprint[i], p.Footprint[(i+1)%n]) {
			return true
		}
	}

	return false
}

// segmentsCross reports whether the closed 2D segments p1p2 and p3p4 share a point.
func segmentsCross(p1, p2, p3, p4 orb.Point) bool {
	d1 := orientation(p3, p4, p1)
	d2 := orientation(p3, p4, p2)
	d3 := orientation(p1, p2, p3)
	d4 := orientation(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// collinear touching
	switch {
	case d1 == 0 && onSegment(p3, p4, p1):
		return true
	case d2 == 0 && onSegment(p3, p4, p2):
		return true
	case d3 == 0 && onSegment(p1, p2, p3):
		return true
	case d4 == 0 && onSegment(p1, p2, p4):
		return true
	}

	return false
}

// orientation is the z-component of (p2-p1) x (p3-p1) with sign flipped,
// matching the usual "direction" test.
func orientation(p1, p2, p3 orb.Point) float64 {
	return (p3[0]-p1[0])*(p2[1]-p1[1]) - (p2[0]-p1[0])*(p3[1]-p1[1])
}

// onSegment checks whether q, already known collinear with pr, lies between them.
func onSegment(p, r, q orb.Point) bool {
	return q[0] <= math.Max(p[0], r[0]) && q[0] >= math.Min(p[0], r[0]) &&
		q[1] <= math.Max(p[1], r[1]) && q[1] >= math.Min(p[1], r[1])
}
