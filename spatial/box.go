// SPDX-License-Identifier: MIT

package spatial

import "math"

// parallelEps is the direction component below which a segment is treated
// as parallel to a slab.
const parallelEps = 1e-12

// Box is an axis-aligned box. Min must be component-wise <= Max.
type Box struct {
	Min, Max Vec3
}

// NewBox returns the box spanned by two opposite corners in any order.
func NewBox(a, b Vec3) Box {
	return Box{
		Min: Vec3{math.Min(a[0], b[0]), math.Min(a[1], b[1]), math.Min(a[2], b[2])},
		Max: Vec3{math.Max(a[0], b[0]), math.Max(a[1], b[1]), math.Max(a[2], b[2])},
	}
}

// Contains reports whether p lies inside or on the boundary of b.
func (b Box) Contains(p Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}

	return true
}

// IntersectsSegment implements Shape with the slab method: the segment is
// clipped against the three pairs of planes and survives iff the clipped
// parameter interval stays non-empty. Touching the boundary counts.
func (b Box) IntersectsSegment(s Segment) bool {
	tmin, tmax := 0.0, 1.0
	d := s.To.Sub(s.From)
	for i := 0; i < 3; i++ {
		if math.Abs(d[i]) < parallelEps {
			if s.From[i] < b.Min[i] || s.From[i] > b.Max[i] {
				return false
			}
			continue
		}
		t1 := (b.Min[i] - s.From[i]) / d[i]
		t2 := (b.Max[i] - s.From[i]) / d[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return false
		}
	}

	return true
}
