// SPDX-License-Identifier: MIT

package spatial

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a point or direction in 3D space.
type Vec3 = mgl64.Vec3

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vec3) float64 {
	return a.Sub(b).Len()
}

// DistSq returns the squared Euclidean distance between a and b.
func DistSq(a, b Vec3) float64 {
	d := a.Sub(b)

	return d.Dot(d)
}

// IsFinite reports whether every component of v is a finite number.
func IsFinite(v Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}

	return true
}

// Segment is the straight line from From to To.
type Segment struct {
	From, To Vec3
}

// Seg is shorthand for Segment{From: a, To: b}.
func Seg(a, b Vec3) Segment {
	return Segment{From: a, To: b}
}

// At returns the point From + t*(To-From).
func (s Segment) At(t float64) Vec3 {
	return s.From.Add(s.To.Sub(s.From).Mul(t))
}

// Len returns the length of the segment.
func (s Segment) Len() float64 {
	return Dist(s.From, s.To)
}
