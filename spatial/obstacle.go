// SPDX-License-Identifier: MIT

package spatial

// Shape is anything that can tell whether a straight segment passes through it.
type Shape interface {
	IntersectsSegment(s Segment) bool
}

// Obstacle is a Shape plus a switch saying whether it currently blocks.
// The navigation graph only reads Blocking; the owner flips it.
type Obstacle struct {
	Shape    Shape
	Blocking bool
}

// NewObstacle wraps shape in an Obstacle that starts out blocking.
func NewObstacle(shape Shape) *Obstacle {
	return &Obstacle{Shape: shape, Blocking: true}
}

// Blocks reports whether o is enabled and its shape intersects s.
// A nil obstacle or one without a shape never blocks.
func (o *Obstacle) Blocks(s Segment) bool {
	if o == nil || !o.Blocking || o.Shape == nil {
		return false
	}

	return o.Shape.IntersectsSegment(s)
}

// Blocked reports whether any obstacle in obstacles blocks s.
//
// Complexity: O(len(obstacles)) shape tests.
func Blocked(obstacles []*Obstacle, s Segment) bool {
	for _, o := range obstacles {
		if o.Blocks(s) {
			return true
		}
	}

	return false
}
