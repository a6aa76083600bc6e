// SPDX-License-Identifier: MIT

package surface

import (
	"math"
	"slices"

	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/surfnav/mesh"
	"github.com/katalvlaran/surfnav/spatial"
)

// boxPad keeps R-tree rectangles non-degenerate for flat faces.
const boxPad = 1e-9

// faceEntry is one face's bounding box in the R-tree.
type faceEntry struct {
	face int
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *faceEntry) Bounds() rtreego.Rect { return e.bbox }

// faceIndex shortlists faces that may lie within a distance of a point.
// A face within distance r of p has its bounding box within r of p on every
// axis, so querying the box around p of half-size r never misses a face.
type faceIndex struct {
	tree *rtreego.Rtree
	n    int
	// faces whose box could not be represented; always candidates
	loose []int
}

func newFaceIndex(faces []mesh.Face, vertices []spatial.Vec3) *faceIndex {
	idx := &faceIndex{tree: rtreego.NewTree(3, 25, 50), n: len(faces)}
	for fi, f := range faces {
		bbox, err := faceBox(f, vertices)
		if err != nil {
			idx.loose = append(idx.loose, fi)
			continue
		}
		idx.tree.Insert(&faceEntry{face: fi, bbox: bbox})
	}

	return idx
}

// candidates returns the indices of faces whose bounding box is within r of
// p, in ascending face order.
func (idx *faceIndex) candidates(p spatial.Vec3, r float64) []int {
	if math.IsInf(r, 1) {
		all := make([]int, idx.n)
		for i := range all {
			all[i] = i
		}
		return all
	}
	out := slices.Clone(idx.loose)
	pad := r + boxPad
	query, err := rtreego.NewRect(
		rtreego.Point{p[0] - pad, p[1] - pad, p[2] - pad},
		[]float64{2 * pad, 2 * pad, 2 * pad},
	)
	if err != nil {
		return out
	}
	for _, item := range idx.tree.SearchIntersect(query) {
		out = append(out, item.(*faceEntry).face)
	}
	slices.Sort(out)

	return out
}

// faceBox is the padded axis-aligned bounding box of f.
func faceBox(f mesh.Face, vertices []spatial.Vec3) (rtreego.Rect, error) {
	lo := spatial.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := spatial.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, c := range f.Corners {
		v := vertices[c]
		for k := 0; k < 3; k++ {
			lo[k] = math.Min(lo[k], v[k])
			hi[k] = math.Max(hi[k], v[k])
		}
	}

	return rtreego.NewRect(
		rtreego.Point{lo[0] - boxPad, lo[1] - boxPad, lo[2] - boxPad},
		[]float64{hi[0] - lo[0] + 2*boxPad, hi[1] - lo[1] + 2*boxPad, hi[2] - lo[2] + 2*boxPad},
	)
}
