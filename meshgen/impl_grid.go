// SPDX-License-Identifier: MIT

package meshgen

import (
	"fmt"

	"github.com/katalvlaran/surfnav/spatial"
)

const (
	methodGrid     = "Grid"
	methodQuadGrid = "QuadGrid"
)

// Grid returns a Constructor for a rows×cols grid of cells, each split into
// two triangles. Corner (r, c) sits at origin + (c, ·, r)·cellSize; the
// (rows+1)×(cols+1) corners are added row-major. Cell (r, c) yields, in
// order, the triangles {a, b, d} and {a, d, e} where a=(r,c), b=(r,c+1),
// d=(r+1,c+1), e=(r+1,c).
func Grid(rows, cols int) Constructor {
	return func(b *builder, cfg config) error {
		ids, err := lattice(b, cfg, methodGrid, rows, cols)
		if err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				a, bb := ids[r][c], ids[r][c+1]
				d, e := ids[r+1][c+1], ids[r+1][c]
				b.addFace(a, bb, d)
				b.addFace(a, d, e)
			}
		}

		return nil
	}
}

// QuadGrid returns a Constructor for a rows×cols grid of quadrilateral
// cells, corners laid out as in Grid.
func QuadGrid(rows, cols int) Constructor {
	return func(b *builder, cfg config) error {
		ids, err := lattice(b, cfg, methodQuadGrid, rows, cols)
		if err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				b.addFace(ids[r][c], ids[r][c+1], ids[r+1][c+1], ids[r+1][c])
			}
		}

		return nil
	}
}

// lattice adds the (rows+1)×(cols+1) grid corners and returns their ids.
func lattice(b *builder, cfg config, method string, rows, cols int) ([][]int, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			method, rows, cols, minGridDim, ErrTooFewCells)
	}
	ids := make([][]int, rows+1)
	for r := 0; r <= rows; r++ {
		ids[r] = make([]int, cols+1)
		for c := 0; c <= cols; c++ {
			x := cfg.origin[0] + float64(c)*cfg.cellSize
			z := cfg.origin[2] + float64(r)*cfg.cellSize
			ids[r][c] = b.addVertex(spatial.Vec3{x, cfg.height(x, z), z})
		}
	}

	return ids, nil
}
