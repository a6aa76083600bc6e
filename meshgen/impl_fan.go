// SPDX-License-Identifier: MIT

package meshgen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/surfnav/spatial"
)

const methodFan = "Fan"

// Fan returns a Constructor for a regular polygon of the given number of
// sides and circumradius, centred on the origin and split into triangles
// around a hub vertex. The hub is added first, then the rim counter-clockwise
// starting on +X; face k is {hub, rim k, rim k+1}.
func Fan(sides int, radius float64) Constructor {
	return func(b *builder, cfg config) error {
		if sides < minFanSides {
			return fmt.Errorf("%s: sides=%d (must be ≥ %d): %w", methodFan, sides, minFanSides, ErrTooFewCells)
		}
		if !(radius > 0) || math.IsInf(radius, 1) {
			return fmt.Errorf("%s: radius=%v: %w", methodFan, radius, ErrBadRadius)
		}

		ox, oz := cfg.origin[0], cfg.origin[2]
		hub := b.addVertex(spatial.Vec3{ox, cfg.height(ox, oz), oz})
		rim := make([]int, sides)
		for k := range rim {
			theta := 2 * math.Pi * float64(k) / float64(sides)
			x := ox + radius*math.Cos(theta)
			z := oz + radius*math.Sin(theta)
			rim[k] = b.addVertex(spatial.Vec3{x, cfg.height(x, z), z})
		}
		for k := range rim {
			b.addFace(hub, rim[k], rim[(k+1)%sides])
		}

		return nil
	}
}
