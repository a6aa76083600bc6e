// SPDX-License-Identifier: MIT

package surface

import "fmt"

// WipeOutMemory marks every vertex unseen.
func (g *Graph) WipeOutMemory() {
	clear(g.seen)
}

// MarkAsSeen records ids as seen. A seen vertex that is not a Center also
// reveals every Center it is structurally adjacent to: centers are synthetic
// and never reported by perception, so seeing a face's corner stands in for
// seeing its middle. The rule is one level deep and does not run from a
// center to its corners.
//
// All ids are validated before anything is marked; on error the memory is
// unchanged.
func (g *Graph) MarkAsSeen(ids ...int) error {
	for _, id := range ids {
		if err := g.base.CheckVertex(id); err != nil {
			return fmt.Errorf("MarkAsSeen: %w", err)
		}
	}
	for _, id := range ids {
		g.seen[id] = true
		if g.types[id] == Center {
			continue
		}
		for _, z := range g.base.Neighbours(id) {
			if g.types[z] == Center {
				g.seen[z] = true
			}
		}
	}

	return nil
}

// IsSeen reports whether id counts as seen. Under perfect memory every valid
// vertex does.
func (g *Graph) IsSeen(id int) bool {
	if id < 0 || id >= len(g.seen) {
		return false
	}

	return g.perfectMemory || g.seen[id]
}

// NumberOfSeen returns how many vertices are marked seen in the seen-set,
// regardless of perfect memory.
func (g *Graph) NumberOfSeen() int {
	n := 0
	for _, s := range g.seen {
		if s {
			n++
		}
	}

	return n
}

// SeenVertices returns the ids marked seen, ascending.
func (g *Graph) SeenVertices() []int {
	var out []int
	for id, s := range g.seen {
		if s {
			out = append(out, id)
		}
	}

	return out
}
