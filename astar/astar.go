// SPDX-License-Identifier: MIT

package astar

import (
	"container/heap"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/surfnav/core"
)

// cancelCheckInterval is how many expansions pass between context checks.
const cancelCheckInterval = 64

// FindPath returns a cheapest path from start to goal, both inclusive.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and goal must be in [0, g.NumVertices()) (ErrVertexOutOfRange).
//
// start == goal yields []int{start} without consulting the graph.
// An unreachable goal yields ErrNoPath.
func FindPath(g core.Navigable, start, goal int, opts ...Option) ([]int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NumVertices()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start %d not in [0,%d)", ErrVertexOutOfRange, start, n)
	}
	if goal < 0 || goal >= n {
		return nil, fmt.Errorf("%w: goal %d not in [0,%d)", ErrVertexOutOfRange, goal, n)
	}
	if start == goal {
		return []int{start}, nil
	}

	r := newRunner(g, cfg, start, goal)

	return r.run()
}

// PathCost sums g.Distance over consecutive vertices of path. It returns NaN
// if some hop is not an edge, and 0 for paths shorter than two vertices.
func PathCost(g core.Navigable, path []int) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += g.Distance(path[i-1], path[i])
	}

	return total
}

// runner holds the mutable state of one search.
type runner struct {
	g     core.Navigable
	opts  Options
	start int
	goal  int
	cost  []float64 // best known g per vertex, +Inf if unreached
	prev  []int     // predecessor on the best known path, -1 if none
	pq    nodePQ
	seq   uint64 // insertion counter for deterministic ties
}

func newRunner(g core.Navigable, opts Options, start, goal int) *runner {
	n := g.NumVertices()
	r := &runner{
		g:     g,
		opts:  opts,
		start: start,
		goal:  goal,
		cost:  make([]float64, n),
		prev:  make([]int, n),
	}
	for i := range r.cost {
		r.cost[i] = math.Inf(1)
		r.prev[i] = -1
	}

	return r
}

// run is the main A* loop.
func (r *runner) run() ([]int, error) {
	r.cost[r.start] = 0
	r.push(r.start, 0)

	expanded := 0
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// stale entry: a cheaper route to u was pushed after this one
		if item.g > r.cost[u] {
			continue
		}
		if u == r.goal {
			return r.reconstruct(), nil
		}

		expanded++
		if r.opts.MaxExpansions > 0 && expanded > r.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: %d expansions", ErrSearchLimit, r.opts.MaxExpansions)
		}
		if expanded%cancelCheckInterval == 0 {
			if err := r.opts.Ctx.Err(); err != nil {
				return nil, fmt.Errorf("astar: search aborted: %w", err)
			}
		}

		r.relax(u)
	}

	return nil, fmt.Errorf("%w: %d → %d", ErrNoPath, r.start, r.goal)
}

// relax tries to improve every neighbour of u through u.
func (r *runner) relax(u int) {
	for _, v := range r.g.Neighbours(u) {
		w := r.g.Distance(u, v)
		// adjacency and distance disagree, or the edge is impassable
		if math.IsNaN(w) || math.IsInf(w, 1) || w < 0 {
			continue
		}
		ng := r.cost[u] + w
		if ng >= r.cost[v] {
			continue
		}
		r.cost[v] = ng
		r.prev[v] = u
		r.push(v, ng)
	}
}

// push enqueues v with accumulated cost g.
func (r *runner) push(v int, g float64) {
	h := r.g.Heuristic(v, r.goal)
	r.seq++
	heap.Push(&r.pq, &nodeItem{id: v, g: g, f: g + h, h: h, seq: r.seq})
}

// reconstruct walks predecessors back from goal and reverses.
func (r *runner) reconstruct() []int {
	var path []int
	for v := r.goal; v != -1; v = r.prev[v] {
		path = append(path, v)
		if v == r.start {
			break
		}
	}
	slices.Reverse(path)

	return path
}

// nodeItem is one frontier entry.
type nodeItem struct {
	id  int
	g   float64
	f   float64
	h   float64
	seq uint64
}

// nodePQ is a min-heap ordered by f, then h, then insertion order.
// Decrease-key is lazy: improved vertices are pushed again and the old
// entries are discarded when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}

	return a.seq < b.seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
