package astar_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surfnav/astar"
	"github.com/katalvlaran/surfnav/core"
	"github.com/katalvlaran/surfnav/spatial"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestFindPath_NilGraph(t *testing.T) {
	_, err := astar.FindPath(nil, 0, 0)
	require.ErrorIs(t, err, astar.ErrNilGraph)
}

func TestFindPath_OutOfRange(t *testing.T) {
	g := chain(3)
	_, err := astar.FindPath(g, -1, 2)
	require.ErrorIs(t, err, astar.ErrVertexOutOfRange)
	_, err = astar.FindPath(g, 0, 3)
	require.ErrorIs(t, err, astar.ErrVertexOutOfRange)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

func TestWithMaxExpansions_Panics(t *testing.T) {
	assert.Panics(t, func() { astar.WithMaxExpansions(0) })
}

// ------------------------------------------------------------------------
// 2. Basic behaviour
// ------------------------------------------------------------------------

func TestFindPath_StartIsGoal(t *testing.T) {
	path, err := astar.FindPath(chain(3), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, path)
}

func TestFindPath_Chain(t *testing.T) {
	g := chain(5)
	path, err := astar.FindPath(g, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, path)
	assert.InDelta(t, 4.0, astar.PathCost(g, path), 1e-12)

	back, err := astar.FindPath(g, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2, 1, 0}, back)
}

func TestFindPath_PrefersShortcut(t *testing.T) {
	//   1
	//  / \
	// 0───2   direct edge is shorter than the detour over 1
	g := core.NewGraph([]spatial.Vec3{{0, 0, 0}, {1, 0, 3}, {2, 0, 0}})
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(0, 2))

	path, err := astar.FindPath(g, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, path)
}

func TestFindPath_Unreachable(t *testing.T) {
	g := core.NewGraph([]spatial.Vec3{{0, 0, 0}, {1, 0, 0}, {5, 0, 0}})
	require.NoError(t, g.AddEdge(0, 1))

	path, err := astar.FindPath(g, 0, 2)
	require.ErrorIs(t, err, astar.ErrNoPath)
	assert.Nil(t, path)
}

func TestPathCost_NotAPath(t *testing.T) {
	g := chain(3)
	assert.True(t, math.IsNaN(astar.PathCost(g, []int{0, 2})))
	assert.Equal(t, 0.0, astar.PathCost(g, []int{1}))
}

// ------------------------------------------------------------------------
// 3. Data inconsistency: adjacency without a defined distance
// ------------------------------------------------------------------------

// lying claims 0-2 are neighbours but reports NaN for that edge.
type lying struct{ *core.Graph }

func (l lying) Neighbours(id int) []int {
	if id == 0 {
		return []int{1, 2}
	}

	return l.Graph.Neighbours(id)
}

func TestFindPath_NaNDistanceIsSkipped(t *testing.T) {
	g := chain(3)
	require.True(t, math.IsNaN(g.Distance(0, 2)))

	path, err := astar.FindPath(lying{g}, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path)
}

// ------------------------------------------------------------------------
// 3b. Tie-breaking on equal f
// ------------------------------------------------------------------------

// diamond is 0-1-3 and 0-2-3 with table-driven weights and estimates.
// It records the order in which vertices are expanded.
type diamond struct {
	dist     map[[2]int]float64
	h        []float64 // estimate to vertex 3
	expanded []int
}

func newDiamond(d01, d02, d13, d23, h1, h2 float64) *diamond {
	dist := map[[2]int]float64{}
	for e, w := range map[[2]int]float64{{0, 1}: d01, {0, 2}: d02, {1, 3}: d13, {2, 3}: d23} {
		dist[e] = w
		dist[[2]int{e[1], e[0]}] = w
	}

	return &diamond{dist: dist, h: []float64{3, h1, h2, 0}}
}

func (d *diamond) NumVertices() int { return 4 }

func (d *diamond) Neighbours(id int) []int {
	d.expanded = append(d.expanded, id)
	switch id {
	case 0:
		return []int{1, 2}
	case 3:
		return []int{1, 2}
	default:
		return []int{0, 3}
	}
}

func (d *diamond) Heuristic(from, to int) float64 {
	if to != 3 {
		return 0
	}

	return d.h[from]
}

func (d *diamond) Distance(from, to int) float64 {
	if w, ok := d.dist[[2]int{from, to}]; ok {
		return w
	}

	return math.NaN()
}

func TestFindPath_EqualFPrefersSmallerH(t *testing.T) {
	// f(1) = 1+2 = 3, f(2) = 2+1 = 3; 1 is pushed first but 2 has the smaller h.
	g := newDiamond(1, 2, 2, 1, 2, 1)
	path, err := astar.FindPath(g, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, path)
	assert.Equal(t, []int{0, 2}, g.expanded)
	assert.InDelta(t, 3.0, astar.PathCost(g, path), 1e-12)
}

func TestFindPath_EqualFAndHPrefersInsertionOrder(t *testing.T) {
	// f and h tie for 1 and 2; 1 was pushed first.
	g := newDiamond(1, 1, 1, 1, 2, 2)
	path, err := astar.FindPath(g, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, path)
	assert.Equal(t, []int{0, 1}, g.expanded)
}

// ------------------------------------------------------------------------
// 4. Limits
// ------------------------------------------------------------------------

func TestFindPath_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := astar.FindPath(chain(300), 0, 299, astar.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestFindPath_MaxExpansions(t *testing.T) {
	_, err := astar.FindPath(chain(10), 0, 9, astar.WithMaxExpansions(3))
	require.ErrorIs(t, err, astar.ErrSearchLimit)

	path, err := astar.FindPath(chain(10), 0, 9, astar.WithMaxExpansions(50))
	require.NoError(t, err)
	assert.Len(t, path, 10)
}

// ------------------------------------------------------------------------
// 5. Optimality against brute force
// ------------------------------------------------------------------------

func TestFindPath_OptimalAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 60; trial++ {
		g := randomGraph(rng, 7, 0.4)
		for s := 0; s < g.NumVertices(); s++ {
			for goal := 0; goal < g.NumVertices(); goal++ {
				want := bruteForce(g, s, goal)
				path, err := astar.FindPath(g, s, goal)
				if math.IsInf(want, 1) {
					require.ErrorIs(t, err, astar.ErrNoPath, "trial %d %d→%d", trial, s, goal)
					continue
				}
				require.NoError(t, err, "trial %d %d→%d", trial, s, goal)
				require.Equal(t, s, path[0])
				require.Equal(t, goal, path[len(path)-1])
				require.InDelta(t, want, astar.PathCost(g, path), 1e-9, "trial %d %d→%d", trial, s, goal)
			}
		}
	}
}

// ------------------------------------------------------------------------
// helpers
// ------------------------------------------------------------------------

// chain returns vertices 0..n-1 on the X axis, unit spaced, linked in order.
func chain(n int) *core.Graph {
	vs := make([]spatial.Vec3, n)
	for i := range vs {
		vs[i] = spatial.Vec3{float64(i), 0, 0}
	}
	g := core.NewGraph(vs)
	for i := 1; i < n; i++ {
		_ = g.AddEdge(i-1, i)
	}

	return g
}

// randomGraph places n vertices in a 10×10 square and links each pair with
// probability p.
func randomGraph(rng *rand.Rand, n int, p float64) *core.Graph {
	vs := make([]spatial.Vec3, n)
	for i := range vs {
		vs[i] = spatial.Vec3{rng.Float64() * 10, 0, rng.Float64() * 10}
	}
	g := core.NewGraph(vs)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				_ = g.AddEdge(i, j)
			}
		}
	}

	return g
}

// bruteForce returns the cheapest simple-path cost from s to goal by DFS
// over all simple paths, +Inf if none.
func bruteForce(g core.Navigable, s, goal int) float64 {
	best := math.Inf(1)
	onPath := make([]bool, g.NumVertices())
	var dfs func(v int, cost float64)
	dfs = func(v int, cost float64) {
		if v == goal {
			best = math.Min(best, cost)
			return
		}
		onPath[v] = true
		for _, w := range g.Neighbours(v) {
			if onPath[w] {
				continue
			}
			d := g.Distance(v, w)
			if math.IsNaN(d) {
				continue
			}
			dfs(w, cost+d)
		}
		onPath[v] = false
	}
	dfs(s, 0)

	return best
}
