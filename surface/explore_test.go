package surface_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surfnav/astar"
	"github.com/katalvlaran/surfnav/core"
	"github.com/katalvlaran/surfnav/meshgen"
	"github.com/katalvlaran/surfnav/spatial"
	"github.com/katalvlaran/surfnav/surface"
)

func TestFrontiers(t *testing.T) {
	g, err := surface.New(square(), 0.6)
	require.NoError(t, err)
	assert.Empty(t, g.Frontiers(), "nothing seen")

	require.NoError(t, g.MarkAsSeen(1))
	assert.Equal(t, []surface.Frontier{{Seen: 1, Unseen: 0}}, g.Frontiers())

	require.NoError(t, g.MarkAsSeen(0))
	assert.Equal(t, []surface.Frontier{{Seen: 0, Unseen: 2}, {Seen: 1, Unseen: 2}}, g.Frontiers())

	g.SetPerfectMemory(true)
	assert.Empty(t, g.Frontiers())
}

func TestFrontiers_SkipBlockedNeighbours(t *testing.T) {
	g, err := surface.New(square(), 0.6)
	require.NoError(t, err)
	require.NoError(t, g.MarkAsSeen(0, 1))
	g.AddObstacle(box(spatial.Vec3{0.9, -1, 0.4}, spatial.Vec3{1.1, 1, 0.6}))

	assert.Equal(t, []surface.Frontier{{Seen: 0, Unseen: 2}}, g.Frontiers())
}

func TestExplore(t *testing.T) {
	g, err := surface.New(square(), 0.6)
	require.NoError(t, err)
	require.NoError(t, g.MarkAsSeen(1))

	path, err := g.Explore(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, path)

	// the closest frontier is the one at the start itself
	require.NoError(t, g.MarkAsSeen(0))
	path, err = g.Explore(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, path)

	// with 1→2 walled off, the way to 2 is through 0
	wall := box(spatial.Vec3{0.9, -1, 0.4}, spatial.Vec3{1.1, 1, 0.6})
	g.AddObstacle(wall)
	path, err = g.Explore(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2}, path)

	require.NoError(t, g.MarkAsSeen(2, 3))
	_, err = g.Explore(1)
	assert.ErrorIs(t, err, surface.ErrNoPath, "everything seen")

	_, err = g.Explore(7)
	assert.ErrorIs(t, err, surface.ErrVertexOutOfRange)
}

func TestExplore_PathShape(t *testing.T) {
	m, err := meshgen.Build(nil, meshgen.Grid(3, 3))
	require.NoError(t, err)
	g, err := surface.New(m, 0.2)
	require.NoError(t, err)
	require.NoError(t, g.MarkAsSeen(0, 1, 4, 5))

	path, err := g.Explore(0)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(path), 2)
	assert.Equal(t, 0, path[0])

	last := path[len(path)-1]
	prev := path[len(path)-2]
	assert.False(t, g.IsSeen(last), "ends on an unseen vertex")
	assert.True(t, g.IsSeen(prev))
	assert.Contains(t, g.Frontiers(), surface.Frontier{Seen: prev, Unseen: last})
	for i := 1; i < len(path); i++ {
		assert.True(t, g.HasEdge(path[i-1], path[i]))
	}
}

func TestExplore_UnreachableFrontier(t *testing.T) {
	// a 1×1 grid (0..3) and a separate triangle fan (hub 4, rim 5..7)
	m, err := meshgen.Build(nil, meshgen.Grid(1, 1), meshgen.Fan(3, 1))
	require.NoError(t, err)
	calls := 0
	g, err := surface.New(m, 10, surface.WithPathfinder(func(nav core.Navigable, start, goal int) ([]int, error) {
		calls++
		return astar.FindPath(nav, start, goal)
	}))
	require.NoError(t, err)
	require.NoError(t, g.MarkAsSeen(0, 1, 2, 3, 4))

	assert.Equal(t, []surface.Frontier{{Seen: 4, Unseen: 5}}, g.Frontiers())
	_, err = g.Explore(0)
	assert.ErrorIs(t, err, surface.ErrNoPath)
	assert.Zero(t, calls, "no search towards a frontier in another component")

	path, err := g.Explore(4)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, path)
}

func TestExplore_SearchLimitCountsAsUnreachable(t *testing.T) {
	walls := []*spatial.Obstacle{
		box(spatial.Vec3{0.9, -1, 0.4}, spatial.Vec3{1.1, 1, 0.6}),     // 1→2
		box(spatial.Vec3{0.45, -1, 0.45}, spatial.Vec3{0.55, 1, 0.55}), // 0→2
	}
	build := func(opts ...surface.Option) *surface.Graph {
		g, err := surface.New(square(), 0.6, opts...)
		require.NoError(t, err)
		require.NoError(t, g.MarkAsSeen(0, 1, 3))
		for _, w := range walls {
			g.AddObstacle(w)
		}
		return g
	}

	g := build()
	require.Equal(t, []surface.Frontier{{Seen: 3, Unseen: 2}}, g.Frontiers())
	path, err := g.Explore(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 3, 2}, path)

	g = build(surface.WithPathOptions(astar.WithMaxExpansions(1)))
	_, err = g.Explore(1)
	assert.ErrorIs(t, err, surface.ErrNoPath)
}

func TestExplore_PropagatesPathfinderFailures(t *testing.T) {
	boom := errors.New("boom")
	g, err := surface.New(square(), 0.6, surface.WithPathfinder(func(core.Navigable, int, int) ([]int, error) {
		return nil, boom
	}))
	require.NoError(t, err)
	require.NoError(t, g.MarkAsSeen(0))

	_, err = g.Explore(0)
	assert.ErrorIs(t, err, boom)
}

func TestExploreFrom(t *testing.T) {
	g, err := surface.New(square(), 0.6)
	require.NoError(t, err)
	require.NoError(t, g.MarkAsSeen(1))

	path, err := g.ExploreFrom(spatial.Vec3{1.05, 0, -0.05}, 0.2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, path)

	_, err = g.ExploreFrom(spatial.Vec3{9, 0, 9}, 0.2)
	assert.ErrorIs(t, err, surface.ErrNoPath)
	_, err = g.ExploreFrom(spatial.Vec3{1, 0, 0}, -1)
	assert.ErrorIs(t, err, surface.ErrBadFaceDistThreshold)
}
