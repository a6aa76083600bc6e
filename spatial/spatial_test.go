package spatial_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surfnav/spatial"
)

func TestDistAndFinite(t *testing.T) {
	a := spatial.Vec3{0, 0, 0}
	b := spatial.Vec3{3, 4, 0}
	assert.InDelta(t, 5.0, spatial.Dist(a, b), 1e-12)
	assert.InDelta(t, 25.0, spatial.DistSq(a, b), 1e-12)
	assert.True(t, spatial.IsFinite(b))
	assert.False(t, spatial.IsFinite(spatial.Vec3{math.NaN(), 0, 0}))
	assert.False(t, spatial.IsFinite(spatial.Vec3{0, math.Inf(1), 0}))

	s := spatial.Seg(a, b)
	assert.InDelta(t, 5.0, s.Len(), 1e-12)
	assert.Equal(t, spatial.Vec3{1.5, 2, 0}, s.At(0.5))
}

func TestBox_IntersectsSegment(t *testing.T) {
	box := spatial.NewBox(spatial.Vec3{1, -1, 1}, spatial.Vec3{-1, 1, -1})
	require.Equal(t, spatial.Vec3{-1, -1, -1}, box.Min)

	cases := []struct {
		name string
		seg  spatial.Segment
		want bool
	}{
		{"through", spatial.Seg(spatial.Vec3{-5, 0, 0}, spatial.Vec3{5, 0, 0}), true},
		{"miss above", spatial.Seg(spatial.Vec3{-5, 2, 0}, spatial.Vec3{5, 2, 0}), false},
		{"stops short", spatial.Seg(spatial.Vec3{-5, 0, 0}, spatial.Vec3{-2, 0, 0}), false},
		{"inside", spatial.Seg(spatial.Vec3{-0.5, 0, 0}, spatial.Vec3{0.5, 0, 0}), true},
		{"touch face", spatial.Seg(spatial.Vec3{-5, 1, 0}, spatial.Vec3{5, 1, 0}), true},
		{"diagonal miss", spatial.Seg(spatial.Vec3{-2, 0, 5}, spatial.Vec3{5, 0, -2}), false},
		{"diagonal hit", spatial.Seg(spatial.Vec3{-5, 0, -5}, spatial.Vec3{5, 0, 5}), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, box.IntersectsSegment(tc.seg))
		})
	}
	assert.True(t, box.Contains(spatial.Vec3{0, 0, 0}))
	assert.False(t, box.Contains(spatial.Vec3{0, 2, 0}))
}

func TestPrism_IntersectsSegment(t *testing.T) {
	// unit wall footprint [0,1]x[0,1] in X/Z, standing from y=0 to y=2
	wall := spatial.NewPrism(2, 0,
		orb.Point{0, 0}, orb.Point{1, 0}, orb.Point{1, 1}, orb.Point{0, 1})
	require.Equal(t, 0.0, wall.MinY)
	require.Equal(t, 2.0, wall.MaxY)

	cases := []struct {
		name string
		seg  spatial.Segment
		want bool
	}{
		{"crosses footprint", spatial.Seg(spatial.Vec3{-1, 1, 0.5}, spatial.Vec3{2, 1, 0.5}), true},
		{"passes over", spatial.Seg(spatial.Vec3{-1, 3, 0.5}, spatial.Vec3{2, 3, 0.5}), false},
		{"beside", spatial.Seg(spatial.Vec3{-1, 1, 2}, spatial.Vec3{2, 1, 2}), false},
		{"ends inside", spatial.Seg(spatial.Vec3{-1, 1, 0.5}, spatial.Vec3{0.5, 1, 0.5}), true},
		{"vertical through", spatial.Seg(spatial.Vec3{0.5, -1, 0.5}, spatial.Vec3{0.5, 5, 0.5}), true},
		{"ramp over", spatial.Seg(spatial.Vec3{-1, 2.5, 0.5}, spatial.Vec3{2, 4, 0.5}), false},
		{"ramp into", spatial.Seg(spatial.Vec3{-1, 3, 0.5}, spatial.Vec3{2, 0, 0.5}), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, wall.IntersectsSegment(tc.seg))
		})
	}

	degenerate := spatial.NewPrism(0, 1, orb.Point{0, 0}, orb.Point{1, 1})
	assert.False(t, degenerate.IntersectsSegment(spatial.Seg(spatial.Vec3{0, 0.5, 0}, spatial.Vec3{1, 0.5, 1})))
}

func TestObstacle_Blocking(t *testing.T) {
	door := spatial.NewObstacle(spatial.NewBox(spatial.Vec3{-1, -1, -1}, spatial.Vec3{1, 1, 1}))
	seg := spatial.Seg(spatial.Vec3{-5, 0, 0}, spatial.Vec3{5, 0, 0})

	require.True(t, door.Blocking)
	assert.True(t, spatial.Blocked([]*spatial.Obstacle{door}, seg))

	door.Blocking = false
	assert.False(t, spatial.Blocked([]*spatial.Obstacle{door}, seg))

	var none *spatial.Obstacle
	assert.False(t, none.Blocks(seg))
	assert.False(t, (&spatial.Obstacle{Blocking: true}).Blocks(seg))
	assert.False(t, spatial.Blocked([]*spatial.Obstacle{nil, door}, seg))
	assert.False(t, spatial.Blocked(nil, seg))
}
