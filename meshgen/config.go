// SPDX-License-Identifier: MIT

package meshgen

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/surfnav/spatial"
)

const (
	defaultCellSize = 1.0
	minGridDim      = 1
	minFanSides     = 3
)

// config holds every knob a Constructor may read. It is passed by value.
type config struct {
	cellSize  float64
	origin    spatial.Vec3
	elevation func(x, z float64) float64
	jitter    float64
	rng       *rand.Rand
}

func newConfig(opts ...Option) config {
	cfg := config{cellSize: defaultCellSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// height returns the Y coordinate of a vertex at (x, z): origin height plus
// elevation plus noise.
func (c config) height(x, z float64) float64 {
	y := c.origin[1]
	if c.elevation != nil {
		y += c.elevation(x, z)
	}
	if c.jitter > 0 && c.rng != nil {
		y += (2*c.rng.Float64() - 1) * c.jitter
	}

	return y
}

// Option customizes a Build call.
type Option func(*config)

// WithCellSize sets the edge length of a grid cell. Panics unless size is
// positive and finite.
func WithCellSize(size float64) Option {
	if !(size > 0) || math.IsInf(size, 1) {
		panic("meshgen: WithCellSize requires a positive finite size")
	}

	return func(c *config) { c.cellSize = size }
}

// WithOrigin moves the generated patch so its first vertex sits at o.
// Panics on a non-finite origin.
func WithOrigin(o spatial.Vec3) Option {
	if !spatial.IsFinite(o) {
		panic("meshgen: WithOrigin requires finite coordinates")
	}

	return func(c *config) { c.origin = o }
}

// WithElevation lifts every vertex by fn(x, z), with x and z measured in
// world units. Panics on nil.
func WithElevation(fn func(x, z float64) float64) Option {
	if fn == nil {
		panic("meshgen: WithElevation(nil)")
	}

	return func(c *config) { c.elevation = fn }
}

// WithJitter adds uniform vertical noise in [-amount, amount]. It has no
// effect without WithSeed. Panics on a negative or non-finite amount.
func WithJitter(amount float64) Option {
	if !(amount >= 0) || math.IsInf(amount, 1) {
		panic("meshgen: WithJitter requires a non-negative finite amount")
	}

	return func(c *config) { c.jitter = amount }
}

// WithSeed seeds the noise source used by WithJitter.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}
