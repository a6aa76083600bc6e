// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/surfnav/astar"
	"github.com/katalvlaran/surfnav/core"
)

// PreferenceDiscount multiplies distances favoured by the travel preference.
const PreferenceDiscount = 0.8

// Sentinel errors for surface graph operations.
var (
	// ErrNilMesh indicates New was called without a mesh.
	ErrNilMesh = errors.New("surface: mesh is nil")

	// ErrBadAreaThreshold indicates a face-area threshold that is not a
	// positive finite number.
	ErrBadAreaThreshold = errors.New("surface: area threshold must be positive and finite")

	// ErrBadFaceDistThreshold indicates a negative or NaN face distance threshold.
	ErrBadFaceDistThreshold = errors.New("surface: face distance threshold must be non-negative")

	// ErrInvalidLocation indicates a location with a NaN or infinite coordinate.
	ErrInvalidLocation = errors.New("surface: location is not finite")

	// ErrBadPreference indicates an unknown TravelPreference value.
	ErrBadPreference = errors.New("surface: unknown travel preference")

	// ErrVertexOutOfRange is core.ErrVertexOutOfRange.
	ErrVertexOutOfRange = core.ErrVertexOutOfRange

	// ErrNoPath is astar.ErrNoPath: no route exists under the current memory
	// and obstacle state, or a location could not be anchored.
	ErrNoPath = astar.ErrNoPath
)

// VertexType classifies a vertex. It is fixed at construction.
type VertexType int

const (
	// Other is a mesh vertex that lies only on shared sides.
	Other VertexType = iota
	// Border is a mesh vertex on a side used by exactly one face.
	Border
	// Center is a synthetic vertex at a face centre.
	Center
)

// String implements fmt.Stringer.
func (t VertexType) String() string {
	switch t {
	case Other:
		return "other"
	case Border:
		return "border"
	case Center:
		return "center"
	default:
		return fmt.Sprintf("VertexType(%d)", int(t))
	}
}

// TravelPreference selects which vertices get the PreferenceDiscount.
type TravelPreference int

const (
	// PreferCenter discounts costs from center vertices. The default.
	PreferCenter TravelPreference = iota
	// PreferBorder discounts costs into border vertices.
	PreferBorder
	// NoPreference applies no discount.
	NoPreference
)

// String implements fmt.Stringer.
func (p TravelPreference) String() string {
	switch p {
	case PreferCenter:
		return "center"
	case PreferBorder:
		return "border"
	case NoPreference:
		return "none"
	default:
		return fmt.Sprintf("TravelPreference(%d)", int(p))
	}
}

func (p TravelPreference) valid() bool {
	return p >= PreferCenter && p <= NoPreference
}

// ParseTravelPreference maps "center", "border" and "none" (case-insensitive)
// to a TravelPreference.
func ParseTravelPreference(s string) (TravelPreference, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center", "centre":
		return PreferCenter, nil
	case "border":
		return PreferBorder, nil
	case "none", "no":
		return NoPreference, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadPreference, s)
	}
}

// Frontier is a seen vertex next to an unseen vertex with a clear line
// between them.
type Frontier struct {
	Seen   int
	Unseen int
}

// Pathfinder computes a path over a Navigable. astar.FindPath fits once its
// options are bound.
type Pathfinder func(g core.Navigable, start, goal int) ([]int, error)

// Options configures a Graph.
//
// Preference    – travel preference (PreferCenter by default).
// PerfectMemory – treat every vertex as seen.
// Pathfinder    – search used by FindPath and Explore; nil means A*.
// PathOptions   – options handed to the default A* pathfinder.
type Options struct {
	Preference    TravelPreference
	PerfectMemory bool
	Pathfinder    Pathfinder
	PathOptions   []astar.Option
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns PreferCenter, memory-based navigation and A*.
func DefaultOptions() Options {
	return Options{
		Preference:    PreferCenter,
		PerfectMemory: false,
	}
}

// WithTravelPreference sets the travel preference. Panics on an unknown value.
func WithTravelPreference(p TravelPreference) Option {
	if !p.valid() {
		panic(ErrBadPreference.Error())
	}

	return func(o *Options) { o.Preference = p }
}

// WithPerfectMemory turns the seen-set filter off (on == true) or on.
func WithPerfectMemory(on bool) Option {
	return func(o *Options) { o.PerfectMemory = on }
}

// WithPathfinder replaces the default A* search. A nil pf is ignored.
func WithPathfinder(pf Pathfinder) Option {
	return func(o *Options) {
		if pf != nil {
			o.Pathfinder = pf
		}
	}
}

// WithPathOptions passes options to the default A* search, for example
// astar.WithContext to bound search time.
func WithPathOptions(opts ...astar.Option) Option {
	return func(o *Options) { o.PathOptions = append(o.PathOptions, opts...) }
}

// aStar binds opts into a Pathfinder.
func aStar(opts []astar.Option) Pathfinder {
	return func(g core.Navigable, start, goal int) ([]int, error) {
		return astar.FindPath(g, start, goal, opts...)
	}
}
