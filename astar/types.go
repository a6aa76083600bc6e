// SPDX-License-Identifier: MIT

package astar

import (
	"context"
	"errors"

	"github.com/katalvlaran/surfnav/core"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGraph indicates that a nil graph was passed to FindPath.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrVertexOutOfRange is core.ErrVertexOutOfRange, re-exported so callers
	// of this package need not import core.
	ErrVertexOutOfRange = core.ErrVertexOutOfRange

	// ErrNoPath indicates that goal cannot be reached from start through the
	// neighbours the graph exposes.
	ErrNoPath = errors.New("astar: no path")

	// ErrSearchLimit indicates that the expansion cap was hit before the goal
	// was reached.
	ErrSearchLimit = errors.New("astar: expansion limit reached")

	// ErrBadMaxExpansions indicates WithMaxExpansions received a value < 1.
	ErrBadMaxExpansions = errors.New("astar: MaxExpansions must be positive")
)

// Options configures a single FindPath call.
//
// Ctx           – cancellation; checked every cancelCheckInterval expansions.
// MaxExpansions – cap on expanded vertices; 0 means unlimited.
type Options struct {
	Ctx           context.Context
	MaxExpansions int
}

// Option is a functional option for FindPath.
type Option func(*Options)

// DefaultOptions returns the options FindPath starts from:
// Ctx = context.Background(), MaxExpansions = 0 (unlimited).
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
	}
}

// WithContext makes the search abort when ctx is done. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions caps the number of vertices the search may expand.
// Panics if n < 1.
func WithMaxExpansions(n int) Option {
	if n < 1 {
		panic(ErrBadMaxExpansions.Error())
	}

	return func(o *Options) {
		o.MaxExpansions = n
	}
}
