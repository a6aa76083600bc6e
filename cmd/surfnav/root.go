// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/surfnav/astar"
	"github.com/katalvlaran/surfnav/internal/scenario"
	"github.com/katalvlaran/surfnav/spatial"
	"github.com/katalvlaran/surfnav/surface"
)

// errNoAnchor reports a query point that the scenario does not provide.
var errNoAnchor = errors.New("no vertex id given and the scenario has no such point")

// globalFlags are shared by every subcommand.
type globalFlags struct {
	scenario      string
	preference    string
	perfectMemory bool
	maxExpansions int
	timeout       time.Duration
}

// RootCmd builds the surfnav command tree.
func RootCmd() *cobra.Command {
	var gf globalFlags
	c := &cobra.Command{
		Use:           "surfnav",
		Short:         "memory-based navigation over polygon surfaces",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := c.PersistentFlags()
	pf.StringVar(&gf.scenario, "scenario", "", "scenario file (HJSON)")
	pf.StringVar(&gf.preference, "preference", "", "travel preference override: center, border or none")
	pf.BoolVar(&gf.perfectMemory, "perfect-memory", false, "treat every vertex as seen")
	pf.IntVar(&gf.maxExpansions, "max-expansions", 0, "cap on A* expansions per search (0 = none)")
	pf.DurationVar(&gf.timeout, "timeout", 0, "time limit for the whole query (0 = none)")
	_ = c.MarkPersistentFlagRequired("scenario")

	c.AddCommand(InfoCmd(&gf), PathCmd(&gf), ExploreCmd(&gf))

	return c
}

// load builds the scenario with command-line overrides applied.
func (gf *globalFlags) load(cmd *cobra.Command) (*scenario.Scenario, context.CancelFunc, error) {
	ctx, cancel := context.WithCancel(cmd.Context())
	if gf.timeout > 0 {
		cancel()
		ctx, cancel = context.WithTimeout(cmd.Context(), gf.timeout)
	}

	var opts []surface.Option
	if gf.preference != "" {
		p, err := surface.ParseTravelPreference(gf.preference)
		if err != nil {
			cancel()
			return nil, nil, err
		}
		opts = append(opts, surface.WithTravelPreference(p))
	}
	if cmd.Flags().Changed("perfect-memory") {
		opts = append(opts, surface.WithPerfectMemory(gf.perfectMemory))
	}
	pathOpts := []astar.Option{astar.WithContext(ctx)}
	if gf.maxExpansions > 0 {
		pathOpts = append(pathOpts, astar.WithMaxExpansions(gf.maxExpansions))
	}
	opts = append(opts, surface.WithPathOptions(pathOpts...))

	s, err := scenario.Load(gf.scenario, opts...)
	if err != nil {
		cancel()
		return nil, nil, err
	}

	return s, cancel, nil
}

// anchor resolves a query end: an explicit vertex id, or the scenario point
// snapped onto the surface.
func anchor(s *scenario.Scenario, id int, p *spatial.Vec3, name string) (int, error) {
	if id >= 0 {
		return id, nil
	}
	if p == nil {
		return 0, fmt.Errorf("%s: %w", name, errNoAnchor)
	}
	v, ok, err := s.Graph.NearestUnblockedVertex(*p, s.FaceDistThreshold)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if !ok {
		return 0, fmt.Errorf("%s: %v: %w", name, *p, surface.ErrNoPath)
	}

	return v, nil
}

// printPath writes a path as ids, cost and one line per vertex.
func printPath(w io.Writer, g *surface.Graph, path []int) {
	fmt.Fprintf(w, "path: %v\n", path)
	fmt.Fprintf(w, "cost: %.4f\n", astar.PathCost(g, path))
	for _, id := range path {
		p := g.Vertex(id)
		fmt.Fprintf(w, "  %4d %-6s (%.3f, %.3f, %.3f)\n", id, g.VertexType(id), p[0], p[1], p[2])
	}
}
