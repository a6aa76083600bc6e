// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/surfnav/surface"
)

// InfoCmd prints a summary of the scenario's graph.
func InfoCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "summarize the scenario graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cancel, err := gf.load(cmd)
			if err != nil {
				return err
			}
			defer cancel()

			g := s.Graph
			counts := make(map[surface.VertexType]int)
			for id := 0; id < g.NumVertices(); id++ {
				counts[g.VertexType(id)]++
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "vertices:   %d (%d border, %d other, %d center)\n",
				g.NumVertices(), counts[surface.Border], counts[surface.Other], counts[surface.Center])
			fmt.Fprintf(w, "edges:      %d\n", g.NumEdges())
			fmt.Fprintf(w, "faces:      %d\n", len(g.Faces()))
			fmt.Fprintf(w, "seen:       %d\n", g.NumberOfSeen())
			fmt.Fprintf(w, "frontiers:  %d\n", len(g.Frontiers()))
			fmt.Fprintf(w, "obstacles:  %d\n", len(g.Obstacles()))
			fmt.Fprintf(w, "preference: %s\n", g.TravelPreference())
			fmt.Fprintf(w, "memory:     %s\n", memoryMode(g.PerfectMemory()))

			return nil
		},
	}
}

func memoryMode(perfect bool) string {
	if perfect {
		return "perfect"
	}

	return "seen-set"
}
