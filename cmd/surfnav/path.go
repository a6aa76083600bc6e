// SPDX-License-Identifier: MIT

package main

import (
	"log"

	"github.com/spf13/cobra"
)

// PathCmd finds a path between two vertices or the scenario's start and goal.
func PathCmd(gf *globalFlags) *cobra.Command {
	var from, to int
	c := &cobra.Command{
		Use:   "path",
		Short: "find a path over seen vertices",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cancel, err := gf.load(cmd)
			if err != nil {
				return err
			}
			defer cancel()

			start, err := anchor(s, from, s.Start, "start")
			if err != nil {
				return err
			}
			goal, err := anchor(s, to, s.Goal, "goal")
			if err != nil {
				return err
			}
			log.Printf("searching %d → %d over %d seen vertices", start, goal, s.Graph.NumberOfSeen())

			path, err := s.Graph.FindPath(start, goal)
			if err != nil {
				return err
			}
			printPath(cmd.OutOrStdout(), s.Graph, path)

			return nil
		},
	}
	c.Flags().IntVar(&from, "from", -1, "start vertex id (default: scenario start)")
	c.Flags().IntVar(&to, "to", -1, "goal vertex id (default: scenario goal)")

	return c
}
