// SPDX-License-Identifier: MIT

package main

import (
	"log"

	"github.com/spf13/cobra"
)

// ExploreCmd plans a walk to the nearest reachable frontier.
func ExploreCmd(gf *globalFlags) *cobra.Command {
	var from int
	c := &cobra.Command{
		Use:   "explore",
		Short: "find a path to the nearest frontier of the seen area",
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
			log.Printf("exploring from %d, %d frontiers", start, len(s.Graph.Frontiers()))

			path, err := s.Graph.Explore(start)
			if err != nil {
				return err
			}
			printPath(cmd.OutOrStdout(), s.Graph, path)

			return nil
		},
	}
	c.Flags().IntVar(&from, "from", -1, "start vertex id (default: scenario start)")

	return c
}
