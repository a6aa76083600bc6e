// SPDX-License-Identifier: MIT

// Command surfnav loads a navigation scenario and answers path and
// exploration queries against it.
//
//	surfnav info    --scenario scene.hjson
//	surfnav path    --scenario scene.hjson [--from 3 --to 17]
//	surfnav explore --scenario scene.hjson [--from 3]
//
// Without vertex ids, path and explore anchor the scenario's start and goal
// points on the surface.
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("surfnav: ")
	if err := RootCmd().Execute(); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}
