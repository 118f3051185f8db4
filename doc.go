// SPDX-License-Identifier: MIT

// Package starmap generates seeded star maps and answers questions about
// the graphs that link their sites.
//
// A world is a set of sites scattered on an integer lattice, linked by a
// Delaunay triangulation, thinned by random pruning that never disconnects
// the map, and indexed for nearest-site queries.
//
// Layout:
//
//	pqueue/       - indexed min-heap with decrease-key
//	core/         - generic vertex and edge types, list and matrix stores
//	dijkstra/     - single-source shortest paths over a core.Reader
//	dfs/          - traversal, components and cycle detection
//	prim_kruskal/ - minimum spanning trees and k-way partitions
//	graph/        - analytics facade: paths, MST clusters, diameter, pruning
//	delaunay/     - incremental Delaunay triangulation on integer points
//	proximity/    - uniform-grid and R-tree nearest-neighbour indexes
//	config/       - YAML settings with environment overrides
//	world/        - seeded world builder
//	cmd/starmap/  - command-line front end
//
// Quick example:
//
//	w, err := world.Build(ctx, config.Default().World)
//	if err != nil {
//		return err
//	}
//	route, _ := w.Graph().ShortestPath(w.Origin(), w.Target())
//	fmt.Println(route)
package starmap
