// SPDX-License-Identifier: MIT

package graph

import (
	"math/rand"

	"github.com/katalvlaran/starmap/dfs"
)

// PruneRandomEdges removes a random number of edges without disconnecting g and
// returns how many were removed.
//
// Implementation:
//   - Stage 1: build one depth-first spanning tree from the lowest-key vertex;
//     every edge outside the tree is a candidate.
//   - Stage 2: draw n = rng.Intn(len(candidates)).
//   - Stage 3: n times, pick a random candidate, swap-remove it from the list
//     and delete it from g.
//
// Only non-tree edges are ever removed, so a connected g stays connected.
// An empty graph or one without candidates is left untouched.
//
// Precondition: g is connected. On a disconnected graph only the component of the
// lowest-key vertex is thinned.
func (g *Graph[V]) PruneRandomEdges(rng *rand.Rand) (int, error) {
	if g.Order() == 0 {
		return 0, nil
	}
	tree, err := dfs.SpanningTree[V](g.store, g.Vertices()[0])
	if err != nil {
		return 0, err
	}
	candidates := tree.Candidates
	if len(candidates) == 0 {
		return 0, nil
	}

	n := rng.Intn(len(candidates))
	for i := 0; i < n; i++ {
		j := rng.Intn(len(candidates))
		e := candidates[j]
		last := len(candidates) - 1
		candidates[j] = candidates[last]
		candidates = candidates[:last]
		if err = g.store.RemoveEdge(e.V1(), e.V2()); err != nil {
			return i, err
		}
	}
	return n, nil
}
