// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/starmap/core"
)

// Partition runs Kruskal's algorithm on g until exactly k disjoint sets remain
// or the edges run out.
//
// Error Conditions:
//   - ErrNilGraph          : g is nil.
//   - ErrBadComponentCount : k < 1 or k > |V| (an empty graph only accepts no k).
//
// Steps:
//  1. Sort a copy of g.Edges() by length, stable.
//  2. Start with every vertex in its own set; stop at once if that already is k.
//  3. For each edge, join the sets of its endpoints unless they are equal; stop
//     when k sets remain.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Partition[V core.Node](g core.Reader[V], k int) (*Forest[V], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	vertices := g.Vertices()
	if k < 1 || k > len(vertices) {
		return nil, fmt.Errorf("%w: k=%d, |V|=%d", ErrBadComponentCount, k, len(vertices))
	}

	edges := g.Edges()
	core.SortEdgesByLength(edges)

	sets := newDSU(vertices)
	f := &Forest[V]{}
	for _, e := range edges {
		if sets.sets == k {
			break
		}
		if sets.union(e.V1(), e.V2()) {
			f.Edges = append(f.Edges, e)
			f.Total += e.Length()
		}
	}
	f.Components = sets.sets

	return f, nil
}

// Kruskal returns the minimum spanning forest of g. A connected g yields a
// minimum spanning tree with |V|−1 edges. An empty graph yields an empty forest.
func Kruskal[V core.Node](g core.Reader[V]) (*Forest[V], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Order() == 0 {
		return &Forest[V]{}, nil
	}
	return Partition(g, 1)
}
