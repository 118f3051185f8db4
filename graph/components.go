// SPDX-License-Identifier: MIT

package graph

import (
	"github.com/katalvlaran/starmap/core"
	"github.com/katalvlaran/starmap/dfs"
	"github.com/katalvlaran/starmap/prim_kruskal"
)

// ConnectedComponents returns every maximal connected subgraph of g, each built
// from its own vertex and edge copies on g's backend. Components are ordered by
// their lowest vertex key.
func (g *Graph[V]) ConnectedComponents() ([]*Graph[V], error) {
	return g.split(g.store)
}

// MinimumSpanningComponents partitions g into exactly k components with
// Kruskal's algorithm: edges in ascending length join components until k
// remain. k = 1 on a connected graph yields the minimum spanning tree; k = |V|
// yields |V| edgeless singletons. When g already has more than k components,
// the minimum spanning forest is returned.
//
// Locality: for k in [2, |V|−1], any edge crossing two components is at least
// as long as every edge that built either of them.
//
// k < 1 or k > |V| fails with ErrBadComponentCount.
func (g *Graph[V]) MinimumSpanningComponents(k int) ([]*Graph[V], error) {
	f, err := prim_kruskal.Partition[V](g.store, k)
	if err != nil {
		return nil, err
	}
	forest, err := g.subgraph(g.Vertices(), f.Edges)
	if err != nil {
		return nil, err
	}
	return forest.split(forest.store)
}

// split turns the components of r into subgraphs.
func (g *Graph[V]) split(r core.Reader[V]) ([]*Graph[V], error) {
	groups, err := dfs.Components(r)
	if err != nil {
		return nil, err
	}
	out := make([]*Graph[V], 0, len(groups))
	for _, vs := range groups {
		in := make(map[V]bool, len(vs))
		for _, v := range vs {
			in[v] = true
		}
		var es []core.Edge[V]
		for _, v := range vs {
			inc, err := r.IncidentEdges(v)
			if err != nil {
				return nil, err
			}
			for _, e := range inc {
				// take each edge once, from its first endpoint
				if e.V1() == v && in[e.V2()] {
					es = append(es, e)
				}
			}
		}
		sub, err := g.subgraph(vs, es)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, nil
}
