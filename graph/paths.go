// SPDX-License-Identifier: MIT

package graph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/starmap/core"
	"github.com/katalvlaran/starmap/dijkstra"
)

// ShortestPath returns a minimum-length vertex sequence from source to sink,
// both included. ShortestPath(v, v) is [v].
//
// Implementation:
//   - Stage 1: validate both endpoints (core.ErrVertexNotFound).
//   - Stage 2: Dijkstra from source, stopping once sink is settled.
//   - Stage 3: walk predecessors back from sink.
//
// Determinism: among equal-length paths the one found first in neighbour-key
// order wins.
//
// Precondition: source and sink share a component. Otherwise ErrUnreachable.
func (g *Graph[V]) ShortestPath(source, sink V) ([]V, error) {
	for _, v := range []V{source, sink} {
		if !g.HasVertex(v) {
			return nil, fmt.Errorf("%w: %v", core.ErrVertexNotFound, v)
		}
	}
	res, err := dijkstra.Dijkstra[V](g.store, source, dijkstra.WithTarget(sink))
	if err != nil {
		return nil, err
	}
	return res.PathTo(sink)
}

// PathLength sums the edge lengths along path. A single vertex (or an empty
// path) has length 0. Consecutive vertices that are not adjacent fail with
// core.ErrEdgeNotFound.
func (g *Graph[V]) PathLength(path []V) (int, error) {
	total := 0
	for i := 1; i < len(path); i++ {
		n, err := g.store.EdgeLength(path[i-1], path[i])
		if err != nil {
			return 0, fmt.Errorf("graph: step %d of path: %w", i, err)
		}
		total += n
	}
	return total, nil
}

// NeighboursWithin maps every vertex w ≠ v whose shortest-path distance from v
// is at most limit to the last edge on that shortest path.
//
// One Dijkstra run capped at limit yields exactly what a separate shortest-path
// query per candidate would: the run is deterministic, so each candidate's
// predecessor edge is the one its own query would end on. A negative limit
// yields an empty map.
func (g *Graph[V]) NeighboursWithin(v V, limit int) (map[V]core.Edge[V], error) {
	if !g.HasVertex(v) {
		return nil, fmt.Errorf("%w: %v", core.ErrVertexNotFound, v)
	}
	out := make(map[V]core.Edge[V])
	if limit < 0 {
		return out, nil
	}
	res, err := dijkstra.Dijkstra[V](g.store, v, dijkstra.WithMaxDistance[V](limit))
	if err != nil {
		return nil, err
	}
	for w, e := range res.Via {
		out[w] = e
	}
	return out, nil
}

// Eccentricity returns the largest shortest-path distance from v to any vertex
// of its component.
func (g *Graph[V]) Eccentricity(v V) (int, error) {
	res, err := dijkstra.Dijkstra[V](g.store, v)
	if err != nil {
		if errors.Is(err, dijkstra.ErrVertexNotFound) {
			return 0, fmt.Errorf("%w: %v", core.ErrVertexNotFound, v)
		}
		return 0, err
	}
	return res.Eccentricity(), nil
}
