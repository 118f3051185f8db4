// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/starmap/core"
)

// Walk visits every vertex reachable from start in depth-first pre-order and
// returns them in visit order.
//
// The start vertex is visited even when FilterVertex rejects it; the filter only
// gates steps onto neighbours.
func Walk[V core.Node](g core.Reader[V], start V, opts ...Option[V]) ([]V, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}
	var cfg Options[V]
	for _, opt := range opts {
		opt(&cfg)
	}

	visited := make(map[V]bool)
	var order []V
	stack := []V{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[v] {
			continue
		}
		visited[v] = true
		order = append(order, v)
		if cfg.OnVisit != nil {
			if err := cfg.OnVisit(v); err != nil {
				return order, err
			}
		}

		edges, err := g.IncidentEdges(v)
		if err != nil {
			return order, fmt.Errorf("dfs: edges of %v: %w", v, err)
		}
		// push in reverse so the lowest key is explored first
		for i := len(edges) - 1; i >= 0; i-- {
			w := edges[i].Other(v)
			if visited[w] {
				continue
			}
			if cfg.FilterVertex != nil && !cfg.FilterVertex(w) {
				continue
			}
			stack = append(stack, w)
		}
	}

	return order, nil
}

// Components partitions the vertices of g into maximal connected groups.
// Groups are ordered by their lowest key; vertices inside a group are in
// depth-first discovery order starting from that lowest key.
func Components[V core.Node](g core.Reader[V]) ([][]V, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[V]bool, g.Order())
	var out [][]V
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		group, err := Walk(g, v)
		if err != nil {
			return nil, err
		}
		for _, w := range group {
			seen[w] = true
		}
		out = append(out, group)
	}

	return out, nil
}
