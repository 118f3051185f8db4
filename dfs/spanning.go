// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/starmap/core"
)

// step is one stack entry of SpanningTree: the vertex to enter and the edge
// used to reach it (unset for the root).
type step[V core.Node] struct {
	v     V
	via   core.Edge[V]
	isTop bool
}

// SpanningTree builds one depth-first spanning tree of the component that holds
// root.
//
// Implementation:
//   - Stage 1: push (root, none).
//   - Stage 2: pop (v, e). If v is new, mark it and record e as a tree edge, then
//     push (w, e') for every incident edge e' = v–w.
//   - Stage 3: if v was already visited and e is not a tree edge, record e as a
//     candidate (once).
//
// Removing any subset of Candidates leaves the component connected, since Keep
// alone spans it.
func SpanningTree[V core.Node](g core.Reader[V], root V) (*Tree[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(root) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, root)
	}

	t := &Tree[V]{Root: root}
	visited := make(map[V]bool)
	keep := make(map[core.EdgeKey[V]]bool)
	listed := make(map[core.EdgeKey[V]]bool)

	stack := []step[V]{{v: root, isTop: true}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[s.v] {
			k := s.via.Key()
			if !s.isTop && !keep[k] && !listed[k] {
				listed[k] = true
				t.Candidates = append(t.Candidates, s.via)
			}
			continue
		}

		visited[s.v] = true
		t.Visited = append(t.Visited, s.v)
		if !s.isTop {
			keep[s.via.Key()] = true
			t.Keep = append(t.Keep, s.via)
		}

		edges, err := g.IncidentEdges(s.v)
		if err != nil {
			return nil, fmt.Errorf("dfs: edges of %v: %w", s.v, err)
		}
		for i := len(edges) - 1; i >= 0; i-- {
			stack = append(stack, step[V]{v: edges[i].Other(s.v), via: edges[i]})
		}
	}

	return t, nil
}
