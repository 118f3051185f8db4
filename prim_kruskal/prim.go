// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/starmap/core"
	"github.com/katalvlaran/starmap/pqueue"
)

// Prim computes a minimum spanning tree of g by growing outwards from root.
//
// Error Conditions:
//   - ErrNilGraph     : g is nil.
//   - ErrRootNotFound : root is not stored in g.
//   - ErrDisconnected : some vertex cannot be reached from root.
//
// Steps:
//  1. Queue root at priority 0.
//  2. Poll the cheapest fringe vertex, add its connecting edge to the tree.
//  3. For each unvisited neighbour, queue it or lower its priority when the
//     new edge is cheaper (decrease-key).
//  4. After the fringe drains, fewer than |V|−1 edges means disconnected.
//
// Complexity: O(E log V) time, O(V) memory.
func Prim[V core.Node](g core.Reader[V], root V) ([]core.Edge[V], int, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if !g.HasVertex(root) {
		return nil, 0, fmt.Errorf("%w: %v", ErrRootNotFound, root)
	}

	n := g.Order()
	inTree := make(map[V]bool, n)
	best := make(map[V]core.Edge[V], n)
	fringe := pqueue.New[V](pqueue.Min)
	_ = fringe.Add(root, 0)

	mst := make([]core.Edge[V], 0, n-1)
	total := 0
	for fringe.Len() > 0 {
		u, err := fringe.Poll()
		if err != nil {
			return nil, 0, err
		}
		inTree[u] = true
		if e, ok := best[u]; ok {
			mst = append(mst, e)
			total += e.Length()
		}

		edges, err := g.IncidentEdges(u)
		if err != nil {
			return nil, 0, err
		}
		for _, e := range edges {
			w := e.Other(u)
			if inTree[w] {
				continue
			}
			cur, queued := best[w]
			switch {
			case !queued:
				best[w] = e
				if err = fringe.Add(w, float64(e.Length())); err != nil {
					return nil, 0, err
				}
			case e.Length() < cur.Length():
				best[w] = e
				if err = fringe.UpdatePriority(w, float64(e.Length())); err != nil {
					return nil, 0, err
				}
			}
		}
	}

	if len(mst) < n-1 {
		return nil, 0, fmt.Errorf("%w: reached %d of %d vertices", ErrDisconnected, len(mst)+1, n)
	}
	return mst, total, nil
}
