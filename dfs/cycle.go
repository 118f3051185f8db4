// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/starmap/core"
)

// OnCycle reports whether v lies on some cycle of g.
//
// A vertex lies on a cycle exactly when two of its neighbours are connected
// without passing through it. OnCycle walks from each neighbour in key order with
// v filtered out; reaching a neighbour already claimed by an earlier walk closes
// a cycle through v. Leaving v through an edge and coming straight back over it
// is never counted, because v itself is never stepped on.
//
// Complexity: O(V + E).
func OnCycle[V core.Node](g core.Reader[V], v V) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	edges, err := g.IncidentEdges(v)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStartVertexNotFound, v)
	}
	if len(edges) < 2 {
		return false, nil
	}

	claimed := make(map[V]bool)
	notV := func(w V) bool { return w != v && !claimed[w] }
	for _, e := range edges {
		w := e.Other(v)
		if claimed[w] {
			return true, nil
		}
		reached, err := Walk(g, w, WithFilterVertex(notV))
		if err != nil {
			return false, err
		}
		for _, x := range reached {
			claimed[x] = true
		}
	}

	return false, nil
}
