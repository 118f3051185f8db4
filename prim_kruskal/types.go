// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/starmap/core"
)

var (
	// ErrNilGraph indicates that a nil graph was passed in.
	ErrNilGraph = errors.New("prim_kruskal: graph is nil")

	// ErrBadComponentCount indicates a requested component count outside [1, |V|].
	ErrBadComponentCount = errors.New("prim_kruskal: component count out of range")

	// ErrRootNotFound indicates that Prim's root vertex is not in the graph.
	ErrRootNotFound = errors.New("prim_kruskal: root vertex not found")

	// ErrDisconnected indicates that a spanning tree covering all vertices cannot be formed.
	ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")
)

// Forest is the outcome of a Kruskal run.
//
// Edges      – accepted edges in acceptance order (ascending length).
// Components – number of disjoint sets left, isolated vertices included.
// Total      – sum of accepted edge lengths.
type Forest[V core.Node] struct {
	Edges      []core.Edge[V]
	Components int
	Total      int
}
