// SPDX-License-Identifier: MIT

package graph

import (
	"errors"

	"github.com/katalvlaran/starmap/core"
	"github.com/katalvlaran/starmap/dijkstra"
	"github.com/katalvlaran/starmap/prim_kruskal"
)

var (
	// ErrUnreachable indicates a shortest-path query between vertices in
	// different components.
	ErrUnreachable = dijkstra.ErrUnreachable

	// ErrBadComponentCount indicates a partition size outside [1, |V|].
	ErrBadComponentCount = prim_kruskal.ErrBadComponentCount

	// ErrEmptyGraph indicates a query that needs at least one vertex.
	ErrEmptyGraph = errors.New("graph: graph is empty")
)

// Options configures the backing store of a Graph.
type Options struct {
	// Backend selects adjacency list or adjacency matrix. Default BackendList.
	Backend core.Backend

	// Capacity is the vertex limit of a matrix backend. Ignored by lists.
	Capacity int
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns a list-backed configuration.
func DefaultOptions() Options {
	return Options{Backend: core.BackendList}
}

// WithBackend selects the storage backend.
func WithBackend(b core.Backend) Option {
	return func(o *Options) { o.Backend = b }
}

// WithCapacity sets the vertex limit used by the matrix backend.
func WithCapacity(n int) Option {
	return func(o *Options) { o.Capacity = n }
}

// View is the read-only face of a Graph.
type View[V core.Node] interface {
	core.Reader[V]

	Backend() core.Backend
	GetEdge(v1, v2 V) (core.Edge[V], error)
	ShortestPath(source, sink V) ([]V, error)
	PathLength(path []V) (int, error)
	NeighboursWithin(v V, limit int) (map[V]core.Edge[V], error)
	MinimumSpanningComponents(k int) ([]*Graph[V], error)
	ConnectedComponents() ([]*Graph[V], error)
	Diameter() (int, error)
	Center() (V, error)
	Eccentricity(v V) (int, error)
	HasCycle(v V) (bool, error)
}
