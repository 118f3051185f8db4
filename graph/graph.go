// SPDX-License-Identifier: MIT

package graph

import (
	"github.com/katalvlaran/starmap/core"
)

// Graph is a core.Store plus analytics.
type Graph[V core.Node] struct {
	store core.Store[V]
	opts  Options
}

// New returns an empty graph on the configured backend.
// A matrix backend with Capacity < 1 fails with core.ErrBadCapacity.
func New[V core.Node](opts ...Option) (*Graph[V], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	s, err := core.NewStore[V](cfg.Backend, cfg.Capacity)
	if err != nil {
		return nil, err
	}
	return &Graph[V]{store: s, opts: cfg}, nil
}

// ReadOnly returns a View of g that cannot be converted back to *Graph.
// It reads through to g, so later changes to g stay visible.
func (g *Graph[V]) ReadOnly() View[V] { return readOnly[V]{g} }

type readOnly[V core.Node] struct {
	View[V]
}

// Backend reports the storage strategy.
func (g *Graph[V]) Backend() core.Backend { return g.store.Backend() }

// AddVertex stores v; see core.Store.
func (g *Graph[V]) AddVertex(v V) error { return g.store.AddVertex(v) }

// AddEdge stores e; see core.Store.
func (g *Graph[V]) AddEdge(e core.Edge[V]) error { return g.store.AddEdge(e) }

// RemoveEdge drops the edge v1–v2; see core.Store.
func (g *Graph[V]) RemoveEdge(v1, v2 V) error { return g.store.RemoveEdge(v1, v2) }

// RemoveVertex drops v and its edges; see core.Store.
func (g *Graph[V]) RemoveVertex(v V) error { return g.store.RemoveVertex(v) }

// HasVertex implements core.Reader.
func (g *Graph[V]) HasVertex(v V) bool { return g.store.HasVertex(v) }

// HasEdge implements core.Reader.
func (g *Graph[V]) HasEdge(v1, v2 V) bool { return g.store.HasEdge(v1, v2) }

// HasEdgeValue implements core.Reader.
func (g *Graph[V]) HasEdgeValue(e core.Edge[V]) bool { return g.store.HasEdgeValue(e) }

// Edge implements core.Reader.
func (g *Graph[V]) Edge(v1, v2 V) (core.Edge[V], error) { return g.store.Edge(v1, v2) }

// GetEdge returns the edge connecting two adjacent vertices, or
// core.ErrEdgeNotFound.
func (g *Graph[V]) GetEdge(v1, v2 V) (core.Edge[V], error) { return g.store.Edge(v1, v2) }

// EdgeLength implements core.Reader.
func (g *Graph[V]) EdgeLength(v1, v2 V) (int, error) { return g.store.EdgeLength(v1, v2) }

// EdgeLengthSum implements core.Reader.
func (g *Graph[V]) EdgeLengthSum() int { return g.store.EdgeLengthSum() }

// Vertices implements core.Reader.
func (g *Graph[V]) Vertices() []V { return g.store.Vertices() }

// Edges implements core.Reader.
func (g *Graph[V]) Edges() []core.Edge[V] { return g.store.Edges() }

// Neighbours implements core.Reader.
func (g *Graph[V]) Neighbours(v V) (map[V]core.Edge[V], error) { return g.store.Neighbours(v) }

// IncidentEdges implements core.Reader.
func (g *Graph[V]) IncidentEdges(v V) ([]core.Edge[V], error) { return g.store.IncidentEdges(v) }

// Order implements core.Reader.
func (g *Graph[V]) Order() int { return g.store.Order() }

// Size implements core.Reader.
func (g *Graph[V]) Size() int { return g.store.Size() }

// Connected reports whether every vertex is reachable from every other.
func (g *Graph[V]) Connected() bool { return core.Connected[V](g.store) }

// Clone returns an independent copy of g on the same backend.
func (g *Graph[V]) Clone() (*Graph[V], error) {
	return g.subgraph(g.Vertices(), g.Edges())
}

// subgraph builds a graph on g's backend holding exactly vs and es.
// A matrix backend is sized to len(vs).
func (g *Graph[V]) subgraph(vs []V, es []core.Edge[V]) (*Graph[V], error) {
	capacity := g.opts.Capacity
	if g.opts.Backend == core.BackendMatrix {
		capacity = max(len(vs), 1)
	}
	out, err := New[V](WithBackend(g.opts.Backend), WithCapacity(capacity))
	if err != nil {
		return nil, err
	}
	for _, v := range vs {
		if err = out.AddVertex(v); err != nil {
			return nil, err
		}
	}
	for _, e := range es {
		if err = out.AddEdge(e); err != nil {
			return nil, err
		}
	}
	return out, nil
}
