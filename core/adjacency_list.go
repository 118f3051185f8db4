// SPDX-License-Identifier: MIT

package core

import "fmt"

// AdjacencyList is a Store backed by nested maps: vertex → neighbour → edge.
type AdjacencyList[V Node] struct {
	adj  map[V]map[V]Edge[V]
	ids  map[int]V
	size int
	sum  int
}

// NewAdjacencyList returns an empty adjacency-list store.
func NewAdjacencyList[V Node]() *AdjacencyList[V] {
	return &AdjacencyList[V]{
		adj: make(map[V]map[V]Edge[V]),
		ids: make(map[int]V),
	}
}

// Backend implements Store.
func (g *AdjacencyList[V]) Backend() Backend { return BackendList }

// AddVertex implements Store.
func (g *AdjacencyList[V]) AddVertex(v V) error {
	if isNil(v) {
		return ErrNilVertex
	}
	if _, ok := g.adj[v]; ok {
		return fmt.Errorf("%w: %v", ErrVertexExists, v)
	}
	if other, ok := g.ids[v.Key()]; ok {
		return fmt.Errorf("%w: %d held by %v", ErrDuplicateID, v.Key(), other)
	}
	g.adj[v] = make(map[V]Edge[V])
	g.ids[v.Key()] = v

	return nil
}

// HasVertex implements Reader.
func (g *AdjacencyList[V]) HasVertex(v V) bool {
	_, ok := g.adj[v]
	return ok
}

// AddEdge implements Store.
func (g *AdjacencyList[V]) AddEdge(e Edge[V]) error {
	n1, ok1 := g.adj[e.v1]
	n2, ok2 := g.adj[e.v2]
	if !ok1 || !ok2 {
		return fmt.Errorf("%w: edge %v", ErrVertexNotFound, e)
	}
	if _, ok := n1[e.v2]; ok {
		return fmt.Errorf("%w: %v", ErrEdgeExists, e)
	}
	n1[e.v2] = e
	n2[e.v1] = e
	g.size++
	g.sum += e.length

	return nil
}

// HasEdge implements Reader.
func (g *AdjacencyList[V]) HasEdge(v1, v2 V) bool {
	_, ok := g.adj[v1][v2]
	return ok
}

// HasEdgeValue implements Reader.
func (g *AdjacencyList[V]) HasEdgeValue(e Edge[V]) bool {
	got, ok := g.adj[e.v1][e.v2]
	return ok && got.length == e.length
}

// Edge implements Reader.
func (g *AdjacencyList[V]) Edge(v1, v2 V) (Edge[V], error) {
	e, ok := g.adj[v1][v2]
	if !ok {
		return Edge[V]{}, fmt.Errorf("%w: %v-%v", ErrEdgeNotFound, v1, v2)
	}
	return e, nil
}

// EdgeLength implements Reader.
func (g *AdjacencyList[V]) EdgeLength(v1, v2 V) (int, error) {
	e, err := g.Edge(v1, v2)
	if err != nil {
		return 0, err
	}
	return e.length, nil
}

// EdgeLengthSum implements Reader.
func (g *AdjacencyList[V]) EdgeLengthSum() int { return g.sum }

// RemoveEdge implements Store.
func (g *AdjacencyList[V]) RemoveEdge(v1, v2 V) error {
	e, err := g.Edge(v1, v2)
	if err != nil {
		return err
	}
	delete(g.adj[v1], v2)
	delete(g.adj[v2], v1)
	g.size--
	g.sum -= e.length

	return nil
}

// RemoveVertex implements Store.
func (g *AdjacencyList[V]) RemoveVertex(v V) error {
	nbrs, ok := g.adj[v]
	if !ok {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	for w, e := range nbrs {
		delete(g.adj[w], v)
		g.size--
		g.sum -= e.length
	}
	delete(g.adj, v)
	delete(g.ids, v.Key())

	return nil
}

// Vertices implements Reader.
func (g *AdjacencyList[V]) Vertices() []V {
	out := make([]V, 0, len(g.adj))
	for v := range g.adj {
		out = append(out, v)
	}
	sortVertices(out)
	return out
}

// Edges implements Reader.
func (g *AdjacencyList[V]) Edges() []Edge[V] {
	out := make([]Edge[V], 0, g.size)
	for v, nbrs := range g.adj {
		for _, e := range nbrs {
			// each edge is listed under both endpoints; keep the V1 copy
			if e.v1 == v {
				out = append(out, e)
			}
		}
	}
	sortEdges(out)
	return out
}

// Neighbours implements Reader.
func (g *AdjacencyList[V]) Neighbours(v V) (map[V]Edge[V], error) {
	nbrs, ok := g.adj[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	out := make(map[V]Edge[V], len(nbrs))
	for w, e := range nbrs {
		out[w] = e
	}
	return out, nil
}

// IncidentEdges implements Reader.
func (g *AdjacencyList[V]) IncidentEdges(v V) ([]Edge[V], error) {
	nbrs, ok := g.adj[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	ws := make([]V, 0, len(nbrs))
	for w := range nbrs {
		ws = append(ws, w)
	}
	sortVertices(ws)
	out := make([]Edge[V], len(ws))
	for i, w := range ws {
		out[i] = nbrs[w]
	}
	return out, nil
}

// Order implements Reader.
func (g *AdjacencyList[V]) Order() int { return len(g.adj) }

// Size implements Reader.
func (g *AdjacencyList[V]) Size() int { return g.size }
