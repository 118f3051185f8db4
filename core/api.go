// SPDX-License-Identifier: MIT

package core

// Reader is the read side of a graph store. The algorithm packages
// (dijkstra, dfs, prim_kruskal) only need a Reader.
type Reader[V Node] interface {
	// HasVertex reports whether v is stored.
	HasVertex(v V) bool

	// HasEdge reports whether v1 and v2 are adjacent.
	HasEdge(v1, v2 V) bool

	// HasEdgeValue reports whether e is stored with the same length.
	HasEdgeValue(e Edge[V]) bool

	// Edge returns the edge connecting v1 and v2, or ErrEdgeNotFound.
	Edge(v1, v2 V) (Edge[V], error)

	// EdgeLength returns the length of the edge v1–v2, or ErrEdgeNotFound.
	EdgeLength(v1, v2 V) (int, error)

	// EdgeLengthSum returns the sum of all edge lengths.
	EdgeLengthSum() int

	// Vertices returns every vertex sorted by key.
	Vertices() []V

	// Edges returns every edge sorted by endpoint keys.
	Edges() []Edge[V]

	// Neighbours maps each neighbour of v to the connecting edge.
	Neighbours(v V) (map[V]Edge[V], error)

	// IncidentEdges returns the edges of v sorted by neighbour key.
	IncidentEdges(v V) ([]Edge[V], error)

	// Order returns the number of vertices.
	Order() int

	// Size returns the number of edges.
	Size() int
}

// Store is the mutable-graph contract shared by AdjacencyList and
// AdjacencyMatrix.
type Store[V Node] interface {
	Reader[V]

	// AddVertex stores v. It fails with ErrVertexExists, ErrDuplicateID,
	// ErrNilVertex, or on a full matrix with ErrCapacityExceeded.
	AddVertex(v V) error

	// AddEdge stores e. Both endpoints must already be stored
	// (ErrVertexNotFound) and must not yet be adjacent (ErrEdgeExists).
	AddEdge(e Edge[V]) error

	// RemoveEdge drops the edge v1–v2, or fails with ErrEdgeNotFound.
	RemoveEdge(v1, v2 V) error

	// RemoveVertex drops v and every edge incident to it.
	RemoveVertex(v V) error

	// Backend reports the storage strategy.
	Backend() Backend
}

// NewStore returns an empty store for the given backend. capacity is only read
// by BackendMatrix.
func NewStore[V Node](backend Backend, capacity int) (Store[V], error) {
	switch backend {
	case BackendMatrix:
		return NewAdjacencyMatrix[V](capacity)
	default:
		return NewAdjacencyList[V](), nil
	}
}

// Connected reports whether every vertex of r is reachable from the first one.
// Graphs with zero or one vertex are connected.
func Connected[V Node](r Reader[V]) bool {
	vs := r.Vertices()
	if len(vs) < 2 {
		return true
	}
	seen := map[V]bool{vs[0]: true}
	stack := []V{vs[0]}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nbrs, _ := r.IncidentEdges(v)
		for _, e := range nbrs {
			w := e.Other(v)
			if !seen[w] {
				seen[w] = true
				stack = append(stack, w)
			}
		}
	}
	return len(seen) == len(vs)
}
