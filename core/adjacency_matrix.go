// SPDX-License-Identifier: MIT

package core

import "fmt"

// cell is one matrix entry: whether the pair is connected and at what length.
type cell struct {
	ok     bool
	length int
}

// AdjacencyMatrix is a fixed-capacity Store.
//
// Description:
//
//	Each stored vertex owns one row/column index in a capacity×capacity grid;
//	cells[i][j] describes the edge between the vertices at i and j and is kept
//	symmetric. Indices are dense: removing a vertex moves the vertex holding the
//	last index into the freed one.
//
// Time complexity:
//   - AddEdge/RemoveEdge/HasEdge/EdgeLength: O(1)
//   - Neighbours/IncidentEdges/RemoveVertex: O(V)
//   - Edges: O(V²)
//
// Memory:
//   - O(capacity²), allocated up front.
type AdjacencyMatrix[V Node] struct {
	capacity int
	index    map[V]int
	ids      map[int]V
	verts    []V
	cells    [][]cell
	size     int
	sum      int
}

// NewAdjacencyMatrix returns an empty matrix store able to hold capacity
// vertices. Returns ErrBadCapacity if capacity < 1.
func NewAdjacencyMatrix[V Node](capacity int) (*AdjacencyMatrix[V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadCapacity, capacity)
	}
	cells := make([][]cell, capacity)
	for i := range cells {
		cells[i] = make([]cell, capacity)
	}

	return &AdjacencyMatrix[V]{
		capacity: capacity,
		index:    make(map[V]int, capacity),
		ids:      make(map[int]V, capacity),
		verts:    make([]V, 0, capacity),
		cells:    cells,
	}, nil
}

// Backend implements Store.
func (m *AdjacencyMatrix[V]) Backend() Backend { return BackendMatrix }

// Capacity returns the maximum number of vertices.
func (m *AdjacencyMatrix[V]) Capacity() int { return m.capacity }

// AddVertex implements Store.
func (m *AdjacencyMatrix[V]) AddVertex(v V) error {
	if isNil(v) {
		return ErrNilVertex
	}
	if _, ok := m.index[v]; ok {
		return fmt.Errorf("%w: %v", ErrVertexExists, v)
	}
	if other, ok := m.ids[v.Key()]; ok {
		return fmt.Errorf("%w: %d held by %v", ErrDuplicateID, v.Key(), other)
	}
	if len(m.verts) == m.capacity {
		return fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, m.capacity)
	}
	m.index[v] = len(m.verts)
	m.ids[v.Key()] = v
	m.verts = append(m.verts, v)

	return nil
}

// HasVertex implements Reader.
func (m *AdjacencyMatrix[V]) HasVertex(v V) bool {
	_, ok := m.index[v]
	return ok
}

// AddEdge implements Store.
func (m *AdjacencyMatrix[V]) AddEdge(e Edge[V]) error {
	i, j, err := m.checkVertices(e.v1, e.v2)
	if err != nil {
		return fmt.Errorf("%w: edge %v", err, e)
	}
	if m.cells[i][j].ok {
		return fmt.Errorf("%w: %v", ErrEdgeExists, e)
	}
	c := cell{ok: true, length: e.length}
	m.cells[i][j] = c
	m.cells[j][i] = c
	m.size++
	m.sum += e.length

	return nil
}

// HasEdge implements Reader.
func (m *AdjacencyMatrix[V]) HasEdge(v1, v2 V) bool {
	i, j, err := m.checkVertices(v1, v2)
	return err == nil && m.cells[i][j].ok
}

// HasEdgeValue implements Reader.
func (m *AdjacencyMatrix[V]) HasEdgeValue(e Edge[V]) bool {
	i, j, err := m.checkVertices(e.v1, e.v2)
	return err == nil && m.cells[i][j].ok && m.cells[i][j].length == e.length
}

// Edge implements Reader.
func (m *AdjacencyMatrix[V]) Edge(v1, v2 V) (Edge[V], error) {
	i, j, err := m.checkVertices(v1, v2)
	if err != nil || !m.cells[i][j].ok {
		return Edge[V]{}, fmt.Errorf("%w: %v-%v", ErrEdgeNotFound, v1, v2)
	}
	return m.edgeAt(i, j), nil
}

// EdgeLength implements Reader.
func (m *AdjacencyMatrix[V]) EdgeLength(v1, v2 V) (int, error) {
	e, err := m.Edge(v1, v2)
	if err != nil {
		return 0, err
	}
	return e.length, nil
}

// EdgeLengthSum implements Reader.
func (m *AdjacencyMatrix[V]) EdgeLengthSum() int { return m.sum }

// RemoveEdge implements Store.
func (m *AdjacencyMatrix[V]) RemoveEdge(v1, v2 V) error {
	i, j, err := m.checkVertices(v1, v2)
	if err != nil || !m.cells[i][j].ok {
		return fmt.Errorf("%w: %v-%v", ErrEdgeNotFound, v1, v2)
	}
	m.clear(i, j)

	return nil
}

// RemoveVertex implements Store.
//
// Implementation:
//   - Stage 1: clear every edge in row i.
//   - Stage 2: move the vertex at the last index into i (row and column).
//   - Stage 3: shrink the vertex list and drop v from both lookup maps.
func (m *AdjacencyMatrix[V]) RemoveVertex(v V) error {
	i, ok := m.index[v]
	if !ok {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	n := len(m.verts)
	for j := 0; j < n; j++ {
		if m.cells[i][j].ok {
			m.clear(i, j)
		}
	}

	last := n - 1
	if i != last {
		moved := m.verts[last]
		for k := 0; k < n; k++ {
			m.cells[i][k] = m.cells[last][k]
		}
		for k := 0; k < n; k++ {
			m.cells[k][i] = m.cells[k][last]
		}
		m.cells[i][i] = cell{}
		for k := 0; k < n; k++ {
			m.cells[last][k] = cell{}
			m.cells[k][last] = cell{}
		}
		m.verts[i] = moved
		m.index[moved] = i
	}
	m.verts = m.verts[:last]
	delete(m.index, v)
	delete(m.ids, v.Key())

	return nil
}

// Vertices implements Reader.
func (m *AdjacencyMatrix[V]) Vertices() []V {
	out := make([]V, len(m.verts))
	copy(out, m.verts)
	sortVertices(out)
	return out
}

// Edges implements Reader.
func (m *AdjacencyMatrix[V]) Edges() []Edge[V] {
	out := make([]Edge[V], 0, m.size)
	n := len(m.verts)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.cells[i][j].ok {
				out = append(out, m.edgeAt(i, j))
			}
		}
	}
	sortEdges(out)
	return out
}

// Neighbours implements Reader.
func (m *AdjacencyMatrix[V]) Neighbours(v V) (map[V]Edge[V], error) {
	es, err := m.IncidentEdges(v)
	if err != nil {
		return nil, err
	}
	out := make(map[V]Edge[V], len(es))
	for _, e := range es {
		out[e.Other(v)] = e
	}
	return out, nil
}

// IncidentEdges implements Reader.
func (m *AdjacencyMatrix[V]) IncidentEdges(v V) ([]Edge[V], error) {
	i, ok := m.index[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	var ws []V
	for j := range m.verts {
		if m.cells[i][j].ok {
			ws = append(ws, m.verts[j])
		}
	}
	sortVertices(ws)
	out := make([]Edge[V], len(ws))
	for k, w := range ws {
		out[k] = m.edgeAt(i, m.index[w])
	}
	return out, nil
}

// Order implements Reader.
func (m *AdjacencyMatrix[V]) Order() int { return len(m.verts) }

// Size implements Reader.
func (m *AdjacencyMatrix[V]) Size() int { return m.size }

// edgeAt rebuilds the edge stored at (i, j) in canonical endpoint order.
func (m *AdjacencyMatrix[V]) edgeAt(i, j int) Edge[V] {
	a, b := m.verts[i], m.verts[j]
	if b.Key() < a.Key() {
		a, b = b, a
	}
	return Edge[V]{v1: a, v2: b, length: m.cells[i][j].length}
}

// clear drops the edge at (i, j) and its mirror.
func (m *AdjacencyMatrix[V]) clear(i, j int) {
	m.sum -= m.cells[i][j].length
	m.size--
	m.cells[i][j] = cell{}
	m.cells[j][i] = cell{}
}

// checkVertices returns the matrix indices of v1 and v2, or ErrVertexNotFound.
func (m *AdjacencyMatrix[V]) checkVertices(v1, v2 V) (i, j int, err error) {
	var ok bool
	i, ok = m.index[v1]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %v", ErrVertexNotFound, v1)
	}
	j, ok = m.index[v2]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %v", ErrVertexNotFound, v2)
	}

	return i, j, nil
}
