// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilVertex indicates that a vertex argument is the zero value.
	ErrNilVertex = errors.New("core: vertex is nil")

	// ErrSameVertex indicates an edge whose two endpoints are equal.
	ErrSameVertex = errors.New("core: edge endpoints are equal")

	// ErrNegativeLength indicates an edge built with a length below zero.
	ErrNegativeLength = errors.New("core: negative edge length")

	// ErrVertexExists indicates that the vertex is already stored.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrDuplicateID indicates that a different vertex with the same id is stored.
	ErrDuplicateID = errors.New("core: vertex id already in use")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeExists indicates that the two endpoints are already connected.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNoIntersection indicates two edges without a common endpoint.
	ErrNoIntersection = errors.New("core: edges share no vertex")

	// ErrSameEdge indicates two equal edges where distinct ones were required.
	ErrSameEdge = errors.New("core: edges are equal")

	// ErrBadCapacity indicates an adjacency matrix built with capacity < 1.
	ErrBadCapacity = errors.New("core: matrix capacity must be positive")

	// ErrCapacityExceeded indicates an adjacency matrix with no free index left.
	ErrCapacityExceeded = errors.New("core: matrix capacity exceeded")
)

// Node is the constraint every vertex type satisfies.
//
// Key returns the integer id of the vertex. Stores order their output by Key
// and refuse two vertices with the same Key. The zero value of a Node type is
// treated as "no vertex".
type Node interface {
	comparable
	Key() int
}

// Vertex is the plain vertex type: an integer id and a display name.
//
// Vertex{} (id 0, empty name) is the nil vertex and every store refuses it
// with ErrNilVertex. Id 0 is usable with a non-empty name.
type Vertex struct {
	ID   int
	Name string
}

// NewVertex returns a vertex with the given id and name.
// NewVertex(0, "") is the nil vertex; see Vertex.
func NewVertex(id int, name string) Vertex {
	return Vertex{ID: id, Name: name}
}

// Key implements Node.
func (v Vertex) Key() int { return v.ID }

// Rename changes the display name of this copy of the vertex.
func (v *Vertex) Rename(name string) { v.Name = name }

// String implements fmt.Stringer.
func (v Vertex) String() string {
	return fmt.Sprintf("%s#%d", v.Name, v.ID)
}

// Backend selects the storage strategy of a Store.
type Backend int

const (
	// BackendList stores adjacency as nested maps.
	BackendList Backend = iota

	// BackendMatrix stores adjacency in a fixed-capacity cell grid.
	BackendMatrix
)

// String implements fmt.Stringer.
func (b Backend) String() string {
	switch b {
	case BackendList:
		return "list"
	case BackendMatrix:
		return "matrix"
	default:
		return fmt.Sprintf("backend(%d)", int(b))
	}
}

// ParseBackend maps "list" or "matrix" to a Backend.
func ParseBackend(s string) (Backend, error) {
	switch s {
	case "list", "":
		return BackendList, nil
	case "matrix":
		return BackendMatrix, nil
	default:
		return 0, fmt.Errorf("core: unknown backend %q", s)
	}
}

// isNil reports whether v is the zero value of its type.
func isNil[V Node](v V) bool {
	var zero V
	return v == zero
}
