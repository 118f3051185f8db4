// SPDX-License-Identifier: MIT

// Package core defines the vertex and edge model of starmap and the mutable
// storage contract every graph backend satisfies.
//
// What & Why
//
//   - Vertex carries an integer id and a display name. Equality is the Go struct
//     equality over (ID, Name): two vertices that share an id but differ in name
//     are distinct map keys. Stores still refuse a second vertex with an id they
//     already hold (ErrDuplicateID), so inside one store ids stay unique.
//
//   - Edge[V] is an undirected, weighted connection between two distinct vertices
//     with a non-negative integer length. Construction canonicalizes the endpoint
//     order, so NewEdge(a, b, n) and NewEdge(b, a, n) build identical values.
//
//   - Store[V] is the mutable-graph contract. Two interchangeable backends
//     implement it:
//
//   - AdjacencyList: map vertex → (map neighbour → edge). Sparse graphs; cost
//     proportional to vertex degree.
//
//   - AdjacencyMatrix: fixed capacity, vertex → index assignment, dense cell
//     grid. O(1) edge existence, O(n) neighbour enumeration. Adding a vertex
//     beyond the capacity fails with ErrCapacityExceeded.
//
// Copy semantics:
//
//   - Every vertex or edge returned by a store is a value. Mutating it (for
//     example Vertex.Rename) never reaches the store.
//
// Determinism:
//
//   - Vertices, Edges and IncidentEdges return results sorted by vertex key,
//     identically on both backends.
//
// Concurrency:
//
//   - Stores carry no locks. One owner mutates a store; concurrent readers are
//     fine only once mutation has stopped.
//
// Errors:
//
//	ErrNilVertex        - an endpoint or vertex is the zero value.
//	ErrSameVertex       - edge endpoints are equal.
//	ErrNegativeLength   - edge length below zero.
//	ErrVertexExists     - vertex already stored.
//	ErrDuplicateID      - another vertex with the same id is stored.
//	ErrVertexNotFound   - requested vertex does not exist.
//	ErrEdgeExists       - the vertex pair is already connected.
//	ErrEdgeNotFound     - requested edge does not exist.
//	ErrNoIntersection   - two edges share no endpoint.
//	ErrSameEdge         - two edges are equal where distinct ones are required.
//	ErrBadCapacity      - matrix capacity below one.
//	ErrCapacityExceeded - matrix is full.
package core
