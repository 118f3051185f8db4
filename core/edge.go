// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"sort"
)

// Edge is an undirected, weighted connection between two distinct vertices.
// The zero value is not a valid edge; build edges with NewEdge.
type Edge[V Node] struct {
	v1, v2 V
	length int
}

// EdgeKey identifies an edge by its endpoints regardless of length.
type EdgeKey[V Node] struct {
	A, B V
}

// NewEdge returns the edge v1–v2 of the given length.
// The endpoint with the lower Key is stored first.
func NewEdge[V Node](v1, v2 V, length int) (Edge[V], error) {
	if isNil(v1) || isNil(v2) {
		return Edge[V]{}, ErrNilVertex
	}
	if v1 == v2 {
		return Edge[V]{}, fmt.Errorf("%w: %v", ErrSameVertex, v1)
	}
	if length < 0 {
		return Edge[V]{}, fmt.Errorf("%w: %d", ErrNegativeLength, length)
	}
	if v2.Key() < v1.Key() {
		v1, v2 = v2, v1
	}
	return Edge[V]{v1: v1, v2: v2, length: length}, nil
}

// MustEdge is NewEdge for literals known to be valid; it panics otherwise.
func MustEdge[V Node](v1, v2 V, length int) Edge[V] {
	e, err := NewEdge(v1, v2, length)
	if err != nil {
		panic(err)
	}
	return e
}

// V1 returns the endpoint with the lower key.
func (e Edge[V]) V1() V { return e.v1 }

// V2 returns the endpoint with the higher key.
func (e Edge[V]) V2() V { return e.v2 }

// Length returns the edge length.
func (e Edge[V]) Length() int { return e.length }

// Key returns the endpoint pair of e.
func (e Edge[V]) Key() EdgeKey[V] {
	return EdgeKey[V]{A: e.v1, B: e.v2}
}

// Equal reports whether e and o connect the same two vertices.
// Lengths are not compared.
func (e Edge[V]) Equal(o Edge[V]) bool {
	return (e.v1 == o.v1 && e.v2 == o.v2) || (e.v1 == o.v2 && e.v2 == o.v1)
}

// Incident reports whether v is an endpoint of e.
func (e Edge[V]) Incident(v V) bool {
	return e.v1 == v || e.v2 == v
}

// Intersects reports whether e and o share an endpoint.
func (e Edge[V]) Intersects(o Edge[V]) bool {
	_, err := e.Intersection(o)
	return err == nil
}

// Intersection returns an endpoint shared by e and o, preferring e.V1().
// Returns ErrNoIntersection if the edges are disjoint.
func (e Edge[V]) Intersection(o Edge[V]) (V, error) {
	if o.Incident(e.v1) {
		return e.v1, nil
	}
	if o.Incident(e.v2) {
		return e.v2, nil
	}
	var zero V
	return zero, ErrNoIntersection
}

// Other returns the endpoint of e that is not v: V2 when v is V1, V1 otherwise.
func (e Edge[V]) Other(v V) V {
	if e.v1 == v {
		return e.v2
	}
	return e.v1
}

// DistinctVertex returns the endpoint of e that o does not share.
// Disjoint edges yield V1. Equal edges fail with ErrSameEdge.
func (e Edge[V]) DistinctVertex(o Edge[V]) (V, error) {
	if e.Equal(o) {
		var zero V
		return zero, ErrSameEdge
	}
	shared, err := e.Intersection(o)
	if err != nil {
		return e.v1, nil
	}
	return e.Other(shared), nil
}

// String implements fmt.Stringer.
func (e Edge[V]) String() string {
	return fmt.Sprintf("%v-%v(%d)", e.v1, e.v2, e.length)
}

// sortVertices orders vs by Key.
func sortVertices[V Node](vs []V) {
	sort.Slice(vs, func(i, j int) bool { return vs[i].Key() < vs[j].Key() })
}

// sortEdges orders es by (V1 key, V2 key).
func sortEdges[V Node](es []Edge[V]) {
	sort.Slice(es, func(i, j int) bool {
		a, b := es[i], es[j]
		if a.v1.Key() != b.v1.Key() {
			return a.v1.Key() < b.v1.Key()
		}
		return a.v2.Key() < b.v2.Key()
	})
}

// SortEdgesByLength orders es by length, keeping the relative order of equal
// lengths.
func SortEdgesByLength[V Node](es []Edge[V]) {
	sort.SliceStable(es, func(i, j int) bool { return es[i].length < es[j].length })
}
