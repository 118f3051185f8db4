// SPDX-License-Identifier: MIT

package dfs

import (
	"errors"

	"github.com/katalvlaran/starmap/core"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to a traversal.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of Walk.
type Option[V core.Node] func(*Options[V])

// Options holds the hooks of one Walk.
type Options[V core.Node] struct {
	// OnVisit, if non-nil, is invoked when a vertex is first reached (pre-order).
	// Returning an error aborts the walk with that error.
	OnVisit func(v V) error

	// FilterVertex, if non-nil, is consulted before stepping onto a neighbour.
	// Return false to treat the neighbour as absent.
	FilterVertex func(v V) bool
}

// WithOnVisit sets the pre-order hook.
func WithOnVisit[V core.Node](fn func(v V) error) Option[V] {
	return func(o *Options[V]) { o.OnVisit = fn }
}

// WithFilterVertex sets the neighbour filter.
func WithFilterVertex[V core.Node](fn func(v V) bool) Option[V] {
	return func(o *Options[V]) { o.FilterVertex = fn }
}

// Tree is one depth-first spanning tree of the component holding Root.
//
// Keep       – tree edges, in the order their far endpoint was discovered.
// Candidates – every other edge of the component, each listed once.
// Visited    – vertices in discovery order, Root first.
type Tree[V core.Node] struct {
	Root       V
	Keep       []core.Edge[V]
	Candidates []core.Edge[V]
	Visited    []V
}
