// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/starmap/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrUnreachable indicates a sink that the run never settled: it lies in
	// another component, beyond MaxDistance, or past an early-stop target.
	ErrUnreachable = errors.New("dijkstra: vertex unreachable from source")
)

// Options configures one Dijkstra run.
//
// MaxDistance – vertices farther than this are never settled. Default math.MaxInt.
// Target      – when HasTarget is set, the run stops once Target is settled.
type Options[V core.Node] struct {
	MaxDistance int
	Target      V
	HasTarget   bool
}

// Option represents a functional option for configuring Dijkstra.
type Option[V core.Node] func(*Options[V])

// DefaultOptions returns Options with no distance cap and no target.
func DefaultOptions[V core.Node]() Options[V] {
	return Options[V]{MaxDistance: math.MaxInt}
}

// WithTarget stops the run as soon as target is settled.
func WithTarget[V core.Node](target V) Option[V] {
	return func(o *Options[V]) {
		o.Target = target
		o.HasTarget = true
	}
}

// WithMaxDistance caps the distance of settled vertices at d.
// A negative d makes Dijkstra fail with ErrBadMaxDistance.
func WithMaxDistance[V core.Node](d int) Option[V] {
	return func(o *Options[V]) {
		o.MaxDistance = d
	}
}

// Result holds the settled part of a Dijkstra run.
//
// Dist  – final distance of every settled vertex (the source included, at 0).
// Prev  – predecessor of every settled vertex except the source.
// Via   – last edge on the shortest path to every settled vertex except the source.
// Order – vertices in settle order, the source first.
type Result[V core.Node] struct {
	Source V
	Dist   map[V]int
	Prev   map[V]V
	Via    map[V]core.Edge[V]
	Order  []V
}
