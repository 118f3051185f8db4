// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for starmap/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the store tests.
//   - Run every store scenario against both backends.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/starmap/core"
)

// Common vertices used across core tests.
var (
	VertexA = core.NewVertex(1, "A")
	VertexB = core.NewVertex(2, "B")
	VertexC = core.NewVertex(3, "C")
	VertexD = core.NewVertex(4, "D")
	VertexE = core.NewVertex(5, "E")
)

// Common lengths used across core tests (avoid magic numbers in test bodies).
const (
	Length0 = 0
	Length1 = 1
	Length5 = 5
	Length7 = 7
	Length9 = 9
)

// matrixCapacity is large enough for every fixture below.
const matrixCapacity = 8

// backends lists the stores every contract test runs against.
var backends = []core.Backend{core.BackendList, core.BackendMatrix}

// newStore returns an empty store of the given backend or fails the test.
func newStore(t *testing.T, b core.Backend) core.Store[core.Vertex] {
	t.Helper()
	s, err := core.NewStore[core.Vertex](b, matrixCapacity)
	require.NoError(t, err)
	return s
}

// MustAddVertices adds each vertex or fails the test.
func MustAddVertices(t *testing.T, s core.Store[core.Vertex], vs ...core.Vertex) {
	t.Helper()
	for _, v := range vs {
		require.NoError(t, s.AddVertex(v), "AddVertex(%v)", v)
	}
}

// MustAddEdge builds and adds an edge or fails the test.
func MustAddEdge(t *testing.T, s core.Store[core.Vertex], a, b core.Vertex, length int) core.Edge[core.Vertex] {
	t.Helper()
	e, err := core.NewEdge(a, b, length)
	require.NoError(t, err)
	require.NoError(t, s.AddEdge(e), "AddEdge(%v)", e)
	return e
}

// pathFixture builds A-B(5), B-C(7), A-D(9).
func pathFixture(t *testing.T, b core.Backend) core.Store[core.Vertex] {
	t.Helper()
	s := newStore(t, b)
	MustAddVertices(t, s, VertexA, VertexB, VertexC, VertexD)
	MustAddEdge(t, s, VertexA, VertexB, Length5)
	MustAddEdge(t, s, VertexB, VertexC, Length7)
	MustAddEdge(t, s, VertexA, VertexD, Length9)
	return s
}
