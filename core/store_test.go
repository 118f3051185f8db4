// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/starmap/core"
)

func TestStore_AddVertex(t *testing.T) {
	for _, b := range backends {
		t.Run(b.String(), func(t *testing.T) {
			s := newStore(t, b)
			MustAddVertices(t, s, VertexA)

			assert.True(t, s.HasVertex(VertexA))
			assert.ErrorIs(t, s.AddVertex(VertexA), core.ErrVertexExists)
			assert.ErrorIs(t, s.AddVertex(core.NewVertex(VertexA.ID, "A2")), core.ErrDuplicateID)
			assert.ErrorIs(t, s.AddVertex(core.Vertex{}), core.ErrNilVertex)

			// same id, other name: a different vertex that the store does not hold
			assert.False(t, s.HasVertex(core.NewVertex(VertexA.ID, "A2")))
			assert.Equal(t, 1, s.Order())
		})
	}
}

func TestStore_ZeroID(t *testing.T) {
	for _, b := range backends {
		t.Run(b.String(), func(t *testing.T) {
			s := newStore(t, b)
			assert.ErrorIs(t, s.AddVertex(core.NewVertex(0, "")), core.ErrNilVertex)

			root := core.NewVertex(0, "root")
			require.NoError(t, s.AddVertex(root))
			require.NoError(t, s.AddVertex(VertexA))
			require.NoError(t, s.AddEdge(core.MustEdge(root, VertexA, Length1)))
			assert.Equal(t, []core.Vertex{root, VertexA}, s.Vertices())
		})
	}
}

func TestStore_AddEdge(t *testing.T) {
	for _, b := range backends {
		t.Run(b.String(), func(t *testing.T) {
			s := pathFixture(t, b)

			assert.True(t, s.HasEdge(VertexA, VertexB))
			assert.True(t, s.HasEdge(VertexB, VertexA))
			assert.False(t, s.HasEdge(VertexC, VertexD))
			assert.True(t, s.HasEdgeValue(core.MustEdge(VertexB, VertexA, Length5)))
			assert.False(t, s.HasEdgeValue(core.MustEdge(VertexB, VertexA, Length7)))

			dup := core.MustEdge(VertexB, VertexA, Length1)
			assert.ErrorIs(t, s.AddEdge(dup), core.ErrEdgeExists)

			stranger := core.MustEdge(VertexA, VertexE, Length1)
			assert.ErrorIs(t, s.AddEdge(stranger), core.ErrVertexNotFound)

			assert.Equal(t, 3, s.Size())
			assert.Equal(t, Length5+Length7+Length9, s.EdgeLengthSum())
		})
	}
}

func TestStore_EdgeLength(t *testing.T) {
	for _, b := range backends {
		t.Run(b.String(), func(t *testing.T) {
			s := pathFixture(t, b)

			n, err := s.EdgeLength(VertexD, VertexA)
			require.NoError(t, err)
			assert.Equal(t, Length9, n)

			_, err = s.EdgeLength(VertexC, VertexD)
			assert.ErrorIs(t, err, core.ErrEdgeNotFound)

			_, err = s.Edge(VertexA, VertexE)
			assert.ErrorIs(t, err, core.ErrEdgeNotFound)
		})
	}
}

func TestStore_RemoveVertexDropsIncidentEdges(t *testing.T) {
	for _, b := range backends {
		t.Run(b.String(), func(t *testing.T) {
			s := pathFixture(t, b)

			require.NoError(t, s.RemoveVertex(VertexA))

			assert.False(t, s.HasVertex(VertexA))
			assert.False(t, s.HasEdge(VertexA, VertexB))
			assert.False(t, s.HasEdge(VertexD, VertexA))
			assert.Equal(t, 1, s.Size())
			assert.Equal(t, Length7, s.EdgeLengthSum())
			for _, e := range s.Edges() {
				assert.False(t, e.Incident(VertexA), "edge %v survived", e)
			}
			assert.ErrorIs(t, s.RemoveVertex(VertexA), core.ErrVertexNotFound)

			// the id is free again
			assert.NoError(t, s.AddVertex(core.NewVertex(VertexA.ID, "A2")))
		})
	}
}

func TestStore_RemoveEdge(t *testing.T) {
	for _, b := range backends {
		t.Run(b.String(), func(t *testing.T) {
			s := pathFixture(t, b)

			require.NoError(t, s.RemoveEdge(VertexB, VertexA))
			assert.False(t, s.HasEdge(VertexA, VertexB))
			assert.ErrorIs(t, s.RemoveEdge(VertexA, VertexB), core.ErrEdgeNotFound)
			assert.Equal(t, Length7+Length9, s.EdgeLengthSum())
			assert.True(t, s.HasVertex(VertexA), "vertices survive edge removal")
		})
	}
}

func TestStore_EnumerationParity(t *testing.T) {
	list := pathFixture(t, core.BackendList)
	matrix := pathFixture(t, core.BackendMatrix)

	assert.Equal(t, list.Vertices(), matrix.Vertices())
	assert.Equal(t, list.Edges(), matrix.Edges())
	assert.Equal(t, []core.Vertex{VertexA, VertexB, VertexC, VertexD}, list.Vertices())

	for _, v := range list.Vertices() {
		le, err := list.IncidentEdges(v)
		require.NoError(t, err)
		me, err := matrix.IncidentEdges(v)
		require.NoError(t, err)
		assert.Equal(t, le, me, "incident edges of %v", v)

		ln, err := list.Neighbours(v)
		require.NoError(t, err)
		mn, err := matrix.Neighbours(v)
		require.NoError(t, err)
		assert.Equal(t, ln, mn, "neighbours of %v", v)
	}

	nbrs, err := list.Neighbours(VertexA)
	require.NoError(t, err)
	assert.Equal(t, map[core.Vertex]core.Edge[core.Vertex]{
		VertexB: core.MustEdge(VertexA, VertexB, Length5),
		VertexD: core.MustEdge(VertexA, VertexD, Length9),
	}, nbrs)

	_, err = matrix.Neighbours(VertexE)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestStore_ReturnedValuesAreCopies(t *testing.T) {
	for _, b := range backends {
		t.Run(b.String(), func(t *testing.T) {
			s := pathFixture(t, b)

			vs := s.Vertices()
			vs[0].Rename("mutated")
			assert.True(t, s.HasVertex(VertexA))
			assert.Equal(t, "A", s.Vertices()[0].Name)
		})
	}
}

func TestConnected(t *testing.T) {
	s := pathFixture(t, core.BackendList)
	assert.True(t, core.Connected[core.Vertex](s))

	MustAddVertices(t, s, VertexE)
	assert.False(t, core.Connected[core.Vertex](s))

	assert.True(t, core.Connected[core.Vertex](newStore(t, core.BackendList)))
}
