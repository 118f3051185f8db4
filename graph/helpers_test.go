// SPDX-License-Identifier: MIT

package graph_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/starmap/core"
	"github.com/katalvlaran/starmap/graph"
)

type vx = core.Vertex

var (
	A = core.NewVertex(1, "A")
	B = core.NewVertex(2, "B")
	C = core.NewVertex(3, "C")
	D = core.NewVertex(4, "D")
	E = core.NewVertex(5, "E")
	F = core.NewVertex(6, "F")
)

var backends = []core.Backend{core.BackendList, core.BackendMatrix}

// newGraph returns an empty graph on backend b able to hold 64 vertices.
func newGraph(t testing.TB, b core.Backend) *graph.Graph[vx] {
	t.Helper()
	g, err := graph.New[vx](graph.WithBackend(b), graph.WithCapacity(64))
	require.NoError(t, err)
	return g
}

// edgeSpec is one literal edge of a fixture.
type edgeSpec struct {
	a, b   vx
	length int
}

// fixture builds a graph on backend b from vertices and edges.
func fixture(t testing.TB, b core.Backend, vs []vx, es []edgeSpec) *graph.Graph[vx] {
	t.Helper()
	g := newGraph(t, b)
	for _, v := range vs {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range es {
		require.NoError(t, g.AddEdge(core.MustEdge(e.a, e.b, e.length)))
	}
	return g
}

// chain is A-B(5), B-C(7), A-D(9).
func chain(t testing.TB, b core.Backend) *graph.Graph[vx] {
	return fixture(t, b, []vx{A, B, C, D}, []edgeSpec{{A, B, 5}, {B, C, 7}, {A, D, 9}})
}

// fiveVertex has a cheap detour through D.
func fiveVertex(t testing.TB, b core.Backend) *graph.Graph[vx] {
	return fixture(t, b, []vx{A, B, C, D, E}, []edgeSpec{
		{A, B, 6}, {A, D, 1}, {B, C, 5}, {B, D, 2}, {B, E, 2}, {C, E, 5}, {D, E, 1},
	})
}

// randomConnected builds a connected graph of n vertices: a random spanning path
// plus up to extra random edges with lengths in [1, 40].
func randomConnected(t testing.TB, b core.Backend, rng *rand.Rand, n, extra int) *graph.Graph[vx] {
	t.Helper()
	g := newGraph(t, b)
	vs := make([]vx, n)
	for i := range vs {
		vs[i] = core.NewVertex(i+1, "r")
		require.NoError(t, g.AddVertex(vs[i]))
	}
	perm := rng.Perm(n)
	for i := 1; i < n; i++ {
		require.NoError(t, g.AddEdge(core.MustEdge(vs[perm[i-1]], vs[perm[i]], rng.Intn(40)+1)))
	}
	for i := 0; i < extra; i++ {
		x, y := vs[rng.Intn(n)], vs[rng.Intn(n)]
		if x == y || g.HasEdge(x, y) {
			continue
		}
		require.NoError(t, g.AddEdge(core.MustEdge(x, y, rng.Intn(40)+1)))
	}
	return g
}
