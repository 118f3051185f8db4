// SPDX-License-Identifier: MIT

package prim_kruskal_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/starmap/core"
	"github.com/katalvlaran/starmap/prim_kruskal"
)

// BenchmarkKruskalVsPrim measures both algorithms on the same random graph.
func BenchmarkKruskalVsPrim(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	g := core.NewAdjacencyList[core.Vertex]()
	const n = 500
	vs := make([]core.Vertex, n)
	for i := range vs {
		vs[i] = core.NewVertex(i+1, "b")
		_ = g.AddVertex(vs[i])
	}
	for i := 1; i < n; i++ {
		_ = g.AddEdge(core.MustEdge(vs[i-1], vs[i], rng.Intn(100)+1))
	}
	for i := 0; i < 4*n; i++ {
		x, y := vs[rng.Intn(n)], vs[rng.Intn(n)]
		if x != y && !g.HasEdge(x, y) {
			_ = g.AddEdge(core.MustEdge(x, y, rng.Intn(100)+1))
		}
	}

	b.Run("kruskal", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = prim_kruskal.Kruskal[core.Vertex](g)
		}
	})
	b.Run("prim", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _, _ = prim_kruskal.Prim[core.Vertex](g, vs[0])
		}
	})
}
