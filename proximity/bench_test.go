// SPDX-License-Identifier: MIT

package proximity_test

import (
	"math/rand"
	"testing"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/starmap/proximity"
)

func BenchmarkNearest(b *testing.B) {
	bounds := orb.Bound{Max: orb.Point{2000, 2000}}
	g, _ := proximity.NewGrid[beacon](bounds)
	tr := proximity.NewTree[beacon]()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 5000; i++ {
		s := beacon{i, orb.Point{rng.Float64() * 2000, rng.Float64() * 2000}}
		_ = g.Insert(s)
		_ = tr.Insert(s)
	}
	queries := make([]orb.Point, 1024)
	for i := range queries {
		queries[i] = orb.Point{rng.Float64() * 2000, rng.Float64() * 2000}
	}

	b.Run("grid", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = g.Nearest(queries[i%len(queries)])
		}
	})
	b.Run("tree", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = tr.Nearest(queries[i%len(queries)])
		}
	})
}
