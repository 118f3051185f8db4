// SPDX-License-Identifier: MIT

package delaunay_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/starmap/delaunay"
)

func BenchmarkRandom(b *testing.B) {
	for _, n := range []int{100, 1000} {
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = delaunay.Random(n, rand.New(rand.NewSource(int64(i))), 2000, 2000)
			}
		})
	}
}
