// SPDX-License-Identifier: MIT

package pqueue_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/starmap/pqueue"
)

// BenchmarkHeap_AddUpdatePoll measures a Dijkstra-like workload:
// bulk insert, a round of decrease-keys, then a full drain.
func BenchmarkHeap_AddUpdatePoll(b *testing.B) {
	const n = 4096
	rng := rand.New(rand.NewSource(1))
	prios := make([]float64, n)
	for i := range prios {
		prios[i] = rng.Float64() * 1000
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := pqueue.New[int](pqueue.Min)
		for v, p := range prios {
			_ = h.Add(v, p)
		}
		for v := 0; v < n; v += 3 {
			_ = h.UpdatePriority(v, prios[v]/2)
		}
		for h.Len() > 0 {
			_, _ = h.Poll()
		}
	}
}
