// SPDX-License-Identifier: MIT

// Package prim_kruskal computes minimum spanning structures over any core.Reader.
//
// Algorithms Provided
//
//   - Partition(g, k): Kruskal's algorithm stopped early. Edges are taken in
//     ascending length (stable on the sorted edge order of g) and joined through a
//     disjoint-set forest unless both endpoints already share a set. The run ends
//     once exactly k sets remain or no edge is left. With k = 1 on a connected
//     graph the result is a minimum spanning tree; with k = |V| no edge is taken.
//     The partition is single-linkage clustering: a cross-set edge is never
//     shorter than the edges that built either set.
//
//   - Kruskal(g): Partition(g, 1); on a disconnected graph the result is the
//     minimum spanning forest.
//
//   - Prim(g, root): grows one tree from root. The fringe is a pqueue.Heap of
//     vertices keyed by their cheapest connecting edge and lowered in place with
//     UpdatePriority. Fails with ErrDisconnected when root cannot reach every vertex.
//
// Complexity:
//
//   - Partition/Kruskal: O(E log E + α(V)·E) time, O(V + E) memory.
//   - Prim:              O(E log V) time, O(V) memory.
//
// Determinism: edge order from g is sorted by endpoint keys and the length sort is
// stable, so ties always resolve the same way.
package prim_kruskal
