// SPDX-License-Identifier: MIT

// Package dijkstra implements single-source shortest paths over any core.Reader.
//
// Dijkstra settles vertices in order of increasing distance from the source.
// Tentative distances live in a pqueue.Heap; an improved distance is applied in
// place with UpdatePriority (decrease-key), so the heap never holds stale
// entries and holds at most one entry per vertex.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
//
// Determinism:
//
//   - Incident edges are relaxed in neighbour-key order and the heap breaks
//     priority ties by call sequence, so equal-length alternatives always resolve
//     to the same predecessor.
//
// Options:
//
//   - WithTarget(v):      stop as soon as v is settled.
//   - WithMaxDistance(d): never settle a vertex farther than d.
//
// Errors (sentinel):
//
//   - ErrNilGraph        if the graph is nil.
//   - ErrVertexNotFound  if the source is not stored in the graph.
//   - ErrBadMaxDistance  if MaxDistance < 0.
//   - ErrUnreachable     from Result.PathTo when the sink was never settled.
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(g, a, dijkstra.WithTarget(d))
//	if err != nil {
//	    return err
//	}
//	path, err := res.PathTo(d)
package dijkstra
