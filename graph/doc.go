// SPDX-License-Identifier: MIT

// Package graph is the analytics layer of starmap: a Graph[V] wraps one
// core.Store (adjacency list or adjacency matrix, chosen at construction) and adds
// shortest paths, spanning partitions, diameter/center, cycle membership,
// connected components and connectivity-preserving random pruning.
//
// Read-only access:
//
//   - View[V] is the subset of Graph[V] without mutators. Consumers that must not
//     change a finished topology (for example the world package) receive a View.
//
// Copy semantics:
//
//   - Vertices and edges are values; every result is an independent copy.
//     Component queries return freshly built graphs on the parent's backend.
//
// Preconditions (documented, surfaced as errors rather than undefined behavior):
//
//   - ShortestPath between disconnected vertices fails with ErrUnreachable.
//   - Diameter and Center on an empty graph fail with ErrEmptyGraph.
//   - PruneRandomEdges on a disconnected graph only thins the component of the
//     first vertex; other components keep all their edges.
//
// Concurrency:
//
//   - Graph is not safe for concurrent mutation. Once built, concurrent read-only
//     queries are fine because queries allocate their own working state.
package graph
