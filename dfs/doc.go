// SPDX-License-Identifier: MIT

// Package dfs provides depth-first primitives over any core.Reader:
//
//   - Walk:          iterative pre-order traversal with visit hooks and vertex filtering.
//   - Components:    maximal connected vertex groups.
//   - OnCycle:       whether one vertex lies on some cycle.
//   - SpanningTree:  one depth-first spanning tree split into tree ("keep") edges and
//     non-tree ("candidate") edges.
//
// All traversals are iterative (explicit stack), so deep chains cannot overflow the
// goroutine stack. Neighbours are explored in ascending key order, making every
// result deterministic.
//
// Complexity: O(V + E) time and O(V) memory for each primitive.
package dfs
