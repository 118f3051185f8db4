// SPDX-License-Identifier: MIT

// Package pqueue provides an indexed binary heap: a priority queue over distinct
// values where the priority of any stored value can be changed in O(log n).
//
// What & Why
//
//   - A textbook container/heap queue only supports extracting the root. Algorithms
//     such as Dijkstra or Prim want to lower ("decrease-key") the priority of a
//     value that is already queued. Heap keeps a value→slot side index in lock-step
//     with every swap, so UpdatePriority finds the slot in O(1) and re-sifts it.
//
//   - The ordering is chosen once, at construction: Min polls the smallest
//     priority first, Max the largest.
//
// Determinism:
//
//   - When both children of a slot carry the same priority, bubbling down moves the
//     parent towards the right child. Poll order over equal priorities therefore
//     depends only on the sequence of calls, never on map iteration.
//
// Complexity:
//
//   - Add, Poll, UpdatePriority: O(log n).
//   - Peek, Contains, Priority, Len: O(1).
//   - Memory: O(n) for the slot array plus O(n) for the index.
//
// Concurrency:
//
//   - Heap is not safe for concurrent use. Callers that share one heap across
//     goroutines must serialize access themselves.
package pqueue
