// SPDX-License-Identifier: MIT

package pqueue

import "errors"

// Sentinel errors returned by Heap operations.
var (
	// ErrDuplicate is returned by Add when the value is already queued.
	ErrDuplicate = errors.New("pqueue: value already present")

	// ErrEmpty is returned by Peek and Poll on an empty heap.
	ErrEmpty = errors.New("pqueue: heap is empty")

	// ErrNotFound is returned by UpdatePriority when the value is not queued.
	ErrNotFound = errors.New("pqueue: value not present")
)

// Order selects which end of the priority range is polled first.
type Order int

const (
	// Min polls the value with the smallest priority first.
	Min Order = iota

	// Max polls the value with the largest priority first.
	Max
)

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case Min:
		return "min"
	case Max:
		return "max"
	default:
		return "unknown"
	}
}

// slot is one array cell of the heap.
type slot[T comparable] struct {
	value    T
	priority float64
}
