// SPDX-License-Identifier: MIT

package pqueue

import "fmt"

// Heap is an array-backed binary heap over distinct values of T.
//
// Invariants:
//   - shape: slots[0] is the root; the children of i are 2i+1 and 2i+2.
//   - order: no slot sits above a parent it should precede (see Order).
//   - index: index[slots[i].value] == i for every i.
type Heap[T comparable] struct {
	order Order
	slots []slot[T]
	index map[T]int
}

// New returns an empty heap polling in the given order.
func New[T comparable](order Order) *Heap[T] {
	return &Heap[T]{
		order: order,
		index: make(map[T]int),
	}
}

// Order reports the ordering chosen at construction.
func (h *Heap[T]) Order() Order { return h.order }

// Len returns the number of queued values.
func (h *Heap[T]) Len() int { return len(h.slots) }

// Contains reports whether v is queued.
func (h *Heap[T]) Contains(v T) bool {
	_, ok := h.index[v]
	return ok
}

// Priority returns the current priority of v.
func (h *Heap[T]) Priority(v T) (float64, bool) {
	i, ok := h.index[v]
	if !ok {
		return 0, false
	}
	return h.slots[i].priority, true
}

// Add queues v with the given priority.
// Returns ErrDuplicate if v is already queued; the heap is left untouched.
func (h *Heap[T]) Add(v T, priority float64) error {
	if _, ok := h.index[v]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicate, v)
	}
	h.slots = append(h.slots, slot[T]{value: v, priority: priority})
	last := len(h.slots) - 1
	h.index[v] = last
	h.bubbleUp(last)

	return nil
}

// Peek returns the value that Poll would remove, without removing it.
func (h *Heap[T]) Peek() (T, error) {
	if len(h.slots) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return h.slots[0].value, nil
}

// Poll removes and returns the root value.
//
// Implementation:
//   - Stage 1: move the last slot into the root.
//   - Stage 2: shrink the array and drop the removed value from the index.
//   - Stage 3: bubble the new root down.
func (h *Heap[T]) Poll() (T, error) {
	if len(h.slots) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	top := h.slots[0].value
	last := len(h.slots) - 1
	h.swap(0, last)
	h.slots = h.slots[:last]
	delete(h.index, top)
	if last > 0 {
		h.bubbleDown(0)
	}

	return top, nil
}

// UpdatePriority changes the priority of a queued value and restores heap order
// by sifting it up or down as required.
// Returns ErrNotFound if v is not queued.
func (h *Heap[T]) UpdatePriority(v T, priority float64) error {
	i, ok := h.index[v]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, v)
	}
	old := h.slots[i].priority
	h.slots[i].priority = priority
	if h.before(priority, old) {
		h.bubbleUp(i)
	} else {
		h.bubbleDown(i)
	}

	return nil
}

// Values returns a copy of the queued values in array order.
// Only Values()[0] has a defined position (the root).
func (h *Heap[T]) Values() []T {
	out := make([]T, len(h.slots))
	for i, s := range h.slots {
		out[i] = s.value
	}
	return out
}

// before reports whether priority a must sit strictly above priority b.
func (h *Heap[T]) before(a, b float64) bool {
	if h.order == Max {
		return a > b
	}
	return a < b
}

func (h *Heap[T]) bubbleUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.before(h.slots[i].priority, h.slots[parent].priority) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *Heap[T]) bubbleDown(i int) {
	n := len(h.slots)
	for {
		child := h.upperChild(i, n)
		if child < 0 {
			return
		}
		// equal priorities stay where they are
		if !h.before(h.slots[child].priority, h.slots[i].priority) {
			return
		}
		h.swap(i, child)
		i = child
	}
}

// upperChild returns the child of i that belongs higher in the heap, or -1 for a
// leaf. A tie goes to the right child.
func (h *Heap[T]) upperChild(i, n int) int {
	left := 2*i + 1
	if left >= n {
		return -1
	}
	right := left + 1
	if right >= n {
		return left
	}
	if h.before(h.slots[left].priority, h.slots[right].priority) {
		return left
	}
	return right
}

func (h *Heap[T]) swap(i, j int) {
	if i == j {
		return
	}
	h.slots[i], h.slots[j] = h.slots[j], h.slots[i]
	h.index[h.slots[i].value] = i
	h.index[h.slots[j].value] = j
}
