// SPDX-License-Identifier: MIT

package proximity

import (
	"fmt"
	"iter"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// pointTolerance is the half-side of the box each entity occupies in the tree.
const pointTolerance = 1e-9

// Tree is an R-tree backed Index without bounds.
type Tree[T Locatable] struct {
	rt    *rtreego.Rtree
	items []T
}

var _ Index[Locatable] = (*Tree[Locatable])(nil)

// entry adapts an item to rtreego.Spatial.
type entry[T Locatable] struct {
	item T
	box  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry[T]) Bounds() rtreego.Rect { return e.box }

// NewTree returns an empty 2D R-tree with 25–50 entries per node.
func NewTree[T Locatable]() *Tree[T] {
	return &Tree[T]{rt: rtreego.NewTree(2, 25, 50)}
}

// Insert implements Index.
func (t *Tree[T]) Insert(item T) error {
	p := item.Location()
	box, err := rtreego.NewRect(
		rtreego.Point{p.X() - pointTolerance, p.Y() - pointTolerance},
		[]float64{2 * pointTolerance, 2 * pointTolerance},
	)
	if err != nil {
		return fmt.Errorf("%w: %v: %v", ErrBadBounds, p, err)
	}
	t.rt.Insert(&entry[T]{item: item, box: box})
	t.items = append(t.items, item)
	return nil
}

// Nearest implements Index.
func (t *Tree[T]) Nearest(p orb.Point) (T, bool) {
	var zero T
	if t.rt.Size() == 0 {
		return zero, false
	}
	s := t.rt.NearestNeighbor(rtreego.Point{p.X(), p.Y()})
	e, ok := s.(*entry[T])
	if !ok {
		return zero, false
	}
	return e.item, true
}

// Len implements Index.
func (t *Tree[T]) Len() int { return t.rt.Size() }

// All implements Index in insertion order.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, it := range t.items {
			if !yield(it) {
				return
			}
		}
	}
}
