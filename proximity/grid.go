// SPDX-License-Identifier: MIT

package proximity

import (
	"fmt"
	"iter"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Grid is a uniform bucket index over a fixed bounding box.
type Grid[T Locatable] struct {
	bounds     orb.Bound
	cell       float64
	cols, rows int
	cells      [][]T // row-major: index = y*cols + x
	n          int
}

var _ Index[Locatable] = (*Grid[Locatable])(nil)

// NewGrid returns an empty grid covering bounds.
//
// Error Conditions:
//   - ErrBadBounds   : Min exceeds Max on some axis, or a corner is not finite.
//   - ErrBadCellSize : cell size ≤ 0, NaN or infinite, or more than MaxCells
//     buckets needed to cover bounds.
//
// Complexity: O(cols×rows) memory for the bucket table.
func NewGrid[T Locatable](bounds orb.Bound, opts ...GridOption) (*Grid[T], error) {
	cfg := DefaultGridOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	for _, v := range []float64{bounds.Min.X(), bounds.Min.Y(), bounds.Max.X(), bounds.Max.Y()} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %v", ErrBadBounds, bounds)
		}
	}
	if bounds.Min.X() > bounds.Max.X() || bounds.Min.Y() > bounds.Max.Y() {
		return nil, fmt.Errorf("%w: %v", ErrBadBounds, bounds)
	}
	if !(cfg.CellSize > 0) || math.IsInf(cfg.CellSize, 0) {
		return nil, fmt.Errorf("%w: %v", ErrBadCellSize, cfg.CellSize)
	}

	cols, rows, ok := GridSize(bounds, cfg.CellSize)
	if !ok {
		return nil, fmt.Errorf("%w: %v over %v needs more than %d cells", ErrBadCellSize, cfg.CellSize, bounds, MaxCells)
	}
	return &Grid[T]{
		bounds: bounds,
		cell:   cfg.CellSize,
		cols:   cols,
		rows:   rows,
		cells:  make([][]T, cols*rows),
	}, nil
}

// GridSize returns the column and row counts of a grid with the given cell
// side over bounds. ok is false when cols×rows exceeds MaxCells.
func GridSize(bounds orb.Bound, cell float64) (cols, rows int, ok bool) {
	fc := math.Floor((bounds.Max.X()-bounds.Min.X())/cell) + 1
	fr := math.Floor((bounds.Max.Y()-bounds.Min.Y())/cell) + 1
	if fc*fr > MaxCells {
		return 0, 0, false
	}
	return int(fc), int(fr), true
}

// Bounds returns the area covered by g.
func (g *Grid[T]) Bounds() orb.Bound { return g.bounds }

// CellSize returns the side of one cell.
func (g *Grid[T]) CellSize() float64 { return g.cell }

// Len implements Index.
func (g *Grid[T]) Len() int { return g.n }

// Insert implements Index. A position outside the bounds fails with
// ErrOutOfBounds.
func (g *Grid[T]) Insert(item T) error {
	p := item.Location()
	if !g.bounds.Contains(p) {
		return fmt.Errorf("%w: %v not in %v", ErrOutOfBounds, p, g.bounds)
	}
	x, y := g.cellOf(p)
	i := g.index(x, y)
	g.cells[i] = append(g.cells[i], item)
	g.n++
	return nil
}

// Nearest implements Index.
//
// Implementation:
//   - Stage 1: clamp p's cell into the grid and scan it.
//   - Stage 2: scan square rings of growing radius r around that cell.
//   - Stage 3: stop once a candidate exists and the next ring, which is at
//     least r cell sides away, cannot beat it; or once the rings cover the
//     whole grid.
//
// Ties keep the item found first.
func (g *Grid[T]) Nearest(p orb.Point) (T, bool) {
	var best T
	if g.n == 0 {
		return best, false
	}
	cx, cy := g.cellOf(p)
	bestD := math.Inf(1)
	found := false

	for r := 0; ; r++ {
		g.ring(cx, cy, r, func(items []T) {
			for _, it := range items {
				if d := planar.DistanceSquared(p, it.Location()); d < bestD {
					best, bestD, found = it, d, true
				}
			}
		})
		if found {
			lb := float64(r) * g.cell
			if lb*lb >= bestD {
				return best, true
			}
		}
		if cx-r <= 0 && cy-r <= 0 && cx+r >= g.cols-1 && cy+r >= g.rows-1 {
			return best, found
		}
	}
}

// All implements Index: row-major from the origin row, insertion order within
// a cell.
func (g *Grid[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, bucket := range g.cells {
			for _, it := range bucket {
				if !yield(it) {
					return
				}
			}
		}
	}
}

// ring calls visit with every in-grid bucket whose Chebyshev cell distance
// from (cx, cy) is exactly r.
func (g *Grid[T]) ring(cx, cy, r int, visit func([]T)) {
	if r == 0 {
		visit(g.cells[g.index(cx, cy)])
		return
	}
	for x := cx - r; x <= cx+r; x++ {
		for _, y := range [2]int{cy - r, cy + r} {
			if g.inBounds(x, y) {
				visit(g.cells[g.index(x, y)])
			}
		}
	}
	for y := cy - r + 1; y <= cy+r-1; y++ {
		for _, x := range [2]int{cx - r, cx + r} {
			if g.inBounds(x, y) {
				visit(g.cells[g.index(x, y)])
			}
		}
	}
}

// cellOf maps p to its cell, clamped into the grid.
func (g *Grid[T]) cellOf(p orb.Point) (int, int) {
	x := int(math.Floor((p.X() - g.bounds.Min.X()) / g.cell))
	y := int(math.Floor((p.Y() - g.bounds.Min.Y()) / g.cell))
	return min(max(x, 0), g.cols-1), min(max(y, 0), g.rows-1)
}

// inBounds reports whether (x, y) names a cell.
func (g *Grid[T]) inBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// index maps (x, y) to a row-major bucket index.
func (g *Grid[T]) index(x, y int) int {
	return y*g.cols + x
}
