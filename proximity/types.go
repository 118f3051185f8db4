// SPDX-License-Identifier: MIT

package proximity

import (
	"errors"
	"iter"

	"github.com/paulmach/orb"
)

// Sentinel errors for index construction and insertion.
var (
	// ErrBadBounds indicates an inverted or non-finite bounding box.
	ErrBadBounds = errors.New("proximity: invalid bounds")
	// ErrBadCellSize indicates a cell size that is not a positive finite number,
	// or one so small that the grid would need more than MaxCells buckets.
	ErrBadCellSize = errors.New("proximity: cell size must be positive")
	// ErrOutOfBounds indicates an entity positioned outside the grid.
	ErrOutOfBounds = errors.New("proximity: position outside bounds")
)

// Locatable is anything with a fixed position.
type Locatable interface {
	Location() orb.Point
}

// Index is the contract shared by Grid and Tree.
type Index[T Locatable] interface {
	// Insert stores item at item.Location().
	Insert(item T) error
	// Nearest returns the stored item closest to p, or (zero, false) when
	// the index is empty.
	Nearest(p orb.Point) (T, bool)
	// Len is the number of stored items.
	Len() int
	// All yields every stored item once.
	All() iter.Seq[T]
}

// GridOptions tunes a Grid.
type GridOptions struct {
	// CellSize is the side of a square cell in position units.
	CellSize float64
}

// GridOption configures GridOptions.
type GridOption func(*GridOptions)

// DefaultCellSize is the cell side used when none is given.
const DefaultCellSize = 64

// MaxCells caps the bucket table of a Grid.
const MaxCells = 1 << 22

// DefaultGridOptions returns CellSize = DefaultCellSize.
func DefaultGridOptions() GridOptions {
	return GridOptions{CellSize: DefaultCellSize}
}

// WithCellSize sets the cell side.
func WithCellSize(size float64) GridOption {
	return func(o *GridOptions) { o.CellSize = size }
}
