// SPDX-License-Identifier: MIT

package graph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/starmap/core"
	"github.com/katalvlaran/starmap/dfs"
)

// HasCycle reports whether v lies on some cycle. Every vertex of a tree reports
// false. An unknown v fails with core.ErrVertexNotFound.
func (g *Graph[V]) HasCycle(v V) (bool, error) {
	on, err := dfs.OnCycle[V](g.store, v)
	if errors.Is(err, dfs.ErrStartVertexNotFound) {
		return false, fmt.Errorf("%w: %v", core.ErrVertexNotFound, v)
	}
	return on, err
}
