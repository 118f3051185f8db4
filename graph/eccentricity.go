// SPDX-License-Identifier: MIT

package graph

import (
	"sort"

	"github.com/katalvlaran/starmap/dfs"
)

// Diameter returns the largest eccentricity in the largest connected component.
// Among equally large components the one with the lowest vertex key is used.
// An empty graph fails with ErrEmptyGraph.
func (g *Graph[V]) Diameter() (int, error) {
	ecc, _, err := g.largestEccentricities()
	if err != nil {
		return 0, err
	}
	d := 0
	for _, e := range ecc {
		if e > d {
			d = e
		}
	}
	return d, nil
}

// Center returns the vertex of least eccentricity in the largest connected
// component; ties go to the lowest key. An empty graph fails with ErrEmptyGraph.
func (g *Graph[V]) Center() (V, error) {
	ecc, vs, err := g.largestEccentricities()
	if err != nil {
		var zero V
		return zero, err
	}
	best := 0
	for i := range vs {
		if ecc[i] < ecc[best] {
			best = i
		}
	}
	return vs[best], nil
}

// largestEccentricities returns the vertices of the largest component sorted by
// key, with their eccentricities at the same indices.
//
// Complexity: O(C·(V + E) log V) where C is the size of that component.
func (g *Graph[V]) largestEccentricities() ([]int, []V, error) {
	if g.Order() == 0 {
		return nil, nil, ErrEmptyGraph
	}
	groups, err := dfs.Components[V](g.store)
	if err != nil {
		return nil, nil, err
	}
	largest := groups[0]
	for _, grp := range groups[1:] {
		if len(grp) > len(largest) {
			largest = grp
		}
	}

	vs := make([]V, len(largest))
	copy(vs, largest)
	sort.Slice(vs, func(i, j int) bool { return vs[i].Key() < vs[j].Key() })

	ecc := make([]int, len(vs))
	for i, v := range vs {
		if ecc[i], err = g.Eccentricity(v); err != nil {
			return nil, nil, err
		}
	}
	return ecc, vs, nil
}
