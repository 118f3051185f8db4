// SPDX-License-Identifier: MIT

package delaunay

import (
	"fmt"
	"iter"
	"math/rand"
	"sort"
)

// Random triangulates n distinct points drawn uniformly from the lattice
// [0,width]×[0,height]. Draws that repeat an accepted point are discarded and
// redrawn, so exactly n points end up in the result. The draw order is x then
// y, one rng.Intn call each.
//
// Error Conditions:
//   - ErrBadBounds     : width or height below 0 or above MaxCoord.
//   - ErrTooManyPoints : n > (width+1)·(height+1).
func Random(n int, rng *rand.Rand, width, height int) (*Triangulation, error) {
	if width < 0 || height < 0 || width > MaxCoord || height > MaxCoord {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadBounds, width, height)
	}
	if lattice := int64(width+1) * int64(height+1); int64(n) > lattice {
		return nil, fmt.Errorf("%w: %d requested, %d available", ErrTooManyPoints, n, lattice)
	}

	b := newBuilder(Rect{Max: Point{X: width, Y: height}})
	for len(b.vertices) < n {
		b.add(Point{X: rng.Intn(width + 1), Y: rng.Intn(height + 1)})
	}
	return b.finish(), nil
}

// FromPoints triangulates points inside their own bounding rectangle.
// Duplicates after the first occurrence are rejected.
//
// Returns ErrBadBounds when a coordinate exceeds ±MaxCoord.
func FromPoints(points []Point) (*Triangulation, error) {
	var r Rect
	for i, p := range points {
		if !p.inRange() {
			return nil, fmt.Errorf("%w: %v exceeds ±%d", ErrBadBounds, p, MaxCoord)
		}
		if i == 0 {
			r = Rect{Min: p, Max: p}
			continue
		}
		r.Min.X, r.Min.Y = min(r.Min.X, p.X), min(r.Min.Y, p.Y)
		r.Max.X, r.Max.Y = max(r.Max.X, p.X), max(r.Max.Y, p.Y)
	}

	b := newBuilder(r)
	for _, p := range points {
		b.add(p)
	}
	return b.finish(), nil
}

// FromSeq triangulates the points yielded by seq that lie inside bounds.
// Points outside bounds and duplicates are counted in Rejected.
//
// Returns ErrBadBounds when bounds is inverted or reaches past ±MaxCoord.
func FromSeq(seq iter.Seq[Point], bounds Rect) (*Triangulation, error) {
	if err := bounds.validate(); err != nil {
		return nil, err
	}
	b := newBuilder(bounds)
	for p := range seq {
		if !bounds.Contains(p) {
			b.rejected++
			continue
		}
		b.add(p)
	}
	return b.finish(), nil
}

// builder accumulates one triangulation.
type builder struct {
	*arena
	bounds   Rect
	seeds    [3]Point
	vertices []Point
	rejected int
}

// newBuilder opens a seed triangle strictly enclosing r. With B one more than
// the longer side of r, the seed corners sit B to the left of and below r, and
// the hypotenuse x+y = 2B (relative to r.Min) clears r's far corner.
func newBuilder(r Rect) *builder {
	span := max(r.Dx(), r.Dy()) + 1
	seeds := [3]Point{
		{X: r.Min.X - span, Y: r.Min.Y - span},
		{X: r.Min.X - span, Y: r.Min.Y + 3*span},
		{X: r.Min.X + 3*span, Y: r.Min.Y - span},
	}
	return &builder{
		arena:  newArena(seeds[0], seeds[1], seeds[2]),
		bounds: r,
		seeds:  seeds,
	}
}

func (b *builder) add(p Point) {
	if !b.insert(p) {
		b.rejected++
		return
	}
	b.vertices = append(b.vertices, p)
}

func (b *builder) isSeed(p Point) bool {
	return p == b.seeds[0] || p == b.seeds[1] || p == b.seeds[2]
}

// finish collects the live triangles and edges that avoid the seed vertices.
func (b *builder) finish() *Triangulation {
	seen := make(map[Edge]struct{})
	var (
		edges []Edge
		faces []Triangle
	)
	for i := range b.tris {
		t := &b.tris[i]
		if t.children != nil {
			continue
		}
		synthetic := false
		for j, v := range t.vs {
			if b.isSeed(v) {
				synthetic = true
				continue
			}
			w := t.vs[(j+1)%3]
			if b.isSeed(w) {
				continue
			}
			e := NewEdge(v, w)
			if _, dup := seen[e]; !dup {
				seen[e] = struct{}{}
				edges = append(edges, e)
			}
		}
		if !synthetic {
			faces = append(faces, Triangle(t.vs))
		}
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].less(edges[j]) })

	return &Triangulation{
		bounds:    b.bounds,
		vertices:  b.vertices,
		edges:     edges,
		triangles: faces,
		rejected:  b.rejected,
	}
}
