// SPDX-License-Identifier: MIT

package delaunay

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Sentinel errors for triangulation construction.
var (
	// ErrBadBounds indicates negative dimensions, Min > Max on some axis, or a
	// coordinate beyond MaxCoord.
	ErrBadBounds = errors.New("delaunay: invalid bounds")
	// ErrTooManyPoints indicates more distinct points requested than lattice
	// points available.
	ErrTooManyPoints = errors.New("delaunay: not enough lattice points")
)

// MaxCoord bounds the absolute value of every coordinate. The seed triangle
// reaches about four rectangle spans past the input, and its corners must
// still fit in an int.
const MaxCoord = min(1<<30, math.MaxInt/8)

// Point is a lattice point.
type Point struct {
	X, Y int
}

// Orb converts p to an orb.Point.
func (p Point) Orb() orb.Point { return orb.Point{float64(p.X), float64(p.Y)} }

// String renders p as (x,y).
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// inRange reports whether both coordinates are within ±MaxCoord.
func (p Point) inRange() bool {
	return p.X >= -MaxCoord && p.X <= MaxCoord && p.Y >= -MaxCoord && p.Y <= MaxCoord
}

// less orders points by X, then Y.
func (p Point) less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Rect is an axis-aligned rectangle; both corners are inclusive.
type Rect struct {
	Min, Max Point
}

// Contains reports whether p lies inside r or on its border.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Dx is the width of r.
func (r Rect) Dx() int { return r.Max.X - r.Min.X }

// Dy is the height of r.
func (r Rect) Dy() int { return r.Max.Y - r.Min.Y }

// Bound converts r to an orb.Bound.
func (r Rect) Bound() orb.Bound { return orb.Bound{Min: r.Min.Orb(), Max: r.Max.Orb()} }

func (r Rect) validate() error {
	if r.Min.X > r.Max.X || r.Min.Y > r.Max.Y {
		return fmt.Errorf("%w: min %v exceeds max %v", ErrBadBounds, r.Min, r.Max)
	}
	if !r.Min.inRange() || !r.Max.inRange() {
		return fmt.Errorf("%w: %v-%v exceeds ±%d", ErrBadBounds, r.Min, r.Max, MaxCoord)
	}
	return nil
}

// Edge is an undirected segment; P orders before Q.
type Edge struct {
	P, Q Point
}

// NewEdge returns the normalized edge between a and b.
func NewEdge(a, b Point) Edge {
	if b.less(a) {
		a, b = b, a
	}
	return Edge{P: a, Q: b}
}

// Contains reports whether p is an endpoint of e.
func (e Edge) Contains(p Point) bool { return e.P == p || e.Q == p }

// Other returns the endpoint opposite p. Any p other than e.P yields e.P.
func (e Edge) Other(p Point) Point {
	if p == e.P {
		return e.Q
	}
	return e.P
}

// Length is the Euclidean length of e.
func (e Edge) Length() float64 { return planar.Distance(e.P.Orb(), e.Q.Orb()) }

// String renders e as p-q.
func (e Edge) String() string { return e.P.String() + "-" + e.Q.String() }

func (e Edge) less(f Edge) bool {
	if e.P != f.P {
		return e.P.less(f.P)
	}
	return e.Q.less(f.Q)
}

// Triangle is a final face of a triangulation.
type Triangle [3]Point

// Edges returns the three sides of t.
func (t Triangle) Edges() [3]Edge {
	return [3]Edge{NewEdge(t[0], t[1]), NewEdge(t[1], t[2]), NewEdge(t[2], t[0])}
}

// Triangulation is the immutable result of a build.
type Triangulation struct {
	bounds    Rect
	vertices  []Point
	edges     []Edge
	triangles []Triangle
	rejected  int
}

// Bounds returns the rectangle the triangulation was built for.
func (t *Triangulation) Bounds() Rect { return t.bounds }

// Vertices returns the accepted points in insertion order.
func (t *Triangulation) Vertices() []Point {
	out := make([]Point, len(t.vertices))
	copy(out, t.vertices)
	return out
}

// Edges returns the unique edges sorted by (P, Q).
func (t *Triangulation) Edges() []Edge {
	out := make([]Edge, len(t.edges))
	copy(out, t.edges)
	return out
}

// Triangles returns the faces spanned by accepted points only.
func (t *Triangulation) Triangles() []Triangle {
	out := make([]Triangle, len(t.triangles))
	copy(out, t.triangles)
	return out
}

// Len is the number of accepted points.
func (t *Triangulation) Len() int { return len(t.vertices) }

// Rejected counts points that were dropped: duplicates and, for FromSeq,
// points outside the bounds.
func (t *Triangulation) Rejected() int { return t.rejected }
