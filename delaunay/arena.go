// SPDX-License-Identifier: MIT

package delaunay

import "math/big"

// triID and edgeID address records in the arena.
type (
	triID  int32
	edgeID int32
)

const (
	noTri  triID  = -1
	noEdge edgeID = -1
)

// triangle is one node of the location history. It is live while children is
// nil; once split or flipped it keeps its geometry for point location only.
type triangle struct {
	vs       [3]Point
	es       [3]edgeID // es[i] is the shared edge opposite vs[i]; noEdge on the hull
	children []triID
}

// sharedEdge joins the two live triangles on either side of a segment.
type sharedEdge struct {
	p1, p2  Point
	t1, t2  triID
	retired bool
}

func (e *sharedEdge) contains(p Point) bool { return e.p1 == p || e.p2 == p }

// arena owns every triangle and shared edge created during one build.
// Index 0 is the seed triangle.
type arena struct {
	tris  []triangle
	edges []sharedEdge
	queue []quad
}

// quad names a shared edge that may need flipping after add was inserted.
type quad struct {
	e   edgeID
	add Point
}

func newArena(p0, p1, p2 Point) *arena {
	a := &arena{}
	a.newTri(p0, p1, p2)
	return a
}

func (a *arena) newTri(p0, p1, p2 Point) triID {
	a.tris = append(a.tris, triangle{
		vs: [3]Point{p0, p1, p2},
		es: [3]edgeID{noEdge, noEdge, noEdge},
	})
	return triID(len(a.tris) - 1)
}

// newEdge records the segment p1–p2 shared by t1 and t2 and attaches it to both.
func (a *arena) newEdge(p1, p2 Point, t1, t2 triID) edgeID {
	a.edges = append(a.edges, sharedEdge{p1: p1, p2: p2, t1: t1, t2: t2})
	id := edgeID(len(a.edges) - 1)
	a.attach(t1, id)
	a.attach(t2, id)
	return id
}

// attach stores e in t at the slot of the vertex e does not touch.
func (a *arena) attach(t triID, e edgeID) {
	edge := &a.edges[e]
	tri := &a.tris[t]
	for i, v := range tri.vs {
		if !edge.contains(v) {
			tri.es[i] = e
			return
		}
	}
}

// handOver moves the from side of e to to and attaches e there.
func (a *arena) handOver(e edgeID, from, to triID) {
	edge := &a.edges[e]
	switch from {
	case edge.t1:
		edge.t1 = to
	case edge.t2:
		edge.t2 = to
	default:
		panic("delaunay: shared edge does not border the replaced triangle")
	}
	a.attach(to, e)
}

// opposite returns the vertex of t that is not an endpoint of e.
func (a *arena) opposite(t triID, e edgeID) Point {
	edge := &a.edges[e]
	for _, v := range a.tris[t].vs {
		if !edge.contains(v) {
			return v
		}
	}
	panic("delaunay: triangle is degenerate")
}

// locKind classifies a point against a triangle.
type locKind uint8

const (
	locOut locKind = iota
	locIn
	locEdge
	locVertex
)

// location is the live triangle holding a point. For locEdge, opp is the index
// of the vertex opposite the edge the point lies on.
type location struct {
	kind locKind
	tri  triID
	opp  int
}

// classify places p against t with exact barycentric numerators. The
// numerators are normalised by the sign of the determinant, so vertex order
// does not matter.
func (t *triangle) classify(p Point) (locKind, int) {
	x0, y0 := int64(t.vs[0].X), int64(t.vs[0].Y)
	x1, y1 := int64(t.vs[1].X), int64(t.vs[1].Y)
	x2, y2 := int64(t.vs[2].X), int64(t.vs[2].Y)
	px, py := int64(p.X), int64(p.Y)

	d := [7]int64{y1 - y2, x0 - x2, x2 - x1, y0 - y2, px - x2, py - y2, y2 - y0}
	var l [3]int
	if smallDeltas(d) {
		l = barycentric64(d)
	} else {
		l = barycentricBig(d)
	}
	zeros, zi := 0, 0
	for i, v := range l {
		if v < 0 {
			return locOut, 0
		}
		if v == 0 {
			zeros++
			zi = i
		}
	}
	switch zeros {
	case 0:
		return locIn, 0
	case 1:
		return locEdge, zi
	default:
		return locVertex, 0
	}
}

// maxSmallDelta keeps every product of two deltas below 2^60, so the sums in
// barycentric64 stay inside int64.
const maxSmallDelta = 1 << 30

func smallDeltas(d [7]int64) bool {
	for _, v := range d {
		if v >= maxSmallDelta || v <= -maxSmallDelta {
			return false
		}
	}
	return true
}

// barycentric64 returns the signs of the normalised numerators. d holds, in
// order, y1−y2, x0−x2, x2−x1, y0−y2, px−x2, py−y2 and y2−y0.
func barycentric64(d [7]int64) [3]int {
	det := d[0]*d[1] + d[2]*d[3]
	l0 := d[0]*d[4] + d[2]*d[5]
	l1 := d[6]*d[4] + d[1]*d[5]
	l2 := det - l0 - l1
	if det < 0 {
		l0, l1, l2 = -l0, -l1, -l2
	}
	return [3]int{sign(l0), sign(l1), sign(l2)}
}

// barycentricBig is barycentric64 for deltas too wide for int64 products.
func barycentricBig(d [7]int64) [3]int {
	var b [7]*big.Int
	for i, v := range d {
		b[i] = big.NewInt(v)
	}
	mulAdd := func(a, x, c, y *big.Int) *big.Int {
		r := new(big.Int).Mul(a, x)
		return r.Add(r, new(big.Int).Mul(c, y))
	}
	det := mulAdd(b[0], b[1], b[2], b[3])
	l0 := mulAdd(b[0], b[4], b[2], b[5])
	l1 := mulAdd(b[6], b[4], b[1], b[5])
	l2 := new(big.Int).Sub(det, l0)
	l2.Sub(l2, l1)
	s := det.Sign()
	return [3]int{s * l0.Sign(), s * l1.Sign(), s * l2.Sign()}
}

func sign(v int64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// locate descends the history from the seed triangle. Among a node's children
// the first one not excluding p is followed.
func (a *arena) locate(p Point) location {
	t := triID(0)
	kind, opp := a.tris[t].classify(p)
	if kind == locOut {
		return location{kind: locOut, tri: noTri}
	}
	for kind != locVertex && a.tris[t].children != nil {
		next := noTri
		for _, c := range a.tris[t].children {
			if k, i := a.tris[c].classify(p); k != locOut {
				next, kind, opp = c, k, i
				break
			}
		}
		if next == noTri {
			return location{kind: locOut, tri: noTri}
		}
		t = next
	}
	return location{kind: kind, tri: t, opp: opp}
}
