// SPDX-License-Identifier: MIT

package delaunay

import "math/big"

// insert adds p to the triangulation and restores the Delaunay condition.
// It reports false when p coincides with an existing vertex or falls outside
// the seed triangle.
func (a *arena) insert(p Point) bool {
	loc := a.locate(p)
	switch loc.kind {
	case locIn:
		a.splitInThree(loc.tri, p)
	case locEdge:
		a.splitOnEdge(loc.tri, loc.opp, p)
	default:
		return false
	}
	a.legalize()
	return true
}

// splitInThree replaces t by (v0,v1,p), (v1,v2,p) and (v2,v0,p).
func (a *arena) splitInThree(t triID, p Point) {
	old := a.tris[t]

	var sub [3]triID
	for i := range sub {
		sub[i] = a.newTri(old.vs[i], old.vs[(i+1)%3], p)
	}
	a.tris[t].children = sub[:]

	for i := range sub {
		a.newEdge(old.vs[(i+1)%3], p, sub[i], sub[(i+1)%3])
	}
	// side vi–vi+1 is opposite vi+2 in t and belongs to sub[i]
	for i := range sub {
		if e := old.es[(i+2)%3]; e != noEdge {
			a.handOver(e, t, sub[i])
			a.queue = append(a.queue, quad{e: e, add: p})
		}
	}
}

// splitOnEdge inserts p on the side of t opposite t.vs[opp]. If another live
// triangle shares that side it is split too, and the four halves are stitched
// along the two new segments.
func (a *arena) splitOnEdge(t triID, opp int, p Point) {
	e := a.tris[t].es[opp]
	if e == noEdge {
		a.splitHalf(t, opp, p)
		return
	}

	u := a.edges[e].t1
	if u == t {
		u = a.edges[e].t2
	}
	far := a.opposite(u, e)
	farIdx := 0
	for a.tris[u].vs[farIdx] != far {
		farIdx++
	}
	a.edges[e].retired = true

	tSub, tEnds := a.splitHalf(t, opp, p)
	uSub, uEnds := a.splitHalf(u, farIdx, p)
	for i, end := range tEnds {
		j := 0
		if uEnds[1] == end {
			j = 1
		}
		a.newEdge(end, p, tSub[i], uSub[j])
	}
}

// splitHalf replaces t by two triangles through p and t.vs[opp]. It returns
// the halves and the endpoint of the split side each one keeps.
func (a *arena) splitHalf(t triID, opp int, p Point) ([2]triID, [2]Point) {
	old := a.tris[t]
	apex := old.vs[opp]
	ends := [2]Point{old.vs[(opp+1)%3], old.vs[(opp+2)%3]}

	var sub [2]triID
	for i, end := range ends {
		sub[i] = a.newTri(end, p, apex)
	}
	a.tris[t].children = sub[:]
	a.newEdge(apex, p, sub[0], sub[1])

	// the side opposite ends[1] touches ends[0], and the other way round
	if e := old.es[(opp+2)%3]; e != noEdge {
		a.handOver(e, t, sub[0])
		a.queue = append(a.queue, quad{e: e, add: p})
	}
	if e := old.es[(opp+1)%3]; e != noEdge {
		a.handOver(e, t, sub[1])
		a.queue = append(a.queue, quad{e: e, add: p})
	}
	return sub, ends
}

// legalize drains the flip queue.
func (a *arena) legalize() {
	for head := 0; head < len(a.queue); head++ {
		a.flipIfIllegal(a.queue[head])
	}
	a.queue = a.queue[:0]
}

// flipIfIllegal re-resolves q against the current arena and flips its edge
// when the quad violates the Delaunay condition. A retired edge, or one no
// longer facing q.add, is skipped.
func (a *arena) flipIfIllegal(q quad) {
	edge := a.edges[q.e]
	if edge.retired {
		return
	}
	inner, outer := edge.t1, edge.t2
	if a.opposite(inner, q.e) != q.add {
		inner, outer = outer, inner
	}
	if a.opposite(inner, q.e) != q.add {
		return
	}
	far := a.opposite(outer, q.e)
	if isDelaunay(q.add, far, edge.p1, edge.p2) {
		return
	}

	f1 := a.newTri(q.add, far, edge.p1)
	f2 := a.newTri(q.add, far, edge.p2)
	kids := []triID{f1, f2}
	a.tris[inner].children = kids
	a.tris[outer].children = kids
	a.edges[q.e].retired = true
	a.newEdge(q.add, far, f1, f2)

	for _, side := range []triID{inner, outer} {
		for _, e := range a.tris[side].es {
			if e == noEdge || e == q.e {
				continue
			}
			to := f2
			if a.edges[e].contains(edge.p1) {
				to = f1
			}
			a.handOver(e, side, to)
			if side == outer {
				a.queue = append(a.queue, quad{e: e, add: q.add})
			}
		}
	}
}

// isDelaunay reports whether the angles at add and far, both subtended by
// p1–p2, sum to at most π. With α and β in (0, π) that holds exactly when
// sin(α+β) ≥ 0, and
//
//	sin(α+β)·|u1||v1||u2||v2| = |u1×v1|·(u2·v2) + (u1·v1)·|u2×v2|
//
// where u, v run from each apex to p1 and p2. Evaluated in big integers, so
// cocircular quads are never flipped.
func isDelaunay(add, far, p1, p2 Point) bool {
	c1, d1 := crossDot(add, p1, p2)
	c2, d2 := crossDot(far, p1, p2)
	c1.Abs(c1)
	c2.Abs(c2)

	s := new(big.Int).Mul(c1, d2)
	s.Add(s, new(big.Int).Mul(d1, c2))
	return s.Sign() >= 0
}

// crossDot returns the cross and dot products of p1−o and p2−o.
func crossDot(o, p1, p2 Point) (*big.Int, *big.Int) {
	ux, uy := big.NewInt(int64(p1.X)-int64(o.X)), big.NewInt(int64(p1.Y)-int64(o.Y))
	vx, vy := big.NewInt(int64(p2.X)-int64(o.X)), big.NewInt(int64(p2.Y)-int64(o.Y))

	cross := new(big.Int).Mul(ux, vy)
	cross.Sub(cross, new(big.Int).Mul(uy, vx))
	dot := new(big.Int).Mul(ux, vx)
	dot.Add(dot, new(big.Int).Mul(uy, vy))
	return cross, dot
}
