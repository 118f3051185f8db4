// SPDX-License-Identifier: MIT

package delaunay_test

import (
	"math/big"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/starmap/delaunay"
)

type pt = delaunay.Point

// det3 evaluates a 3×3 determinant over big integers.
func det3(m [3][3]*big.Int) *big.Int {
	term := func(a, b, c, d, e *big.Int) *big.Int {
		// a·(b·c − d·e)
		x := new(big.Int).Mul(b, c)
		x.Sub(x, new(big.Int).Mul(d, e))
		return x.Mul(x, a)
	}
	out := term(m[0][0], m[1][1], m[2][2], m[1][2], m[2][1])
	out.Sub(out, term(m[0][1], m[1][0], m[2][2], m[1][2], m[2][0]))
	out.Add(out, term(m[0][2], m[1][0], m[2][1], m[1][1], m[2][0]))
	return out
}

// strictlyInCircumcircle reports whether d lies strictly inside the circle
// through the triangle's vertices.
func strictlyInCircumcircle(t delaunay.Triangle, d pt) bool {
	var m [3][3]*big.Int
	for i, p := range t {
		dx := big.NewInt(int64(p.X - d.X))
		dy := big.NewInt(int64(p.Y - d.Y))
		sq := new(big.Int).Mul(dx, dx)
		sq.Add(sq, new(big.Int).Mul(dy, dy))
		m[i] = [3]*big.Int{dx, dy, sq}
	}
	orient := int64(t[1].X-t[0].X)*int64(t[2].Y-t[0].Y) - int64(t[1].Y-t[0].Y)*int64(t[2].X-t[0].X)
	s := det3(m).Sign()
	if orient < 0 {
		s = -s
	}
	return s > 0
}

func fromPoints(t *testing.T, pts []pt) *delaunay.Triangulation {
	t.Helper()
	tr, err := delaunay.FromPoints(pts)
	require.NoError(t, err)
	return tr
}

// assertDelaunay checks the empty circumcircle property of every face.
func assertDelaunay(t *testing.T, tr *delaunay.Triangulation) {
	t.Helper()
	vs := tr.Vertices()
	for _, f := range tr.Triangles() {
		for _, v := range vs {
			assert.False(t, strictlyInCircumcircle(f, v), "%v inside circumcircle of %v", v, f)
		}
	}
}

// assertConnected checks that the edges reach every vertex.
func assertConnected(t *testing.T, tr *delaunay.Triangulation) {
	t.Helper()
	vs := tr.Vertices()
	if len(vs) < 2 {
		return
	}
	adj := make(map[pt][]pt)
	for _, e := range tr.Edges() {
		adj[e.P] = append(adj[e.P], e.Q)
		adj[e.Q] = append(adj[e.Q], e.P)
	}
	seen := map[pt]bool{vs[0]: true}
	stack := []pt{vs[0]}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, w := range adj[v] {
			if !seen[w] {
				seen[w] = true
				stack = append(stack, w)
			}
		}
	}
	assert.Len(t, seen, len(vs), "triangulation edges leave vertices unreachable")
}

func TestRandom_Properties(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		rng := rand.New(rand.NewSource(seed))
		tr, err := delaunay.Random(80, rng, 300, 200)
		require.NoError(t, err)

		require.Equal(t, 80, tr.Len())
		seen := make(map[pt]bool)
		for _, v := range tr.Vertices() {
			assert.False(t, seen[v], "duplicate vertex %v", v)
			seen[v] = true
			assert.True(t, tr.Bounds().Contains(v))
		}
		for _, e := range tr.Edges() {
			assert.True(t, seen[e.P] && seen[e.Q], "edge %v touches a synthetic vertex", e)
		}
		assertDelaunay(t, tr)
		assertConnected(t, tr)
	}
}

func TestRandom_Deterministic(t *testing.T) {
	a, err := delaunay.Random(50, rand.New(rand.NewSource(7)), 100, 100)
	require.NoError(t, err)
	b, err := delaunay.Random(50, rand.New(rand.NewSource(7)), 100, 100)
	require.NoError(t, err)
	assert.Equal(t, a.Vertices(), b.Vertices())
	assert.Equal(t, a.Edges(), b.Edges())
}

func TestRandom_Errors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := delaunay.Random(5, rng, 1, 1)
	assert.ErrorIs(t, err, delaunay.ErrTooManyPoints)

	_, err = delaunay.Random(3, rng, -1, 4)
	assert.ErrorIs(t, err, delaunay.ErrBadBounds)

	_, err = delaunay.Random(200, rng, 4*delaunay.MaxCoord, 4*delaunay.MaxCoord)
	assert.ErrorIs(t, err, delaunay.ErrBadBounds)

	_, err = delaunay.Random(3, rng, 10, delaunay.MaxCoord+1)
	assert.ErrorIs(t, err, delaunay.ErrBadBounds)

	// every lattice point of a 2×2 square
	tr, err := delaunay.Random(4, rng, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, tr.Len())
	assert.Len(t, tr.Edges(), 5)
	assert.Len(t, tr.Triangles(), 2)
}

func TestRandom_SmallCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	tr, err := delaunay.Random(0, rng, 10, 10)
	require.NoError(t, err)
	assert.Zero(t, tr.Len())
	assert.Empty(t, tr.Edges())

	tr, err = delaunay.Random(1, rng, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, tr.Len())
	assert.Empty(t, tr.Edges())

	tr, err = delaunay.Random(2, rng, 10, 10)
	require.NoError(t, err)
	vs := tr.Vertices()
	assert.Equal(t, []delaunay.Edge{delaunay.NewEdge(vs[0], vs[1])}, tr.Edges())
}

func TestFromPoints_Lattice(t *testing.T) {
	var pts []pt
	for x := 0; x < 6; x++ {
		for y := 0; y < 6; y++ {
			pts = append(pts, pt{X: x, Y: y})
		}
	}
	tr := fromPoints(t, pts)

	assert.Equal(t, 36, tr.Len())
	assert.Len(t, tr.Triangles(), 50)
	assert.Len(t, tr.Edges(), 85)
	for _, e := range tr.Edges() {
		dx, dy := e.Q.X-e.P.X, e.Q.Y-e.P.Y
		assert.LessOrEqual(t, dx*dx+dy*dy, 2, "edge %v spans more than one cell", e)
	}
	assertDelaunay(t, tr)
}

func TestFromPoints_Colinear(t *testing.T) {
	tr := fromPoints(t, []pt{{0, 0}, {10, 0}, {5, 0}})

	assert.Equal(t, []delaunay.Edge{
		delaunay.NewEdge(pt{0, 0}, pt{5, 0}),
		delaunay.NewEdge(pt{5, 0}, pt{10, 0}),
	}, tr.Edges())
	assert.Empty(t, tr.Triangles())
}

func TestFromPoints_OnEdge(t *testing.T) {
	tr := fromPoints(t, []pt{{0, 0}, {10, 0}, {0, 10}, {5, 5}, {5, 5}})

	assert.Equal(t, 4, tr.Len())
	assert.Equal(t, 1, tr.Rejected())
	assert.Equal(t, []delaunay.Edge{
		delaunay.NewEdge(pt{0, 0}, pt{0, 10}),
		delaunay.NewEdge(pt{0, 0}, pt{5, 5}),
		delaunay.NewEdge(pt{0, 0}, pt{10, 0}),
		delaunay.NewEdge(pt{0, 10}, pt{5, 5}),
		delaunay.NewEdge(pt{5, 5}, pt{10, 0}),
	}, tr.Edges())
	assert.Len(t, tr.Triangles(), 2)
	assertDelaunay(t, tr)
}

func TestFromPoints_Empty(t *testing.T) {
	tr := fromPoints(t, nil)
	assert.Zero(t, tr.Len())
	assert.Empty(t, tr.Edges())
	assert.Empty(t, tr.Triangles())
}

func TestFromPoints_WideCoordinates(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	seen := make(map[pt]bool)
	var pts []pt
	for len(pts) < 60 {
		p := pt{X: rng.Intn(1 << 30), Y: rng.Intn(1 << 30)}
		if !seen[p] {
			seen[p] = true
			pts = append(pts, p)
		}
	}

	tr := fromPoints(t, pts)
	assert.Equal(t, 60, tr.Len())
	assert.Zero(t, tr.Rejected())
	assert.NotEmpty(t, tr.Triangles())
	assertDelaunay(t, tr)
	assertConnected(t, tr)
}

func TestRandom_WideArea(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	tr, err := delaunay.Random(200, rng, delaunay.MaxCoord, delaunay.MaxCoord)
	require.NoError(t, err)

	assert.Equal(t, 200, tr.Len())
	assert.Zero(t, tr.Rejected())
	assertConnected(t, tr)
}

func TestFromPoints_CoordinateLimit(t *testing.T) {
	_, err := delaunay.FromPoints([]pt{{0, 0}, {delaunay.MaxCoord + 1, 0}, {0, 1}})
	assert.ErrorIs(t, err, delaunay.ErrBadBounds)

	_, err = delaunay.FromPoints([]pt{{-delaunay.MaxCoord, -delaunay.MaxCoord}, {delaunay.MaxCoord, delaunay.MaxCoord}, {0, 1}})
	assert.NoError(t, err)

	_, err = delaunay.FromSeq(slices.Values([]pt{{1, 1}}), delaunay.Rect{Max: pt{X: delaunay.MaxCoord + 1, Y: 1}})
	assert.ErrorIs(t, err, delaunay.ErrBadBounds)
}

func TestFromSeq_FiltersBounds(t *testing.T) {
	in := []pt{{1, 1}, {50, 50}, {-1, 3}, {9, 9}, {3, 11}, {1, 9}, {1, 1}}
	tr, err := delaunay.FromSeq(slices.Values(in), delaunay.Rect{Max: pt{X: 10, Y: 10}})
	require.NoError(t, err)

	assert.Equal(t, []pt{{1, 1}, {9, 9}, {1, 9}}, tr.Vertices())
	assert.Equal(t, 4, tr.Rejected())
	assert.Len(t, tr.Edges(), 3)

	_, err = delaunay.FromSeq(slices.Values(in), delaunay.Rect{Min: pt{X: 5}, Max: pt{X: 4, Y: 4}})
	assert.ErrorIs(t, err, delaunay.ErrBadBounds)
}

func TestEdge(t *testing.T) {
	e := delaunay.NewEdge(pt{3, 4}, pt{0, 0})
	assert.Equal(t, pt{0, 0}, e.P)
	assert.True(t, e.Contains(pt{3, 4}))
	assert.False(t, e.Contains(pt{3, 3}))
	assert.Equal(t, pt{3, 4}, e.Other(pt{0, 0}))
	assert.Equal(t, pt{0, 0}, e.Other(pt{3, 4}))
	assert.InDelta(t, 5.0, e.Length(), 1e-12)
	assert.Equal(t, "(0,0)-(3,4)", e.String())
}
