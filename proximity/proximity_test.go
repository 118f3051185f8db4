// SPDX-License-Identifier: MIT

package proximity_test

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/starmap/proximity"
)

// spot is a named fixed position.
type spot struct {
	name string
	at   orb.Point
}

func (s spot) Location() orb.Point { return s.at }

var square = orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{100, 100}}

// indexes returns one empty index of each kind over square.
func indexes(t *testing.T, opts ...proximity.GridOption) map[string]proximity.Index[spot] {
	t.Helper()
	g, err := proximity.NewGrid[spot](square, opts...)
	require.NoError(t, err)
	return map[string]proximity.Index[spot]{
		"grid": g,
		"tree": proximity.NewTree[spot](),
	}
}

func TestNearest_ThreeEntities(t *testing.T) {
	for name, idx := range indexes(t) {
		t.Run(name, func(t *testing.T) {
			for _, s := range []spot{{"a", orb.Point{0, 0}}, {"b", orb.Point{100, 100}}, {"c", orb.Point{50, 50}}} {
				require.NoError(t, idx.Insert(s))
			}
			got, ok := idx.Nearest(orb.Point{51, 51})
			require.True(t, ok)
			assert.Equal(t, "c", got.name)

			got, ok = idx.Nearest(orb.Point{-400, -3})
			require.True(t, ok)
			assert.Equal(t, "a", got.name)

			assert.Equal(t, 3, idx.Len())
		})
	}
}

func TestNearest_Empty(t *testing.T) {
	for name, idx := range indexes(t) {
		got, ok := idx.Nearest(orb.Point{1, 1})
		assert.False(t, ok, name)
		assert.Zero(t, got, name)
	}
}

func TestNearest_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for _, cell := range []float64{3, 10, 64, 500} {
		idx := indexes(t, proximity.WithCellSize(cell))
		var all []spot
		for i := 0; i < 150; i++ {
			s := spot{name: "s", at: orb.Point{float64(rng.Intn(101)), float64(rng.Intn(101))}}
			all = append(all, s)
			for _, ix := range idx {
				require.NoError(t, ix.Insert(s))
			}
		}
		for i := 0; i < 300; i++ {
			q := orb.Point{rng.Float64()*160 - 30, rng.Float64()*160 - 30}
			want := math.Inf(1)
			for _, s := range all {
				want = min(want, planar.Distance(q, s.at))
			}
			for name, ix := range idx {
				got, ok := ix.Nearest(q)
				require.True(t, ok)
				assert.InDelta(t, want, planar.Distance(q, got.at), 1e-6, "%s cell=%v query=%v", name, cell, q)
			}
		}
	}
}

func TestGrid_Errors(t *testing.T) {
	_, err := proximity.NewGrid[spot](orb.Bound{Min: orb.Point{5, 0}, Max: orb.Point{0, 5}})
	assert.ErrorIs(t, err, proximity.ErrBadBounds)

	_, err = proximity.NewGrid[spot](orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{math.Inf(1), 5}})
	assert.ErrorIs(t, err, proximity.ErrBadBounds)

	for _, size := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = proximity.NewGrid[spot](square, proximity.WithCellSize(size))
		assert.ErrorIs(t, err, proximity.ErrBadCellSize, "size %v", size)
	}

	g, err := proximity.NewGrid[spot](square)
	require.NoError(t, err)
	assert.ErrorIs(t, g.Insert(spot{at: orb.Point{101, 4}}), proximity.ErrOutOfBounds)
	assert.NoError(t, g.Insert(spot{at: orb.Point{100, 100}}))
	assert.Equal(t, 1, g.Len())
}

func TestGrid_CellLimit(t *testing.T) {
	huge := orb.Bound{Max: orb.Point{1 << 20, 1 << 20}}
	_, err := proximity.NewGrid[spot](huge)
	assert.ErrorIs(t, err, proximity.ErrBadCellSize)

	_, err = proximity.NewGrid[spot](square, proximity.WithCellSize(1e-300))
	assert.ErrorIs(t, err, proximity.ErrBadCellSize)

	cols, rows, ok := proximity.GridSize(huge, 1<<10)
	require.True(t, ok)
	assert.Equal(t, 1025, cols)
	assert.Equal(t, 1025, rows)

	g, err := proximity.NewGrid[spot](huge, proximity.WithCellSize(1<<10))
	require.NoError(t, err)
	require.NoError(t, g.Insert(spot{at: orb.Point{1 << 19, 1 << 19}}))
	got, ok := g.Nearest(orb.Point{0, 0})
	require.True(t, ok)
	assert.Equal(t, orb.Point{1 << 19, 1 << 19}, got.at)
}

func TestGrid_AllRowMajor(t *testing.T) {
	g, err := proximity.NewGrid[spot](orb.Bound{Max: orb.Point{29, 29}}, proximity.WithCellSize(10))
	require.NoError(t, err)
	for _, s := range []spot{
		{"se", orb.Point{25, 5}},
		{"sw", orb.Point{5, 5}},
		{"nw", orb.Point{5, 25}},
		{"mid", orb.Point{15, 15}},
		{"sw2", orb.Point{6, 6}},
	} {
		require.NoError(t, g.Insert(s))
	}

	var names []string
	for s := range g.All() {
		names = append(names, s.name)
	}
	assert.Equal(t, []string{"sw", "sw2", "se", "mid", "nw"}, names)

	// early break stops the walk
	n := 0
	for range g.All() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestTree_AllInsertionOrder(t *testing.T) {
	tr := proximity.NewTree[spot]()
	in := []spot{{"x", orb.Point{9, 9}}, {"y", orb.Point{1, 1}}, {"z", orb.Point{5, 5}}}
	for _, s := range in {
		require.NoError(t, tr.Insert(s))
	}
	assert.Equal(t, in, slices.Collect(tr.All()))
}
