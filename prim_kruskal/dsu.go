// SPDX-License-Identifier: MIT

package prim_kruskal

// dsu is a disjoint-set forest with path halving and union by rank.
type dsu[V comparable] struct {
	parent map[V]V
	rank   map[V]int
	sets   int
}

func newDSU[V comparable](vs []V) *dsu[V] {
	d := &dsu[V]{
		parent: make(map[V]V, len(vs)),
		rank:   make(map[V]int, len(vs)),
		sets:   len(vs),
	}
	for _, v := range vs {
		d.parent[v] = v
	}
	return d
}

func (d *dsu[V]) find(u V) V {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}
	return u
}

// union merges the sets of u and v and reports whether they were distinct.
func (d *dsu[V]) union(u, v V) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	if d.rank[ru] < d.rank[rv] {
		ru, rv = rv, ru
	}
	d.parent[rv] = ru
	if d.rank[ru] == d.rank[rv] {
		d.rank[ru]++
	}
	d.sets--
	return true
}
