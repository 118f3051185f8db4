// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/starmap/core"
	"github.com/katalvlaran/starmap/pqueue"
)

// Dijkstra computes shortest distances from source over g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source (ErrVertexNotFound).
//  3. MaxDistance must be ≥ 0 (ErrBadMaxDistance).
//
// Edge lengths are non-negative by construction (core.NewEdge), so no pre-scan
// is needed.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func Dijkstra[V core.Node](g core.Reader[V], source V, opts ...Option[V]) (*Result[V], error) {
	// 1) Build Options.
	cfg := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}
	if cfg.MaxDistance < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadMaxDistance, cfg.MaxDistance)
	}

	// 3) Run.
	r := newRunner(g, source, cfg)
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// PathTo returns the vertices from the source to sink, both included.
// Returns ErrUnreachable if sink was not settled.
func (r *Result[V]) PathTo(sink V) ([]V, error) {
	if _, ok := r.Dist[sink]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, sink)
	}
	var rev []V
	for v := sink; v != r.Source; v = r.Prev[v] {
		rev = append(rev, v)
	}
	rev = append(rev, r.Source)

	path := make([]V, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}
	return path, nil
}

// Reachable reports whether v was settled.
func (r *Result[V]) Reachable(v V) bool {
	_, ok := r.Dist[v]
	return ok
}

// Eccentricity returns the largest settled distance.
func (r *Result[V]) Eccentricity() int {
	ecc := 0
	for _, d := range r.Dist {
		if d > ecc {
			ecc = d
		}
	}
	return ecc
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V core.Node] struct {
	g    core.Reader[V]     // The input graph; read-only within Dijkstra.
	cfg  Options[V]         // Configuration (target, distance cap).
	res  *Result[V]         // Settled output.
	tent map[V]int          // Tentative distances of queued vertices.
	prev map[V]core.Edge[V] // Edge that produced each tentative distance.
	pq   *pqueue.Heap[V]    // Min-heap keyed by tentative distance.
}

func newRunner[V core.Node](g core.Reader[V], source V, cfg Options[V]) *runner[V] {
	n := g.Order()
	return &runner[V]{
		g:   g,
		cfg: cfg,
		res: &Result[V]{
			Source: source,
			Dist:   make(map[V]int, n),
			Prev:   make(map[V]V, n),
			Via:    make(map[V]core.Edge[V], n),
		},
		tent: make(map[V]int, n),
		prev: make(map[V]core.Edge[V], n),
		pq:   pqueue.New[V](pqueue.Min),
	}
}

// init queues the source at distance zero.
func (r *runner[V]) init() {
	r.tent[r.res.Source] = 0
	_ = r.pq.Add(r.res.Source, 0)
}

// process settles vertices in distance order until the heap drains or the
// target is settled.
func (r *runner[V]) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the closest queued vertex; its distance is now final.
		u, err := r.pq.Poll()
		if err != nil {
			return err
		}
		d := r.tent[u]
		delete(r.tent, u)
		r.res.Dist[u] = d
		r.res.Order = append(r.res.Order, u)
		if e, ok := r.prev[u]; ok {
			r.res.Prev[u] = e.Other(u)
			r.res.Via[u] = e
			delete(r.prev, u)
		}

		// 2) Early stop on the target.
		if r.cfg.HasTarget && u == r.cfg.Target {
			return nil
		}

		// 3) Relax every edge of u.
		if err = r.relax(u, d); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the tentative distance of every unsettled neighbour of u.
func (r *runner[V]) relax(u V, du int) error {
	edges, err := r.g.IncidentEdges(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get edges of %v: %w", u, err)
	}
	for _, e := range edges {
		w := e.Other(u)
		if _, settled := r.res.Dist[w]; settled {
			continue
		}
		nd := du + e.Length()
		if nd > r.cfg.MaxDistance {
			continue
		}
		old, queued := r.tent[w]
		switch {
		case !queued:
			r.tent[w] = nd
			r.prev[w] = e
			if err = r.pq.Add(w, float64(nd)); err != nil {
				return err
			}
		case nd < old:
			r.tent[w] = nd
			r.prev[w] = e
			if err = r.pq.UpdatePriority(w, float64(nd)); err != nil {
				return err
			}
		}
	}

	return nil
}
