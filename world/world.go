// SPDX-License-Identifier: MIT

package world

import (
	"context"
	"fmt"
	"maps"
	"math/rand"
	"time"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/starmap/config"
	"github.com/katalvlaran/starmap/core"
	"github.com/katalvlaran/starmap/delaunay"
	"github.com/katalvlaran/starmap/graph"
	"github.com/katalvlaran/starmap/internal/telemetry"
	"github.com/katalvlaran/starmap/proximity"
)

// World is a generated map. It is immutable once Build returns.
type World struct {
	cfg      config.World
	sites    []Site // indexed by ID
	origin   Site
	target   Site
	graph    graph.View[Site]
	index    proximity.Index[Site]
	furthest float64
	toTarget int
	stats    Stats
}

// Build generates the world described by cfg.
//
// Implementation:
//   - Stage 1: validate cfg; seed the generator; draw the site count in
//     [MinSites, MaxSites] and triangulate that many lattice points.
//   - Stage 2: shuffle the name list, draw the target id in [1, n−1], then
//     create sites in triangulation order. Site 0 is the origin. Origin and
//     target carry no resource.
//   - Stage 3: add one link per triangulation edge, prune at random.
//   - Stage 4: index sites and derive target distances.
//
// ctx is checked between stages; cancellation returns ctx.Err().
func Build(ctx context.Context, cfg config.World, opts ...Option) (*World, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	backend, err := cfg.BackendKind()
	if err != nil {
		return nil, err
	}

	b := &builder{cfg: cfg, opts: o, phases: make(map[string]time.Duration)}
	rng := rand.New(rand.NewSource(cfg.Seed))

	steps := []struct {
		phase string
		run   func() error
	}{
		{telemetry.PhaseTriangulate, func() error { return b.triangulate(rng) }},
		{telemetry.PhaseGraph, func() error { return b.link(rng, backend) }},
		{telemetry.PhasePrune, func() error { return b.prune(rng) }},
		{telemetry.PhaseIndex, b.buildIndex},
		{telemetry.PhaseDerive, b.derive},
	}
	for _, s := range steps {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		if err = s.run(); err != nil {
			return nil, fmt.Errorf("world: %s: %w", s.phase, err)
		}
		d := time.Since(start)
		b.phases[s.phase] = d
		o.Metrics.ObservePhase(s.phase, d)
		o.Logger.Debug("world phase done", "phase", s.phase, "elapsed", d)
	}

	w := b.world()
	o.Metrics.RecordWorld(backend.String(), cfg.Index, w.stats.Rejected, w.stats.Pruned)
	o.Logger.Info("world built",
		"seed", cfg.Seed,
		"sites", w.stats.Sites,
		"links", w.stats.Links,
		"pruned", w.stats.Pruned,
		"target", w.target.String(),
		"distance_to_target", w.toTarget,
	)
	return w, nil
}

// builder carries state between Build stages.
type builder struct {
	cfg    config.World
	opts   Options
	phases map[string]time.Duration

	tri      *delaunay.Triangulation
	sites    []Site
	byPoint  map[delaunay.Point]Site
	target   int
	graph    *graph.Graph[Site]
	pruned   int
	index    proximity.Index[Site]
	furthest float64
	toTarget int
}

func (b *builder) triangulate(rng *rand.Rand) error {
	n := rng.Intn(b.cfg.MaxSites-b.cfg.MinSites+1) + b.cfg.MinSites
	tri, err := delaunay.Random(n, rng, b.cfg.Width, b.cfg.Height)
	if err != nil {
		return err
	}
	b.tri = tri
	return nil
}

func (b *builder) link(rng *rand.Rand, backend core.Backend) error {
	names := newNamer(rng)
	vs := b.tri.Vertices()
	b.target = rng.Intn(len(vs)-1) + 1

	b.sites = make([]Site, len(vs))
	b.byPoint = make(map[delaunay.Point]Site, len(vs))
	for id, p := range vs {
		s := Site{ID: id, X: p.X, Y: p.Y}
		switch id {
		case 0:
			s.Name = OriginName
		case b.target:
			s.Name = TargetName
		default:
			s.Name = names.name(id)
			s.Resource = resource(rng, b.cfg.MinResource, b.cfg.MaxResource)
		}
		b.sites[id] = s
		b.byPoint[p] = s
	}

	g, err := graph.New[Site](graph.WithBackend(backend), graph.WithCapacity(len(vs)))
	if err != nil {
		return err
	}
	for _, s := range b.sites {
		if err = g.AddVertex(s); err != nil {
			return err
		}
	}
	for _, e := range b.tri.Edges() {
		s1, s2 := b.byPoint[e.P], b.byPoint[e.Q]
		edge, err := core.NewEdge(s1, s2, linkLength(s1, s2))
		if err != nil {
			return err
		}
		if err = g.AddEdge(edge); err != nil {
			return err
		}
	}
	b.graph = g
	return nil
}

// resource draws from [lo, hi] with weight w² for uniform w, so small amounts
// are common (mean weight 1/3).
func resource(rng *rand.Rand, lo, hi int) int {
	w := rng.Float64()
	w *= w
	return int(w*float64(hi-lo+1)) + lo
}

func (b *builder) prune(rng *rand.Rand) error {
	n, err := b.graph.PruneRandomEdges(rng)
	b.pruned = n
	return err
}

func (b *builder) buildIndex() error {
	switch b.cfg.Index {
	case config.IndexRTree:
		b.index = proximity.NewTree[Site]()
	default:
		grid, err := proximity.NewGrid[Site](b.cfg.Area(), proximity.WithCellSize(b.cfg.CellSize))
		if err != nil {
			return err
		}
		b.index = grid
	}
	for _, s := range b.sites {
		if err := b.index.Insert(s); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) derive() error {
	target := b.sites[b.target]
	for _, s := range b.sites {
		b.furthest = max(b.furthest, s.DistanceTo(target))
	}
	path, err := b.graph.ShortestPath(b.sites[0], target)
	if err != nil {
		return err
	}
	b.toTarget, err = b.graph.PathLength(path)
	return err
}

func (b *builder) world() *World {
	return &World{
		cfg:      b.cfg,
		sites:    b.sites,
		origin:   b.sites[0],
		target:   b.sites[b.target],
		graph:    b.graph.ReadOnly(),
		index:    b.index,
		furthest: b.furthest,
		toTarget: b.toTarget,
		stats: Stats{
			Sites:       len(b.sites),
			Links:       b.graph.Size(),
			TotalLength: b.graph.EdgeLengthSum(),
			Rejected:    b.tri.Rejected(),
			Pruned:      b.pruned,
			Phases:      b.phases,
		},
	}
}

// Seed returns the generator seed.
func (w *World) Seed() int64 { return w.cfg.Seed }

// Width is the extent of the map along x.
func (w *World) Width() int { return w.cfg.Width }

// Height is the extent of the map along y.
func (w *World) Height() int { return w.cfg.Height }

// Origin is site 0.
func (w *World) Origin() Site { return w.origin }

// Target is the site every route is measured against.
func (w *World) Target() Site { return w.target }

// Sites returns every site ordered by ID.
func (w *World) Sites() []Site {
	out := make([]Site, len(w.sites))
	copy(out, w.sites)
	return out
}

// Site returns the site with the given id, or ErrSiteNotFound.
func (w *World) Site(id int) (Site, error) {
	if id < 0 || id >= len(w.sites) {
		return Site{}, fmt.Errorf("%w: id %d", ErrSiteNotFound, id)
	}
	return w.sites[id], nil
}

// Links returns every link.
func (w *World) Links() []core.Edge[Site] { return w.graph.Edges() }

// Graph exposes read-only graph queries.
func (w *World) Graph() graph.View[Site] { return w.graph }

// Closest returns the site nearest to (x, y).
func (w *World) Closest(x, y float64) (Site, bool) {
	return w.index.Nearest(orb.Point{x, y})
}

// Signal is 1 at the target and falls linearly to 0 at the site furthest
// from it.
func (w *World) Signal(s Site) float64 {
	if w.furthest == 0 {
		return 1
	}
	return 1 - s.DistanceTo(w.target)/w.furthest
}

// FurthestDistance is the largest straight-line distance from any site to
// the target.
func (w *World) FurthestDistance() float64 { return w.furthest }

// DistanceToTarget is the length of the shortest route from origin to target.
func (w *World) DistanceToTarget() int { return w.toTarget }

// Stats summarises the build.
func (w *World) Stats() Stats {
	s := w.stats
	s.Phases = maps.Clone(w.stats.Phases)
	return s
}
