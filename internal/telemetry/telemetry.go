// SPDX-License-Identifier: MIT

// Package telemetry owns the Prometheus metrics emitted while building worlds.
//
// Every Metrics value carries its own registry, so tests and parallel
// benchmarks never collide on the global default. A nil *Metrics is valid and
// records nothing.
package telemetry

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const namespace = "starmap"

// Build phases observed by BuildSeconds.
const (
	PhaseTriangulate = "triangulate"
	PhaseGraph       = "graph"
	PhasePrune       = "prune"
	PhaseIndex       = "index"
	PhaseDerive      = "derive"
)

// Metrics groups the world-build collectors.
type Metrics struct {
	Registry *prometheus.Registry

	// WorldsBuilt counts finished builds. Labels: backend, index.
	WorldsBuilt *prometheus.CounterVec

	// BuildSeconds measures each build phase. Labels: phase.
	BuildSeconds *prometheus.HistogramVec

	// PointsRejected counts points discarded by triangulation.
	PointsRejected prometheus.Counter

	// LinksPruned counts links removed while thinning the graph.
	LinksPruned prometheus.Counter
}

// New registers a fresh set of collectors on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		WorldsBuilt: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "worlds_built_total",
			Help:      "Worlds built, by graph backend and proximity index.",
		}, []string{"backend", "index"}),
		BuildSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "world_build_seconds",
			Help:      "Duration of each world build phase.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}, []string{"phase"}),
		PointsRejected: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "triangulation_points_rejected_total",
			Help:      "Points dropped by triangulation as duplicates or out of bounds.",
		}),
		LinksPruned: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "links_pruned_total",
			Help:      "Links removed by random pruning.",
		}),
	}
}

// ObservePhase records how long phase took.
func (m *Metrics) ObservePhase(phase string, d time.Duration) {
	if m == nil {
		return
	}
	m.BuildSeconds.WithLabelValues(phase).Observe(d.Seconds())
}

// RecordWorld counts one finished build and its side statistics.
func (m *Metrics) RecordWorld(backend, index string, rejected, pruned int) {
	if m == nil {
		return
	}
	m.WorldsBuilt.WithLabelValues(backend, index).Inc()
	m.PointsRejected.Add(float64(rejected))
	m.LinksPruned.Add(float64(pruned))
}

// WriteText dumps the registry in the Prometheus text exposition format.
func (m *Metrics) WriteText(w io.Writer) error {
	if m == nil {
		return nil
	}
	families, err := m.Registry.Gather()
	if err != nil {
		return fmt.Errorf("telemetry: gather: %w", err)
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("telemetry: encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
