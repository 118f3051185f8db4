// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/starmap/internal/telemetry"
	"github.com/katalvlaran/starmap/world"
)

// benchTotals aggregates results across parallel builds.
type benchTotals struct {
	mu       sync.Mutex
	worlds   int
	sites    int
	links    int
	slowest  time.Duration
	fastest  time.Duration
	duration time.Duration
}

func (t *benchTotals) add(st world.Stats, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.worlds++
	t.sites += st.Sites
	t.links += st.Links
	t.duration += d
	t.slowest = max(t.slowest, d)
	if t.fastest == 0 || d < t.fastest {
		t.fastest = d
	}
}

func (a *app) benchCmd() *cobra.Command {
	var runs, workers int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Build many worlds in parallel and dump metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("runs") {
				runs = a.cfg.Bench.Runs
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Bench.Workers
			}
			runID := uuid.NewString()
			logger := a.logger.With("run_id", runID)
			metrics := telemetry.New()
			totals := &benchTotals{}

			logger.Info("bench started", "runs", runs, "workers", workers, "seed", a.cfg.World.Seed)
			start := time.Now()
			if err := a.runBench(cmd.Context(), runs, workers, metrics, totals); err != nil {
				return err
			}
			wall := time.Since(start)
			logger.Info("bench finished", "worlds", totals.worlds, "elapsed", wall)

			out := cmd.OutOrStdout()
			fprintf(out, "# run %s\n", runID)
			fprintf(out, "# worlds %d, sites %d, links %d\n", totals.worlds, totals.sites, totals.links)
			if totals.worlds > 0 {
				fprintf(out, "# build mean %v, fastest %v, slowest %v, wall %v\n",
					totals.duration/time.Duration(totals.worlds), totals.fastest, totals.slowest, wall)
			}
			return metrics.WriteText(out)
		},
	}
	cmd.Flags().IntVar(&runs, "runs", 0, "number of worlds to build")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel builders")
	return cmd
}

// runBench builds runs worlds with consecutive seeds on at most workers
// goroutines. The first failure cancels the rest.
func (a *app) runBench(ctx context.Context, runs, workers int, m *telemetry.Metrics, totals *benchTotals) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i := 0; i < runs; i++ {
		cfg := a.cfg.World
		cfg.Seed += int64(i)
		g.Go(func() error {
			start := time.Now()
			w, err := world.Build(ctx, cfg, world.WithLogger(a.logger), world.WithMetrics(m))
			if err != nil {
				return err
			}
			totals.add(w.Stats(), time.Since(start))
			return nil
		})
	}
	return g.Wait()
}
