// SPDX-License-Identifier: MIT

package world

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/starmap/internal/telemetry"
)

// ErrSiteNotFound indicates an id with no site in this world.
var ErrSiteNotFound = errors.New("world: site not found")

// Options configures Build.
type Options struct {
	Logger  *slog.Logger
	Metrics *telemetry.Metrics
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions discards logs and records no metrics.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithLogger routes build records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records build observations on m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// Stats summarises one build.
type Stats struct {
	Sites       int
	Links       int
	TotalLength int
	Rejected    int // duplicate lattice draws
	Pruned      int // links removed after triangulation
	Phases      map[string]time.Duration
}
