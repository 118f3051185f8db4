// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/starmap/core"
	"github.com/katalvlaran/starmap/delaunay"
	"github.com/katalvlaran/starmap/proximity"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Index kinds for World.Index.
const (
	IndexGrid  = "grid"
	IndexRTree = "rtree"
)

// Config is the full settings tree.
type Config struct {
	World World `yaml:"world"`
	Log   Log   `yaml:"log"`
	Bench Bench `yaml:"bench"`
}

// World drives world generation.
type World struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Seed        int64   `yaml:"seed"`
	MinSites    int     `yaml:"min_sites"`
	MaxSites    int     `yaml:"max_sites"`
	MinResource int     `yaml:"min_resource"`
	MaxResource int     `yaml:"max_resource"`
	Backend     string  `yaml:"backend"`   // list | matrix
	Index       string  `yaml:"index"`     // grid | rtree
	CellSize    float64 `yaml:"cell_size"` // grid cell side
}

// Log selects the slog handler.
type Log struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Bench sizes the parallel generation benchmark.
type Bench struct {
	Runs    int `yaml:"runs"`
	Workers int `yaml:"workers"`
}

// Default returns the stock configuration: a 4096×4096 area with 5 to 750
// sites and 0 to 5000 resource per site.
func Default() Config {
	return Config{
		World: World{
			Width:       4096,
			Height:      4096,
			Seed:        1,
			MinSites:    5,
			MaxSites:    750,
			MinResource: 0,
			MaxResource: 5000,
			Backend:     core.BackendList.String(),
			Index:       IndexGrid,
			CellSize:    64,
		},
		Log:   Log{Level: "info", Format: "text"},
		Bench: Bench{Runs: 32, Workers: 4},
	}
}

// Load reads path over Default(), then applies the environment and validates.
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = decode(bytes.NewReader(data), &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse decodes YAML over Default() and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := decode(bytes.NewReader(data), &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	return cfg, cfg.Validate()
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Marshal renders cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// ApplyEnv overrides fields from STARMAP_* variables found by lookup.
// Malformed numbers fail with ErrInvalid.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"STARMAP_WIDTH", &c.World.Width},
		{"STARMAP_HEIGHT", &c.World.Height},
		{"STARMAP_MIN_SITES", &c.World.MinSites},
		{"STARMAP_MAX_SITES", &c.World.MaxSites},
		{"STARMAP_BENCH_RUNS", &c.Bench.Runs},
		{"STARMAP_BENCH_WORKERS", &c.Bench.Workers},
	}
	for _, f := range ints {
		if v, ok := lookup(f.key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, f.key, v, err)
			}
			*f.dst = n
		}
	}
	if v, ok := lookup("STARMAP_SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: STARMAP_SEED=%q: %v", ErrInvalid, v, err)
		}
		c.World.Seed = n
	}
	strs := []struct {
		key string
		dst *string
	}{
		{"STARMAP_BACKEND", &c.World.Backend},
		{"STARMAP_INDEX", &c.World.Index},
		{"STARMAP_LOG_LEVEL", &c.Log.Level},
		{"STARMAP_LOG_FORMAT", &c.Log.Format},
	}
	for _, f := range strs {
		if v, ok := lookup(f.key); ok {
			*f.dst = v
		}
	}
	return nil
}

// Validate checks every section and joins all failures.
func (c Config) Validate() error {
	return errors.Join(c.World.Validate(), c.Log.Validate(), c.Bench.Validate())
}

// Validate checks the world section.
func (w World) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: world."+format, append([]any{ErrInvalid}, args...)...))
	}
	sized := w.Width >= 0 && w.Height >= 0 && w.Width <= delaunay.MaxCoord && w.Height <= delaunay.MaxCoord
	if !sized {
		fail("width/height must be in [0, %d], got %dx%d", delaunay.MaxCoord, w.Width, w.Height)
	}
	if w.MinSites < 2 {
		fail("min_sites must be ≥ 2, got %d", w.MinSites)
	}
	if w.MaxSites < w.MinSites {
		fail("max_sites %d below min_sites %d", w.MaxSites, w.MinSites)
	}
	if lattice := int64(w.Width+1) * int64(w.Height+1); sized && int64(w.MaxSites) > lattice {
		fail("max_sites %d exceeds the %d lattice points of the area", w.MaxSites, lattice)
	}
	if w.MinResource < 0 || w.MaxResource < w.MinResource {
		fail("resource range [%d, %d] is invalid", w.MinResource, w.MaxResource)
	}
	if _, err := core.ParseBackend(w.Backend); err != nil {
		fail("backend: %v", err)
	}
	switch w.Index {
	case IndexGrid:
		if !(w.CellSize > 0) || math.IsInf(w.CellSize, 0) {
			fail("cell_size must be a positive number, got %v", w.CellSize)
		} else if _, _, ok := proximity.GridSize(w.Area(), w.CellSize); sized && !ok {
			fail("cell_size %v needs more than %d grid cells over %dx%d", w.CellSize, proximity.MaxCells, w.Width, w.Height)
		}
	case IndexRTree:
	default:
		fail("index must be %q or %q, got %q", IndexGrid, IndexRTree, w.Index)
	}
	return errors.Join(errs...)
}

// Validate checks the log section.
func (l Log) Validate() error {
	if _, err := l.SlogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(l.Format) {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("%w: log.format must be text or json, got %q", ErrInvalid, l.Format)
	}
}

// SlogLevel parses Level.
func (l Log) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	return lvl, nil
}

// Validate checks the bench section.
func (b Bench) Validate() error {
	if b.Runs < 1 || b.Workers < 1 {
		return fmt.Errorf("%w: bench.runs and bench.workers must be ≥ 1, got %d/%d", ErrInvalid, b.Runs, b.Workers)
	}
	return nil
}

// BackendKind parses Backend.
func (w World) BackendKind() (core.Backend, error) {
	return core.ParseBackend(w.Backend)
}

// Area is the rectangle sites are drawn from.
func (w World) Area() orb.Bound {
	return orb.Bound{Max: orb.Point{float64(w.Width), float64(w.Height)}}
}
