// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/starmap/config"
	"github.com/katalvlaran/starmap/world"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	seed       int64
	backend    string
	index      string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "starmap",
		Short:         "Generate seeded star maps and query their link graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	pf.Int64Var(&a.seed, "seed", 0, "world seed (overrides the config)")
	pf.StringVar(&a.backend, "backend", "", "graph backend: list or matrix")
	pf.StringVar(&a.index, "index", "", "proximity index: grid or rtree")

	root.AddCommand(
		a.generateCmd(),
		a.pathCmd(),
		a.nearestCmd(),
		a.clustersCmd(),
		a.benchCmd(),
	)
	return root
}

// load resolves config (file, env, then flags) and builds the logger.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.World.Seed = a.seed
	}
	if flags.Changed("backend") {
		cfg.World.Backend = a.backend
	}
	if flags.Changed("index") {
		cfg.World.Index = a.index
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger, err = newLogger(cmd.ErrOrStderr(), cfg.Log)
	return err
}

func newLogger(w io.Writer, l config.Log) (*slog.Logger, error) {
	lvl, err := l.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// build generates the configured world.
func (a *app) build(ctx context.Context) (*world.World, error) {
	return world.Build(ctx, a.cfg.World, world.WithLogger(a.logger))
}

// formatPath renders a route as a -> b -> c.
func formatPath(path []world.Site) string {
	parts := make([]string, len(path))
	for i, s := range path {
		parts[i] = s.String()
	}
	return strings.Join(parts, " -> ")
}

func fprintf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
