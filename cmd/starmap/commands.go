// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/spf13/cobra"
)

func (a *app) generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Build a world and print its summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := a.build(cmd.Context())
			if err != nil {
				return err
			}
			g := w.Graph()
			route, err := g.ShortestPath(w.Origin(), w.Target())
			if err != nil {
				return err
			}
			diameter, err := g.Diameter()
			if err != nil {
				return err
			}
			center, err := g.Center()
			if err != nil {
				return err
			}

			st := w.Stats()
			out := cmd.OutOrStdout()
			fprintf(out, "seed:      %d\n", w.Seed())
			fprintf(out, "area:      %dx%d\n", w.Width(), w.Height())
			fprintf(out, "sites:     %d\n", st.Sites)
			fprintf(out, "links:     %d (total length %d, pruned %d)\n", st.Links, st.TotalLength, st.Pruned)
			fprintf(out, "origin:    %v at (%d,%d)\n", w.Origin(), w.Origin().X, w.Origin().Y)
			fprintf(out, "target:    %v at (%d,%d)\n", w.Target(), w.Target().X, w.Target().Y)
			fprintf(out, "route:     %s\n", formatPath(route))
			fprintf(out, "distance:  %d\n", w.DistanceToTarget())
			fprintf(out, "diameter:  %d\n", diameter)
			fprintf(out, "center:    %v\n", center)
			return nil
		},
	}
}

func (a *app) pathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path FROM TO",
		Short: "Print the shortest route between two site ids",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseInts(args)
			if err != nil {
				return err
			}
			w, err := a.build(cmd.Context())
			if err != nil {
				return err
			}
			from, err := w.Site(ids[0])
			if err != nil {
				return err
			}
			to, err := w.Site(ids[1])
			if err != nil {
				return err
			}
			path, err := w.Graph().ShortestPath(from, to)
			if err != nil {
				return err
			}
			n, err := w.Graph().PathLength(path)
			if err != nil {
				return err
			}
			fprintf(cmd.OutOrStdout(), "%s\nlength: %d\n", formatPath(path), n)
			return nil
		},
	}
}

func (a *app) nearestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nearest X Y",
		Short: "Print the site closest to a point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("x: %w", err)
			}
			y, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("y: %w", err)
			}
			w, err := a.build(cmd.Context())
			if err != nil {
				return err
			}
			s, ok := w.Closest(x, y)
			if !ok {
				return fmt.Errorf("world has no sites")
			}
			d := planar.Distance(orb.Point{x, y}, s.Location())
			fprintf(cmd.OutOrStdout(), "%v at (%d,%d) distance %.2f signal %.3f resource %d\n",
				s, s.X, s.Y, d, w.Signal(s), s.Resource)
			return nil
		},
	}
}

func (a *app) clustersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clusters K",
		Short: "Split the world into K minimum spanning components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("k: %w", err)
			}
			w, err := a.build(cmd.Context())
			if err != nil {
				return err
			}
			comps, err := w.Graph().MinimumSpanningComponents(k)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, c := range comps {
				resource := 0
				for _, s := range c.Vertices() {
					resource += s.Resource
				}
				fprintf(out, "cluster %d: %d sites, %d links, length %d, resource %d\n",
					i, c.Order(), c.Size(), c.EdgeLengthSum(), resource)
			}
			return nil
		},
	}
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = n
	}
	return out, nil
}
