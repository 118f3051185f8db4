// SPDX-License-Identifier: MIT

package world_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/starmap/config"
	"github.com/katalvlaran/starmap/world"
)

func BenchmarkBuild(b *testing.B) {
	for _, index := range []string{config.IndexGrid, config.IndexRTree} {
		b.Run(index, func(b *testing.B) {
			cfg := config.Default().World
			cfg.MinSites, cfg.MaxSites = 300, 300
			cfg.Index = index
			for i := 0; i < b.N; i++ {
				cfg.Seed = int64(i)
				if _, err := world.Build(context.Background(), cfg); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
