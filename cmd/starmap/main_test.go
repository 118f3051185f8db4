// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/starmap/config"
	"github.com/katalvlaran/starmap/graph"
	"github.com/katalvlaran/starmap/world"
)

const smallConfig = `world:
  width: 800
  height: 600
  seed: 7
  min_sites: 20
  max_sites: 40
  min_resource: 10
  max_resource: 100
log:
  level: error
bench:
  runs: 3
  workers: 2
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "starmap.yaml")
	require.NoError(t, os.WriteFile(path, []byte(smallConfig), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", writeConfig(t)}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerate(t *testing.T) {
	out, err := run(t, "generate")
	require.NoError(t, err)
	assert.Contains(t, out, "seed:      7")
	assert.Contains(t, out, "area:      800x600")
	assert.Contains(t, out, world.OriginName+"#0")
	assert.Contains(t, out, world.TargetName+"#")

	again, err := run(t, "generate")
	require.NoError(t, err)
	assert.Equal(t, out, again)

	other, err := run(t, "--seed", "8", "generate")
	require.NoError(t, err)
	assert.Contains(t, other, "seed:      8")
	assert.NotEqual(t, out, other)
}

func TestGenerate_BackendsAgree(t *testing.T) {
	list, err := run(t, "--backend", "list", "generate")
	require.NoError(t, err)
	matrix, err := run(t, "--backend", "matrix", "--index", "rtree", "generate")
	require.NoError(t, err)
	assert.Equal(t, list, matrix)
}

func TestPath(t *testing.T) {
	out, err := run(t, "path", "0", "1")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], world.OriginName+"#0"))
	assert.True(t, strings.HasSuffix(lines[0], "#1"))
	assert.True(t, strings.HasPrefix(lines[1], "length: "))

	_, err = run(t, "path", "0", "9999")
	assert.ErrorIs(t, err, world.ErrSiteNotFound)

	_, err = run(t, "path", "0", "x")
	assert.Error(t, err)

	_, err = run(t, "path", "0")
	assert.Error(t, err)
}

func TestNearest(t *testing.T) {
	out, err := run(t, "nearest", "400", "300")
	require.NoError(t, err)
	assert.Contains(t, out, "distance ")
	assert.Contains(t, out, "signal ")

	_, err = run(t, "nearest", "a", "1")
	assert.Error(t, err)
}

func TestClusters(t *testing.T) {
	out, err := run(t, "clusters", "3")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)
	assert.Contains(t, out, "cluster 0:")

	_, err = run(t, "clusters", "0")
	assert.ErrorIs(t, err, graph.ErrBadComponentCount)
}

func TestBench(t *testing.T) {
	out, err := run(t, "bench", "--runs", "4", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "# worlds 4,")
	assert.Contains(t, out, "starmap_worlds_built_total")
	assert.Contains(t, out, "starmap_world_build_seconds")

	out, err = run(t, "bench")
	require.NoError(t, err)
	assert.Contains(t, out, "# worlds 3,")
}

func TestInvalidFlags(t *testing.T) {
	_, err := run(t, "--backend", "tree", "generate")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = run(t, "--log-level", "loud", "generate")
	assert.Error(t, err)
}

func TestJSONLogs(t *testing.T) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--config", writeConfig(t), "--log-level", "info", "--log-format", "json", "generate"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, errOut.String(), `"msg":"world built"`)
}
