package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randwalk/report"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func TestCompare_TSV(t *testing.T) {
	metricsFile := filepath.Join(t.TempDir(), "rwsim.prom")
	out, logs, err := execute(t, "compare",
		"--env-file", "", "-N", "3", "-n", "16", "-a", "SRW,NBRW", "-g", "ring",
		"--metrics-file", metricsFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1+1+5, "header, SRW, NBRW at five α")
	assert.Equal(t, report.Header(), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "SRW "))
	assert.True(t, strings.HasPrefix(lines[2], "NBRW -0.4"))
	assert.Contains(t, logs, "run started")

	data, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "randwalk_experiment_trials_total")
}

func TestCompare_ConfigFileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trials: 2\nvertices: 9\nagents: [MERW]\ngraphs: [lattice]\n"), 0o600))

	out, _, err := execute(t, "compare", "--env-file", "", "--config", path, "-g", "ring", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "MERW")
	assert.Contains(t, out, "ring")
	assert.NotContains(t, out, "lattice", "flags override the config file")
}

func TestCompare_Errors(t *testing.T) {
	_, _, err := execute(t, "compare", "--env-file", "", "-a", "EmbedRW")
	require.Error(t, err)

	_, _, err = execute(t, "compare", "--env-file", "", "--format", "csv")
	require.ErrorIs(t, err, report.ErrUnknownFormat)

	_, _, err = execute(t, "compare", "extra")
	require.Error(t, err)
}

func TestSample(t *testing.T) {
	out, _, err := execute(t, "sample", "-N", "2", "-n", "16", "-g", "ring,btree", "--workers", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1+2*10)
	assert.Equal(t, report.SampleHeader(), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "SRW        ring "))
}
