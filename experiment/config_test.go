package experiment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randwalk/walk"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Agents, len(walk.Policies()))
	assert.Equal(t, 10000, cfg.MaxSteps)
	assert.Equal(t, 10, cfg.MaxAborts)
	assert.Equal(t, 1, cfg.Start)

	require.NoError(t, SampleConfig().Validate())
}

func TestConfig_DecodeYAML(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "small.yaml"))
	require.NoError(t, err)

	cfg := DefaultConfig()
	require.NoError(t, cfg.DecodeYAML(data))
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, []string{"SRW", "NBRW", "MERW"}, cfg.Agents)
	assert.Equal(t, []string{"ring", "lattice"}, cfg.Graphs)
	assert.Equal(t, []float64{-0.5, 0.5}, cfg.AlphaSweep)
	assert.Equal(t, 10, cfg.MaxAborts, "keys absent from the file keep their defaults")
	require.NoError(t, cfg.Validate())

	require.ErrorIs(t, cfg.DecodeYAML([]byte("trails: 3\n")), ErrInvalidConfig)
	require.NoError(t, cfg.DecodeYAML(nil))
}

func TestConfig_ApplyEnv(t *testing.T) {
	env := map[string]string{
		"RW_TRIALS":      "12",
		"RW_AVG_DEGREE":  "4.5",
		"RW_SEED":        "-3",
		"RW_AGENTS":      "SRW, LZRW ,",
		"RW_ALPHA_SWEEP": "0.1,0.2",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyEnv(lookup))
	assert.Equal(t, 12, cfg.Trials)
	assert.Equal(t, 4.5, cfg.AvgDegree)
	assert.Equal(t, int64(-3), cfg.Seed)
	assert.Equal(t, []string{"SRW", "LZRW"}, cfg.Agents)
	assert.Equal(t, []float64{0.1, 0.2}, cfg.AlphaSweep)

	env = map[string]string{"RW_WORKERS": "many"}
	require.ErrorIs(t, cfg.ApplyEnv(lookup), ErrInvalidConfig)
	env = map[string]string{"RW_ALPHA_SWEEP": "0.1,x"}
	require.ErrorIs(t, cfg.ApplyEnv(lookup), ErrInvalidConfig)
}

func TestConfig_ValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"trials", func(c *Config) { c.Trials = 0 }},
		{"vertices", func(c *Config) { c.Vertices = 0 }},
		{"degree", func(c *Config) { c.AvgDegree = 0 }},
		{"max steps", func(c *Config) { c.MaxSteps = 0 }},
		{"max aborts", func(c *Config) { c.MaxAborts = 0 }},
		{"attack", func(c *Config) { c.AttackInterval = -1 }},
		{"workers", func(c *Config) { c.Workers = 0 }},
		{"filter", func(c *Config) { c.FilterSize = -1 }},
		{"history", func(c *Config) { c.HistorySize = 0 }},
		{"laziness", func(c *Config) { c.Laziness = 2 }},
		{"no agents", func(c *Config) { c.Agents = nil }},
		{"unknown agent", func(c *Config) { c.Agents = []string{"EmbedRW"} }},
		{"unknown graph", func(c *Config) { c.Graphs = []string{"voronoi"} }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestConfig_Alphas(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultAlphaSweep, cfg.Alphas(walk.NBRW))
	assert.Equal(t, DefaultAlphaSweep, cfg.Alphas(walk.ClosenessRW))
	assert.Equal(t, []float64{0}, cfg.Alphas(walk.SARW))
	assert.Equal(t, []float64{0}, cfg.Alphas(walk.SRW))

	s := SampleConfig()
	assert.Equal(t, []float64{walk.DefaultAlpha}, s.Alphas(walk.NBRW))
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("RW_WORKERS=3\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("RW_WORKERS") })

	cfg, err := LoadConfig(filepath.Join("testdata", "small.yaml"), envFile)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Trials)
	assert.Equal(t, 3, cfg.Workers, "env file overrides the YAML file")

	_, err = LoadConfig("", filepath.Join(dir, "missing.env"))
	require.NoError(t, err, "a missing env file is not an error")

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"), "")
	require.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitList(" a,,b ,"))
	assert.Nil(t, SplitList(""))
}
