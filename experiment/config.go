package experiment

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/randwalk/walk"
)

// ErrInvalidConfig is returned when a Config fails validation or cannot be parsed.
var ErrInvalidConfig = errors.New("experiment: invalid config")

// EnvPrefix prefixes every environment override, e.g. RW_TRIALS=50.
const EnvPrefix = "RW_"

// DefaultGraphs are the topologies compared when none are configured.
var DefaultGraphs = []string{
	"random", "ba", "barandom", "ring", "tree", "btree", "lattice", "db", "3-regular", "4-regular", "li_maini",
}

// DefaultAlphaSweep is the bias exponents tried for agents whose behavior
// depends on α through a degree or centrality bias.
var DefaultAlphaSweep = []float64{-0.4, -0.2, 0, 0.2, 0.4}

// Config drives a comparison run. Zero-valued fields mean "use the default"
// only where noted; LoadConfig starts from DefaultConfig.
type Config struct {
	Seed      int64    `yaml:"seed"`
	Trials    int      `yaml:"trials"`
	Vertices  int      `yaml:"vertices"`
	AvgDegree float64  `yaml:"avg_degree"`
	Agents    []string `yaml:"agents"`
	Graphs    []string `yaml:"graphs"`

	// AttackInterval > 0 rewires one edge every AttackInterval steps.
	AttackInterval int `yaml:"attack_interval"`
	MaxSteps       int `yaml:"max_steps"`
	MaxAborts      int `yaml:"max_aborts"`

	Start int `yaml:"start"`
	// Target 0 selects the largest vertex ID of each graph.
	Target int `yaml:"target"`

	FilterSize  int     `yaml:"filter_size"`
	HistorySize int     `yaml:"history_size"`
	Laziness    float64 `yaml:"laziness"`

	// AlphaSweep applies to NBRW, BiasedRW and the centrality-biased agents;
	// every other agent runs once with DefaultAlpha.
	AlphaSweep   []float64 `yaml:"alpha_sweep"`
	DefaultAlpha float64   `yaml:"default_alpha"`

	Workers int `yaml:"workers"`
}

// DefaultConfig returns the settings of the full comparison experiment.
func DefaultConfig() Config {
	agents := make([]string, 0, len(walk.Policies()))
	for _, p := range walk.Policies() {
		agents = append(agents, p.String())
	}

	return Config{
		Seed:         1,
		Trials:       100,
		Vertices:     100,
		AvgDegree:    2.5,
		Agents:       agents,
		Graphs:       append([]string(nil), DefaultGraphs...),
		MaxSteps:     10000,
		MaxAborts:    10,
		Start:        1,
		FilterSize:   walk.DefaultFilterSize,
		HistorySize:  walk.DefaultHistorySize,
		Laziness:     walk.DefaultLaziness,
		AlphaSweep:   append([]float64(nil), DefaultAlphaSweep...),
		DefaultAlpha: 0,
		Workers:      1,
	}
}

// LoadConfig builds a Config from defaults, then the YAML file at path (if
// path is non-empty), then the environment. Variables found in envFile (if
// non-empty and present) are applied as if exported, without overriding the
// real environment.
func LoadConfig(path, envFile string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("LoadConfig(%s): %w", path, err)
		}
		if err := cfg.DecodeYAML(data); err != nil {
			return cfg, fmt.Errorf("LoadConfig(%s): %w", path, err)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("LoadConfig: env file %s: %w", envFile, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// DecodeYAML overlays the YAML document in data onto c. Unknown keys are
// rejected.
func (c *Config) DecodeYAML(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// ApplyEnv overrides fields from RW_* variables resolved through lookup.
// Lists are comma separated.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"TRIALS":          &c.Trials,
		"VERTICES":        &c.Vertices,
		"ATTACK_INTERVAL": &c.AttackInterval,
		"MAX_STEPS":       &c.MaxSteps,
		"MAX_ABORTS":      &c.MaxAborts,
		"START":           &c.Start,
		"TARGET":          &c.Target,
		"FILTER_SIZE":     &c.FilterSize,
		"HISTORY_SIZE":    &c.HistorySize,
		"WORKERS":         &c.Workers,
	}
	for key, dst := range ints {
		if v, ok := lookup(EnvPrefix + key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%s%s=%q: %w", EnvPrefix, key, v, ErrInvalidConfig)
			}
			*dst = n
		}
	}

	floats := map[string]*float64{
		"AVG_DEGREE":    &c.AvgDegree,
		"LAZINESS":      &c.Laziness,
		"DEFAULT_ALPHA": &c.DefaultAlpha,
	}
	for key, dst := range floats {
		if v, ok := lookup(EnvPrefix + key); ok {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return fmt.Errorf("%s%s=%q: %w", EnvPrefix, key, v, ErrInvalidConfig)
			}
			*dst = f
		}
	}

	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		s, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED=%q: %w", EnvPrefix, v, ErrInvalidConfig)
		}
		c.Seed = s
	}
	if v, ok := lookup(EnvPrefix + "AGENTS"); ok {
		c.Agents = SplitList(v)
	}
	if v, ok := lookup(EnvPrefix + "GRAPHS"); ok {
		c.Graphs = SplitList(v)
	}
	if v, ok := lookup(EnvPrefix + "ALPHA_SWEEP"); ok {
		sweep, err := ParseFloats(v)
		if err != nil {
			return fmt.Errorf("%sALPHA_SWEEP: %w", EnvPrefix, err)
		}
		c.AlphaSweep = sweep
	}

	return nil
}

// Validate checks ranges and that every agent and graph name is known.
func (c Config) Validate() error {
	switch {
	case c.Trials < 1:
		return fmt.Errorf("trials=%d: %w", c.Trials, ErrInvalidConfig)
	case c.Vertices < 1:
		return fmt.Errorf("vertices=%d: %w", c.Vertices, ErrInvalidConfig)
	case !(c.AvgDegree > 0):
		return fmt.Errorf("avg_degree=%v: %w", c.AvgDegree, ErrInvalidConfig)
	case c.MaxSteps < 1:
		return fmt.Errorf("max_steps=%d: %w", c.MaxSteps, ErrInvalidConfig)
	case c.MaxAborts < 1:
		return fmt.Errorf("max_aborts=%d: %w", c.MaxAborts, ErrInvalidConfig)
	case c.AttackInterval < 0:
		return fmt.Errorf("attack_interval=%d: %w", c.AttackInterval, ErrInvalidConfig)
	case c.Workers < 1:
		return fmt.Errorf("workers=%d: %w", c.Workers, ErrInvalidConfig)
	case c.FilterSize < 0:
		return fmt.Errorf("filter_size=%d: %w", c.FilterSize, ErrInvalidConfig)
	case c.HistorySize < 1:
		return fmt.Errorf("history_size=%d: %w", c.HistorySize, ErrInvalidConfig)
	case !(c.Laziness >= 0 && c.Laziness <= 1):
		return fmt.Errorf("laziness=%v: %w", c.Laziness, ErrInvalidConfig)
	case len(c.Agents) == 0 || len(c.Graphs) == 0:
		return fmt.Errorf("no agents or graphs: %w", ErrInvalidConfig)
	}
	for _, a := range c.Agents {
		if _, err := walk.ParsePolicy(a); err != nil {
			return fmt.Errorf("agent %q: %w: %w", a, ErrInvalidConfig, err)
		}
	}
	for _, g := range c.Graphs {
		if !IsGraphKind(g) {
			return fmt.Errorf("graph %q: %w: %w", g, ErrInvalidConfig, ErrUnknownGraph)
		}
	}

	return nil
}

// Alphas returns the bias exponents policy p is run with.
func (c Config) Alphas(p walk.Policy) []float64 {
	switch p {
	case walk.NBRW, walk.BiasedRW,
		walk.EigenvecRW, walk.ClosenessRW, walk.BetweennessRW, walk.EccentricityRW:
		if len(c.AlphaSweep) > 0 {
			return c.AlphaSweep
		}
	}

	return []float64{c.DefaultAlpha}
}

// SplitList splits a comma separated list, dropping blanks.
func SplitList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}

	return out
}

// ParseFloats parses a comma separated list of numbers.
func ParseFloats(s string) ([]float64, error) {
	var out []float64
	for _, f := range SplitList(s) {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", f, ErrInvalidConfig)
		}
		out = append(out, x)
	}

	return out, nil
}
