package experiment

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/katalvlaran/randwalk/centrality"
	"github.com/katalvlaran/randwalk/walk"
)

// SampleAgents are the agents of the sampling experiment.
var SampleAgents = []string{
	"SRW", "BiasedRW", "SARW", "HybridRW", "BloomRW",
	"kHistory_LRU", "kHistory_FIFO", "kHistory", "VARW", "NBRW",
}

// SampleConfig returns the settings of the sampling experiment: average
// degree 3, a 10000-bit filter and every agent at the walker default α.
func SampleConfig() Config {
	cfg := DefaultConfig()
	cfg.AvgDegree = 3
	cfg.Agents = append([]string(nil), SampleAgents...)
	cfg.FilterSize = 10000
	cfg.AlphaSweep = nil
	cfg.DefaultAlpha = walk.DefaultAlpha

	return cfg
}

// Runner executes the full agents × α × graphs comparison of a Config.
type Runner struct {
	Config  Config
	Logger  *slog.Logger
	Metrics *Metrics
}

// Run generates each configured graph in order, then simulates every agent
// and α on it, handing each Summary to emit as soon as it is ready.
//
// One random source seeded with Config.Seed generates all graphs, so the
// graph sequence is reproducible; trials are seeded from Config.Seed too,
// giving every agent the same per-trial seeds. Centrality and spectral
// scores are computed once per graph and shared by all agents.
//
// Run stops at the first error from graph generation, Simulate or emit.
func (r *Runner) Run(ctx context.Context, emit func(Summary) error) error {
	cfg := r.Config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("Run: %w", err)
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	runID := uuid.NewString()
	logger = logger.With("run", runID)
	logger.Info("run started", "graphs", cfg.Graphs, "agents", len(cfg.Agents), "trials", cfg.Trials)

	graphRNG := rand.New(rand.NewSource(cfg.Seed))
	for _, kind := range cfg.Graphs {
		g, err := NewGraph(kind, cfg.Vertices, cfg.AvgDegree, graphRNG)
		if err != nil {
			return fmt.Errorf("Run: %w", err)
		}
		if !centrality.IsConnected(g) {
			logger.Warn("graph is disconnected; walks will abort", "graph", kind)
		}
		an, err := centrality.NewAnalyzer(g)
		if err != nil {
			return fmt.Errorf("Run: %w", err)
		}
		logger.Debug("graph generated", "graph", kind, "vertices", g.VertexCount(), "edges", g.EdgeCount())

		for _, name := range cfg.Agents {
			policy, err := walk.ParsePolicy(name)
			if err != nil {
				return fmt.Errorf("Run: %w", err)
			}
			for _, alpha := range cfg.Alphas(policy) {
				s, err := Simulate(ctx, Trial{
					RunID:          runID,
					Graph:          g,
					Structure:      an,
					Policy:         policy,
					Alpha:          alpha,
					Laziness:       cfg.Laziness,
					FilterSize:     cfg.FilterSize,
					HistorySize:    cfg.HistorySize,
					Start:          cfg.Start,
					Target:         cfg.Target,
					Trials:         cfg.Trials,
					Seed:           cfg.Seed,
					MaxSteps:       cfg.MaxSteps,
					MaxAborts:      cfg.MaxAborts,
					AttackInterval: cfg.AttackInterval,
					Workers:        cfg.Workers,
					Logger:         logger,
					Metrics:        r.Metrics,
				})
				if err != nil {
					return fmt.Errorf("Run(%s, %s, α=%v): %w", kind, policy, alpha, err)
				}
				if err := emit(s); err != nil {
					return err
				}
			}
		}
	}
	logger.Info("run finished")

	return nil
}
