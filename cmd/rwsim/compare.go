package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/randwalk/experiment"
	"github.com/katalvlaran/randwalk/report"
)

type compareFlags struct {
	config      string
	envFile     string
	seed        int64
	trials      int
	vertices    int
	degree      float64
	agents      []string
	graphs      []string
	attack      int
	workers     int
	maxSteps    int
	format      string
	metricsFile string
}

func newCompareCmd(root *rootFlags) *cobra.Command {
	var flags compareFlags
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare agents × α × graph topologies",
		Long: "compare simulates every agent on every graph type, sweeping α for the\n" +
			"degree- and centrality-biased agents, and prints one status line per run.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompare(cmd, root, &flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.config, "config", "", "YAML settings file")
	f.StringVar(&flags.envFile, "env-file", ".env", "file of RW_* variables, ignored when missing")
	f.Int64VarP(&flags.seed, "seed", "s", 1, "random seed")
	f.IntVarP(&flags.trials, "trials", "N", 100, "trials per agent, α and graph")
	f.IntVarP(&flags.vertices, "vertices", "n", 100, "desired number of vertices")
	f.Float64VarP(&flags.degree, "degree", "k", 2.5, "desired average degree")
	f.StringSliceVarP(&flags.agents, "agents", "a", nil, "comma separated agents (default all)")
	f.StringSliceVarP(&flags.graphs, "graphs", "g", nil, "comma separated graph types")
	f.IntVarP(&flags.attack, "attack", "A", 0, "rewire one edge every N steps (0 disables)")
	f.IntVar(&flags.workers, "workers", 1, "trials run in parallel")
	f.IntVar(&flags.maxSteps, "max-steps", experiment.DefaultMaxSteps, "steps after which a trial aborts")
	f.StringVar(&flags.format, "format", "tsv", "output format: tsv, table or markdown")
	f.StringVar(&flags.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")

	return cmd
}

func runCompare(cmd *cobra.Command, root *rootFlags, flags *compareFlags) error {
	format, err := report.ParseFormat(flags.format)
	if err != nil {
		return err
	}
	cfg, err := experiment.LoadConfig(flags.config, flags.envFile)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	if f.Changed("seed") {
		cfg.Seed = flags.seed
	}
	if f.Changed("trials") {
		cfg.Trials = flags.trials
	}
	if f.Changed("vertices") {
		cfg.Vertices = flags.vertices
	}
	if f.Changed("degree") {
		cfg.AvgDegree = flags.degree
	}
	if f.Changed("agents") {
		cfg.Agents = flags.agents
	}
	if f.Changed("graphs") {
		cfg.Graphs = flags.graphs
	}
	if f.Changed("attack") {
		cfg.AttackInterval = flags.attack
	}
	if f.Changed("workers") {
		cfg.Workers = flags.workers
	}
	if f.Changed("max-steps") {
		cfg.MaxSteps = flags.maxSteps
	}

	var metrics *experiment.Metrics
	if flags.metricsFile != "" {
		metrics = experiment.NewMetrics()
	}
	r := &experiment.Runner{
		Config:  cfg,
		Logger:  newLogger(cmd.ErrOrStderr(), root.verbose),
		Metrics: metrics,
	}
	p := report.NewPrinter(cmd.OutOrStdout(), format, report.Compare)
	if err := r.Run(cmd.Context(), p.Add); err != nil {
		return fmt.Errorf("compare: %w", err)
	}
	if err := p.Flush(); err != nil {
		return err
	}

	return metrics.WriteTextfile(flags.metricsFile)
}
