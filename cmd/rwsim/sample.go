package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/randwalk/experiment"
	"github.com/katalvlaran/randwalk/report"
)

type sampleFlags struct {
	seed     int64
	trials   int
	vertices int
	graphs   []string
	workers  int
	format   string
}

func newSampleCmd(root *rootFlags) *cobra.Command {
	var flags sampleFlags
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Mean cover and hitting times of the sampling agents",
		Long: "sample runs the graph-sampling agents (SRW, BiasedRW, SARW, HybridRW,\n" +
			"BloomRW, the k-history agents, VARW and NBRW) with average degree 3.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSample(cmd, root, &flags)
		},
	}

	f := cmd.Flags()
	f.Int64VarP(&flags.seed, "seed", "s", 1, "random seed")
	f.IntVarP(&flags.trials, "trials", "N", 100, "trials per agent and graph")
	f.IntVarP(&flags.vertices, "vertices", "n", 100, "desired number of vertices")
	f.StringSliceVarP(&flags.graphs, "graphs", "g", experiment.DefaultGraphs, "comma separated graph types")
	f.IntVar(&flags.workers, "workers", 1, "trials run in parallel")
	f.StringVar(&flags.format, "format", "tsv", "output format: tsv, table or markdown")

	return cmd
}

func runSample(cmd *cobra.Command, root *rootFlags, flags *sampleFlags) error {
	format, err := report.ParseFormat(flags.format)
	if err != nil {
		return err
	}
	cfg := experiment.SampleConfig()
	cfg.Seed = flags.seed
	cfg.Trials = flags.trials
	cfg.Vertices = flags.vertices
	cfg.Graphs = flags.graphs
	cfg.Workers = flags.workers

	r := &experiment.Runner{Config: cfg, Logger: newLogger(cmd.ErrOrStderr(), root.verbose)}
	p := report.NewPrinter(cmd.OutOrStdout(), format, report.Sample)
	if err := r.Run(cmd.Context(), p.Add); err != nil {
		return fmt.Errorf("sample: %w", err)
	}

	return p.Flush()
}
