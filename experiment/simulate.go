package experiment

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/randwalk/centrality"
	"github.com/katalvlaran/randwalk/core"
	"github.com/katalvlaran/randwalk/stats"
	"github.com/katalvlaran/randwalk/walk"
)

// Defaults applied by Simulate to zero-valued Trial fields.
const (
	DefaultMaxSteps  = 10000
	DefaultMaxAborts = 10
)

// ctxCheckInterval is how many steps a trial runs between cancellation checks.
const ctxCheckInterval = 1024

// Estimate is a sample mean with its 95% confidence half-width.
type Estimate struct {
	Mean   float64
	Conf95 float64
}

func estimate(s *stats.Sample) Estimate {
	m, c := s.MeanConf95()

	return Estimate{Mean: m, Conf95: c}
}

// Summary aggregates the trials of one (agent, α, graph) combination.
// Statistics cover completed trials only; aborted trials are counted in
// Count and Aborts but contribute no samples, so any abort biases Cover,
// Target and MeanHitting low compared with folding in the capped walk.
type Summary struct {
	RunID    string
	Agent    string
	Policy   walk.Policy
	Alpha    float64
	Graph    string
	Vertices int
	Edges    int

	Count  int
	Aborts int

	Cover       Estimate // steps until every vertex was visited
	Target      Estimate // hitting time of the target vertex
	MeanHitting Estimate // per-trial mean hitting time over all vertices
}

// Label returns the agent name, followed by α when the agent is α-sensitive
// and α is non-zero, e.g. "NBRW -0.4".
func (s Summary) Label() string {
	if !s.Policy.UsesAlpha() || s.Alpha == 0 {
		return s.Agent
	}

	return s.Agent + " " + strconv.FormatFloat(s.Alpha, 'g', -1, 64)
}

// Trial describes a batch of independent walks of one agent on one graph.
// Walker parameters are passed through as is (Laziness 0 means never lazy);
// zero HistorySize, MaxSteps, MaxAborts and Workers select defaults, zero
// Target selects the largest vertex ID.
type Trial struct {
	RunID string
	Graph *core.Graph
	// Structure is shared read-only by all trials; when nil and the policy
	// needs one, an Analyzer of Graph is created.
	Structure walk.Structure

	Policy      walk.Policy
	Alpha       float64
	Laziness    float64
	FilterSize  int
	HistorySize int
	Start       int
	Target      int

	Trials         int
	Seed           int64 // trial i draws from a source seeded with Seed+i
	MaxSteps       int
	MaxAborts      int
	AttackInterval int
	Workers        int

	Logger  *slog.Logger
	Metrics *Metrics
}

type outcome struct {
	ran         bool
	aborted     bool
	cover       int
	target      int
	meanHitting float64
}

// Simulate runs t.Trials walks and summarizes them.
//
// Implementation:
//   - Stage 1: Resolve defaults, the target vertex and the shared Structure.
//   - Stage 2: Launch trials in index order on at most t.Workers goroutines;
//     stop launching once t.MaxAborts trials have aborted.
//   - Stage 3: Each trial walks until it covers the graph or exceeds
//     t.MaxSteps (abort). With AttackInterval > 0 it walks a private clone
//     of the graph and calls Attack every AttackInterval steps.
//   - Stage 4: Aggregate in trial order up to and including the
//     MaxAborts-th abort, so the summary does not depend on scheduling.
//
// A walker error (isolated vertex, collapsed weights) is fatal and returned.
func Simulate(ctx context.Context, t Trial) (Summary, error) {
	if t.Graph == nil {
		return Summary{}, fmt.Errorf("Simulate: %w", walk.ErrNilGraph)
	}
	t = t.withDefaults()
	if t.Target == 0 {
		last, ok := LastVertex(t.Graph)
		if !ok {
			return Summary{}, fmt.Errorf("Simulate: empty graph: %w", walk.ErrStartNotFound)
		}
		t.Target = last
	}
	if !t.Graph.HasVertex(t.Target) {
		return Summary{}, fmt.Errorf("Simulate: target %d: %w", t.Target, core.ErrVertexNotFound)
	}
	if t.Structure == nil && t.Policy.NeedsStructure() {
		an, err := centrality.NewAnalyzer(t.Graph)
		if err != nil {
			return Summary{}, fmt.Errorf("Simulate: %w", err)
		}
		t.Structure = an
	}

	results := make([]outcome, t.Trials)
	var aborts atomic.Int64
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(t.Workers)
	for i := 0; i < t.Trials; i++ {
		if aborts.Load() >= int64(t.MaxAborts) || gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			out, err := runTrial(gctx, &t, i)
			if err != nil {
				t.Metrics.ObserveTrial(t.Policy.String(), t.Graph.Name(), OutcomeFailed, 0)
				return fmt.Errorf("Simulate(%s, trial=%d): %w", t.Policy, i, err)
			}
			results[i] = out
			if out.aborted {
				aborts.Add(1)
				t.Metrics.ObserveTrial(t.Policy.String(), t.Graph.Name(), OutcomeAborted, out.cover)
				t.Logger.Warn("trial aborted", "run", t.RunID, "agent", t.Policy.String(),
					"graph", t.Graph.Name(), "trial", i, "steps", out.cover)

				return nil
			}
			t.Metrics.ObserveTrial(t.Policy.String(), t.Graph.Name(), OutcomeCovered, out.cover)
			t.Logger.Debug("trial covered", "run", t.RunID, "agent", t.Policy.String(),
				"graph", t.Graph.Name(), "trial", i, "steps", out.cover)

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Summary{}, err
	}
	if err := ctx.Err(); err != nil {
		return Summary{}, fmt.Errorf("Simulate: %w", err)
	}

	return t.summarize(results), nil
}

func (t Trial) withDefaults() Trial {
	if t.Trials < 1 {
		t.Trials = 1
	}
	if t.MaxSteps < 1 {
		t.MaxSteps = DefaultMaxSteps
	}
	if t.MaxAborts < 1 {
		t.MaxAborts = DefaultMaxAborts
	}
	if t.Workers < 1 {
		t.Workers = 1
	}
	if t.HistorySize < 1 {
		t.HistorySize = walk.DefaultHistorySize
	}
	if t.Logger == nil {
		t.Logger = slog.New(slog.DiscardHandler)
	}
	if t.RunID == "" {
		t.RunID = uuid.NewString()
	}

	return t
}

// runTrial performs walk number idx.
func runTrial(ctx context.Context, t *Trial, idx int) (outcome, error) {
	rng := rand.New(rand.NewSource(t.Seed + int64(idx)))
	g := t.Graph
	if t.AttackInterval > 0 {
		g = g.Clone()
	}

	opts := []walk.Option{
		walk.WithRand(rng),
		walk.WithAlpha(t.Alpha),
		walk.WithLaziness(t.Laziness),
		walk.WithFilterSize(t.FilterSize),
		walk.WithHistorySize(t.HistorySize),
		walk.WithTarget(t.Target),
	}
	if t.Structure != nil {
		opts = append(opts, walk.WithStructure(t.Structure))
	}
	a, err := walk.New(g, t.Start, t.Policy, opts...)
	if err != nil {
		return outcome{}, err
	}

	n := g.VertexCount()
	for a.Covered() < n {
		if a.Step()%ctxCheckInterval == 0 && ctx.Err() != nil {
			return outcome{}, ctx.Err()
		}
		if err := a.Advance(); err != nil {
			return outcome{}, err
		}
		if a.Step() > t.MaxSteps {
			return outcome{ran: true, aborted: true, cover: a.Step()}, nil
		}
		if t.AttackInterval > 0 && a.Step()%t.AttackInterval == 0 {
			rewired, err := Attack(a, g, rng)
			if err != nil {
				return outcome{}, err
			}
			t.Metrics.ObserveAttack(rewired)
		}
	}

	hit, _ := a.TargetHit()
	var hs stats.Sample
	for _, h := range a.HittingTimes() {
		hs.Add(float64(h))
	}

	return outcome{
		ran:         true,
		cover:       a.Step(),
		target:      hit,
		meanHitting: stats.Mean(hs.Values()),
	}, nil
}

// summarize folds outcomes in trial order, stopping at the MaxAborts-th abort.
func (t Trial) summarize(results []outcome) Summary {
	s := Summary{
		RunID:    t.RunID,
		Agent:    t.Policy.String(),
		Policy:   t.Policy,
		Alpha:    t.Alpha,
		Graph:    t.Graph.Name(),
		Vertices: t.Graph.VertexCount(),
		Edges:    t.Graph.EdgeCount(),
	}

	var cover, target, meanHit stats.Sample
	for _, r := range results {
		if !r.ran {
			break
		}
		s.Count++
		if r.aborted {
			s.Aborts++
			if s.Aborts >= t.MaxAborts {
				break
			}
			continue
		}
		cover.Add(float64(r.cover))
		target.Add(float64(r.target))
		meanHit.Add(r.meanHitting)
	}
	s.Cover = estimate(&cover)
	s.Target = estimate(&target)
	s.MeanHitting = estimate(&meanHit)

	return s
}
