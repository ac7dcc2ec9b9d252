package walk

import (
	"fmt"
	"io"
	"maps"
	"math"
	"math/rand"
	"slices"
	"time"

	"github.com/katalvlaran/randwalk/bloom"
	"github.com/katalvlaran/randwalk/history"
)

// Epsilon is the weight given to discouraged transitions. It is small but
// not zero, so a walker whose every neighbor is discouraged still moves.
const Epsilon = 1e-4

// Graph is the read-only view an Agent walks on. core.Graph satisfies it.
type Graph interface {
	Neighbors(v int) ([]int, error)
	Degree(v int) (int, error)
	HasEdge(u, v int) bool
	VertexCount() int
}

// Structure supplies per-vertex structural scores and the dominant
// eigenpair of the adjacency matrix. centrality.Analyzer satisfies it.
type Structure interface {
	Eigenvector() (map[int]float64, error)
	Closeness() (map[int]float64, error)
	Betweenness() (map[int]float64, error)
	Eccentricity() (map[int]float64, error)
	Principal() (lambda float64, vector map[int]float64, err error)
}

// Agent is one random walker bound to a graph for the duration of a run.
// It is not safe for concurrent use; every trial owns its own Agent.
type Agent struct {
	g      Graph
	policy Policy
	rng    *rand.Rand

	alpha     float64
	laziness  float64
	target    int
	hasTarget bool

	// Policy state; only the fields the policy needs are set.
	filter *bloom.Filter
	hist   *history.Buffer
	scores map[int]float64
	lambda float64
	psi    map[int]float64

	current  int
	step     int
	ncovered int
	path     []int
	visits   map[int]int
	hitting  map[int]int

	weights []float64 // scratch reused by PickNext
}

// New places a walker following policy on start.
//
// Implementation:
//   - Stage 1: Validate graph, policy and options.
//   - Stage 2: Validate the start vertex.
//   - Stage 3: Build policy state (filter, history buffer, cached scores, eigenpair).
//   - Stage 4: Place the walker on start; the placement is not a step.
//
// Errors:
//   - ErrNilGraph, ErrUnknownPolicy, ErrInvalidOption, ErrStartNotFound,
//     ErrNeedStructure, ErrDegenerateSpectrum, or a wrapped Structure error.
func New(g Graph, start int, policy Policy, opts ...Option) (*Agent, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !policy.valid() {
		return nil, fmt.Errorf("New(policy=%d): %w", int(policy), ErrUnknownPolicy)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, fmt.Errorf("New(%s): %w", policy, cfg.err)
	}
	if _, err := g.Degree(start); err != nil {
		return nil, fmt.Errorf("New(%s, start=%d): %w: %w", policy, start, ErrStartNotFound, err)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	a := &Agent{
		g:         g,
		policy:    policy,
		rng:       cfg.rng,
		alpha:     cfg.alpha,
		laziness:  cfg.laziness,
		target:    cfg.target,
		hasTarget: cfg.hasTarget,
		visits:    make(map[int]int),
		hitting:   make(map[int]int),
	}
	if err := a.initPolicyState(cfg, start); err != nil {
		return nil, fmt.Errorf("New(%s): %w", policy, err)
	}
	a.MoveTo(start)

	return a, nil
}

// initPolicyState allocates the auxiliary structures of the policy. It runs
// before the initial placement so the start vertex is recorded in them.
func (a *Agent) initPolicyState(cfg config, start int) error {
	var err error
	switch {
	case a.policy.usesFilter():
		a.filter, err = bloom.New(cfg.filterSize)
	case a.policy.usesHistory():
		a.hist, err = history.New(cfg.historySize, historyPolicy(a.policy))
	case a.policy.NeedsStructure():
		if cfg.structure == nil {
			return ErrNeedStructure
		}
		err = a.loadStructure(cfg.structure, start)
	}

	return err
}

func historyPolicy(p Policy) history.Policy {
	switch p {
	case KHistoryFIFO:
		return history.FIFO
	case KHistoryLRU:
		return history.LRU
	default:
		return history.Plain
	}
}

// loadStructure caches the scores the policy weights by, once per agent.
func (a *Agent) loadStructure(s Structure, start int) error {
	var err error
	switch a.policy {
	case EigenvecRW:
		a.scores, err = s.Eigenvector()
	case ClosenessRW:
		a.scores, err = s.Closeness()
	case BetweennessRW:
		a.scores, err = s.Betweenness()
	case EccentricityRW:
		a.scores, err = s.Eccentricity()
	case MERW:
		a.lambda, a.psi, err = s.Principal()
		if err == nil && (!(a.lambda > 0) || a.psi[start] == 0) {
			err = fmt.Errorf("λ₁=%v, ψ₁(%d)=%v: %w", a.lambda, start, a.psi[start], ErrDegenerateSpectrum)
		}
	}

	return err
}

// PickNext draws the next vertex from the current one with probability
// proportional to the policy weight of each neighbor. It does not move.
//
// Implementation:
//   - Stage 1: Lazy walkers stay put with probability laziness.
//   - Stage 2: Fetch neighbors; none is a fatal ErrIsolatedVertex.
//   - Stage 3: Weigh every neighbor and sum the weights.
//   - Stage 4: Draw uniformly in [0, total) and scan the cumulative weights.
//
// Complexity: O(deg(current)).
func (a *Agent) PickNext() (int, error) {
	u := a.current
	if a.policy == LZRW && a.rng.Float64() <= a.laziness {
		return u, nil
	}

	nbrs, err := a.g.Neighbors(u)
	if err != nil {
		return 0, fmt.Errorf("PickNext(at=%d): %w", u, err)
	}
	if len(nbrs) == 0 {
		return 0, fmt.Errorf("PickNext(at=%d): %w", u, ErrIsolatedVertex)
	}

	a.weights = a.weights[:0]
	total := 0.0
	for _, v := range nbrs {
		w, err := a.weight(u, v)
		if err != nil {
			return 0, fmt.Errorf("PickNext(at=%d): weight(%d): %w", u, v, err)
		}
		if w < 0 || math.IsNaN(w) {
			return 0, fmt.Errorf("PickNext(at=%d): weight(%d)=%v: %w", u, v, w, ErrInvalidWeight)
		}
		a.weights = append(a.weights, w)
		total += w
	}
	if !(total > 0) || math.IsInf(total, 0) {
		return 0, fmt.Errorf("PickNext(at=%d): total=%v: %w", u, total, ErrZeroWeight)
	}

	chosen := a.rng.Float64() * total
	accum := 0.0
	for i, v := range nbrs {
		accum += a.weights[i]
		if chosen < accum {
			return v, nil
		}
	}

	return 0, fmt.Errorf("PickNext(at=%d): draw=%v total=%v: %w", u, chosen, total, ErrNoCandidate)
}

// MoveTo places the walker on v without counting a transition.
// Base bookkeeping happens first, then exactly one policy update.
func (a *Agent) MoveTo(v int) {
	a.current = v
	a.path = append(a.path, v)
	if a.visits[v] == 0 {
		a.hitting[v] = a.step
		a.ncovered++
	}
	a.visits[v]++

	switch {
	case a.policy.usesFilter():
		a.filter.Add(v)
	case a.policy.usesHistory():
		a.hist.Push(v)
	}
}

// Advance performs one transition: pick a neighbor, move, count the step.
// A vertex first reached by this transition records the step count from
// before the increment. Any error leaves the walker where it was.
func (a *Agent) Advance() error {
	v, err := a.PickNext()
	if err != nil {
		return fmt.Errorf("Advance(step=%d): %w", a.step, err)
	}
	a.MoveTo(v)
	a.step++

	return nil
}

// Name returns the canonical agent name, e.g. "kHistory_LRU".
func (a *Agent) Name() string { return a.policy.String() }

// Policy returns the transition policy.
func (a *Agent) Policy() Policy { return a.policy }

// Alpha returns the bias exponent.
func (a *Agent) Alpha() float64 { return a.alpha }

// Step returns the number of transitions performed.
func (a *Agent) Step() int { return a.step }

// Current returns the occupied vertex.
func (a *Agent) Current() int { return a.current }

// Covered returns the number of distinct vertices visited.
func (a *Agent) Covered() int { return a.ncovered }

// Path returns a copy of every vertex occupied, in order.
func (a *Agent) Path() []int { return slices.Clone(a.path) }

// Visits returns how many times v has been occupied.
func (a *Agent) Visits(v int) int { return a.visits[v] }

// HittingTime returns the step at which v was first occupied.
func (a *Agent) HittingTime(v int) (int, bool) {
	h, ok := a.hitting[v]

	return h, ok
}

// HittingTimes returns a copy of the first-visit steps of all visited vertices.
func (a *Agent) HittingTimes() map[int]int { return maps.Clone(a.hitting) }

// TargetHit returns the hitting time of the WithTarget vertex, if reached.
func (a *Agent) TargetHit() (int, bool) {
	if !a.hasTarget {
		return 0, false
	}

	return a.HittingTime(a.target)
}

// PrevVertex returns the vertex occupied n positions before the current one.
func (a *Agent) PrevVertex(n int) (int, bool) {
	i := len(a.path) - 1 - n
	if n < 0 || i < 0 {
		return 0, false
	}

	return a.path[i], true
}

// String implements fmt.Stringer.
func (a *Agent) String() string {
	return fmt.Sprintf("%s(step=%d, current=%d, ncovered=%d)", a.Name(), a.step, a.current, a.ncovered)
}

// Dump writes a "visit" line for the current vertex and a "status" line.
func (a *Agent) Dump(w io.Writer) error {
	v := a.current
	d, err := a.g.Degree(v)
	if err != nil {
		return fmt.Errorf("Dump: %w", err)
	}
	_, err = fmt.Fprintf(w, "%d\tvisit\t%d\t%d\t%d\n%d\tstatus\t%d\t%d\n",
		a.step, v, a.visits[v], d, a.step, a.ncovered, a.g.VertexCount())

	return err
}
