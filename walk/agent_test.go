package walk_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randwalk/centrality"
	"github.com/katalvlaran/randwalk/core"
	"github.com/katalvlaran/randwalk/walk"
)

// graphOf builds an undirected graph from an edge list.
func graphOf(t *testing.T, edges ...[2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// ring5 is the ring 0-1-2-3-4-0.
func ring5(t *testing.T) *core.Graph {
	return graphOf(t, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 0})
}

// grid3 is the 3×3 lattice on vertices 1..9.
func grid3(t *testing.T) *core.Graph {
	var edges [][2]int
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			v := r*3 + c + 1
			if c < 2 {
				edges = append(edges, [2]int{v, v + 1})
			}
			if r < 2 {
				edges = append(edges, [2]int{v, v + 3})
			}
		}
	}

	return graphOf(t, edges...)
}

// countPicks calls PickNext n times and tallies the outcomes.
func countPicks(t *testing.T, a *walk.Agent, n int) map[int]int {
	t.Helper()
	counts := make(map[int]int)
	for i := 0; i < n; i++ {
		v, err := a.PickNext()
		require.NoError(t, err)
		counts[v]++
	}

	return counts
}

// checkInvariants asserts the bookkeeping invariants of a walker.
func checkInvariants(t *testing.T, a *walk.Agent) {
	t.Helper()
	path := a.Path()
	require.Equal(t, a.Step(), len(path)-1, "step must equal len(path)-1")
	require.Equal(t, a.Covered(), len(a.HittingTimes()), "covered must equal |hitting|")

	first := make(map[int]int)
	for i, v := range path {
		if _, seen := first[v]; !seen {
			first[v] = i
		}
	}
	require.Equal(t, len(first), a.Covered(), "covered must equal distinct path entries")
	for v, i := range first {
		h, ok := a.HittingTime(v)
		require.True(t, ok)
		want := i - 1
		if i == 0 {
			want = 0
		}
		require.Equal(t, want, h, "hitting time of %d", v)
	}
}

func TestAgent_RingCoverSRW(t *testing.T) {
	g := ring5(t)
	a, err := walk.New(g, 0, walk.SRW, walk.WithSeed(1))
	require.NoError(t, err)

	h, ok := a.HittingTime(0)
	require.True(t, ok)
	assert.Equal(t, 0, h)
	assert.Equal(t, 1, a.Covered())
	assert.Equal(t, 0, a.Step())

	for a.Covered() < 5 {
		require.NoError(t, a.Advance())
		checkInvariants(t, a)
		require.Less(t, a.Step(), 10_000)
	}
	assert.Equal(t, 5, a.Covered())
	h, _ = a.HittingTime(0)
	assert.Equal(t, 0, h)
}

func TestAgent_AllPoliciesCoverGrid(t *testing.T) {
	g := grid3(t)
	an, err := centrality.NewAnalyzer(g)
	require.NoError(t, err)

	for _, p := range walk.Policies() {
		t.Run(p.String(), func(t *testing.T) {
			a, err := walk.New(g, 1, p,
				walk.WithSeed(int64(p)+11),
				walk.WithStructure(an),
				walk.WithLaziness(0.3),
				walk.WithTarget(9),
			)
			require.NoError(t, err)
			assert.Equal(t, p.String(), a.Name())

			for a.Covered() < g.VertexCount() {
				require.NoError(t, a.Advance())
				checkInvariants(t, a)
				require.Less(t, a.Step(), 100_000, "walk did not cover the grid")
			}
			hit, ok := a.TargetHit()
			require.True(t, ok)
			h, _ := a.HittingTime(9)
			assert.Equal(t, h, hit)
			assert.LessOrEqual(t, hit, a.Step())
		})
	}
}

func TestAgent_SeedReproducible(t *testing.T) {
	g := grid3(t)
	run := func() []int {
		a, err := walk.New(g, 5, walk.BiasedRW, walk.WithSeed(42), walk.WithAlpha(0.4))
		require.NoError(t, err)
		for i := 0; i < 200; i++ {
			require.NoError(t, a.Advance())
		}

		return a.Path()
	}
	assert.Equal(t, run(), run())
}

func TestAgent_NBRWAvoidsBacktrack(t *testing.T) {
	g := graphOf(t, [2]int{1, 2}, [2]int{2, 3})
	a, err := walk.New(g, 1, walk.NBRW, walk.WithSeed(3), walk.WithAlpha(0))
	require.NoError(t, err)
	a.MoveTo(2)

	counts := countPicks(t, a, 20_000)
	// Expected share of the previous vertex is ε/(1+ε) ≈ 1e-4.
	assert.LessOrEqual(t, counts[1], 20)
	assert.GreaterOrEqual(t, counts[3], 19_980)
}

func TestAgent_SARWAvoidsVisited(t *testing.T) {
	g := graphOf(t, [2]int{2, 1}, [2]int{2, 3}, [2]int{2, 4})
	a, err := walk.New(g, 1, walk.SARW, walk.WithSeed(4), walk.WithAlpha(0))
	require.NoError(t, err)
	a.MoveTo(2)

	counts := countPicks(t, a, 20_000)
	assert.LessOrEqual(t, counts[1], 20)
	assert.InDelta(t, 10_000, counts[3], 500)
	assert.InDelta(t, 10_000, counts[4], 500)
}

func TestAgent_BloomAvoidsRecorded(t *testing.T) {
	g := graphOf(t, [2]int{2, 1}, [2]int{2, 3}, [2]int{2, 4})
	a, err := walk.New(g, 1, walk.BloomRW, walk.WithSeed(5), walk.WithAlpha(0), walk.WithFilterSize(10_000))
	require.NoError(t, err)
	a.MoveTo(2)

	counts := countPicks(t, a, 20_000)
	assert.LessOrEqual(t, counts[1], 20)
}

func TestAgent_VicinityAvoidance(t *testing.T) {
	// 3 neighbors the previous vertex 1; 4 does not.
	g := graphOf(t, [2]int{1, 2}, [2]int{2, 3}, [2]int{2, 4}, [2]int{1, 3})

	for _, p := range []walk.Policy{walk.VARW, walk.HybridRW} {
		t.Run(p.String(), func(t *testing.T) {
			a, err := walk.New(g, 1, p, walk.WithSeed(6), walk.WithAlpha(0))
			require.NoError(t, err)
			a.MoveTo(2)

			counts := countPicks(t, a, 20_000)
			assert.GreaterOrEqual(t, counts[4], 19_980)
		})
	}
}

func TestAgent_HistoryReplacement(t *testing.T) {
	// Star with center 2; the walker goes 1 → 2 → 3 → 2, so the raw history
	// is 1,2,3,2 with capacity 3.
	g := graphOf(t, [2]int{2, 1}, [2]int{2, 3}, [2]int{2, 4}, [2]int{2, 5})

	tests := []struct {
		policy      walk.Policy
		avoidsFirst bool // whether vertex 1 is still remembered
	}{
		{walk.KHistory, false},    // [2 3 2]
		{walk.KHistoryFIFO, true}, // [1 2 3]
		{walk.KHistoryLRU, true},  // [1 3 2]
	}
	for _, tc := range tests {
		t.Run(tc.policy.String(), func(t *testing.T) {
			a, err := walk.New(g, 1, tc.policy, walk.WithSeed(8), walk.WithAlpha(0), walk.WithHistorySize(3))
			require.NoError(t, err)
			a.MoveTo(2)
			a.MoveTo(3)
			a.MoveTo(2)

			counts := countPicks(t, a, 30_000)
			assert.LessOrEqual(t, counts[3], 20, "3 is remembered by every policy")
			if tc.avoidsFirst {
				assert.LessOrEqual(t, counts[1], 20)
			} else {
				assert.InDelta(t, 10_000, counts[1], 600)
			}
		})
	}
}

func TestAgent_LazyFullyLazyNeverMoves(t *testing.T) {
	a, err := walk.New(ring5(t), 2, walk.LZRW, walk.WithSeed(9), walk.WithLaziness(1))
	require.NoError(t, err)

	for i := 1; i <= 100; i++ {
		require.NoError(t, a.Advance())
		require.Equal(t, 2, a.Current())
		require.Equal(t, i, a.Step())
	}
	assert.Equal(t, 1, a.Covered())
	assert.Len(t, a.Path(), 101)
	assert.Equal(t, 101, a.Visits(2))
}

func TestAgent_LazyNeverLazyMoves(t *testing.T) {
	a, err := walk.New(ring5(t), 2, walk.LZRW, walk.WithSeed(10), walk.WithLaziness(0))
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		prev := a.Current()
		require.NoError(t, a.Advance())
		require.NotEqual(t, prev, a.Current())
	}
}

func TestAgent_MERWOnRegularGraphIsUniform(t *testing.T) {
	g := ring5(t)
	an, err := centrality.NewAnalyzer(g)
	require.NoError(t, err)

	a, err := walk.New(g, 0, walk.MERW, walk.WithSeed(12), walk.WithStructure(an))
	require.NoError(t, err)

	counts := countPicks(t, a, 20_000)
	assert.InDelta(t, 10_000, counts[1], 500)
	assert.InDelta(t, 10_000, counts[4], 500)
}

func TestAgent_IsolatedVertexIsFatal(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(1))

	a, err := walk.New(g, 1, walk.SRW, walk.WithSeed(1))
	require.NoError(t, err)

	err = a.Advance()
	require.ErrorIs(t, err, walk.ErrIsolatedVertex)
	assert.Equal(t, 0, a.Step())
	assert.Equal(t, []int{1}, a.Path())
}

func TestNew_ConfigurationErrors(t *testing.T) {
	g := ring5(t)

	tests := []struct {
		name   string
		graph  walk.Graph
		start  int
		policy walk.Policy
		opts   []walk.Option
		want   error
	}{
		{"nil graph", nil, 0, walk.SRW, nil, walk.ErrNilGraph},
		{"unknown policy", g, 0, walk.Policy(99), nil, walk.ErrUnknownPolicy},
		{"missing start", g, 42, walk.SRW, nil, walk.ErrStartNotFound},
		{"negative filter", g, 0, walk.BloomRW, []walk.Option{walk.WithFilterSize(-1)}, walk.ErrInvalidOption},
		{"zero history", g, 0, walk.KHistory, []walk.Option{walk.WithHistorySize(0)}, walk.ErrInvalidOption},
		{"laziness above one", g, 0, walk.LZRW, []walk.Option{walk.WithLaziness(1.5)}, walk.ErrInvalidOption},
		{"NaN alpha", g, 0, walk.BiasedRW, []walk.Option{walk.WithAlpha(math.NaN())}, walk.ErrInvalidOption},
		{"nil rand", g, 0, walk.SRW, []walk.Option{walk.WithRand(nil)}, walk.ErrInvalidOption},
		{"no structure", g, 0, walk.EigenvecRW, nil, walk.ErrNeedStructure},
		{"no spectrum", g, 0, walk.MERW, nil, walk.ErrNeedStructure},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := walk.New(tc.graph, tc.start, tc.policy, tc.opts...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParsePolicy(t *testing.T) {
	for _, p := range walk.Policies() {
		got, err := walk.ParsePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := walk.ParsePolicy("MaxDegreeRW")
	require.ErrorIs(t, err, walk.ErrUnknownPolicy)

	assert.Len(t, walk.Policies(), 16)
	assert.False(t, walk.SRW.UsesAlpha())
	assert.True(t, walk.NBRW.UsesAlpha())
	assert.True(t, walk.MERW.NeedsStructure())
	assert.False(t, walk.HybridRW.NeedsStructure())
}

func TestAgent_Accessors(t *testing.T) {
	a, err := walk.New(ring5(t), 0, walk.SRW, walk.WithSeed(2), walk.WithTarget(3))
	require.NoError(t, err)

	assert.Equal(t, "SRW(step=0, current=0, ncovered=1)", a.String())
	_, ok := a.PrevVertex(1)
	assert.False(t, ok)
	cur, ok := a.PrevVertex(0)
	assert.True(t, ok)
	assert.Equal(t, 0, cur)
	_, ok = a.TargetHit()
	assert.False(t, ok)

	var buf bytes.Buffer
	require.NoError(t, a.Dump(&buf))
	assert.Equal(t, "0\tvisit\t0\t1\t2\n0\tstatus\t1\t5\n", buf.String())

	require.NoError(t, a.Advance())
	prev, ok := a.PrevVertex(1)
	assert.True(t, ok)
	assert.Equal(t, 0, prev)
	assert.Contains(t, []int{1, 4}, a.Current())

	// Path and HittingTimes are copies.
	p := a.Path()
	p[0] = 99
	assert.Equal(t, 0, a.Path()[0])
	ht := a.HittingTimes()
	delete(ht, 0)
	_, ok = a.HittingTime(0)
	assert.True(t, ok)
}

func TestAgent_AdvanceRecordsStepBeforeIncrement(t *testing.T) {
	g := graphOf(t, [2]int{1, 2}, [2]int{2, 3})
	a, err := walk.New(g, 1, walk.NBRW, walk.WithSeed(1))
	require.NoError(t, err)

	require.NoError(t, a.Advance())
	assert.Equal(t, 1, a.Step())
	assert.Equal(t, 2, a.Current())
	h, ok := a.HittingTime(2)
	require.True(t, ok)
	assert.Equal(t, 0, h)

	// NBRW at 2 backtracks to 1 only with ε weight.
	for a.Covered() < 3 {
		require.NoError(t, a.Advance())
	}
	h, _ = a.HittingTime(3)
	assert.Equal(t, a.Step()-1, h)
	h, _ = a.HittingTime(1)
	assert.Equal(t, 0, h)
}
