package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randwalk/builder"
	"github.com/katalvlaran/randwalk/centrality"
	"github.com/katalvlaran/randwalk/core"
)

func build(t *testing.T, ctor builder.Constructor, opts ...builder.BuilderOption) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, opts, ctor)
	require.NoError(t, err)

	return g
}

func degrees(t *testing.T, g *core.Graph) map[int]int {
	t.Helper()
	out := make(map[int]int)
	for _, v := range g.Vertices() {
		d, err := g.Degree(v)
		require.NoError(t, err)
		out[v] = d
	}

	return out
}

// TestBuilders_Functional checks vertex/edge counts, connectivity and a few
// topology-specific edges for every constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ctor      builder.Constructor
		wantV     int
		wantE     int
		wantEdges [][2]int
	}{
		{"Cycle(5)", builder.Cycle(5), 5, 5, [][2]int{{1, 2}, {5, 1}}},
		{"Path(4)", builder.Path(4), 4, 3, [][2]int{{1, 2}, {3, 4}}},
		{"Star(4)", builder.Star(4), 4, 3, [][2]int{{1, 2}, {1, 4}}},
		{"Wheel(5)", builder.Wheel(5), 5, 8, [][2]int{{2, 3}, {5, 2}, {1, 5}}},
		{"Complete(4)", builder.Complete(4), 4, 6, [][2]int{{1, 4}, {2, 3}}},
		{"Complete(1)", builder.Complete(1), 1, 0, nil},
		{"Grid(2x3)", builder.Grid(2, 3), 6, 7, [][2]int{{1, 2}, {1, 4}, {5, 6}}},
		{"BinaryTree(7)", builder.BinaryTree(7), 7, 6, [][2]int{{1, 2}, {1, 3}, {3, 7}}},
		{"RandomTree(20)", builder.RandomTree(20), 20, 19, nil},
		{"RandomGNM(30,45)", builder.RandomGNM(30, 45), 30, 45, nil},
		{"RandomGNM(6,15)", builder.RandomGNM(6, 15), 6, 15, nil},
		{"RandomGNM(10,40)", builder.RandomGNM(10, 40), 10, 40, nil},
		{"BarabasiAlbert(50,5,2)", builder.BarabasiAlbert(50, 5, 2), 50, 10 + 45*2, nil},
		{"RandomRegular(20,3)", builder.RandomRegular(20, 3), 20, 30, nil},
		{"RandomRegular(30,4)", builder.RandomRegular(30, 4), 30, 60, nil},
		{"BARandom(30,45)", builder.BARandom(30, 45), 30, 45, nil},
		{"BARandom(2,1)", builder.BARandom(2, 1), 2, 1, [][2]int{{1, 2}}},
		{"LiMaini(20,3,3,2,0)", builder.LiMaini(20, 3, 3, 2, 0), 29, 9 + 2 + 40, [][2]int{{1, 2}, {3, 4}, {6, 7}}},
		{"LiMaini(20,3,3,2,1)", builder.LiMaini(20, 3, 3, 2, 1), 29, 9 + 2 + 40 + 20, nil},
		{"LiMaini(5,2,1,1,0)", builder.LiMaini(5, 2, 1, 1, 0), 7, 1 + 5, [][2]int{{1, 2}}},
		{"DegreeBounded(16,32)", builder.DegreeBounded(16, 32), 16, 32, nil},
		{"DegreeBounded(10,9)", builder.DegreeBounded(10, 9), 10, 9, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := build(t, tc.ctor, builder.WithSeed(7))

			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			assert.True(t, centrality.IsConnected(g), "generated graph must be connected")
			for _, e := range tc.wantEdges {
				assert.True(t, g.HasEdge(e[0], e[1]), "missing edge %v", e)
			}

			// Default IDs are 1..n.
			vs := g.Vertices()
			assert.Equal(t, 1, vs[0])
			assert.Equal(t, tc.wantV, vs[len(vs)-1])
		})
	}
}

func TestRandomRegular_Degrees(t *testing.T) {
	for _, d := range []int{3, 4} {
		g := build(t, builder.RandomRegular(40, d), builder.WithSeed(int64(d)))
		for v, deg := range degrees(t, g) {
			assert.Equal(t, d, deg, "vertex %d", v)
		}
	}
}

func TestBarabasiAlbert_MinimumDegree(t *testing.T) {
	g := build(t, builder.BarabasiAlbert(200, 10, 3), builder.WithSeed(5))
	maxDeg := 0
	for v, deg := range degrees(t, g) {
		assert.GreaterOrEqual(t, deg, 3, "vertex %d", v)
		maxDeg = max(maxDeg, deg)
	}
	// Preferential attachment grows hubs well beyond the seed clique degree.
	assert.Greater(t, maxDeg, 12)
}

func TestDegreeBounded_RespectsBound(t *testing.T) {
	tests := []struct{ n, m, bound int }{
		{16, 32, 4},
		{20, 30, 3},
		{12, 20, 4},
		{10, 9, 2},
	}
	for _, tc := range tests {
		g := build(t, builder.DegreeBounded(tc.n, tc.m), builder.WithSeed(int64(tc.m)))
		require.Equal(t, tc.m, g.EdgeCount())
		for v, deg := range degrees(t, g) {
			assert.LessOrEqual(t, deg, tc.bound, "n=%d m=%d vertex %d", tc.n, tc.m, v)
		}
	}
}

func TestLiMaini_CommunitiesStayDense(t *testing.T) {
	// Without inter-community links the only bridges are the seed chain, so
	// cutting one chain edge splits the graph.
	g := build(t, builder.LiMaini(40, 2, 4, 2, 0), builder.WithSeed(3))
	require.Equal(t, 48, g.VertexCount())
	require.True(t, g.HasEdge(4, 5))
	require.NoError(t, g.RemoveEdge(4, 5))
	assert.False(t, centrality.IsConnected(g))
}

func TestBARandom_GrowsHubs(t *testing.T) {
	g := build(t, builder.BARandom(200, 400), builder.WithSeed(8))
	maxDeg := 0
	for _, deg := range degrees(t, g) {
		maxDeg = max(maxDeg, deg)
	}
	// A uniform G(200,400) almost never exceeds degree 15.
	assert.Greater(t, maxDeg, 15)
}

func TestStochastic_Deterministic(t *testing.T) {
	ctors := map[string]func() builder.Constructor{
		"RandomTree":     func() builder.Constructor { return builder.RandomTree(30) },
		"RandomGNM":      func() builder.Constructor { return builder.RandomGNM(30, 50) },
		"BarabasiAlbert": func() builder.Constructor { return builder.BarabasiAlbert(30, 4, 2) },
		"RandomRegular":  func() builder.Constructor { return builder.RandomRegular(30, 3) },
		"BARandom":       func() builder.Constructor { return builder.BARandom(30, 50) },
		"LiMaini":        func() builder.Constructor { return builder.LiMaini(30, 4, 3, 2, 0.3) },
		"DegreeBounded":  func() builder.Constructor { return builder.DegreeBounded(30, 50) },
	}
	for name, mk := range ctors {
		t.Run(name, func(t *testing.T) {
			a := build(t, mk(), builder.WithSeed(99))
			b := build(t, mk(), builder.WithSeed(99))
			assert.Equal(t, a.Edges(), b.Edges())
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	seed := []builder.BuilderOption{builder.WithSeed(1)}

	tests := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Cycle(2)", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), nil, builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"Grid(0x3)", builder.Grid(0, 3), nil, builder.ErrTooFewVertices},
		{"BinaryTree(0)", builder.BinaryTree(0), nil, builder.ErrTooFewVertices},
		{"RandomTree no rng", builder.RandomTree(5), nil, builder.ErrNeedRandSource},
		{"RandomGNM too few edges", builder.RandomGNM(5, 3), seed, builder.ErrInvalidEdgeCount},
		{"RandomGNM too many edges", builder.RandomGNM(5, 11), seed, builder.ErrInvalidEdgeCount},
		{"RandomGNM no rng", builder.RandomGNM(5, 5), nil, builder.ErrNeedRandSource},
		{"BarabasiAlbert m0", builder.BarabasiAlbert(10, 1, 1), seed, builder.ErrTooFewVertices},
		{"BarabasiAlbert m>m0", builder.BarabasiAlbert(10, 3, 4), seed, builder.ErrTooFewVertices},
		{"BarabasiAlbert n<m0", builder.BarabasiAlbert(3, 5, 2), seed, builder.ErrTooFewVertices},
		{"RandomRegular odd", builder.RandomRegular(5, 3), seed, builder.ErrTooFewVertices},
		{"RandomRegular d>=n", builder.RandomRegular(4, 4), seed, builder.ErrTooFewVertices},
		{"RandomRegular no rng", builder.RandomRegular(6, 3), nil, builder.ErrNeedRandSource},
		{"RandomRegular matching", builder.RandomRegular(6, 1), seed, builder.ErrConstructFailed},
		{"BARandom(1,0)", builder.BARandom(1, 0), seed, builder.ErrTooFewVertices},
		{"BARandom too few edges", builder.BARandom(6, 4), seed, builder.ErrInvalidEdgeCount},
		{"BARandom no rng", builder.BARandom(6, 8), nil, builder.ErrNeedRandSource},
		{"LiMaini single seed", builder.LiMaini(5, 1, 1, 1, 0), seed, builder.ErrTooFewVertices},
		{"LiMaini m>m0", builder.LiMaini(5, 3, 2, 3, 0), seed, builder.ErrTooFewVertices},
		{"LiMaini t<0", builder.LiMaini(-1, 3, 2, 1, 0), seed, builder.ErrTooFewVertices},
		{"LiMaini alpha", builder.LiMaini(5, 3, 2, 1, 1.5), seed, builder.ErrInvalidProbability},
		{"LiMaini no rng", builder.LiMaini(5, 3, 2, 1, 0), nil, builder.ErrNeedRandSource},
		{"DegreeBounded(1,0)", builder.DegreeBounded(1, 0), seed, builder.ErrTooFewVertices},
		{"DegreeBounded too many edges", builder.DegreeBounded(4, 7), seed, builder.ErrInvalidEdgeCount},
		{"DegreeBounded no rng", builder.DegreeBounded(6, 8), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, tc.opts, tc.ctor)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuildGraph_ComposeWithOffsets(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithName("two rings")},
		[]builder.BuilderOption{builder.WithZeroBasedIDs()},
		builder.Cycle(3),
	)
	require.NoError(t, err)
	assert.Equal(t, "two rings", g.Name())
	assert.Equal(t, []int{0, 1, 2}, g.Vertices())

	g, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithOffsetIDs(10)}, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11, 12}, g.Vertices())
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}
