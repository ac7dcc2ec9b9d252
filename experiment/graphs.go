package experiment

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"slices"

	"github.com/katalvlaran/randwalk/builder"
	"github.com/katalvlaran/randwalk/core"
)

// ErrUnknownGraph is returned by NewGraph for an unrecognized graph kind.
var ErrUnknownGraph = errors.New("experiment: unknown graph kind")

// baSeedClique is the initial clique size of Barabási–Albert graphs.
const baSeedClique = 10

// Li–Maini parameters: liMainiClusters communities, each seeded with
// 1/liMainiSeedDivisor of the vertices, and an inter-community link with
// probability liMainiAlpha per added vertex.
const (
	liMainiClusters    = 5
	liMainiSeedDivisor = 20
	liMainiAlpha       = 0.1
)

var graphKinds = []string{
	"random", "ba", "barandom", "ring", "tree", "btree", "lattice", "db",
	"3-regular", "4-regular", "li_maini", "complete", "star", "wheel", "path",
}

// GraphKinds returns every graph kind NewGraph accepts.
func GraphKinds() []string { return slices.Clone(graphKinds) }

// IsGraphKind reports whether NewGraph accepts kind.
func IsGraphKind(kind string) bool { return slices.Contains(graphKinds, kind) }

// NewGraph generates a graph of the given kind with about n vertices and
// average degree k, using rng for every random choice (a nil rng is only
// valid for deterministic kinds). Vertices are numbered
// 1..|V| and the graph is named after kind.
//
//	random     connected G(n, m) with m = ⌊n·k/2⌋, clamped to [n-1, n(n-1)/2]
//	ba         Barabási–Albert, seed clique min(10, n), ⌊k⌋ links per vertex
//	barandom   connected graph with m edges as for random, every endpoint
//	           drawn by preferential attachment
//	ring       cycle on n vertices
//	tree       random recursive tree
//	btree      complete binary tree
//	lattice    ⌊√n⌋ × ⌊√n⌋ grid
//	db         connected degree-bounded graph with 2n edges (degrees ≤ 4)
//	3-regular  connected random 3-regular graph (n even)
//	4-regular  connected random 4-regular graph
//	li_maini   5 communities seeded with max(1, ⌊n/20⌋) vertices each, the
//	           rest added by intra-community preferential attachment with
//	           clamp(⌊k/2⌋, 1, seed) links and a 10% inter-community link
//	complete, star, wheel, path
func NewGraph(kind string, n int, k float64, rng *rand.Rand) (*core.Graph, error) {
	var ctor builder.Constructor
	switch kind {
	case "random":
		ctor = builder.RandomGNM(n, randomEdges(n, k))
	case "ba":
		m0 := min(baSeedClique, n)
		ctor = builder.BarabasiAlbert(n, m0, min(max(int(k), 1), m0))
	case "barandom":
		ctor = builder.BARandom(n, randomEdges(n, k))
	case "ring":
		ctor = builder.Cycle(n)
	case "tree":
		ctor = builder.RandomTree(n)
	case "btree":
		ctor = builder.BinaryTree(n)
	case "lattice":
		side := int(math.Sqrt(float64(n)))
		ctor = builder.Grid(side, side)
	case "3-regular":
		ctor = builder.RandomRegular(n, 3)
	case "4-regular":
		ctor = builder.RandomRegular(n, 4)
	case "db":
		ctor = builder.DegreeBounded(n, min(2*n, n*(n-1)/2))
	case "li_maini":
		m0 := max(1, n/liMainiSeedDivisor)
		ctor = builder.LiMaini(n-liMainiClusters*m0, liMainiClusters, m0,
			min(max(int(k/2), 1), m0), liMainiAlpha)
	case "complete":
		ctor = builder.Complete(n)
	case "star":
		ctor = builder.Star(n)
	case "wheel":
		ctor = builder.Wheel(n)
	case "path":
		ctor = builder.Path(n)
	default:
		return nil, fmt.Errorf("NewGraph(%q): %w", kind, ErrUnknownGraph)
	}

	var bopts []builder.BuilderOption
	if rng != nil {
		bopts = append(bopts, builder.WithRand(rng))
	}
	g, err := builder.BuildGraph([]core.GraphOption{core.WithName(kind)}, bopts, ctor)
	if err != nil {
		return nil, fmt.Errorf("NewGraph(%q, n=%d, k=%v): %w", kind, n, k, err)
	}

	return g, nil
}

// randomEdges is ⌊n·k/2⌋ clamped to [n-1, n(n-1)/2].
func randomEdges(n int, k float64) int {
	m := int(float64(n) * k / 2)
	m = max(m, n-1)

	return min(m, n*(n-1)/2)
}

// LastVertex returns the largest vertex ID of g, the default walk target.
func LastVertex(g *core.Graph) (int, bool) {
	vs := g.Vertices()
	if len(vs) == 0 {
		return 0, false
	}

	return vs[len(vs)-1], true
}
