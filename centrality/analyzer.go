// Package centrality computes the structural scores that centrality-biased
// walkers weight their transitions by, and the principal adjacency eigenpair
// the maximal-entropy walker needs.
//
// An Analyzer is bound to one graph and computes each measure at most once,
// on first request. All results are cached, so a single Analyzer can be
// shared read-only by every trial (and goroutine) that walks the same graph.
// The graph must not be mutated after the first query; the experiment driver
// only ever mutates per-trial clones.
//
// Shortest-path measures are delegated to gonum's graph packages over a
// snapshot of the core.Graph.
package centrality

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/katalvlaran/randwalk/bfs"
	"github.com/katalvlaran/randwalk/core"
	"github.com/katalvlaran/randwalk/matrix"
)

// ErrGraphNil is returned by NewAnalyzer for a nil graph.
var ErrGraphNil = errors.New("centrality: graph is nil")

// Scores maps a vertex ID to a non-negative score.
type Scores map[int]float64

// cached holds a lazily computed value and the error that came with it.
type cached[T any] struct {
	once sync.Once
	val  T
	err  error
}

func (c *cached[T]) get(fn func() (T, error)) (T, error) {
	c.once.Do(func() { c.val, c.err = fn() })

	return c.val, c.err
}

// Analyzer caches structural measures of one graph.
type Analyzer struct {
	g *core.Graph

	view         cached[*simple.UndirectedGraph]
	principal    cached[principal]
	eigenvector  cached[Scores]
	closeness    cached[Scores]
	betweenness  cached[Scores]
	eccentricity cached[Scores]
}

type principal struct {
	value  float64
	vector map[int]float64
}

// NewAnalyzer binds an Analyzer to g. Nothing is computed yet.
func NewAnalyzer(g *core.Graph) (*Analyzer, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return &Analyzer{g: g}, nil
}

// Principal returns the dominant eigenvalue λ₁ of the adjacency matrix and
// its eigenvector ψ₁ keyed by vertex, sign-normalized so the component of the
// smallest vertex ID is non-negative.
// Complexity: O(V³) on first call, O(1) afterwards.
func (a *Analyzer) Principal() (float64, map[int]float64, error) {
	p, err := a.principal.get(func() (principal, error) {
		adj, ix, err := matrix.Adjacency(a.g)
		if err != nil {
			return principal{}, fmt.Errorf("Principal: %w", err)
		}
		pair, err := matrix.Principal(adj)
		if err != nil {
			return principal{}, fmt.Errorf("Principal: %w", err)
		}

		return principal{value: pair.Value, vector: pair.ByVertex(ix)}, nil
	})

	return p.value, p.vector, err
}

// Eigenvector returns eigenvector centrality: |ψ₁(v)| with ψ₁ of unit
// Euclidean norm.
func (a *Analyzer) Eigenvector() (map[int]float64, error) {
	return a.eigenvector.get(func() (Scores, error) {
		_, vec, err := a.Principal()
		if err != nil {
			return nil, fmt.Errorf("Eigenvector: %w", err)
		}
		out := make(Scores, len(vec))
		for v, x := range vec {
			out[v] = math.Abs(x)
		}

		return out, nil
	})
}

// Closeness returns closeness centrality 1/Σ d(v,u) over reachable u.
// Complexity: O(V·(V+E) log V) on first call.
func (a *Analyzer) Closeness() (map[int]float64, error) {
	return a.closeness.get(func() (Scores, error) {
		ug := a.gonumView()
		raw := network.Closeness(ug, path.DijkstraAllPaths(ug))

		return a.fill(raw), nil
	})
}

// Betweenness returns unnormalized shortest-path betweenness centrality.
// Complexity: O(V·E) on first call.
func (a *Analyzer) Betweenness() (map[int]float64, error) {
	return a.betweenness.get(func() (Scores, error) {
		raw := network.Betweenness(a.gonumView())

		return a.fill(raw), nil
	})
}

// Eccentricity returns, for every vertex, the largest BFS depth reached from it.
// Complexity: O(V·(V+E)) on first call.
func (a *Analyzer) Eccentricity() (map[int]float64, error) {
	return a.eccentricity.get(func() (Scores, error) {
		ug := a.gonumView()
		out := make(Scores, a.g.VertexCount())
		for _, v := range a.g.Vertices() {
			out[v] = float64(maxDepth(ug, simple.Node(v)))
		}

		return out, nil
	})
}

// fill converts a gonum score map to Scores, adding explicit zeros for
// vertices gonum omitted.
func (a *Analyzer) fill(raw map[int64]float64) Scores {
	out := make(Scores, a.g.VertexCount())
	for _, v := range a.g.Vertices() {
		x := raw[int64(v)]
		if math.IsNaN(x) || math.IsInf(x, 0) {
			x = 0
		}
		out[v] = x
	}

	return out
}

// gonumView returns the cached gonum snapshot of the graph.
func (a *Analyzer) gonumView() *simple.UndirectedGraph {
	ug, _ := a.view.get(func() (*simple.UndirectedGraph, error) {
		return ToGonum(a.g), nil
	})

	return ug
}

// ToGonum copies g into a gonum simple.UndirectedGraph; node IDs are preserved.
// Complexity: O(V + E).
func ToGonum(g *core.Graph) *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for _, v := range g.Vertices() {
		ug.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges() {
		ug.SetEdge(ug.NewEdge(simple.Node(e.From), simple.Node(e.To)))
	}

	return ug
}

// maxDepth runs a breadth-first walk from n and returns the deepest level seen.
func maxDepth(g traverse.Graph, n graph.Node) int {
	deepest := 0
	var bf traverse.BreadthFirst
	bf.Walk(g, n, func(_ graph.Node, d int) bool {
		if d > deepest {
			deepest = d
		}

		return false
	})

	return deepest
}

// IsConnected reports whether every vertex of g is reachable from every other.
// The empty graph is considered connected. It walks g directly, without a
// gonum snapshot, since the adversary calls it after every rewire.
// Complexity: O(V + E).
func IsConnected(g *core.Graph) bool { return bfs.Connected(g) }
