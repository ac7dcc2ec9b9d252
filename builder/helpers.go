package builder

import (
	"fmt"

	"github.com/katalvlaran/randwalk/core"
)

// addVertices inserts idFn(0..n-1) into g.
// Complexity: O(n log n) with sorted adjacency.
func addVertices(g *core.Graph, method string, n int, idFn IDFn) error {
	for i := 0; i < n; i++ {
		id := idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%d): %w", method, id, err)
		}
	}

	return nil
}

// link adds the edge between vertex indices i and j.
func link(g *core.Graph, method string, idFn IDFn, i, j int) error {
	u, v := idFn(i), idFn(j)
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d, %d): %w", method, u, v, err)
	}

	return nil
}

// needRand reports ErrNeedRandSource for a stochastic constructor without an RNG.
func needRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}

// disjointSet is a union-find over vertex indices, used to reject
// disconnected realizations without building a graph first.
type disjointSet struct {
	parent []int
	sets   int
}

func newDisjointSet(n int) *disjointSet {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return &disjointSet{parent: p, sets: n}
}

func (d *disjointSet) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// union merges the sets of a and b and reports whether they were distinct.
func (d *disjointSet) union(a, b int) bool {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return false
	}
	d.parent[ra] = rb
	d.sets--

	return true
}
