package experiment

import (
	"cmp"
	"fmt"
	"math/rand"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/randwalk/centrality"
	"github.com/katalvlaran/randwalk/core"
	"github.com/katalvlaran/randwalk/walk"
)

// Attack rewires one edge at the walker's current vertex u toward the vertex
// the walker has occupied most often, steering it back into explored ground.
//
// Implementation:
//   - Stage 1: Rank visited vertices by visit count (descending, ties by ID).
//   - Stage 2: Take the first candidate v that is neither u nor adjacent to u.
//   - Stage 3: Try u's incident edges (u,w) in random order; the first whose
//     replacement by (u,v) leaves g connected is kept.
//   - Stage 4: If no edge of u can be rewired safely, try the next candidate.
//
// Attack reports whether g was modified. g must be the graph agent walks on
// and must not be shared with other trials.
// Complexity: O(C·deg(u)·(V+E)) in the worst case, C the number of candidates.
func Attack(agent *walk.Agent, g *core.Graph, rng *rand.Rand) (bool, error) {
	u := agent.Current()
	nbrs, err := g.Neighbors(u)
	if err != nil {
		return false, fmt.Errorf("Attack(at=%d): %w", u, err)
	}
	adjacent := mapset.NewThreadUnsafeSet(nbrs...)
	adjacent.Add(u)

	for _, v := range mostVisited(agent, g) {
		if adjacent.Contains(v) {
			continue
		}
		order := slices.Clone(nbrs)
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		for _, w := range order {
			ok, err := rewire(g, u, w, v)
			if err != nil || ok {
				return ok, err
			}
		}
	}

	return false, nil
}

// rewire replaces (u,w) by (u,v) and keeps the change only if g stays connected.
func rewire(g *core.Graph, u, w, v int) (bool, error) {
	if err := g.RemoveEdge(u, w); err != nil {
		return false, fmt.Errorf("Attack: RemoveEdge(%d, %d): %w", u, w, err)
	}
	if err := g.AddEdge(u, v); err != nil {
		return false, fmt.Errorf("Attack: AddEdge(%d, %d): %w", u, v, err)
	}
	if centrality.IsConnected(g) {
		return true, nil
	}
	if err := g.RemoveEdge(u, v); err != nil {
		return false, fmt.Errorf("Attack: undo AddEdge(%d, %d): %w", u, v, err)
	}
	if err := g.AddEdge(u, w); err != nil {
		return false, fmt.Errorf("Attack: undo RemoveEdge(%d, %d): %w", u, w, err)
	}

	return false, nil
}

// mostVisited returns the visited vertices of g ordered by visit count,
// most visited first.
func mostVisited(agent *walk.Agent, g *core.Graph) []int {
	var out []int
	for _, v := range g.Vertices() {
		if agent.Visits(v) > 0 {
			out = append(out, v)
		}
	}
	slices.SortStableFunc(out, func(a, b int) int {
		return cmp.Compare(agent.Visits(b), agent.Visits(a))
	})

	return out
}
