// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, AdjacencyList).
// Determinism:
//   - Neighbors() returns IDs sorted ascending.
//   - AdjacencyList() returns per-vertex slices sorted ascending.
// Concurrency:
//   - Read operations hold the read lock; returned slices never share backing arrays.

package core

import (
	"fmt"
	"slices"
)

// Neighbors returns the vertices adjacent to id.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Validate vertex existence (ErrVertexNotFound).
//   - Stage 3: Return a copy of the sorted adjacency slice.
//
// Behavior highlights:
//   - An isolated vertex yields an empty, non-nil slice and no error; callers
//     that cannot make progress from such a vertex decide how to fail.
//
// Complexity:
//   - Time O(deg(id)), Space O(deg(id)).
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrVertexNotFound)
	}
	out := make([]int, len(nbrs))
	copy(out, nbrs)

	return out, nil
}

// AdjacencyList returns a snapshot vertex → sorted neighbors.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() map[int][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[int][]int, len(g.adjacency))
	for id, nbrs := range g.adjacency {
		out[id] = slices.Clone(nbrs)
		if out[id] == nil {
			out[id] = []int{}
		}
	}

	return out
}
