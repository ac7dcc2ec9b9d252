// File: methods_edges.go
// Role: Edge lifecycle (AddEdge/RemoveEdge/HasEdge) and edge enumeration.
//
// Determinism:
//   - Edges() returns edges sorted by (From, To) with From < To.
//
// Concurrency:
//   - All operations take mu (write for mutation, read for queries).
package core

import (
	"fmt"
	"slices"
)

// AddEdge connects u and v with an undirected edge.
//
// Implementation:
//   - Stage 1: Reject self-loops (ErrLoopNotAllowed).
//   - Stage 2: Under the write lock, auto-create missing endpoints.
//   - Stage 3: Reject parallel edges (ErrMultiEdgeNotAllowed).
//   - Stage 4: Insert v into N(u) and u into N(v), keeping both sorted.
//
// Complexity:
//   - Time O(deg(u) + deg(v)) for the sorted inserts, Space O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if u == v {
		return fmt.Errorf("AddEdge(%d—%d): %w", u, v, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[u]; !ok {
		g.adjacency[u] = nil
	}
	if _, ok := g.adjacency[v]; !ok {
		g.adjacency[v] = nil
	}

	pos, found := slices.BinarySearch(g.adjacency[u], v)
	if found {
		return fmt.Errorf("AddEdge(%d—%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}
	g.adjacency[u] = slices.Insert(g.adjacency[u], pos, v)
	pos, _ = slices.BinarySearch(g.adjacency[v], u)
	g.adjacency[v] = slices.Insert(g.adjacency[v], pos, u)
	g.edges++

	return nil
}

// RemoveEdge deletes the undirected edge u—v.
//
// Errors:
//   - ErrVertexNotFound: if either endpoint is missing.
//   - ErrEdgeNotFound: if the endpoints are not adjacent.
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	nu, okU := g.adjacency[u]
	_, okV := g.adjacency[v]
	if !okU || !okV {
		return fmt.Errorf("RemoveEdge(%d—%d): %w", u, v, ErrVertexNotFound)
	}
	if _, found := slices.BinarySearch(nu, v); !found {
		return fmt.Errorf("RemoveEdge(%d—%d): %w", u, v, ErrEdgeNotFound)
	}
	g.adjacency[u] = deleteSorted(g.adjacency[u], v)
	g.adjacency[v] = deleteSorted(g.adjacency[v], u)
	g.edges--

	return nil
}

// HasEdge reports whether u and v are adjacent. Missing vertices yield false.
// Complexity: O(log deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, found := slices.BinarySearch(g.adjacency[u], v)

	return found
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Edges returns every edge once, with From < To, sorted by (From, To).
// Complexity: O(V log V + E).
func (g *Graph) Edges() []Edge {
	ids := g.Vertices()

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edges)
	for _, u := range ids {
		for _, v := range g.adjacency[u] {
			if u < v {
				out = append(out, Edge{From: u, To: v})
			}
		}
	}

	return out
}

// deleteSorted removes x from the sorted slice s if present.
func deleteSorted(s []int, x int) []int {
	pos, found := slices.BinarySearch(s, x)
	if !found {
		return s
	}

	return slices.Delete(s, pos, pos+1)
}
