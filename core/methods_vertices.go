// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending.
//
// Concurrency:
//   - Catalog and adjacency are protected by mu.
package core

import (
	"fmt"
	"slices"
)

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Under the write lock, check presence.
//   - Stage 2: If missing, register an empty adjacency bucket.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.adjacency[id]; exists {
		return nil // no-op for existing vertex
	}
	g.adjacency[id] = nil

	return nil
}

// HasVertex reports whether the vertex ID exists.
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]

	return ok
}

// RemoveVertex deletes a vertex together with all incident edges.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(Σ deg(w) for w in N(id)), Space O(1).
func (g *Graph) RemoveVertex(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return fmt.Errorf("RemoveVertex(%d): %w", id, ErrVertexNotFound)
	}
	// Drop the mirrored entries first, then the bucket itself.
	for _, w := range nbrs {
		g.adjacency[w] = deleteSorted(g.adjacency[w], id)
	}
	g.edges -= len(nbrs)
	delete(g.adjacency, id)

	return nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Degree returns the number of neighbors of id.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrVertexNotFound)
	}

	return len(nbrs), nil
}
