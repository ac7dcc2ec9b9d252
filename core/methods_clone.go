// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

import "slices"

// Clone returns a deep copy of the Graph: label, vertices and adjacency.
// The adversary in the experiment driver mutates clones, never the shared graph.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithName(g.name))
	clone.edges = g.edges
	for id, nbrs := range g.adjacency {
		clone.adjacency[id] = slices.Clone(nbrs)
	}

	return clone
}

// Clear removes every vertex and edge while keeping the label.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency = make(map[int][]int)
	g.edges = 0
}
