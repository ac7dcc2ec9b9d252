// Package core provides the thread-safe, in-memory undirected Graph that the
// random walkers in package walk explore.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Integer vertex IDs (generators use 1..N so that matrix rows map to v-1)
//   - Undirected, unweighted, simple edges (no loops, no parallel edges)
//   - Sorted adjacency slices, so Neighbors() is deterministic and a seeded
//     walk is reproducible
//   - A single sync.RWMutex: walkers only read, the adversary in the
//     experiment driver mutates its own Clone()
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id int) error          // O(1)
//	HasVertex(id int) bool           // O(1)
//	RemoveVertex(id int) error       // O(Σ deg)
//
//	// Edge lifecycle
//	AddEdge(u, v int) error          // O(deg(u)+deg(v))
//	RemoveEdge(u, v int) error       // O(deg(u)+deg(v))
//	HasEdge(u, v int) bool           // O(log deg(u))
//
//	// Queries
//	Neighbors(id int) ([]int, error) // sorted copy
//	Degree(id int) (int, error)
//	Vertices() []int                 // sorted
//	Edges() []Edge                   // From < To, sorted
//	VertexCount(), EdgeCount()
//
//	// Cloning
//	Clone() *Graph
//
// Quick ASCII example (the 5-ring used throughout the tests):
//
//	  0
//	 / \
//	4   1
//	|   |
//	3───2
package core
