// SPDX-License-Identifier: MIT
// Package core defines the undirected Graph that random walkers explore,
// and provides thread-safe primitives for building, querying, and cloning it.
//
// Vertices are identified by integers. Edges are undirected and simple:
// no self-loops and no parallel edges. The adjacency of every vertex is kept
// as a sorted slice so that Neighbors() is deterministic and cheap, which
// matters because a walker queries it on every step.
//
// Errors:
//
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop u—u.
//	ErrMultiEdgeNotAllowed - attempt to add a parallel edge.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an undirected connection between two vertices.
// Edges() always reports it with From < To.
type Edge struct {
	From int
	To   int
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithName attaches a human-readable label (e.g. the generator name "ba").
func WithName(name string) GraphOption {
	return func(g *Graph) { g.name = name }
}

// Graph is the in-memory undirected graph.
//
// mu protects both the vertex catalog and the adjacency; a single lock is
// enough because every mutation touches both.
type Graph struct {
	mu sync.RWMutex

	name  string
	edges int // number of undirected edges

	// adjacency[v] holds the neighbors of v sorted ascending.
	adjacency map[int][]int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[int][]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Name returns the graph label set by WithName or SetName.
func (g *Graph) Name() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.name
}

// SetName replaces the graph label.
func (g *Graph) SetName(name string) {
	g.mu.Lock()
	g.name = name
	g.mu.Unlock()
}
