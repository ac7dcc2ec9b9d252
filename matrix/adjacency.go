// SPDX-License-Identifier: MIT
// Package: randwalk/matrix
//
// adjacency.go — dense symmetric adjacency matrix of an undirected graph.
//
// Contract:
//   • Rows/cols follow ascending vertex order; vertices 1..N map to 0..N-1.
//   • A[i][j] = 1 iff the i-th and j-th vertices are adjacent; diagonal is 0.
//   • The Index returned alongside translates between vertex IDs and rows.
//
// Complexity:
//   • Time O(V log V + E), Space O(V²).

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Graph is the read-only view Adjacency needs. core.Graph satisfies it.
type Graph interface {
	Vertices() []int
	Neighbors(id int) ([]int, error)
}

// Index maps vertex IDs to matrix rows and back.
type Index struct {
	ids []int       // row → vertex
	pos map[int]int // vertex → row
}

// NewIndex builds an Index over ids, which must be sorted and distinct.
func NewIndex(ids []int) Index {
	pos := make(map[int]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}

	return Index{ids: ids, pos: pos}
}

// Len returns the number of indexed vertices.
func (ix Index) Len() int { return len(ix.ids) }

// Row returns the matrix row of vertex id.
func (ix Index) Row(id int) (int, error) {
	i, ok := ix.pos[id]
	if !ok {
		return 0, fmt.Errorf("Row(%d): %w", id, ErrUnknownVertex)
	}

	return i, nil
}

// Vertex returns the vertex ID stored at row i.
func (ix Index) Vertex(i int) int { return ix.ids[i] }

// Adjacency returns the symmetric 0/1 adjacency matrix of g and its Index.
//
// Errors:
//   - ErrGraphNil: g is nil.
//   - ErrEmptyMatrix: g has no vertices.
//   - any error from g.Neighbors, wrapped.
func Adjacency(g Graph) (*mat.SymDense, Index, error) {
	if g == nil {
		return nil, Index{}, ErrGraphNil
	}
	ids := g.Vertices()
	n := len(ids)
	if n == 0 {
		return nil, Index{}, fmt.Errorf("Adjacency: %w", ErrEmptyMatrix)
	}
	ix := NewIndex(ids)

	a := mat.NewSymDense(n, nil)
	for i, u := range ids {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, Index{}, fmt.Errorf("Adjacency: %w", err)
		}
		for _, v := range nbrs {
			j, ok := ix.pos[v]
			if !ok {
				return nil, Index{}, fmt.Errorf("Adjacency: neighbor %d of %d: %w", v, u, ErrUnknownVertex)
			}
			a.SetSym(i, j, 1)
		}
	}

	return a, ix, nil
}
