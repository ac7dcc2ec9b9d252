// SPDX-License-Identifier: MIT
// Package: randwalk/matrix
//
// eigen.go — dominant eigenpair of a symmetric matrix.
//
// Contract:
//   • Uses the full symmetric eigendecomposition (gonum mat.EigenSym).
//   • Picks the largest eigenvalue λ₁ and its eigenvector ψ₁.
//   • Sign-normalizes ψ₁ so that ψ₁[0] ≥ 0. For a connected graph the
//     Perron vector then has all components positive.
//
// Complexity:
//   • Time O(n³), Space O(n²). Callers cache the result per graph.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Eigenpair is an eigenvalue together with its unit eigenvector.
type Eigenpair struct {
	Value  float64
	Vector []float64
}

// Principal returns the eigenpair of a with the largest eigenvalue.
//
// Errors:
//   - ErrEmptyMatrix: a is nil or of order zero.
//   - ErrEigenFailed: the eigensolver did not converge.
func Principal(a mat.Symmetric) (Eigenpair, error) {
	if a == nil || a.SymmetricDim() == 0 {
		return Eigenpair{}, fmt.Errorf("Principal: %w", ErrEmptyMatrix)
	}
	n := a.SymmetricDim()

	var es mat.EigenSym
	if ok := es.Factorize(a, true); !ok {
		return Eigenpair{}, fmt.Errorf("Principal: order %d: %w", n, ErrEigenFailed)
	}
	values := es.Values(nil)
	var vectors mat.Dense
	es.VectorsTo(&vectors)

	// Largest eigenvalue; ties keep the first index.
	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[best] {
			best = i
		}
	}

	vec := mat.Col(nil, best, &vectors)
	if vec[0] < 0 {
		for i := range vec {
			vec[i] = -vec[i]
		}
	}

	return Eigenpair{Value: values[best], Vector: vec}, nil
}

// ByVertex keys the eigenvector components by vertex ID through ix.
func (p Eigenpair) ByVertex(ix Index) map[int]float64 {
	out := make(map[int]float64, len(p.Vector))
	for i, x := range p.Vector {
		out[ix.Vertex(i)] = x
	}

	return out
}
