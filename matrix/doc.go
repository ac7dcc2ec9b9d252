// Package matrix offers the spectral view of a graph that the maximal-entropy
// walker and eigenvector centrality need.
//
// The matrix package provides:
//
//   - Adjacency: the dense symmetric 0/1 adjacency matrix (gonum SymDense)
//     plus an Index translating vertex IDs to rows.
//   - Principal: the dominant eigenpair (λ₁, ψ₁), sign-normalized.
//
// Matrices are O(V²) in memory and the decomposition is O(V³), which is fine
// for the few-hundred-vertex graphs of a cover-time experiment; compute once
// per graph and share the result across trials.
package matrix
