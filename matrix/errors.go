// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrGraphNil indicates that a nil graph was passed into Adjacency.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrEmptyMatrix signals a zero-order matrix where a spectrum was required.
	ErrEmptyMatrix = errors.New("matrix: empty matrix")

	// ErrUnknownVertex indicates that a vertex is not present in the Index.
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")

	// ErrEigenFailed is returned when the symmetric eigensolver does not converge.
	ErrEigenFailed = errors.New("matrix: eigen decomposition did not converge")
)
