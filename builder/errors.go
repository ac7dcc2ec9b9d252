// SPDX-License-Identifier: MIT
// Package: randwalk/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w: "<Method>: <detail>: %w".
//   • Validation order when several checks fail: sizes first
//     (ErrTooFewVertices, ErrInvalidEdgeCount, ErrInvalidProbability), then RNG presence
//     (ErrNeedRandSource), then ErrConstructFailed after retries run out.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, degree,
// seed-clique size) is below the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidEdgeCount indicates an edge count that no simple connected graph
// on the requested vertices can have.
var ErrInvalidEdgeCount = errors.New("builder: invalid edge count")

// ErrInvalidProbability indicates a probability parameter outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability outside [0,1]")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder exhausted its attempts, or
// was handed a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
