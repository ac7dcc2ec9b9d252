// SPDX-License-Identifier: MIT
// Package: randwalk/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices). K₁ is a single isolated vertex.
//   • Emits every unordered pair (i<j) in lexicographic order.
//
// Complexity: O(n²) edges, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/randwalk/core"
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodComplete, n, ErrTooFewVertices)
		}
		if err := addVertices(g, MethodComplete, n, cfg.idFn); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(g, MethodComplete, cfg.idFn, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
