// SPDX-License-Identifier: MIT
// Package: randwalk/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor (the "ring" graph).
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i — (i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/randwalk/core"
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, MethodCycle, n, cfg.idFn); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := link(g, MethodCycle, cfg.idFn, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
