// SPDX-License-Identifier: MIT
// Package: randwalk/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges i — i+1 for i=0..n-2.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/randwalk/core"
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, MethodPath, n, cfg.idFn); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := link(g, MethodPath, cfg.idFn, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
