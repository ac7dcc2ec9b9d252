// SPDX-License-Identifier: MIT
// Package: randwalk/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Index 0 is the hub; indices 1..n-1 are leaves.
//   • Emits spokes 0 — i in ascending i.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/randwalk/core"
)

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, MethodStar, n, cfg.idFn); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := link(g, MethodStar, cfg.idFn, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
