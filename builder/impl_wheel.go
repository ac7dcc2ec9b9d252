// SPDX-License-Identifier: MIT
// Package: randwalk/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Definition:
//   • Wₙ = Cₙ₋₁ + hub: index 0 is the hub, indices 1..n-1 form the rim.
//   • Therefore n ≥ 4 (the rim must be a valid cycle).
//
// Contract:
//   • Emits rim edges i — i+1 (wrapping n-1 — 1) first, then spokes 0 — i.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/randwalk/core"
)

// Wheel returns a Constructor that builds the wheel graph on n vertices.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, MethodWheel, n, cfg.idFn); err != nil {
			return err
		}

		rim := n - 1
		for i := 1; i < n; i++ {
			next := i%rim + 1
			if err := link(g, MethodWheel, cfg.idFn, i, next); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := link(g, MethodWheel, cfg.idFn, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
