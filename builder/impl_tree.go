// SPDX-License-Identifier: MIT
// Package: randwalk/builder
//
// impl_tree.go — BinaryTree(n) and RandomTree(n) constructors.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices). A single vertex is a valid tree.
//   • Both emit exactly n-1 edges, one per non-root index in ascending order,
//     so the result is always connected and acyclic.
//   • BinaryTree is deterministic: index i hangs below (i-1)/2 (heap order).
//   • RandomTree requires cfg.rng: index i hangs below a uniform earlier index.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/randwalk/core"
)

// BinaryTree returns a Constructor that builds the complete binary tree on n
// vertices in heap order.
func BinaryTree(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinTreeNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodBinaryTree, n, MinTreeNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, MethodBinaryTree, n, cfg.idFn); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := link(g, MethodBinaryTree, cfg.idFn, (i-1)/2, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// RandomTree returns a Constructor that builds a random recursive tree: each
// new vertex attaches to a uniformly chosen earlier one.
func RandomTree(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinTreeNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomTree, n, MinTreeNodes, ErrTooFewVertices)
		}
		if err := needRand(MethodRandomTree, cfg); err != nil {
			return err
		}
		if err := addVertices(g, MethodRandomTree, n, cfg.idFn); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := link(g, MethodRandomTree, cfg.idFn, cfg.rng.Intn(i), i); err != nil {
				return err
			}
		}

		return nil
	}
}
