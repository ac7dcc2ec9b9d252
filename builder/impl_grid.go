// SPDX-License-Identifier: MIT
// Package: randwalk/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor (the "lattice").
//
// Model:
//   • 2D orthogonal grid with 4-neighborhood, no wrap-around.
//   • Cell (r,c) has index r*cols + c, mapped through cfg.idFn.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each (r,c) in row-major order emit Right then Bottom where present.
//
// Complexity: O(rows*cols) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/randwalk/core"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		if err := addVertices(g, MethodGrid, rows*cols, cfg.idFn); err != nil {
			return err
		}

		cell := func(r, c int) int { return r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(g, MethodGrid, cfg.idFn, cell(r, c), cell(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, MethodGrid, cfg.idFn, cell(r, c), cell(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
