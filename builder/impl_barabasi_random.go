// SPDX-License-Identifier: MIT
// Package: randwalk/builder
//
// impl_barabasi_random.go — implementation of BARandom(n, m) constructor.
//
// Model (preferential G(n,m) hybrid):
//   • Stage 1: a preferential-attachment tree. Indices 0 and 1 are linked;
//     each later index attaches once to an endpoint drawn by degree.
//   • Stage 2: m-(n-1) further edges, both ends drawn by degree, rejecting
//     loops and existing edges.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • n-1 ≤ m ≤ n(n-1)/2 (else ErrInvalidEdgeCount).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Result is connected with exactly m edges.
//
// Complexity: O(m) expected time while m stays well below n(n-1)/2,
// O(m) space for the endpoint list.

package builder

import (
	"fmt"

	"github.com/katalvlaran/randwalk/core"
)

// BARandom returns a Constructor that builds a connected graph with n
// vertices and m edges whose every endpoint is chosen by preferential
// attachment.
func BARandom(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodBARandom, n, MinPathNodes, ErrTooFewVertices)
		}
		maxEdges := n * (n - 1) / 2
		if m < n-1 || m > maxEdges {
			return fmt.Errorf("%s: m=%d outside [%d,%d]: %w", MethodBARandom, m, n-1, maxEdges, ErrInvalidEdgeCount)
		}
		if err := needRand(MethodBARandom, cfg); err != nil {
			return err
		}
		if err := addVertices(g, MethodBARandom, n, cfg.idFn); err != nil {
			return err
		}

		rng := cfg.rng
		endpoints := make([]int, 0, 2*m)
		if err := link(g, MethodBARandom, cfg.idFn, 0, 1); err != nil {
			return err
		}
		endpoints = append(endpoints, 0, 1)
		for i := 2; i < n; i++ {
			t := endpoints[rng.Intn(len(endpoints))]
			if err := link(g, MethodBARandom, cfg.idFn, i, t); err != nil {
				return err
			}
			endpoints = append(endpoints, i, t)
		}

		for added := n - 1; added < m; {
			i := endpoints[rng.Intn(len(endpoints))]
			j := endpoints[rng.Intn(len(endpoints))]
			if i == j || g.HasEdge(cfg.idFn(i), cfg.idFn(j)) {
				continue
			}
			if err := link(g, MethodBARandom, cfg.idFn, i, j); err != nil {
				return err
			}
			endpoints = append(endpoints, i, j)
			added++
		}

		return nil
	}
}
