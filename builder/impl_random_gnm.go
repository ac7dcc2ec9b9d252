// SPDX-License-Identifier: MIT
// Package: randwalk/builder
//
// impl_random_gnm.go — implementation of RandomGNM(n, m) constructor.
//
// Model (connected G(n,m)):
//   • Stage 1: a random spanning tree over a shuffled vertex order, so the
//     result is connected regardless of m.
//   • Stage 2: m-(n-1) further edges drawn uniformly among absent pairs.
//     Sparse targets use rejection sampling; dense targets (more than half of
//     all pairs) shuffle the absent pairs and take a prefix.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • n-1 ≤ m ≤ n(n-1)/2 (else ErrInvalidEdgeCount).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity:
//   • Sparse: expected O(m log Δ). Dense: O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/randwalk/core"
)

// RandomGNM returns a Constructor that builds a connected random graph with
// exactly n vertices and m edges.
func RandomGNM(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodRandomGNM, n, ErrTooFewVertices)
		}
		maxEdges := n * (n - 1) / 2
		if m < n-1 || m > maxEdges {
			return fmt.Errorf("%s: m=%d outside [%d,%d]: %w", MethodRandomGNM, m, n-1, maxEdges, ErrInvalidEdgeCount)
		}
		if err := needRand(MethodRandomGNM, cfg); err != nil {
			return err
		}
		if err := addVertices(g, MethodRandomGNM, n, cfg.idFn); err != nil {
			return err
		}

		rng := cfg.rng
		order := rng.Perm(n)
		for i := 1; i < n; i++ {
			if err := link(g, MethodRandomGNM, cfg.idFn, order[rng.Intn(i)], order[i]); err != nil {
				return err
			}
		}

		extra := m - (n - 1)
		if extra == 0 {
			return nil
		}
		if 2*m > maxEdges {
			return fillDense(g, cfg, n, extra)
		}
		for added := 0; added < extra; {
			i, j := rng.Intn(n), rng.Intn(n)
			if i == j || g.HasEdge(cfg.idFn(i), cfg.idFn(j)) {
				continue
			}
			if err := link(g, MethodRandomGNM, cfg.idFn, i, j); err != nil {
				return err
			}
			added++
		}

		return nil
	}
}

// fillDense adds extra edges chosen uniformly among the pairs still absent.
func fillDense(g *core.Graph, cfg builderConfig, n, extra int) error {
	var absent [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !g.HasEdge(cfg.idFn(i), cfg.idFn(j)) {
				absent = append(absent, [2]int{i, j})
			}
		}
	}
	cfg.rng.Shuffle(len(absent), func(a, b int) { absent[a], absent[b] = absent[b], absent[a] })
	for _, p := range absent[:extra] {
		if err := link(g, MethodRandomGNM, cfg.idFn, p[0], p[1]); err != nil {
			return err
		}
	}

	return nil
}
