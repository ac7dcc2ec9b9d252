// SPDX-License-Identifier: MIT
// Package: randwalk/builder
//
// impl_barabasi.go — implementation of BarabasiAlbert(n, m0, m) constructor.
//
// Model:
//   • Seed: a clique on indices 0..m0-1.
//   • Growth: each new index i ≥ m0 attaches to m distinct existing vertices,
//     each drawn with probability proportional to its current degree.
//   • Degree-proportional draws sample an endpoint list in which every vertex
//     appears once per incident edge.
//
// Contract:
//   • m0 ≥ 2, 1 ≤ m ≤ m0, n ≥ m0 (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Result is connected with C(m0,2) + (n-m0)·m edges.
//   • Targets of one step are linked in ascending index order.
//
// Complexity: O(n·m) expected time, O(n·m) space for the endpoint list.

package builder

import (
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/randwalk/core"
)

// BarabasiAlbert returns a Constructor that grows a scale-free graph by
// preferential attachment.
func BarabasiAlbert(n, m0, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if m0 < MinSeedClique {
			return fmt.Errorf("%s: m0=%d < min=%d: %w", MethodBarabasiAlbert, m0, MinSeedClique, ErrTooFewVertices)
		}
		if m < 1 || m > m0 {
			return fmt.Errorf("%s: m=%d outside [1,%d]: %w", MethodBarabasiAlbert, m, m0, ErrTooFewVertices)
		}
		if n < m0 {
			return fmt.Errorf("%s: n=%d < m0=%d: %w", MethodBarabasiAlbert, n, m0, ErrTooFewVertices)
		}
		if err := needRand(MethodBarabasiAlbert, cfg); err != nil {
			return err
		}
		if err := addVertices(g, MethodBarabasiAlbert, n, cfg.idFn); err != nil {
			return err
		}

		endpoints := make([]int, 0, m0*(m0-1)+2*(n-m0)*m)
		for i := 0; i < m0; i++ {
			for j := i + 1; j < m0; j++ {
				if err := link(g, MethodBarabasiAlbert, cfg.idFn, i, j); err != nil {
					return err
				}
				endpoints = append(endpoints, i, j)
			}
		}

		chosen := mapset.NewThreadUnsafeSetWithSize[int](m)
		for i := m0; i < n; i++ {
			chosen.Clear()
			for chosen.Cardinality() < m {
				chosen.Add(endpoints[cfg.rng.Intn(len(endpoints))])
			}
			targets := chosen.ToSlice()
			slices.Sort(targets)
			for _, t := range targets {
				if err := link(g, MethodBarabasiAlbert, cfg.idFn, i, t); err != nil {
					return err
				}
				endpoints = append(endpoints, i, t)
			}
		}

		return nil
	}
}
