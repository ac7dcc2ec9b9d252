// SPDX-License-Identifier: MIT
// Package: randwalk/builder
//
// impl_li_maini.go — implementation of LiMaini(t, c, m0, m, alpha) constructor.
//
// Model (evolving network with community structure):
//   • Seed: c communities of m0 indices each, every community a clique.
//     Consecutive communities are joined by one edge (last seed of k to the
//     first seed of k+1).
//   • Growth: t new indices. Each joins a uniformly drawn community and
//     attaches to m distinct members drawn by intra-community degree.
//     With probability alpha it also links to one vertex of another
//     community, drawn by total degree.
//
// Contract:
//   • c ≥ 1, m0 ≥ 1, c·m0 ≥ 2, 1 ≤ m ≤ m0, t ≥ 0 (else ErrTooFewVertices).
//   • 0 ≤ alpha ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Result is connected with c·m0 + t vertices and at least
//     c·C(m0,2) + (c-1) + t·m edges.
//
// Complexity: O((c·m0² + t·m)) expected time and space.

package builder

import (
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/randwalk/core"
)

// LiMaini returns a Constructor that grows c preferential-attachment
// communities from cliques of m0 vertices by adding t vertices.
func LiMaini(t, c, m0, m int, alpha float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if c < 1 || m0 < 1 || c*m0 < MinSeedClique {
			return fmt.Errorf("%s: c=%d m0=%d seed below %d: %w", MethodLiMaini, c, m0, MinSeedClique, ErrTooFewVertices)
		}
		if m < 1 || m > m0 {
			return fmt.Errorf("%s: m=%d outside [1,%d]: %w", MethodLiMaini, m, m0, ErrTooFewVertices)
		}
		if t < 0 {
			return fmt.Errorf("%s: t=%d < 0: %w", MethodLiMaini, t, ErrTooFewVertices)
		}
		if alpha < 0 || alpha > 1 {
			return fmt.Errorf("%s: alpha=%v: %w", MethodLiMaini, alpha, ErrInvalidProbability)
		}
		if err := needRand(MethodLiMaini, cfg); err != nil {
			return err
		}
		seeds := c * m0
		if err := addVertices(g, MethodLiMaini, seeds+t, cfg.idFn); err != nil {
			return err
		}

		rng := cfg.rng
		community := make([]int, seeds+t)
		local := make([][]int, c) // intra-community endpoints
		var global []int          // endpoints of every edge
		addEdge := func(i, j int, intra bool) error {
			if err := link(g, MethodLiMaini, cfg.idFn, i, j); err != nil {
				return err
			}
			global = append(global, i, j)
			if intra {
				local[community[i]] = append(local[community[i]], i, j)
			}

			return nil
		}

		// Stage 1: seed cliques, then the chain between communities.
		for k := 0; k < c; k++ {
			base := k * m0
			for i := base; i < base+m0; i++ {
				community[i] = k
			}
			for i := base; i < base+m0; i++ {
				for j := i + 1; j < base+m0; j++ {
					if err := addEdge(i, j, true); err != nil {
						return err
					}
				}
			}
			// A singleton community has no intra degree yet; list it once so
			// it can still attract newcomers.
			if m0 == 1 {
				local[k] = append(local[k], base)
			}
		}
		for k := 1; k < c; k++ {
			if err := addEdge(k*m0-1, k*m0, false); err != nil {
				return err
			}
		}

		// Stage 2: growth.
		chosen := mapset.NewThreadUnsafeSetWithSize[int](m)
		for i := seeds; i < seeds+t; i++ {
			k := rng.Intn(c)
			community[i] = k
			pool := local[k]

			chosen.Clear()
			for chosen.Cardinality() < m {
				chosen.Add(pool[rng.Intn(len(pool))])
			}
			targets := chosen.ToSlice()
			slices.Sort(targets)
			for _, u := range targets {
				if err := addEdge(i, u, true); err != nil {
					return err
				}
			}

			if c > 1 && rng.Float64() < alpha {
				u := global[rng.Intn(len(global))]
				for community[u] == k {
					u = global[rng.Intn(len(global))]
				}
				if err := addEdge(i, u, false); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
