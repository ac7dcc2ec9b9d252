// SPDX-License-Identifier: MIT
// Package: randwalk/builder
//
// impl_degree_bounded.go — implementation of DegreeBounded(n, m) constructor.
//
// Model (connected, degree-bounded G(n,m)):
//   • Bound: every degree stays at most b = ⌈2m/n⌉.
//   • Stage 1: a Hamiltonian path over a shuffled vertex order.
//   • Stage 2: m-(n-1) further edges, each drawn uniformly among the absent
//     pairs whose endpoints both have residual capacity.
//   • A realization that runs out of such pairs is discarded and retried
//     up to MaxConstructAttempts times.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • n-1 ≤ m ≤ n(n-1)/2 (else ErrInvalidEdgeCount).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • ErrConstructFailed when every attempt gets stuck.
//
// Complexity: O(m·n²) worst case per attempt, O(m) space.

package builder

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/randwalk/core"
)

// DegreeBounded returns a Constructor that builds a connected graph with n
// vertices and m edges in which no degree exceeds ⌈2m/n⌉.
func DegreeBounded(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodDegreeBounded, n, MinPathNodes, ErrTooFewVertices)
		}
		maxEdges := n * (n - 1) / 2
		if m < n-1 || m > maxEdges {
			return fmt.Errorf("%s: m=%d outside [%d,%d]: %w", MethodDegreeBounded, m, n-1, maxEdges, ErrInvalidEdgeCount)
		}
		if err := needRand(MethodDegreeBounded, cfg); err != nil {
			return err
		}

		bound := (2*m + n - 1) / n
		for attempt := 0; attempt < MaxConstructAttempts; attempt++ {
			edges, ok := boundedPairs(cfg, n, m, bound)
			if !ok {
				continue
			}
			if err := addVertices(g, MethodDegreeBounded, n, cfg.idFn); err != nil {
				return err
			}
			for _, e := range edges {
				if err := link(g, MethodDegreeBounded, cfg.idFn, e[0], e[1]); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: n=%d m=%d bound=%d after %d attempts: %w",
			MethodDegreeBounded, n, m, bound, MaxConstructAttempts, ErrConstructFailed)
	}
}

// boundedPairs draws one realization as index pairs (i < j), or reports
// false when no admissible pair is left before m edges are placed.
func boundedPairs(cfg builderConfig, n, m, bound int) ([][2]int, bool) {
	rng := cfg.rng
	deg := make([]int, n)
	present := mapset.NewThreadUnsafeSetWithSize[[2]int](m)
	edges := make([][2]int, 0, m)
	add := func(i, j int) {
		if i > j {
			i, j = j, i
		}
		present.Add([2]int{i, j})
		edges = append(edges, [2]int{i, j})
		deg[i]++
		deg[j]++
	}

	order := rng.Perm(n)
	for i := 1; i < n; i++ {
		add(order[i-1], order[i])
	}

	var open [][2]int
	for len(edges) < m {
		open = open[:0]
		for i := 0; i < n; i++ {
			if deg[i] >= bound {
				continue
			}
			for j := i + 1; j < n; j++ {
				if deg[j] < bound && !present.Contains([2]int{i, j}) {
					open = append(open, [2]int{i, j})
				}
			}
		}
		if len(open) == 0 {
			return nil, false
		}
		p := open[rng.Intn(len(open))]
		add(p[0], p[1])
	}

	return edges, true
}
